package category

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ CategoryRepository = (*PostgresCategoryRepository)(nil)

// CategoryRepository is the category capability set. FindAll is ordered by id
// so listings are deterministic.
type CategoryRepository interface {
	FindAll(ctx context.Context) ([]types.Category, error)
	FindByID(ctx context.Context, id int64) (*types.Category, error)
	Create(ctx context.Context, input *types.CreateCategoryRequest) (*types.Category, error)
	Update(ctx context.Context, input *types.UpdateCategoryRequest) (*types.Category, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresCategoryRepository struct {
	logger *slog.Logger
	pgpool api.PGXPool
}

func NewPostgresCategoryRepository(pool api.PGXPool, logger *slog.Logger) *PostgresCategoryRepository {
	return &PostgresCategoryRepository{
		logger: logger,
		pgpool: pool,
	}
}

func (r *PostgresCategoryRepository) FindAll(ctx context.Context) ([]types.Category, error) {
	rows, err := r.pgpool.Query(ctx, "SELECT id, name FROM categories ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query categories: %w", err)
	}
	defer rows.Close()

	categories := make([]types.Category, 0)
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}
	return categories, nil
}

func (r *PostgresCategoryRepository) FindByID(ctx context.Context, id int64) (*types.Category, error) {
	var c types.Category
	err := r.pgpool.QueryRow(ctx, "SELECT id, name FROM categories WHERE id = $1", id).
		Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return &c, nil
}

func (r *PostgresCategoryRepository) Create(ctx context.Context, input *types.CreateCategoryRequest) (*types.Category, error) {
	var c types.Category
	err := r.pgpool.QueryRow(ctx,
		"INSERT INTO categories (name) VALUES ($1) RETURNING id, name",
		input.Name).Scan(&c.ID, &c.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to insert category: %w", err)
	}
	return &c, nil
}

func (r *PostgresCategoryRepository) Update(ctx context.Context, input *types.UpdateCategoryRequest) (*types.Category, error) {
	var c types.Category
	err := r.pgpool.QueryRow(ctx,
		`UPDATE categories SET name = COALESCE($2, name)
         WHERE id = $1
         RETURNING id, name`,
		input.ID, input.Name).Scan(&c.ID, &c.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return &c, nil
}

func (r *PostgresCategoryRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return api.ErrNotFound
	}
	return nil
}
