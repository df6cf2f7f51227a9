package comment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ CommentRepository = (*PostgresCommentRepository)(nil)

type CommentRepository interface {
	FindAll(ctx context.Context) ([]types.Comment, error)
	FindByID(ctx context.Context, id int64) (*types.Comment, error)
	Create(ctx context.Context, input *types.CreateCommentRequest) (*types.Comment, error)
	Update(ctx context.Context, input *types.UpdateCommentRequest) (*types.Comment, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresCommentRepository struct {
	logger *slog.Logger
	pgpool api.PGXPool
}

func NewPostgresCommentRepository(pool api.PGXPool, logger *slog.Logger) *PostgresCommentRepository {
	return &PostgresCommentRepository{
		logger: logger,
		pgpool: pool,
	}
}

func (r *PostgresCommentRepository) FindAll(ctx context.Context) ([]types.Comment, error) {
	rows, err := r.pgpool.Query(ctx,
		"SELECT id, id_post_comment, user_comment, comment FROM comments ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer rows.Close()

	comments := make([]types.Comment, 0)
	for rows.Next() {
		var c types.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserComment, &c.Comment); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate comments: %w", err)
	}
	return comments, nil
}

func (r *PostgresCommentRepository) FindByID(ctx context.Context, id int64) (*types.Comment, error) {
	var c types.Comment
	err := r.pgpool.QueryRow(ctx,
		"SELECT id, id_post_comment, user_comment, comment FROM comments WHERE id = $1",
		id).Scan(&c.ID, &c.PostID, &c.UserComment, &c.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find comment: %w", err)
	}
	return &c, nil
}

func (r *PostgresCommentRepository) Create(ctx context.Context, input *types.CreateCommentRequest) (*types.Comment, error) {
	var c types.Comment
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO comments (id_post_comment, user_comment, comment)
         VALUES ($1, $2, $3)
         RETURNING id, id_post_comment, user_comment, comment`,
		input.PostID, input.UserComment, input.Comment).
		Scan(&c.ID, &c.PostID, &c.UserComment, &c.Comment)
	if err != nil {
		return nil, fmt.Errorf("failed to insert comment: %w", err)
	}
	return &c, nil
}

func (r *PostgresCommentRepository) Update(ctx context.Context, input *types.UpdateCommentRequest) (*types.Comment, error) {
	var c types.Comment
	err := r.pgpool.QueryRow(ctx,
		`UPDATE comments
         SET id_post_comment = COALESCE($2, id_post_comment),
             user_comment    = COALESCE($3, user_comment),
             comment         = COALESCE($4, comment)
         WHERE id = $1
         RETURNING id, id_post_comment, user_comment, comment`,
		input.ID, input.PostID, input.UserComment, input.Comment).
		Scan(&c.ID, &c.PostID, &c.UserComment, &c.Comment)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update comment: %w", err)
	}
	return &c, nil
}

func (r *PostgresCommentRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return api.ErrNotFound
	}
	return nil
}
