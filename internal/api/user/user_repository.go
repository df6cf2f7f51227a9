package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ UserRepo = (*PostgresUserRepo)(nil)

// UserRepo defines the contract for user persistence. Read lookups return
// (nil, nil) when no row matches; Update and Delete return api.ErrNotFound.
type UserRepo interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	FindByID(ctx context.Context, id int64) (*types.User, error)
	Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error)
	Update(ctx context.Context, input *types.UpdateUserRequest) (*types.User, error)
	Delete(ctx context.Context, email string) error
}

type PostgresUserRepo struct {
	logger *slog.Logger
	pgpool api.PGXPool
}

func NewPostgresUserRepo(pool api.PGXPool, logger *slog.Logger) *PostgresUserRepo {
	return &PostgresUserRepo{
		logger: logger,
		pgpool: pool,
	}
}

func (r *PostgresUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.pgpool.QueryRow(ctx,
		"SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)",
		email).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check email existence: %w", err)
	}
	return exists, nil
}

func (r *PostgresUserRepo) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	var user types.User
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, firstname, lastname, email, password, created_at, updated_at
         FROM users WHERE email = $1`,
		email).Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}
	return &user, nil
}

func (r *PostgresUserRepo) FindByID(ctx context.Context, id int64) (*types.User, error) {
	var user types.User
	err := r.pgpool.QueryRow(ctx,
		`SELECT id, firstname, lastname, email, password, created_at, updated_at
         FROM users WHERE id = $1`,
		id).Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}
	return &user, nil
}

// Create inserts a new user; input.Password must already be hashed.
func (r *PostgresUserRepo) Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error) {
	var user types.User
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO users (firstname, lastname, email, password)
         VALUES ($1, $2, $3, $4)
         RETURNING id, firstname, lastname, email, password, created_at, updated_at`,
		input.Firstname, input.Lastname, input.Email, input.Password).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &user, nil
}

// Update applies a partial update; nil fields keep their stored value.
func (r *PostgresUserRepo) Update(ctx context.Context, input *types.UpdateUserRequest) (*types.User, error) {
	var user types.User
	err := r.pgpool.QueryRow(ctx,
		`UPDATE users
         SET firstname = COALESCE($2, firstname),
             lastname  = COALESCE($3, lastname),
             email     = COALESCE($4, email),
             updated_at = now()
         WHERE id = $1
         RETURNING id, firstname, lastname, email, password, created_at, updated_at`,
		input.ID, input.Firstname, input.Lastname, input.Email).
		Scan(&user.ID, &user.Firstname, &user.Lastname, &user.Email, &user.Password, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return &user, nil
}

// Delete removes a user addressed by email.
func (r *PostgresUserRepo) Delete(ctx context.Context, email string) error {
	tag, err := r.pgpool.Exec(ctx, "DELETE FROM users WHERE email = $1", email)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return api.ErrNotFound
	}
	return nil
}
