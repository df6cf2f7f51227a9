package post

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/sanedge/blog-api/app/observability/metrics"
	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ PostRepository = (*PostgresPostRepository)(nil)

type PostRepository interface {
	FindAll(ctx context.Context) ([]types.Post, error)
	FindByID(ctx context.Context, id int64) (*types.Post, error)
	FindRelation(ctx context.Context, postID int64) ([]types.PostRelation, error)
	Create(ctx context.Context, input *types.CreatePostRequest) (*types.Post, error)
	Update(ctx context.Context, input *types.UpdatePostRequest) (*types.Post, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresPostRepository struct {
	logger  *slog.Logger
	pgpool  api.PGXPool
	metrics *metrics.AppMetrics
}

func NewPostgresPostRepository(pool api.PGXPool, logger *slog.Logger, appMetrics *metrics.AppMetrics) *PostgresPostRepository {
	return &PostgresPostRepository{
		logger:  logger,
		pgpool:  pool,
		metrics: appMetrics,
	}
}

func (r *PostgresPostRepository) observe(ctx context.Context, query string, start time.Time) {
	if r.metrics == nil {
		return
	}
	r.metrics.DbQueryDurationSeconds.Record(ctx, time.Since(start).Seconds(),
		metric.WithAttributes(attribute.String("query", query)))
}

func (r *PostgresPostRepository) FindAll(ctx context.Context) ([]types.Post, error) {
	defer r.observe(ctx, "posts.find_all", time.Now())

	rows, err := r.pgpool.Query(ctx,
		"SELECT id, title, body, img, category_id, user_id, user_name FROM posts ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]types.Post, 0)
	for rows.Next() {
		var p types.Post
		if err := rows.Scan(&p.ID, &p.Title, &p.Body, &p.Img, &p.CategoryID, &p.UserID, &p.UserName); err != nil {
			return nil, fmt.Errorf("failed to scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate posts: %w", err)
	}
	return posts, nil
}

func (r *PostgresPostRepository) FindByID(ctx context.Context, id int64) (*types.Post, error) {
	defer r.observe(ctx, "posts.find_by_id", time.Now())

	var p types.Post
	err := r.pgpool.QueryRow(ctx,
		"SELECT id, title, body, img, category_id, user_id, user_name FROM posts WHERE id = $1",
		id).Scan(&p.ID, &p.Title, &p.Body, &p.Img, &p.CategoryID, &p.UserID, &p.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find post: %w", err)
	}
	return &p, nil
}

// FindRelation returns one row per (post, comment) pair for the given post,
// ordered by comment id. A post with no comments yields an empty slice.
func (r *PostgresPostRepository) FindRelation(ctx context.Context, postID int64) ([]types.PostRelation, error) {
	defer r.observe(ctx, "posts.find_relation", time.Now())

	rows, err := r.pgpool.Query(ctx,
		`SELECT p.id, p.title, c.id, c.user_comment, c.comment
         FROM posts p
         JOIN comments c ON c.id_post_comment = p.id
         WHERE p.id = $1
         ORDER BY c.id`, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to query post relation: %w", err)
	}
	defer rows.Close()

	relations := make([]types.PostRelation, 0)
	for rows.Next() {
		var rel types.PostRelation
		if err := rows.Scan(&rel.PostID, &rel.Title, &rel.CommentID, &rel.UserComment, &rel.Comment); err != nil {
			return nil, fmt.Errorf("failed to scan post relation: %w", err)
		}
		relations = append(relations, rel)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate post relation: %w", err)
	}
	return relations, nil
}

func (r *PostgresPostRepository) Create(ctx context.Context, input *types.CreatePostRequest) (*types.Post, error) {
	defer r.observe(ctx, "posts.create", time.Now())

	var p types.Post
	err := r.pgpool.QueryRow(ctx,
		`INSERT INTO posts (title, body, img, category_id, user_id, user_name)
         VALUES ($1, $2, $3, $4, $5, $6)
         RETURNING id, title, body, img, category_id, user_id, user_name`,
		input.Title, input.Body, input.Img, input.CategoryID, input.UserID, input.UserName).
		Scan(&p.ID, &p.Title, &p.Body, &p.Img, &p.CategoryID, &p.UserID, &p.UserName)
	if err != nil {
		return nil, fmt.Errorf("failed to insert post: %w", err)
	}
	return &p, nil
}

func (r *PostgresPostRepository) Update(ctx context.Context, input *types.UpdatePostRequest) (*types.Post, error) {
	defer r.observe(ctx, "posts.update", time.Now())

	var p types.Post
	err := r.pgpool.QueryRow(ctx,
		`UPDATE posts
         SET title       = COALESCE($2, title),
             body        = COALESCE($3, body),
             img         = COALESCE($4, img),
             category_id = COALESCE($5, category_id),
             user_id     = COALESCE($6, user_id),
             user_name   = COALESCE($7, user_name)
         WHERE id = $1
         RETURNING id, title, body, img, category_id, user_id, user_name`,
		input.ID, input.Title, input.Body, input.Img, input.CategoryID, input.UserID, input.UserName).
		Scan(&p.ID, &p.Title, &p.Body, &p.Img, &p.CategoryID, &p.UserID, &p.UserName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, api.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return &p, nil
}

func (r *PostgresPostRepository) Delete(ctx context.Context, id int64) error {
	defer r.observe(ctx, "posts.delete", time.Now())

	tag, err := r.pgpool.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return api.ErrNotFound
	}
	return nil
}
