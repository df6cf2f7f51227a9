package post

import (
	"context"
	"errors"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ PostService = (*PostServiceImpl)(nil)

type PostService interface {
	GetPosts(ctx context.Context) ([]types.Post, error)
	GetPost(ctx context.Context, id int64) (*types.Post, error)
	GetPostRelation(ctx context.Context, postID int64) ([]types.PostRelation, error)
	CreatePost(ctx context.Context, input *types.CreatePostRequest) (*types.Post, error)
	UpdatePost(ctx context.Context, input *types.UpdatePostRequest) (*types.Post, error)
	DeletePost(ctx context.Context, id int64) error
}

type PostServiceImpl struct {
	logger *slog.Logger
	repo   PostRepository
}

func NewPostService(repo PostRepository, logger *slog.Logger) *PostServiceImpl {
	return &PostServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *PostServiceImpl) GetPosts(ctx context.Context) ([]types.Post, error) {
	ctx, span := otel.Tracer("PostService").Start(ctx, "GetPosts")
	defer span.End()

	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch posts", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch posts")
		return nil, api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Posts fetched successfully")
	return posts, nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, id int64) (*types.Post, error) {
	ctx, span := otel.Tracer("PostService").Start(ctx, "GetPost", trace.WithAttributes(
		attribute.Int64("post.id", id),
	))
	defer span.End()

	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch post", slog.Int64("post_id", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch post")
		return nil, api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Post fetched successfully")
	return post, nil
}

func (s *PostServiceImpl) GetPostRelation(ctx context.Context, postID int64) ([]types.PostRelation, error) {
	ctx, span := otel.Tracer("PostService").Start(ctx, "GetPostRelation", trace.WithAttributes(
		attribute.Int64("post.id", postID),
	))
	defer span.End()

	relations, err := s.repo.FindRelation(ctx, postID)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch post relation", slog.Int64("post_id", postID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch post relation")
		return nil, api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Post relation fetched successfully")
	return relations, nil
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, input *types.CreatePostRequest) (*types.Post, error) {
	ctx, span := otel.Tracer("PostService").Start(ctx, "CreatePost", trace.WithAttributes(
		attribute.Int64("post.user_id", input.UserID),
		attribute.Int64("post.category_id", input.CategoryID),
	))
	defer span.End()

	post, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create post", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create post")
		return nil, api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Post created successfully")
	return post, nil
}

func (s *PostServiceImpl) UpdatePost(ctx context.Context, input *types.UpdatePostRequest) (*types.Post, error) {
	ctx, span := otel.Tracer("PostService").Start(ctx, "UpdatePost", trace.WithAttributes(
		attribute.Int64("post.id", input.ID),
	))
	defer span.End()

	post, err := s.repo.Update(ctx, input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			span.SetStatus(codes.Error, "Post not found")
			return nil, api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to update post", slog.Int64("post_id", input.ID), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update post")
		return nil, api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Post updated successfully")
	return post, nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, id int64) error {
	ctx, span := otel.Tracer("PostService").Start(ctx, "DeletePost", trace.WithAttributes(
		attribute.Int64("post.id", id),
	))
	defer span.End()

	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			span.SetStatus(codes.Error, "Post not found")
			return api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to delete post", slog.Int64("post_id", id), slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete post")
		return api.ErrDatabase
	}

	span.SetStatus(codes.Ok, "Post deleted successfully")
	return nil
}
