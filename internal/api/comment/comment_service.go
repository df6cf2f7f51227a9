package comment

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ CommentService = (*CommentServiceImpl)(nil)

type CommentService interface {
	GetComments(ctx context.Context) ([]types.Comment, error)
	GetComment(ctx context.Context, id int64) (*types.Comment, error)
	CreateComment(ctx context.Context, input *types.CreateCommentRequest) (*types.Comment, error)
	UpdateComment(ctx context.Context, input *types.UpdateCommentRequest) (*types.Comment, error)
	DeleteComment(ctx context.Context, id int64) error
}

type CommentServiceImpl struct {
	logger *slog.Logger
	repo   CommentRepository
}

func NewCommentService(repo CommentRepository, logger *slog.Logger) *CommentServiceImpl {
	return &CommentServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *CommentServiceImpl) GetComments(ctx context.Context) ([]types.Comment, error) {
	comments, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch comments", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return comments, nil
}

func (s *CommentServiceImpl) GetComment(ctx context.Context, id int64) (*types.Comment, error) {
	comment, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch comment", slog.Int64("comment_id", id), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return comment, nil
}

func (s *CommentServiceImpl) CreateComment(ctx context.Context, input *types.CreateCommentRequest) (*types.Comment, error) {
	comment, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create comment", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return comment, nil
}

func (s *CommentServiceImpl) UpdateComment(ctx context.Context, input *types.UpdateCommentRequest) (*types.Comment, error) {
	comment, err := s.repo.Update(ctx, input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to update comment", slog.Int64("comment_id", input.ID), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return comment, nil
}

func (s *CommentServiceImpl) DeleteComment(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to delete comment", slog.Int64("comment_id", id), slog.Any("error", err))
		return api.ErrDatabase
	}
	return nil
}
