package category

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ CategoryService = (*CategoryServiceImpl)(nil)

// CategoryService translates repository outcomes for the handler: read-path
// absence passes through as (nil, nil), write-path absence is api.ErrNotFound
// and any other storage failure is logged and reduced to api.ErrDatabase.
type CategoryService interface {
	GetCategories(ctx context.Context) ([]types.Category, error)
	GetCategory(ctx context.Context, id int64) (*types.Category, error)
	CreateCategory(ctx context.Context, input *types.CreateCategoryRequest) (*types.Category, error)
	UpdateCategory(ctx context.Context, input *types.UpdateCategoryRequest) (*types.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryServiceImpl struct {
	logger *slog.Logger
	repo   CategoryRepository
}

func NewCategoryService(repo CategoryRepository, logger *slog.Logger) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *CategoryServiceImpl) GetCategories(ctx context.Context) ([]types.Category, error) {
	categories, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch categories", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return categories, nil
}

func (s *CategoryServiceImpl) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	category, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch category", slog.Int64("category_id", id), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return category, nil
}

func (s *CategoryServiceImpl) CreateCategory(ctx context.Context, input *types.CreateCategoryRequest) (*types.Category, error) {
	category, err := s.repo.Create(ctx, input)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to create category", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return category, nil
}

func (s *CategoryServiceImpl) UpdateCategory(ctx context.Context, input *types.UpdateCategoryRequest) (*types.Category, error) {
	category, err := s.repo.Update(ctx, input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to update category", slog.Int64("category_id", input.ID), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return category, nil
}

func (s *CategoryServiceImpl) DeleteCategory(ctx context.Context, id int64) error {
	err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to delete category", slog.Int64("category_id", id), slog.Any("error", err))
		return api.ErrDatabase
	}
	return nil
}
