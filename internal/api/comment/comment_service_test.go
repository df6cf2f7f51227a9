package comment

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

// MockCommentRepository is a mock implementation of the CommentRepository interface
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) FindAll(ctx context.Context) ([]types.Comment, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Comment), args.Error(1)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id int64) (*types.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Comment), args.Error(1)
}

func (m *MockCommentRepository) Create(ctx context.Context, input *types.CreateCommentRequest) (*types.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Comment), args.Error(1)
}

func (m *MockCommentRepository) Update(ctx context.Context, input *types.UpdateCommentRequest) (*types.Comment, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Comment), args.Error(1)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestCommentService_GetComments(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		expected := []types.Comment{
			{ID: 10, PostID: 1, UserComment: "ada", Comment: "nice post"},
		}
		mockRepo.On("FindAll", mock.Anything).Return(expected, nil).Once()

		comments, err := service.GetComments(ctx)

		require.NoError(t, err)
		assert.Equal(t, expected, comments)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("FindAll", mock.Anything).Return(nil, errors.New("connection refused")).Once()

		comments, err := service.GetComments(ctx)

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Nil(t, comments)
	})
}

func TestCommentService_GetComment(t *testing.T) {
	ctx := context.Background()

	t.Run("AbsencePassesThrough", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("FindByID", mock.Anything, int64(99)).Return(nil, nil).Once()

		comment, err := service.GetComment(ctx, 99)

		assert.NoError(t, err)
		assert.Nil(t, comment)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("FindByID", mock.Anything, int64(10)).Return(nil, errors.New("connection refused")).Once()

		comment, err := service.GetComment(ctx, 10)

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Nil(t, comment)
	})
}

func TestCommentService_CreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		input := &types.CreateCommentRequest{PostID: 1, UserComment: "ada", Comment: "nice post"}
		mockRepo.On("Create", mock.Anything, input).
			Return(&types.Comment{ID: 10, PostID: 1, UserComment: "ada", Comment: "nice post"}, nil).Once()

		comment, err := service.CreateComment(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(10), comment.ID)
		mockRepo.AssertExpectations(t)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("Create", mock.Anything, mock.Anything).Return(nil, errors.New("foreign key violation")).Once()

		comment, err := service.CreateComment(ctx, &types.CreateCommentRequest{PostID: 99})

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Nil(t, comment)
	})
}

func TestCommentService_UpdateComment(t *testing.T) {
	ctx := context.Background()
	text := "edited"

	t.Run("NotFoundPassesThrough", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil, api.ErrNotFound).Once()

		comment, err := service.UpdateComment(ctx, &types.UpdateCommentRequest{ID: 99, Comment: &text})

		assert.ErrorIs(t, err, api.ErrNotFound)
		assert.Nil(t, comment)
	})

	t.Run("OtherErrorsBecomeDatabase", func(t *testing.T) {
		mockRepo := new(MockCommentRepository)
		service := NewCommentService(mockRepo, slog.Default())

		mockRepo.On("Update", mock.Anything, mock.Anything).Return(nil, errors.New("constraint violation")).Once()

		comment, err := service.UpdateComment(ctx, &types.UpdateCommentRequest{ID: 10, Comment: &text})

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Nil(t, comment)
	})
}

func TestCommentService_DeleteComment(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockCommentRepository)
	service := NewCommentService(mockRepo, slog.Default())

	mockRepo.On("Delete", mock.Anything, int64(10)).Return(nil).Once()
	mockRepo.On("Delete", mock.Anything, int64(99)).Return(api.ErrNotFound).Once()

	assert.NoError(t, service.DeleteComment(ctx, 10))
	assert.ErrorIs(t, service.DeleteComment(ctx, 99), api.ErrNotFound)
	mockRepo.AssertExpectations(t)
}
