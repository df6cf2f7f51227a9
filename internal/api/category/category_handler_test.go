package category

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

// MockCategoryService is a mock implementation of the CategoryService interface
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) GetCategories(ctx context.Context) ([]types.Category, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Category), args.Error(1)
}

func (m *MockCategoryService) GetCategory(ctx context.Context, id int64) (*types.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Category), args.Error(1)
}

func (m *MockCategoryService) CreateCategory(ctx context.Context, input *types.CreateCategoryRequest) (*types.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateCategory(ctx context.Context, input *types.UpdateCategoryRequest) (*types.Category, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteCategory(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func newCategoryTestRouter(service CategoryService) chi.Router {
	handler := NewCategoryHandler(service, slog.Default())
	r := chi.NewRouter()
	r.Get("/categories", handler.GetCategories)
	r.Get("/categories/{id}", handler.GetCategory)
	r.Post("/categories", handler.CreateCategory)
	r.Put("/categories/{id}", handler.UpdateCategory)
	r.Delete("/categories/{id}", handler.DeleteCategory)
	return r
}

func TestCategoryHandler_GetCategories(t *testing.T) {
	mockService := new(MockCategoryService)
	router := newCategoryTestRouter(mockService)

	mockService.On("GetCategories", mock.Anything).
		Return([]types.Category{{ID: 1, Name: "golang"}}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/categories", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp api.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, api.StatusSuccess, resp.Status)
	assert.Equal(t, "Categories retrieved successfully", resp.Message)
	mockService.AssertExpectations(t)
}

func TestCategoryHandler_GetCategory(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		mockService.On("GetCategory", mock.Anything, int64(1)).
			Return(&types.Category{ID: 1, Name: "golang"}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/categories/1", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "golang")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		mockService.On("GetCategory", mock.Anything, int64(99)).Return(nil, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/categories/99", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)

		var resp api.Response
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, api.StatusFail, resp.Status)
	})

	t.Run("BadID", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		req := httptest.NewRequest(http.MethodGet, "/categories/not-a-number", nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "GetCategory", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_CreateCategory(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		mockService.On("CreateCategory", mock.Anything, &types.CreateCategoryRequest{Name: "golang"}).
			Return(&types.Category{ID: 1, Name: "golang"}, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":"golang"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		mockService.AssertExpectations(t)
	})

	t.Run("InvalidJSON", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		req := httptest.NewRequest(http.MethodPost, "/categories", strings.NewReader(`{"name":`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		mockService.AssertNotCalled(t, "CreateCategory", mock.Anything, mock.Anything)
	})
}

func TestCategoryHandler_UpdateCategory(t *testing.T) {
	t.Run("NotFound", func(t *testing.T) {
		mockService := new(MockCategoryService)
		router := newCategoryTestRouter(mockService)

		mockService.On("UpdateCategory", mock.Anything, mock.MatchedBy(func(req *types.UpdateCategoryRequest) bool {
			return req.ID == 99
		})).Return(nil, api.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodPut, "/categories/99", strings.NewReader(`{"name":"renamed"}`))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCategoryHandler_DeleteCategory(t *testing.T) {
	mockService := new(MockCategoryService)
	router := newCategoryTestRouter(mockService)

	mockService.On("DeleteCategory", mock.Anything, int64(1)).Return(nil).Once()

	req := httptest.NewRequest(http.MethodDelete, "/categories/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	mockService.AssertExpectations(t)
}
