package category

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

type CategoryHandler struct {
	categoryService CategoryService
	logger          *slog.Logger
}

func NewCategoryHandler(categoryService CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// GetCategories handles GET /categories.
func (h *CategoryHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.categoryService.GetCategories(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Categories retrieved successfully", categories)
}

// GetCategory handles GET /categories/{id}.
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid category id")
		return
	}

	category, err := h.categoryService.GetCategory(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch category")
		return
	}
	if category == nil {
		api.FailResponse(w, r, http.StatusNotFound, "Category not found")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Category retrieved successfully", category)
}

// CreateCategory handles POST /categories.
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var input types.CreateCategoryRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(r.Context(), &input)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create category")
		return
	}

	api.SuccessResponse(w, r, http.StatusCreated, "Category created successfully", category)
}

// UpdateCategory handles PUT /categories/{id}.
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid category id")
		return
	}

	var input types.UpdateCategoryRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	category, err := h.categoryService.UpdateCategory(r.Context(), &input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Category not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update category")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Category updated successfully", category)
}

// DeleteCategory handles DELETE /categories/{id}.
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid category id")
		return
	}

	if err := h.categoryService.DeleteCategory(r.Context(), id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Category not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete category")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Category deleted successfully", nil)
}
