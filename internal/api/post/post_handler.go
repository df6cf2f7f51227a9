package post

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

type PostHandler struct {
	postService PostService
	logger      *slog.Logger
}

func NewPostHandler(postService PostService, logger *slog.Logger) *PostHandler {
	return &PostHandler{
		postService: postService,
		logger:      logger,
	}
}

// GetPosts handles GET /posts.
func (h *PostHandler) GetPosts(w http.ResponseWriter, r *http.Request) {
	posts, err := h.postService.GetPosts(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch posts")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Posts retrieved successfully", posts)
}

// GetPost handles GET /posts/{id}.
func (h *PostHandler) GetPost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid post id")
		return
	}

	post, err := h.postService.GetPost(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch post")
		return
	}
	if post == nil {
		api.FailResponse(w, r, http.StatusNotFound, "Post not found")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Post retrieved successfully", post)
}

// GetPostRelation handles GET /posts/{id}/relation. A post with no comments
// yields an empty list, not a 404.
func (h *PostHandler) GetPostRelation(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid post id")
		return
	}

	relations, err := h.postService.GetPostRelation(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch post relation")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Post relation retrieved successfully", relations)
}

// CreatePost handles POST /posts.
func (h *PostHandler) CreatePost(w http.ResponseWriter, r *http.Request) {
	var input types.CreatePostRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	post, err := h.postService.CreatePost(r.Context(), &input)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create post")
		return
	}

	api.SuccessResponse(w, r, http.StatusCreated, "Post created successfully", post)
}

// UpdatePost handles PUT /posts/{id}.
func (h *PostHandler) UpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid post id")
		return
	}

	var input types.UpdatePostRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	post, err := h.postService.UpdatePost(r.Context(), &input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Post not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update post")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Post updated successfully", post)
}

// DeletePost handles DELETE /posts/{id}.
func (h *PostHandler) DeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid post id")
		return
	}

	if err := h.postService.DeletePost(r.Context(), id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Post not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete post")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Post deleted successfully", nil)
}
