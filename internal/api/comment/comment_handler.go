package comment

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

type CommentHandler struct {
	commentService CommentService
	logger         *slog.Logger
}

func NewCommentHandler(commentService CommentService, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		commentService: commentService,
		logger:         logger,
	}
}

// GetComments handles GET /comments.
func (h *CommentHandler) GetComments(w http.ResponseWriter, r *http.Request) {
	comments, err := h.commentService.GetComments(r.Context())
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch comments")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Comments retrieved successfully", comments)
}

// GetComment handles GET /comments/{id}.
func (h *CommentHandler) GetComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid comment id")
		return
	}

	comment, err := h.commentService.GetComment(r.Context(), id)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch comment")
		return
	}
	if comment == nil {
		api.FailResponse(w, r, http.StatusNotFound, "Comment not found")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Comment retrieved successfully", comment)
}

// CreateComment handles POST /comments.
func (h *CommentHandler) CreateComment(w http.ResponseWriter, r *http.Request) {
	var input types.CreateCommentRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	comment, err := h.commentService.CreateComment(r.Context(), &input)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create comment")
		return
	}

	api.SuccessResponse(w, r, http.StatusCreated, "Comment created successfully", comment)
}

// UpdateComment handles PUT /comments/{id}.
func (h *CommentHandler) UpdateComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid comment id")
		return
	}

	var input types.UpdateCommentRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	comment, err := h.commentService.UpdateComment(r.Context(), &input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Comment not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update comment")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Comment updated successfully", comment)
}

// DeleteComment handles DELETE /comments/{id}.
func (h *CommentHandler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid comment id")
		return
	}

	if err := h.commentService.DeleteComment(r.Context(), id); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "Comment not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete comment")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Comment deleted successfully", nil)
}
