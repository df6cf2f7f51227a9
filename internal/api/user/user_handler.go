package user

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

type UserHandler struct {
	userService UserService
	logger      *slog.Logger
}

func NewUserHandler(userService UserService, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input types.CreateUserRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Create(r.Context(), &input)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to create user")
		return
	}

	api.SuccessResponse(w, r, http.StatusCreated, "User created successfully", types.NewUserResponse(user))
}

// FindByEmail handles GET /users/email/{email}.
func (h *UserHandler) FindByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := h.userService.FindByEmail(r.Context(), email)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to fetch user")
		return
	}
	if user == nil {
		api.FailResponse(w, r, http.StatusNotFound, "User not found")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "User retrieved successfully", types.NewUserResponse(user))
}

// Update handles PUT /users/{id}.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, "invalid user id")
		return
	}

	var input types.UpdateUserRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	input.ID = id

	user, err := h.userService.Update(r.Context(), &input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "User not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to update user")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "User updated successfully", types.NewUserResponse(user))
}

// Delete handles DELETE /users/{email}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	if err := h.userService.Delete(r.Context(), email); err != nil {
		if errors.Is(err, api.ErrNotFound) {
			api.FailResponse(w, r, http.StatusNotFound, "User not found")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to delete user")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "User deleted successfully", nil)
}
