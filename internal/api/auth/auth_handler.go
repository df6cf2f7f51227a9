package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

// UserGetter is the slice of the user service the /auth/me endpoint needs.
type UserGetter interface {
	FindByID(ctx context.Context, id int64) (*types.User, error)
}

type AuthHandler struct {
	authService AuthService
	users       UserGetter
	logger      *slog.Logger
}

func NewAuthHandler(authService AuthService, users UserGetter, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		users:       users,
		logger:      logger,
	}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input types.RegisterRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if input.Email == "" || input.Password == "" {
		api.FailResponse(w, r, http.StatusBadRequest, "email and password are required")
		return
	}

	user, err := h.authService.Register(r.Context(), &input)
	if err != nil {
		if errors.Is(err, api.ErrConflict) {
			api.FailResponse(w, r, http.StatusConflict, "Email already registered")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to register user")
		return
	}

	api.SuccessResponse(w, r, http.StatusCreated, "User registered successfully", user)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input types.LoginRequest
	if err := api.DecodeJSONBody(w, r, &input); err != nil {
		api.FailResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	token, err := h.authService.Login(r.Context(), &input)
	if err != nil {
		if IsAuthError(err) {
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Invalid email or password")
			return
		}
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to log in")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "Login successful", types.LoginResponse{Token: token})
}

// Me handles GET /auth/me; it re-resolves the authenticated user from storage
// since the token only carries the id.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetUserIDFromContext(r.Context())
	if !ok {
		api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	user, err := h.users.FindByID(r.Context(), userID)
	if err != nil {
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Could not fetch user")
		return
	}
	if user == nil {
		api.FailResponse(w, r, http.StatusNotFound, "User not found")
		return
	}

	api.SuccessResponse(w, r, http.StatusOK, "User fetched successfully", types.NewUserResponse(user))
}
