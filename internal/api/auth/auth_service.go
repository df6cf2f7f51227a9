package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanedge/blog-api/app/observability/metrics"
	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

// UserRepository is the slice of the user capability set the auth flows need.
// The concrete implementation lives in the user package.
type UserRepository interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error)
}

// AuthService orchestrates registration, login and token verification.
type AuthService interface {
	Register(ctx context.Context, input *types.RegisterRequest) (*types.UserResponse, error)
	Login(ctx context.Context, input *types.LoginRequest) (string, error)
	VerifyToken(tokenString string) (int64, error)
}

type AuthServiceImpl struct {
	logger  *slog.Logger
	repo    UserRepository
	hasher  PasswordHasher
	tokens  TokenManager
	metrics *metrics.AppMetrics
}

// NewAuthService creates a new auth service. metrics may be nil when the
// instruments are not wired (unit tests).
func NewAuthService(repo UserRepository, hasher PasswordHasher, tokens TokenManager, m *metrics.AppMetrics, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger:  logger,
		repo:    repo,
		hasher:  hasher,
		tokens:  tokens,
		metrics: m,
	}
}

// Register creates a new user. The stored password is the hash, never the
// plaintext, and the returned projection never contains the hash.
func (s *AuthServiceImpl) Register(ctx context.Context, input *types.RegisterRequest) (*types.UserResponse, error) {
	l := s.logger.With(slog.String("method", "Register"))
	if s.metrics != nil {
		s.metrics.RegisterRequestsTotal.Add(ctx, 1)
	}

	exists, err := s.repo.ExistsByEmail(ctx, input.Email)
	if err != nil {
		l.ErrorContext(ctx, "Failed to check email existence", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	if exists {
		return nil, api.ErrConflict
	}

	hashedPassword, err := s.hasher.HashPassword(input.Password)
	if err != nil {
		l.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		return nil, api.ErrHashing
	}

	user, err := s.repo.Create(ctx, &types.CreateUserRequest{
		Firstname: input.Firstname,
		Lastname:  input.Lastname,
		Email:     input.Email,
		Password:  hashedPassword,
	})
	if err != nil {
		l.ErrorContext(ctx, "Failed to create user", slog.Any("error", err))
		return nil, api.ErrDatabase
	}

	l.InfoContext(ctx, "User registered", slog.Int64("user_id", user.ID))
	response := types.NewUserResponse(user)
	return &response, nil
}

// Login verifies credentials and issues a session token. A missing user and
// a wrong password both surface as ErrInvalidCredentials so the endpoint
// cannot be used to enumerate registered emails.
func (s *AuthServiceImpl) Login(ctx context.Context, input *types.LoginRequest) (string, error) {
	l := s.logger.With(slog.String("method", "Login"))
	if s.metrics != nil {
		s.metrics.LoginRequestsTotal.Add(ctx, 1)
	}

	user, err := s.repo.FindByEmail(ctx, input.Email)
	if err != nil {
		l.ErrorContext(ctx, "Failed to fetch user by email", slog.Any("error", err))
		return "", api.ErrDatabase
	}
	if user == nil {
		s.recordLoginFailure(ctx)
		return "", api.ErrInvalidCredentials
	}

	match, err := s.hasher.ComparePassword(user.Password, input.Password)
	if err != nil {
		l.ErrorContext(ctx, "Failed to compare password", slog.Any("error", err))
		return "", api.ErrHashing
	}
	if !match {
		s.recordLoginFailure(ctx)
		return "", api.ErrInvalidCredentials
	}

	token, err := s.tokens.CreateToken(user.ID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to issue token", slog.Any("error", err))
		return "", err
	}

	l.InfoContext(ctx, "Login successful", slog.Int64("user_id", user.ID))
	return token, nil
}

// VerifyToken delegates to the token manager.
func (s *AuthServiceImpl) VerifyToken(tokenString string) (int64, error) {
	return s.tokens.ValidateToken(tokenString)
}

func (s *AuthServiceImpl) recordLoginFailure(ctx context.Context) {
	if s.metrics != nil {
		s.metrics.LoginFailuresTotal.Add(ctx, 1)
	}
}

// IsAuthError reports whether err belongs to the credential/token family that
// maps to a 401 at the boundary.
func IsAuthError(err error) bool {
	return errors.Is(err, api.ErrInvalidCredentials) ||
		errors.Is(err, api.ErrUnauthenticated) ||
		errors.Is(err, api.ErrInvalidToken) ||
		errors.Is(err, api.ErrTokenExpired)
}
