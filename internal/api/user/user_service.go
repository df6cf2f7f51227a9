package user

import (
	"context"
	"errors"
	"log/slog"

	"github.com/sanedge/blog-api/internal/api"
	"github.com/sanedge/blog-api/internal/api/auth"
	"github.com/sanedge/blog-api/internal/types"
)

var _ UserService = (*UserServiceImpl)(nil)

// UserService is the business contract for user management. Absence on read
// paths is (nil, nil); absence on write paths is api.ErrNotFound. Storage
// failures are logged here and surface only as api.ErrDatabase.
type UserService interface {
	Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	FindByEmail(ctx context.Context, email string) (*types.User, error)
	FindByID(ctx context.Context, id int64) (*types.User, error)
	Update(ctx context.Context, input *types.UpdateUserRequest) (*types.User, error)
	Delete(ctx context.Context, email string) error
}

type UserServiceImpl struct {
	logger *slog.Logger
	repo   UserRepo
	hasher auth.PasswordHasher
}

func NewUserService(repo UserRepo, hasher auth.PasswordHasher, logger *slog.Logger) *UserServiceImpl {
	return &UserServiceImpl{
		logger: logger,
		repo:   repo,
		hasher: hasher,
	}
}

// Create stores a new user. The incoming plaintext password is hashed here so
// admin-created users follow the same hashing policy as registration.
func (s *UserServiceImpl) Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error) {
	l := s.logger.With(slog.String("method", "Create"))

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
	return user, nil
}

func (s *UserServiceImpl) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to check email existence", slog.Any("error", err))
		return false, api.ErrDatabase
	}
	return exists, nil
}

func (s *UserServiceImpl) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch user by email", slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return user, nil
}

func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (*types.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch user by id", slog.Int64("user_id", id), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return user, nil
}

func (s *UserServiceImpl) Update(ctx context.Context, input *types.UpdateUserRequest) (*types.User, error) {
	user, err := s.repo.Update(ctx, input)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return nil, api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to update user", slog.Int64("user_id", input.ID), slog.Any("error", err))
		return nil, api.ErrDatabase
	}
	return user, nil
}

func (s *UserServiceImpl) Delete(ctx context.Context, email string) error {
	err := s.repo.Delete(ctx, email)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			return api.ErrNotFound
		}
		s.logger.ErrorContext(ctx, "Failed to delete user", slog.Any("error", err))
		return api.ErrDatabase
	}
	return nil
}
