package auth

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

// MockUserRepository is a mock implementation of the UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*types.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockUserRepository) Create(ctx context.Context, input *types.CreateUserRequest) (*types.User, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

// MockPasswordHasher is a mock implementation of the PasswordHasher interface
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) HashPassword(password string) (string, error) {
	args := m.Called(password)
	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) ComparePassword(hashed, password string) (bool, error) {
	args := m.Called(hashed, password)
	return args.Bool(0), args.Error(1)
}

// MockTokenManager is a mock implementation of the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) CreateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ValidateToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func newTestAuthService(repo *MockUserRepository, hasher *MockPasswordHasher, tokens *MockTokenManager) *AuthServiceImpl {
	return NewAuthService(repo, hasher, tokens, nil, slog.Default())
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	input := &types.RegisterRequest{
		Firstname: "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Password:  "plaintext",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(false, nil).Once()
		mockHasher.On("HashPassword", "plaintext").Return("$2a$10$hashed", nil).Once()
		mockRepo.On("Create", ctx, mock.MatchedBy(func(req *types.CreateUserRequest) bool {
			return req.Email == "ada@example.com" && req.Password == "$2a$10$hashed"
		})).Return(&types.User{
			ID:        1,
			Firstname: "Ada",
			Lastname:  "Lovelace",
			Email:     "ada@example.com",
			Password:  "$2a$10$hashed",
		}, nil).Once()

		response, err := service.Register(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, int64(1), response.ID)
		assert.Equal(t, "ada@example.com", response.Email)
		mockRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(true, nil).Once()

		response, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, api.ErrConflict)
		assert.Nil(t, response)
		mockRepo.AssertExpectations(t)
		mockHasher.AssertNotCalled(t, "HashPassword", mock.Anything)
	})

	t.Run("HashFailure", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(false, nil).Once()
		mockHasher.On("HashPassword", "plaintext").Return("", errors.New("entropy source failed")).Once()

		response, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, api.ErrHashing)
		assert.Nil(t, response)
		mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("ExistsByEmail", ctx, "ada@example.com").Return(false, errors.New("connection refused")).Once()

		response, err := service.Register(ctx, input)

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Nil(t, response)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	input := &types.LoginRequest{
		Email:    "ada@example.com",
		Password: "plaintext",
	}
	storedUser := &types.User{
		ID:       1,
		Email:    "ada@example.com",
		Password: "$2a$10$hashed",
	}

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("FindByEmail", ctx, "ada@example.com").Return(storedUser, nil).Once()
		mockHasher.On("ComparePassword", "$2a$10$hashed", "plaintext").Return(true, nil).Once()
		mockTokens.On("CreateToken", int64(1)).Return("signed.jwt.token", nil).Once()

		token, err := service.Login(ctx, input)

		require.NoError(t, err)
		assert.Equal(t, "signed.jwt.token", token)
		mockRepo.AssertExpectations(t)
		mockHasher.AssertExpectations(t)
		mockTokens.AssertExpectations(t)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("FindByEmail", ctx, "ada@example.com").Return(storedUser, nil).Once()
		mockHasher.On("ComparePassword", "$2a$10$hashed", "plaintext").Return(false, nil).Once()

		token, err := service.Login(ctx, input)

		assert.ErrorIs(t, err, api.ErrInvalidCredentials)
		assert.Empty(t, token)
		mockTokens.AssertNotCalled(t, "CreateToken", mock.Anything)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("FindByEmail", ctx, "ada@example.com").Return(nil, nil).Once()

		token, err := service.Login(ctx, input)

		// Unknown email is indistinguishable from a wrong password.
		assert.ErrorIs(t, err, api.ErrInvalidCredentials)
		assert.Empty(t, token)
		mockHasher.AssertNotCalled(t, "ComparePassword", mock.Anything, mock.Anything)
	})

	t.Run("RepositoryError", func(t *testing.T) {
		mockRepo := new(MockUserRepository)
		mockHasher := new(MockPasswordHasher)
		mockTokens := new(MockTokenManager)
		service := newTestAuthService(mockRepo, mockHasher, mockTokens)

		mockRepo.On("FindByEmail", ctx, "ada@example.com").Return(nil, errors.New("connection refused")).Once()

		token, err := service.Login(ctx, input)

		assert.ErrorIs(t, err, api.ErrDatabase)
		assert.Empty(t, token)
	})
}

func TestAuthService_VerifyToken(t *testing.T) {
	mockRepo := new(MockUserRepository)
	mockHasher := new(MockPasswordHasher)
	mockTokens := new(MockTokenManager)
	service := newTestAuthService(mockRepo, mockHasher, mockTokens)

	mockTokens.On("ValidateToken", "signed.jwt.token").Return(int64(7), nil).Once()
	mockTokens.On("ValidateToken", "expired.jwt.token").Return(int64(0), api.ErrTokenExpired).Once()

	userID, err := service.VerifyToken("signed.jwt.token")
	assert.NoError(t, err)
	assert.Equal(t, int64(7), userID)

	userID, err = service.VerifyToken("expired.jwt.token")
	assert.ErrorIs(t, err, api.ErrTokenExpired)
	assert.Zero(t, userID)
}

func TestIsAuthError(t *testing.T) {
	assert.True(t, IsAuthError(api.ErrInvalidCredentials))
	assert.True(t, IsAuthError(api.ErrTokenExpired))
	assert.True(t, IsAuthError(api.ErrInvalidToken))
	assert.False(t, IsAuthError(api.ErrDatabase))
	assert.False(t, IsAuthError(nil))
}
