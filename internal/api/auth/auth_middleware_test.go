package auth

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanedge/blog-api/internal/api"
)

type MockTokenVerifier struct {
	mock.Mock
}

func (m *MockTokenVerifier) VerifyToken(tokenString string) (int64, error) {
	args := m.Called(tokenString)
	return args.Get(0).(int64), args.Error(1)
}

func TestAuthenticate(t *testing.T) {
	logger := slog.Default()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, ok := GetUserIDFromContext(r.Context())
		assert.True(t, ok)
		assert.Equal(t, int64(7), userID)
		w.WriteHeader(http.StatusOK)
	})

	t.Run("Success", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("VerifyToken", "good-token").Return(int64(7), nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		rec := httptest.NewRecorder()

		Authenticate(logger, verifier)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		verifier.AssertExpectations(t)
	})

	t.Run("MissingHeader", func(t *testing.T) {
		verifier := new(MockTokenVerifier)

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		rec := httptest.NewRecorder()

		Authenticate(logger, verifier)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Authorization header required")
		verifier.AssertNotCalled(t, "VerifyToken", mock.Anything)
	})

	t.Run("MalformedHeader", func(t *testing.T) {
		verifier := new(MockTokenVerifier)

		for _, header := range []string{"good-token", "Basic good-token", "Bearer "} {
			req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
			req.Header.Set("Authorization", header)
			rec := httptest.NewRecorder()

			Authenticate(logger, verifier)(next).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "Bearer {token}")
		}
		verifier.AssertNotCalled(t, "VerifyToken", mock.Anything)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("VerifyToken", "stale-token").Return(int64(0), api.ErrTokenExpired).Once()

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer stale-token")
		rec := httptest.NewRecorder()

		Authenticate(logger, verifier)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has expired")
		verifier.AssertExpectations(t)
	})

	t.Run("InvalidToken", func(t *testing.T) {
		verifier := new(MockTokenVerifier)
		verifier.On("VerifyToken", "bad-token").Return(int64(0), api.ErrInvalidToken).Once()

		req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		rec := httptest.NewRecorder()

		Authenticate(logger, verifier)(next).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid token")
		verifier.AssertExpectations(t)
	})
}

func TestGetUserIDFromContext_Absent(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	userID, ok := GetUserIDFromContext(req.Context())
	assert.False(t, ok)
	assert.Zero(t, userID)
}
