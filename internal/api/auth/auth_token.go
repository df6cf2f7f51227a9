package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/sanedge/blog-api/config"
	"github.com/sanedge/blog-api/internal/api"
)

var _ TokenManager = (*JWTManager)(nil)

// TokenManager issues and verifies the stateless session tokens. Validity is
// a pure function of the token, the clock and the signing secret; issued
// tokens cannot be revoked before expiry.
type TokenManager interface {
	// CreateToken issues a signed token embedding the user id with
	// issued-at now and expiry now + TTL.
	CreateToken(userID int64) (string, error)

	// ValidateToken checks signature and expiry and returns the embedded
	// user id. The caller re-resolves the full user from the repository if
	// it needs more than the id.
	ValidateToken(tokenString string) (int64, error)
}

// Claims is the JWT payload: the user id plus the registered claims.
type Claims struct {
	UserID int64 `json:"user_id"`
	jwt.RegisteredClaims
}

type JWTManager struct {
	secretKey []byte
	tokenTTL  time.Duration
	issuer    string
	now       func() time.Time
}

func NewJWTManager(cfg config.JWTConfig) *JWTManager {
	return &JWTManager{
		secretKey: []byte(cfg.SecretKey),
		tokenTTL:  cfg.TokenTTL,
		issuer:    cfg.Issuer,
		now:       time.Now,
	}
}

func (m *JWTManager) CreateToken(userID int64) (string, error) {
	now := m.now()
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (m *JWTManager) ValidateToken(tokenString string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secretKey, nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, api.ErrTokenExpired
		}
		return 0, api.ErrInvalidToken
	}
	if !token.Valid {
		return 0, api.ErrInvalidToken
	}

	return claims.UserID, nil
}
