package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"

	"github.com/yumyum-spot/menu-service/internal/domain"
)

// MinSecretLength is the minimum accepted HMAC secret size in bytes. Shorter
// secrets make HS256 tokens practical to brute-force offline.
const MinSecretLength = 32

// Sentinel validation failures surfaced by ParseToken.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
)

// TokenManager handles issuing and validating JWT tokens.
//
// Tokens carry no issuer or audience claims and ParseToken does not validate
// them. Callers needing multi-tenant isolation must layer those checks on top.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenManager builds a new manager. Secrets below MinSecretLength are rejected.
func NewTokenManager(secret string, ttlDays int) (*TokenManager, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwt secret must be at least %d bytes, got %d", MinSecretLength, len(secret))
	}
	if ttlDays <= 0 {
		ttlDays = 7
	}
	return &TokenManager{secret: []byte(secret), ttl: time.Duration(ttlDays) * 24 * time.Hour}, nil
}

// Claims describes the JWT payload asserted for a logged-in user.
type Claims struct {
	UserID   string          `json:"id"`
	FullName string          `json:"fullname"`
	Email    string          `json:"email"`
	Role     domain.RoleName `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// GenerateToken builds and signs a JWT for the user. An empty role means the
// user has no role assignment and the claim is omitted.
func (tm *TokenManager) GenerateToken(user *domain.User, role domain.RoleName) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(tm.ttl)
	claims := &Claims{
		UserID:   user.ID,
		FullName: user.Name,
		Email:    user.Email,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(tm.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseToken validates structure, signature and expiry, and returns claims.
func (tm *TokenManager) ParseToken(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return tm.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, ErrTokenMalformed
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		default:
			return nil, err
		}
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok || !parsed.Valid {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}
