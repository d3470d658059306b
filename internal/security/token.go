package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// Token type discriminators. Every issued token carries exactly one, and
// callers must check it against the value they expect.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims is the signed payload of both access and refresh tokens.
type Claims struct {
	Email     string `json:"email"`
	Role      string `json:"role"`
	TokenType string `json:"type"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies bearer tokens with a symmetric HS256 secret.
// Construct one instance at startup and inject it; there is no package-level
// signing state.
type TokenCodec struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func NewTokenCodec(secret string, accessTTL, refreshTTL time.Duration) *TokenCodec {
	if accessTTL <= 0 {
		accessTTL = 30 * time.Minute
	}
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &TokenCodec{secret: []byte(secret), accessTTL: accessTTL, refreshTTL: refreshTTL}
}

// IssueAccess mints a short-lived token authorizing API calls.
func (c *TokenCodec) IssueAccess(user *domain.User) (string, error) {
	return c.issue(user, TokenTypeAccess, c.accessTTL)
}

// IssueRefresh mints a long-lived token used solely to mint new access tokens.
func (c *TokenCodec) IssueRefresh(user *domain.User) (string, error) {
	return c.issue(user, TokenTypeRefresh, c.refreshTTL)
}

func (c *TokenCodec) issue(user *domain.User, tokenType string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:     user.Email,
		Role:      user.Role,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the claims. Any parse,
// signature, or expiry failure collapses to ErrInvalidToken; the caller is
// still responsible for checking Claims.TokenType.
func (c *TokenCodec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

// AccessExpirySeconds is the access lifetime reported to clients as expires_in.
func (c *TokenCodec) AccessExpirySeconds() int {
	return int(c.accessTTL.Seconds())
}
