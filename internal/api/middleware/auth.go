package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
	"github.com/codeleap/learning-platform/internal/security"
)

// UserContextKey is where Auth stores the resolved *domain.User.
const UserContextKey = "user"

// Auth resolves the bearer token into a full user record and injects it into
// the request context. Every failure in the chain (missing header, bad
// signature, expired token, refresh token presented as access, unknown or
// inactive user) collapses to a plain 401 so callers cannot tell which factor
// failed.
func Auth(codec *security.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			user, err := resolve(c, codec, users, token)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "unauthorized")
			}

			c.Set(UserContextKey, user)
			return next(c)
		}
	}
}

// OptionalAuth behaves like Auth but proceeds without a user when no valid
// credential is presented, for endpoints with mixed anonymous behaviour.
func OptionalAuth(codec *security.TokenCodec, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if token, ok := bearerToken(c); ok {
				if user, err := resolve(c, codec, users, token); err == nil {
					c.Set(UserContextKey, user)
				}
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}

func resolve(c echo.Context, codec *security.TokenCodec, users ports.UserRepository, token string) (*domain.User, error) {
	claims, err := codec.Decode(token)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != security.TokenTypeAccess {
		return nil, echo.ErrUnauthorized
	}

	user, err := users.FindByID(c.Request().Context(), claims.Subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, echo.ErrUnauthorized
	}
	return user, nil
}
