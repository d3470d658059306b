package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/codeleap/learning-platform/internal/api/middleware"
	"github.com/codeleap/learning-platform/internal/core/domain"
)

// CurrentUser extracts the user injected by the Auth middleware. Its presence
// proves the middleware ran; a nil user on a protected route means the route
// was wired without the guard, so fail closed with 401.
func CurrentUser(c echo.Context) (*domain.User, error) {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	if user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}

// OptionalUser returns the authenticated user or nil when the request carried
// no valid credential.
func OptionalUser(c echo.Context) *domain.User {
	user, _ := c.Get(middleware.UserContextKey).(*domain.User)
	return user
}
