package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/security"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func (r *stubUserRepo) FindByEmail(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByUsername(_ context.Context, _ string) (*domain.User, error) {
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := r.users[id]; ok {
		return u, nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Insert(_ context.Context, u *domain.User) (*domain.User, error) {
	return u, nil
}

func (r *stubUserRepo) UpdateFields(_ context.Context, _ string, _ map[string]any) error {
	return nil
}

func (r *stubUserRepo) IncrementField(_ context.Context, _ string, _ string, _ int) error {
	return nil
}

func testCodec() *security.TokenCodec {
	return security.NewTokenCodec("secret", time.Hour, 24*time.Hour)
}

func activeUser() *domain.User {
	return &domain.User{
		ID:       "user_1",
		Email:    "alice@example.com",
		Username: "alice",
		Role:     domain.RoleStudent,
		IsActive: true,
	}
}

func requestWithToken(token string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func TestAuth_ValidAccessToken(t *testing.T) {
	e := echo.New()
	user := activeUser()
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}
	codec := testCodec()

	token, err := codec.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(token), rec)

	called := false
	handler := Auth(codec, repo)(func(c echo.Context) error {
		called = true
		got, _ := c.Get(UserContextKey).(*domain.User)
		if got == nil || got.ID != "user_1" {
			t.Fatalf("user not injected: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuth_RefreshTokenRejected(t *testing.T) {
	e := echo.New()
	user := activeUser()
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}
	codec := testCodec()

	token, err := codec.IssueRefresh(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(token), rec)

	handler := Auth(codec, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(""), rec)

	handler := Auth(testCodec(), repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := Auth(testCodec(), repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_UnknownSubject(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}
	codec := testCodec()

	token, err := codec.IssueAccess(activeUser())
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(token), rec)

	handler := Auth(codec, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuth_InactiveUser(t *testing.T) {
	e := echo.New()
	user := activeUser()
	user.IsActive = false
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}
	codec := testCodec()

	token, err := codec.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(token), rec)

	handler := Auth(codec, repo)(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestOptionalAuth_NoCredential(t *testing.T) {
	e := echo.New()
	repo := &stubUserRepo{users: map[string]*domain.User{}}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(""), rec)

	called := false
	handler := OptionalAuth(testCodec(), repo)(func(c echo.Context) error {
		called = true
		if c.Get(UserContextKey) != nil {
			t.Fatalf("no user should be injected")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestOptionalAuth_WithCredential(t *testing.T) {
	e := echo.New()
	user := activeUser()
	repo := &stubUserRepo{users: map[string]*domain.User{user.ID: user}}
	codec := testCodec()

	token, err := codec.IssueAccess(user)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(requestWithToken(token), rec)

	handler := OptionalAuth(codec, repo)(func(c echo.Context) error {
		got, _ := c.Get(UserContextKey).(*domain.User)
		if got == nil || got.ID != "user_1" {
			t.Fatalf("user not injected: %+v", got)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}
