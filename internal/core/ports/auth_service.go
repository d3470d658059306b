package ports

import (
	"context"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Email           string
	Username        string
	FullName        string
	Password        string
	ConfirmPassword string
}

// TokenPair is the credential set handed to the client at login.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int    `json:"expires_in"`
}

// ProfileUpdate carries the optional profile fields; nil means leave as-is.
type ProfileUpdate struct {
	FullName     *string
	CurrentTrack *string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.PublicUser, error)
	Login(ctx context.Context, email, password string) (*TokenPair, *domain.PublicUser, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	Logout(ctx context.Context, userID string) error
	ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error
	UpdateProfile(ctx context.Context, userID string, update ProfileUpdate) (*domain.PublicUser, error)
	Me(ctx context.Context, userID string) (*domain.PublicUser, error)
}
