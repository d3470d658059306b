package handler

import (
	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
)

type registerRequest struct {
	Email           string `json:"email" validate:"required,email"`
	Username        string `json:"username" validate:"required,min=3,max=50"`
	FullName        string `json:"full_name"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
}

type updateProfileRequest struct {
	FullName     *string `json:"full_name"`
	CurrentTrack *string `json:"current_track"`
}

type registerResponse struct {
	Message string             `json:"message"`
	User    *domain.PublicUser `json:"user"`
}

type loginResponse struct {
	ports.TokenPair
	User *domain.PublicUser `json:"user"`
}
