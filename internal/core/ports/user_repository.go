package ports

import (
	"context"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// UserRepository defines the interface for user account persistence.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	// UpdateFields applies a partial $set-style update to the user document.
	UpdateFields(ctx context.Context, id string, fields map[string]any) error
	// IncrementField applies an atomic $inc-style update to a counter field.
	IncrementField(ctx context.Context, id string, field string, delta int) error
}
