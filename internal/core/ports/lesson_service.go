package ports

import (
	"context"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// CreateLessonInput carries the fields for publishing new lesson content.
type CreateLessonInput struct {
	Title            string
	Track            string
	Difficulty       string
	Order            int
	Content          string
	EstimatedMinutes int
	IsPublished      bool
}

type LessonService interface {
	List(ctx context.Context, filter LessonFilter) ([]domain.LessonSummary, error)
	Get(ctx context.Context, id string) (*domain.Lesson, error)
	Create(ctx context.Context, in CreateLessonInput) (*domain.Lesson, error)
}

// CompletionEvent records that a user finished a lesson. Events are processed
// asynchronously by the progress dispatcher, sharded by user ID so per-user
// counter updates stay ordered.
type CompletionEvent struct {
	UserID   string
	LessonID string
}

type ProgressService interface {
	Process(ctx context.Context, event CompletionEvent) error
}
