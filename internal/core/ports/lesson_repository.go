package ports

import (
	"context"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

// LessonFilter narrows lesson listings. Zero values mean "no filter".
type LessonFilter struct {
	Track      string
	Difficulty string
	Skip       int
	Limit      int
}

// LessonRepository defines the interface for lesson content persistence.
type LessonRepository interface {
	List(ctx context.Context, filter LessonFilter) ([]*domain.Lesson, error)
	FindByID(ctx context.Context, id string) (*domain.Lesson, error)
	Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error)
}
