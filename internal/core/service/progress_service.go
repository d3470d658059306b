package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/codeleap/learning-platform/internal/core/ports"
)

type progressService struct {
	users   ports.UserRepository
	lessons ports.LessonRepository
	log     zerolog.Logger
}

// NewProgressService returns a ProgressService that applies lesson-completion
// events to user progress counters.
func NewProgressService(users ports.UserRepository, lessons ports.LessonRepository, log zerolog.Logger) ports.ProgressService {
	return &progressService{users: users, lessons: lessons, log: log}
}

// Process validates the completion event and bumps the user's solved counter.
// The increment is atomic at the store level, so concurrent completions on the
// same user do not lose updates.
func (s *progressService) Process(ctx context.Context, event ports.CompletionEvent) error {
	if _, err := s.lessons.FindByID(ctx, event.LessonID); err != nil {
		return fmt.Errorf("process completion: %w", err)
	}

	if err := s.users.IncrementField(ctx, event.UserID, "total_problems_solved", 1); err != nil {
		return fmt.Errorf("process completion: %w", err)
	}

	s.log.Debug().
		Str("user_id", event.UserID).
		Str("lesson_id", event.LessonID).
		Msg("lesson completion recorded")
	return nil
}
