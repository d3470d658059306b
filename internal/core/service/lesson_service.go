package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
)

const defaultListLimit = 20

// LessonService serves published lesson content.
type LessonService struct {
	repo ports.LessonRepository
	log  zerolog.Logger
}

func NewLessonService(repo ports.LessonRepository, log zerolog.Logger) *LessonService {
	return &LessonService{repo: repo, log: log}
}

// List returns summaries of published lessons, ordered by lesson order.
func (s *LessonService) List(ctx context.Context, filter ports.LessonFilter) ([]domain.LessonSummary, error) {
	if filter.Limit <= 0 {
		filter.Limit = defaultListLimit
	}

	lessons, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	summaries := make([]domain.LessonSummary, 0, len(lessons))
	for _, l := range lessons {
		summaries = append(summaries, l.Summary())
	}
	return summaries, nil
}

// Get returns a single published lesson with its content.
func (s *LessonService) Get(ctx context.Context, id string) (*domain.Lesson, error) {
	lesson, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !lesson.IsPublished {
		return nil, domain.ErrLessonNotFound
	}
	return lesson, nil
}

// Create publishes new lesson content. Callers are expected to have passed
// the admin role check already.
func (s *LessonService) Create(ctx context.Context, in ports.CreateLessonInput) (*domain.Lesson, error) {
	if !domain.ValidTrack(in.Track) {
		return nil, domain.ErrInvalidTrack
	}

	now := time.Now().UTC()
	lesson := &domain.Lesson{
		Title:            in.Title,
		Track:            in.Track,
		Difficulty:       in.Difficulty,
		Order:            in.Order,
		Content:          in.Content,
		EstimatedMinutes: in.EstimatedMinutes,
		IsPublished:      in.IsPublished,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	created, err := s.repo.Insert(ctx, lesson)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("lesson_id", created.ID).Str("track", created.Track).Msg("lesson created")
	return created, nil
}
