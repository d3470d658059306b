package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
)

type stubLessonRepo struct {
	lessons map[string]*domain.Lesson
	nextID  int
}

func newStubLessonRepo() *stubLessonRepo {
	return &stubLessonRepo{lessons: make(map[string]*domain.Lesson)}
}

func (r *stubLessonRepo) List(_ context.Context, filter ports.LessonFilter) ([]*domain.Lesson, error) {
	var out []*domain.Lesson
	for _, l := range r.lessons {
		if !l.IsPublished {
			continue
		}
		if filter.Track != "" && l.Track != filter.Track {
			continue
		}
		if filter.Difficulty != "" && l.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (r *stubLessonRepo) FindByID(_ context.Context, id string) (*domain.Lesson, error) {
	if l, ok := r.lessons[id]; ok {
		clone := *l
		return &clone, nil
	}
	return nil, domain.ErrLessonNotFound
}

func (r *stubLessonRepo) Insert(_ context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	r.nextID++
	clone := *lesson
	clone.ID = "lesson_" + strconv.Itoa(r.nextID)
	r.lessons[clone.ID] = &clone
	created := clone
	return &created, nil
}

func addLesson(r *stubLessonRepo, track string, published bool) *domain.Lesson {
	r.nextID++
	l := &domain.Lesson{
		ID:          "lesson_" + strconv.Itoa(r.nextID),
		Title:       "Lesson " + strconv.Itoa(r.nextID),
		Track:       track,
		Difficulty:  domain.DifficultyBeginner,
		Order:       r.nextID,
		Content:     "content",
		IsPublished: published,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}
	r.lessons[l.ID] = l
	return l
}

func TestLessonService_List_FiltersByTrack(t *testing.T) {
	repo := newStubLessonRepo()
	svc := NewLessonService(repo, zerolog.Nop())

	addLesson(repo, domain.TrackJavaDSA, true)
	addLesson(repo, domain.TrackDataScience, true)
	addLesson(repo, domain.TrackJavaDSA, false)

	summaries, err := svc.List(context.Background(), ports.LessonFilter{Track: domain.TrackJavaDSA})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 published java_dsa lesson, got %d", len(summaries))
	}
}

func TestLessonService_Get_UnpublishedHidden(t *testing.T) {
	repo := newStubLessonRepo()
	svc := NewLessonService(repo, zerolog.Nop())

	draft := addLesson(repo, domain.TrackJavaDSA, false)
	if _, err := svc.Get(context.Background(), draft.ID); !errors.Is(err, domain.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound for draft, got %v", err)
	}

	published := addLesson(repo, domain.TrackJavaDSA, true)
	lesson, err := svc.Get(context.Background(), published.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if lesson.Content == "" {
		t.Fatalf("expected lesson content")
	}
}

func TestLessonService_Create_InvalidTrack(t *testing.T) {
	svc := NewLessonService(newStubLessonRepo(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateLessonInput{
		Title: "Intro",
		Track: "underwater_basket_weaving",
	})
	if !errors.Is(err, domain.ErrInvalidTrack) {
		t.Fatalf("expected ErrInvalidTrack, got %v", err)
	}
}

func TestProgressService_Process(t *testing.T) {
	users := newStubUserRepo()
	lessons := newStubLessonRepo()
	lesson := addLesson(lessons, domain.TrackJavaDSA, true)

	user, err := users.Insert(context.Background(), &domain.User{Email: "a@x.com", Username: "alice"})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}

	svc := NewProgressService(users, lessons, zerolog.Nop())

	if err := svc.Process(context.Background(), ports.CompletionEvent{UserID: user.ID, LessonID: lesson.ID}); err != nil {
		t.Fatalf("process failed: %v", err)
	}
	if got := users.users[user.ID].TotalProblemsSolved; got != 1 {
		t.Fatalf("expected counter 1, got %d", got)
	}

	if err := svc.Process(context.Background(), ports.CompletionEvent{UserID: user.ID, LessonID: "missing"}); !errors.Is(err, domain.ErrLessonNotFound) {
		t.Fatalf("expected ErrLessonNotFound, got %v", err)
	}
}
