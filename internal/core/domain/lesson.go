package domain

import "time"

// Lesson difficulty levels.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Lesson is a single unit of learning content within a track.
type Lesson struct {
	ID               string    `json:"id"`
	Title            string    `json:"title"`
	Track            string    `json:"track"`
	Difficulty       string    `json:"difficulty"`
	Order            int       `json:"order"`
	Content          string    `json:"content,omitempty"`
	EstimatedMinutes int       `json:"estimated_minutes"`
	IsPublished      bool      `json:"is_published"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LessonSummary is the listing projection; content is omitted.
type LessonSummary struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	Track            string `json:"track"`
	Difficulty       string `json:"difficulty"`
	Order            int    `json:"order"`
	EstimatedMinutes int    `json:"estimated_minutes"`
}

// Summary projects a lesson for list responses.
func (l *Lesson) Summary() LessonSummary {
	return LessonSummary{
		ID:               l.ID,
		Title:            l.Title,
		Track:            l.Track,
		Difficulty:       l.Difficulty,
		Order:            l.Order,
		EstimatedMinutes: l.EstimatedMinutes,
	}
}
