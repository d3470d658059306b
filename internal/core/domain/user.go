package domain

import "time"

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// Learning tracks a user can enrol in.
const (
	TrackJavaDSA     = "java_dsa"
	TrackDataScience = "data_science"
	TrackAIEngineer  = "ai_engineer"
)

// ValidTrack reports whether t names a known learning track.
func ValidTrack(t string) bool {
	switch t {
	case TrackJavaDSA, TrackDataScience, TrackAIEngineer:
		return true
	}
	return false
}

// Preferences holds per-user editor and notification settings.
type Preferences struct {
	Theme                string `json:"theme" bson:"theme"`
	EditorFontSize       int    `json:"editor_font_size" bson:"editor_font_size"`
	NotificationsEnabled bool   `json:"notifications_enabled" bson:"notifications_enabled"`
}

// DefaultPreferences returns the settings applied to every new account.
func DefaultPreferences() Preferences {
	return Preferences{Theme: "dark", EditorFontSize: 14, NotificationsEnabled: true}
}

// User models a platform account. HashedPassword never leaves the core.
type User struct {
	ID                  string
	Email               string
	Username            string
	FullName            string
	HashedPassword      string
	Role                string
	IsActive            bool
	IsVerified          bool
	CurrentTrack        string
	StreakDays          int
	LastActivityDate    *time.Time
	TotalProblemsSolved int
	DailyGoal           int
	Preferences         Preferences
	LastLogout          *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// PublicUser is the sanitized projection returned to clients.
type PublicUser struct {
	ID                  string    `json:"id"`
	Email               string    `json:"email"`
	Username            string    `json:"username"`
	FullName            string    `json:"full_name,omitempty"`
	Role                string    `json:"role"`
	IsActive            bool      `json:"is_active"`
	CurrentTrack        string    `json:"current_track,omitempty"`
	StreakDays          int       `json:"streak_days"`
	TotalProblemsSolved int       `json:"total_problems_solved"`
	CreatedAt           time.Time `json:"created_at"`
}

// Public strips credentials and internal bookkeeping from the record.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:                  u.ID,
		Email:               u.Email,
		Username:            u.Username,
		FullName:            u.FullName,
		Role:                u.Role,
		IsActive:            u.IsActive,
		CurrentTrack:        u.CurrentTrack,
		StreakDays:          u.StreakDays,
		TotalProblemsSolved: u.TotalProblemsSolved,
		CreatedAt:           u.CreatedAt,
	}
}
