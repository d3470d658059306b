package service

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
	"github.com/codeleap/learning-platform/internal/security"
)

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

// LoginLimiter abstracts the failed-attempt throttle (Redis).
type LoginLimiter interface {
	Blocked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}

// AuthService orchestrates registration, login, token refresh, and account
// maintenance on top of the user store.
type AuthService struct {
	repo    ports.UserRepository
	hasher  *security.PasswordHasher
	codec   *security.TokenCodec
	limiter LoginLimiter
	log     zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher *security.PasswordHasher,
	codec *security.TokenCodec,
	limiter LoginLimiter,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, codec: codec, limiter: limiter, log: log}
}

// Register creates a new student account. Uniqueness is checked by lookup
// before insert; the unique indexes on the collection close the remaining
// race window by rejecting the second writer.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.PublicUser, error) {
	if in.Password != in.ConfirmPassword {
		return nil, domain.ErrPasswordMismatch
	}

	username := strings.ToLower(strings.TrimSpace(in.Username))
	if len(username) < 3 || len(username) > 50 || !usernamePattern.MatchString(username) {
		return nil, domain.ErrInvalidUsername
	}

	if err := security.ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	if _, err := s.repo.FindByUsername(ctx, username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:          in.Email,
		Username:       username,
		FullName:       in.FullName,
		HashedPassword: hash,
		Role:           domain.RoleStudent,
		IsActive:       true,
		DailyGoal:      3,
		Preferences:    domain.DefaultPreferences(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	created, err := s.repo.Insert(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Str("username", created.Username).Msg("user registered")
	return created.Public(), nil
}

// Login verifies credentials and issues an access/refresh token pair. The
// "invalid email or password" error is identical for unknown email and wrong
// password so callers cannot enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.TokenPair, *domain.PublicUser, error) {
	if blocked, err := s.limiter.Blocked(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter unavailable, allowing attempt")
	} else if blocked {
		return nil, nil, domain.ErrTooManyAttempts
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, nil, s.failedAttempt(ctx, email)
		}
		return nil, nil, err
	}

	if !s.hasher.Verify(password, user.HashedPassword) {
		return nil, nil, s.failedAttempt(ctx, email)
	}

	if !user.IsActive {
		return nil, nil, domain.ErrAccountInactive
	}

	accessToken, err := s.codec.IssueAccess(user)
	if err != nil {
		return nil, nil, err
	}
	refreshToken, err := s.codec.IssueRefresh(user)
	if err != nil {
		return nil, nil, err
	}

	// Streak takes the pre-login activity date as input; writing the new
	// date first and then reading it back would freeze every streak.
	now := time.Now().UTC()
	streak := domain.NextStreak(user.LastActivityDate, user.StreakDays, now)

	if err := s.repo.UpdateFields(ctx, user.ID, map[string]any{
		"last_activity_date": now,
		"streak_days":        streak,
		"updated_at":         now,
	}); err != nil {
		return nil, nil, err
	}

	if err := s.limiter.Reset(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter reset failed")
	}

	user.StreakDays = streak
	user.LastActivityDate = &now

	s.log.Info().Str("user_id", user.ID).Int("streak_days", streak).Msg("login succeeded")

	pair := &ports.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
		ExpiresIn:    s.codec.AccessExpirySeconds(),
	}
	return pair, user.Public(), nil
}

func (s *AuthService) failedAttempt(ctx context.Context, email string) error {
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("login limiter record failed")
	}
	return domain.ErrInvalidCredentials
}

// Refresh mints a new access token from a valid refresh token. The refresh
// token itself is not rotated.
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*ports.TokenPair, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.TokenType != security.TokenTypeRefresh {
		return nil, domain.ErrWrongTokenType
	}

	user, err := s.repo.FindByID(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, domain.ErrAccountInactive
	}

	accessToken, err := s.codec.IssueAccess(user)
	if err != nil {
		return nil, err
	}

	return &ports.TokenPair{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   s.codec.AccessExpirySeconds(),
	}, nil
}

// Logout records the logout time for audit purposes. Tokens are stateless, so
// an already-issued token stays valid until its natural expiry.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.repo.UpdateFields(ctx, userID, map[string]any{
		"last_logout": time.Now().UTC(),
	})
}

// ChangePassword verifies the current password and stores a new hash. The new
// password goes through the same strength policy as registration.
func (s *AuthService) ChangePassword(ctx context.Context, userID, currentPassword, newPassword string) error {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return err
	}

	if !s.hasher.Verify(currentPassword, user.HashedPassword) {
		return domain.ErrIncorrectPassword
	}

	if err := security.ValidatePassword(newPassword); err != nil {
		return err
	}

	hash, err := s.hasher.Hash(newPassword)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateFields(ctx, userID, map[string]any{
		"hashed_password": hash,
		"updated_at":      time.Now().UTC(),
	}); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("password changed")
	return nil
}

// UpdateProfile applies a partial update; nil fields are left untouched.
func (s *AuthService) UpdateProfile(ctx context.Context, userID string, update ports.ProfileUpdate) (*domain.PublicUser, error) {
	fields := map[string]any{"updated_at": time.Now().UTC()}

	if update.FullName != nil {
		fields["full_name"] = *update.FullName
	}
	if update.CurrentTrack != nil {
		if !domain.ValidTrack(*update.CurrentTrack) {
			return nil, domain.ErrInvalidTrack
		}
		fields["current_track"] = *update.CurrentTrack
	}

	if err := s.repo.UpdateFields(ctx, userID, fields); err != nil {
		return nil, err
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}

// Me returns the sanitized record for the given user.
func (s *AuthService) Me(ctx context.Context, userID string) (*domain.PublicUser, error) {
	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return user.Public(), nil
}
