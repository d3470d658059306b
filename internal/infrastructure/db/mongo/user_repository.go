package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codeleap/learning-platform/internal/core/domain"
)

const collectionUsers = "users"

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(collectionUsers)}
}

type mongoUser struct {
	ID                  primitive.ObjectID `bson:"_id,omitempty"`
	Email               string             `bson:"email"`
	Username            string             `bson:"username"`
	FullName            string             `bson:"full_name,omitempty"`
	HashedPassword      string             `bson:"hashed_password"`
	Role                string             `bson:"role"`
	IsActive            bool               `bson:"is_active"`
	IsVerified          bool               `bson:"is_verified"`
	CurrentTrack        string             `bson:"current_track,omitempty"`
	StreakDays          int                `bson:"streak_days"`
	LastActivityDate    *time.Time         `bson:"last_activity_date,omitempty"`
	TotalProblemsSolved int                `bson:"total_problems_solved"`
	DailyGoal           int                `bson:"daily_goal"`
	Preferences         domain.Preferences `bson:"preferences"`
	LastLogout          *time.Time         `bson:"last_logout,omitempty"`
	CreatedAt           time.Time          `bson:"created_at"`
	UpdatedAt           time.Time          `bson:"updated_at"`
}

func (mu *mongoUser) toDomain() *domain.User {
	return &domain.User{
		ID:                  mu.ID.Hex(),
		Email:               mu.Email,
		Username:            mu.Username,
		FullName:            mu.FullName,
		HashedPassword:      mu.HashedPassword,
		Role:                mu.Role,
		IsActive:            mu.IsActive,
		IsVerified:          mu.IsVerified,
		CurrentTrack:        mu.CurrentTrack,
		StreakDays:          mu.StreakDays,
		LastActivityDate:    mu.LastActivityDate,
		TotalProblemsSolved: mu.TotalProblemsSolved,
		DailyGoal:           mu.DailyGoal,
		Preferences:         mu.Preferences,
		LastLogout:          mu.LastLogout,
		CreatedAt:           mu.CreatedAt,
		UpdatedAt:           mu.UpdatedAt,
	}
}

// Insert stores a new user document. The unique indexes on email and username
// reject a concurrent writer that slipped past the service-level lookups.
func (r *UserRepository) Insert(ctx context.Context, user *domain.User) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoUser{
		Email:               user.Email,
		Username:            user.Username,
		FullName:            user.FullName,
		HashedPassword:      user.HashedPassword,
		Role:                user.Role,
		IsActive:            user.IsActive,
		IsVerified:          user.IsVerified,
		CurrentTrack:        user.CurrentTrack,
		StreakDays:          user.StreakDays,
		LastActivityDate:    user.LastActivityDate,
		TotalProblemsSolved: user.TotalProblemsSolved,
		DailyGoal:           user.DailyGoal,
		Preferences:         user.Preferences,
		CreatedAt:           user.CreatedAt,
		UpdatedAt:           user.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			if strings.Contains(err.Error(), "username") {
				return nil, domain.ErrUsernameTaken
			}
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}

	created := *user
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.findOne(ctx, bson.M{"username": username})
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}
	return r.findOne(ctx, bson.M{"_id": oid})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mu mongoUser
	if err := r.coll.FindOne(ctx, filter).Decode(&mu); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return mu.toDomain(), nil
}

// UpdateFields applies a partial $set update to the user document.
func (r *UserRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// IncrementField applies an atomic $inc to a counter field.
func (r *UserRepository) IncrementField(ctx context.Context, id string, field string, delta int) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{field: delta}})
	if err != nil {
		return fmt.Errorf("increment user field: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// EnsureIndexes creates the unique indexes on the users collection.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
