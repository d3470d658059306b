package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/codeleap/learning-platform/internal/core/domain"
	"github.com/codeleap/learning-platform/internal/core/ports"
)

const collectionLessons = "lessons"

type LessonRepository struct {
	coll *mongo.Collection
}

func NewLessonRepository(db *mongo.Database) *LessonRepository {
	return &LessonRepository{coll: db.Collection(collectionLessons)}
}

type mongoLesson struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Title            string             `bson:"title"`
	Track            string             `bson:"track"`
	Difficulty       string             `bson:"difficulty"`
	Order            int                `bson:"order"`
	Content          string             `bson:"content"`
	EstimatedMinutes int                `bson:"estimated_minutes"`
	IsPublished      bool               `bson:"is_published"`
	CreatedAt        time.Time          `bson:"created_at"`
	UpdatedAt        time.Time          `bson:"updated_at"`
}

func (ml *mongoLesson) toDomain() *domain.Lesson {
	return &domain.Lesson{
		ID:               ml.ID.Hex(),
		Title:            ml.Title,
		Track:            ml.Track,
		Difficulty:       ml.Difficulty,
		Order:            ml.Order,
		Content:          ml.Content,
		EstimatedMinutes: ml.EstimatedMinutes,
		IsPublished:      ml.IsPublished,
		CreatedAt:        ml.CreatedAt,
		UpdatedAt:        ml.UpdatedAt,
	}
}

// List returns published lessons matching the filter, ordered by lesson order.
func (r *LessonRepository) List(ctx context.Context, filter ports.LessonFilter) ([]*domain.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{"is_published": true}
	if filter.Track != "" {
		query["track"] = filter.Track
	}
	if filter.Difficulty != "" {
		query["difficulty"] = filter.Difficulty
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetSkip(int64(filter.Skip)).
		SetLimit(int64(filter.Limit))

	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	defer cursor.Close(ctx)

	var lessons []*domain.Lesson
	for cursor.Next(ctx) {
		var ml mongoLesson
		if err := cursor.Decode(&ml); err != nil {
			return nil, fmt.Errorf("decode lesson: %w", err)
		}
		lessons = append(lessons, ml.toDomain())
	}
	if err := cursor.Err(); err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}
	return lessons, nil
}

func (r *LessonRepository) FindByID(ctx context.Context, id string) (*domain.Lesson, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrLessonNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var ml mongoLesson
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ml); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrLessonNotFound
		}
		return nil, fmt.Errorf("find lesson: %w", err)
	}
	return ml.toDomain(), nil
}

func (r *LessonRepository) Insert(ctx context.Context, lesson *domain.Lesson) (*domain.Lesson, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoLesson{
		Title:            lesson.Title,
		Track:            lesson.Track,
		Difficulty:       lesson.Difficulty,
		Order:            lesson.Order,
		Content:          lesson.Content,
		EstimatedMinutes: lesson.EstimatedMinutes,
		IsPublished:      lesson.IsPublished,
		CreatedAt:        lesson.CreatedAt,
		UpdatedAt:        lesson.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert lesson: %w", err)
	}

	created := *lesson
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

// EnsureIndexes creates the query indexes on the lessons collection.
func (r *LessonRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "track", Value: 1}, {Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "is_published", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
