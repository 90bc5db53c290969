package repository

import (
	"context"
	"fmt"
	"time"

	"tutor-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AnalyticsRepository struct {
	Col *mongo.Collection
}

func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{Col: db.Collection("question_analytics")}
}

// EnsureIndexes creates the unique key that makes the upsert atomic per
// (user, quiz, question index).
func (r *AnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.Col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "quiz_id", Value: 1},
				{Key: "question_index", Value: 1},
			},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{
				{Key: "user_id", Value: 1},
				{Key: "next_review", Value: 1},
			},
		},
	})
	return err
}

func (r *AnalyticsRepository) Find(ctx context.Context, userID, quizID string, questionIndex int) (*models.QuestionAnalytics, error) {
	filter := bson.M{
		"user_id":        userID,
		"quiz_id":        quizID,
		"question_index": questionIndex,
	}
	var record models.QuestionAnalytics
	err := r.Col.FindOne(ctx, filter).Decode(&record)
	if err != nil {
		return nil, err
	}
	return &record, nil
}

// Upsert writes the record keyed by (user_id, quiz_id, question_index)
// as a single FindOneAndUpdate, creating it on first contact.
func (r *AnalyticsRepository) Upsert(ctx context.Context, record *models.QuestionAnalytics) (*models.QuestionAnalytics, error) {
	filter := bson.M{
		"user_id":        record.UserID,
		"quiz_id":        record.QuizID,
		"question_index": record.QuestionIndex,
	}
	update := bson.M{
		"$set": bson.M{
			"question_text": record.QuestionText,
			"correct":       record.Correct,
			"repetitions":   record.Repetitions,
			"interval_days": record.IntervalDays,
			"ef":            record.Ef,
			"next_review":   record.NextReview,
			"updated_at":    record.UpdatedAt,
		},
		"$setOnInsert": bson.M{
			"_id":            record.ID,
			"user_id":        record.UserID,
			"quiz_id":        record.QuizID,
			"question_index": record.QuestionIndex,
		},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var updated models.QuestionAnalytics
	err := r.Col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err != nil {
		return nil, fmt.Errorf("failed to upsert question analytics: %w", err)
	}
	return &updated, nil
}

// FindDue returns the user's records with next_review at or before
// asOf, earliest first.
func (r *AnalyticsRepository) FindDue(ctx context.Context, userID string, asOf time.Time) ([]models.QuestionAnalytics, error) {
	filter := bson.M{
		"user_id":     userID,
		"next_review": bson.M{"$lte": asOf},
	}
	opts := options.Find().SetSort(bson.M{"next_review": 1})
	cur, err := r.Col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.QuestionAnalytics
	for cur.Next(ctx) {
		var rec models.QuestionAnalytics
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *AnalyticsRepository) FindByUser(ctx context.Context, userID string) ([]models.QuestionAnalytics, error) {
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.QuestionAnalytics
	for cur.Next(ctx) {
		var rec models.QuestionAnalytics
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// DueUserIDs lists the users who have at least one review due, for the
// reminder sweep.
func (r *AnalyticsRepository) DueUserIDs(ctx context.Context, asOf time.Time) ([]string, error) {
	filter := bson.M{"next_review": bson.M{"$lte": asOf}}
	values, err := r.Col.Distinct(ctx, "user_id", filter)
	if err != nil {
		return nil, err
	}
	users := make([]string, 0, len(values))
	for _, v := range values {
		if id, ok := v.(string); ok {
			users = append(users, id)
		}
	}
	return users, nil
}
