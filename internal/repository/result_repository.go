package repository

import (
	"context"

	"tutor-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ResultRepository struct {
	Col *mongo.Collection
}

func NewResultRepository(db *mongo.Database) *ResultRepository {
	return &ResultRepository{Col: db.Collection("results")}
}

// Create appends a result. Results are never updated afterwards.
func (r *ResultRepository) Create(ctx context.Context, result *models.QuizResult) error {
	_, err := r.Col.InsertOne(ctx, result)
	return err
}

func (r *ResultRepository) FindByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	opts := options.Find().SetSort(bson.M{"created_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var results []models.QuizResult
	for cur.Next(ctx) {
		var res models.QuizResult
		if err := cur.Decode(&res); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// FindLatestByQuizzes returns the user's most recent result among the
// given quiz ids. mongo.ErrNoDocuments signals that none of the quizzes
// has ever been attempted.
func (r *ResultRepository) FindLatestByQuizzes(ctx context.Context, userID string, quizIDs []string) (*models.QuizResult, error) {
	filter := bson.M{
		"user_id": userID,
		"quiz_id": bson.M{"$in": quizIDs},
	}
	opts := options.FindOne().SetSort(bson.M{"created_at": -1})

	var result models.QuizResult
	err := r.Col.FindOne(ctx, filter, opts).Decode(&result)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
