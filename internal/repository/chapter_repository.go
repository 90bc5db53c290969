package repository

import (
	"context"

	"tutor-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChapterRepository struct {
	Col *mongo.Collection
}

func NewChapterRepository(db *mongo.Database) *ChapterRepository {
	return &ChapterRepository{Col: db.Collection("chapters")}
}

// FindByRoadmap returns a roadmap's chapters ordered by position, which
// is the traversal order the recommendation scan relies on.
func (r *ChapterRepository) FindByRoadmap(ctx context.Context, roadmapID string) ([]models.Chapter, error) {
	opts := options.Find().SetSort(bson.M{"position": 1})
	cur, err := r.Col.Find(ctx, bson.M{"roadmap_id": roadmapID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var chapters []models.Chapter
	for cur.Next(ctx) {
		var ch models.Chapter
		if err := cur.Decode(&ch); err != nil {
			return nil, err
		}
		chapters = append(chapters, ch)
	}
	return chapters, nil
}

func (r *ChapterRepository) FindByID(ctx context.Context, id string) (*models.Chapter, error) {
	var chapter models.Chapter
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&chapter)
	if err != nil {
		return nil, err
	}
	return &chapter, nil
}

func (r *ChapterRepository) Create(ctx context.Context, chapter *models.Chapter) error {
	_, err := r.Col.InsertOne(ctx, chapter)
	return err
}
