package repository

import (
	"context"

	"tutor-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RoadmapRepository struct {
	Col *mongo.Collection
}

func NewRoadmapRepository(db *mongo.Database) *RoadmapRepository {
	return &RoadmapRepository{Col: db.Collection("roadmaps")}
}

func (r *RoadmapRepository) FindAll(ctx context.Context) ([]models.Roadmap, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	cur, err := r.Col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var roadmaps []models.Roadmap
	for cur.Next(ctx) {
		var rm models.Roadmap
		if err := cur.Decode(&rm); err != nil {
			return nil, err
		}
		roadmaps = append(roadmaps, rm)
	}
	return roadmaps, nil
}

func (r *RoadmapRepository) FindByID(ctx context.Context, id string) (*models.Roadmap, error) {
	var roadmap models.Roadmap
	err := r.Col.FindOne(ctx, bson.M{"_id": id}).Decode(&roadmap)
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

// FindFirst returns the oldest roadmap, used as the default when a
// client does not name one.
func (r *RoadmapRepository) FindFirst(ctx context.Context) (*models.Roadmap, error) {
	opts := options.FindOne().SetSort(bson.M{"created_at": 1})
	var roadmap models.Roadmap
	err := r.Col.FindOne(ctx, bson.M{}, opts).Decode(&roadmap)
	if err != nil {
		return nil, err
	}
	return &roadmap, nil
}

func (r *RoadmapRepository) Create(ctx context.Context, roadmap *models.Roadmap) error {
	_, err := r.Col.InsertOne(ctx, roadmap)
	return err
}
