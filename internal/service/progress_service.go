package service

import (
	"context"
	"errors"

	"tutor-service/internal/mastery"
	"tutor-service/internal/models"
	"tutor-service/internal/recommend"
	"tutor-service/internal/repository"

	"go.mongodb.org/mongo-driver/mongo"
)

// ProgressService projects roadmap progress and picks the next chapter.
// Both are derived from the result log on every call; nothing here is
// stored back.
type ProgressService struct {
	Content *ContentService
	Results *repository.ResultRepository

	tracker *mastery.Tracker
	engine  *recommend.Engine
}

func NewProgressService(content *ContentService, results *repository.ResultRepository) *ProgressService {
	return &ProgressService{
		Content: content,
		Results: results,
		tracker: mastery.NewTracker(),
		engine:  recommend.NewEngine(),
	}
}

func (s *ProgressService) GetUserProgress(ctx context.Context, userID, roadmapID string) (*mastery.Progress, error) {
	roadmap, err := s.Content.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	progress, _, err := s.Snapshot(ctx, userID, roadmap)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

// RecommendNextChapter returns nil (with no error) once the learner has
// satisfied every chapter of the roadmap.
func (s *ProgressService) RecommendNextChapter(ctx context.Context, userID, roadmapID string) (*models.Chapter, error) {
	roadmap, err := s.Content.GetRoadmap(ctx, roadmapID)
	if err != nil {
		return nil, err
	}
	_, next, err := s.Snapshot(ctx, userID, roadmap)
	if err != nil {
		return nil, err
	}
	return next, nil
}

// Snapshot computes progress and the next chapter from one fetch of the
// chapters and the latest scores, so composed reads stay consistent
// within a request.
func (s *ProgressService) Snapshot(ctx context.Context, userID string, roadmap *models.Roadmap) (*mastery.Progress, *models.Chapter, error) {
	chapters, err := s.Content.GetChapters(ctx, roadmap.ID)
	if err != nil {
		return nil, nil, err
	}
	scores, err := s.latestScores(ctx, userID, chapters)
	if err != nil {
		return nil, nil, err
	}

	progress := s.tracker.Project(roadmap.ID, chapters, scores)
	next := s.engine.NextChapter(chapters, scores)
	return &progress, next, nil
}

// latestScores fetches, per chapter, the user's most recent result
// among the chapter's quizzes. Chapters that were never attempted are
// simply absent from the map.
func (s *ProgressService) latestScores(ctx context.Context, userID string, chapters []models.Chapter) (map[string]int, error) {
	scores := make(map[string]int, len(chapters))
	for _, chapter := range chapters {
		if !chapter.HasQuizzes() {
			continue
		}
		result, err := s.Results.FindLatestByQuizzes(ctx, userID, chapter.QuizIDs)
		if err != nil {
			if errors.Is(err, mongo.ErrNoDocuments) {
				continue
			}
			return nil, err
		}
		scores[chapter.ID] = result.Score
	}
	return scores, nil
}
