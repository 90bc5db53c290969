package service

import (
	"context"
	"errors"
	"time"

	"tutor-service/internal/cache"
	"tutor-service/internal/models"
	"tutor-service/internal/repository"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// ContentService resolves the content hierarchy (roadmaps, chapters,
// quizzes). Content is authored externally and read-only here, which is
// what makes the redis read-through cache safe.
type ContentService struct {
	Roadmaps *repository.RoadmapRepository
	Chapters *repository.ChapterRepository
	Quizzes  *repository.QuizRepository
	cache    *cache.ContentCache
}

func NewContentService(
	roadmaps *repository.RoadmapRepository,
	chapters *repository.ChapterRepository,
	quizzes *repository.QuizRepository,
	contentCache *cache.ContentCache,
) *ContentService {
	return &ContentService{
		Roadmaps: roadmaps,
		Chapters: chapters,
		Quizzes:  quizzes,
		cache:    contentCache,
	}
}

func (s *ContentService) ListRoadmaps(ctx context.Context) ([]models.Roadmap, error) {
	return s.Roadmaps.FindAll(ctx)
}

func (s *ContentService) GetRoadmap(ctx context.Context, id string) (*models.Roadmap, error) {
	var cached models.Roadmap
	if s.cache.Get(ctx, cache.RoadmapKey(id), &cached) {
		return &cached, nil
	}
	roadmap, err := s.Roadmaps.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoadmapNotFound
		}
		return nil, err
	}
	s.cache.Set(ctx, cache.RoadmapKey(id), roadmap)
	return roadmap, nil
}

// DefaultRoadmap is used when a client asks for user state without
// naming a roadmap.
func (s *ContentService) DefaultRoadmap(ctx context.Context) (*models.Roadmap, error) {
	roadmap, err := s.Roadmaps.FindFirst(ctx)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrRoadmapNotFound
		}
		return nil, err
	}
	return roadmap, nil
}

func (s *ContentService) GetChapters(ctx context.Context, roadmapID string) ([]models.Chapter, error) {
	return s.Chapters.FindByRoadmap(ctx, roadmapID)
}

func (s *ContentService) GetChapter(ctx context.Context, id string) (*models.Chapter, error) {
	chapter, err := s.Chapters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrChapterNotFound
		}
		return nil, err
	}
	return chapter, nil
}

func (s *ContentService) GetQuiz(ctx context.Context, id string) (*models.Quiz, error) {
	var cached models.Quiz
	if s.cache.Get(ctx, cache.QuizKey(id), &cached) {
		return &cached, nil
	}
	quiz, err := s.Quizzes.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrQuizNotFound
		}
		return nil, err
	}
	s.cache.Set(ctx, cache.QuizKey(id), quiz)
	return quiz, nil
}

func (s *ContentService) CreateRoadmap(ctx context.Context, roadmap *models.Roadmap) error {
	if roadmap.ID == "" {
		roadmap.ID = uuid.NewString()
	}
	roadmap.CreatedAt = time.Now().UTC()
	roadmap.UpdatedAt = roadmap.CreatedAt
	return s.Roadmaps.Create(ctx, roadmap)
}

func (s *ContentService) CreateChapter(ctx context.Context, chapter *models.Chapter) error {
	if chapter.ID == "" {
		chapter.ID = uuid.NewString()
	}
	if _, err := s.GetRoadmap(ctx, chapter.RoadmapID); err != nil {
		return err
	}
	return s.Chapters.Create(ctx, chapter)
}

func (s *ContentService) CreateQuiz(ctx context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = uuid.NewString()
	}
	quiz.CreatedAt = time.Now().UTC()
	return s.Quizzes.Create(ctx, quiz)
}
