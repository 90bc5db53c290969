package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"tutor-service/internal/event"
	"tutor-service/internal/models"
	"tutor-service/internal/repository"
	"tutor-service/internal/scoring"
	"tutor-service/internal/srs"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

// SubmissionService grades quiz submissions, appends the result, and
// advances the review schedule of every question touched.
type SubmissionService struct {
	Results   *repository.ResultRepository
	Analytics *repository.AnalyticsRepository
	Content   *ContentService

	scheduler *srs.Scheduler
	locks     *srs.KeyedLock
	publisher *event.EventPublisher
}

func NewSubmissionService(
	results *repository.ResultRepository,
	analytics *repository.AnalyticsRepository,
	content *ContentService,
	publisher *event.EventPublisher,
) *SubmissionService {
	return &SubmissionService{
		Results:   results,
		Analytics: analytics,
		Content:   content,
		scheduler: srs.NewScheduler(),
		locks:     srs.NewKeyedLock(),
		publisher: publisher,
	}
}

// ScoreAndRecord grades the submission, appends the QuizResult, and
// updates per-question analytics. The result write and the analytics
// writes are independent facts: a scheduler failure is logged and never
// erases an already recorded score.
func (s *SubmissionService) ScoreAndRecord(ctx context.Context, userID, quizID string, answers map[int]models.AnswerSet, timeTakenSeconds int) (*models.QuizResult, error) {
	quiz, err := s.Content.GetQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	evaluation := scoring.EvaluateQuiz(quiz, answers)
	now := time.Now().UTC()

	stored := make(map[string]models.StoredAnswer, len(answers))
	for index, answer := range answers {
		stored[strconv.Itoa(index)] = answer.Stored()
	}

	result := &models.QuizResult{
		ID:               uuid.NewString(),
		UserID:           userID,
		QuizID:           quiz.ID,
		Answers:          stored,
		Score:            evaluation.Score,
		Passed:           evaluation.Passed,
		TimeTakenSeconds: timeTakenSeconds,
		ChapterID:        quiz.ChapterID,
		CreatedAt:        now,
	}
	if err := s.Results.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("failed to record quiz result: %w", err)
	}

	s.updateReviewSchedule(ctx, userID, quiz, evaluation, now)

	if s.publisher != nil {
		s.publisher.Publish(event.QuizSubmitted, map[string]interface{}{
			"user_id":   userID,
			"quiz_id":   quiz.ID,
			"result_id": result.ID,
			"score":     result.Score,
			"passed":    result.Passed,
		})
		if result.Passed && quiz.ChapterID != "" {
			s.publisher.Publish(event.ChapterCompleted, map[string]interface{}{
				"user_id":    userID,
				"chapter_id": quiz.ChapterID,
				"quiz_id":    quiz.ID,
			})
		}
	}

	return result, nil
}

// GetResultsByUser returns the user's full attempt history, newest
// first.
func (s *SubmissionService) GetResultsByUser(ctx context.Context, userID string) ([]models.QuizResult, error) {
	return s.Results.FindByUser(ctx, userID)
}

// updateReviewSchedule advances the analytics record of every answered
// question. The read-modify-write cycle is serialized per (user, quiz)
// so duplicate submissions cannot interleave and lose updates. A single
// question failing to resolve or persist is skipped, never fatal.
func (s *SubmissionService) updateReviewSchedule(ctx context.Context, userID string, quiz *models.Quiz, evaluation scoring.Result, now time.Time) {
	key := userID + "|" + quiz.ID
	s.locks.Lock(key)
	defer s.locks.Unlock(key)

	scheduled := 0
	for _, outcome := range evaluation.Questions {
		if !outcome.Answered {
			continue
		}
		if outcome.Index < 0 || outcome.Index >= len(quiz.Questions) {
			continue
		}

		prior := srs.NewRecord()
		existing, err := s.Analytics.Find(ctx, userID, quiz.ID, outcome.Index)
		if err == nil {
			prior = srs.Record{
				Repetitions:  existing.Repetitions,
				IntervalDays: existing.IntervalDays,
				Ease:         existing.Ef,
				NextReview:   existing.NextReview,
			}
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			log.Printf("skipping review update for %s q%d: %v", quiz.ID, outcome.Index, err)
			continue
		}

		next := s.scheduler.Advance(prior, s.scheduler.QualityFor(outcome.Correct), now)

		record := &models.QuestionAnalytics{
			ID:            uuid.NewString(),
			UserID:        userID,
			QuizID:        quiz.ID,
			QuestionIndex: outcome.Index,
			QuestionText:  quiz.Questions[outcome.Index].Prompt,
			Correct:       outcome.Correct,
			Repetitions:   next.Repetitions,
			IntervalDays:  next.IntervalDays,
			Ef:            next.Ease,
			NextReview:    next.NextReview,
			UpdatedAt:     now,
		}
		if _, err := s.Analytics.Upsert(ctx, record); err != nil {
			log.Printf("failed to persist review schedule for %s q%d: %v", quiz.ID, outcome.Index, err)
			continue
		}
		scheduled++
	}

	if s.publisher != nil && scheduled > 0 {
		s.publisher.Publish(event.ReviewScheduled, map[string]interface{}{
			"user_id":   userID,
			"quiz_id":   quiz.ID,
			"questions": scheduled,
		})
	}
}
