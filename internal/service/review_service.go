package service

import (
	"context"
	"time"

	"tutor-service/internal/models"
	"tutor-service/internal/repository"
)

// ReviewSummary aggregates a user's review pipeline.
type ReviewSummary struct {
	TotalTracked int                        `json:"total_tracked"`
	DueNow       int                        `json:"due_now"`
	States       map[models.ReviewState]int `json:"states"`
	AverageEase  float64                    `json:"average_ease"`
}

type ReviewService struct {
	Analytics *repository.AnalyticsRepository
}

func NewReviewService(analytics *repository.AnalyticsRepository) *ReviewService {
	return &ReviewService{Analytics: analytics}
}

// GetScheduledReviews returns the user's questions due at asOf, sorted
// by next_review ascending.
func (s *ReviewService) GetScheduledReviews(ctx context.Context, userID string, asOf time.Time) ([]models.QuestionAnalytics, error) {
	records, err := s.Analytics.FindDue(ctx, userID, asOf)
	if err != nil {
		return nil, err
	}
	if records == nil {
		records = []models.QuestionAnalytics{}
	}
	return records, nil
}

func (s *ReviewService) GetReviewSummary(ctx context.Context, userID string, asOf time.Time) (*ReviewSummary, error) {
	records, err := s.Analytics.FindByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	summary := &ReviewSummary{
		TotalTracked: len(records),
		States: map[models.ReviewState]int{
			models.ReviewStateNew:       0,
			models.ReviewStateLearning:  0,
			models.ReviewStateReviewing: 0,
		},
	}

	easeSum := 0.0
	for _, rec := range records {
		summary.States[rec.State()]++
		if !rec.NextReview.After(asOf) {
			summary.DueNow++
		}
		easeSum += rec.Ef
	}
	if len(records) > 0 {
		summary.AverageEase = easeSum / float64(len(records))
	}
	return summary, nil
}
