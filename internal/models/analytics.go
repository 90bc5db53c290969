package models

import "time"

type ReviewState string

const (
	ReviewStateNew       ReviewState = "new"
	ReviewStateLearning  ReviewState = "learning"
	ReviewStateReviewing ReviewState = "reviewing"
)

// QuestionAnalytics tracks the review schedule of one question for one
// user, keyed by (user_id, quiz_id, question_index). This is the only
// mutable record in the system; every attempt touching the question
// rewrites it through an atomic upsert.
type QuestionAnalytics struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	QuizID        string    `bson:"quiz_id" json:"quiz_id"`
	QuestionIndex int       `bson:"question_index" json:"question_index"`
	QuestionText  string    `bson:"question_text" json:"question_text"`
	Correct       bool      `bson:"correct" json:"correct"`
	Repetitions   int       `bson:"repetitions" json:"repetitions"`
	IntervalDays  int       `bson:"interval_days" json:"interval_days"`
	Ef            float64   `bson:"ef" json:"ef"`
	NextReview    time.Time `bson:"next_review" json:"next_review"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// State derives the review lifecycle stage from the repetition count.
func (a *QuestionAnalytics) State() ReviewState {
	switch {
	case a.Repetitions == 0:
		return ReviewStateNew
	case a.Repetitions <= 2:
		return ReviewStateLearning
	default:
		return ReviewStateReviewing
	}
}
