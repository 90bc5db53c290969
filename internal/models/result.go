package models

import "time"

// QuizResult is one row per submission attempt. Results are append-only:
// they are inserted once and never updated, so chapter completion can
// always be recomputed from the log.
type QuizResult struct {
	ID               string                  `bson:"_id,omitempty" json:"id"`
	UserID           string                  `bson:"user_id" json:"user_id"`
	QuizID           string                  `bson:"quiz_id" json:"quiz_id"`
	Answers          map[string]StoredAnswer `bson:"answers" json:"answers"`
	Score            int                     `bson:"score" json:"score"`
	Passed           bool                    `bson:"passed" json:"passed"`
	TimeTakenSeconds int                     `bson:"time_taken_seconds" json:"time_taken_seconds"`
	ChapterID        string                  `bson:"chapter_id,omitempty" json:"chapter_id,omitempty"`
	CreatedAt        time.Time               `bson:"created_at" json:"created_at"`
}
