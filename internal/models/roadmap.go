package models

import "time"

type Roadmap struct {
	ID          string    `bson:"_id,omitempty" json:"id"`
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

// Chapter is one step of a roadmap. Position defines traversal order.
// A chapter may reference zero or more quizzes; a chapter without
// quizzes carries no tracked completion state.
type Chapter struct {
	ID         string   `bson:"_id,omitempty" json:"id"`
	RoadmapID  string   `bson:"roadmap_id" json:"roadmap_id"`
	Title      string   `bson:"title" json:"title"`
	ContentRef string   `bson:"content_ref" json:"content_ref"`
	Position   int      `bson:"position" json:"position"`
	QuizIDs    []string `bson:"quiz_ids" json:"quiz_ids"`
}

func (c *Chapter) HasQuizzes() bool {
	return len(c.QuizIDs) > 0
}
