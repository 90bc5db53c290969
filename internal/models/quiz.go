package models

import "time"

type QuestionType string

const (
	QuestionSingle   QuestionType = "single"
	QuestionMultiple QuestionType = "multiple"
)

type Choice struct {
	Text    string `bson:"text" json:"text"`
	Correct bool   `bson:"correct" json:"correct"`
}

type Question struct {
	Prompt  string       `bson:"prompt" json:"prompt"`
	Type    QuestionType `bson:"type" json:"type"`
	Choices []Choice     `bson:"choices" json:"choices"`
	// CorrectIndex is the ground truth for single-choice questions.
	// Multiple-choice questions carry the Correct flag per choice instead.
	CorrectIndex int     `bson:"correct_index" json:"correct_index"`
	Weight       float64 `bson:"weight" json:"weight"`
}

// EffectiveWeight returns the question's point weight, defaulting to 1
// for documents authored without an explicit weight.
func (q *Question) EffectiveWeight() float64 {
	if q.Weight <= 0 {
		return 1
	}
	return q.Weight
}

// CorrectSet returns the choice indices flagged correct.
func (q *Question) CorrectSet() map[int]bool {
	set := make(map[int]bool)
	for i, choice := range q.Choices {
		if choice.Correct {
			set[i] = true
		}
	}
	return set
}

type Quiz struct {
	ID        string     `bson:"_id,omitempty" json:"id"`
	Title     string     `bson:"title" json:"title"`
	ChapterID string     `bson:"chapter_id" json:"chapter_id"`
	Questions []Question `bson:"questions" json:"questions"`
	CreatedAt time.Time  `bson:"created_at" json:"created_at"`
}

// Sanitized returns a copy of the quiz with the correctness ground truth
// stripped, safe to hand to clients before they attempt it.
func (q *Quiz) Sanitized() *Quiz {
	out := *q
	out.Questions = make([]Question, len(q.Questions))
	for i, question := range q.Questions {
		clean := question
		clean.CorrectIndex = 0
		clean.Choices = make([]Choice, len(question.Choices))
		for j, choice := range question.Choices {
			clean.Choices[j] = Choice{Text: choice.Text}
		}
		out.Questions[i] = clean
	}
	return &out
}
