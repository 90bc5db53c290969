package scoring

import (
	"math"

	"tutor-service/internal/models"
)

// PassThreshold is the mastery threshold: a quiz attempt with a score at
// or above it counts as passed and completes its chapter.
const PassThreshold = 70

// QuestionOutcome is the per-question evaluation of a submission.
// Answered reports whether a well-formed answer reached the grader;
// unanswered and malformed answers earn zero credit but still count
// toward the denominator, and are skipped by the review scheduler.
type QuestionOutcome struct {
	Index    int     `json:"index"`
	Weight   float64 `json:"weight"`
	Credit   float64 `json:"credit"`
	Correct  bool    `json:"correct"`
	Answered bool    `json:"answered"`
}

// Result is the outcome of grading one full submission.
type Result struct {
	Score     int               `json:"score"`
	Passed    bool              `json:"passed"`
	Earned    float64           `json:"earned"`
	Total     float64           `json:"total"`
	Questions []QuestionOutcome `json:"questions"`
}

// EvaluateQuiz grades a submission against the quiz ground truth. It is
// a pure function: no side effects, no persistence.
func EvaluateQuiz(quiz *models.Quiz, answers map[int]models.AnswerSet) Result {
	result := Result{
		Questions: make([]QuestionOutcome, 0, len(quiz.Questions)),
	}

	for i, question := range quiz.Questions {
		answer, ok := answers[i]
		outcome := evaluateQuestion(i, question, answer, ok)
		result.Earned += outcome.Credit
		result.Total += outcome.Weight
		result.Questions = append(result.Questions, outcome)
	}

	if result.Total > 0 {
		result.Score = int(math.Round(100 * result.Earned / result.Total))
	}
	result.Passed = result.Score >= PassThreshold
	return result
}

func evaluateQuestion(index int, question models.Question, answer models.AnswerSet, submitted bool) QuestionOutcome {
	outcome := QuestionOutcome{
		Index:  index,
		Weight: question.EffectiveWeight(),
	}
	if !submitted {
		return outcome
	}

	switch question.Type {
	case models.QuestionMultiple:
		if !answer.IsMulti {
			return outcome
		}
		for _, idx := range answer.Multiple {
			if idx < 0 || idx >= len(question.Choices) {
				return outcome
			}
		}
		outcome.Answered = true
		outcome.Credit = multipleChoiceCredit(question, answer.Multiple) * outcome.Weight
		outcome.Correct = outcome.Credit >= outcome.Weight
	default:
		if answer.IsMulti {
			return outcome
		}
		if answer.Single < 0 || answer.Single >= len(question.Choices) {
			return outcome
		}
		outcome.Answered = true
		if answer.Single == question.CorrectIndex {
			outcome.Credit = outcome.Weight
			outcome.Correct = true
		}
	}
	return outcome
}

// multipleChoiceCredit computes |submitted ∩ correct| / |correct|,
// clamped to [0, 1]. Selecting a wrong extra earns nothing but costs
// nothing either.
func multipleChoiceCredit(question models.Question, submitted []int) float64 {
	correct := question.CorrectSet()
	if len(correct) == 0 {
		return 0
	}
	matched := 0
	seen := make(map[int]bool, len(submitted))
	for _, idx := range submitted {
		if seen[idx] {
			continue
		}
		seen[idx] = true
		if correct[idx] {
			matched++
		}
	}
	ratio := float64(matched) / float64(len(correct))
	if ratio > 1 {
		return 1
	}
	return ratio
}
