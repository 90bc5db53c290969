package scoring

import (
	"testing"

	"tutor-service/internal/models"
)

func singleQuestion(correct int, choices int) models.Question {
	q := models.Question{
		Type:         models.QuestionSingle,
		CorrectIndex: correct,
	}
	for i := 0; i < choices; i++ {
		q.Choices = append(q.Choices, models.Choice{Text: "choice"})
	}
	return q
}

func multipleQuestion(correct []int, choices int) models.Question {
	q := models.Question{Type: models.QuestionMultiple}
	correctSet := make(map[int]bool)
	for _, idx := range correct {
		correctSet[idx] = true
	}
	for i := 0; i < choices; i++ {
		q.Choices = append(q.Choices, models.Choice{Text: "choice", Correct: correctSet[i]})
	}
	return q
}

func TestSingleChoiceScoring(t *testing.T) {
	quiz := &models.Quiz{Questions: []models.Question{singleQuestion(1, 3)}}

	testCases := []struct {
		name       string
		answers    map[int]models.AnswerSet
		wantScore  int
		wantPassed bool
	}{
		{"correct index", map[int]models.AnswerSet{0: models.SingleAnswer(1)}, 100, true},
		{"wrong index", map[int]models.AnswerSet{0: models.SingleAnswer(2)}, 0, false},
		{"unanswered", map[int]models.AnswerSet{}, 0, false},
		{"out of range", map[int]models.AnswerSet{0: models.SingleAnswer(7)}, 0, false},
		{"negative index", map[int]models.AnswerSet{0: models.SingleAnswer(-1)}, 0, false},
		{"array for single question", map[int]models.AnswerSet{0: models.MultipleAnswer(1)}, 0, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := EvaluateQuiz(quiz, tc.answers)
			if result.Score != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, result.Score)
			}
			if result.Passed != tc.wantPassed {
				t.Errorf("expected passed=%v, got %v", tc.wantPassed, result.Passed)
			}
		})
	}
}

func TestMultipleChoicePartialCredit(t *testing.T) {
	quiz := &models.Quiz{Questions: []models.Question{multipleQuestion([]int{0, 2}, 4)}}

	testCases := []struct {
		name      string
		answer    models.AnswerSet
		wantScore int
	}{
		{"half of correct set", models.MultipleAnswer(0), 50},
		{"full correct set", models.MultipleAnswer(0, 2), 100},
		{"full set plus wrong extra", models.MultipleAnswer(0, 2, 3), 100},
		{"only wrong choices", models.MultipleAnswer(1, 3), 0},
		{"empty selection", models.MultipleAnswer(), 0},
		{"duplicate indices count once", models.MultipleAnswer(0, 0), 50},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := EvaluateQuiz(quiz, map[int]models.AnswerSet{0: tc.answer})
			if result.Score != tc.wantScore {
				t.Errorf("expected score %d, got %d", tc.wantScore, result.Score)
			}
		})
	}
}

func TestMultipleChoiceInvalidIndexSkipsQuestion(t *testing.T) {
	quiz := &models.Quiz{Questions: []models.Question{multipleQuestion([]int{0}, 2)}}

	result := EvaluateQuiz(quiz, map[int]models.AnswerSet{0: models.MultipleAnswer(0, 9)})
	if result.Score != 0 {
		t.Errorf("expected score 0 for out-of-range selection, got %d", result.Score)
	}
	if result.Questions[0].Answered {
		t.Error("malformed answer should not count as answered")
	}
}

func TestUnansweredCountsTowardDenominator(t *testing.T) {
	quiz := &models.Quiz{Questions: []models.Question{
		singleQuestion(0, 2),
		singleQuestion(0, 2),
	}}

	result := EvaluateQuiz(quiz, map[int]models.AnswerSet{0: models.SingleAnswer(0)})
	if result.Score != 50 {
		t.Errorf("expected score 50 with one of two answered, got %d", result.Score)
	}
}

func TestWeightedQuestions(t *testing.T) {
	heavy := singleQuestion(0, 2)
	heavy.Weight = 3
	light := singleQuestion(0, 2)

	quiz := &models.Quiz{Questions: []models.Question{heavy, light}}

	// Only the weight-3 question answered correctly: 3/4 of the total.
	result := EvaluateQuiz(quiz, map[int]models.AnswerSet{0: models.SingleAnswer(0)})
	if result.Score != 75 {
		t.Errorf("expected score 75, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("expected 75 to pass the 70 threshold")
	}
}

func TestEmptyQuizScoresZero(t *testing.T) {
	result := EvaluateQuiz(&models.Quiz{}, map[int]models.AnswerSet{})
	if result.Score != 0 {
		t.Errorf("expected score 0 for quiz with no questions, got %d", result.Score)
	}
	if result.Passed {
		t.Error("empty quiz must not pass")
	}
}

func TestPassThresholdBoundary(t *testing.T) {
	// 7 of 10 single-choice questions correct lands exactly on 70.
	quiz := &models.Quiz{}
	answers := map[int]models.AnswerSet{}
	for i := 0; i < 10; i++ {
		quiz.Questions = append(quiz.Questions, singleQuestion(0, 2))
		if i < 7 {
			answers[i] = models.SingleAnswer(0)
		} else {
			answers[i] = models.SingleAnswer(1)
		}
	}

	result := EvaluateQuiz(quiz, answers)
	if result.Score != 70 {
		t.Fatalf("expected score 70, got %d", result.Score)
	}
	if !result.Passed {
		t.Error("score of exactly 70 must pass")
	}
}
