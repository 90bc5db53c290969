package models

import (
	"encoding/json"
	"testing"
)

func TestAnswerSetNormalization(t *testing.T) {
	testCases := []struct {
		name      string
		payload   string
		wantMulti bool
		wantErr   bool
	}{
		{"bare index", `2`, false, false},
		{"index list", `[0, 2]`, true, false},
		{"empty list", `[]`, true, false},
		{"string rejected", `"2"`, false, true},
		{"object rejected", `{"index": 2}`, false, true},
		{"fractional rejected", `1.5`, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var answer AnswerSet
			err := json.Unmarshal([]byte(tc.payload), &answer)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected error for payload %s", tc.payload)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if answer.IsMulti != tc.wantMulti {
				t.Errorf("expected IsMulti=%v, got %v", tc.wantMulti, answer.IsMulti)
			}
		})
	}
}

func TestAnswerSetStoredShape(t *testing.T) {
	single := SingleAnswer(3).Stored()
	if single.Mode != "single" || len(single.Indices) != 1 || single.Indices[0] != 3 {
		t.Errorf("unexpected stored single answer: %+v", single)
	}

	multi := MultipleAnswer(0, 2).Stored()
	if multi.Mode != "multiple" || len(multi.Indices) != 2 {
		t.Errorf("unexpected stored multiple answer: %+v", multi)
	}
}

func TestReviewStateDerivation(t *testing.T) {
	testCases := []struct {
		repetitions int
		want        ReviewState
	}{
		{0, ReviewStateNew},
		{1, ReviewStateLearning},
		{2, ReviewStateLearning},
		{3, ReviewStateReviewing},
		{10, ReviewStateReviewing},
	}

	for _, tc := range testCases {
		a := QuestionAnalytics{Repetitions: tc.repetitions}
		if got := a.State(); got != tc.want {
			t.Errorf("repetitions=%d: expected %s, got %s", tc.repetitions, tc.want, got)
		}
	}
}
