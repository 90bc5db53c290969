package srs

import (
	"math"
	"testing"
	"time"
)

const epsilon = 0.001

func TestQualityMapping(t *testing.T) {
	s := NewScheduler()
	if got := s.QualityFor(true); got != QualityCorrect {
		t.Errorf("expected quality %d for correct, got %d", QualityCorrect, got)
	}
	if got := s.QualityFor(false); got != QualityIncorrect {
		t.Errorf("expected quality %d for incorrect, got %d", QualityIncorrect, got)
	}
}

func TestFirstCorrectAttempt(t *testing.T) {
	s := NewScheduler()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := s.Advance(NewRecord(), QualityCorrect, now)

	if rec.Repetitions != 1 {
		t.Errorf("expected repetitions 1, got %d", rec.Repetitions)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("expected interval 1, got %d", rec.IntervalDays)
	}
	if math.Abs(rec.Ease-2.6) > epsilon {
		t.Errorf("expected ease 2.6, got %f", rec.Ease)
	}
	if want := now.AddDate(0, 0, 1); !rec.NextReview.Equal(want) {
		t.Errorf("expected next review %v, got %v", want, rec.NextReview)
	}
}

func TestSecondCorrectAttempt(t *testing.T) {
	s := NewScheduler()
	now := time.Now()

	rec := s.Advance(Record{Repetitions: 1, IntervalDays: 1, Ease: 2.5}, QualityCorrect, now)

	if rec.Repetitions != 2 {
		t.Errorf("expected repetitions 2, got %d", rec.Repetitions)
	}
	if rec.IntervalDays != 6 {
		t.Errorf("expected interval 6, got %d", rec.IntervalDays)
	}
}

func TestThirdCorrectAttemptUsesEase(t *testing.T) {
	s := NewScheduler()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := s.Advance(Record{Repetitions: 2, IntervalDays: 6, Ease: 2.5}, QualityCorrect, now)

	if rec.Repetitions != 3 {
		t.Errorf("expected repetitions 3, got %d", rec.Repetitions)
	}
	// Ease rises to 2.6 before the interval is computed: 6 * 2.6 -> 15.
	if math.Abs(rec.Ease-2.6) > epsilon {
		t.Errorf("expected ease 2.6, got %f", rec.Ease)
	}
	if rec.IntervalDays != 15 {
		t.Errorf("expected interval 15, got %d", rec.IntervalDays)
	}
	if want := now.AddDate(0, 0, 15); !rec.NextReview.Equal(want) {
		t.Errorf("expected next review %v, got %v", want, rec.NextReview)
	}
}

func TestIncorrectAttemptResetsProgress(t *testing.T) {
	s := NewScheduler()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rec := s.Advance(Record{Repetitions: 2, IntervalDays: 6, Ease: 2.5}, QualityIncorrect, now)

	if rec.Repetitions != 0 {
		t.Errorf("expected repetitions reset to 0, got %d", rec.Repetitions)
	}
	if rec.IntervalDays != 0 {
		t.Errorf("expected interval reset to 0, got %d", rec.IntervalDays)
	}
	// Ease decays (2.5 + 0.1 - 3*0.14 = 2.18) but is not reset.
	if math.Abs(rec.Ease-2.18) > epsilon {
		t.Errorf("expected ease 2.18, got %f", rec.Ease)
	}
	if !rec.NextReview.Equal(now) {
		t.Errorf("expected next review at attempt time, got %v", rec.NextReview)
	}
}

func TestEaseNeverFallsBelowFloor(t *testing.T) {
	s := NewScheduler()
	now := time.Now()

	rec := NewRecord()
	for i := 0; i < 20; i++ {
		rec = s.Advance(rec, QualityIncorrect, now)
		if rec.Ease < MinEase-epsilon {
			t.Fatalf("ease fell below %f after %d misses: %f", MinEase, i+1, rec.Ease)
		}
	}
	if math.Abs(rec.Ease-MinEase) > epsilon {
		t.Errorf("expected ease pinned at %f, got %f", MinEase, rec.Ease)
	}
}

func TestRecoveryAfterReset(t *testing.T) {
	s := NewScheduler()
	now := time.Now()

	rec := s.Advance(Record{Repetitions: 5, IntervalDays: 40, Ease: 2.0}, QualityIncorrect, now)
	rec = s.Advance(rec, QualityCorrect, now)

	// A correct attempt after a reset restarts the learning intervals.
	if rec.Repetitions != 1 {
		t.Errorf("expected repetitions 1 after recovery, got %d", rec.Repetitions)
	}
	if rec.IntervalDays != 1 {
		t.Errorf("expected interval 1 after recovery, got %d", rec.IntervalDays)
	}
}

func TestZeroEaseTreatedAsDefault(t *testing.T) {
	s := NewScheduler()

	rec := s.Advance(Record{}, QualityCorrect, time.Now())
	if math.Abs(rec.Ease-2.6) > epsilon {
		t.Errorf("expected zero-value record to start from default ease, got %f", rec.Ease)
	}
}

func TestIntervalGrowthIsMonotonicWhileCorrect(t *testing.T) {
	s := NewScheduler()
	now := time.Now()

	rec := NewRecord()
	prev := 0
	for i := 0; i < 8; i++ {
		rec = s.Advance(rec, QualityCorrect, now)
		if rec.IntervalDays < prev {
			t.Fatalf("interval shrank from %d to %d on streak step %d", prev, rec.IntervalDays, i+1)
		}
		prev = rec.IntervalDays
	}
}
