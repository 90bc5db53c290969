package srs

import "time"

// Simplified SM-2 constants. Answers are graded pass/fail, so only two
// of the classical five recall-quality grades are used.
const (
	QualityCorrect   = 5
	QualityIncorrect = 2

	DefaultEase = 2.5
	MinEase     = 1.3

	passQuality = 3
)

// Record is the scheduling state of one question for one user.
type Record struct {
	Repetitions  int
	IntervalDays int
	Ease         float64
	NextReview   time.Time
}

// NewRecord returns the state of a question that has never been reviewed.
func NewRecord() Record {
	return Record{Ease: DefaultEase}
}

// Scheduler computes review-state transitions. It is stateless; callers
// own persistence of the records it produces.
type Scheduler struct {
	minEase     float64
	defaultEase float64
}

func NewScheduler() *Scheduler {
	return &Scheduler{
		minEase:     MinEase,
		defaultEase: DefaultEase,
	}
}

// QualityFor maps the binary correctness signal onto the SM-2 quality
// scale.
func (s *Scheduler) QualityFor(correct bool) int {
	if correct {
		return QualityCorrect
	}
	return QualityIncorrect
}

// Advance applies one review to the record and returns the new state.
// The ease factor decays on failure but is never reset; repetitions and
// interval reset to zero on any incorrect attempt.
func (s *Scheduler) Advance(rec Record, quality int, now time.Time) Record {
	if rec.Ease == 0 {
		rec.Ease = s.defaultEase
	}

	miss := float64(5 - quality)
	ease := rec.Ease + (0.1 - miss*(0.08+miss*0.02))
	if ease < s.minEase {
		ease = s.minEase
	}

	next := Record{Ease: ease}
	if quality < passQuality {
		next.Repetitions = 0
		next.IntervalDays = 0
	} else {
		next.Repetitions = rec.Repetitions + 1
		switch next.Repetitions {
		case 1:
			next.IntervalDays = 1
		case 2:
			next.IntervalDays = 6
		default:
			next.IntervalDays = int(float64(rec.IntervalDays) * ease)
		}
	}

	next.NextReview = now.AddDate(0, 0, next.IntervalDays)
	return next
}
