package recommend

import (
	"sort"

	"tutor-service/internal/models"
	"tutor-service/internal/scoring"
)

// Engine picks the single next chapter a learner should study: the
// first chapter, in position order, whose latest quiz score has not met
// the mastery threshold.
type Engine struct {
	passScore int
}

func NewEngine() *Engine {
	return &Engine{passScore: scoring.PassThreshold}
}

// NextChapter scans chapters in ascending position order and returns
// the first one still owed to the learner, or nil once every chapter's
// latest score passes. Chapters without quizzes are returned
// unconditionally whenever reached: they carry no completion state, so
// the scan cannot move past them.
func (e *Engine) NextChapter(chapters []models.Chapter, latestScores map[string]int) *models.Chapter {
	ordered := append([]models.Chapter{}, chapters...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})

	for i := range ordered {
		chapter := &ordered[i]
		if !chapter.HasQuizzes() {
			return chapter
		}
		score, ok := latestScores[chapter.ID]
		if !ok {
			score = -1
		}
		if score < e.passScore {
			return chapter
		}
	}
	return nil
}
