package mastery

import (
	"math"
	"sort"

	"tutor-service/internal/models"
	"tutor-service/internal/scoring"
)

// NoResult is the sentinel score for a chapter whose quizzes have never
// been attempted. It sits below every real score, so such chapters are
// always incomplete.
const NoResult = -1

// ChapterStatus is the derived completion state of one chapter.
type ChapterStatus struct {
	ChapterID   string `json:"chapter_id"`
	Title       string `json:"title"`
	Position    int    `json:"position"`
	HasQuiz     bool   `json:"has_quiz"`
	Completed   bool   `json:"completed"`
	LatestScore int    `json:"latest_score"`
}

// Progress is the roadmap-level projection. It is computed on demand
// from the result log and never persisted, so it cannot drift from the
// results that produced it.
type Progress struct {
	RoadmapID         string          `json:"roadmap_id"`
	TotalChapters     int             `json:"total_chapters"`
	CompletedChapters int             `json:"completed_chapters"`
	Percent           int             `json:"percent"`
	Chapters          []ChapterStatus `json:"chapters"`
}

type Tracker struct {
	passScore int
}

func NewTracker() *Tracker {
	return &Tracker{passScore: scoring.PassThreshold}
}

// Project derives roadmap progress from the chapters and the latest
// quiz score per chapter. latestScores maps chapter id to the most
// recent QuizResult score among that chapter's quizzes; chapters with
// no attempt are simply absent. Chapters without quizzes are never
// counted complete.
func (t *Tracker) Project(roadmapID string, chapters []models.Chapter, latestScores map[string]int) Progress {
	ordered := sortByPosition(chapters)

	progress := Progress{
		RoadmapID:     roadmapID,
		TotalChapters: len(ordered),
		Chapters:      make([]ChapterStatus, 0, len(ordered)),
	}

	for _, chapter := range ordered {
		status := ChapterStatus{
			ChapterID:   chapter.ID,
			Title:       chapter.Title,
			Position:    chapter.Position,
			HasQuiz:     chapter.HasQuizzes(),
			LatestScore: NoResult,
		}
		if score, ok := latestScores[chapter.ID]; ok && chapter.HasQuizzes() {
			status.LatestScore = score
			status.Completed = score >= t.passScore
		}
		if status.Completed {
			progress.CompletedChapters++
		}
		progress.Chapters = append(progress.Chapters, status)
	}

	if progress.TotalChapters > 0 {
		progress.Percent = int(math.Round(100 * float64(progress.CompletedChapters) / float64(progress.TotalChapters)))
	}
	return progress
}

func sortByPosition(chapters []models.Chapter) []models.Chapter {
	ordered := append([]models.Chapter{}, chapters...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Position < ordered[j].Position
	})
	return ordered
}
