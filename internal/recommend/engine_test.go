package recommend

import (
	"testing"

	"tutor-service/internal/models"
)

func chapter(id string, position int, quizIDs ...string) models.Chapter {
	return models.Chapter{ID: id, Title: id, Position: position, QuizIDs: quizIDs}
}

func TestNextChapterReturnsFirstUnmastered(t *testing.T) {
	engine := NewEngine()
	chapters := []models.Chapter{
		chapter("a", 1, "qa"),
		chapter("b", 2, "qb"),
	}

	next := engine.NextChapter(chapters, map[string]int{"a": 90, "b": 40})

	if next == nil || next.ID != "b" {
		t.Fatalf("expected chapter b, got %+v", next)
	}
}

func TestNextChapterTreatsMissingResultAsUnmastered(t *testing.T) {
	engine := NewEngine()
	chapters := []models.Chapter{
		chapter("a", 1, "qa"),
		chapter("b", 2, "qb"),
	}

	next := engine.NextChapter(chapters, map[string]int{"a": 75})

	if next == nil || next.ID != "b" {
		t.Fatalf("expected never-attempted chapter b, got %+v", next)
	}
}

func TestNextChapterQuizlessReturnedImmediately(t *testing.T) {
	engine := NewEngine()
	chapters := []models.Chapter{
		chapter("passed", 1, "q1"),
		chapter("reading", 2),
		chapter("later", 3, "q3"),
	}

	next := engine.NextChapter(chapters, map[string]int{"passed": 100, "later": 100})

	if next == nil || next.ID != "reading" {
		t.Fatalf("expected quiz-less chapter to be returned when reached, got %+v", next)
	}
}

func TestNextChapterNilWhenRoadmapComplete(t *testing.T) {
	engine := NewEngine()
	chapters := []models.Chapter{
		chapter("a", 1, "qa"),
		chapter("b", 2, "qb"),
	}

	next := engine.NextChapter(chapters, map[string]int{"a": 70, "b": 70})

	if next != nil {
		t.Fatalf("expected nil for fully mastered roadmap, got %+v", next)
	}
}

func TestNextChapterScansInPositionOrder(t *testing.T) {
	engine := NewEngine()
	// Deliberately shuffled input: position order must win.
	chapters := []models.Chapter{
		chapter("late", 50, "q-late"),
		chapter("early", 5, "q-early"),
	}

	next := engine.NextChapter(chapters, map[string]int{})

	if next == nil || next.ID != "early" {
		t.Fatalf("expected lowest-position chapter first, got %+v", next)
	}
}

func TestNextChapterEmptyRoadmap(t *testing.T) {
	engine := NewEngine()

	if next := engine.NextChapter(nil, nil); next != nil {
		t.Fatalf("expected nil for empty roadmap, got %+v", next)
	}
}
