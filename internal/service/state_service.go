package service

import (
	"context"
	"log"

	"tutor-service/internal/mastery"
	"tutor-service/internal/models"
)

// UserState is the single snapshot a client needs to render the
// learner's dashboard: the roadmap, derived progress, and what to study
// next.
type UserState struct {
	Roadmap     *models.Roadmap   `json:"roadmap"`
	Progress    *mastery.Progress `json:"progress"`
	NextChapter *models.Chapter   `json:"next_chapter"`
	NextQuiz    *models.Quiz      `json:"next_quiz"`
}

type StateService struct {
	Content  *ContentService
	Progress *ProgressService
}

func NewStateService(content *ContentService, progress *ProgressService) *StateService {
	return &StateService{Content: content, Progress: progress}
}

// GetUserState composes the snapshot for one round-trip. An empty
// roadmapID selects the default roadmap. A roadmap with no chapters
// yields zero progress and no next chapter.
func (s *StateService) GetUserState(ctx context.Context, userID, roadmapID string) (*UserState, error) {
	var roadmap *models.Roadmap
	var err error
	if roadmapID == "" {
		roadmap, err = s.Content.DefaultRoadmap(ctx)
	} else {
		roadmap, err = s.Content.GetRoadmap(ctx, roadmapID)
	}
	if err != nil {
		return nil, err
	}

	progress, nextChapter, err := s.Progress.Snapshot(ctx, userID, roadmap)
	if err != nil {
		return nil, err
	}

	state := &UserState{
		Roadmap:     roadmap,
		Progress:    progress,
		NextChapter: nextChapter,
	}

	if nextChapter != nil && nextChapter.HasQuizzes() {
		quiz, err := s.Content.GetQuiz(ctx, nextChapter.QuizIDs[0])
		if err != nil {
			// A dangling quiz reference degrades the snapshot, it does
			// not fail it.
			log.Printf("next quiz %s unresolvable: %v", nextChapter.QuizIDs[0], err)
		} else {
			state.NextQuiz = quiz.Sanitized()
		}
	}

	return state, nil
}
