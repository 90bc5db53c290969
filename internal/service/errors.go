package service

import "errors"

var (
	ErrRoadmapNotFound = errors.New("roadmap not found")
	ErrChapterNotFound = errors.New("chapter not found")
	ErrQuizNotFound    = errors.New("quiz not found")
)
