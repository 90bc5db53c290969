package handlers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"tutor-service/internal/models"
	"tutor-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

// SubmitQuiz grades a submission for the authenticated user. Answer
// keys are stringified question indices; entries with malformed keys
// are dropped, matching the local-skip policy for malformed answers.
func (h *SubmissionHandler) SubmitQuiz(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	quizID := c.Param("id")

	var req struct {
		Answers          map[string]models.AnswerSet `json:"answers"`
		TimeTakenSeconds int                         `json:"time_taken_seconds"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	answers := make(map[int]models.AnswerSet, len(req.Answers))
	for key, answer := range req.Answers {
		index, err := strconv.Atoi(key)
		if err != nil || index < 0 {
			continue
		}
		answers[index] = answer
	}

	result, err := h.Service.ScoreAndRecord(context.Background(), userID, quizID, answers, req.TimeTakenSeconds)
	if err != nil {
		if errors.Is(err, service.ErrQuizNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"result_id": result.ID,
		"score":     result.Score,
		"passed":    result.Passed,
	})
}

func (h *SubmissionHandler) GetResultsByUser(c *gin.Context) {
	userID := c.Param("id")
	results, err := h.Service.GetResultsByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, results)
}
