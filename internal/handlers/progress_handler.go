package handlers

import (
	"context"
	"errors"
	"net/http"

	"tutor-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	Service *service.ProgressService
}

func NewProgressHandler(s *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{Service: s}
}

func (h *ProgressHandler) GetUserProgress(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	roadmapID := c.Param("id")

	progress, err := h.Service.GetUserProgress(context.Background(), userID, roadmapID)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, progress)
}

// RecommendNextChapter answers with chapter=null once the roadmap is
// fully mastered.
func (h *ProgressHandler) RecommendNextChapter(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	roadmapID := c.Param("id")

	next, err := h.Service.RecommendNextChapter(context.Background(), userID, roadmapID)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chapter":  next,
		"complete": next == nil,
	})
}
