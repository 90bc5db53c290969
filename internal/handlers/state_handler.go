package handlers

import (
	"context"
	"errors"
	"net/http"

	"tutor-service/internal/service"

	"github.com/gin-gonic/gin"
)

type StateHandler struct {
	Service *service.StateService
}

func NewStateHandler(s *service.StateService) *StateHandler {
	return &StateHandler{Service: s}
}

// GetUserState returns the composed snapshot. The roadmap_id query
// parameter is optional; without it the default roadmap is used.
func (h *StateHandler) GetUserState(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")
	roadmapID := c.Query("roadmap_id")

	state, err := h.Service.GetUserState(context.Background(), userID, roadmapID)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, state)
}
