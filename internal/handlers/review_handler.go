package handlers

import (
	"context"
	"net/http"
	"time"

	"tutor-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

// GetScheduledReviews lists the questions due for the authenticated
// user. as_of overrides the reference time (RFC 3339), mainly for
// clients showing "due by tomorrow" style previews.
func (h *ReviewHandler) GetScheduledReviews(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	asOf := time.Now().UTC()
	if raw := c.Query("as_of"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "as_of must be RFC 3339"})
			return
		}
		asOf = parsed
	}

	reviews, err := h.Service.GetScheduledReviews(context.Background(), userID, asOf)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"as_of":   asOf,
		"count":   len(reviews),
		"reviews": reviews,
	})
}

func (h *ReviewHandler) GetReviewSummary(c *gin.Context) {
	userID := c.GetHeader("X-User-ID")

	summary, err := h.Service.GetReviewSummary(context.Background(), userID, time.Now().UTC())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, summary)
}
