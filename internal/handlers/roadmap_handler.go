package handlers

import (
	"context"
	"errors"
	"net/http"

	"tutor-service/internal/models"
	"tutor-service/internal/service"

	"github.com/gin-gonic/gin"
)

type RoadmapHandler struct {
	Service *service.ContentService
}

func NewRoadmapHandler(s *service.ContentService) *RoadmapHandler {
	return &RoadmapHandler{Service: s}
}

func (h *RoadmapHandler) ListRoadmaps(c *gin.Context) {
	roadmaps, err := h.Service.ListRoadmaps(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roadmaps)
}

func (h *RoadmapHandler) GetRoadmap(c *gin.Context) {
	id := c.Param("id")
	roadmap, err := h.Service.GetRoadmap(context.Background(), id)
	if err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	chapters, err := h.Service.GetChapters(context.Background(), roadmap.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roadmap":  roadmap,
		"chapters": chapters,
	})
}

func (h *RoadmapHandler) CreateRoadmap(c *gin.Context) {
	var roadmap models.Roadmap
	if err := c.ShouldBindJSON(&roadmap); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateRoadmap(context.Background(), &roadmap); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, roadmap)
}

func (h *RoadmapHandler) CreateChapter(c *gin.Context) {
	var chapter models.Chapter
	if err := c.ShouldBindJSON(&chapter); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	chapter.RoadmapID = c.Param("id")
	if err := h.Service.CreateChapter(context.Background(), &chapter); err != nil {
		if errors.Is(err, service.ErrRoadmapNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Roadmap not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, chapter)
}
