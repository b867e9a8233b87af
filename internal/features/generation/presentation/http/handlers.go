package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"appstarter/internal/features/generation/application"
	"appstarter/internal/features/generation/domain"
)

// GenerationHandler holds the generation service.
type GenerationHandler struct {
	generationService application.GenerationService
}

// NewGenerationHandler creates a new GenerationHandler.
func NewGenerationHandler(generationService application.GenerationService) *GenerationHandler {
	return &GenerationHandler{generationService: generationService}
}

// GenerateHandler handles generating, writing and pushing an app starter.
// Push failures still answer 200; the status field tells them apart.
func (h *GenerationHandler) GenerateHandler(c *gin.Context) {
	var req domain.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result, err := h.generationService.Generate(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidIdea) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Println("[ERROR] Failed to generate app:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate app: " + err.Error()})
		return
	}

	if result.Status == domain.StatusFailed {
		c.JSON(http.StatusInternalServerError, result)
		return
	}
	c.JSON(http.StatusOK, result)
}

// AnalyzeHandler returns the metadata for an idea without writing anything.
func (h *GenerationHandler) AnalyzeHandler(c *gin.Context) {
	var req domain.AnalyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	meta, err := h.generationService.Analyze(req.Idea)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, meta)
}

// ListGenerationsHandler returns recent history records.
func (h *GenerationHandler) ListGenerationsHandler(c *gin.Context) {
	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}
	records, err := h.generationService.ListGenerations(c.Request.Context(), limit)
	if err != nil {
		h.historyError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"generations": records})
}

// GetGenerationHandler returns one history record.
func (h *GenerationHandler) GetGenerationHandler(c *gin.Context) {
	rec, err := h.generationService.GetGeneration(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.historyError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

func (h *GenerationHandler) historyError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, application.ErrHistoryDisabled):
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
	default:
		log.Println("[ERROR] Failed to read generation history:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read generation history: " + err.Error()})
	}
}
