package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

// ContentService is the pipeline surface the content handlers need.
// Implemented by content.Service.
type ContentService interface {
	Generate(ctx context.Context, callerID uuid.UUID, req *models.GenerateRequest) (*models.Content, error)
	List(ctx context.Context, callerID uuid.UUID) ([]models.Content, error)
	Get(ctx context.Context, callerID, id uuid.UUID) (*models.Content, error)
}

// ContentHandler handles the content API.
type ContentHandler struct {
	service ContentService
	logger  logger.Logger
}

// NewContentHandler creates a new content handler.
func NewContentHandler(service ContentService, log logger.Logger) *ContentHandler {
	return &ContentHandler{
		service: service,
		logger:  log,
	}
}

// Create handles POST /api/content: the full generation pipeline.
func (h *ContentHandler) Create(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": []string{"invalid request body"}})
		return
	}

	record, err := h.service.Generate(c.Request.Context(), caller, &req)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, record)
}

// List handles GET /api/content: the caller's records, newest first.
func (h *ContentHandler) List(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	contents, err := h.service.List(c.Request.Context(), caller)
	if err != nil {
		h.logger.Error("Failed to list contents",
			logger.String("user_id", caller.String()),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch content"})
		return
	}

	c.JSON(http.StatusOK, contents)
}

// Get handles GET /api/content/:id.
func (h *ContentHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	id, ok := parseUUID(c, "id", "content")
	if !ok {
		return
	}

	record, err := h.service.Get(c.Request.Context(), caller, id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}
