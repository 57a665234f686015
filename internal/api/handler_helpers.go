package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/openrouter"
)

// parseUUID parses a UUID from a gin.Context parameter
func parseUUID(c *gin.Context, paramName, entityType string) (uuid.UUID, bool) {
	idParam := c.Param(paramName)
	id, err := uuid.Parse(idParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid " + entityType + " ID format",
		})
		return uuid.Nil, false
	}
	return id, true
}

// handleServiceError maps pipeline and repository errors to HTTP
// responses. Upstream generation detail is logged by the service but
// never leaked verbatim to the caller.
func handleServiceError(c *gin.Context, err error) {
	var validationErr *models.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Messages})
		return
	}

	if errors.Is(err, models.ErrForbidden) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user"})
		return
	}

	if errors.Is(err, models.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
		return
	}

	if errors.Is(err, models.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Already exists"})
		return
	}

	var genErr *openrouter.GenerationError
	if errors.As(err, &genErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate content"})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}
