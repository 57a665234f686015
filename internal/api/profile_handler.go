package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

// ProfileHandler serves the current user's profile.
type ProfileHandler struct {
	users  UserStore
	logger logger.Logger
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(users UserStore, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		users:  users,
		logger: log,
	}
}

// Get handles GET /api/profile.
func (h *ProfileHandler) Get(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), caller)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Info())
}

// Update handles PUT /api/profile. A caller may only update its own
// profile; a mismatched id in the body is Forbidden, mirroring the
// ownership check on content creation.
func (h *ProfileHandler) Update(c *gin.Context) {
	caller, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req models.ProfileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	requestedID, err := uuid.Parse(req.ID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID must be a valid UUID"})
		return
	}

	if requestedID != caller {
		c.JSON(http.StatusForbidden, gin.H{"error": "Invalid user"})
		return
	}

	user, err := h.users.UpdateProfile(c.Request.Context(), caller, req.Name, req.Email)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.logger.Error("Failed to update profile",
			logger.String("user_id", caller.String()),
			logger.Error(err),
		)
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Info())
}
