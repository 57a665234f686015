package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/models"
)

// UserStore is the persistence surface the auth and profile handlers
// need. Implemented by database.UserRepository.
type UserStore interface {
	Create(ctx context.Context, name, email, passwordHash string) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, id uuid.UUID, name, email string) (*models.User, error)
}

// AuthHandler handles registration and login.
type AuthHandler struct {
	users      UserStore
	jwtManager *auth.JWTManager
	logger     logger.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(users UserStore, jwtManager *auth.JWTManager, log logger.Logger) *AuthHandler {
	return &AuthHandler{
		users:      users,
		jwtManager: jwtManager,
		logger:     log,
	}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.Error("Failed to hash password", logger.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	user, err := h.users.Create(c.Request.Context(), req.Name, req.Email, hash)
	if err != nil {
		if errors.Is(err, models.ErrAlreadyExists) {
			c.JSON(http.StatusConflict, gin.H{"error": "email already registered"})
			return
		}
		h.logger.Error("Failed to create user",
			logger.String("email", req.Email),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register"})
		return
	}

	h.logger.Info("User registered",
		logger.String("user_id", user.ID.String()),
	)

	c.JSON(http.StatusCreated, user.Info())
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	user, err := h.users.GetByEmail(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Warn("Login attempt failed - user not found",
			logger.String("email", req.Email),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	if err := auth.CheckPassword(user.PasswordHash, req.Password); err != nil {
		h.logger.Warn("Login attempt failed - invalid password",
			logger.String("email", req.Email),
		)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	token, err := h.jwtManager.GenerateToken(user)
	if err != nil {
		h.logger.Error("Failed to generate token",
			logger.String("user_id", user.ID.String()),
			logger.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}

	h.logger.Info("User logged in",
		logger.String("user_id", user.ID.String()),
	)

	c.JSON(http.StatusOK, models.LoginResponse{
		Token:     token,
		ExpiresAt: time.Now().Add(h.jwtManager.Expiration()),
		User:      user.Info(),
	})
}
