package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/auth"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/config"
	"github.com/Team-Bro-buggers-C211010/Ai-Content-Generator/internal/logger"
)

const (
	healthStatusHealthy  = "healthy"
	healthStatusDegraded = "degraded"
	healthCheckTimeout   = 2 * time.Second
	serviceName          = "ai-content-generator"
	serviceVersion       = "1.0.0"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) error

// Router holds the API dependencies.
type Router struct {
	cfg        *config.Config
	logger     logger.Logger
	jwtManager *auth.JWTManager

	authHandler    *AuthHandler
	profileHandler *ProfileHandler
	contentHandler *ContentHandler

	pingDB    HealthChecker
	pingRedis HealthChecker

	promRegistry *prometheus.Registry
}

// RouterDeps bundles everything the router needs.
type RouterDeps struct {
	Config     *config.Config
	Logger     logger.Logger
	JWTManager *auth.JWTManager

	Users   UserStore
	Content ContentService

	PingDB    HealthChecker
	PingRedis HealthChecker

	PromRegistry *prometheus.Registry
}

// NewRouter creates a new API router.
func NewRouter(deps RouterDeps) *Router {
	return &Router{
		cfg:            deps.Config,
		logger:         deps.Logger,
		jwtManager:     deps.JWTManager,
		authHandler:    NewAuthHandler(deps.Users, deps.JWTManager, deps.Logger),
		profileHandler: NewProfileHandler(deps.Users, deps.Logger),
		contentHandler: NewContentHandler(deps.Content, deps.Logger),
		pingDB:         deps.PingDB,
		pingRedis:      deps.PingRedis,
		promRegistry:   deps.PromRegistry,
	}
}

// Engine builds the gin engine with middleware and all routes.
func (r *Router) Engine() *gin.Engine {
	if !r.cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(corsMiddleware(r.cfg.Server.CORSOrigins))
	router.Use(loggingMiddleware(r.logger))

	// Public routes
	router.GET("/health", r.healthCheck)
	if r.promRegistry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(r.promRegistry, promhttp.HandlerOpts{})))
	}

	authGroup := router.Group("/api/auth")
	authGroup.POST("/register", r.authHandler.Register)
	authGroup.POST("/login", r.authHandler.Login)

	// Protected routes
	api := router.Group("/api")
	api.Use(authMiddleware(r.jwtManager))

	api.GET("/profile", r.profileHandler.Get)
	api.PUT("/profile", r.profileHandler.Update)

	contentGroup := api.Group("/content")
	contentGroup.POST("", r.contentHandler.Create)
	contentGroup.GET("", r.contentHandler.List)
	contentGroup.GET("/:id", r.contentHandler.Get)

	return router
}

// healthCheck returns the service health status with dependency checks.
func (r *Router) healthCheck(c *gin.Context) {
	health := gin.H{
		"status":  healthStatusHealthy,
		"service": serviceName,
		"version": serviceVersion,
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), healthCheckTimeout)
	defer cancel()

	if r.pingDB != nil {
		connected := r.pingDB(ctx) == nil
		health["database"] = gin.H{"connected": connected}
		if !connected {
			health["status"] = healthStatusDegraded
		}
	}

	if r.pingRedis != nil {
		connected := r.pingRedis(ctx) == nil
		health["redis"] = gin.H{"connected": connected}
		if !connected {
			health["status"] = healthStatusDegraded
		}
	}

	c.JSON(200, health)
}
