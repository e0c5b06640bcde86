package http

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/interfaces/http/middleware"
	"issuetracker/internal/interfaces/http/routes"
	"issuetracker/internal/shared/logger"

	_ "issuetracker/docs"
)

// maxMultipartMemory caps the part of an upload gin keeps in memory; the
// rest spills to temp files.
const maxMultipartMemory = 8 << 20

// Router represents the HTTP router configuration
type Router struct {
	engine    *gin.Engine
	container *Container
}

// NewRouter creates a new HTTP router with all dependencies
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	engine := gin.New()
	engine.MaxMultipartMemory = maxMultipartMemory

	container, err := NewContainer(engine, db, cfg, log)
	if err != nil {
		return nil, err
	}

	return &Router{
		engine:    engine,
		container: container,
	}, nil
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	c := r.container
	h := c.hdlrs

	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(c.log))
	r.engine.Use(middleware.Recovery(c.log))
	r.engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	r.engine.GET("/health", h.healthHandler.HealthCheck)
	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler:    h.authHandler,
		AuthMiddleware: c.authMiddleware,
		RateLimit:      middleware.RateLimit(c.authLimiter, c.log),
	})

	routes.SetupProjectRoutes(api, &routes.ProjectRouteConfig{
		ProjectHandler: h.projectHandler,
		AuthMiddleware: c.authMiddleware,
	})

	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:     h.ticketHandler,
		AttachmentHandler: h.attachmentHandler,
		AuthMiddleware:    c.authMiddleware,
	})
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// Shutdown releases resources held by the router's dependencies.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
