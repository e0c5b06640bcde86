package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"issuetracker/internal/domain/permission"
	"issuetracker/internal/infrastructure/auth"
	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/infrastructure/ratelimit"
	"issuetracker/internal/infrastructure/storage"
	"issuetracker/internal/interfaces/http/middleware"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/services/markdown"
)

// Container holds infrastructure components, repositories, use cases and
// handlers, and wires them together.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Services shared by several use cases
	jwtSvc    *auth.JWTService
	hasher    *auth.BcryptPasswordHasher
	authz     *permission.Engine
	txManager db.Transactor
	blobs     *storage.LocalBlobStore
	renderer  markdown.Renderer

	authMiddleware *middleware.AuthMiddleware
	authLimiter    ratelimit.Limiter
}

// NewContainer wires every component. Infrastructure first, then use
// cases, then handlers.
func NewContainer(engine *gin.Engine, database *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: engine,
		db:     database,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}
	c.initUseCases()
	c.initHandlers()

	return c, nil
}

// Shutdown releases connections the container opened itself. The database
// is owned by the caller.
func (c *Container) Shutdown() {
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close redis client", "error", err)
		}
	}
}
