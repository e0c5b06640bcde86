package http

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	projectUsecases "issuetracker/internal/application/project/usecases"
	"issuetracker/internal/domain/permission"
	"issuetracker/internal/infrastructure/auth"
	"issuetracker/internal/infrastructure/config"
	"issuetracker/internal/infrastructure/email"
	infraPermission "issuetracker/internal/infrastructure/permission"
	"issuetracker/internal/infrastructure/ratelimit"
	"issuetracker/internal/infrastructure/storage"
	"issuetracker/internal/interfaces/http/middleware"
	"issuetracker/internal/shared/db"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/services/markdown"
)

const redisPingTimeout = 3 * time.Second

// initInfrastructure builds repositories and the services use cases share.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg

	c.repos = newRepositories(c.db)
	c.txManager = db.NewTransactionManager(c.db)

	enforcer, err := infraPermission.NewEnforcer(cfg.Auth.Policy.Source, c.db, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize capability table: %w", err)
	}
	c.authz = permission.NewEngine(enforcer)

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessTTL())
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)

	c.blobs, err = storage.NewLocalBlobStore(cfg.Storage.UploadDir, c.log)
	if err != nil {
		return fmt.Errorf("failed to initialize attachment storage: %w", err)
	}

	c.renderer = markdown.NewRenderer()

	c.redis = initRedis(cfg, c.log)
	c.authLimiter = newAuthLimiter(c.redis, cfg)

	return nil
}

// initRedis returns nil when Redis is disabled or unreachable; features
// depending on it degrade instead of failing startup.
func initRedis(cfg *config.Config, log logger.Interface) *redis.Client {
	if !cfg.Redis.Enabled {
		log.Infow("redis disabled, auth rate limiting is off")
		return nil
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), redisPingTimeout)
	defer cancel()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Warnw("failed to connect to redis, auth rate limiting is off", "addr", cfg.Redis.GetAddr(), "error", err)
		_ = redisClient.Close()
		return nil
	}
	log.Infow("redis connection established", "addr", cfg.Redis.GetAddr())

	return redisClient
}

func newAuthLimiter(client *redis.Client, cfg *config.Config) ratelimit.Limiter {
	limitCfg := ratelimit.Config{
		Limit:  cfg.RateLimit.AuthRequests,
		Window: cfg.RateLimit.AuthWindow(),
	}
	if client == nil || !limitCfg.Enabled() {
		return nil
	}
	return ratelimit.NewRedisRateLimiter(client, "auth", limitCfg)
}

func newAssignmentNotifier(cfg *config.Config, log logger.Interface) projectUsecases.AssignmentNotifier {
	if !cfg.Email.Enabled {
		return email.NoopAssignmentNotifier{}
	}
	log.Infow("assignment emails enabled", "smtp_host", cfg.Email.SMTPHost)
	return email.NewSMTPAssignmentNotifier(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
}

func (c *Container) newAuthMiddleware() *middleware.AuthMiddleware {
	return middleware.NewAuthMiddleware(c.jwtSvc, c.ucs.getCurrentUser, c.log)
}
