package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"issuetracker/internal/shared/biztime"
	"issuetracker/internal/shared/logger"
	"issuetracker/internal/shared/utils"
)

const healthCheckTimeout = 2 * time.Second

type HealthResponse struct {
	Status    string    `json:"status"`
	Database  string    `json:"database"`
	Timestamp time.Time `json:"timestamp"`
}

type HealthHandler struct {
	db     *gorm.DB
	logger logger.Interface
}

func NewHealthHandler(db *gorm.DB, logger logger.Interface) *HealthHandler {
	return &HealthHandler{db: db, logger: logger}
}

// HealthCheck godoc
// @Summary Liveness check
// @Tags system
// @Produce json
// @Success 200 {object} utils.APIResponse{data=HealthResponse}
// @Failure 503 {object} utils.APIResponse{data=HealthResponse}
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	resp := HealthResponse{Status: "ok", Database: "ok", Timestamp: biztime.NowUTC()}

	if err := h.pingDatabase(c.Request.Context()); err != nil {
		h.logger.Errorw("health check database ping failed", "error", err)
		resp.Status = "degraded"
		resp.Database = "unavailable"
		c.JSON(http.StatusServiceUnavailable, utils.APIResponse{Success: false, Data: resp, Message: "database unavailable"})
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
