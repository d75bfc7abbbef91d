package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/classbook/internal/app/models/dto"
	"github.com/yigit/classbook/internal/pkg/logger"
)

// Pinger is satisfied by *pgxpool.Pool
type Pinger interface {
	Ping(ctx context.Context) error
}

// SystemController serves the banner and health check
type SystemController struct {
	db Pinger
}

// NewSystemController creates a new SystemController
func NewSystemController(db Pinger) *SystemController {
	return &SystemController{db: db}
}

// Root godoc
// @Summary Service banner
// @Tags system
// @Produce json
// @Success 200 {object} dto.MessageResponse
// @Router / [get]
func (c *SystemController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "classbook is running"})
}

// Health godoc
// @Summary Health check
// @Description Pings the database pool.
// @Tags system
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (c *SystemController) Health(ctx *gin.Context) {
	pingCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
	defer cancel()

	if err := c.db.Ping(pingCtx); err != nil {
		logger.Warn().Err(err).Msg("Health check failed")
		ctx.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}
