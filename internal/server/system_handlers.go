package server

import (
	"context"
	"net/http"

	"hotelbooking/internal/api"
	"hotelbooking/internal/db"
	"hotelbooking/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// EventQueue reports how many booking events are waiting to be consumed.
type EventQueue interface {
	QueueLength(ctx context.Context) (int64, error)
}

// Health godoc
// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200 {object} api.HealthResponse
// @Failure      503 {object} api.HealthResponse
// @Router       /health [get]
// The event queue is reported but never fails the check: publishing is best-effort.
func Health(database *sqlx.DB, events EventQueue) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		resp := api.HealthResponse{Status: "ok", Database: "ok"}

		if events != nil {
			if n, err := events.QueueLength(ctx); err != nil {
				logger.WithError(err).Warn("Event queue unreachable")
				resp.Events = "unreachable"
			} else {
				resp.Events = "ok"
				resp.QueuedEvents = &n
			}
		}

		if err := db.HealthCheck(ctx, database); err != nil {
			logger.WithError(err).Error("Health check failed")
			resp.Status = "degraded"
			resp.Database = "unreachable"
			c.JSON(http.StatusServiceUnavailable, resp)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// Metrics godoc
// @Summary      Prometheus metrics
// @Description  Exposes Prometheus metrics in text format
// @Tags         system
// @Produce      plain
// @Success      200 {string} string
// @Router       /metrics [get]
func Metrics() gin.HandlerFunc {
	return gin.WrapH(promhttp.Handler())
}
