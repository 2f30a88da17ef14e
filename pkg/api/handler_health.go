package api

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/database"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
	"github.com/cardigan-project/cardigan/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's result inside the health response.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is the GET /health payload. Pool and Stats describe the
// queue; ActiveTiers is the routing ladder currently in effect.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Version     string                 `json:"version"`
	Checks      map[string]HealthCheck `json:"checks"`
	Pool        *queue.PoolHealth      `json:"pool,omitempty"`
	Stats       *services.QueueStats   `json:"stats,omitempty"`
	ActiveTiers []string               `json:"active_tiers,omitempty"`
}

// healthHandler handles GET /health. Only the engine's own components are
// checked; LLM providers are external and excluded so an upstream outage
// does not get the process restarted.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if s.db != nil {
		if _, err := database.Health(ctx, s.db.DB()); err != nil {
			status = healthStatusUnhealthy
			checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
		} else {
			checks["database"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	var poolHealth *queue.PoolHealth
	if s.pool != nil {
		ph, err := s.pool.Health(ctx)
		if err != nil {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: err.Error()}
		} else {
			poolHealth = ph
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	stats, err := s.jobs.QueueStats(ctx)
	if err != nil {
		s.logger.Warn("Failed to compute queue stats for health", "error", err)
		stats = nil
	}

	var tiers []string
	if current := s.configSvc.Current(); current.Routing != nil {
		for _, tier := range current.Routing.Tiers {
			tiers = append(tiers, fmt.Sprintf("%s (%s)", tier.Label, tier.Provider))
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:      status,
		Version:     version.GitCommit,
		Checks:      checks,
		Pool:        poolHealth,
		Stats:       stats,
		ActiveTiers: tiers,
	})
}
