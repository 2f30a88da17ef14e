// Package api exposes the control surface: job submission and lifecycle
// actions, event history, runtime configuration, revisions, health, and the
// WebSocket event stream.
package api

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/database"
	"github.com/cardigan-project/cardigan/pkg/events"
	"github.com/cardigan-project/cardigan/pkg/queue"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// Server holds the handler dependencies. Handlers stay thin: parameter
// parsing and status mapping here, business rules in the services.
type Server struct {
	jobs      *services.JobService
	eventsSvc *services.EventService
	configSvc *services.ConfigService
	pool      *queue.WorkerPool
	hub       *events.Hub
	publisher *events.Publisher
	store     *artifacts.Store
	db        *database.Client
	metrics   *apiMetrics
	logger    *slog.Logger
}

// NewServer creates the API server. pool, hub, and db may be nil; the
// affected endpoints degrade rather than the whole server.
func NewServer(jobs *services.JobService, eventsSvc *services.EventService, configSvc *services.ConfigService, pool *queue.WorkerPool, hub *events.Hub, publisher *events.Publisher, store *artifacts.Store, db *database.Client, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	return &Server{
		jobs:      jobs,
		eventsSvc: eventsSvc,
		configSvc: configSvc,
		pool:      pool,
		hub:       hub,
		publisher: publisher,
		store:     store,
		db:        db,
		metrics:   newAPIMetrics(jobs, pool),
		logger:    logger,
	}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())
	r.Use(securityHeaders())
	r.Use(s.metrics.middleware())

	r.GET("/health", s.healthHandler)
	r.GET("/metrics", gin.WrapH(s.metrics.handler()))
	r.GET("/ws", s.wsHandler)

	v1 := r.Group("/api/v1")
	{
		v1.POST("/queue", s.createJobHandler)
		v1.GET("/jobs", s.listJobsHandler)
		v1.DELETE("/jobs", s.bulkDeleteJobsHandler)
		v1.GET("/jobs/:id", s.getJobHandler)
		v1.PATCH("/jobs/:id", s.updateJobHandler)
		v1.POST("/jobs/:id/pause", s.pauseJobHandler)
		v1.POST("/jobs/:id/resume", s.resumeJobHandler)
		v1.POST("/jobs/:id/cancel", s.cancelJobHandler)
		v1.POST("/jobs/:id/retry", s.retryJobHandler)
		v1.GET("/jobs/:id/events", s.listJobEventsHandler)
		v1.POST("/jobs/:id/revisions", s.createRevisionHandler)
		v1.GET("/config", s.getConfigHandler)
		v1.PUT("/config", s.updateConfigHandler)
	}

	return r
}

// requestLogger logs one line per request at debug level, errors at warn.
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		status := c.Writer.Status()
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", status,
		}
		if status >= http.StatusInternalServerError {
			s.logger.Warn("Request failed", attrs...)
			return
		}
		s.logger.Debug("Request handled", attrs...)
	}
}

// securityHeaders sets standard security response headers.
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}
