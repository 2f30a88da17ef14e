package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/models"
)

// jobIDParam parses the :id path parameter. On failure it writes the 400
// response and returns false.
func jobIDParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return 0, false
	}
	return id, true
}

// createJobHandler handles POST /api/v1/queue.
func (s *Server) createJobHandler(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	created, err := s.jobs.CreateJob(c.Request.Context(), req)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.JobQueued(c.Request.Context(), created.ID, created.TranscriptFile, created.ProjectName, created.Priority)
	c.JSON(http.StatusCreated, created)
}

// listJobsHandler handles GET /api/v1/jobs.
func (s *Server) listJobsHandler(c *gin.Context) {
	var filters models.JobFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	page, err := s.jobs.ListJobs(c.Request.Context(), filters)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}

// getJobHandler handles GET /api/v1/jobs/:id, returning the job with its
// phases and a tail of recent events.
func (s *Server) getJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	j, err := s.jobs.GetJob(c.Request.Context(), id, true)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	recent, err := s.eventsSvc.RecentJobEvents(c.Request.Context(), id, 20)
	if err != nil {
		s.logger.Warn("Failed to load recent events", "job_id", id, "error", err)
	}

	c.JSON(http.StatusOK, &models.JobDetailResponse{Job: j, RecentEvents: recent})
}

// updateJobHandler handles PATCH /api/v1/jobs/:id.
func (s *Server) updateJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req models.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.Priority == nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "no updatable fields in request"})
		return
	}

	updated, err := s.jobs.UpdatePriority(c.Request.Context(), id, *req.Priority)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "priority_changed", map[string]interface{}{
		"priority": *req.Priority,
	})
	c.JSON(http.StatusOK, updated)
}

// pauseJobHandler handles POST /api/v1/jobs/:id/pause. A pending job pauses
// immediately; a running job pauses at the next phase boundary.
func (s *Server) pauseJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	paused, err := s.jobs.Pause(c.Request.Context(), id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "pause", nil)
	c.JSON(http.StatusOK, paused)
}

// resumeJobHandler handles POST /api/v1/jobs/:id/resume.
func (s *Server) resumeJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	resumed, err := s.jobs.Resume(c.Request.Context(), id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "resume", nil)
	c.JSON(http.StatusOK, resumed)
}

// cancelJobHandler handles POST /api/v1/jobs/:id/cancel. A job held by a
// worker is cancelled through the pool, which interrupts the run and owns
// the terminal write; otherwise the status flips directly.
func (s *Server) cancelJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	if s.pool != nil && s.pool.CancelJob(id) {
		s.publisher.UserAction(c.Request.Context(), id, "cancel", nil)
		c.JSON(http.StatusAccepted, gin.H{"status": "cancelling"})
		return
	}

	cancelled, err := s.jobs.Cancel(c.Request.Context(), id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "cancel", nil)
	s.publisher.JobCancelled(c.Request.Context(), id)
	c.JSON(http.StatusOK, cancelled)
}

// retryJobHandler handles POST /api/v1/jobs/:id/retry, requeueing a failed
// job. Completed phases keep their artifacts and are skipped on the next run.
func (s *Server) retryJobHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	retried, err := s.jobs.Retry(c.Request.Context(), id)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "retry", nil)
	c.JSON(http.StatusOK, retried)
}

// bulkDeleteJobsHandler handles DELETE /api/v1/jobs, removing jobs in the
// given terminal statuses.
func (s *Server) bulkDeleteJobsHandler(c *gin.Context) {
	var req models.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	deleted, err := s.jobs.BulkDelete(c.Request.Context(), req.Statuses)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, &models.BulkDeleteResponse{Deleted: deleted})
}
