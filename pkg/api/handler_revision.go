package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/ent/job"
	"github.com/cardigan-project/cardigan/pkg/artifacts"
	"github.com/cardigan-project/cardigan/pkg/models"
)

// createRevisionHandler handles POST /api/v1/jobs/:id/revisions. Revisions
// never overwrite a deliverable; each one gets the next version suffix.
func (s *Server) createRevisionHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var req models.RevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	var base string
	switch req.Kind {
	case artifacts.BaseCopyRevision:
		base = artifacts.BaseCopyRevision
	case artifacts.BaseKeywordReport:
		base = artifacts.BaseKeywordReport
	default:
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "kind must be one of: " + strings.Join([]string{artifacts.BaseCopyRevision, artifacts.BaseKeywordReport}, ", "),
		})
		return
	}

	if strings.TrimSpace(req.Content) == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "content must not be empty"})
		return
	}

	j, err := s.jobs.GetJob(c.Request.Context(), id, false)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	if j.Status != job.StatusCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "revisions require a completed job"})
		return
	}

	path, version, err := s.store.WriteVersioned(j.ProjectName, base, req.Content)
	if err != nil {
		s.logger.Error("Failed to write revision", "job_id", id, "kind", req.Kind, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to write revision"})
		return
	}

	s.publisher.UserAction(c.Request.Context(), id, "revision", map[string]interface{}{
		"kind":    req.Kind,
		"path":    path,
		"version": version,
	})
	c.JSON(http.StatusCreated, &models.RevisionResponse{Path: path, Version: version})
}
