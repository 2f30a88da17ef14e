package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/config"
	"github.com/cardigan-project/cardigan/pkg/services"
)

// mapServiceError translates service-layer errors into HTTP responses.
// Validation failures are 422: the request parsed, the content did not.
func (s *Server) mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": validErr.Error()})
		return
	}
	var cfgErr *config.ValidationError
	if errors.As(err, &cfgErr) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": cfgErr.Error()})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrDuplicateTranscript) {
		resp := gin.H{"error": "a job for this transcript is already active"}
		var dupErr *services.DuplicateTranscriptError
		if errors.As(err, &dupErr) {
			resp["existing_job_id"] = dupErr.ExistingJobID
		}
		c.JSON(http.StatusConflict, resp)
		return
	}
	if errors.Is(err, services.ErrInvalidTransition) {
		c.JSON(http.StatusConflict, gin.H{"error": "job is not in a state that allows this action"})
		return
	}
	if errors.Is(err, services.ErrConcurrentModification) {
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification detected, retry the request"})
		return
	}

	s.logger.Error("Unexpected service error", "path", c.Request.URL.Path, "error", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
