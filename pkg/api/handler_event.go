package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/models"
)

// listJobEventsHandler handles GET /api/v1/jobs/:id/events.
func (s *Server) listJobEventsHandler(c *gin.Context) {
	id, ok := jobIDParam(c)
	if !ok {
		return
	}

	var filters models.EventFilters
	if err := c.ShouldBindQuery(&filters); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters: " + err.Error()})
		return
	}

	// The job must exist; an empty event list for a bad id would read as
	// success.
	if _, err := s.jobs.GetJob(c.Request.Context(), id, false); err != nil {
		s.mapServiceError(c, err)
		return
	}

	page, err := s.eventsSvc.ListJobEvents(c.Request.Context(), id, filters)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, page)
}
