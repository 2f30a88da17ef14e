package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cardigan-project/cardigan/pkg/models"
)

// getConfigHandler handles GET /api/v1/config.
func (s *Server) getConfigHandler(c *gin.Context) {
	c.JSON(http.StatusOK, s.configSvc.Current())
}

// updateConfigHandler handles PUT /api/v1/config. Accepted sections take
// effect for jobs claimed after the update; running jobs keep the snapshot
// they started with.
func (s *Server) updateConfigHandler(c *gin.Context) {
	var update models.ConfigUpdate
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	updated, err := s.configSvc.Update(c.Request.Context(), update)
	if err != nil {
		s.mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
