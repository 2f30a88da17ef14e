package api

import (
	"net/http"

	"github.com/coder/websocket"
	"github.com/gin-gonic/gin"
)

// wsHandler upgrades GET /ws to a WebSocket and hands the connection to the
// hub. Blocks until the client disconnects.
func (s *Server) wsHandler(c *gin.Context) {
	if s.hub == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "event stream not available"})
		return
	}

	conn, err := websocket.Accept(c.Writer, c.Request, &websocket.AcceptOptions{
		// The control API is not exposed beyond the operator network, so
		// cross-origin upgrades are accepted.
		InsecureSkipVerify: true,
	})
	if err != nil {
		s.logger.Warn("WebSocket upgrade failed", "error", err)
		return
	}

	s.hub.HandleConnection(c.Request.Context(), conn)
}
