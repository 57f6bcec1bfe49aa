package api

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/boswell-ai/boswell-mcp/internal/boswell"
	"github.com/boswell-ai/boswell-mcp/internal/registry"
	"github.com/gin-gonic/gin"
)

// quickBriefHandler is a direct passthrough to the backend's quick-brief
// endpoint, outside the RPC envelope. Unlike tool calls, backend failures
// here propagate their HTTP status so plain HTTP consumers can react to it.
func (s *Server) quickBriefHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		branch := c.DefaultQuery("branch", registry.DefaultBranch)
		result, err := s.backend.Call(
			c.Request.Context(), http.MethodGet, "/quick-brief", url.Values{"branch": {branch}}, nil,
		)
		if err != nil {
			var be *boswell.Error
			if errors.As(err, &be) && be.StatusCode != 0 {
				c.JSON(be.StatusCode, be)
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}
