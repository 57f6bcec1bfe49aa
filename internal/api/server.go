// Package api provides the HTTP surface of the Boswell MCP gateway: the
// JSON-RPC front end, the SSE transport, the health check and the
// quick-brief passthrough.
package api

import (
	"fmt"
	"net/http"

	"github.com/boswell-ai/boswell-mcp/internal/boswell"
	"github.com/boswell-ai/boswell-mcp/internal/registry"
	"github.com/boswell-ai/boswell-mcp/internal/service/tool"
	"github.com/boswell-ai/boswell-mcp/internal/telemetry"
	"github.com/boswell-ai/boswell-mcp/pkg/version"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// ServerOptions configures a gateway Server.
type ServerOptions struct {
	// Port is the TCP port to bind the HTTP server to.
	Port string

	// ToolService dispatches tools/call requests to the backend.
	ToolService *tool.Service

	// BackendClient serves the direct quick-brief passthrough endpoint.
	BackendClient *boswell.Client

	OtelProviders *telemetry.Providers
	Logger        *zap.Logger
}

// Server is the gateway HTTP server.
type Server struct {
	port   string
	router *gin.Engine

	tools   *tool.Service
	backend *boswell.Client

	otelProviders *telemetry.Providers
	logger        *zap.Logger

	sessions *sessionBroker
}

// NewServer initializes a new Gin server for the gateway.
func NewServer(opts *ServerOptions) (*Server, error) {
	if opts.ToolService == nil {
		return nil, fmt.Errorf("tool service is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		port:          opts.Port,
		tools:         opts.ToolService,
		backend:       opts.BackendClient,
		otelProviders: opts.OtelProviders,
		logger:        logger,
		sessions:      newSessionBroker(),
	}
	s.router = s.setupRouter()
	return s, nil
}

// Router exposes the root HTTP handler, mainly for tests.
func (s *Server) Router() http.Handler { return s.router }

// Start runs the Gin server (blocking call).
func (s *Server) Start() error {
	if err := s.router.Run(":" + s.port); err != nil {
		return fmt.Errorf("failed to run the server: %w", err)
	}
	return nil
}

func (s *Server) setupRouter() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(corsMiddleware(), gin.Recovery())

	if s.otelProviders.IsEnabled() {
		r.Use(otelgin.Middleware(s.otelProviders.ServiceName()))
		r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	}

	r.GET("/health", s.healthHandler())
	r.POST("/mcp", s.rpcHandler())

	r.GET("/sse", s.sseHandler())
	r.POST("/messages/:session_id", s.sseMessageHandler())

	r.GET("/api/quick-brief", s.quickBriefHandler())

	// Remote MCP connectors are not consistent about the path they POST the
	// envelope to, so any unrouted path is served by method: POST is treated
	// as an RPC request and GET as a health probe.
	r.NoRoute(s.fallbackHandler())

	return r
}

// corsMiddleware applies the permissive CORS headers required by browser-based
// MCP clients to every response, including errors, and short-circuits
// preflight requests.
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusOK)
			return
		}
		c.Next()
	}
}

func (s *Server) fallbackHandler() gin.HandlerFunc {
	health := s.healthHandler()
	rpc := s.rpcHandler()
	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead:
			health(c)
		case http.MethodPost:
			rpc(c)
		default:
			c.Status(http.StatusNotFound)
		}
	}
}

func (s *Server) healthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"server":  version.ServerName,
			"version": version.GetVersion(),
			"tools":   registry.Count(),
		})
	}
}
