package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/boswell-ai/boswell-mcp/pkg/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// keepaliveInterval is how often an idle SSE stream emits a ping event so
// intermediaries don't drop the connection.
const keepaliveInterval = 30 * time.Second

// sessionBroker routes responses from the message endpoint to the SSE stream
// that owns the session. It is the only cross-request mutable state in the
// gateway.
type sessionBroker struct {
	mu       sync.Mutex
	sessions map[string]chan *types.Response
}

func newSessionBroker() *sessionBroker {
	return &sessionBroker{sessions: make(map[string]chan *types.Response)}
}

func (b *sessionBroker) open() (string, chan *types.Response) {
	id := uuid.NewString()
	ch := make(chan *types.Response, 16)
	b.mu.Lock()
	b.sessions[id] = ch
	b.mu.Unlock()
	return id, ch
}

func (b *sessionBroker) get(id string) (chan *types.Response, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	ch, ok := b.sessions[id]
	return ch, ok
}

func (b *sessionBroker) close(id string) {
	b.mu.Lock()
	delete(b.sessions, id)
	b.mu.Unlock()
}

// sseHandler implements the SSE transport: it announces the session's message
// endpoint, then streams queued responses until the client disconnects.
func (s *Server) sseHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ch := s.sessions.open()
		defer s.sessions.close(id)

		c.Header("Content-Type", "text/event-stream")
		c.Header("Cache-Control", "no-cache")
		c.Header("Connection", "keep-alive")

		endpoint := fmt.Sprintf("%s://%s/messages/%s", requestScheme(c.Request), c.Request.Host, id)
		fmt.Fprintf(c.Writer, "event: endpoint\ndata: %s\n\n", endpoint)
		c.Writer.Flush()

		s.logger.Debug("sse session opened", zap.String("session", id))

		keepalive := time.NewTicker(keepaliveInterval)
		defer keepalive.Stop()

		for {
			select {
			case <-c.Request.Context().Done():
				s.logger.Debug("sse session closed", zap.String("session", id))
				return
			case resp := <-ch:
				data, err := json.Marshal(resp)
				if err != nil {
					s.logger.Error("failed to encode sse message", zap.Error(err))
					continue
				}
				fmt.Fprintf(c.Writer, "event: message\ndata: %s\n\n", data)
				c.Writer.Flush()
			case <-keepalive.C:
				fmt.Fprint(c.Writer, "event: ping\ndata: \n\n")
				c.Writer.Flush()
			}
		}
	}
}

// sseMessageHandler receives RPC requests POSTed by an SSE client and queues
// the responses onto the session's stream.
func (s *Server) sseMessageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("session_id")
		ch, ok := s.sessions.get(id)
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "Session not found. Connect to /sse first."})
			return
		}

		req, decoded := decodeRequest(c)
		if !decoded {
			return
		}

		if resp := s.processRequest(c.Request.Context(), req); resp != nil {
			select {
			case ch <- resp:
			default:
				s.logger.Warn("dropping response for slow sse session", zap.String("session", id))
			}
		}
		c.Status(http.StatusAccepted)
	}
}

// requestScheme picks the public scheme for the message endpoint URL,
// trusting the proxy's X-Forwarded-Proto when present.
func requestScheme(r *http.Request) string {
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if r.TLS != nil {
		return "https"
	}
	return "http"
}
