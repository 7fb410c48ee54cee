package server

import (
	"context"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"
)

const (
	defaultReadHeaderTimeout = 10 * time.Second
	defaultWriteTimeout      = 120 * time.Second
	defaultIdleTimeout       = 120 * time.Second
)

// HTTPServer serves the MCP streamable-http endpoint alongside health and
// metrics endpoints.
type HTTPServer struct {
	mcpServer   *mcpserver.MCPServer
	mcpEndpoint string
	metrics     *Metrics
	httpServer  *http.Server
}

// NewHTTPServer creates an HTTP server for the MCP server. metrics may be nil.
func NewHTTPServer(mcpSrv *mcpserver.MCPServer, mcpEndpoint string, metrics *Metrics) *HTTPServer {
	return &HTTPServer{
		mcpServer:   mcpSrv,
		mcpEndpoint: mcpEndpoint,
		metrics:     metrics,
	}
}

// Handler returns the request router.
func (s *HTTPServer) Handler() http.Handler {
	mux := http.NewServeMux()

	if s.mcpServer != nil {
		mux.Handle(s.mcpEndpoint, mcpserver.NewStreamableHTTPServer(s.mcpServer,
			mcpserver.WithEndpointPath(s.mcpEndpoint),
		))
	}

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if s.metrics != nil {
		mux.Handle("/metrics", s.metrics.Handler())
	}

	return mux
}

// Start listens on addr and blocks until the server stops.
func (s *HTTPServer) Start(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: defaultReadHeaderTimeout,
		WriteTimeout:      defaultWriteTimeout,
		IdleTimeout:       defaultIdleTimeout,
	}
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
