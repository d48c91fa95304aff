// Package mcp provides an MCP (Model Context Protocol) server adapter
// for prepkit. It exposes the preprocessing transforms as tools for AI
// assistants.
package mcp

import (
	"context"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// Version is the MCP server version.
const Version = "0.1.0"

// Server is the MCP server for prepkit. The transforms it exposes are
// pure functions, so the server carries no state beyond the protocol
// plumbing.
type Server struct {
	server *mcp.Server
}

// NewServer creates a new MCP server with all transform tools registered.
func NewServer() *Server {
	impl := &mcp.Implementation{
		Name:    "prepkit",
		Version: Version,
	}

	s := &Server{
		server: mcp.NewServer(impl, nil),
	}

	s.registerTools()

	return s
}

// Run starts the MCP server over stdio.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) Run(ctx context.Context) error {
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP starts the MCP server over HTTP on the specified address.
// It blocks until the context is cancelled or an error occurs.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown when context is cancelled
	go func() {
		<-ctx.Done()
		httpServer.Shutdown(context.Background()) //nolint:errcheck
	}()

	err := httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}
