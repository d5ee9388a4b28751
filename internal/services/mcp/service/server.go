package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/louisbranch/launchdash/internal/dataset"
	"github.com/louisbranch/launchdash/internal/services/mcp/domain"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// serverName identifies the MCP server to clients.
	serverName = "launchdash"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Server hosts the launch tools over an MCP transport.
type Server struct {
	mcpServer *mcp.Server
}

// New registers the launch tools over data.
func New(data *dataset.Dataset) (*Server, error) {
	if data == nil {
		return nil, errors.New("dataset is required")
	}
	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)
	registerLaunchTools(mcpServer, data)
	return &Server{mcpServer: mcpServer}, nil
}

// registerLaunchTools adds every launch tool to server.
func registerLaunchTools(server *mcp.Server, data *dataset.Dataset) {
	mcp.AddTool(server, domain.LaunchSummaryTool(), domain.LaunchSummaryHandler(data))
	mcp.AddTool(server, domain.SuccessProportionsTool(), domain.SuccessProportionsHandler(data))
	mcp.AddTool(server, domain.PayloadCorrelationTool(), domain.PayloadCorrelationHandler(data))
}

// Run serves the launch tools over stdio until ctx is cancelled or the client
// disconnects.
func Run(ctx context.Context, data *dataset.Dataset) error {
	server, err := New(data)
	if err != nil {
		return err
	}
	return server.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport runs the MCP server on transport. Context cancellation is
// a clean stop.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}
