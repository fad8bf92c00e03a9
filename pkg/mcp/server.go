// Package mcp exposes a generated API reference over the Model Context
// Protocol so coding agents can query component and hook documentation.
package mcp

import (
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/gnana997/apidocs/pkg/reference"
)

const serverVersion = "0.1.0-dev"

// Server implements the MCP server, exposing reference query tools.
type Server struct {
	mcpServer *server.MCPServer
	query     *reference.QueryService
	log       *slog.Logger
}

// NewServer creates an MCP server backed by the given QueryService.
func NewServer(qs *reference.QueryService, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{query: qs, log: logger}

	s.mcpServer = server.NewMCPServer(
		"apidocs",
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithToolHandlerMiddleware(s.loggingMiddleware()),
	)

	s.mcpServer.AddTools(
		server.ServerTool{Tool: listComponentsTool(), Handler: s.handleListComponents},
		server.ServerTool{Tool: listHooksTool(), Handler: s.handleListHooks},
		server.ServerTool{Tool: getComponentApiTool(), Handler: s.handleGetComponentApi},
		server.ServerTool{Tool: getHookApiTool(), Handler: s.handleGetHookApi},
		server.ServerTool{Tool: searchApiTool(), Handler: s.handleSearchApi},
	)

	return s
}

// ServeStdio starts the MCP server on stdin/stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}
