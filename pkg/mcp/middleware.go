package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// loggingMiddleware returns a ToolHandlerMiddleware that records every tool
// call with its duration on the server's structured logger. Logs go to
// stderr so the stdio transport keeps stdout to itself.
func (s *Server) loggingMiddleware() server.ToolHandlerMiddleware {
	return func(next server.ToolHandlerFunc) server.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			result, err := next(ctx, req)
			elapsed := time.Since(start).Milliseconds()

			if err != nil {
				s.log.Error("tool call failed",
					"tool", req.Params.Name, "ms", elapsed, "error", err)
				return result, err
			}

			isError := result != nil && result.IsError
			s.log.Info("tool call",
				"tool", req.Params.Name, "ms", elapsed, "is_error", isError)
			return result, err
		}
	}
}
