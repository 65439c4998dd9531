// Package tools wires the Reminders tool surface onto an MCP server.
// Each handler composes script builder, executor, and parser; every error
// is caught locally and converted to the standard JSON envelope so nothing
// crosses the tool boundary.
package tools

import (
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/jagadeesh52423/remainders-mcp/internal/applescript"
	"github.com/jagadeesh52423/remainders-mcp/internal/reminders"
)

const (
	serverName    = "reminders-mcp"
	serverVersion = "1.0.0"
)

// Input bounds shared by single and batch operations.
const (
	maxNameLen  = 255
	maxBodyLen  = 10000
	maxBatchLen = 100
)

// Server is the MCP server exposing macOS Reminders as tools.
type Server struct {
	mcpServer *server.MCPServer
	runner    applescript.Runner
	log       *logrus.Entry
}

// NewServer builds the server on the given script runner. Production binds
// the osascript executor; tests bind a stub.
func NewServer(runner applescript.Runner, log *logrus.Entry) *Server {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	s := &Server{runner: runner, log: log}

	s.mcpServer = server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
	)

	s.registerListTools()
	s.registerReminderTools()
	s.registerBatchTools()
	return s
}

// MCPServer returns the underlying MCP server for serving.
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func jsonResult(v any) *mcp.CallToolResult {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return errorResult(err)
	}
	return mcp.NewToolResultText(string(b))
}

// errorResult serializes the typed error envelope and flags the transport
// error bit.
func errorResult(err error) *mcp.CallToolResult {
	b, mErr := json.MarshalIndent(reminders.FormatError(err), "", "  ")
	if mErr != nil {
		return mcp.NewToolResultError(err.Error())
	}
	return mcp.NewToolResultError(string(b))
}
