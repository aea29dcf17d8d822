// Package service binds the credential-config and request-dispatch logic to
// the MCP tool surface. It registers the init_config, api_request and
// locate_config tools on an MCP server and serves them over stdio or HTTP.
package service

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/yooztech/mcp-api-request/internal/apireq/config"
	"github.com/yooztech/mcp-api-request/internal/apireq/versions"
)

const serverName = "yooztech-mcp-api-request"

// Service owns the MCP server instance and its tool handlers.
type Service struct {
	cfg *config.ConfigParam
	srv *server.MCPServer
}

// New creates the service and registers all tools.
func New(cfg *config.ConfigParam) *Service {
	s := &Service{cfg: cfg}
	s.srv = server.NewMCPServer(
		serverName,
		versions.Version,
		server.WithToolCapabilities(true),
	)
	s.registerTools()
	return s
}

func (s *Service) registerTools() {
	for _, t := range []struct {
		tool    mcp.Tool
		handler server.ToolHandlerFunc
	}{
		{initConfigTool, s.handleInitConfig},
		{apiRequestTool, s.handleAPIRequest},
		{locateConfigTool, s.handleLocateConfig},
	} {
		s.srv.AddTool(t.tool, t.handler)
	}
}

// ServeStdio serves the MCP protocol on stdin/stdout. This is the normal
// hookup for MCP clients; it blocks until stdin closes.
func (s *Service) ServeStdio() error {
	return server.ServeStdio(s.srv)
}
