package app

import (
	"github.com/sirupsen/logrus"

	"github.com/plausible-tools/plausible-mcp-server/internal/mcp"
	"github.com/plausible-tools/plausible-mcp-server/internal/plausible"
	"github.com/plausible-tools/plausible-mcp-server/internal/tools"
)

// NewDispatcher builds the tool registry around one Plausible client.
func NewDispatcher(cfg plausible.Config, log *logrus.Entry) *mcp.Dispatcher {
	client := plausible.NewClient(cfg)
	return mcp.NewDispatcher(log,
		tools.PlausibleQuery(client),
	)
}

// NewServer constructs an MCP server with the shared dispatcher.
func NewServer(cfg plausible.Config, log *logrus.Entry) *mcp.Server {
	return mcp.NewServer(NewDispatcher(cfg, log))
}

// RunMCPHTTP starts the MCP HTTP server on the provided address.
func RunMCPHTTP(cfg plausible.Config, log *logrus.Entry, addr string) error {
	return mcp.RunHTTP(NewServer(cfg, log), addr)
}
