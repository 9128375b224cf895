package mcp

import (
	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/jobscout/internal/mcp/tools"
	"github.com/honeycarbs/jobscout/pkg/logging"
)

type ToolRegistry struct {
	logger *logging.Logger
}

func NewToolRegistry(logger *logging.Logger) *ToolRegistry {
	return &ToolRegistry{logger: logger}
}

// RegisterAll installs every tool backed by res and returns their names
func (r *ToolRegistry) RegisterAll(server *sdkmcp.Server, res *Resources) []string {
	var opts []tools.Option
	if res != nil {
		opts = append(opts, tools.WithJobSearch(res.JobService))
	}
	return tools.Register(server, r.logger, opts...)
}
