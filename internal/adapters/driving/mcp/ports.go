package mcp

import (
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports the MCP server calls.
type Ports struct {
	// Search ranks index entries. Required.
	Search driving.SearchService

	// Index looks up entries and index stats. Optional; without it the
	// describe_entry tool and the resources are not registered.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
