// Package tui provides the interactive search-as-you-type terminal UI.
package tui

import (
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
)

// Ports aggregates the driving ports the TUI calls.
type Ports struct {
	// Search ranks index entries. Required.
	Search driving.SearchService

	// Index loads full entries for the details view. Optional.
	Index driving.IndexService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil || p.Search == nil {
		return ErrMissingSearchService
	}
	return nil
}
