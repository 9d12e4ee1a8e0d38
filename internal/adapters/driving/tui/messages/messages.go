// Package messages defines Bubbletea message types for the TUI.
package messages

import (
	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

// QueryDebounced fires once typing has paused. Seq identifies the edit
// that scheduled it; stale ticks are ignored.
type QueryDebounced struct {
	Seq   int
	Query string
}

// SearchCompleted carries search results back to the model.
type SearchCompleted struct {
	Seq     int
	Query   string
	Results []domain.RankedResult
	Err     error
}

// EntrySelected is sent when the user picks an entry.
type EntrySelected struct {
	Entry domain.IndexEntry
}

// DetailsRequested asks the app to show an entry's details.
type DetailsRequested struct {
	ID string
}

// EntryLoaded carries the full entry for the details view.
type EntryLoaded struct {
	Entry *domain.IndexEntry
	Err   error
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewSearch is the search input and results view.
	ViewSearch ViewType = iota
	// ViewDetails shows a single entry.
	ViewDetails
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewSearch:
		return "search"
	case ViewDetails:
		return "details"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit without a selection.
type Quit struct{}
