package tui

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("tui: search service is required")

// ErrNoIndexService is shown when details are requested without an index port.
var ErrNoIndexService = errors.New("tui: entry details are unavailable")
