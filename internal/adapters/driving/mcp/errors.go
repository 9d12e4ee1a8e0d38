// Package mcp exposes topicsearch over the Model Context Protocol so AI
// assistants can look up index entries.
package mcp

import "errors"

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")
