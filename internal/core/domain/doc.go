// Package domain defines the core entities of topicsearch.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - IndexEntry: A searchable item (crate, book page, std symbol)
//   - Category: The tag that drives ranking weight
//   - MatchOutcome: How a query matched a single string
//   - RankedResult: A weighted, ordered search hit
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
