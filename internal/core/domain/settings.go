package domain

// Default settings values.
const (
	// DefaultMinQueryLength applies to the CLI and MCP callers.
	DefaultMinQueryLength = 1

	// InteractiveMinQueryLength applies to search-as-you-type callers.
	InteractiveMinQueryLength = 2
)

// Settings holds the persisted application settings.
type Settings struct {
	Index  IndexSettings
	Search SearchSettings
	MCP    MCPSettings
	Log    LogSettings
}

// IndexSettings configures where the index comes from.
type IndexSettings struct {
	// Path is the index file. "-" means stdin.
	Path string

	// Watch reloads the index when the file changes.
	Watch bool
}

// SearchSettings configures search defaults.
type SearchSettings struct {
	// Limit is the default result count.
	Limit int

	// MinQueryLength is the default minimum query length in runes.
	MinQueryLength int

	// Categories is the default category filter. Empty means all.
	Categories []Category
}

// MCPSettings configures the MCP server.
type MCPSettings struct {
	// Port is the HTTP port. 0 means stdio.
	Port int
}

// LogSettings configures logging.
type LogSettings struct {
	// Verbose enables debug output on stderr.
	Verbose bool
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	return &Settings{
		Search: SearchSettings{
			Limit:          MaxResults,
			MinQueryLength: DefaultMinQueryLength,
		},
	}
}

// Validate checks the settings for out-of-range values.
func (s *Settings) Validate() error {
	if s.Search.Limit < 0 || s.Search.Limit > MaxResults {
		return ErrInvalidInput
	}
	if s.Search.MinQueryLength < 0 {
		return ErrInvalidInput
	}
	if s.MCP.Port < 0 || s.MCP.Port > 65535 {
		return ErrInvalidInput
	}
	return nil
}
