// Package cli provides the cobra commands for topicsearch.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topicsearch/internal/adapters/driven/config/file"
	"github.com/custodia-labs/topicsearch/internal/adapters/driven/metrics"
	"github.com/custodia-labs/topicsearch/internal/adapters/driven/storage/indexfile"
	"github.com/custodia-labs/topicsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driven"
	"github.com/custodia-labs/topicsearch/internal/core/ports/driving"
	"github.com/custodia-labs/topicsearch/internal/core/services"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// stdinIndex is the --index value that reads the index from stdin.
const stdinIndex = "-"

// Global flags.
var (
	indexPath   string
	indexFormat string
	configDir   string
	verbose     bool
)

// Services shared by the commands, built by wire before each run.
var (
	settings        *domain.Settings
	settingsService driving.SettingsService
	searchService   driving.SearchService
	indexService    driving.IndexService
	recorder        *metrics.Recorder
	configPath      string

	// indexWatcher is set when the index comes from a file that can be watched.
	indexWatcher *indexfile.Source
)

// wire builds the services for a command run. Tests replace it.
var wire = wireServices

var rootCmd = &cobra.Command{
	Use:   "topicsearch",
	Short: "Fuzzy search over a documentation index",
	Long: `topicsearch finds crates, book pages and standard-library items in a
prebuilt documentation index.

Queries are matched against each entry's name and aliases. Exact and prefix
matches rank above word-start, substring and fuzzy matches, and crates rank
above book pages and std items.

The index is a JSON or YAML array of entries:

  [{"id": 1, "name": "tokio", "category": "crate", "searchable": "tokio|async runtime"}]

Point at it with --index or "topicsearch config set index.path <file>".`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		return wire(cmd)
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&indexPath, "index", "i", "", `index file (.json, .yaml, .yml), or "-" for stdin`)
	pf.StringVar(&indexFormat, "index-format", string(indexfile.FormatJSON), "format of an index read from stdin")
	pf.StringVar(&configDir, "config-dir", "", "config directory (default ~/"+file.DefaultDirName+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "write diagnostics to stderr")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// wireServices loads the config and builds the services from it.
// Command-line flags override config values.
func wireServices(cmd *cobra.Command) error {
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	configPath = store.Path()

	svc := services.NewSettingsService(store)
	settingsService = svc

	settings, err = svc.Get()
	if err != nil {
		// Keep going on defaults so "config set" can repair the value.
		logger.Warn("invalid config, using defaults: %v", err)
		settings = domain.DefaultSettings()
	}
	logger.SetVerbose(verbose || settings.Log.Verbose)

	recorder = metrics.New()

	path := settings.Index.Path
	if indexPath != "" {
		path = indexPath
	}
	source, err := openIndex(cmd, path)
	if err != nil {
		return err
	}

	searchService = services.NewSearchService(source, recorder)
	indexService = services.NewIndexService(source)
	return nil
}

// openIndex returns the index source for path. An empty path yields a nil
// source; the services then report domain.ErrIndexUnavailable.
func openIndex(cmd *cobra.Command, path string) (driven.IndexSource, error) {
	indexWatcher = nil

	switch path {
	case "":
		logger.Warn("no index configured")
		return nil, nil

	case stdinIndex:
		format, err := indexfile.ParseFormat(indexFormat)
		if err != nil {
			return nil, err
		}
		entries, err := indexfile.Decode(cmd.InOrStdin(), format)
		recorder.ObserveReload(len(entries), err)
		if err != nil {
			return nil, fmt.Errorf("reading index from stdin: %w", err)
		}
		logger.Debug("loaded %d entries from stdin", len(entries))
		return memory.NewIndexStore(entries), nil

	default:
		src, err := indexfile.NewSource(path, recorder)
		if err != nil {
			return nil, fmt.Errorf("opening index %s: %w", path, err)
		}
		indexWatcher = src
		return src, nil
	}
}

// defaultSearchOptions returns the configured search defaults.
func defaultSearchOptions() domain.SearchOptions {
	return domain.SearchOptions{
		Limit:          settings.Search.Limit,
		MinQueryLength: settings.Search.MinQueryLength,
		Categories:     settings.Search.Categories,
	}
}
