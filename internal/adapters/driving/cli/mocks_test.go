package cli

import (
	"io"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/topicsearch/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/services"
)

func testEntries() []domain.IndexEntry {
	return []domain.IndexEntry{
		{
			ID:       "1",
			Name:     "tokio",
			Aliases:  []string{"async runtime"},
			Category: domain.CategoryCrate,
			Brief:    "An event-driven runtime",
			Path:     "crates/tokio.html",
		},
		{ID: "2", Name: "Ownership", Category: domain.CategoryBook, Path: "book/ch04.html"},
		{ID: "3", Name: "Vec", Aliases: []string{"vector"}, Category: domain.CategoryStd, Path: "std/vec/struct.Vec.html"},
	}
}

// testServices are real services over in-memory stores.
type testServices struct {
	index    *memory.IndexStore
	config   *memory.ConfigStore
	settings *services.SettingsService
}

// setupTestServices replaces service wiring with in-memory stores and
// resets command state. Everything is restored when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	origWire := wire
	origTerminal := isTerminal
	origRun := runProgram

	ts := &testServices{
		index:  memory.NewIndexStore(testEntries()),
		config: memory.NewConfigStore(),
	}
	ts.settings = services.NewSettingsService(ts.config)

	wire = func(*cobra.Command) error {
		s, err := ts.settings.Get()
		if err != nil {
			return err
		}
		settings = s
		return nil
	}
	settingsService = ts.settings
	searchService = services.NewSearchService(ts.index, nil)
	indexService = services.NewIndexService(ts.index)
	settings = domain.DefaultSettings()
	recorder = nil
	indexWatcher = nil
	configPath = ""

	searchLimit = 0
	searchJSON = false
	searchCategories = nil
	isTerminal = func(io.Writer) bool { return false }

	t.Cleanup(func() {
		wire = origWire
		isTerminal = origTerminal
		runProgram = origRun
		settingsService = nil
		searchService = nil
		indexService = nil
		settings = nil
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})
	return ts
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(strings.Builder)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

// fakeProgram stands in for the bubbletea runtime.
func fakeProgram(drive func(m tea.Model)) func(tea.Model, ...tea.ProgramOption) (tea.Model, error) {
	return func(m tea.Model, _ ...tea.ProgramOption) (tea.Model, error) {
		drive(m)
		return m, nil
	}
}
