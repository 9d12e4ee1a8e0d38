package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/tui"
	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/logger"
)

// runProgram runs a bubbletea program. Tests replace it.
var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui [query...]",
	Short: "Launch the interactive search",
	Long: `Search the index as you type.

Results update 100ms after you stop typing, once the query has at least two
characters. Selecting a result prints its path (or id when it has no path)
so the command can feed other tools.

Controls:
  ↑/ctrl+p, ↓/ctrl+n - Navigate results
  tab                - Switch focus between query and results (j/k navigate)
  enter              - Select result
  d                  - Show entry details
  esc                - Clear query / back; quits on an empty query
  ctrl+c             - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	if searchService == nil {
		return errors.New("search service not configured")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Keep the index fresh while the TUI is open.
	if settings.Index.Watch && indexWatcher != nil {
		go func() {
			if err := indexWatcher.Watch(ctx); err != nil {
				logger.Warn("index watcher stopped: %v", err)
			}
		}()
	}

	opts := defaultSearchOptions()
	opts.MinQueryLength = max(opts.MinQueryLength, domain.InteractiveMinQueryLength)

	app, err := tui.NewApp(&tui.Ports{
		Search: searchService,
		Index:  indexService,
	}, opts)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx).WithQuery(strings.Join(args, " "))

	if _, err := runProgram(app, tea.WithAltScreen(), tea.WithContext(ctx)); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	if selected := app.Selected(); selected != nil {
		target := selected.Path
		if target == "" {
			target = selected.ID
		}
		fmt.Fprintln(cmd.OutOrStdout(), target)
	}
	return nil
}
