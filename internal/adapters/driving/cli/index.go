package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Inspect the index",
}

var indexStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show entry counts and index quality",
	Long: `Shows the number of entries per category, how many declare aliases, and
any ids that appear more than once.`,
	Args: cobra.NoArgs,
	RunE: runIndexStats,
}

var indexShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a single entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runIndexShow,
}

func init() {
	indexCmd.AddCommand(indexStatsCmd)
	indexCmd.AddCommand(indexShowCmd)
	rootCmd.AddCommand(indexCmd)
}

func runIndexStats(cmd *cobra.Command, _ []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	stats, err := indexService.Stats(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to read index: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Entries:      %d\n", stats.Entries)
	fmt.Fprintf(out, "With aliases: %d\n", stats.WithAliases)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "By category:")
	for _, c := range stats.Categories() {
		name := c.String()
		if name == "" {
			name = "(none)"
		}
		fmt.Fprintf(out, "  %-12s %d\n", name, stats.ByCategory[c])
	}
	if len(stats.DuplicateIDs) > 0 {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Duplicate ids: %s\n", strings.Join(stats.DuplicateIDs, ", "))
	}
	return nil
}

func runIndexShow(cmd *cobra.Command, args []string) error {
	if indexService == nil {
		return errors.New("index service not configured")
	}

	entry, err := indexService.Get(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to get entry: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:       %s\n", entry.ID)
	fmt.Fprintf(out, "Name:     %s\n", entry.Name)
	fmt.Fprintf(out, "Category: %s (weight %.1f)\n", entry.Category, entry.Category.Weight())
	if entry.Path != "" {
		fmt.Fprintf(out, "Path:     %s\n", entry.Path)
	}
	if entry.Brief != "" {
		fmt.Fprintf(out, "Brief:    %s\n", entry.Brief)
	}
	if entry.HasAliases() {
		fmt.Fprintf(out, "Aliases:  %s\n", strings.Join(entry.Aliases, ", "))
	}
	return nil
}
