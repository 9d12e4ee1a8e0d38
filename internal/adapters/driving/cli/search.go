package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
)

var (
	searchLimit      int
	searchJSON       bool
	searchCategories []string
)

// isTerminal reports whether w is an interactive terminal. Tests replace it.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

var searchCmd = &cobra.Command{
	Use:   "search <query...>",
	Short: "Search the index",
	Long: `Ranks index entries against the query. Multiple arguments are joined
with spaces, so quoting is optional.

Results are grouped by category when writing to a terminal and printed as a
JSON array otherwise.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 0, "maximum number of results (default from config, at most 20)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringSliceVar(&searchCategories, "category", nil, "only search these categories (repeatable)")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	query := strings.Join(args, " ")

	opts := defaultSearchOptions()
	if searchLimit > 0 {
		opts.Limit = searchLimit
	}
	if len(searchCategories) > 0 {
		opts.Categories = make([]domain.Category, len(searchCategories))
		for i, c := range searchCategories {
			opts.Categories[i] = domain.Category(strings.TrimSpace(c))
		}
	}

	results, err := searchService.Search(cmd.Context(), query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if searchJSON || !isTerminal(out) {
		return outputSearchJSON(out, results)
	}
	outputSearchTable(out, results)
	return nil
}

// searchResultJSON is the script-facing shape of a result.
type searchResultJSON struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Category    string  `json:"category"`
	Brief       string  `json:"brief,omitempty"`
	Path        string  `json:"path,omitempty"`
	Score       float64 `json:"score"`
	MatchType   string  `json:"matchType"`
	MatchedText string  `json:"matchedText,omitempty"`
}

func outputSearchJSON(w io.Writer, results []domain.RankedResult) error {
	rows := make([]searchResultJSON, len(results))
	for i, r := range results {
		rows[i] = searchResultJSON{
			ID:          r.Entry.ID,
			Name:        r.Entry.Name,
			Category:    r.Entry.Category.String(),
			Brief:       r.Entry.Brief,
			Path:        r.Entry.Path,
			Score:       r.Score,
			MatchType:   r.MatchType.String(),
			MatchedText: r.MatchedText,
		}
	}

	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	fmt.Fprintln(w, string(data))
	return nil
}

func outputSearchTable(w io.Writer, results []domain.RankedResult) {
	if len(results) == 0 {
		fmt.Fprintln(w, "No results found.")
		return
	}

	for _, group := range domain.GroupByCategory(results) {
		fmt.Fprintf(w, "%s (%d)\n", groupTitle(group.Category), len(group.Results))
		for _, r := range group.Results {
			line := fmt.Sprintf("  %s (%.2f)", r.Entry.Name, r.Score)
			if annotation := domain.DescribeMatch(r.MatchedText); annotation != "" {
				line += "  " + annotation
			}
			fmt.Fprintln(w, line)
			if r.Entry.Brief != "" {
				fmt.Fprintf(w, "      %s\n", r.Entry.Brief)
			}
			if r.Entry.Path != "" {
				fmt.Fprintf(w, "      %s\n", r.Entry.Path)
			}
		}
		fmt.Fprintln(w)
	}
}

func groupTitle(c domain.Category) string {
	switch c {
	case domain.CategoryCrate:
		return "Crates"
	case domain.CategoryBook:
		return "Book"
	case domain.CategoryStd:
		return "Standard library"
	case "":
		return "Other"
	default:
		return c.String()
	}
}
