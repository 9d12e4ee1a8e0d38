package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topicsearch/internal/core/domain"
	"github.com/custodia-labs/topicsearch/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and change the settings stored in the config file.`,
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a setting and save it to the config file.

Keys:
  index.path               index file used when --index is not given
  index.watch              reload the index when the file changes (mcp serve, tui)
  search.limit             default number of results, at most 20
  search.min_query_length  shortest query that is searched
  search.categories        comma-separated default category filter
  mcp.port                 HTTP port for mcp serve, 0 for stdio
  log.verbose              always write diagnostics to stderr`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	current, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	out := cmd.OutOrStdout()
	if configPath != "" {
		fmt.Fprintf(out, "# %s\n", configPath)
	}
	for _, key := range settingsService.Keys() {
		fmt.Fprintf(out, "%-24s = %s\n", key, settingValue(current, key))
	}
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	key, value := args[0], args[1]
	if err := settingsService.Set(key, value); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", key, value)
	return nil
}

// settingValue formats the value behind a config key.
func settingValue(s *domain.Settings, key string) string {
	switch key {
	case services.KeyIndexPath:
		if s.Index.Path == "" {
			return "(not set)"
		}
		return s.Index.Path
	case services.KeyIndexWatch:
		return strconv.FormatBool(s.Index.Watch)
	case services.KeySearchLimit:
		return strconv.Itoa(s.Search.Limit)
	case services.KeyMinQueryLength:
		return strconv.Itoa(s.Search.MinQueryLength)
	case services.KeyCategories:
		if len(s.Search.Categories) == 0 {
			return "(all)"
		}
		names := make([]string, len(s.Search.Categories))
		for i, c := range s.Search.Categories {
			names[i] = c.String()
		}
		return strings.Join(names, ",")
	case services.KeyMCPPort:
		return strconv.Itoa(s.MCP.Port)
	case services.KeyLogVerbose:
		return strconv.FormatBool(s.Log.Verbose)
	default:
		return ""
	}
}
