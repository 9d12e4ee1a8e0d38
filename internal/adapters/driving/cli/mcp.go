package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/mcp"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server so AI assistants can search the
index.

By default, the server communicates over stdio using JSON-RPC. Use --port to
serve streamable HTTP instead; the HTTP listener also exposes Prometheus
metrics on /metrics.

When index.watch is enabled (or --watch is given) the index file is reloaded
whenever it changes.

Examples:
  # Stdio mode
  topicsearch mcp serve --index search-index.json

  # HTTP mode
  topicsearch mcp serve --index search-index.json --port 8080

Claude Desktop configuration (claude_desktop_config.json):
  {
    "mcpServers": {
      "topicsearch": {
        "command": "/path/to/topicsearch",
        "args": ["mcp", "serve", "--index", "/path/to/search-index.json"]
      }
    }
  }`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio; default from config)")
	mcpServeCmd.Flags().Bool("watch", false, "reload the index file when it changes")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	port := settings.MCP.Port
	if cmd.Flags().Changed("port") {
		p, err := cmd.Flags().GetInt("port")
		if err != nil {
			return fmt.Errorf("getting port flag: %w", err)
		}
		port = p
	}
	watch := settings.Index.Watch
	if cmd.Flags().Changed("watch") {
		w, err := cmd.Flags().GetBool("watch")
		if err != nil {
			return fmt.Errorf("getting watch flag: %w", err)
		}
		watch = w
	}

	opts := []mcp.Option{mcp.WithSearchDefaults(defaultSearchOptions())}
	if recorder != nil {
		opts = append(opts, mcp.WithMetricsHandler(recorder.Handler()))
	}

	server, err := mcp.NewServer(&mcp.Ports{
		Search: searchService,
		Index:  indexService,
	}, opts...)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)

	if watch && indexWatcher != nil {
		g.Go(func() error {
			return indexWatcher.Watch(ctx)
		})
	}

	g.Go(func() error {
		// The watcher stops once the server is done.
		defer cancel()
		if port > 0 {
			addr := fmt.Sprintf(":%d", port)
			fmt.Fprintf(cmd.OutOrStdout(), "MCP server listening on http://localhost%s\n", addr)
			return server.RunHTTP(ctx, addr)
		}
		return server.Run(ctx)
	})

	return g.Wait()
}
