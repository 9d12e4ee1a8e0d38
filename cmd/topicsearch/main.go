// Command topicsearch searches a documentation index from the terminal,
// an interactive TUI, or an MCP server.
package main

import (
	"os"

	"github.com/custodia-labs/topicsearch/internal/adapters/driving/cli"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cli.SetVersion(version)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
