// Command espidf-docs searches and explores ESP-IDF documentation from
// the command line or as an MCP server.
package main

import (
	"fmt"
	"os"

	"github.com/raihalea/esp-idf-docs/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
