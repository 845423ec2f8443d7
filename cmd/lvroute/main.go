// Command lvroute answers shortest-distance queries over a bounded network
// of named locations.
package main

import (
	"os"

	"github.com/katalvlaran/lvroute/cmd/lvroute/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
