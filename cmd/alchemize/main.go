// Command alchemize maintains the local Alchemize store: schema migration
// and status, per-user reset, full wipe, sample-data seeding, and calendar
// inspection.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"fmt"
	"os"

	"github.com/bombaystudiosx-dev/rork-alchemize--sub000/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "alchemize: %v\n", err)
		os.Exit(1)
	}
}
