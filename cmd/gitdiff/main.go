// Command gitdiff is a thin front door over the diff core: tree-to-tree,
// index-to-tree and workdir-to-index synthesis against on-disk
// directories, printed with either output driver. Grounded on
// cli/go-git's command layout (one file per subcommand, go-flags
// struct-tag parsing, a shared embeddable base type).
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

type options struct{}

func main() {
	parser := flags.NewParser(&options{}, flags.Default)
	parser.AddCommand("tree", "Diff two directory trees", "Compares two on-disk directories as if they were committed trees.", &cmdTree{})
	parser.AddCommand("index", "Diff a directory against a staged snapshot", "Compares an index snapshot (one directory) against a tree (another directory).", &cmdIndex{})
	parser.AddCommand("workdir", "Diff a working directory against a staged snapshot", "Compares an index snapshot against the live contents of a working directory.", &cmdWorkdir{})

	if _, err := parser.Parse(); err != nil {
		if flags.WroteHelp(err) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "ERR:", err)
		os.Exit(1)
	}
}

// outputFlags is embedded by every subcommand to select the output
// driver, the same way cli/go-git's CmdClone embeds a shared `cmd`
// base type for options common to every command.
type outputFlags struct {
	Patch bool `long:"patch" short:"p" description:"print a unified patch instead of compact name-status lines"`
	Stat  bool `long:"stat" description:"print a diffstat summary instead of name-status lines"`
}
