// Command clericdbg is the pipeline-inspection companion to cmd/cleric: one
// subcommand per stop-point (tokens, ast, validate, tac, asm), an
// interactive loop, and a full-screen inspector, rather than cmd/cleric's
// flat mutually-exclusive flags.
//
// The one-subcommands.Command-per-verb structure follows
// informatter-nilan's cmd_repl.go / cmd_emit_bytecode.go / cmd_run.go,
// wired through subcommands.Register and subcommands.Execute the way the
// google/subcommands package itself documents (the teacher's own main.go
// never calls Register, leaving its commands unreachable; clericdbg wires
// them up here instead).
package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&tokensCmd{}, "")
	subcommands.Register(&astCmd{}, "")
	subcommands.Register(&validateCmd{}, "")
	subcommands.Register(&tacCmd{}, "")
	subcommands.Register(&asmCmd{}, "")
	subcommands.Register(&interactiveCmd{}, "")
	subcommands.Register(&inspectCmd{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
