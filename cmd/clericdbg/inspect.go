package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"cleric/tui"
)

type inspectCmd struct{}

func (*inspectCmd) Name() string     { return "inspect" }
func (*inspectCmd) Synopsis() string { return "Open the tcell/tview pipeline inspector" }
func (*inspectCmd) Usage() string {
	return `inspect [file.c]:
  Open a full-screen inspector showing tokens, AST, TAC, and assembly side
  by side. If file.c is given it is loaded immediately; otherwise type a
  path into the command field and press Enter.
`
}
func (*inspectCmd) SetFlags(f *flag.FlagSet) {}

func (*inspectCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	insp := tui.NewInspector()
	if args := f.Args(); len(args) >= 1 {
		insp.LoadFile(args[0])
	}
	if err := insp.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "clericdbg:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
