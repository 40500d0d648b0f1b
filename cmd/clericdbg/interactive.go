package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/google/subcommands"

	"cleric/compiler"
)

type interactiveCmd struct{}

func (*interactiveCmd) Name() string     { return "interactive" }
func (*interactiveCmd) Synopsis() string { return "Start an interactive pipeline inspector loop" }
func (*interactiveCmd) Usage() string {
	return `interactive:
  Start a loop reading "<phase> <file.c>" lines, where phase is one of
  tokens, ast, validate, tac, or asm. "exit" or EOF quits.
`
}
func (*interactiveCmd) SetFlags(f *flag.FlagSet) {}

func (*interactiveCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	rl, err := readline.New("clericdbg> ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "clericdbg:", err)
		return subcommands.ExitFailure
	}
	defer rl.Close()
	runInteractive(rl, os.Stdout)
	return subcommands.ExitSuccess
}

// lineReader is the slice of *readline.Instance this loop needs, so the
// loop can be driven by a fake in tests without a real terminal.
type lineReader interface {
	Readline() (string, error)
}

// runInteractive drives the read-eval-print loop against rl, writing
// results to out. Modeled on informatter-nilan's cmd_repl.go scan loop:
// read a line, dispatch it, print the result, "exit" (or a read error)
// ends the session.
func runInteractive(rl lineReader, out io.Writer) {
	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF on Ctrl-D, readline.ErrInterrupt on Ctrl-C
			return
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			fmt.Fprintln(out, "usage: <tokens|ast|validate|tac|asm> <file.c>")
			continue
		}
		opts, ok := phaseOptions(fields[0])
		if !ok {
			fmt.Fprintf(out, "unknown phase %q\n", fields[0])
			continue
		}
		result, err := runPhase(fields[1], opts)
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		fmt.Fprintln(out, result)
	}
}

func phaseOptions(phase string) (compiler.Options, bool) {
	switch phase {
	case "tokens":
		return compiler.Options{LexOnly: true}, true
	case "ast":
		return compiler.Options{ParseOnly: true}, true
	case "validate":
		return compiler.Options{ValidateOnly: true}, true
	case "tac":
		return compiler.Options{TACOnly: true}, true
	case "asm":
		return compiler.Options{}, true
	}
	return compiler.Options{}, false
}
