package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"cleric/arena"
	"cleric/compiler"
	"cleric/driver"
)

// runPhase preprocesses the C source at path and runs it through the
// in-process pipeline, stopping at whichever phase opts selects. It mirrors
// cmd/cleric's compileFile but never invokes the assembler or linker —
// clericdbg only ever inspects pipeline artifacts, never produces a binary.
func runPhase(path string, opts compiler.Options) (string, error) {
	iPath, err := driver.RunPreprocessor(path)
	if err != nil {
		return "", err
	}
	defer os.Remove(iPath)

	src, err := os.ReadFile(iPath)
	if err != nil {
		return "", fmt.Errorf("clericdbg: reading %s: %w", iPath, err)
	}

	a := arena.New(4 << 20)
	defer a.Destroy()

	res, err := compiler.Compile(string(src), opts, a)
	if err != nil {
		return "", err
	}

	switch {
	case opts.LexOnly:
		return fmt.Sprintf("%d tokens", res.Tokens), nil
	case opts.ParseOnly:
		return driver.ASTDump(res)
	case opts.ValidateOnly:
		return "ok", nil
	case opts.TACOnly:
		return driver.TACDump(res), nil
	default:
		return res.Asm, nil
	}
}

func requireOneFile(f *flag.FlagSet) (string, bool) {
	args := f.Args()
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "clericdbg: file not provided")
		return "", false
	}
	return args[0], true
}

func runAndPrint(f *flag.FlagSet, opts compiler.Options) subcommands.ExitStatus {
	path, ok := requireOneFile(f)
	if !ok {
		return subcommands.ExitUsageError
	}
	out, err := runPhase(path, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Println(out)
	return subcommands.ExitSuccess
}

type tokensCmd struct{}

func (*tokensCmd) Name() string     { return "tokens" }
func (*tokensCmd) Synopsis() string { return "Print the token count for a source file" }
func (*tokensCmd) Usage() string {
	return `tokens <file.c>:
  Lex file.c and print how many tokens it scanned.
`
}
func (*tokensCmd) SetFlags(f *flag.FlagSet) {}
func (*tokensCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAndPrint(f, compiler.Options{LexOnly: true})
}

type astCmd struct{}

func (*astCmd) Name() string     { return "ast" }
func (*astCmd) Synopsis() string { return "Print the parsed AST as JSON" }
func (*astCmd) Usage() string {
	return `ast <file.c>:
  Parse file.c and print its AST as JSON.
`
}
func (*astCmd) SetFlags(f *flag.FlagSet) {}
func (*astCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAndPrint(f, compiler.Options{ParseOnly: true})
}

type validateCmd struct{}

func (*validateCmd) Name() string { return "validate" }
func (*validateCmd) Synopsis() string {
	return "Run semantic validation and report ok or the first error"
}
func (*validateCmd) Usage() string {
	return `validate <file.c>:
  Parse and validate file.c, printing "ok" or the first semantic error.
`
}
func (*validateCmd) SetFlags(f *flag.FlagSet) {}
func (*validateCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAndPrint(f, compiler.Options{ValidateOnly: true})
}

type tacCmd struct{}

func (*tacCmd) Name() string     { return "tac" }
func (*tacCmd) Synopsis() string { return "Print the generated three-address code" }
func (*tacCmd) Usage() string {
	return `tac <file.c>:
  Lower file.c to three-address code and print it.
`
}
func (*tacCmd) SetFlags(f *flag.FlagSet) {}
func (*tacCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAndPrint(f, compiler.Options{TACOnly: true})
}

type asmCmd struct{}

func (*asmCmd) Name() string     { return "asm" }
func (*asmCmd) Synopsis() string { return "Print the generated x86-64 assembly" }
func (*asmCmd) Usage() string {
	return `asm <file.c>:
  Run file.c through the full pipeline and print the generated assembly.
`
}
func (*asmCmd) SetFlags(f *flag.FlagSet) {}
func (*asmCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return runAndPrint(f, compiler.Options{})
}
