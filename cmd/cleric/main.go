// Command cleric is the ahead-of-time compiler's CLI surface (spec §6):
// cleric [--lex | --parse | --validate | --tac | --codegen] <input.c>.
//
// Its flat flag.Bool/flag.String setup and single positional-argument
// handling follow skx-math-compiler/main.go's main(), rather than the
// teacher's subcommands-per-verb style used by clericdbg — this binary
// models one command with mutually exclusive stop-phase flags, not
// several distinct verbs.
package main

import (
	"flag"
	"fmt"
	"os"

	"cleric/compiler"
	"cleric/config"
	"cleric/driver"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("cleric", flag.ContinueOnError)
	lexOnly := fs.Bool("lex", false, "stop after lexing and print the token count")
	parseOnly := fs.Bool("parse", false, "stop after parsing and print the AST as JSON")
	validateOnly := fs.Bool("validate", false, "stop after validation")
	tacOnly := fs.Bool("tac", false, "stop after IR generation and print the TAC")
	codegenOnly := fs.Bool("codegen", false, "stop after code generation and print the assembly")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return 1
	}

	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: cleric [--lex|--parse|--validate|--tac|--codegen] <input.c>")
		return 1
	}

	if n := countSet(*lexOnly, *parseOnly, *validateOnly, *tacOnly, *codegenOnly); n > 1 {
		fmt.Fprintln(os.Stderr, "cleric: --lex, --parse, --validate, --tac, and --codegen are mutually exclusive")
		return 1
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cleric:", err)
		return 1
	}
	if cfg.Toolchain.GCCPath != "" {
		driver.GCCPath = cfg.Toolchain.GCCPath
	}
	driver.AssemblerFlags = cfg.Toolchain.AssemblerFlags
	driver.LinkerFlags = cfg.Toolchain.LinkerFlags

	inputPath := fs.Arg(0)
	opts := compiler.Options{
		LexOnly:      *lexOnly,
		ParseOnly:    *parseOnly,
		ValidateOnly: *validateOnly,
		TACOnly:      *tacOnly,
		CodegenOnly:  *codegenOnly,
	}
	if countSet(*lexOnly, *parseOnly, *validateOnly, *tacOnly, *codegenOnly) == 0 {
		applyDefaultStopPhase(&opts, cfg.Pipeline.DefaultStopPhase)
	}

	return compileFile(inputPath, opts)
}

// applyDefaultStopPhase sets the Options field named by phase (cleric.toml's
// [pipeline].default_stop_phase), when no --lex/--parse/--validate/--tac/
// --codegen flag was given on the command line. An unrecognized or empty
// phase leaves opts running to completion.
func applyDefaultStopPhase(opts *compiler.Options, phase string) {
	switch phase {
	case "lex":
		opts.LexOnly = true
	case "parse":
		opts.ParseOnly = true
	case "validate":
		opts.ValidateOnly = true
	case "tac":
		opts.TACOnly = true
	case "codegen":
		opts.CodegenOnly = true
	}
}

func countSet(flags ...bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func compileFile(inputPath string, opts compiler.Options) int {
	iPath, err := driver.RunPreprocessor(inputPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cleric:", err)
		return 1
	}

	stopped := opts.LexOnly || opts.ParseOnly || opts.ValidateOnly || opts.TACOnly || opts.CodegenOnly
	artifact, err := driver.RunCompiler(iPath, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	if stopped {
		fmt.Println(artifact)
		return 0
	}

	// artifact is the path to the generated .s file; assemble and link it.
	if _, err := driver.RunAssemblerLinker(artifact); err != nil {
		fmt.Fprintln(os.Stderr, "cleric:", err)
		return 1
	}
	return 0
}
