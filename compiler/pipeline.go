// Package compiler sequences Cleric's phases into the single pipeline
// entry point spec §4.6 describes: lex → parse → validate → TAC → codegen,
// stopping early after any phase whose corresponding *_only flag is set,
// and failing closed on the first phase that fails.
//
// The orchestration style — read the phases in order, bail out with a
// labeled error the moment one fails — follows informatter-nilan's
// cmd_emit_bytecode.go (lex, then parse, then compile, each checked before
// the next runs), collapsed from a CLI command body into a reusable
// function.
package compiler

import (
	"cleric/arena"
	"cleric/ast"
	"cleric/codegen"
	"cleric/ir"
	"cleric/lexer"
	"cleric/parser"
	"cleric/token"
	"cleric/validator"
	"fmt"
)

// Options selects which phase to stop after. At most one should be set;
// if none are set the pipeline runs to completion and produces assembly.
type Options struct {
	LexOnly      bool
	ParseOnly    bool
	ValidateOnly bool
	TACOnly      bool
	CodegenOnly  bool
}

// Result carries whichever phase outputs were requested. Only the fields
// relevant to the options that were set (or to a full run) are populated.
type Result struct {
	Tokens int // count of tokens scanned, meaningful when LexOnly
	AST    *ast.Program
	TAC    *ir.Function
	Asm    string
}

// Compile runs source through the pipeline described by opts, using a as
// the arena for token lexemes and the assembly output buffer (AST and TAC
// values are allocated on the Go heap). The arena is borrowed, not
// owned: Compile never resets or destroys it. On failure, Compile returns
// a non-nil error and a Result that may be partially populated but must
// not be relied upon.
func Compile(source string, opts Options, a *arena.Arena) (Result, error) {
	var res Result

	l := lexer.New(source, a)
	if opts.LexOnly {
		n, err := countTokens(l)
		res.Tokens = n
		if err != nil {
			return res, err
		}
		return res, nil
	}

	// Parsing scans the source with a fresh Lexer over the same arena; the
	// lex-only path above has already returned by this point.
	l = lexer.New(source, a)
	p, ok := parser.New(l, a)
	if !ok {
		return res, fmt.Errorf("compiler: out of memory priming the parser")
	}
	prog := p.ParseProgram()
	if err := p.Err(); err != nil {
		return res, err
	}
	if prog == nil {
		return res, fmt.Errorf("compiler: parsing produced no program")
	}
	res.AST = prog
	if opts.ParseOnly {
		return res, nil
	}

	if err := validator.Validate(prog); err != nil {
		return res, err
	}
	if opts.ValidateOnly {
		return res, nil
	}

	fn := ir.Generate(prog)
	res.TAC = fn
	if opts.TACOnly {
		return res, nil
	}

	asm, ok := codegen.Generate(fn, a)
	if !ok {
		return res, fmt.Errorf("compiler: out of memory generating assembly")
	}
	res.Asm = asm
	return res, nil
}

// countTokens drains l, reporting the number of tokens scanned before EOF
// (inclusive), or an error if an arena allocation failed mid-scan.
func countTokens(l *lexer.Lexer) (int, error) {
	n := 0
	for {
		var tok token.Token
		if !l.NextToken(&tok) {
			return n, fmt.Errorf("compiler: out of memory scanning tokens")
		}
		n++
		if tok.Kind == token.EOF {
			return n, nil
		}
	}
}
