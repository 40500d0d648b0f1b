package driver

import (
	"cleric/ast"
	"cleric/compiler"
	"cleric/ir"
	"fmt"
	"strings"
)

// ASTDump renders res's AST as JSON, for the --parse CLI flag and
// clericdbg's "ast" subcommand.
func ASTDump(res compiler.Result) (string, error) {
	if res.AST == nil {
		return "", fmt.Errorf("driver: no AST to dump")
	}
	return ast.DumpJSON(res.AST)
}

// TACDump renders a TAC function as readable three-address-code text, one
// instruction per line, for the --tac CLI flag and clericdbg's "tac"
// subcommand.
func TACDump(res compiler.Result) string {
	if res.TAC == nil {
		return ""
	}
	var b strings.Builder
	for _, instr := range res.TAC.Instructions {
		fmt.Fprintln(&b, formatInstruction(instr))
	}
	return b.String()
}

func formatInstruction(instr ir.Instruction) string {
	switch instr.Op {
	case ir.OpCopy:
		return fmt.Sprintf("%s = %s", instr.Dst, instr.Src)
	case ir.OpUnary:
		return fmt.Sprintf("%s = %s %s", instr.Dst, unaryOpSymbol(instr.UnaryOp), instr.Src)
	case ir.OpBinary:
		return fmt.Sprintf("%s = %s %s %s", instr.Dst, instr.Src, binaryOpSymbol(instr.BinaryOp), instr.Src2)
	case ir.OpJump:
		return fmt.Sprintf("jump %s", instr.Label)
	case ir.OpJumpIfZero:
		return fmt.Sprintf("if %s == 0 jump %s", instr.Src, instr.Label)
	case ir.OpJumpIfNotZero:
		return fmt.Sprintf("if %s != 0 jump %s", instr.Src, instr.Label)
	case ir.OpLabel:
		return fmt.Sprintf("%s:", instr.Label)
	case ir.OpReturn:
		return fmt.Sprintf("return %s", instr.Src)
	}
	return "?"
}

func unaryOpSymbol(op ir.UnaryOp) string {
	switch op {
	case ir.UNeg:
		return "-"
	case ir.UComplement:
		return "~"
	case ir.UNot:
		return "!"
	}
	return "?"
}

func binaryOpSymbol(op ir.BinaryOp) string {
	switch op {
	case ir.BAdd:
		return "+"
	case ir.BSub:
		return "-"
	case ir.BMul:
		return "*"
	case ir.BDiv:
		return "/"
	case ir.BMod:
		return "%"
	case ir.BLess:
		return "<"
	case ir.BGreater:
		return ">"
	case ir.BLessEq:
		return "<="
	case ir.BGreaterEq:
		return ">="
	case ir.BEqual:
		return "=="
	case ir.BNotEqual:
		return "!="
	}
	return "?"
}
