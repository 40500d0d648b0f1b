package ir

import (
	"cleric/ast"
	"fmt"
)

// Generator lowers a single function body to TAC, maintaining the
// monotonically increasing temporary and label counters spec §4.4
// requires, plus the output instruction list they feed.
type Generator struct {
	nextTemp int
	nextLabel int
	instrs   []Instruction
}

// Generate lowers prog's function to TAC.
func Generate(prog *ast.Program) *Function {
	g := &Generator{}
	g.lowerBlock(prog.Func.Body)
	return &Function{Name: prog.Func.Name, Instructions: g.instrs}
}

func (g *Generator) emit(i Instruction) { g.instrs = append(g.instrs, i) }

func (g *Generator) newTemp() Operand {
	t := Temp(g.nextTemp)
	g.nextTemp++
	return t
}

func (g *Generator) newLabel() Label {
	l := Label(fmt.Sprintf("L%d", g.nextLabel))
	g.nextLabel++
	return l
}

func (g *Generator) lowerBlock(b *ast.Block) {
	for _, item := range b.Items {
		g.lowerStmt(item)
	}
}

func (g *Generator) lowerStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		g.lowerBlock(n)
	case *ast.VarDecl:
		if n.Initializer != nil {
			src := g.lowerExpr(n.Initializer)
			g.emit(Copy(src, Var(n.Name)))
		}
	case *ast.ReturnStmt:
		src := g.lowerExpr(n.Expr)
		g.emit(Return(src))
	case *ast.ExprStmt:
		g.lowerExpr(n.Expr)
	}
}

var binaryOpTable = map[ast.BinaryOperator]BinaryOp{
	ast.OpAdd: BAdd, ast.OpSub: BSub, ast.OpMul: BMul, ast.OpDiv: BDiv, ast.OpMod: BMod,
	ast.OpLess: BLess, ast.OpGreater: BGreater, ast.OpLessEq: BLessEq, ast.OpGreaterEq: BGreaterEq,
	ast.OpEqual: BEqual, ast.OpNotEqual: BNotEqual,
}

var unaryOpTable = map[ast.UnaryOperator]UnaryOp{
	ast.OpNegate: UNeg, ast.OpComplement: UComplement, ast.OpNot: UNot,
}

// lowerExpr lowers e and returns the operand naming its value. It allocates
// a temporary only when the value cannot be named directly by a constant
// or variable operand (spec §4.4 "Allocation fairness").
func (g *Generator) lowerExpr(e ast.Expr) Operand {
	switch n := e.(type) {
	case *ast.IntLiteral:
		return Const(n.Value)

	case *ast.Identifier:
		return Var(n.Name)

	case *ast.UnaryOp:
		src := g.lowerExpr(n.Operand)
		t := g.newTemp()
		g.emit(Unary(unaryOpTable[n.Op], src, t))
		return t

	case *ast.BinaryOp:
		if n.Op == ast.OpLogAnd {
			return g.lowerLogicalAnd(n)
		}
		if n.Op == ast.OpLogOr {
			return g.lowerLogicalOr(n)
		}
		left := g.lowerExpr(n.Left)
		right := g.lowerExpr(n.Right)
		t := g.newTemp()
		g.emit(Binary(binaryOpTable[n.Op], left, right, t))
		return t

	case *ast.Assignment:
		ident := n.Target.(*ast.Identifier)
		src := g.lowerExpr(n.Value)
		g.emit(Copy(src, Var(ident.Name)))
		return Var(ident.Name)
	}
	panic(fmt.Sprintf("ir: unhandled expression node %T", e))
}

// lowerLogicalAnd implements spec §4.4's short-circuit lowering for "&&":
// lower l; jump to Lfalse if zero; otherwise lower r and booleanize it;
// jump past the false path; Lfalse copies 0 into the result.
func (g *Generator) lowerLogicalAnd(n *ast.BinaryOp) Operand {
	left := g.lowerExpr(n.Left)
	lfalse := g.newLabel()
	lend := g.newLabel()
	t := g.newTemp()

	g.emit(JumpIfZero(left, lfalse))
	right := g.lowerExpr(n.Right)
	g.emit(Binary(BNotEqual, right, Const(0), t))
	g.emit(Jump(lend))
	g.emit(LabelInstr(lfalse))
	g.emit(Copy(Const(0), t))
	g.emit(LabelInstr(lend))
	return t
}

// lowerLogicalOr is the symmetric short-circuit for "||": jump to Ltrue
// (copying 1) if l is nonzero; otherwise lower r and booleanize it.
func (g *Generator) lowerLogicalOr(n *ast.BinaryOp) Operand {
	left := g.lowerExpr(n.Left)
	ltrue := g.newLabel()
	lend := g.newLabel()
	t := g.newTemp()

	g.emit(JumpIfNotZero(left, ltrue))
	right := g.lowerExpr(n.Right)
	g.emit(Binary(BNotEqual, right, Const(0), t))
	g.emit(Jump(lend))
	g.emit(LabelInstr(ltrue))
	g.emit(Copy(Const(1), t))
	g.emit(LabelInstr(lend))
	return t
}
