// Package ir defines Cleric's three-address-code intermediate
// representation (spec §4.4): operands that name a constant, a
// compiler-generated temporary, or a source variable, and instructions
// built from them.
//
// Instructions are tagged records dispatched by an Op enum, the same
// opcode-tagged shape informatter-nilan's compiler/code.go uses for its
// bytecode (there a byte-packed Opcode plus big-endian operand encoding;
// here a typed Go struct per instruction, since TAC is consumed directly
// by codegen rather than interpreted by a VM).
package ir

import "fmt"

// OperandKind classifies an Operand.
type OperandKind int

const (
	OConstant OperandKind = iota
	OTemp
	OVar
)

// Operand is a TAC operand: a 32-bit constant, a numbered temporary, or a
// named variable.
type Operand struct {
	Kind  OperandKind
	Const int32
	Temp  int
	Name  string
}

func Const(v int32) Operand  { return Operand{Kind: OConstant, Const: v} }
func Temp(id int) Operand    { return Operand{Kind: OTemp, Temp: id} }
func Var(name string) Operand { return Operand{Kind: OVar, Name: name} }

func (o Operand) String() string {
	switch o.Kind {
	case OConstant:
		return fmt.Sprintf("%d", o.Const)
	case OTemp:
		return fmt.Sprintf("t%d", o.Temp)
	case OVar:
		return o.Name
	}
	return "?"
}

// Label names a jump target, e.g. "L0".
type Label string

// Op tags an Instruction's concrete shape.
type Op int

const (
	OpCopy Op = iota
	OpUnary
	OpBinary
	OpJump
	OpJumpIfZero
	OpJumpIfNotZero
	OpLabel
	OpReturn
)

// UnaryOp enumerates the unary TAC operators (spec §4.5 table): negate,
// bitwise complement, logical not.
type UnaryOp int

const (
	UNeg UnaryOp = iota
	UComplement
	UNot
)

// BinaryOp enumerates the binary TAC operators (spec §4.5 table).
type BinaryOp int

const (
	BAdd BinaryOp = iota
	BSub
	BMul
	BDiv
	BMod
	BLess
	BGreater
	BLessEq
	BGreaterEq
	BEqual
	BNotEqual
)

// Instruction is one TAC instruction. Only the fields relevant to Op are
// meaningful; this mirrors a tagged union more than a fully-typed sum, but
// keeps the instruction stream a single flat, order-preserving slice,
// matching spec §5's "order of TAC instructions follows a deterministic
// pre-order walk ... stable across runs" requirement.
type Instruction struct {
	Op       Op
	Dst      Operand // OpCopy, OpUnary, OpBinary's destination operand
	Src      Operand // OpCopy's source, OpUnary's operand, OpJumpIf{Not}Zero's tested operand, OpReturn's operand
	Src2     Operand // OpBinary's right operand
	UnaryOp  UnaryOp
	BinaryOp BinaryOp
	Label    Label // OpLabel, OpJump, OpJumpIfZero, OpJumpIfNotZero
}

func Copy(src, dst Operand) Instruction {
	return Instruction{Op: OpCopy, Src: src, Dst: dst}
}

func Unary(op UnaryOp, src, dst Operand) Instruction {
	return Instruction{Op: OpUnary, UnaryOp: op, Src: src, Dst: dst}
}

func Binary(op BinaryOp, left, right, dst Operand) Instruction {
	return Instruction{Op: OpBinary, BinaryOp: op, Src: left, Src2: right, Dst: dst}
}

func Jump(l Label) Instruction { return Instruction{Op: OpJump, Label: l} }

func JumpIfZero(s Operand, l Label) Instruction {
	return Instruction{Op: OpJumpIfZero, Src: s, Label: l}
}

func JumpIfNotZero(s Operand, l Label) Instruction {
	return Instruction{Op: OpJumpIfNotZero, Src: s, Label: l}
}

func LabelInstr(l Label) Instruction { return Instruction{Op: OpLabel, Label: l} }

func Return(s Operand) Instruction { return Instruction{Op: OpReturn, Src: s} }

// Function is the TAC form of a single function definition.
type Function struct {
	Name         string
	Instructions []Instruction
}
