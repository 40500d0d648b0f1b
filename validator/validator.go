// Package validator walks Cleric's AST with a scoped symbol table (spec
// §4.3), rejecting undeclared identifiers, same-scope redeclarations, and
// assignments whose target is not an in-scope identifier.
//
// The scope-stack bookkeeping is grounded on informatter-nilan's
// compiler/ast_compiler.go ASTCompiler: a slice of locals tagged with the
// scope depth they were declared at, pushed/popped as scopeDepth changes
// (there used for bytecode stack slots; here purely for name resolution).
// Dispatch over AST variants uses a type switch instead of the teacher's
// Visitor/Accept, matching the rest of this module's ast package.
package validator

import "cleric/ast"

type symbol struct {
	name   string
	depth  int
	offset int
}

// Validator owns the scope stack for a single function body. A fresh
// Validator is created per compilation.
type Validator struct {
	symbols []symbol
	depth   int
	err     error
}

// New returns a Validator with an empty (depth-0) scope.
func New() *Validator {
	return &Validator{}
}

// Err returns the first semantic error encountered, or nil.
func (v *Validator) Err() error { return v.err }

func (v *Validator) fail(err error) {
	if v.err == nil {
		v.err = err
	}
}

func (v *Validator) failed() bool { return v.err != nil }

// enterScope pushes a new, empty scope.
func (v *Validator) enterScope() { v.depth++ }

// exitScope pops every symbol declared at the current depth. Popping past
// the outermost scope is a programmer error: it means a caller walked the
// AST out of balance, not that the input program is invalid.
func (v *Validator) exitScope() {
	if v.depth == 0 {
		panic(DeveloperError{Message: "exit beyond bottom scope"})
	}
	for len(v.symbols) > 0 && v.symbols[len(v.symbols)-1].depth == v.depth {
		v.symbols = v.symbols[:len(v.symbols)-1]
	}
	v.depth--
}

// declare inserts name at the current scope, or records a redeclaration
// error if name already exists at that exact depth.
func (v *Validator) declare(name string, offset int) {
	for i := len(v.symbols) - 1; i >= 0; i-- {
		if v.symbols[i].depth != v.depth {
			break
		}
		if v.symbols[i].name == name {
			v.fail(SemanticError{Offset: offset, Message: "redeclaration of '" + name + "'"})
			return
		}
	}
	v.symbols = append(v.symbols, symbol{name: name, depth: v.depth, offset: offset})
}

// inScope reports whether name is declared in any scope on the stack.
func (v *Validator) inScope(name string) bool {
	for i := len(v.symbols) - 1; i >= 0; i-- {
		if v.symbols[i].name == name {
			return true
		}
	}
	return false
}

// Validate walks prog, returning the first semantic violation found, or
// nil if prog is well-formed.
func Validate(prog *ast.Program) error {
	v := New()
	v.visitFuncDef(prog.Func)
	return v.Err()
}

func (v *Validator) visitFuncDef(fn *ast.FuncDef) {
	v.enterScope()
	v.visitBlock(fn.Body)
	v.exitScope()
}

func (v *Validator) visitBlock(b *ast.Block) {
	for _, item := range b.Items {
		if v.failed() {
			return
		}
		v.visitStmt(item)
	}
}

func (v *Validator) visitStmt(s ast.Stmt) {
	switch n := s.(type) {
	case *ast.Block:
		v.visitBlock(n)
	case *ast.VarDecl:
		v.declare(n.Name, n.Offset)
		if n.Initializer != nil {
			v.visitExpr(n.Initializer)
		}
	case *ast.ReturnStmt:
		v.visitExpr(n.Expr)
	case *ast.ExprStmt:
		v.visitExpr(n.Expr)
	}
}

func (v *Validator) visitExpr(e ast.Expr) {
	if v.failed() || e == nil {
		return
	}
	switch n := e.(type) {
	case *ast.IntLiteral:
		// no children
	case *ast.Identifier:
		if !v.inScope(n.Name) {
			v.fail(SemanticError{Offset: n.Offset, Message: "use of undeclared identifier '" + n.Name + "'"})
		}
	case *ast.UnaryOp:
		v.visitExpr(n.Operand)
	case *ast.BinaryOp:
		v.visitExpr(n.Left)
		if v.failed() {
			return
		}
		v.visitExpr(n.Right)
	case *ast.Assignment:
		ident, ok := n.Target.(*ast.Identifier)
		if !ok {
			v.fail(SemanticError{Offset: n.Offset, Message: "assignment target must be an identifier"})
			return
		}
		if !v.inScope(ident.Name) {
			v.fail(SemanticError{Offset: ident.Offset, Message: "use of undeclared identifier '" + ident.Name + "'"})
			return
		}
		v.visitExpr(n.Value)
	}
}
