package validator

import (
	"cleric/arena"
	"cleric/ast"
	"cleric/lexer"
	"cleric/parser"
	"testing"
)

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	a := arena.New(1 << 16)
	l := lexer.New(src, a)
	p, ok := parser.New(l, a)
	if !ok {
		t.Fatalf("arena exhausted")
	}
	prog := p.ParseProgram()
	if p.Err() != nil {
		t.Fatalf("unexpected parse error: %v", p.Err())
	}
	return prog
}

func TestValidProgramPasses(t *testing.T) {
	prog := mustParse(t, "int main(void) { int x = 1; return x; }")
	if err := Validate(prog); err != nil {
		t.Fatalf("expected valid program to pass, got %v", err)
	}
}

func TestUndeclaredIdentifierFails(t *testing.T) {
	prog := mustParse(t, "int main(void) { return x; }")
	v := New()
	v.visitFuncDef(prog.Func)
	if !v.failed() {
		t.Fatal("expected undeclared identifier to fail validation")
	}
	se, ok := v.Err().(SemanticError)
	if !ok || se.Message != "use of undeclared identifier 'x'" {
		t.Fatalf("got %v", v.Err())
	}
}

func TestRedeclarationInSameScopeFails(t *testing.T) {
	prog := mustParse(t, "int main(void) { int x = 1; int x = 2; return x; }")
	if Validate(prog) == nil {
		t.Fatal("expected redeclaration to fail validation")
	}
}

func TestRedeclarationInNestedBlockFails(t *testing.T) {
	// Per the validator's visitation protocol, only FuncDef pushes a new
	// scope; a nested Block does not introduce one of its own, so
	// re-declaring the same name inside a nested block is still a
	// same-scope redeclaration.
	prog := mustParse(t, "int main(void) { int x = 1; { int x = 2; } return x; }")
	if Validate(prog) == nil {
		t.Fatal("expected nested-block redeclaration of the same name to fail")
	}
}

func TestAssignmentToUndeclaredIdentifierFails(t *testing.T) {
	prog := mustParse(t, "int main(void) { x = 1; return 0; }")
	if Validate(prog) == nil {
		t.Fatal("expected assignment to an undeclared identifier to fail")
	}
}

func TestDeclarationInitializerCanReferenceEarlierDeclarations(t *testing.T) {
	prog := mustParse(t, "int main(void) { int x = 1; int y = x + 1; return y; }")
	if err := Validate(prog); err != nil {
		t.Fatalf("expected valid program to pass, got %v", err)
	}
}

func TestDeclarationInitializerCanSelfReference(t *testing.T) {
	// Spec: declare first, then (if present) visit the initializer — so a
	// name is already in scope while its own initializer is checked.
	prog := mustParse(t, "int main(void) { int x = x; return x; }")
	if err := Validate(prog); err != nil {
		t.Fatalf("expected self-referential initializer to pass, got %v", err)
	}
}

func TestExitScopeBeyondBottomPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected a panic")
		}
		if _, ok := r.(DeveloperError); !ok {
			t.Fatalf("expected DeveloperError, got %T", r)
		}
	}()
	v := New()
	v.exitScope()
}
