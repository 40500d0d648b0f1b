package ast

import (
	"encoding/json"
	"testing"
)

func TestDumpJSONRoundTripsShape(t *testing.T) {
	prog := &Program{
		Func: &FuncDef{
			Name: "main",
			Body: &Block{
				Items: []Stmt{
					&VarDecl{Name: "x", Initializer: &IntLiteral{Value: 2}},
					&ReturnStmt{Expr: &BinaryOp{
						Op:    OpAdd,
						Left:  &Identifier{Name: "x"},
						Right: &IntLiteral{Value: 1},
					}},
				},
			},
		},
	}

	out, err := DumpJSON(prog)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(out), &decoded); err != nil {
		t.Fatalf("DumpJSON produced invalid JSON: %v", err)
	}
	if decoded["type"] != "Program" {
		t.Fatalf("expected top-level Program, got %v", decoded["type"])
	}
	fn, ok := decoded["func"].(map[string]any)
	if !ok || fn["name"] != "main" {
		t.Fatalf("expected nested func with name main, got %v", decoded["func"])
	}
}

func TestDumpJSONNilExpressionIsNull(t *testing.T) {
	prog := &Program{Func: &FuncDef{Name: "main", Body: &Block{
		Items: []Stmt{&VarDecl{Name: "y"}},
	}}}
	out, err := DumpJSON(prog)
	if err != nil {
		t.Fatalf("DumpJSON: %v", err)
	}
	var decoded map[string]any
	json.Unmarshal([]byte(out), &decoded)
	body := decoded["func"].(map[string]any)["body"].(map[string]any)
	item := body["items"].([]any)[0].(map[string]any)
	if item["init"] != nil {
		t.Fatalf("expected nil initializer to dump as JSON null, got %v", item["init"])
	}
}
