package main

import (
	"flag"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"cleric/compiler"
	"cleric/driver"
)

func hasGCC(t *testing.T) bool {
	t.Helper()
	_, err := exec.LookPath(driver.GCCPath)
	return err == nil
}

func writeTempSource(t *testing.T, body string) string {
	t.Helper()
	if !hasGCC(t) {
		t.Skip("gcc not available on PATH")
	}
	path := filepath.Join(t.TempDir(), "in.c")
	if err := os.WriteFile(path, []byte(body+"\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}
	return path
}

func TestRunPhaseTokens(t *testing.T) {
	path := writeTempSource(t, "int main(void) { return 0; }")
	out, err := runPhase(path, compiler.Options{LexOnly: true})
	if err != nil {
		t.Fatalf("runPhase: %v", err)
	}
	if out == "" {
		t.Fatal("expected a non-empty token count")
	}
}

func TestRunPhaseValidateCatchesUndeclaredIdentifier(t *testing.T) {
	path := writeTempSource(t, "int main(void) { return x; }")
	if _, err := runPhase(path, compiler.Options{ValidateOnly: true}); err == nil {
		t.Fatal("expected a semantic error for an undeclared identifier")
	}
}

func TestRunPhaseAsmProducesAssembly(t *testing.T) {
	path := writeTempSource(t, "int main(void) { return 42; }")
	out, err := runPhase(path, compiler.Options{})
	if err != nil {
		t.Fatalf("runPhase: %v", err)
	}
	if out == "" {
		t.Fatal("expected non-empty assembly")
	}
}

func TestRequireOneFile(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.Parse(nil)
	if _, ok := requireOneFile(fs); ok {
		t.Fatal("expected failure with no args")
	}
}
