package tui

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"cleric/driver"
)

func TestNewInspectorBuildsAllPanes(t *testing.T) {
	insp := NewInspector()
	if insp.TokensView == nil || insp.ASTView == nil || insp.TACView == nil || insp.AssemblyView == nil {
		t.Fatal("expected all four pipeline panes to be initialized")
	}
	if insp.CommandInput == nil || insp.OutputView == nil {
		t.Fatal("expected the command input and output pane to be initialized")
	}
}

func hasGCC(t *testing.T) bool {
	t.Helper()
	_, err := exec.LookPath(driver.GCCPath)
	return err == nil
}

func TestLoadFileEmptyPathIsANoop(t *testing.T) {
	insp := NewInspector()
	insp.LoadFile("")
	if insp.CurrentFile != "" {
		t.Fatalf("expected CurrentFile to stay empty, got %q", insp.CurrentFile)
	}
}

func TestLoadFilePopulatesAllPanes(t *testing.T) {
	if !hasGCC(t) {
		t.Skip("gcc not available on PATH")
	}
	path := filepath.Join(t.TempDir(), "in.c")
	if err := os.WriteFile(path, []byte("int main(void) { return 41 + 1; }\n"), 0o644); err != nil {
		t.Fatalf("writing source: %v", err)
	}

	insp := NewInspector()
	insp.LoadFile(path)

	if insp.CurrentFile != path {
		t.Fatalf("got CurrentFile %q", insp.CurrentFile)
	}
	if insp.TokensView.GetText(true) == "" {
		t.Fatal("expected a non-empty token count")
	}
	if insp.ASTView.GetText(true) == "" {
		t.Fatal("expected a non-empty AST dump")
	}
	if insp.TACView.GetText(true) == "" {
		t.Fatal("expected non-empty TAC")
	}
	if insp.AssemblyView.GetText(true) == "" {
		t.Fatal("expected non-empty assembly")
	}
}

func TestLoadFileReportsPreprocessorFailureWithoutCrashing(t *testing.T) {
	if !hasGCC(t) {
		t.Skip("gcc not available on PATH")
	}
	insp := NewInspector()
	insp.LoadFile(filepath.Join(t.TempDir(), "does-not-exist.c"))
	if insp.OutputView.GetText(true) == "" {
		t.Fatal("expected the output pane to report the preprocessor error")
	}
}
