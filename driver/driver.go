// Package driver implements Cleric's external collaboration layer (spec
// §6): the three operations that shell out to the system toolchain or
// otherwise sit outside the single-threaded core, plus the filename
// extension helpers they share.
//
// Invoking gcc via os/exec, piping generated text through a buffer, and
// reporting failures by wrapping the underlying error is grounded on
// skx-math-compiler/main.go's own driver code (there: "gcc -static -o
// $program -x assembler -" fed from a bytes.Buffer of generated assembly).
package driver

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"cleric/arena"
	"cleric/compiler"
)

// GCCPath is the executable used for preprocessing, assembling, and
// linking. It is a package variable rather than a constant so cmd/cleric
// can override it from cleric.toml.
var GCCPath = "gcc"

// AssemblerFlags and LinkerFlags are extra arguments spliced into the gcc
// invocation RunAssemblerLinker runs, overridable from cleric.toml's
// [toolchain] table. Both are empty by default.
var (
	AssemblerFlags []string
	LinkerFlags    []string
)

// WithExtension replaces path's extension with ext (which should include
// the leading dot), e.g. WithExtension("foo.c", ".i") -> "foo.i".
func WithExtension(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

// RunPreprocessor runs the system C preprocessor over srcPath, producing
// the companion ".i" file. It returns the produced path, or an error if
// the preprocessor failed.
func RunPreprocessor(srcPath string) (string, error) {
	out := WithExtension(srcPath, ".i")
	cmd := exec.Command(GCCPath, "-E", "-P", srcPath, "-o", out)
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("driver: preprocessor failed: %w", err)
	}
	return out, nil
}

// RunCompiler reads preprocessedPath, runs it through the in-process
// pipeline, and — unless opts requests an early stop — writes the
// resulting assembly to the companion ".s" file. After a successful
// compile it removes the intermediate ".i" file, whether or not opts
// stopped early. It returns the artifact produced by whichever
// phase opts stopped at, rendered as text for the CLI to print.
func RunCompiler(preprocessedPath string, opts compiler.Options) (string, error) {
	src, err := os.ReadFile(preprocessedPath)
	if err != nil {
		return "", fmt.Errorf("driver: reading %s: %w", preprocessedPath, err)
	}

	a := arena.New(4 << 20)
	defer a.Destroy()

	res, err := compiler.Compile(string(src), opts, a)
	if err != nil {
		return "", err
	}
	defer os.Remove(preprocessedPath)

	stopped := opts.LexOnly || opts.ParseOnly || opts.ValidateOnly || opts.TACOnly || opts.CodegenOnly
	if stopped {
		return phaseArtifact(res, opts), nil
	}

	asmPath := WithExtension(preprocessedPath, ".s")
	if err := os.WriteFile(asmPath, []byte(res.Asm), 0o644); err != nil {
		return "", fmt.Errorf("driver: writing %s: %w", asmPath, err)
	}
	return asmPath, nil
}

func phaseArtifact(res compiler.Result, opts compiler.Options) string {
	switch {
	case opts.LexOnly:
		return fmt.Sprintf("%d tokens", res.Tokens)
	case opts.ParseOnly:
		s, _ := ASTDump(res)
		return s
	case opts.ValidateOnly:
		return "ok"
	case opts.TACOnly:
		return TACDump(res)
	default:
		return res.Asm
	}
}

// RunAssemblerLinker assembles and links asmPath into an executable named
// by stripping its ".s" extension, then removes asmPath on success.
func RunAssemblerLinker(asmPath string) (string, error) {
	exePath := strings.TrimSuffix(asmPath, filepath.Ext(asmPath))
	args := append([]string{asmPath}, AssemblerFlags...)
	args = append(args, LinkerFlags...)
	args = append(args, "-o", exePath)
	cmd := exec.Command(GCCPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("driver: link failed: %w: %s", err, stderr.String())
	}
	os.Remove(asmPath)
	return exePath, nil
}
