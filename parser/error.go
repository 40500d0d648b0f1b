package parser

import "fmt"

// SyntaxError is the single error kind the parser ever produces. Offset is
// the byte position of the offending token, which Error renders into the
// "Parse Error (near pos N): <detail>" form every caller depends on for
// diagnostics.
type SyntaxError struct {
	Offset  int
	Message string
}

func newSyntaxError(offset int, message string) SyntaxError {
	return SyntaxError{Offset: offset, Message: message}
}

func (e SyntaxError) Error() string {
	return fmt.Sprintf("Parse Error (near pos %d): %s", e.Offset, e.Message)
}
