package lexer

import (
	"cleric/arena"
	"cleric/token"
	"testing"
)

func scanAll(t *testing.T, src string) []token.Token {
	t.Helper()
	a := arena.New(4096)
	l := New(src, a)
	var toks []token.Token
	for {
		var tok token.Token
		if ok := l.NextToken(&tok); !ok {
			t.Fatalf("unexpected arena exhaustion scanning %q", src)
		}
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks
}

func TestKeywordsAndIdentifiers(t *testing.T) {
	toks := scanAll(t, "int main void return x1")
	want := []token.Kind{token.INT, token.IDENT, token.VOID, token.RETURN, token.IDENT, token.EOF}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
	if toks[1].Lexeme != "main" {
		t.Errorf("expected lexeme main, got %q", toks[1].Lexeme)
	}
}

func TestNumberLiteral(t *testing.T) {
	toks := scanAll(t, "42")
	if toks[0].Kind != token.NUMBER || toks[0].Lexeme != "42" {
		t.Fatalf("got %+v", toks[0])
	}
}

func TestConstantFollowedByIdentifierIsUnknownOneChar(t *testing.T) {
	toks := scanAll(t, "1foo")
	if toks[0].Kind != token.UNKNOWN {
		t.Fatalf("expected UNKNOWN, got %v", toks[0].Kind)
	}
	if toks[0].Lexeme != "f" {
		t.Fatalf("expected one-character span 'f', got %q", toks[0].Lexeme)
	}
	if toks[0].Offset != 1 {
		t.Fatalf("expected offset 1, got %d", toks[0].Offset)
	}
	// Scanning continues: "oo" is then a regular identifier.
	if toks[1].Kind != token.IDENT || toks[1].Lexeme != "oo" {
		t.Fatalf("expected trailing identifier 'oo', got %+v", toks[1])
	}
}

func TestTwoCharacterPunctuationDisambiguation(t *testing.T) {
	toks := scanAll(t, "<= >= == != && || < > = ! ~")
	want := []token.Kind{
		token.LE, token.GE, token.EQ, token.NE, token.AND_AND, token.OR_OR,
		token.LESS, token.GREATER, token.ASSIGN, token.BANG, token.TILDE, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(toks), len(want), toks)
	}
	for i, k := range want {
		if toks[i].Kind != k {
			t.Errorf("token %d: got %v want %v", i, toks[i].Kind, k)
		}
	}
}

func TestDoubleMinusFallsThroughToTwoMinusTokens(t *testing.T) {
	toks := scanAll(t, "--")
	if toks[0].Kind != token.MINUS || toks[1].Kind != token.MINUS || toks[2].Kind != token.EOF {
		t.Fatalf("got %v", toks)
	}
}

func TestBareAmpersandAndPipeAreUnknown(t *testing.T) {
	toks := scanAll(t, "& |")
	if toks[0].Kind != token.UNKNOWN || toks[0].Lexeme != "&" {
		t.Fatalf("got %+v", toks[0])
	}
	if toks[1].Kind != token.UNKNOWN || toks[1].Lexeme != "|" {
		t.Fatalf("got %+v", toks[1])
	}
}

func TestTokenOffsetIsFirstCharacterOfLexeme(t *testing.T) {
	toks := scanAll(t, "   foo")
	if toks[0].Offset != 3 {
		t.Fatalf("expected offset 3, got %d", toks[0].Offset)
	}
}

func TestRestartableViaReset(t *testing.T) {
	a := arena.New(4096)
	l := New("int x;", a)
	var first token.Token
	l.NextToken(&first)
	l.Reset()
	var second token.Token
	l.NextToken(&second)
	if first.Kind != second.Kind {
		t.Fatalf("expected identical first token after reset")
	}
}

func TestArenaExhaustionFailsNextToken(t *testing.T) {
	a := arena.New(1)
	l := New("abcdefgh", a)
	var tok token.Token
	if ok := l.NextToken(&tok); ok {
		t.Fatalf("expected exhaustion failure for a long identifier in a tiny arena")
	}
}
