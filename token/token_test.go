package token

import "testing"

func TestLookupIdentifierKeywords(t *testing.T) {
	cases := map[string]Kind{
		"int":    INT,
		"void":   VOID,
		"return": RETURN,
		"foo":    IDENT,
		"ints":   IDENT,
	}
	for lexeme, want := range cases {
		if got := LookupIdentifier(lexeme); got != want {
			t.Errorf("LookupIdentifier(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestKindStringKnown(t *testing.T) {
	if INT.String() != "int" {
		t.Fatalf("got %q", INT.String())
	}
	if LE.String() != "<=" {
		t.Fatalf("got %q", LE.String())
	}
}
