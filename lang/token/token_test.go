package token

import (
	"testing"
)

func TestLexemeRendering(t *testing.T) {
	cases := []struct {
		tok    Token
		lexeme string
	}{
		{HashToken(), "#"},
		{WordToken("Cheezburger"), "Cheezburger"},
		{TextToken("  \n"), "  \n"},
		{KeywordToken(Mkay), "MKAY"},
		{EOFToken(), "<EOF>"},
	}
	for _, c := range cases {
		if got := c.tok.Lexeme(); got != c.lexeme {
			t.Errorf("lexeme of %v: got %q, want %q", c.tok.Kind, got, c.lexeme)
		}
	}
}

func TestKeywordLookupIgnoresCase(t *testing.T) {
	for _, spelling := range []string{"hai", "Hai", "HAI", "kthxbye", "paragraf", "MkAy"} {
		if _, ok := Lookup(spelling); !ok {
			t.Errorf("expected %q to match a keyword", spelling)
		}
	}
	if kw, ok := Lookup("gimmeh"); !ok || kw != Gimmeh {
		t.Errorf("lookup of 'gimmeh': got %v/%v", kw, ok)
	}
	if _, ok := Lookup("cheezburger"); ok {
		t.Error("did not expect 'cheezburger' to be a keyword")
	}
}

func TestKeywordChaining(t *testing.T) {
	for _, kw := range []Keyword{Maek, Gimmeh, Lemme, I, It} {
		if !kw.ExpectsKeyword() {
			t.Errorf("%s should license a following keyword", kw)
		}
	}
	for _, kw := range []Keyword{Hai, Head, Oic, Mkay, Haz, See, Iz} {
		if kw.ExpectsKeyword() {
			t.Errorf("%s should not license a following keyword", kw)
		}
	}
}
