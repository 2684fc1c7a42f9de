package lexer

import (
	"testing"

	"github.com/lolml/lolml/lang/token"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

// lex drains the lexer and returns all tokens up to (excluding) EOF.
func lex(t *testing.T, input string) []token.Token {
	t.Helper()
	lx := New(input)
	var toks []token.Token
	for {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatalf("unexpected lexer error: %v", err)
		}
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, tok := range toks {
		ks[i] = tok.Kind
	}
	return ks
}

func TestHashStartsAnnotation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "#HAI")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(toks), toks)
	}
	if toks[0].Kind != token.Hash {
		t.Errorf("expected Hash, got %v", toks[0])
	}
	if toks[1].Kind != token.Keyw || toks[1].Keyword != token.Hai {
		t.Errorf("expected keyword HAI, got %v", toks[1])
	}
}

func TestKeywordCaseInsensitive(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "#hai")
	if toks[1].Kind != token.Keyw || toks[1].Keyword != token.Hai {
		t.Errorf("expected lowercase 'hai' after '#' to lex as keyword, got %v", toks[1])
	}
}

func TestKeywordChainAfterMaek(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "#MAEK HEAD")
	// Hash, MAEK, whitespace, HEAD
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %v", len(toks), toks)
	}
	if toks[2].Kind != token.Text {
		t.Errorf("expected whitespace Text between keywords, got %v", toks[2])
	}
	if toks[3].Kind != token.Keyw || toks[3].Keyword != token.Head {
		t.Errorf("expected HEAD to be licensed after MAEK, got %v", toks[3])
	}
}

func TestKeywordAsProse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	// In body text no context flag is set, so keyword spellings stay words.
	toks := lex(t, "my list of bold items")
	for _, tok := range toks {
		if tok.Kind == token.Keyw {
			t.Errorf("prose word lexed as keyword: %v", tok)
		}
	}
}

func TestKeywordAfterKeywordWithoutTrigger(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	// HAI does not license a following keyword.
	toks := lex(t, "#HAI list")
	last := toks[len(toks)-1]
	if last.Kind != token.Word || last.Content != "list" {
		t.Errorf("expected plain word 'list' after HAI, got %v", last)
	}
}

func TestVariableDefinitionChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "#I HAZ kitteh IT IZ a cat")
	want := []token.Kind{
		token.Hash, token.Keyw, token.Text, token.Keyw, // # I _ HAZ
		token.Text, token.Word, // _ kitteh
		token.Text, token.Keyw, token.Text, token.Keyw, // _ IT _ IZ
		token.Text, token.Word, token.Text, token.Word, // _ a _ cat
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("expected %d tokens, got %d: %v", len(want), len(got), toks)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d: expected kind %v, got %v (%v)", i, want[i], got[i], toks[i])
		}
	}
	if toks[5].Content != "kitteh" {
		t.Errorf("expected variable name 'kitteh', got %q", toks[5].Content)
	}
	if toks[7].Keyword != token.It || toks[9].Keyword != token.Iz {
		t.Errorf("expected IT IZ keywords after the name, got %v %v", toks[7], toks[9])
	}
}

func TestWhitespaceIsText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "a  \n\t b")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[1].Kind != token.Text || toks[1].Content != "  \n\t " {
		t.Errorf("expected whitespace run preserved verbatim, got %q", toks[1].Content)
	}
}

func TestPunctuationRuns(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "wow!?")
	if len(toks) != 2 {
		t.Fatalf("expected 2 tokens, got %d: %v", len(toks), toks)
	}
	if toks[1].Kind != token.Text || toks[1].Content != "!?" {
		t.Errorf("expected punctuation run '!?', got %v", toks[1])
	}
}

func TestUnknownCharacterIsSingleText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	toks := lex(t, "a&b")
	if len(toks) != 3 {
		t.Fatalf("expected 3 tokens, got %d: %v", len(toks), toks)
	}
	if toks[1].Kind != token.Text || toks[1].Content != "&" {
		t.Errorf("expected single-character Text '&', got %v", toks[1])
	}
}

func TestLineColTracking(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	lx := New("ab\ncd")
	for i := 0; i < 3; i++ { // 'ab', '\n', 'cd'
		if _, err := lx.NextToken(); err != nil {
			t.Fatal(err)
		}
	}
	if lx.Line != 2 {
		t.Errorf("expected line 2 after newline, got %d", lx.Line)
	}
	if lx.Col != 2 {
		t.Errorf("expected col 2 after 'cd', got %d", lx.Col)
	}
}

func TestEOFIsSticky(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.lang")
	defer teardown()
	//
	lx := New("")
	for i := 0; i < 3; i++ {
		tok, err := lx.NextToken()
		if err != nil {
			t.Fatal(err)
		}
		if tok.Kind != token.EOF {
			t.Fatalf("expected EOF on call %d, got %v", i, tok)
		}
	}
}
