// Package token defines the lexical categories of the lolml markup language.
//
// Tokens are the smallest meaningful pieces of a source document. The lexer
// produces them, the parser consumes them one at a time. A Token is immutable
// once produced.
package token

import (
	"github.com/derekparker/trie"
	"golang.org/x/text/cases"
)

// Kind classifies a token.
type Kind int8

const (
	Hash Kind = iota // the '#' annotation delimiter
	Word             // identifier-like text
	Text             // whitespace or punctuation runs
	Keyw             // a recognized reserved word
	EOF              // end of input
)

// Token is a tagged union over Kind. Content is the verbatim source text of
// Word and Text tokens; Keyword is valid for Kind Keyw only.
type Token struct {
	Kind    Kind
	Content string
	Keyword Keyword
}

// Lexeme renders the token back to the text form used in error messages.
func (t Token) Lexeme() string {
	switch t.Kind {
	case Hash:
		return "#"
	case Word, Text:
		return t.Content
	case Keyw:
		return t.Keyword.String()
	}
	return "<EOF>"
}

// HashToken returns the '#' delimiter token.
func HashToken() Token { return Token{Kind: Hash} }

// WordToken wraps identifier-like text, original case preserved.
func WordToken(w string) Token { return Token{Kind: Word, Content: w} }

// TextToken wraps a run of whitespace or punctuation.
func TextToken(t string) Token { return Token{Kind: Text, Content: t} }

// KeywordToken wraps a recognized reserved word.
func KeywordToken(k Keyword) Token { return Token{Kind: Keyw, Keyword: k} }

// EOFToken signals end of input.
func EOFToken() Token { return Token{Kind: EOF} }

// --- Keywords --------------------------------------------------------------

// Keyword enumerates all reserved words of the language. A word matches a
// keyword spelling (case-insensitively) only when the lexer's context permits
// keyword interpretation; otherwise it stays plain word data.
type Keyword int8

const (
	IllegalKeyword Keyword = iota
	Hai                    // program start
	Kthxbye                // program end
	Obtw                   // comment start
	Tldr                   // comment end
	Maek                   // open a structural block
	Gimmeh                 // request a body element
	Head
	Title
	Paragraf
	Oic // block closer
	Bold
	Italics
	Newline
	Soundz // audio
	Vidz   // video
	List
	Item
	Lemme // variable use: LEMME SEE
	See
	I // variable definition: I HAZ … IT IZ …
	Haz
	It
	Iz
	Mkay // inline closer
)

var spellings = [...]string{
	IllegalKeyword: "",
	Hai:            "HAI",
	Kthxbye:        "KTHXBYE",
	Obtw:           "OBTW",
	Tldr:           "TLDR",
	Maek:           "MAEK",
	Gimmeh:         "GIMMEH",
	Head:           "HEAD",
	Title:          "TITLE",
	Paragraf:       "PARAGRAF",
	Oic:            "OIC",
	Bold:           "BOLD",
	Italics:        "ITALICS",
	Newline:        "NEWLINE",
	Soundz:         "SOUNDZ",
	Vidz:           "VIDZ",
	List:           "LIST",
	Item:           "ITEM",
	Lemme:          "LEMME",
	See:            "SEE",
	I:              "I",
	Haz:            "HAZ",
	It:             "IT",
	Iz:             "IZ",
	Mkay:           "MKAY",
}

// String returns the canonical (uppercase) spelling of a keyword.
func (k Keyword) String() string {
	if k < IllegalKeyword || int(k) >= len(spellings) {
		return "<illegal>"
	}
	return spellings[k]
}

// ExpectsKeyword reports whether k forces the immediately following word to
// be interpreted as a keyword, too. This models constructs like MAEK HEAD,
// GIMMEH BOLD, LEMME SEE, I HAZ and IT IZ.
func (k Keyword) ExpectsKeyword() bool {
	switch k {
	case Maek, Gimmeh, Lemme, I, It:
		return true
	}
	return false
}

// Keyword spellings live in a trie, keyed by their case-folded form.
var keywords = trie.New()
var fold = cases.Fold()

func init() {
	for k, s := range spellings {
		if s == "" {
			continue
		}
		keywords.Add(fold.String(s), Keyword(k))
	}
}

// Lookup matches word against the keyword table, ignoring case.
func Lookup(word string) (Keyword, bool) {
	n, ok := keywords.Find(fold.String(word))
	if !ok {
		return IllegalKeyword, false
	}
	return n.Meta().(Keyword), true
}
