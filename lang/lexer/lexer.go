package lexer

import (
	"fmt"
	"strings"

	"github.com/lolml/lolml/core"
	"github.com/lolml/lolml/lang/token"
)

// LexicalError signals a malformed low-level token. The current grammar can
// represent every character as Text or Word, so this is never produced in
// normal operation, but the contract stays available for stricter lexing.
type LexicalError struct {
	Line int
	Col  int
	Msg  string
}

func (e *LexicalError) Error() string {
	return fmt.Sprintf("lexical error at line %d, col %d: %s", e.Line, e.Col, e.Msg)
}

// errLexical wraps a LexicalError with the ELEXICAL error code.
func errLexical(line, col int, msg string) error {
	return core.WrapError(&LexicalError{Line: line, Col: col, Msg: msg},
		core.ELEXICAL, "lexical error at line %d, col %d: %s", line, col, msg)
}

var _ = errLexical // reserved for future stricter lexing

// mode is the lexer's keyword-disambiguation state, a two-slot finite
// automaton made explicit. Only the lexer's own token-producing step may
// mutate it.
type mode int8

const (
	modeProse mode = iota // plain body text, no keyword interpretation
	modeTag               // just consumed '#': next word may be a keyword
	modeChain             // previous keyword licenses another keyword
	modeNameHaz           // next word is a variable name (I HAZ _ IT IZ …)
	modeNameSee           // next word is a variable name (LEMME SEE _)
)

// Lexer converts a character stream into tokens. It owns its position and
// disambiguation state; no external entity may observe or alter them.
type Lexer struct {
	input []rune
	pos   int
	Line  int // current line, 1-based (for error reporting)
	Col   int // current column, 0-based
	mode  mode
}

// New constructs a lexer over the complete document source.
func New(input string) *Lexer {
	return &Lexer{
		input: []rune(input),
		Line:  1,
	}
}

func (lx *Lexer) eof() bool {
	return lx.pos >= len(lx.input)
}

func (lx *Lexer) peek() rune {
	if lx.eof() {
		return 0
	}
	return lx.input[lx.pos]
}

// bump moves forward one character and returns it, updating line/column.
func (lx *Lexer) bump() rune {
	c := lx.peek()
	if !lx.eof() {
		if c == '\n' {
			lx.Line++
			lx.Col = 0
		} else {
			lx.Col++
		}
		lx.pos++
	}
	return c
}

// takeWhile consumes the maximal run of characters satisfying pred.
func (lx *Lexer) takeWhile(pred func(rune) bool) string {
	var sb strings.Builder
	for !lx.eof() && pred(lx.peek()) {
		sb.WriteRune(lx.bump())
	}
	return sb.String()
}

// isWordChar: identifiers and words are letters, digits and underscore.
func isWordChar(c rune) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_'
}

// isTextPunct: punctuation characters allowed as plain text runs.
func isTextPunct(c rune) bool {
	switch c {
	case ',', '.', '"', ':', '?', '!', '%', '/':
		return true
	}
	return false
}

func isSpace(c rune) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

// NextToken returns the next token from the input. At end of input it keeps
// returning EOF, which is a valid lookahead value for every parser loop.
func (lx *Lexer) NextToken() (token.Token, error) {
	if lx.eof() {
		return token.EOFToken(), nil
	}
	c := lx.peek()

	// '#' always starts an annotation tag.
	if c == '#' {
		lx.bump()
		lx.mode = modeTag
		return token.HashToken(), nil
	}

	// Whitespace comes through as Text; the parser discards insignificant
	// whitespace, the lexer never classifies it as meaningful.
	if isSpace(c) {
		return token.TextToken(lx.takeWhile(isSpace)), nil
	}

	if isWordChar(c) {
		word := lx.takeWhile(isWordChar)
		return lx.classifyWord(word), nil
	}

	// Punctuation allowed in text.
	if isTextPunct(c) {
		return token.TextToken(lx.takeWhile(isTextPunct)), nil
	}

	// Anything else is a single text character.
	return token.TextToken(string(lx.bump())), nil
}

// classifyWord resolves the word-vs-keyword ambiguity purely by position:
// keyword interpretation is licensed right after '#' or right after certain
// keywords, never inside free prose.
func (lx *Lexer) classifyWord(word string) token.Token {
	switch lx.mode {
	case modeTag, modeChain:
		if kw, ok := token.Lookup(word); ok {
			lx.mode = modeAfter(kw)
			tracer().Debugf("lexer recognized keyword %s", kw)
			return token.KeywordToken(kw)
		}
	case modeNameHaz:
		// The word is the variable name of an I HAZ definition; the IT IZ
		// part after it must again be read as keywords.
		lx.mode = modeChain
		return token.WordToken(word)
	case modeNameSee:
		lx.mode = modeProse
		return token.WordToken(word)
	}
	lx.mode = modeProse
	return token.WordToken(word)
}

// modeAfter decides which disambiguation state follows an emitted keyword.
func modeAfter(kw token.Keyword) mode {
	switch {
	case kw.ExpectsKeyword():
		return modeChain
	case kw == token.Haz:
		return modeNameHaz
	case kw == token.See:
		return modeNameSee
	}
	return modeProse
}
