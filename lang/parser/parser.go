package parser

import (
	"fmt"
	"strings"

	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/lolml/lolml/core"
	"github.com/lolml/lolml/lang/ast"
	"github.com/lolml/lolml/lang/lexer"
	"github.com/lolml/lolml/lang/token"
)

// SyntaxError signals a grammar-rule mismatch. Expected describes the
// grammar symbol the parser was waiting for, Found is the literal lexeme
// it saw instead (or "<EOF>").
type SyntaxError struct {
	Expected string
	Found    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error: expected %s, found %s", e.Expected, e.Found)
}

func errSyntax(expected, found string) error {
	return core.WrapError(&SyntaxError{Expected: expected, Found: found},
		core.ESYNTAX, "expected %s, found %s", expected, found)
}

// scope accumulates the children of the currently open block until the
// block closes.
type scope struct {
	nodes []ast.Node
}

// Parser holds the lexer, the single lookahead token and the stack of open
// block scopes.
type Parser struct {
	lx     *lexer.Lexer
	look   token.Token
	root   []ast.Node
	scopes *arraystack.Stack
}

// New constructs a parser over the document source and reads the first
// lookahead token.
func New(input string) (*Parser, error) {
	lx := lexer.New(input)
	first, err := lx.NextToken()
	if err != nil {
		return nil, err
	}
	return &Parser{
		lx:     lx,
		look:   first,
		scopes: arraystack.New(),
	}, nil
}

// advance moves to the next token.
func (p *Parser) advance() error {
	t, err := p.lx.NextToken()
	if err != nil {
		return err
	}
	p.look = t
	return nil
}

// expectKeyword ensures the current token is a specific keyword.
func (p *Parser) expectKeyword(kw token.Keyword) error {
	if p.look.Kind == token.Keyw && p.look.Keyword == kw {
		return p.advance()
	}
	return errSyntax(kw.String(), p.look.Lexeme())
}

// expectHash ensures the current token is a '#'.
func (p *Parser) expectHash() error {
	if p.look.Kind == token.Hash {
		return p.advance()
	}
	return errSyntax("#", p.look.Lexeme())
}

// lookKeyword returns the current lookahead keyword, or IllegalKeyword if
// the lookahead is not a keyword token.
func (p *Parser) lookKeyword() token.Keyword {
	if p.look.Kind == token.Keyw {
		return p.look.Keyword
	}
	return token.IllegalKeyword
}

// pushNode appends n to the innermost open scope, or to the document root
// if no scope is open.
func (p *Parser) pushNode(n ast.Node) {
	if top, ok := p.scopes.Peek(); ok {
		sc := top.(*scope)
		sc.nodes = append(sc.nodes, n)
		return
	}
	p.root = append(p.root, n)
}

func (p *Parser) pushScope() {
	p.scopes.Push(&scope{})
}

// popScope closes the innermost scope and returns its accumulated children.
// Each block-opening rule pushes exactly once before its loop and pops
// exactly once after, so the stack is never empty here.
func (p *Parser) popScope() []ast.Node {
	top, _ := p.scopes.Pop()
	return top.(*scope).nodes
}

// skipSpace discards whitespace-only text tokens.
func (p *Parser) skipSpace() error {
	for p.look.Kind == token.Text && strings.TrimSpace(p.look.Content) == "" {
		if err := p.advance(); err != nil {
			return err
		}
	}
	return nil
}

// textUntilHash concatenates Text and Word tokens until a '#', a keyword or
// EOF is encountered. The boundary token is left as lookahead for the
// caller. Inner whitespace is preserved verbatim; only the overall leading
// and trailing whitespace is trimmed.
func (p *Parser) textUntilHash() (string, error) {
	var sb strings.Builder
	for p.look.Kind == token.Text || p.look.Kind == token.Word {
		sb.WriteString(p.look.Content)
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	return strings.TrimSpace(sb.String()), nil
}

// ParseDocument parses a whole lolml program. A document must start with
// #HAI and end with #KTHXBYE; reaching end of input before #KTHXBYE is a
// syntax error.
func (p *Parser) ParseDocument() ([]ast.Node, error) {
	if err := p.expectHash(); err != nil {
		return nil, err
	}
	if err := p.expectKeyword(token.Hai); err != nil {
		return nil, err
	}
	p.pushScope()

loop:
	for {
		if err := p.skipSpace(); err != nil {
			return nil, err
		}
		switch p.look.Kind {
		case token.Hash:
			if err := p.advance(); err != nil {
				return nil, err
			}
			if err := p.skipSpace(); err != nil {
				return nil, err
			}
			switch p.lookKeyword() {
			case token.Kthxbye:
				if err := p.advance(); err != nil {
					return nil, err
				}
				break loop
			case token.Obtw:
				if err := p.parseComment(); err != nil {
					return nil, err
				}
			case token.Maek:
				if err := p.parseBlock(); err != nil {
					return nil, err
				}
			case token.Gimmeh:
				if err := p.parseGimmeh(); err != nil {
					return nil, err
				}
			case token.Lemme:
				if err := p.parseVarUse(); err != nil {
					return nil, err
				}
			case token.I:
				if err := p.parseVarDef(); err != nil {
					return nil, err
				}
			case token.Head:
				// HEAD without MAEK deserves a hint, not the generic error.
				return nil, errSyntax("Use #MAEK HEAD ... #OIC", "HEAD")
			default:
				return nil, errSyntax("valid top-level annotation", p.look.Lexeme())
			}
		case token.Word, token.Text:
			if err := p.parseText(); err != nil {
				return nil, err
			}
		case token.EOF:
			return nil, errSyntax("#KTHXBYE", "<EOF>")
		default:
			return nil, errSyntax("valid top-level annotation", p.look.Lexeme())
		}
	}

	p.root = p.popScope()
	tracer().Debugf("parsed document with %d root nodes", len(p.root))
	return p.root, nil
}

// parseBlock dispatches a MAEK annotation to the block rule it opens.
func (p *Parser) parseBlock() error {
	if err := p.expectKeyword(token.Maek); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	switch p.lookKeyword() {
	case token.Head:
		return p.parseHead()
	case token.Paragraf:
		return p.parseParagraph()
	case token.List:
		return p.parseList()
	}
	return errSyntax("HEAD/PARAGRAF/LIST", p.look.Lexeme())
}

// parseHead parses a HEAD block: comments and GIMMEH TITLE elements up to
// the closing OIC.
func (p *Parser) parseHead() error {
	if err := p.expectKeyword(token.Head); err != nil {
		return err
	}
	p.pushScope()

loop:
	for {
		if err := p.skipSpace(); err != nil {
			return err
		}
		switch p.look.Kind {
		case token.Hash:
			if err := p.advance(); err != nil {
				return err
			}
			if err := p.skipSpace(); err != nil {
				return err
			}
			switch p.lookKeyword() {
			case token.Gimmeh:
				if err := p.advance(); err != nil {
					return err
				}
				if err := p.skipSpace(); err != nil {
					return err
				}
				if err := p.parseTitle(); err != nil {
					return err
				}
			case token.Obtw:
				if err := p.parseComment(); err != nil {
					return err
				}
			case token.Oic:
				if err := p.advance(); err != nil {
					return err
				}
				break loop
			default:
				return errSyntax("GIMMEH TITLE or OBTW or OIC", p.look.Lexeme())
			}
		case token.EOF:
			return errSyntax("#OIC", "<EOF>")
		default:
			if err := p.advance(); err != nil {
				return err
			}
		}
	}

	p.pushNode(ast.Head{Children: p.popScope()})
	return nil
}

// parseTitle parses TITLE text up to the #MKAY closer.
func (p *Parser) parseTitle() error {
	if err := p.expectKeyword(token.Title); err != nil {
		return err
	}
	t, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.Title{Text: t})
	return nil
}

// parseComment collects everything between OBTW and the #TLDR closer.
// Keyword spellings inside the comment body are ordinary words there and
// accumulate as text; they are not reinterpreted.
func (p *Parser) parseComment() error {
	if err := p.expectKeyword(token.Obtw); err != nil {
		return err
	}
	var sb strings.Builder
	for {
		switch p.look.Kind {
		case token.Hash:
			if err := p.advance(); err != nil {
				return err
			}
			if err := p.skipSpace(); err != nil {
				return err
			}
			if err := p.expectKeyword(token.Tldr); err != nil {
				return err
			}
			p.pushNode(ast.Comment{Text: strings.TrimSpace(sb.String())})
			return nil
		case token.Text, token.Word:
			sb.WriteString(p.look.Content)
			if err := p.advance(); err != nil {
				return err
			}
		case token.EOF:
			return errSyntax("#TLDR", "<EOF>")
		default:
			if err := p.advance(); err != nil {
				return err
			}
		}
	}
}

// parseParagraph parses a PARAGRAF block: free text, inline elements,
// variable operations and comments up to the closing OIC.
func (p *Parser) parseParagraph() error {
	if err := p.expectKeyword(token.Paragraf); err != nil {
		return err
	}
	p.pushScope()

loop:
	for {
		if err := p.skipSpace(); err != nil {
			return err
		}
		switch p.look.Kind {
		case token.Hash:
			if err := p.advance(); err != nil {
				return err
			}
			if err := p.skipSpace(); err != nil {
				return err
			}
			switch p.lookKeyword() {
			case token.Gimmeh:
				if err := p.advance(); err != nil {
					return err
				}
				if err := p.skipSpace(); err != nil {
					return err
				}
				switch p.lookKeyword() {
				case token.Bold:
					if err := p.parseBold(); err != nil {
						return err
					}
				case token.Italics:
					if err := p.parseItalics(); err != nil {
						return err
					}
				case token.Newline:
					if err := p.parseNewline(); err != nil {
						return err
					}
				case token.Soundz:
					if err := p.parseAudio(); err != nil {
						return err
					}
				case token.Vidz:
					if err := p.parseVideo(); err != nil {
						return err
					}
				default:
					return errSyntax("BOLD/ITALICS/NEWLINE/SOUNDZ/VIDZ", p.look.Lexeme())
				}
			case token.Lemme:
				if err := p.parseVarUse(); err != nil {
					return err
				}
			case token.I:
				if err := p.parseVarDef(); err != nil {
					return err
				}
			case token.Obtw:
				if err := p.parseComment(); err != nil {
					return err
				}
			case token.Oic:
				if err := p.advance(); err != nil {
					return err
				}
				break loop
			default:
				return errSyntax("GIMMEH/LEMME/I/OBTW/OIC", p.look.Lexeme())
			}
		case token.Word, token.Text:
			if err := p.parseText(); err != nil {
				return err
			}
		case token.EOF:
			return errSyntax("#OIC", "<EOF>")
		default:
			return errSyntax("content in PARAGRAF", p.look.Lexeme())
		}
	}

	p.pushNode(ast.Paragraph{Children: p.popScope()})
	return nil
}

// parseGimmeh handles a #GIMMEH annotation outside of a specific block
// context and dispatches on the element keyword.
func (p *Parser) parseGimmeh() error {
	if err := p.expectKeyword(token.Gimmeh); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	switch p.lookKeyword() {
	case token.Bold:
		return p.parseBold()
	case token.Italics:
		return p.parseItalics()
	case token.Newline:
		return p.parseNewline()
	case token.Soundz:
		return p.parseAudio()
	case token.Vidz:
		return p.parseVideo()
	case token.Item:
		return p.parseListItem()
	case token.Title:
		return p.parseTitle()
	}
	return errSyntax("BOLD/ITALICS/NEWLINE/SOUNDZ/VIDZ/ITEM/TITLE", p.look.Lexeme())
}

// parseBold parses GIMMEH BOLD text up to the #MKAY closer.
func (p *Parser) parseBold() error {
	if err := p.expectKeyword(token.Bold); err != nil {
		return err
	}
	t, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.Bold{Text: t})
	return nil
}

// parseItalics parses GIMMEH ITALICS text up to the #MKAY closer.
func (p *Parser) parseItalics() error {
	if err := p.expectKeyword(token.Italics); err != nil {
		return err
	}
	t, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.Italics{Text: t})
	return nil
}

// parseNewline parses GIMMEH NEWLINE; the keyword stands alone, without
// trailing text or closer.
func (p *Parser) parseNewline() error {
	if err := p.expectKeyword(token.Newline); err != nil {
		return err
	}
	p.pushNode(ast.Newline{})
	return nil
}

// parseList parses a LIST block holding GIMMEH ITEM entries and comments
// up to the closing OIC.
func (p *Parser) parseList() error {
	if err := p.expectKeyword(token.List); err != nil {
		return err
	}
	p.pushScope()

loop:
	for {
		if err := p.skipSpace(); err != nil {
			return err
		}
		switch p.look.Kind {
		case token.Hash:
			if err := p.advance(); err != nil {
				return err
			}
			if err := p.skipSpace(); err != nil {
				return err
			}
			switch p.lookKeyword() {
			case token.Gimmeh:
				if err := p.advance(); err != nil {
					return err
				}
				if err := p.skipSpace(); err != nil {
					return err
				}
				if err := p.parseListItem(); err != nil {
					return err
				}
			case token.Obtw:
				if err := p.parseComment(); err != nil {
					return err
				}
			case token.Oic:
				if err := p.advance(); err != nil {
					return err
				}
				break loop
			default:
				return errSyntax("GIMMEH ITEM or OBTW or OIC", p.look.Lexeme())
			}
		case token.EOF:
			return errSyntax("#OIC for LIST", "<EOF>")
		default:
			return errSyntax("# in LIST", p.look.Lexeme())
		}
	}

	p.pushNode(ast.List{Children: p.popScope()})
	return nil
}

// parseListItem parses ITEM text up to the #MKAY closer and wraps it as a
// single-element child list.
func (p *Parser) parseListItem() error {
	if err := p.expectKeyword(token.Item); err != nil {
		return err
	}
	t, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.ListItem{Children: []ast.Node{ast.Text{Text: t}}})
	return nil
}

// parseAudio parses GIMMEH SOUNDZ with a URL up to the #MKAY closer.
func (p *Parser) parseAudio() error {
	if err := p.expectKeyword(token.Soundz); err != nil {
		return err
	}
	url, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.Audio{URL: url})
	return nil
}

// parseVideo parses GIMMEH VIDZ with a URL up to the #MKAY closer.
func (p *Parser) parseVideo() error {
	if err := p.expectKeyword(token.Vidz); err != nil {
		return err
	}
	url, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.Video{URL: url})
	return nil
}

// parseVarDef parses a variable definition: I HAZ name IT IZ value #MKAY.
// The definition is recorded in the tree; nothing resolves it later.
func (p *Parser) parseVarDef() error {
	if err := p.expectKeyword(token.I); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Haz); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	name, err := p.parseVarName()
	if err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.It); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Iz); err != nil {
		return err
	}
	value, err := p.textUntilHash()
	if err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.VarDef{Name: name, Value: value})
	return nil
}

// parseVarUse parses a variable reference: LEMME SEE name #MKAY.
func (p *Parser) parseVarUse() error {
	if err := p.expectKeyword(token.Lemme); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.See); err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	name, err := p.parseVarName()
	if err != nil {
		return err
	}
	if err := p.skipSpace(); err != nil {
		return err
	}
	if err := p.expectHash(); err != nil {
		return err
	}
	if err := p.expectKeyword(token.Mkay); err != nil {
		return err
	}
	p.pushNode(ast.VarUse{Name: name})
	return nil
}

// parseVarName takes the variable name from the next Word token, or as a
// fallback the first whitespace-delimited piece of a Text token.
func (p *Parser) parseVarName() (string, error) {
	switch p.look.Kind {
	case token.Word:
		name := p.look.Content
		return name, p.advance()
	case token.Text:
		name := ""
		if fields := strings.Fields(p.look.Content); len(fields) > 0 {
			name = fields[0]
		}
		return name, p.advance()
	}
	return "", errSyntax("variable name", p.look.Lexeme())
}

// parseText collects a maximal run of consecutive Text and Word tokens.
// An all-whitespace run produces no node.
func (p *Parser) parseText() error {
	var sb strings.Builder
	for p.look.Kind == token.Text || p.look.Kind == token.Word {
		sb.WriteString(p.look.Content)
		if err := p.advance(); err != nil {
			return err
		}
	}
	if t := strings.TrimSpace(sb.String()); t != "" {
		p.pushNode(ast.Text{Text: t})
	}
	return nil
}
