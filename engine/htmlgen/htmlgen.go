package htmlgen

import (
	"strings"

	"github.com/lolml/lolml/lang/ast"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Generator turns a document tree into an HTML node tree.
type Generator struct{}

// New creates an HTML generator; it carries no state.
func New() *Generator {
	return &Generator{}
}

// Generate builds an <html> element holding the rendered document. The
// input tree is read only, never mutated.
func (g *Generator) Generate(nodes []ast.Node) *html.Node {
	root := element(atom.Html)
	g.emitNodes(root, nodes)
	return root
}

// GenerateString renders the document to serialized HTML text.
func (g *Generator) GenerateString(nodes []ast.Node) (string, error) {
	root := g.Generate(nodes)
	var sb strings.Builder
	if err := html.Render(&sb, root); err != nil {
		return "", err
	}
	tracer().Debugf("generated %d bytes of HTML", sb.Len())
	return sb.String(), nil
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textNode(t string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: t}
}

// emitNodes appends block-level renderings of nodes to parent. The switch
// enumerates every tree variant; the set is closed in package ast.
func (g *Generator) emitNodes(parent *html.Node, nodes []ast.Node) {
	for _, n := range nodes {
		switch x := n.(type) {
		case ast.Document:
			g.emitNodes(parent, x.Children)
		case ast.Comment:
			parent.AppendChild(&html.Node{Type: html.CommentNode, Data: " " + strings.TrimSpace(x.Text) + " "})
		case ast.Head:
			head := element(atom.Head)
			g.emitNodes(head, x.Children)
			parent.AppendChild(head)
		case ast.Title:
			title := element(atom.Title)
			title.AppendChild(textNode(strings.TrimSpace(x.Text)))
			parent.AppendChild(title)
		case ast.Body:
			// reserved variant, nothing constructs it
		case ast.Paragraph:
			p := element(atom.P)
			g.emitInline(p, x.Children)
			parent.AppendChild(p)
		case ast.Bold:
			parent.AppendChild(inlineWrap(atom.B, x.Text))
		case ast.Italics:
			parent.AppendChild(inlineWrap(atom.I, x.Text))
		case ast.List:
			ul := element(atom.Ul)
			g.emitNodes(ul, x.Children)
			parent.AppendChild(ul)
		case ast.ListItem:
			li := element(atom.Li)
			g.emitInline(li, x.Children)
			parent.AppendChild(li)
		case ast.Newline:
			parent.AppendChild(element(atom.Br))
		case ast.Audio:
			parent.AppendChild(audioElement(x.URL))
		case ast.Video:
			parent.AppendChild(videoElement(x.URL))
		case ast.Text:
			parent.AppendChild(textNode(x.Text))
		case ast.VarDef, ast.VarUse:
			// handled (or rather, deliberately not) by the semantic stage
		}
	}
}

// emitInline appends inline renderings, used inside <p> and <li>. Nested
// block variants that end up inline are flattened; head-only and variable
// variants are dropped.
func (g *Generator) emitInline(parent *html.Node, nodes []ast.Node) {
	for _, n := range nodes {
		switch x := n.(type) {
		case ast.Bold:
			parent.AppendChild(inlineWrap(atom.B, x.Text))
		case ast.Italics:
			parent.AppendChild(inlineWrap(atom.I, x.Text))
		case ast.Newline:
			parent.AppendChild(element(atom.Br))
		case ast.Text:
			parent.AppendChild(textNode(x.Text))
		case ast.Audio:
			parent.AppendChild(audioElement(x.URL))
		case ast.Video:
			parent.AppendChild(videoElement(x.URL))
		case ast.Document:
			g.emitInline(parent, x.Children)
		case ast.Head:
			g.emitInline(parent, x.Children)
		case ast.Body:
			g.emitInline(parent, x.Children)
		case ast.Paragraph:
			g.emitInline(parent, x.Children)
		case ast.List:
			g.emitInline(parent, x.Children)
		case ast.ListItem:
			g.emitInline(parent, x.Children)
		case ast.Title, ast.Comment, ast.VarDef, ast.VarUse:
			// do not belong inline
		}
	}
}

func inlineWrap(a atom.Atom, text string) *html.Node {
	el := element(a)
	el.AppendChild(textNode(strings.TrimSpace(text)))
	return el
}

func audioElement(url string) *html.Node {
	audio := element(atom.Audio, html.Attribute{Key: "controls"})
	audio.AppendChild(element(atom.Source, html.Attribute{Key: "src", Val: strings.TrimSpace(url)}))
	return audio
}

func videoElement(url string) *html.Node {
	return element(atom.Iframe, html.Attribute{Key: "src", Val: strings.TrimSpace(url)})
}
