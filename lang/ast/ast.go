// Package ast defines the document tree produced by the parser.
//
// Node is a closed sum type: the grammar is fixed and finite, so consumers
// (the HTML generator, the semantic stage) type-switch exhaustively over the
// concrete variants. Nodes are built bottom-up, children before parent, and
// never mutated once constructed.
package ast

// Node is implemented by every tree variant. The marker method seals the
// set of variants to this package.
type Node interface {
	node()
}

// Document is the root sequence of a parsed source.
type Document struct {
	Children []Node
}

// Comment holds the raw text of an OBTW … TLDR comment.
type Comment struct {
	Text string
}

// Head is a MAEK HEAD … OIC block.
type Head struct {
	Children []Node
}

// Title holds the text of a GIMMEH TITLE element; legal only inside Head,
// enforced by which grammar rule may call which.
type Title struct {
	Text string
}

// Body is reserved for forward compatibility; no grammar rule currently
// constructs it.
type Body struct {
	Children []Node
}

// Paragraph is a MAEK PARAGRAF … OIC block.
type Paragraph struct {
	Children []Node
}

// Bold holds bold inline text.
type Bold struct {
	Text string
}

// Italics holds italic inline text.
type Italics struct {
	Text string
}

// List is a MAEK LIST … OIC block; children are ListItem nodes.
type List struct {
	Children []Node
}

// ListItem wraps the content of one GIMMEH ITEM entry.
type ListItem struct {
	Children []Node
}

// Newline is a GIMMEH NEWLINE line break.
type Newline struct{}

// Audio references an audio source URL.
type Audio struct {
	URL string
}

// Video references a video source URL.
type Video struct {
	URL string
}

// Text is a run of plain document text.
type Text struct {
	Text string
}

// VarDef records an I HAZ … IT IZ … definition. Definitions are recorded
// but not resolved; variable semantics are intentionally unimplemented.
type VarDef struct {
	Name  string
	Value string
}

// VarUse records a LEMME SEE … reference.
type VarUse struct {
	Name string
}

func (Document) node()  {}
func (Comment) node()   {}
func (Head) node()      {}
func (Title) node()     {}
func (Body) node()      {}
func (Paragraph) node() {}
func (Bold) node()      {}
func (Italics) node()   {}
func (List) node()      {}
func (ListItem) node()  {}
func (Newline) node()   {}
func (Audio) node()     {}
func (Video) node()     {}
func (Text) node()      {}
func (VarDef) node()    {}
func (VarUse) node()    {}
