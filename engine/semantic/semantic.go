package semantic

import (
	"github.com/emirpasic/gods/maps/treemap"
	"github.com/lolml/lolml/lang/ast"
)

// Analyzer walks a document tree and records variable definitions.
type Analyzer struct {
	nodes   []ast.Node
	symbols *treemap.Map // variable name → defined value
}

// New creates an analyzer for the tree produced by the parser.
func New(nodes []ast.Node) *Analyzer {
	return &Analyzer{
		nodes:   nodes,
		symbols: treemap.NewWithStringComparator(),
	}
}

// Check validates the document tree. It returns the tree unchanged; callers
// must not assume any transformation occurs. Variable definitions are
// collected into the symbol table on the way, and references to variables
// without a definition are traced but not (yet) rejected.
func (a *Analyzer) Check() ([]ast.Node, error) {
	a.collect(a.nodes)
	tracer().Debugf("semantic stage recorded %d variable(s)", a.symbols.Size())
	return a.nodes, nil
}

// Symbols returns the variable bindings recorded by Check, keyed by name
// in sorted order.
func (a *Analyzer) Symbols() *treemap.Map {
	return a.symbols
}

func (a *Analyzer) collect(nodes []ast.Node) {
	for _, n := range nodes {
		switch x := n.(type) {
		case ast.VarDef:
			if _, ok := a.symbols.Get(x.Name); ok {
				tracer().Infof("variable %q redefined", x.Name)
			}
			a.symbols.Put(x.Name, x.Value)
		case ast.VarUse:
			if _, ok := a.symbols.Get(x.Name); !ok {
				tracer().Infof("variable %q used without definition", x.Name)
			}
		case ast.Document:
			a.collect(x.Children)
		case ast.Head:
			a.collect(x.Children)
		case ast.Body:
			a.collect(x.Children)
		case ast.Paragraph:
			a.collect(x.Children)
		case ast.List:
			a.collect(x.Children)
		case ast.ListItem:
			a.collect(x.Children)
		}
	}
}
