package semantic

import (
	"testing"

	"github.com/lolml/lolml/lang/ast"
	"github.com/lolml/lolml/lang/parser"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckPassesTreeThrough(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.semantic")
	defer teardown()
	//
	nodes := []ast.Node{
		ast.Paragraph{Children: []ast.Node{ast.Text{Text: "hello"}}},
	}
	checked, err := New(nodes).Check()
	require.NoError(t, err)
	assert.Equal(t, nodes, checked)
}

func TestCheckRecordsVariables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.semantic")
	defer teardown()
	//
	p, err := parser.New("#HAI#I HAZ kitteh IT IZ a cat #MKAY#LEMME SEE kitteh #MKAY#KTHXBYE")
	require.NoError(t, err)
	nodes, err := p.ParseDocument()
	require.NoError(t, err)
	//
	a := New(nodes)
	_, err = a.Check()
	require.NoError(t, err)
	value, ok := a.Symbols().Get("kitteh")
	require.True(t, ok, "expected variable 'kitteh' to be recorded")
	assert.Equal(t, "a cat", value)
}

func TestCheckRecordsNestedDefinitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.semantic")
	defer teardown()
	//
	nodes := []ast.Node{
		ast.Paragraph{Children: []ast.Node{
			ast.VarDef{Name: "a", Value: "1"},
		}},
		ast.VarDef{Name: "b", Value: "2"},
	}
	a := New(nodes)
	_, err := a.Check()
	require.NoError(t, err)
	assert.Equal(t, 2, a.Symbols().Size())
}

func TestUndefinedUseIsNotRejected(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "lolml.semantic")
	defer teardown()
	//
	// Variable resolution is intentionally unimplemented; an undefined
	// reference passes the check.
	nodes := []ast.Node{ast.VarUse{Name: "ghost"}}
	checked, err := New(nodes).Check()
	require.NoError(t, err)
	assert.Equal(t, nodes, checked)
}
