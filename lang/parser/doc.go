/*
Package parser builds a document tree from lolml markup source.

The parser is a classic single-token-lookahead recursive-descent parser.
It pulls tokens from the lexer on demand — the token stream is never
materialized up front — and drives one procedure per grammar rule. Nesting
of blocks (HEAD, PARAGRAF, LIST) is handled by an explicit stack of node
accumulators rather than call-stack recursion per nesting level: opening a
block pushes a fresh accumulator, closing it pops the accumulator and wraps
its contents in the container node.

The parser is not error-recovering. The first mismatch between the expected
grammar symbol and the actual lookahead aborts the parse with a SyntaxError
carrying the expected symbol and the found lexeme; no partial tree is
returned.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The lolml authors
*/
package parser

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lolml.lang'.
func tracer() tracing.Trace {
	return tracing.Select("lolml.lang")
}
