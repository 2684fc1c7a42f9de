/*
Package htmlgen renders a lolml document tree to HTML.

Generation is pure tree-to-text formatting, with no state of its own: the
document tree is mapped onto a golang.org/x/net/html node tree, which is
then serialized. Structural variants (HEAD, LIST) become block elements,
while paragraph and list-item children render inline. Variable nodes and
the reserved Body variant produce no output.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The lolml authors
*/
package htmlgen

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lolml.gen'.
func tracer() tracing.Trace {
	return tracing.Select("lolml.gen")
}
