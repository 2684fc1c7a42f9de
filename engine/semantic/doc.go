/*
Package semantic performs static checks on a parsed lolml document.

The contract towards the parser is identity or rejection: Check either
passes the tree through unchanged or rejects it with a semantic error.
The current stage records variable definitions into a symbol table but
enforces no rules yet — variable resolution and scope checking are
intentionally unimplemented.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The lolml authors
*/
package semantic

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lolml.semantic'.
func tracer() tracing.Trace {
	return tracing.Select("lolml.semantic")
}
