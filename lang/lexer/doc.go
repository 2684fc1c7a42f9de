/*
Package lexer tokenizes lolml markup documents.

The lexer reads the raw input text character by character and produces
tokens on demand (pull-based; the parser decides when to advance). Keyword
recognition is context-sensitive: a word is matched against the reserved
words only right after a '#' annotation delimiter, or right after certain
keywords which license another keyword (MAEK HEAD, GIMMEH BOLD, IT IZ, …).
Ordinary prose may therefore freely contain words that coincide with
keyword spellings.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 The lolml authors
*/
package lexer

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'lolml.lang'.
func tracer() tracing.Trace {
	return tracing.Select("lolml.lang")
}
