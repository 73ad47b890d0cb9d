/*
Package measure measures the extent of text, using a ruler supplied by a host
surface.

A Ruler is a function measuring a single line of text under a fixed style
context. Measurers normalize the quirks of rulers: whitespace-only text
measures as zero, text containing newlines is measured as a block of stacked
lines, and boundary whitespace may optionally be recovered with guards.

Character measurers measure text as the sum of its characters, where a
character is a Unicode grapheme cluster. Caching measurers memoize
measurements until they are reset.

None of the measurers is safe for concurrent use.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package measure

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.measure'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.measure")
}
