/*
Package monospace implements a host surface for monospaced output, e.g. a
terminal or plain text files.

Text is measured in grid cells. Every grapheme occupies one or two cells,
according to its East Asian width as specified in UAX#11. Pens record what
they draw; upright text may be rendered onto a character grid.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package monospace

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.backend'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.backend")
}
