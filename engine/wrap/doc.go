/*
Package wrap breaks text into lines fitting a box, and truncates text which
will not fit.

Wrapping is greedy: words are appended to a line as long as the line fits
the available width, with the boundary inclusive. Lines are broken at
whitespace and at explicit newlines only. Words wider than the box are
either left overflowing on a line of their own, or broken into pieces if
configured to do so. When the box runs out of lines, the last line is
subject to a trimming policy (see Trimming).

Wrap is a pure function of its arguments. Wrapper is a convenience for
clients who configure wrapping once and wrap many texts.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package wrap

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.wrap'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.wrap")
}
