/*
Package write places wrapped text into a box and draws it with a pen.

A Writer combines a measurer, a wrapper and a pen factory. For every call
to Write it normalizes the text, wraps it into the box (taking rotation and
shear into account), computes an anchor and an offset for every line, and
issues one draw call per line to a pen created for this call.

Pens and pen factories are supplied by a host surface, e.g. package
backend/gfx/canvassurface or backend/monospace. Offsets handed to a pen live
in the line-local frame before rotation; the transform handed to the pen
factory maps this frame to the box.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package write

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.write'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.write")
}
