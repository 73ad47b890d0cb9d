/*
Package canvassurface implements a host surface on top of
github.com/tdewolff/canvas. Text is measured with a font face and drawn as
vector text; a surface may be written as SVG or PDF.

Coordinates of a surface have their origin at the top left corner, with the
y-axis pointing downwards.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package canvassurface

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.backend'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.backend")
}
