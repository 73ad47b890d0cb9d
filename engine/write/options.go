package write

import (
	"math"

	"github.com/npillmayer/typewriter/core"
)

// XAlign is the horizontal alignment of lines within a box.
type XAlign int8

// Horizontal alignments.
const (
	XLeft XAlign = iota
	XCenter
	XRight
)

func (a XAlign) String() string {
	switch a {
	case XLeft:
		return "left"
	case XCenter:
		return "center"
	case XRight:
		return "right"
	}
	return "?"
}

// factor is the position of the alignment point along a line, as a
// fraction of the line width.
func (a XAlign) factor() float64 {
	return float64(a) / 2
}

func (a XAlign) mirrored() XAlign {
	return XRight - a
}

// anchor maps an alignment to the text anchor a pen has to use.
func (a XAlign) anchor() Anchor {
	return Anchor(a)
}

// YAlign is the vertical alignment of a block of lines within a box.
type YAlign int8

// Vertical alignments.
const (
	YTop YAlign = iota
	YCenter
	YBottom
)

func (a YAlign) String() string {
	switch a {
	case YTop:
		return "top"
	case YCenter:
		return "center"
	case YBottom:
		return "bottom"
	}
	return "?"
}

func (a YAlign) factor() float64 {
	return float64(a) / 2
}

func (a YAlign) mirrored() YAlign {
	return YBottom - a
}

// Anchor is the reference point of a line placed at an offset.
type Anchor int8

// Text anchors.
const (
	AnchorStart Anchor = iota
	AnchorMiddle
	AnchorEnd
)

// String returns "start", "middle" or "end", the values of the SVG
// 'text-anchor' attribute.
func (a Anchor) String() string {
	switch a {
	case AnchorStart:
		return "start"
	case AnchorMiddle:
		return "middle"
	case AnchorEnd:
		return "end"
	}
	return "?"
}

// MaxShear is the maximum absolute shear angle, in degrees.
const MaxShear = 80.0

// Options control the placement of text within a box. The zero value
// places unrotated text at the top left.
type Options struct {
	XAlign   XAlign  // horizontal alignment of lines
	YAlign   YAlign  // vertical alignment of the block of lines
	Rotation float64 // degrees, clockwise; one of 0, 90, -90, 180
	Shear    float64 // degrees, within [-MaxShear, MaxShear]
	AddTitle bool    // ask the pen factory to add a title element
}

// Validate checks the options and returns an error with code
// core.EINVALID for unsupported values.
func (opts Options) Validate() error {
	switch opts.Rotation {
	case 0, 90, -90, 180:
	default:
		return core.Error(core.EINVALID, "unsupported text rotation %g, must be one of 0, 90, -90, 180",
			opts.Rotation)
	}
	if !(opts.Shear >= -MaxShear && opts.Shear <= MaxShear) { // NaN included
		if math.IsNaN(opts.Shear) {
			return core.Error(core.EINVALID, "text shear is not a number")
		}
		return core.Error(core.EINVALID, "text shear %g outside of [%g, %g]",
			opts.Shear, -MaxShear, MaxShear)
	}
	if opts.XAlign < XLeft || opts.XAlign > XRight {
		return core.Error(core.EINVALID, "unknown horizontal alignment %d", opts.XAlign)
	}
	if opts.YAlign < YTop || opts.YAlign > YBottom {
		return core.Error(core.EINVALID, "unknown vertical alignment %d", opts.YAlign)
	}
	return nil
}

// isHorizontal is true if text runs along the x-axis of the box.
func (opts Options) isHorizontal() bool {
	return opts.Rotation == 0 || opts.Rotation == 180
}

// isFlipped is true if the visual left of a line is its end.
func (opts Options) isFlipped() bool {
	return opts.Rotation == 180 || opts.Rotation == -90
}
