package write

import (
	"fmt"

	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/typewriter/engine/measure"
	"github.com/npillmayer/typewriter/engine/wrap"
)

// Transform maps the line-local frame of a text block to the frame of its
// box: first rotate by Rotate degrees (clockwise), then translate.
type Transform struct {
	Translate dimen.Point
	Rotate    float64
}

func (t Transform) String() string {
	return fmt.Sprintf("translate%v rotate(%g)", t.Translate, t.Rotate)
}

// Pen draws lines of text which have already been positioned. x and y are
// offsets in the line-local frame; y is the top of the line.
type Pen interface {
	Write(line string, anchor Anchor, x, y float64)
}

// Destroyer is implemented by pens holding resources for a single write.
type Destroyer interface {
	Destroy()
}

// PenFactory creates a pen for a single write. text is the complete text to
// be written, which a surface may use for a title element.
type PenFactory interface {
	CreatePen(text string, xform Transform, addTitle bool) Pen
}

// PenFactoryFunc is an adapter to use a plain function as a PenFactory.
type PenFactoryFunc func(text string, xform Transform, addTitle bool) Pen

// CreatePen calls f(text, xform, addTitle).
func (f PenFactoryFunc) CreatePen(text string, xform Transform, addTitle bool) Pen {
	return f(text, xform, addTitle)
}

// Surface is a host rendering surface. It supplies a ruler for measuring
// text in its current style context, and creates pens drawing onto it.
type Surface interface {
	PenFactory
	Ruler() measure.Ruler
}

// NewSurfaceWriter creates a writer for a surface, measuring text with a
// cached character measurer on the surface's ruler. If the style context of
// the surface changes, clients have to reset the writer's measurer, or
// create a new writer.
func NewSurfaceWriter(s Surface, wrapper *wrap.Wrapper, opts ...measure.Option) *Writer {
	return NewWriter(measure.NewCacheMeasurer(s.Ruler(), opts...), s, wrapper)
}
