package canvassurface

import (
	"image/color"
	"io"

	"github.com/npillmayer/typewriter/core"
	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/typewriter/core/locate/resources"
	"github.com/npillmayer/typewriter/engine/measure"
	"github.com/npillmayer/typewriter/engine/write"
	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"
)

// DefaultFont is the name of the font used by DefaultFace.
const DefaultFont = "Go"

// DefaultFace loads the Go Regular font at a size given in points.
func DefaultFace(size float64, col color.Color) (*canvas.FontFace, error) {
	return LoadFace(DefaultFont, size, col)
}

// LoadFace resolves a font by name (see package resources) and creates a
// face of it at a size given in points. If col is nil, text is black.
func LoadFace(name string, size float64, col color.Color) (*canvas.FontFace, error) {
	f, err := resources.ResolveFont(name).Font()
	if err != nil {
		return nil, err
	}
	family := canvas.NewFontFamily(name)
	if err := family.LoadFont(f.Data, 0, canvas.FontRegular); err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot load font %s", name)
	}
	if col == nil {
		col = canvas.Black
	}
	return family.Face(size, col, canvas.FontRegular, canvas.FontNormal), nil
}

// Surface draws text onto a canvas of fixed size.
type Surface struct {
	canvas *canvas.Canvas
	ctx    *canvas.Context
	face   *canvas.FontFace
	origin dimen.Point
	titles []string
}

// New creates a surface of width × height, drawing text with a font face.
func New(width, height float64, face *canvas.FontFace) *Surface {
	if face == nil {
		panic("canvas surface needs a font face")
	}
	c := canvas.New(width, height)
	return &Surface{
		canvas: c,
		ctx:    canvas.NewContext(c),
		face:   face,
	}
}

// Size returns the size of the surface.
func (s *Surface) Size() dimen.Dimensions {
	return dimen.Dimensions{W: s.canvas.W, H: s.canvas.H}
}

// SetFace changes the style context of the surface. Measurers using the
// ruler of s have to be reset afterwards.
func (s *Surface) SetFace(face *canvas.FontFace) {
	if face != nil {
		s.face = face
	}
}

// MoveTo sets the top left corner of the box the next write will draw into.
func (s *Surface) MoveTo(x, y float64) {
	s.origin = dimen.Point{X: x, Y: y}
}

// Ruler returns a ruler measuring text with the current font face. Every
// non-empty text is one line high.
func (s *Surface) Ruler() measure.Ruler {
	return func(text string) dimen.Dimensions {
		if text == "" {
			return dimen.Zero
		}
		return dimen.Dimensions{
			W: s.face.TextWidth(text),
			H: s.face.Metrics().LineHeight,
		}
	}
}

// CreatePen creates a pen drawing into the box at the current origin.
// Canvas has no notion of title elements; titles are collected and may be
// retrieved with Titles.
func (s *Surface) CreatePen(text string, xform write.Transform, addTitle bool) write.Pen {
	if addTitle {
		s.titles = append(s.titles, text)
	}
	// canvas coordinates have the y-axis pointing upwards
	m := canvas.Identity.
		Translate(s.origin.X+xform.Translate.X, s.canvas.H-s.origin.Y-xform.Translate.Y).
		Rotate(-xform.Rotate)
	s.ctx.Push()
	s.ctx.ComposeView(m)
	tracer().Debugf("pen for %q at %v", text, xform)
	return &pen{surface: s, ascent: s.face.Metrics().Ascent}
}

// Titles returns the texts written with a title requested.
func (s *Surface) Titles() []string {
	return s.titles
}

var _ write.Surface = &Surface{}

// WriteSVG writes the surface as an SVG document.
func (s *Surface) WriteSVG(w io.Writer) error {
	doc := svg.New(w, s.canvas.W, s.canvas.H, nil)
	s.canvas.RenderTo(doc)
	if err := doc.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write SVG")
	}
	return nil
}

// WritePDF writes the surface as a single-page PDF document.
func (s *Surface) WritePDF(w io.Writer) error {
	doc := pdf.New(w, s.canvas.W, s.canvas.H, nil)
	s.canvas.RenderTo(doc)
	if err := doc.Close(); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write PDF")
	}
	return nil
}

type pen struct {
	surface   *Surface
	ascent    float64
	destroyed bool
}

func (p *pen) Write(line string, anchor write.Anchor, x, y float64) {
	if p.destroyed || line == "" {
		return
	}
	align := canvas.Left
	switch anchor {
	case write.AnchorMiddle:
		align = canvas.Center
	case write.AnchorEnd:
		align = canvas.Right
	}
	text := canvas.NewTextLine(p.surface.face, line, align)
	// y is the top of the line in a frame with the y-axis pointing downwards
	p.surface.ctx.DrawText(x, -(y + p.ascent), text)
}

// Destroy restores the view of the canvas context.
func (p *pen) Destroy() {
	if !p.destroyed {
		p.surface.ctx.Pop()
		p.destroyed = true
	}
}
