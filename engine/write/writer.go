package write

import (
	"math"
	"strings"
	"sync/atomic"

	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/typewriter/engine/measure"
	"github.com/npillmayer/typewriter/engine/wrap"
	"golang.org/x/text/unicode/norm"
)

// writerIDs allocates writer identities. It is never reset.
var writerIDs atomic.Int64

// Writer typesets text into boxes. A writer holds no state from one write to
// the next, apart from the caches of its measurer and the configuration of
// its wrapper.
//
// A Writer is not safe for concurrent use.
type Writer struct {
	id       int64
	measurer measure.TextMeasurer
	pens     PenFactory
	wrapper  *wrap.Wrapper
	addTitle bool
}

// NewWriter creates a writer. If wrapper is nil, a wrapper with the default
// configuration is used.
func NewWriter(m measure.TextMeasurer, pens PenFactory, wrapper *wrap.Wrapper) *Writer {
	if m == nil || pens == nil {
		panic("writer needs a measurer and a pen factory")
	}
	if wrapper == nil {
		wrapper = wrap.NewWrapper()
	}
	w := &Writer{
		id:       writerIDs.Add(1),
		measurer: m,
		pens:     pens,
		wrapper:  wrapper,
	}
	tracer().Debugf("created writer #%d", w.id)
	return w
}

// ID returns the identity of the writer. Identities are unique within a
// process and strictly increasing in the order of construction.
func (w *Writer) ID() int64 {
	return w.id
}

// Wrapper returns the wrapper of w. Re-configuring it changes the behaviour
// of subsequent writes.
func (w *Writer) Wrapper() *wrap.Wrapper {
	return w.wrapper
}

// Measurer returns the measurer of w.
func (w *Writer) Measurer() measure.TextMeasurer {
	return w.measurer
}

// SetAddTitleElement makes every subsequent write ask for a title element,
// regardless of Options.AddTitle.
func (w *Writer) SetAddTitleElement(addTitle bool) {
	w.addTitle = addTitle
}

// Placement is a line positioned within the line-local frame of a box.
type Placement struct {
	Text   string
	Anchor Anchor
	X, Y   float64          // anchor point, Y is the top of the line
	Size   dimen.Dimensions // as measured
}

// Layout is the result of typesetting text into a box, without drawing.
type Layout struct {
	Text       string // normalized text
	Transform  Transform
	LineHeight float64
	Lines      []Placement
	Wrapping   wrap.Result
}

// Layout typesets text into a box of width × height and returns the
// positioned lines. Invalid options result in an error with code
// core.EINVALID.
func (w *Writer) Layout(text string, width, height float64, opts Options) (Layout, error) {
	if err := opts.Validate(); err != nil {
		tracer().Errorf("%v", err)
		return Layout{}, err
	}
	text = Normalize(text)
	box := dimen.Dimensions{W: width, H: height}
	if !opts.isHorizontal() {
		box = box.Swap()
	}
	primary, secondary := box.W, box.H
	lh := measure.LineHeight(w.measurer)
	rad := opts.Shear * math.Pi / 180
	shearShift := lh * math.Tan(rad)
	wrapW := primary/math.Cos(rad) - math.Abs(shearShift)
	wrapH := secondary * math.Cos(rad)
	res := w.wrapper.Wrap(text, w.measurer, wrapW, wrapH)
	tracer().Debugf("writer #%d: %d lines in box %v", w.id, res.NoLines,
		dimen.Dimensions{W: wrapW, H: wrapH})
	//
	xAlign, yAlign := opts.XAlign, opts.YAlign
	if opts.isFlipped() {
		xAlign, yAlign = xAlign.mirrored(), yAlign.mirrored()
	}
	anchor := xAlign.anchor()
	xBase := primary * xAlign.factor()
	yBlock := (secondary - float64(res.NoLines)*lh) * yAlign.factor()
	layout := Layout{
		Text:       text,
		Transform:  transform(width, height, opts),
		LineHeight: lh,
		Wrapping:   res,
	}
	for i, line := range res.Lines() {
		shift := shearShift * float64(i)
		if shearShift > 0 {
			shift = shearShift * float64(i+1)
		}
		layout.Lines = append(layout.Lines, Placement{
			Text:   line,
			Anchor: anchor,
			X:      xBase + shift,
			Y:      yBlock + float64(i)*lh,
			Size:   w.measurer.Measure(line),
		})
	}
	return layout, nil
}

// Write typesets text into a box of width × height and draws it. Options
// are validated before any pen is created; invalid options result in an
// error with code core.EINVALID.
func (w *Writer) Write(text string, width, height float64, opts Options) error {
	layout, err := w.Layout(text, width, height, opts)
	if err != nil {
		return err
	}
	if len(layout.Lines) == 0 {
		tracer().Debugf("writer #%d: nothing to draw", w.id)
		return nil
	}
	pen := w.pens.CreatePen(layout.Text, layout.Transform, w.addTitle || opts.AddTitle)
	for _, p := range layout.Lines {
		pen.Write(p.Text, p.Anchor, p.X, p.Y)
	}
	if d, ok := pen.(Destroyer); ok {
		d.Destroy()
	}
	return nil
}

// transform maps the line-local frame to the box, for valid options.
func transform(width, height float64, opts Options) Transform {
	var origin dimen.Point
	switch opts.Rotation {
	case 90:
		origin = dimen.Point{X: width}
	case -90:
		origin = dimen.Point{Y: height}
	case 180:
		origin = dimen.Point{X: width, Y: height}
	}
	return Transform{Translate: origin, Rotate: opts.Rotation + opts.Shear}
}

// Normalize prepares text for wrapping: it is converted to Unicode NFC,
// line endings are unified, and runs of spaces and tabs collapse to a
// single space.
func Normalize(text string) string {
	text = norm.NFC.String(text)
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var b strings.Builder
	b.Grow(len(text))
	blank := false
	for _, r := range text {
		if r == ' ' || r == '\t' {
			if !blank {
				b.WriteByte(' ')
			}
			blank = true
			continue
		}
		blank = false
		b.WriteRune(r)
	}
	return b.String()
}
