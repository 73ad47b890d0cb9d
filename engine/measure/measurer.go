package measure

import (
	"strings"

	"github.com/npillmayer/typewriter/core/dimen"
)

// Ruler measures a single line of text. It must return the same dimensions
// for the same input as long as the style context of the host surface is
// unchanged.
type Ruler func(text string) dimen.Dimensions

// TextMeasurer is the measuring capability the typesetter depends on.
type TextMeasurer interface {
	Measure(text string) dimen.Dimensions
}

// Resetter is implemented by measurers which hold cached measurements.
type Resetter interface {
	Reset()
}

// HeightText is a probe string containing ascenders and descenders.
// Its height is the line height of a style context.
const HeightText = "bqpdl"

// LineHeight returns the height of a single line of text.
func LineHeight(m TextMeasurer) float64 {
	return m.Measure(HeightText).H
}

// Measurer measures text with a ruler.
type Measurer struct {
	ruler      Ruler
	useGuards  bool
	guardWidth float64
	hasGuard   bool
	line       func(string) dimen.Dimensions
}

// Option configures a measurer.
type Option func(*Measurer)

// WithGuards makes a measurer enclose every line in guards before handing
// it to the ruler. Many text measurement primitives ignore leading and
// trailing whitespace; guards make it count.
func WithGuards(useGuards bool) Option {
	return func(m *Measurer) {
		m.useGuards = useGuards
	}
}

// NewMeasurer creates a measurer for a ruler.
func NewMeasurer(ruler Ruler, opts ...Option) *Measurer {
	m := &Measurer{}
	initMeasurer(m, ruler, opts)
	m.line = m.measureLine
	return m
}

func initMeasurer(m *Measurer, ruler Ruler, opts []Option) {
	if ruler == nil {
		panic("measurer needs a ruler")
	}
	m.ruler = ruler
	for _, opt := range opts {
		opt(m)
	}
}

// Measure returns the dimensions of text. Empty or whitespace-only text
// measures as zero, without consulting the ruler. Text is split at newlines;
// the resulting block is as wide as its widest line and as high as the sum
// of its lines.
func (m *Measurer) Measure(text string) dimen.Dimensions {
	text = strings.TrimSpace(text)
	if text == "" {
		return dimen.Zero
	}
	var d dimen.Dimensions
	for _, line := range strings.Split(text, "\n") {
		ld := m.line(line)
		d.W = dimen.Max(d.W, ld.W)
		d.H += ld.H
	}
	return d
}

// SetRuler replaces the ruler, e.g. after the font of the host surface has
// changed. Caches built on top of m are not affected.
func (m *Measurer) SetRuler(ruler Ruler) {
	if ruler == nil {
		panic("measurer needs a ruler")
	}
	m.ruler = ruler
	m.hasGuard = false
}

// Reset forgets the measured width of the guards.
func (m *Measurer) Reset() {
	m.hasGuard = false
}

func (m *Measurer) measureLine(line string) dimen.Dimensions {
	if !m.useGuards {
		return m.ruler(line)
	}
	d := m.ruler(HeightText + line + HeightText)
	d.W = dimen.Max(0, d.W-2*m.guardsWidth())
	return d
}

func (m *Measurer) guardsWidth() float64 {
	if !m.hasGuard {
		m.guardWidth = m.ruler(HeightText).W
		m.hasGuard = true
		tracer().Debugf("guard width = %.2f", m.guardWidth)
	}
	return m.guardWidth
}

var _ TextMeasurer = &Measurer{}
var _ Resetter = &Measurer{}
