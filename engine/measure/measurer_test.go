package measure

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/stretchr/testify/assert"
)

// countingRuler measures every rune as 10 units wide and every non-empty
// line as 20 units high.
type countingRuler struct {
	calls int
	scale float64
}

func (r *countingRuler) measure(text string) dimen.Dimensions {
	r.calls++
	if text == "" {
		return dimen.Zero
	}
	scale := r.scale
	if scale == 0 {
		scale = 1
	}
	return dimen.Dimensions{W: scale * 10 * float64(utf8.RuneCountInString(text)), H: 20}
}

// collapsingRuler behaves like the bounding box of an SVG text element:
// boundary whitespace is ignored and inner runs of whitespace collapse.
func collapsingRuler(text string) dimen.Dimensions {
	text = strings.Join(strings.Fields(text), " ")
	if text == "" {
		return dimen.Zero
	}
	return dimen.Dimensions{W: 10 * float64(utf8.RuneCountInString(text)), H: 20}
}

// proportionalRuler has narrow and wide letters.
func proportionalRuler(text string) dimen.Dimensions {
	var d dimen.Dimensions
	for _, r := range text {
		switch r {
		case 'i', 'l':
			d.W += 4
		case 'm', 'w':
			d.W += 14
		default:
			d.W += 9
		}
		d.H = 18
	}
	return d
}

func TestMeasureEmptyString(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	r := &countingRuler{}
	m := NewMeasurer(r.measure, WithGuards(true))
	assert.Equal(t, dimen.Zero, m.Measure(""))
	assert.Equal(t, dimen.Zero, m.Measure(" \t  "))
	assert.Equal(t, dimen.Zero, m.Measure("\n \n"))
	assert.Equal(t, 0, r.calls, "ruler must not be consulted for blank text")
}

func TestMeasureMultipleLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	m := NewMeasurer(collapsingRuler)
	base := m.Measure("a")
	d := m.Measure("a\na")
	assert.Equal(t, base.W, d.W, "width has not changed")
	assert.Equal(t, 2*base.H, d.H, "height has doubled")
	d = m.Measure("abc\na")
	assert.Equal(t, 30.0, d.W, "block is as wide as its widest line")
}

func TestMeasureWhitespaceInMiddle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	m := NewMeasurer(collapsingRuler, WithGuards(true))
	base := m.Measure("a a")
	d := m.Measure("a   a")
	assert.Equal(t, base, d, "multiple whitespaces occupy same space")
	assert.Equal(t, 30.0, d.W)
}

func TestGuardsRecoverBoundaryWhitespace(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	plain := NewCharacterMeasurer(collapsingRuler)
	guarded := NewCharacterMeasurer(collapsingRuler, WithGuards(true))
	assert.Equal(t, 0.0, plain.MeasureCharacter(" ").W)
	assert.Equal(t, 10.0, guarded.MeasureCharacter(" ").W)
	assert.Equal(t, 30.0, guarded.Measure("a a").W)
	assert.Equal(t, 20.0, guarded.Measure("a a").H)
}

func TestGuardWidthIsMeasuredOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	r := &countingRuler{}
	m := NewMeasurer(r.measure, WithGuards(true))
	assert.Equal(t, 10.0, m.Measure("x").W)
	assert.Equal(t, 2, r.calls) // guard + guarded line
	assert.Equal(t, 20.0, m.Measure("xy").W)
	assert.Equal(t, 3, r.calls)
	m.Reset()
	m.Measure("x")
	assert.Equal(t, 5, r.calls)
}

func TestCharacterMeasurer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	m := NewCharacterMeasurer(proportionalRuler)
	text := "helloworld"
	d := m.Measure(text)
	var byChars dimen.Dimensions
	for _, c := range strings.Split(text, "") {
		cd := m.MeasureCharacter(c)
		byChars.W += cd.W
		byChars.H = dimen.Max(byChars.H, cd.H)
	}
	assert.Equal(t, byChars, d, "text has been measured by characters")
	assert.Equal(t, proportionalRuler(text), d)
}

func TestLineHeight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	assert.Equal(t, 20.0, LineHeight(NewMeasurer(collapsingRuler)))
	assert.Equal(t, 18.0, LineHeight(NewCacheMeasurer(proportionalRuler)))
}

func TestMeasurerNeedsRuler(t *testing.T) {
	assert.Panics(t, func() { NewMeasurer(nil) })
	assert.Panics(t, func() { NewCharacterMeasurer(nil) })
	assert.Panics(t, func() { NewCached(nil) })
}

func TestSetRuler(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	m := NewMeasurer(collapsingRuler, WithGuards(true))
	assert.Equal(t, 10.0, m.Measure("a").W)
	m.SetRuler(proportionalRuler)
	assert.Equal(t, 9.0, m.Measure("a").W)
}

func TestGraphemes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "typewriter.measure")
	defer teardown()
	//
	assert.Nil(t, Graphemes(""))
	assert.Equal(t, []string{"a", " ", "b"}, Graphemes("a b"))
	assert.Equal(t, []string{"a", "e\u0301", "b"}, Graphemes("ae\u0301b"), "combining accent")
}
