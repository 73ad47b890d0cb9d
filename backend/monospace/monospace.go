package monospace

import (
	"math"
	"strings"
	"sync"

	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/typewriter/engine/measure"
	"github.com/npillmayer/typewriter/engine/write"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
)

// DefaultCell is the size of a grid cell if none is given.
var DefaultCell = dimen.Dimensions{W: 10, H: 20}

// Surface is a grid of monospaced cells.
type Surface struct {
	cell             dimen.Dimensions
	context          *uax11.Context
	graphemeSplitter *segment.Segmenter
	drawings         []Drawing
}

// Line is a line of text as handed to a pen.
type Line struct {
	Text   string
	Anchor write.Anchor
	X, Y   float64
}

// Drawing records everything a pen has been asked to do for a single write.
type Drawing struct {
	Text      string
	Transform write.Transform
	Title     bool
	Lines     []Line
	Destroyed bool
}

var setupGraphemes sync.Once

// New creates a monospace surface. If cell is zero, DefaultCell is used.
// If context is nil, widths are resolved for a Latin context.
func New(cell dimen.Dimensions, context *uax11.Context) *Surface {
	if cell.IsZero() {
		cell = DefaultCell
	}
	if context == nil {
		context = uax11.LatinContext
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return &Surface{
		cell:             cell,
		context:          context,
		graphemeSplitter: segment.NewSegmenter(grapheme.NewBreaker(1)),
	}
}

// Cell returns the size of a grid cell.
func (s *Surface) Cell() dimen.Dimensions {
	return s.cell
}

// Ruler returns a ruler measuring text in cells. A non-empty text is one
// cell high.
func (s *Surface) Ruler() measure.Ruler {
	return s.measure
}

func (s *Surface) measure(text string) dimen.Dimensions {
	if text == "" {
		return dimen.Zero
	}
	return dimen.Dimensions{
		W: float64(s.columns(text)) * s.cell.W,
		H: s.cell.H,
	}
}

// columns returns the number of cells text occupies.
func (s *Surface) columns(text string) int {
	cols := 0
	s.graphemeSplitter.Init(strings.NewReader(text))
	for s.graphemeSplitter.Next() {
		cols += uax11.Width(s.graphemeSplitter.Bytes(), s.context)
	}
	return cols
}

// CreatePen creates a pen recording a new drawing.
func (s *Surface) CreatePen(text string, xform write.Transform, addTitle bool) write.Pen {
	s.drawings = append(s.drawings, Drawing{
		Text:      text,
		Transform: xform,
		Title:     addTitle,
	})
	return &pen{surface: s, drawing: len(s.drawings) - 1}
}

// Drawings returns all drawings recorded so far.
func (s *Surface) Drawings() []Drawing {
	return s.drawings
}

// Clear forgets all drawings.
func (s *Surface) Clear() {
	s.drawings = s.drawings[:0]
}

var _ write.Surface = &Surface{}

type pen struct {
	surface *Surface
	drawing int
}

func (p *pen) Write(line string, anchor write.Anchor, x, y float64) {
	d := &p.surface.drawings[p.drawing]
	d.Lines = append(d.Lines, Line{Text: line, Anchor: anchor, X: x, Y: y})
}

func (p *pen) Destroy() {
	p.surface.drawings[p.drawing].Destroyed = true
}

// --- Rendering -------------------------------------------------------------

// covered marks grid cells occupied by the right half of a wide grapheme.
const covered = "\x00"

// Render puts all upright drawings onto a grid of cols × rows cells and
// returns the grid as text, one line per row. Rotated or sheared drawings
// cannot be represented on a grid and are skipped. Text outside the grid is
// clipped.
func (s *Surface) Render(cols, rows int) string {
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, cols)
	}
	for _, d := range s.drawings {
		if d.Transform.Rotate != 0 {
			tracer().Infof("cannot render drawing rotated by %g degrees onto a grid", d.Transform.Rotate)
			continue
		}
		for _, line := range d.Lines {
			s.renderLine(grid, line, d.Transform.Translate)
		}
	}
	var b strings.Builder
	for r, row := range grid {
		if r > 0 {
			b.WriteByte('\n')
		}
		var rb strings.Builder
		for _, c := range row {
			switch c {
			case covered:
			case "":
				rb.WriteByte(' ')
			default:
				rb.WriteString(c)
			}
		}
		b.WriteString(strings.TrimRight(rb.String(), " "))
	}
	return b.String()
}

func (s *Surface) renderLine(grid [][]string, line Line, origin dimen.Point) {
	x := origin.X + line.X
	w := s.measure(line.Text).W
	switch line.Anchor {
	case write.AnchorMiddle:
		x -= w / 2
	case write.AnchorEnd:
		x -= w
	}
	row := int(math.Floor((origin.Y+line.Y)/s.cell.H + dimen.Epsilon))
	if row < 0 || row >= len(grid) {
		return
	}
	col := int(math.Round(x / s.cell.W))
	for _, c := range measure.Graphemes(line.Text) {
		width := uax11.Width([]byte(c), s.context)
		if col >= 0 && col < len(grid[row]) {
			grid[row][col] = c
		}
		for i := 1; i < width; i++ { // cells covered by a wide grapheme
			if col+i >= 0 && col+i < len(grid[row]) {
				grid[row][col+i] = covered
			}
		}
		col += width
	}
}
