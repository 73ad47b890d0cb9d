package measure

import (
	"strings"
	"sync"

	"github.com/npillmayer/typewriter/core/cache"
	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
)

// CharacterMeasurer measures a line as the sum of the widths of its
// characters, and the maximum of their heights. Truncating text character by
// character needs to know the exact contribution of every character.
type CharacterMeasurer struct {
	Measurer
	char  func(string) dimen.Dimensions
	cache *cache.Cache[string, dimen.Dimensions]
}

// NewCharacterMeasurer creates a character measurer for a ruler.
func NewCharacterMeasurer(ruler Ruler, opts ...Option) *CharacterMeasurer {
	cm := &CharacterMeasurer{}
	initMeasurer(&cm.Measurer, ruler, opts)
	cm.char = cm.Measurer.measureLine
	cm.line = cm.measureLineByCharacters
	return cm
}

// NewCacheCharacterMeasurer creates a character measurer which measures
// every distinct character only once, until reset.
func NewCacheCharacterMeasurer(ruler Ruler, opts ...Option) *CharacterMeasurer {
	cm := NewCharacterMeasurer(ruler, opts...)
	cm.cache = cache.New(cm.Measurer.measureLine)
	cm.char = cm.cache.Get
	return cm
}

// MeasureCharacter returns the dimensions of a single character c.
func (cm *CharacterMeasurer) MeasureCharacter(c string) dimen.Dimensions {
	return cm.char(c)
}

// Reset drops cached character measurements.
func (cm *CharacterMeasurer) Reset() {
	cm.Measurer.Reset()
	if cm.cache != nil {
		tracer().Debugf("dropping %d cached character measurements", cm.cache.Len())
		cm.cache.Reset()
	}
}

func (cm *CharacterMeasurer) measureLineByCharacters(line string) dimen.Dimensions {
	var d dimen.Dimensions
	for _, c := range Graphemes(line) {
		cd := cm.char(c)
		d.W += cd.W
		d.H = dimen.Max(d.H, cd.H)
	}
	return d
}

var _ TextMeasurer = &CharacterMeasurer{}
var _ Resetter = &CharacterMeasurer{}

// --- Characters ------------------------------------------------------------

var setupGraphemes sync.Once

// Graphemes splits text into user-perceived characters (grapheme clusters).
func Graphemes(text string) []string {
	if text == "" {
		return nil
	}
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	splitter := segment.NewSegmenter(grapheme.NewBreaker(1))
	splitter.Init(strings.NewReader(text))
	chars := make([]string, 0, len(text))
	for splitter.Next() {
		if c := splitter.Text(); c != "" {
			chars = append(chars, c)
		}
	}
	return chars
}
