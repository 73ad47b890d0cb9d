package wrap

import (
	"github.com/npillmayer/typewriter/engine/measure"
)

// Wrapper wraps texts with a fixed configuration. Configuration methods
// return the wrapper itself, to allow chaining:
//
//     w := wrap.NewWrapper().MaxLines(3).TextTrimming(wrap.TrimNone)
//
type Wrapper struct {
	conf Config
}

// NewWrapper creates a wrapper with the default configuration.
func NewWrapper() *Wrapper {
	return &Wrapper{conf: DefaultConfig()}
}

// NewWrapperWithConfig creates a wrapper with a given configuration.
func NewWrapperWithConfig(conf Config) *Wrapper {
	if conf.MaxLines < 0 {
		conf.MaxLines = 0
	}
	return &Wrapper{conf: conf}
}

// MaxLines limits the number of lines. 0 means no limit other than the
// height of the box.
func (w *Wrapper) MaxLines(n int) *Wrapper {
	if n < 0 {
		tracer().Errorf("ignoring negative line limit %d", n)
		n = 0
	}
	w.conf.MaxLines = n
	return w
}

// TextTrimming sets the policy for the last line of a box.
func (w *Wrapper) TextTrimming(t Trimming) *Wrapper {
	w.conf.Trimming = t
	return w
}

// AllowBreakingWords allows or forbids splitting words wider than a box.
func (w *Wrapper) AllowBreakingWords(b bool) *Wrapper {
	w.conf.AllowBreakingWords = b
	return w
}

// Config returns a copy of the current configuration.
func (w *Wrapper) Config() Config {
	return w.conf
}

// Wrap wraps text into a box of width × height.
func (w *Wrapper) Wrap(text string, m measure.TextMeasurer, width, height float64) Result {
	return Wrap(text, m, width, height, w.conf)
}
