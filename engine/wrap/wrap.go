package wrap

import (
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/typewriter/core/dimen"
	"github.com/npillmayer/typewriter/engine/measure"
)

// Result is the outcome of wrapping a text.
type Result struct {
	OriginalText  string // text as given to Wrap
	WrappedText   string // lines joined by newlines
	NoLines       int    // number of lines in WrappedText
	NoBrokenWords int    // number of words split across lines
	TruncatedText string // text which did not fit, without leading whitespace
}

// Lines returns the wrapped lines.
func (r Result) Lines() []string {
	if r.NoLines == 0 {
		return nil
	}
	return strings.Split(r.WrappedText, "\n")
}

// IsTruncated is true if some text did not fit into the box.
func (r Result) IsTruncated() bool {
	return r.TruncatedText != ""
}

// Wrap breaks text into lines fitting a box of width × height. Line height
// is determined by measuring measure.HeightText. The number of lines is
// limited by the height of the box and by conf.MaxLines, whichever is
// smaller.
//
// For a box with no extent, or a box too low to hold a single line, the
// result has no lines and the whole text is truncated. Widths and heights
// which are not a number count as no extent; an infinite height holds any
// number of lines.
func Wrap(text string, m measure.TextMeasurer, width, height float64, conf Config) Result {
	res := Result{OriginalText: text}
	text = validUTF8(text)
	if !(width > 0) || !(height > 0) {
		tracer().Debugf("cannot wrap text into box %v", dimen.Dimensions{W: width, H: height})
		res.TruncatedText = text
		return res
	}
	available := -1 // unlimited
	if lh := measure.LineHeight(m); lh > 0 && !math.IsInf(height, 1) {
		available = int(math.Floor(height/lh + dimen.Epsilon))
	}
	if conf.MaxLines > 0 && (available < 0 || conf.MaxLines < available) {
		available = conf.MaxLines
	}
	if available == 0 {
		tracer().Debugf("box of height %.2f cannot hold a single line", height)
		res.TruncatedText = text
		return res
	}
	w := &wrapping{
		text:      text,
		m:         m,
		conf:      conf,
		width:     width,
		available: available,
	}
	offset := 0
	for _, para := range strings.Split(text, "\n") {
		start := offset
		offset += len(para) + 1
		if !w.paragraph(para, start) {
			break
		}
	}
	res.WrappedText = strings.Join(w.lines, "\n")
	res.NoLines = len(w.lines)
	res.NoBrokenWords = w.broken
	res.TruncatedText = w.truncated
	tracer().Debugf("wrapped text into %d lines, %d broken words", res.NoLines, res.NoBrokenWords)
	return res
}

// validUTF8 replaces every byte of text which is not part of a valid UTF-8
// sequence by U+FFFD, the way the grapheme segmenter reads it.
func validUTF8(text string) string {
	if utf8.ValidString(text) {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + 8)
	for _, r := range text {
		b.WriteRune(r)
	}
	return b.String()
}

// wrapping holds the state of a single call to Wrap.
type wrapping struct {
	text      string
	m         measure.TextMeasurer
	conf      Config
	width     float64
	available int // < 0 means unlimited
	lines     []string
	broken    int
	truncated string
}

// token is a word of the input, with the end position in the input text.
type token struct {
	s   string
	end int
}

// tokenize splits a paragraph at runs of whitespace. start is the position
// of the paragraph within the input text.
func tokenize(para string, start int) []token {
	var tokens []token
	from := -1
	for i, r := range para {
		if unicode.IsSpace(r) {
			if from >= 0 {
				tokens = append(tokens, token{s: para[from:i], end: start + i})
				from = -1
			}
		} else if from < 0 {
			from = i
		}
	}
	if from >= 0 {
		tokens = append(tokens, token{s: para[from:], end: start + len(para)})
	}
	return tokens
}

// paragraph sets the words of a paragraph onto lines. It returns false if
// wrapping has to stop.
func (w *wrapping) paragraph(para string, start int) bool {
	end := start + len(para)
	tokens := tokenize(para, start)
	if len(tokens) == 0 {
		return w.closeLine("", end)
	}
	cur := ""
	for _, tok := range tokens {
		candidate := tok.s
		if cur != "" {
			candidate = cur + " " + tok.s
		}
		if w.fits(candidate) {
			cur = candidate
			continue
		}
		if cur != "" {
			if w.isLastLine() {
				return w.stop(cur, len(cur), candidate, tok.end)
			}
			w.emit(cur)
			cur = ""
		}
		if w.fits(tok.s) {
			cur = tok.s
			continue
		}
		rest, ok := w.overwide(tok)
		if !ok {
			return false
		}
		cur = rest
	}
	return w.closeLine(cur, end)
}

// overwide handles a word wider than the box, starting on a fresh line. It
// returns the part of the word left for the current line, and false if
// wrapping has stopped.
func (w *wrapping) overwide(tok token) (string, bool) {
	rest := tok.s
	if w.conf.AllowBreakingWords {
		for !w.fits(rest) {
			head, tail := w.breakWord(rest)
			if head == "" {
				tracer().Debugf("no part of %q fits into width %.2f", rest, w.width)
				break
			}
			w.broken++
			hyphenated := head + w.conf.BreakingCharacter
			if w.isLastLine() {
				return "", w.stop(hyphenated, len(head), rest, tok.end)
			}
			w.emit(hyphenated)
			rest = tail
		}
		if w.fits(rest) {
			return rest, true
		}
	}
	if w.conf.Trimming == TrimNone {
		tracer().Debugf("word %q overflows width %.2f", rest, w.width)
		return rest, true
	}
	return "", w.stop(rest, len(rest), rest, tok.end)
}

// breakWord splits a word after the longest prefix which fits together with
// the breaking character. The tail is never empty. If not even a single
// character fits, head is empty.
func (w *wrapping) breakWord(word string) (head, tail string) {
	chars := measure.Graphemes(word)
	n := 0
	for n < len(chars)-1 && w.fits(strings.Join(chars[:n+1], "")+w.conf.BreakingCharacter) {
		n++
	}
	return strings.Join(chars[:n], ""), strings.Join(chars[n:], "")
}

// closeLine ends the last line of a paragraph. end is the position of the
// paragraph end within the input text.
func (w *wrapping) closeLine(cur string, end int) bool {
	if w.isLastLine() && strings.TrimSpace(w.text[min(end, len(w.text)):]) != "" {
		return w.stop(cur, len(cur), cur, end)
	}
	w.emit(cur)
	return !w.isFull()
}

// stop sets the last line available and truncates the rest of the text.
// natural is the line as it would be set without trimming, keeping kept
// bytes of pending. pending is the content competing for the last line,
// and end is the position in the input text where pending ends.
func (w *wrapping) stop(natural string, kept int, pending string, end int) bool {
	var line, dropped string
	switch w.conf.Trimming {
	case TrimNone:
		line, dropped = natural, pending[kept:]
	case TrimCharacter:
		line, dropped = w.trim(pending, "")
	default:
		line, dropped = w.trim(pending, w.conf.ellipsis())
	}
	w.emit(line)
	rest := ""
	if end < len(w.text) {
		rest = w.text[end:]
	}
	w.truncated = strings.TrimLeftFunc(dropped+rest, unicode.IsSpace)
	tracer().Debugf("truncated text after %d lines", len(w.lines))
	return false
}

// trim shortens s character by character until it fits, together with
// marker. If not even the marker fits, the marker alone is returned.
func (w *wrapping) trim(s string, marker string) (line, dropped string) {
	chars := measure.Graphemes(s)
	for n := len(chars); n > 0; n-- {
		head := strings.TrimRightFunc(strings.Join(chars[:n], ""), unicode.IsSpace)
		if head != "" && w.fits(head+marker) {
			return head + marker, strings.Join(chars[n:], "")
		}
	}
	return marker, s
}

func (w *wrapping) fits(s string) bool {
	return dimen.Fits(w.m.Measure(s).W, w.width)
}

func (w *wrapping) emit(line string) {
	w.lines = append(w.lines, line)
}

func (w *wrapping) isLastLine() bool {
	return w.available > 0 && len(w.lines)+1 == w.available
}

func (w *wrapping) isFull() bool {
	return w.available > 0 && len(w.lines) >= w.available
}
