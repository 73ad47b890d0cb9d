package wrap

import (
	"github.com/npillmayer/typewriter/core"
	"github.com/npillmayer/typewriter/core/parameters"
)

// Trimming is the policy applied to the last line of a box when text does
// not fit.
type Trimming int

const (
	// TrimEllipsis shortens the last line and appends an ellipsis marker.
	TrimEllipsis Trimming = iota
	// TrimCharacter shortens the last line character by character, without
	// a marker.
	TrimCharacter
	// TrimNone keeps the last line as it would have been set, and silently
	// drops the remaining text.
	TrimNone
)

func (t Trimming) String() string {
	switch t {
	case TrimEllipsis:
		return parameters.TrimEllipsis
	case TrimCharacter:
		return parameters.TrimCharacter
	case TrimNone:
		return parameters.TrimNone
	}
	return "unknown"
}

// ParseTrimming converts "ellipsis", "character" or "none" to a policy.
func ParseTrimming(s string) (Trimming, error) {
	switch s {
	case parameters.TrimEllipsis:
		return TrimEllipsis, nil
	case parameters.TrimCharacter:
		return TrimCharacter, nil
	case parameters.TrimNone:
		return TrimNone, nil
	}
	return TrimEllipsis, core.Error(core.EINVALID, "unknown text trimming %q", s)
}

// DefaultEllipsis marks truncated text.
const DefaultEllipsis = "…"

// Config governs wrapping. It is a value; changing a copy never affects
// wrapping elsewhere.
type Config struct {
	MaxLines           int      // maximum number of lines, 0 = unlimited
	Trimming           Trimming // policy for the last line
	AllowBreakingWords bool     // break words wider than the box?
	BreakingCharacter  string   // appended to the first part of a broken word
	Ellipsis           string   // marker for TrimEllipsis, defaults to DefaultEllipsis
}

// DefaultConfig returns the configuration used by a new Wrapper.
func DefaultConfig() Config {
	return ConfigFrom(parameters.NewTypesettingRegisters())
}

// ConfigFrom creates a configuration from the current values of
// typesetting registers.
func ConfigFrom(regs *parameters.TypesettingRegisters) Config {
	if regs == nil {
		regs = parameters.NewTypesettingRegisters()
	}
	trimming, err := ParseTrimming(regs.S(parameters.P_TEXTTRIMMING))
	if err != nil {
		tracer().Errorf("%v", err)
	}
	maxLines := regs.N(parameters.P_MAXLINES)
	if maxLines < 0 {
		maxLines = 0
	}
	return Config{
		MaxLines:           maxLines,
		Trimming:           trimming,
		AllowBreakingWords: regs.B(parameters.P_BREAKWORDS),
		BreakingCharacter:  regs.S(parameters.P_BREAKCHAR),
		Ellipsis:           regs.S(parameters.P_ELLIPSIS),
	}
}

func (conf Config) ellipsis() string {
	if conf.Ellipsis == "" {
		return DefaultEllipsis
	}
	return conf.Ellipsis
}
