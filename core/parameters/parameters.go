/*
Package parameters holds the typesetting parameters which govern line
wrapping and truncation.

Registers hold a base set of values and may be overridden temporarily
within groups, in the spirit of TeX:

    regs := parameters.NewTypesettingRegisters()
    regs.Begingroup()
    regs.Push(parameters.P_MAXLINES, 3)
    …                   // P_MAXLINES is 3
    regs.Endgroup()     // P_MAXLINES is restored

Base values may be loaded from a schuko configuration, using the keys
returned by TypesettingParameter.ConfigKey.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"fmt"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typewriter.wrap'.
func tracer() tracing.Trace {
	return tracing.Select("typewriter.wrap")
}

type TypesettingParameter int

const (
	none TypesettingParameter = iota
	P_MAXLINES
	P_TEXTTRIMMING
	P_BREAKWORDS
	P_BREAKCHAR
	P_ELLIPSIS
	P_STOPPER
)

var parameterNames = [P_STOPPER]string{
	"none", "maxlines", "trimming", "breakwords", "breakchar", "ellipsis",
}

func (p TypesettingParameter) String() string {
	if p <= none || p >= P_STOPPER {
		return "none"
	}
	return "P_" + parameterNames[p]
}

// ConfigKey returns the configuration key for a parameter, e.g.
// "typesetting.maxlines".
func (p TypesettingParameter) ConfigKey() string {
	if p <= none || p >= P_STOPPER {
		return ""
	}
	return "typesetting." + parameterNames[p]
}

// Values for P_TEXTTRIMMING.
const (
	TrimEllipsis  = "ellipsis"
	TrimCharacter = "character"
	TrimNone      = "none"
)

type ParameterGroup struct {
	params map[TypesettingParameter]interface{}
	level  int
	next   *ParameterGroup
}

type TypesettingRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_MAXLINES] = 0                // an int, 0 = unlimited
	p[P_TEXTTRIMMING] = TrimEllipsis // a string
	p[P_BREAKWORDS] = false          // a bool
	p[P_BREAKCHAR] = "-"             // a string appended to broken words
	p[P_ELLIPSIS] = "…"              // a string marking truncated text
}

var defaults [P_STOPPER]interface{}

func init() {
	initParameters(&defaults)
}

// checkType panics if value is not of the type of the parameter's default.
func checkType(key TypesettingParameter, value interface{}) {
	ok := false
	switch defaults[key].(type) {
	case int:
		_, ok = value.(int)
	case bool:
		_, ok = value.(bool)
	case string:
		_, ok = value.(string)
	}
	if !ok {
		panic(fmt.Sprintf("typesetting parameter %s needs a value of type %T, got %T",
			key, defaults[key], value))
	}
}

// FromConfiguration creates registers with base values overridden by all
// parameters set in conf.
func FromConfiguration(conf schuko.Configuration) *TypesettingRegisters {
	regs := NewTypesettingRegisters()
	if conf == nil {
		return regs
	}
	for p := P_MAXLINES; p < P_STOPPER; p++ {
		key := p.ConfigKey()
		if !conf.IsSet(key) {
			continue
		}
		switch p {
		case P_MAXLINES:
			if n := conf.GetInt(key); n >= 0 {
				regs.base[p] = n
			} else {
				tracer().Errorf("configuration %s = %d is negative, ignored", key, n)
			}
		case P_TEXTTRIMMING:
			if t := conf.GetString(key); IsTrimming(t) {
				regs.base[p] = t
			} else {
				tracer().Errorf("configuration %s = %q is not a trimming policy, ignored", key, t)
			}
		case P_BREAKWORDS:
			regs.base[p] = conf.GetBool(key)
		default:
			regs.base[p] = conf.GetString(key)
		}
		tracer().Debugf("typesetting parameter %s = %v", p, regs.base[p])
	}
	return regs
}

// FromGlobalConfig creates registers from the application-wide
// configuration, as set up with gconf.Initialize.
func FromGlobalConfig() *TypesettingRegisters {
	return FromConfiguration(globalConf{})
}

type globalConf struct{}

func (globalConf) InitDefaults()               {}
func (globalConf) IsSet(key string) bool       { return gconf.IsSet(key) }
func (globalConf) GetString(key string) string { return gconf.GetString(key) }
func (globalConf) GetInt(key string) int       { return gconf.GetInt(key) }
func (globalConf) GetBool(key string) bool     { return gconf.GetBool(key) }
func (globalConf) IsInteractive() bool         { return gconf.IsInteractive() }

var _ schuko.Configuration = globalConf{}

// IsTrimming is a predicate: is t a valid value for P_TEXTTRIMMING?
func IsTrimming(t string) bool {
	return t == TrimEllipsis || t == TrimCharacter || t == TrimNone
}

func (regs *TypesettingRegisters) Begingroup() {
	regs.grouplevel++
}

func (regs *TypesettingRegisters) Endgroup() {
	if regs.grouplevel > 0 {
		if regs.groups != nil && regs.groups.level == regs.grouplevel {
			regs.groups = regs.groups.next
		}
		regs.grouplevel--
	}
}

func (regs *TypesettingRegisters) Push(key TypesettingParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	checkType(key, value)
	if regs.grouplevel > 0 {
		var g *ParameterGroup
		if regs.groups == nil || regs.groups.level < regs.grouplevel {
			g = &ParameterGroup{}
			g.params = make(map[TypesettingParameter]interface{})
			g.level = regs.grouplevel
			g.next = regs.groups
			regs.groups = g
		} else {
			g = regs.groups
		}
		g.params[key] = value
	} else {
		regs.base[key] = value
	}
}

func (regs *TypesettingRegisters) Get(key TypesettingParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of typesetting parameters")
	}
	var value interface{}
	if regs.grouplevel > 0 {
		for g := regs.groups; g != nil; g = g.next {
			value = g.params[key]
			if value != nil {
				break
			}
		}
	}
	if value == nil {
		value = regs.base[key]
	}
	return value
}

func (regs *TypesettingRegisters) S(key TypesettingParameter) string {
	return regs.Get(key).(string)
}

func (regs *TypesettingRegisters) N(key TypesettingParameter) int {
	return regs.Get(key).(int)
}

func (regs *TypesettingRegisters) B(key TypesettingParameter) bool {
	return regs.Get(key).(bool)
}
