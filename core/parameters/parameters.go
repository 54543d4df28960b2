/*
Package parameters holds typesetting parameters for laying out text.

Parameters live in registers which may be grouped, TeX-style: a value pushed
inside a group is visible until the group ends, then the enclosing value is
visible again. Base values are initialized from defaults, which may be
overridden by the global configuration (see InitFromConfig).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pstext/core/dimen"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to tracing key 'pstext.core'.
func tracer() tracing.Trace {
	return tracing.Select("pstext.core")
}

type TypesettingParameter int

const (
	none TypesettingParameter = iota
	P_LANGUAGE
	P_INPUTENCODING
	P_HYPHENATION
	P_HYPHENMINCHARS
	P_HYPHENCHAR
	P_LINEBREAK
	P_PARBREAK
	P_LEADING
	P_PARINDENT
	P_NUMINDENTLINES
	P_PARINDENTSKIP
	P_PARSKIP
	P_LINENUMBERMODE
	P_LINENUMBERSPACE
	P_LINENUMBERSEP
	P_LIGATURES
	P_LIGBREAKCHAR
	P_KERNING
	P_CHARSPACING
	P_STOPPER
)

// configuration keys, indexed by parameter
var parameterKeys = [P_STOPPER]string{
	"",
	"language",
	"inputencoding",
	"hyphenation",
	"hyphenminchars",
	"hyphenchar",
	"linebreak",
	"parbreak",
	"leading",
	"parindent",
	"numindentlines",
	"parindentskip",
	"parskip",
	"linenumbermode",
	"linenumberspace",
	"linenumbersep",
	"ligatures",
	"ligaturebreakchar",
	"kerning",
	"charspacing",
}

// Key returns the configuration key of a parameter.
func (p TypesettingParameter) Key() string {
	if p <= none || p >= P_STOPPER {
		return ""
	}
	return parameterKeys[p]
}

func (p TypesettingParameter) String() string {
	return strings.ToUpper(p.Key())
}

// ByKey finds a parameter by its configuration key.
func ByKey(key string) (TypesettingParameter, bool) {
	key = strings.ToLower(strings.TrimSpace(key))
	for p := P_LANGUAGE; p < P_STOPPER; p++ {
		if parameterKeys[p] == key {
			return p, true
		}
	}
	return none, false
}

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

// NewTypesettingRegisters creates a set of registers holding default values.
// Configuration values set in the global configuration override them.
func NewTypesettingRegisters() *TypesettingRegisters {
	regs := &TypesettingRegisters{}
	initParameters(&regs.base)
	regs.InitFromConfig()
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_LANGUAGE] = "en_US"              // a string
	p[P_INPUTENCODING] = "ISO-8859-1"    // name of an 8-bit input encoding
	p[P_HYPHENATION] = false             // a flag
	p[P_HYPHENMINCHARS] = 3              // minimum # of chars before/after a hyphen
	p[P_HYPHENCHAR] = 0xAD               // input byte for a soft hyphen
	p[P_LINEBREAK] = false               // newline ends a line
	p[P_PARBREAK] = true                 // two newlines end a paragraph
	p[P_LEADING] = dimen.Zero            // dimension, 0 = derive from font
	p[P_PARINDENT] = dimen.Zero          // dimension
	p[P_NUMINDENTLINES] = 0              // # of lines to indent, 0 = 1 if indenting
	p[P_PARINDENTSKIP] = 0               // # of paragraphs without indent
	p[P_PARSKIP] = dimen.Zero            // dimension
	p[P_LINENUMBERMODE] = ""             // "", "paragraph" or "box"
	p[P_LINENUMBERSPACE] = 20 * dimen.BP // dimension
	p[P_LINENUMBERSEP] = 5 * dimen.BP    // dimension
	p[P_LIGATURES] = true                // a flag
	p[P_LIGBREAKCHAR] = 0xA6             // input byte breaking ligatures
	p[P_KERNING] = true                  // a flag
	p[P_CHARSPACING] = dimen.Zero        // dimension
}

// InitFromConfig overrides base values with values set in the global
// configuration. Malformed values are traced and ignored.
func (regs *TypesettingRegisters) InitFromConfig() {
	for p := P_LANGUAGE; p < P_STOPPER; p++ {
		key := parameterKeys[p]
		if !gconf.IsSet(key) {
			continue
		}
		switch regs.base[p].(type) {
		case string:
			regs.base[p] = gconf.GetString(key)
		case bool:
			regs.base[p] = gconf.GetBool(key)
		case int:
			regs.base[p] = gconf.GetInt(key)
		case dimen.Dimen:
			d, _, err := dimen.ParseDimen(gconf.GetString(key))
			if err != nil {
				tracer().Errorf("configuration value for %s: %v", key, err)
				continue
			}
			regs.base[p] = d
		}
		tracer().Debugf("parameter %s set from configuration: %v", key, regs.base[p])
	}
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
	if key <= 0 || key >= P_STOPPER {
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

func (regs *TypesettingRegisters) D(key TypesettingParameter) dimen.Dimen {
	return regs.Get(key).(dimen.Dimen)
}

// Set sets a parameter from its textual representation, converting the
// value to the parameter's type.
func (regs *TypesettingRegisters) Set(key TypesettingParameter, value string) bool {
	if key <= none || key >= P_STOPPER {
		return false
	}
	switch regs.base[key].(type) {
	case string:
		regs.Push(key, value)
	case bool:
		v := strings.ToLower(strings.TrimSpace(value))
		regs.Push(key, v == "true" || v == "on" || v == "1" || v == "yes")
	case int:
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil || n < 0 {
			tracer().Errorf("parameter %s expects a number, got %q", key.Key(), value)
			return false
		}
		regs.Push(key, n)
	case dimen.Dimen:
		d, _, err := dimen.ParseDimen(strings.TrimSpace(value))
		if err != nil {
			tracer().Errorf("parameter %s expects a dimension, got %q", key.Key(), value)
			return false
		}
		regs.Push(key, d)
	}
	return true
}
