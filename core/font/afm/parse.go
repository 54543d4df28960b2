package afm

import (
	"bufio"
	"errors"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/glyphstore"
)

// Parse reads AFM data and returns the font metrics. Malformed character
// metrics abort loading with an error of code core.EPARSE. Duplicate glyphs,
// kerning pairs for unknown glyphs and broken composites are traced and
// skipped.
//
// The font returned has no font encoding yet; see LoadEncoding,
// UseDefaultEncoding and UseBuiltinEncoding.
func Parse(r io.Reader, opts ...Option) (*Font, error) {
	f := newFont(opts)
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		line := strings.TrimSpace(lines.Text())
		sc := newScanner(line, lineno)
		if sc.empty() {
			continue
		}
		key := sc.next()
		var err error
		switch key {
		case "FontName":
			f.FontName = sc.rest(key)
		case "FullName":
			f.FullName = sc.rest(key)
		case "FamilyName":
			f.FamilyName = sc.rest(key)
		case "Weight":
			f.Weight = sc.rest(key)
		case "EncodingScheme":
			f.EncodingScheme = sc.rest(key)
		case "IsFixedPitch":
			f.FixedPitch = strings.EqualFold(sc.next(), "true")
		case "ItalicAngle":
			f.ItalicAngle, err = sc.float()
		case "UnderlinePosition":
			f.UnderlinePosition, err = sc.float()
		case "UnderlineThickness":
			f.UnderlineThickness, err = sc.float()
		case "Ascender":
			f.Ascender, err = sc.float()
		case "Descender":
			f.Descender, err = sc.float()
		case "CapHeight":
			f.CapHeight, err = sc.float()
		case "XHeight":
			f.XHeight, err = sc.float()
		case "C", "CH":
			var g *Glyph
			if g, err = parseCharMetrics(sc, key == "CH", f.FixedPitch); err == nil {
				err = f.addGlyph(g)
				if errors.Is(err, glyphstore.ErrDuplicateKey) {
					tracer().Errorf("AFM line %d: duplicate glyph %s ignored", lineno, g.Name)
					err = nil
				}
			}
		case "KPX":
			f.parseKerningPair(sc)
		case "CC":
			f.parseComposite(sc)
		}
		if err != nil {
			if core.Code(err) == core.EALLOC {
				return nil, err
			}
			return nil, core.WrapError(err, core.EPARSE, "AFM line %d: %s", lineno, core.UserMessage(err))
		}
	}
	if err := lines.Err(); err != nil {
		return nil, core.WrapError(err, core.EPARSE, "reading AFM data: %v", err)
	}
	f.SetWordSpacing(0, 0)
	tracer().Debugf("loaded AFM for %s, %d glyphs", f.FontName, f.GlyphCount())
	return f, nil
}

// parseCharMetrics reads a line
//
//     C code ; WX width ; N name ; B llx lly urx ury ; L successor ligature ; …
//
// where the bounding box and ligatures are optional.
func parseCharMetrics(sc *scanner, hex bool, fixedPitch bool) (*Glyph, error) {
	g := &Glyph{}
	var err error
	if hex {
		var n int64
		n, err = strconv.ParseInt(strings.Trim(sc.next(), "<>"), 16, 32)
		g.Code = int(n)
	} else {
		g.Code, err = sc.num()
	}
	if err != nil {
		return nil, err
	}
	if !sc.expect(";") {
		return nil, core.Error(core.EPARSE, "expected ';' after character code")
	}
	if !sc.expect("WX") && !sc.expect("W0X") {
		return nil, core.Error(core.EPARSE, "expected 'WX'")
	}
	if g.Width, err = sc.num(); err != nil {
		return nil, err
	}
	if !sc.expect(";") {
		return nil, core.Error(core.EPARSE, "expected ';' after width")
	}
	if !sc.expect("N") {
		return nil, core.Error(core.EPARSE, "expected 'N'")
	}
	if g.Name = sc.next(); g.Name == "" || g.Name == ";" {
		return nil, core.Error(core.EPARSE, "missing glyph name")
	}
	if !sc.expect(";") {
		return nil, core.Error(core.EPARSE, "expected ';' after glyph name")
	}
	if sc.expect("B") {
		for i := 0; i < 4; i++ {
			if g.BBox[i], err = sc.num(); err != nil {
				return nil, err
			}
		}
		sc.expect(";")
	}
	for sc.peek() == "L" && !fixedPitch {
		sc.next()
		succ, sub := sc.next(), sc.next()
		if succ == "" || sub == "" || sub == ";" {
			return nil, core.Error(core.EPARSE, "incomplete ligature for %s", g.Name)
		}
		g.Ligatures = append([]Ligature{{Successor: succ, Substitute: sub}}, g.Ligatures...)
		if !sc.expect(";") {
			return nil, core.Error(core.EPARSE, "expected ';' after ligature")
		}
	}
	return g, nil
}

// KPX first second delta
func (f *Font) parseKerningPair(sc *scanner) {
	first, second := sc.next(), sc.next()
	delta, err := sc.num()
	if err != nil || second == "" {
		tracer().Errorf("AFM line %d: malformed kerning pair ignored", sc.lineno)
		return
	}
	g, ok := f.Glyph(first)
	if !ok {
		tracer().Errorf("AFM line %d: kerning for unknown glyph %s", sc.lineno, first)
		return
	}
	g.Kerns = append([]Kern{{Successor: second, Delta: delta}}, g.Kerns...)
}

// CC name n ; PCC part dx dy ; …
func (f *Font) parseComposite(sc *scanner) {
	name := sc.next()
	g, ok := f.Glyph(name)
	if !ok {
		tracer().Errorf("AFM line %d: composite character %s not found", sc.lineno, name)
		return
	}
	n, err := sc.num()
	if err != nil || !sc.expect(";") {
		tracer().Errorf("AFM line %d: malformed composite %s", sc.lineno, name)
		return
	}
	parts := make([]CompositePart, 0, n)
	for ; n > 0; n-- {
		if !sc.expect("PCC") {
			tracer().Errorf("AFM line %d: expected PCC for composite %s", sc.lineno, name)
			return
		}
		part := CompositePart{Part: sc.next()}
		if !f.HasGlyph(part.Part) {
			tracer().Errorf("AFM line %d: part %s of composite %s not found", sc.lineno, part.Part, name)
			return
		}
		dx, err1 := sc.num()
		dy, err2 := sc.num()
		if err1 != nil || err2 != nil || !sc.expect(";") {
			tracer().Errorf("AFM line %d: malformed part of composite %s", sc.lineno, name)
			return
		}
		part.DX, part.DY = dx, dy
		parts = append(parts, part)
	}
	g.Composite = parts
}

// --- Tokens ----------------------------------------------------------------

// scanner splits a line of AFM-like data into tokens. Semicolons are tokens
// of their own, even when not separated by whitespace.
type scanner struct {
	line   string
	tokens []string
	pos    int
	lineno int
}

func newScanner(line string, lineno int) *scanner {
	return &scanner{
		line:   line,
		tokens: strings.Fields(strings.ReplaceAll(line, ";", " ; ")),
		lineno: lineno,
	}
}

func (sc *scanner) empty() bool {
	return len(sc.tokens) == 0
}

func (sc *scanner) done() bool {
	return sc.pos >= len(sc.tokens)
}

func (sc *scanner) peek() string {
	if sc.done() {
		return ""
	}
	return sc.tokens[sc.pos]
}

func (sc *scanner) next() string {
	t := sc.peek()
	if t != "" {
		sc.pos++
	}
	return t
}

func (sc *scanner) expect(t string) bool {
	if sc.peek() == t {
		sc.pos++
		return true
	}
	return false
}

// rest returns the remainder of the line after a key.
func (sc *scanner) rest(key string) string {
	sc.pos = len(sc.tokens)
	return strings.TrimSpace(strings.TrimPrefix(sc.line, key))
}

func (sc *scanner) float() (float64, error) {
	t := sc.next()
	x, err := strconv.ParseFloat(t, 64)
	if err != nil {
		return 0, core.Error(core.EPARSE, "expected number, got %q", t)
	}
	return x, nil
}

// num reads a number, rounding fractional values.
func (sc *scanner) num() (int, error) {
	x, err := sc.float()
	return int(math.Round(x)), err
}
