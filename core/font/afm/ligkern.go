package afm

import (
	"strconv"
	"strings"

	"github.com/npillmayer/pstext/core"
)

// defaultLigKern are the LIGKERN instructions applied to fonts whose
// encoding file carries none: Polish ł, Spanish inverted marks, dashes,
// curly quotes, no kerning around spaces and digits, and the f-ligatures.
var defaultLigKern = [...]string{
	"space l =: lslash ; space L =: Lslash ;",
	"question quoteleft =: questiondown ;",
	"exclam quoteleft =: exclamdown ;",
	"hyphen hyphen =: endash ; endash hyphen =: emdash ;",
	"quoteleft quoteleft =: quotedblleft ;",
	"quoteright quoteright =: quotedblright ;",
	"space {} * ; * {} space ; zero {} * ; * {} zero ;",
	"one {} * ; * {} one ; two {} * ; * {} two ;",
	"three {} * ; * {} three ; four {} * ; * {} four ;",
	"five {} * ; * {} five ; six {} * ; * {} six ;",
	"seven {} * ; * {} seven ; eight {} * ; * {} eight ;",
	"nine {} * ; * {} nine ;",
	"f i =: fi ; f l =: fl ; f f =: ff ; ff i =: ffi ;",
	"ff l =: ffl ;",
}

// DefaultLigKern returns a copy of the LIGKERN instructions applied to fonts
// without LIGKERN directives of their own.
func DefaultLigKern() []string {
	lines := make([]string, len(defaultLigKern))
	copy(lines, defaultLigKern[:])
	return lines
}

func (f *Font) applyDefaultLigKern() {
	for _, line := range defaultLigKern {
		if err := f.ApplyLigKern(line); err != nil {
			tracer().Errorf("default LIGKERN: %v", err) // should not happen
		}
	}
}

// boundary is the LIGKERN name of the word boundary.
const boundary = "||"

// ApplyLigKern executes a line of LIGKERN instructions, separated by ';'.
// The "LIGKERN" keyword, if present, has to be stripped beforehand.
//
//	a {} b       remove kerning of a followed by b; either may be '*'
//	a <> b       a kerns like b, if a has no kerning of its own
//	|| = n       the boundary character is code n
//	a b op c     ligature, op is one of =: |=: |=:> =:| =:|> |=:| |=:|> |=:|>>
//
// Instructions naming glyphs not present in the font have no effect.
func (f *Font) ApplyLigKern(line string) error {
	sc := newScanner(line, 0)
	for !sc.done() {
		var stmt []string
		for !sc.done() && len(stmt) < 5 {
			t := sc.next()
			if t == ";" {
				break
			}
			stmt = append(stmt, t)
		}
		if len(stmt) == 0 {
			continue
		}
		if err := f.ligkernStatement(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (f *Font) ligkernStatement(m []string) error {
	switch {
	case len(m) > 4:
		return core.Error(core.EPARSE, "too many parameters in LIGKERN instruction %q", strings.Join(m, " "))
	case len(m) < 3:
		return core.Error(core.EPARSE, "too few parameters in LIGKERN instruction %q", strings.Join(m, " "))
	case len(m) == 3 && m[1] == "{}":
		f.removeKerning(m[0], m[2])
	case len(m) == 3 && m[1] == "<>":
		f.copyKerning(m[0], m[2])
	case len(m) == 3 && m[0] == boundary && m[1] == "=":
		return f.setBoundaryChar(m[2])
	case len(m) == 4:
		return f.ligatureStatement(m)
	default:
		return core.Error(core.EPARSE, "bad form in LIGKERN instruction %q", strings.Join(m, " "))
	}
	return nil
}

func (f *Font) removeKerning(first, second string) {
	if first == "*" {
		it := f.glyphs.Iterate()
		for it.Next() {
			removeKerns(it.Value(), second)
		}
		return
	}
	if g, ok := f.Glyph(first); ok {
		removeKerns(g, second)
	}
}

func removeKerns(g *Glyph, successor string) {
	if successor == "*" {
		g.Kerns = nil
		return
	}
	kerns := g.Kerns[:0]
	for _, k := range g.Kerns {
		if k.Successor != successor {
			kerns = append(kerns, k)
		}
	}
	g.Kerns = kerns
}

func (f *Font) copyKerning(first, second string) {
	g1, ok1 := f.Glyph(first)
	g2, ok2 := f.Glyph(second)
	if ok1 && ok2 && len(g1.Kerns) == 0 {
		g2.KernEquivalents = append([]string{first}, g2.KernEquivalents...)
	}
}

func (f *Font) setBoundaryChar(arg string) error {
	if f.BoundaryChar != -1 {
		return core.Error(core.EPARSE, "multiple boundary character instructions")
	}
	n, err := strconv.Atoi(arg)
	if err != nil {
		return core.Error(core.EPARSE, "expected number assignment for boundary char, got %q", arg)
	}
	if n < 0 || n > 255 {
		return core.Error(core.EPARSE, "boundary character number must be 0…255, is %d", n)
	}
	f.BoundaryChar = n
	return nil
}

// a b op c
func (f *Font) ligatureStatement(m []string) error {
	op, ok := ParseLigatureOp(m[2])
	if !ok {
		return core.Error(core.EPARSE, "bad ligature operation %q", m[2])
	}
	if m[1] == boundary && m[0] == boundary {
		return core.Error(core.EPARSE, "cannot ligature boundary character to boundary character")
	}
	g, ok := f.Glyph(m[0])
	if !ok {
		return nil
	}
	if m[3] == boundary {
		return core.Error(core.EPARSE, "cannot ligature to the boundary character")
	}
	if f.FixedPitch {
		return nil
	}
	lig := Ligature{Successor: m[1], Substitute: m[3], Op: op, BoundaryLeft: m[1] == boundary}
	for i := range g.Ligatures {
		if g.Ligatures[i].Successor == m[1] {
			g.Ligatures[i] = lig
			return nil
		}
	}
	g.Ligatures = append([]Ligature{lig}, g.Ligatures...)
	return nil
}
