package afm

import (
	"bufio"
	"io"

	"github.com/npillmayer/pstext/core"
)

// LoadProtrusion reads margin protrusion data, one glyph per line:
//
//	N hyphen ; M 0 700 ;
//
// The values are the left and right protrusion in 1/1000 of the glyph's
// width. Lines for glyphs not in the font are skipped.
func (f *Font) LoadProtrusion(r io.Reader) error {
	lines := bufio.NewScanner(r)
	lineno := 0
	for lines.Scan() {
		lineno++
		sc := newScanner(lines.Text(), lineno)
		if sc.next() != "N" {
			continue
		}
		g, ok := f.Glyph(sc.next())
		if !ok {
			continue
		}
		if !sc.expect(";") || !sc.expect("M") {
			return core.Error(core.EPARSE, "protrusion line %d: expected '; M'", lineno)
		}
		l, err1 := sc.num()
		right, err2 := sc.num()
		if err1 != nil || err2 != nil || !sc.expect(";") {
			return core.Error(core.EPARSE, "protrusion line %d: expected 'M left right ;'", lineno)
		}
		g.LeftProtrusion, g.RightProtrusion = l, right
	}
	if err := lines.Err(); err != nil {
		return core.WrapError(err, core.EPARSE, "reading protrusion data: %v", err)
	}
	return nil
}
