package glyphing

import (
	"strings"
	"testing"

	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ligFont = `FontName Lig-Test
Ascender 700
Descender -200
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 97 ; WX 500 ; N a ; B 0 -10 450 460 ;
C 98 ; WX 500 ; N b ; B 0 -10 450 683 ;
C 102 ; WX 300 ; N f ; B 0 0 380 683 ;
C 105 ; WX 250 ; N i ; B 0 0 250 683 ;
C 106 ; WX 250 ; N j ; B 0 -218 250 683 ;
C 1 ; WX 600 ; N ff ; B 0 0 600 683 ;
C 2 ; WX 550 ; N fi ; B 0 0 550 683 ;
C 3 ; WX 830 ; N ffi ; B 0 0 830 683 ;
C 4 ; WX 540 ; N fj ; B 0 0 540 683 ;
KPX a b -50
`

func loadFont(t *testing.T, afmdata string, ligkern string) *afm.Font {
	t.Helper()
	f, err := afm.Parse(strings.NewReader(afmdata))
	require.NoError(t, err)
	f.UseBuiltinEncoding()
	if ligkern != "" {
		require.NoError(t, f.ApplyLigKern(ligkern))
	}
	return f
}

func TestLigatureChain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "f f =: ff ; ff i =: ffi ; f i =: fi ;")
	r := NewResolver(f, nil)
	g, _ := f.Glyph("f")
	sub, n, ok := r.ResolveLigature(g, []byte("fi"))
	require.True(t, ok)
	assert.Equal(t, "ffi", sub)
	assert.Equal(t, 2, n)
	sub, n, ok = r.ResolveLigature(g, []byte("i"))
	require.True(t, ok)
	assert.Equal(t, "fi", sub)
	assert.Equal(t, 1, n)
	_, _, ok = r.ResolveLigature(g, []byte("a"))
	assert.False(t, ok)
	_, _, ok = r.ResolveLigature(g, nil)
	assert.False(t, ok)
	a, _ := f.Glyph("a")
	_, _, ok = r.ResolveLigature(a, []byte("b"))
	assert.False(t, ok)
}

func TestThreeGlyphLigatureWins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	// f + fi = ffi is preferred to f + f = ff
	f := loadFont(t, ligFont, "f f =: ff ; f i =: fi ; f fi =: ffi ;")
	r := NewResolver(f, nil)
	g, _ := f.Glyph("f")
	sub, n, ok := r.ResolveLigature(g, []byte("fi"))
	require.True(t, ok)
	assert.Equal(t, "ffi", sub)
	assert.Equal(t, 2, n)
}

func TestLigatureBreakChar(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "f i =: fi ;")
	r := NewResolver(f, nil)
	g, _ := f.Glyph("f")
	sub, n, ok := r.ResolveLigature(g, []byte("\xA6i"))
	require.True(t, ok)
	assert.Equal(t, "f", sub)
	assert.Equal(t, 1, n)
	s := NewShaper(f, DefaultParams(1000))
	seq := s.Shape([]byte("f\xA6i"))
	require.Len(t, seq.Glyphs, 2)
	assert.Equal(t, "f", seq.Glyphs[0].Name)
	assert.Equal(t, 2, seq.Glyphs[0].Length)
	assert.Equal(t, "i", seq.Glyphs[1].Name)
	assert.Equal(t, 2, seq.Glyphs[1].Cluster)
}

func TestLigatureDepthLimit(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "f f =: ff ; ff f =: ff ;")
	r := NewResolver(f, nil)
	r.MaxDepth = 3
	g, _ := f.Glyph("f")
	sub, n, ok := r.ResolveLigature(g, []byte(strings.Repeat("f", 20)))
	require.True(t, ok)
	assert.Equal(t, "ff", sub)
	assert.Equal(t, 3, n)
}

func TestKerningAsymmetry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "")
	r := NewResolver(f, nil)
	a, _ := f.Glyph("a")
	b, _ := f.Glyph("b")
	assert.Equal(t, -50, r.ResolveKerning(a, b))
	assert.Equal(t, 0, r.ResolveKerning(b, a))
	assert.Equal(t, 0, r.ResolveKerning(nil, b))
}

func TestMeasureEndToEnd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, `C 32 ; WX 500 ; N space ;
C 97 ; WX 500 ; N a ;
C 98 ; WX 500 ; N b ;
KPX a b -50
`, "")
	s := NewShaper(f, DefaultParams(1000))
	assert.InDelta(t, 950.0, s.Measure([]byte("ab")).Width, 1e-9)
	s.Params.Kerning = false
	assert.InDelta(t, 1000.0, s.Measure([]byte("ab")).Width, 1e-9)
	s = NewShaper(f, DefaultParams(10))
	assert.InDelta(t, 9.5, s.Measure([]byte("ab")).Width, 1e-9)
}

func TestShapeLigaturesAndSpacing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "f f =: ff ; ff i =: ffi ; f i =: fi ;")
	s := NewShaper(f, DefaultParams(1000))
	seq := s.Shape([]byte("ffi a"))
	require.Len(t, seq.Glyphs, 3)
	assert.Equal(t, "ffi", seq.Glyphs[0].Name)
	assert.Equal(t, byte(3), seq.Glyphs[0].Code)
	assert.Equal(t, 3, seq.Glyphs[0].Length)
	assert.True(t, seq.Glyphs[1].IsSpace)
	assert.Equal(t, 1, seq.Spaces())
	assert.InDelta(t, 830.0+250+500, seq.W, 1e-9)
	assert.Equal(t, []byte{3, 32, 97}, seq.Codes())
	m := s.Measure([]byte("aj"))
	assert.InDelta(t, 683.0, m.Ascent, 1e-9)
	assert.InDelta(t, -218.0, m.Descent, 1e-9)
	// char spacing suppresses ligatures and is not added after the last glyph
	s.Params.CharSpacing = 10
	seq = s.Shape([]byte("fi"))
	require.Len(t, seq.Glyphs, 2)
	assert.InDelta(t, 300.0+10+250, seq.W, 1e-9)
	s.Params.CharSpacing = 0
	s.Params.Ligatures = false
	assert.Len(t, s.Shape([]byte("fi")).Glyphs, 2)
}

func TestLigatureMissingInEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	// fj exists in the font, but the Cork encoding has no slot for it
	f := loadFont(t, ligFont, "")
	require.NoError(t, f.UseEncoding("CorkEncoding"))
	require.NoError(t, f.ApplyLigKern("f j =: fj ;"))
	s := NewShaper(f, DefaultParams(1000))
	seq := s.Shape([]byte("fj"))
	require.Len(t, seq.Glyphs, 2)
	assert.Equal(t, "f", seq.Glyphs[0].Name)
}

func TestShapeSkipsUnknownGlyphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.glyphs")
	defer teardown()
	//
	f := loadFont(t, ligFont, "")
	s := NewShaper(f, DefaultParams(1000))
	seq := s.Shape([]byte("a\nzb"))
	require.Len(t, seq.Glyphs, 2)
	assert.InDelta(t, 1000.0, seq.W, 1e-9) // no kerning across the gap
	assert.Equal(t, 0.0, s.Shape(nil).W)
}
