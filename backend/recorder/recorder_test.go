package recorder

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/arithm"
	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/engine/glyphing"
	"github.com/npillmayer/pstext/engine/textbox"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFont = `FontName Rec-Test
Ascender 800
Descender -200
C 32 ; WX 250 ; N space ; B 0 0 0 0 ;
C 97 ; WX 500 ; N a ; B 0 0 500 700 ;
C 98 ; WX 500 ; N b ; B 0 0 500 700 ;
C 99 ; WX 500 ; N c ; B 0 0 500 700 ;
C 100 ; WX 500 ; N d ; B 0 0 500 700 ;
`

func TestRecordLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.backend")
	defer teardown()
	//
	f, err := afm.Parse(strings.NewReader(testFont))
	require.NoError(t, err)
	f.UseBuiltinEncoding()
	rec := New()
	box := textbox.Box{Width: 60, Height: 100}
	_, err = textbox.Layout(f, []byte("aaaa bbbb cccc dddd"), box, textbox.FullJustify,
		textbox.WithSize(10), textbox.WithEmitter(rec))
	require.NoError(t, err)
	require.Equal(t, 4, rec.Len())
	assert.Equal(t, MoveTo, rec.Commands()[0].Op)
	assert.Equal(t, Show, rec.Commands()[1].Op)
	var out bytes.Buffer
	require.NoError(t, rec.WritePostScript(&out))
	assert.Equal(t, "0 92 moveto\n17.5 0 32 (aaaa bbbb) widthshow\n"+
		"0 80 moveto\n17.5 0 32 (cccc dddd) widthshow\n", out.String())
	assert.NotContains(t, out.String(), "%!")
	assert.NotContains(t, out.String(), "showpage")
	assert.NotContains(t, out.String(), "findfont")
	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestKerningAsRelativeMoves(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.backend")
	defer teardown()
	//
	seq := glyphing.GlyphSequence{
		Size: 10,
		Glyphs: []glyphing.ShapedGlyph{
			{Name: "A", Code: 'A'},
			{Name: "V", Code: 'V', Kern: -80},
			{Name: "e", Code: 'e'},
		},
	}
	rec := New()
	rec.MoveTo(arithm.P(10, 20.25))
	rec.ShowGlyphs(seq, 0)
	var out bytes.Buffer
	require.NoError(t, rec.WritePostScript(&out))
	assert.Equal(t, "10 20.25 moveto\n(A) show\n-0.8 0 rmoveto\n(Ve) show\n", out.String())
}

func TestPostScriptString(t *testing.T) {
	assert.Equal(t, `(a\(b\)\\\344)`, String([]byte("a(b)\\\xe4")))
	assert.Equal(t, "()", String(nil))
}
