package afm

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLigKernStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	require.NoError(t, f.ApplyLigKern("f f =: ff ; ff i |=:> ffi ;"))
	g, _ := f.Glyph("f")
	lig, ok := g.Ligature("f")
	require.True(t, ok)
	assert.Equal(t, "ff", lig.Substitute)
	assert.Equal(t, "f", g.Ligatures[0].Successor) // prepended
	ff, _ := f.Glyph("ff")
	lig, _ = ff.Ligature("i")
	assert.Equal(t, LigKeepLeftAdv, lig.Op)
	// same successor re-uses the rule
	require.NoError(t, f.ApplyLigKern("f i =:| fi"))
	assert.Len(t, g.Ligatures, 3)
	lig, _ = g.Ligature("i")
	assert.Equal(t, LigKeepRight, lig.Op)
	// boundary ligatures
	require.NoError(t, f.ApplyLigKern("f || =: fi ;"))
	lig, _ = g.Ligature("||")
	assert.True(t, lig.BoundaryLeft)
	// unknown first glyph has no effect
	assert.NoError(t, f.ApplyLigKern("nosuch i =: fi ;"))
}

func TestLigKernErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	for _, line := range []string{
		"f i ;",
		"f i j =: fi ;",
		"f i => fi ;",
		"f i =: || ;",
		"|| || =: fi ;",
		"|| = 300 ;",
		"|| = x ;",
		"a b c ;",
	} {
		err := f.ApplyLigKern(line)
		assert.Equal(t, core.EPARSE, core.Code(err), line)
	}
	require.NoError(t, f.ApplyLigKern("|| = 32 ;"))
	assert.Equal(t, 32, f.BoundaryChar)
	assert.Error(t, f.ApplyLigKern("|| = 33 ;"))
}

func TestRemoveAndCopyKerning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	A, _ := f.Glyph("A")
	V, _ := f.Glyph("V")
	require.NoError(t, f.ApplyLigKern("* {} A ;"))
	assert.Equal(t, 0, V.Kerning("A"))
	assert.Equal(t, -135, A.Kerning("V"))
	require.NoError(t, f.ApplyLigKern("A {} * ;"))
	assert.Empty(t, A.Kerns)
	require.NoError(t, f.ApplyLigKern("Aacute <> A ; a <> A ;"))
	assert.Equal(t, []string{"Aacute"}, A.KernEquivalents) // a kerns on its own
	require.NoError(t, f.ApplyLigKern("b <> A ;"))
	assert.Equal(t, []string{"b", "Aacute"}, A.KernEquivalents)
}

func TestDefaultLigKernIsImmutable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	rules := DefaultLigKern()
	require.NotEmpty(t, rules)
	first := rules[0]
	for i := range rules {
		rules[i] = "f i =: nosuchligature ;"
	}
	assert.Equal(t, first, DefaultLigKern()[0])
	f := loadTestFont(t)
	f.UseDefaultEncoding()
	fg, _ := f.Glyph("f")
	lig, ok := fg.Ligature("i")
	require.True(t, ok)
	assert.Equal(t, "fi", lig.Substitute)
}

func TestDefaultLigKern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	f.UseDefaultEncoding()
	assert.Equal(t, "CorkEncoding", f.EncodingScheme)
	space, _ := f.Glyph("space")
	assert.Empty(t, space.Kerns)
	one, _ := f.Glyph("one")
	assert.Equal(t, 0, one.Kerning("one"))
	zero, _ := f.Glyph("zero")
	assert.Empty(t, zero.Kerns)
	hyphen, _ := f.Glyph("hyphen")
	lig, ok := hyphen.Ligature("hyphen")
	require.True(t, ok)
	assert.Equal(t, "endash", lig.Substitute)
	ff, _ := f.Glyph("ff")
	lig, _ = ff.Ligature("i")
	assert.Equal(t, "ffi", lig.Substitute)
	question, _ := f.Glyph("question")
	lig, _ = question.Ligature("quoteleft")
	assert.Equal(t, "questiondown", lig.Substitute)
}

func TestLoadEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	r, err := os.Open("testdata/test.enc")
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, f.LoadEncoding(r))
	assert.Equal(t, "TestEncoding", f.EncodingScheme)
	assert.Equal(t, "TestEncoding", f.Encoding.Name())
	assert.Equal(t, byte(30), f.Encoding.CodeFor("ffi"))
	assert.False(t, f.Encoding.HasGlyph(".notdef"))
	assert.Equal(t, 32, f.BoundaryChar)
	// file has its own LIGKERN, defaults are not applied
	hyphen, _ := f.Glyph("hyphen")
	assert.Empty(t, hyphen.Ligatures)
	space, _ := f.Glyph("space")
	assert.Empty(t, space.Kerns)
}

func TestLoadEncodingWithoutLigKern(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	enc := "/Small [" + strings.Repeat(" /a", 256) + " ] def"
	require.NoError(t, f.LoadEncoding(strings.NewReader(enc)))
	assert.Equal(t, "Small", f.EncodingScheme)
	assert.Equal(t, byte(0), f.Encoding.CodeFor("a"))
	hyphen, _ := f.Glyph("hyphen")
	assert.NotEmpty(t, hyphen.Ligatures)
}

func TestMalformedEncodings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	for _, enc := range []string{
		"[ /a /b ]",
		"/Small /a",
		"/Small [" + strings.Repeat(" /a", 255) + " ] def",
		"/Small [" + strings.Repeat(" /a", 257) + " ] def",
	} {
		f := loadTestFont(t)
		err := f.LoadEncoding(strings.NewReader(enc))
		assert.Equal(t, core.EPARSE, core.Code(err))
	}
}

func TestBuiltinEncoding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	f.UseBuiltinEncoding()
	assert.Equal(t, "Test-Regular", f.EncodingScheme)
	assert.Equal(t, byte(174), f.Encoding.CodeFor("fi"))
	assert.False(t, f.Encoding.HasGlyph("ff"))
	assert.NoError(t, f.UseEncoding("TeXBase1"))
	assert.Error(t, f.UseEncoding("Klingon"))
}

func TestLoadProtrusion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.fonts")
	defer teardown()
	//
	f := loadTestFont(t)
	r, err := os.Open("testdata/test.pro")
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, f.LoadProtrusion(r))
	hyphen, _ := f.Glyph("hyphen")
	assert.Equal(t, 0, hyphen.LeftProtrusion)
	assert.Equal(t, 700, hyphen.RightProtrusion)
	err = f.LoadProtrusion(strings.NewReader("N A ; M 100 ;\n"))
	assert.Equal(t, core.EPARSE, core.Code(err))
}
