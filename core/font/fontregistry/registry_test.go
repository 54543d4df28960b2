package fontregistry

import (
	"testing"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/locate/resources"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	xfont "golang.org/x/image/font"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	c := resources.NewCatalog()
	require.NoError(t, c.Define(resources.SearchPath, "", "testdata"))
	return NewRegistry(c, nil)
}

func TestFindFontDefaultEncoding(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fr := testRegistry(t)
	f, err := fr.FindFont("Test-Regular", "")
	require.NoError(t, err)
	assert.Equal(t, "Test-Regular", f.FontName)
	require.NotNil(t, f.Encoding)
	assert.Equal(t, f.Encoding.Name(), f.EncodingScheme)
	// protrusion file Test-Regular.pro has been read
	g, ok := f.Glyph("hyphen")
	require.True(t, ok)
	assert.Equal(t, 700, g.RightProtrusion)
	// cached
	f2, err := fr.FindFont("Test-Regular", "")
	require.NoError(t, err)
	assert.Same(t, f, f2)
	assert.Equal(t, []string{"test-regular@"}, fr.Fonts())
}

func TestFindFontEncodings(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fr := testRegistry(t)
	f, err := fr.FindFont("Test-Regular", "test.enc")
	require.NoError(t, err)
	assert.Equal(t, "TestEncoding", f.EncodingScheme)
	f, err = fr.FindFont("Test-Regular", BuiltinEncoding)
	require.NoError(t, err)
	assert.Equal(t, "Test-Regular", f.EncodingScheme)
	f, err = fr.FindFont("Test-Regular", "T1")
	require.NoError(t, err)
	assert.True(t, f.Encoding.HasGlyph("ff"))
	_, err = fr.FindFont("Test-Regular", "no-such.enc")
	assert.Equal(t, core.EMISSING, core.Code(err))
	assert.Equal(t, []string{"test-regular@T1", "test-regular@builtin", "test-regular@test.enc"}, fr.Fonts())
	//
	require.NoError(t, fr.Catalog().Define(resources.FontEncoding, "Test-Regular", "test.enc"))
	fr = NewRegistry(fr.Catalog(), nil)
	f, err = fr.FindFont("Test-Regular", "")
	require.NoError(t, err)
	assert.Equal(t, "TestEncoding", f.EncodingScheme)
}

func TestFindFontByResource(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	fr := testRegistry(t)
	require.NoError(t, fr.Catalog().Define(resources.FontAFM, "Body", "Test-Regular.afm"))
	f, err := fr.FindFont("Body", "")
	require.NoError(t, err)
	assert.Equal(t, "Test-Regular", f.FontName)
	// Body.pro does not exist, which is not an error
	g, _ := f.Glyph("hyphen")
	assert.Equal(t, 0, g.RightProtrusion)
	//
	_, err = fr.FindFont("No-Such-Font", "")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = fr.FindFont(" ", "")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestNoProtrusionWithoutKerning(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	regs := parameters.NewTypesettingRegisters()
	require.True(t, regs.Set(parameters.P_KERNING, "false"))
	c := resources.NewCatalog()
	require.NoError(t, c.Define(resources.SearchPath, "", "testdata"))
	f, err := NewRegistry(c, regs).FindFont("Test-Regular", "")
	require.NoError(t, err)
	g, _ := f.Glyph("hyphen")
	assert.Equal(t, 0, g.RightProtrusion)
}

func TestNormalizeFontname(t *testing.T) {
	style, weight := GuessStyleAndWeight("Times-BoldItalic.afm")
	assert.Equal(t, xfont.StyleItalic, style)
	assert.Equal(t, xfont.WeightBold, weight)
	assert.Equal(t, "times-bolditalic-italic-bold", NormalizeFontname("Times-BoldItalic.afm", style, weight))
	style, weight = GuessStyleAndWeight("Times-Roman")
	assert.Equal(t, xfont.StyleNormal, style)
	assert.Equal(t, xfont.WeightNormal, weight)
	assert.Equal(t, "new_century", NormalizeFontname("New Century", style, weight))
}

func TestClosestMatch(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	names := []string{"Times-Roman", "Times-Bold", "Times-Italic", "Times-BoldItalic", "Helvetica"}
	m, c := ClosestMatch(names, "times", xfont.StyleNormal, xfont.WeightBold)
	assert.Equal(t, "Times-Bold", m)
	assert.Equal(t, HighConfidence, c)
	m, c = ClosestMatch(names, "times", xfont.StyleItalic, xfont.WeightNormal)
	assert.Equal(t, "Times-Italic", m)
	assert.Equal(t, PerfectConfidence, c)
	m, _ = ClosestMatch(names, "helv", xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, "Helvetica", m)
	_, c = ClosestMatch(names, "courier", xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, NoConfidence, c)
	//
	fr := testRegistry(t)
	require.NoError(t, fr.Catalog().Define(resources.FontAFM, "Test-Regular", "Test-Regular.afm"))
	f, err := fr.FindClosest("test", xfont.StyleNormal, xfont.WeightNormal)
	require.NoError(t, err)
	assert.Equal(t, "Test-Regular", f.FontName)
	_, err = fr.FindClosest("courier", xfont.StyleNormal, xfont.WeightNormal)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
