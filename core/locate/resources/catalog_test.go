package resources

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func readAll(t *testing.T, r io.ReadCloser) string {
	t.Helper()
	defer r.Close()
	b, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(b)
}

func TestDefineAndFind(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	c := NewCatalog()
	require.NoError(t, c.Define(FontAFM, "Helvetica", "n019003l.afm"))
	require.NoError(t, c.DefineParameter(FontEncoding, "Helvetica = t1.enc"))
	v, ok := c.Find(FontAFM, "Helvetica")
	assert.True(t, ok)
	assert.Equal(t, "n019003l.afm", v)
	v, _ = c.Find(FontEncoding, "Helvetica")
	assert.Equal(t, "t1.enc", v)
	require.NoError(t, c.Define(FontAFM, "Helvetica", "helvetica.afm"))
	v, _ = c.Find(FontAFM, "Helvetica")
	assert.Equal(t, "helvetica.afm", v)
	assert.Equal(t, []string{"Helvetica"}, c.Names(FontAFM))
	_, ok = c.Find(FontOutline, "Helvetica")
	assert.False(t, ok)
	//
	err := c.Define(Category("Colors"), "red", "ff0000")
	assert.Equal(t, core.EINVALID, core.Code(err))
	err = c.DefineParameter(FontAFM, "no-equals-sign")
	assert.Equal(t, core.EINVALID, core.Code(err))
	cat, ok := ParseCategory("fontprotusion")
	assert.True(t, ok)
	assert.Equal(t, FontProtusion, cat)
}

func TestSearchPathOrder(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir1, dir2 := t.TempDir(), t.TempDir()
	writeFile(t, dir1, "font.afm", "first")
	writeFile(t, dir2, "font.afm", "second")
	writeFile(t, dir1, "only.enc", "only")
	c := NewCatalog()
	require.NoError(t, c.Define(SearchPath, "", dir1))
	require.NoError(t, c.DefineParameter(SearchPath, dir2))
	assert.Equal(t, []string{dir2, dir1}, c.SearchPath())
	r, err := c.Open("font.afm")
	require.NoError(t, err)
	assert.Equal(t, "second", readAll(t, r))
	r, err = c.Open("only.enc")
	require.NoError(t, err)
	assert.Equal(t, "only", readAll(t, r))
	r, err = c.Open(filepath.Join(dir1, "font.afm"))
	require.NoError(t, err)
	assert.Equal(t, "first", readAll(t, r))
	//
	_, err = c.Open("no-such-file.afm")
	assert.Equal(t, core.EMISSING, core.Code(err))
	_, err = c.Open("")
	assert.Equal(t, core.EINVALID, core.Code(err))
}

func TestOpenResource(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	dir := t.TempDir()
	writeFile(t, dir, "n019003l.afm", "afm")
	c := NewCatalog()
	require.NoError(t, c.Define(SearchPath, "", dir))
	require.NoError(t, c.Define(FontAFM, "Helvetica", "n019003l.afm"))
	r, err := c.OpenResource(FontAFM, "Helvetica", "")
	require.NoError(t, err)
	assert.Equal(t, "afm", readAll(t, r))
	_, err = c.OpenResource(FontAFM, "Times", "")
	assert.Equal(t, core.EMISSING, core.Code(err))
	r, err = c.OpenResource(FontAFM, "Times", "n019003l.afm")
	require.NoError(t, err)
	r.Close()
}

func TestSearchPathFromConfig(t *testing.T) {
	dir1, dir2 := t.TempDir(), t.TempDir()
	writeFile(t, dir2, "x.pro", "pro")
	teardown := testconfig.QuickConfig(t, map[string]string{
		"resource-path": dir1 + string(os.PathListSeparator) + dir2,
	})
	defer teardown()
	//
	c := NewCatalog()
	c.InitFromConfig()
	assert.Equal(t, []string{dir2, dir1}, c.SearchPath())
	r, err := c.Open("x.pro")
	require.NoError(t, err)
	assert.Equal(t, "pro", readAll(t, r))
}

func TestDataDirectory(t *testing.T) {
	datadir := t.TempDir()
	writeFile(t, datadir, "data.enc", "data")
	teardown := testconfig.QuickConfig(t, map[string]string{
		"data-dir": datadir,
	})
	defer teardown()
	//
	p, err := DataDirPath(true, "fonts")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(datadir, "fonts"), p)
	assert.DirExists(t, p)
	r, err := NewCatalog().Open("data.enc")
	require.NoError(t, err)
	assert.Equal(t, "data", readAll(t, r))
}

func TestPackagedResource(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	//
	r, err := NewCatalog().Open("hyph_en.tex")
	require.NoError(t, err)
	assert.Contains(t, readAll(t, r), `\patterns{`)
}
