package hyphenation

import (
	"os"
	"strings"
	"testing"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadDict(t *testing.T, name string) *Dictionary {
	t.Helper()
	f, err := os.Open("testdata/" + name)
	require.NoError(t, err)
	defer f.Close()
	dict, err := LoadPatterns(f, "en")
	require.NoError(t, err)
	return dict
}

func TestHyphenationPoints(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.hyphenation")
	defer teardown()
	//
	dict := loadDict(t, "hyph_en.tex")
	assert.Equal(t, []int{0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}, dict.Hyphenate("hyphenation"))
	assert.Equal(t, []int{0, 3, 0, 0, 2, 5, 4, 2, 0, 2, 0}, dict.Hyphenate("Hyphenation"))
	assert.Nil(t, dict.Hyphenate(""))
}

func TestSyllables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.hyphenation")
	defer teardown()
	//
	dict := loadDict(t, "hyph_en.tex")
	assert.Equal(t, []string{"hy", "phen", "ation"}, dict.Syllables("hyphenation"))
	assert.Equal(t, []string{"na", "tion"}, dict.Syllables("nation"))
	assert.Equal(t, []string{"ta", "ble"}, dict.Syllables("table"))
	assert.Equal(t, []string{"on"}, dict.Syllables("on"))
	dict.LeftMin = 3
	assert.Equal(t, []string{"hyphen", "ation"}, dict.Syllables("hyphenation"))
}

func TestHnjFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.hyphenation")
	defer teardown()
	//
	dict := loadDict(t, "hyph_en.dic")
	assert.Equal(t, []string{"hy", "phen", "ation"}, dict.Syllables("hyphenation"))
}

func TestHyphenateText(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.hyphenation")
	defer teardown()
	//
	dict := loadDict(t, "hyph_en.tex")
	out := dict.HyphenateText("hyphenation of a nation, 42 times")
	assert.Equal(t, "hy\u00ADphen\u00ADation of a na\u00ADtion, 42 times", out)
	assert.Equal(t, "", dict.HyphenateText(""))
}

func TestBadPatternFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "pstext.hyphenation")
	defer teardown()
	//
	_, err := LoadPatterns(strings.NewReader(`\patterns{ a1b } \endinput`), "xx")
	assert.Equal(t, core.EPARSE, core.Code(err))
}
