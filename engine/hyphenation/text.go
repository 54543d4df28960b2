package hyphenation

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax29"
	"golang.org/x/text/unicode/norm"
)

// SoftHyphen is inserted at hyphenation points by HyphenateText.
const SoftHyphen = '\u00AD'

// HyphenateText inserts soft hyphens into all words of a text. Words are
// found by Unicode word segmentation (UAX #29); text between words is
// copied unchanged.
func (dict *Dictionary) HyphenateText(text string) string {
	words := newWordSegmenter(strings.NewReader(text))
	var sb strings.Builder
	for words.Next() {
		fragment := words.Text()
		if !isWord(fragment) {
			sb.WriteString(fragment)
			continue
		}
		syllables := dict.Syllables(fragment)
		tracer().Debugf("hyphenate %q: %v", fragment, syllables)
		sb.WriteString(strings.Join(syllables, string(SoftHyphen)))
	}
	return sb.String()
}

func newWordSegmenter(r io.Reader) *segment.Segmenter {
	wordbreaker := uax29.NewWordBreaker(1)
	words := segment.NewSegmenter(wordbreaker)
	words.BreakOnZero(true, false)
	words.Init(bufio.NewReader(norm.NFC.Reader(r)))
	return words
}

func isWord(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
