package hyphenation

import (
	"bufio"
	"io"
	"strings"
	"unicode"

	"github.com/derekparker/trie"
	"github.com/npillmayer/pstext/core"
)

// Dictionary holds hyphenation patterns and exceptions for a language.
type Dictionary struct {
	Language   string
	LeftMin    int // minimum number of characters before a hyphen
	RightMin   int // minimum number of characters after a hyphen
	patterns   *trie.Trie
	exceptions map[string][]int
	maxlen     int // length of the longest pattern, in runes
	count      int
}

// NewDictionary creates an empty dictionary for a language.
func NewDictionary(lang string) *Dictionary {
	return &Dictionary{
		Language:   lang,
		LeftMin:    2,
		RightMin:   3,
		patterns:   trie.New(),
		exceptions: make(map[string][]int),
	}
}

// LoadPatterns reads a pattern file into a new dictionary.
func LoadPatterns(r io.Reader, lang string) (*Dictionary, error) {
	dict := NewDictionary(lang)
	lines := bufio.NewScanner(r)
	inExceptions := false
	lineno := 0
	for lines.Scan() {
		lineno++
		line := lines.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			line = line[:i]
		}
		if lineno == 1 && isCharsetLine(line) {
			continue
		}
		for _, field := range strings.Fields(line) {
			switch {
			case strings.HasPrefix(field, `\patterns`):
				inExceptions = false
				field = strings.TrimPrefix(strings.TrimPrefix(field, `\patterns`), "{")
			case strings.HasPrefix(field, `\hyphenation`):
				inExceptions = true
				field = strings.TrimPrefix(strings.TrimPrefix(field, `\hyphenation`), "{")
			}
			field = strings.TrimSuffix(field, "}")
			if field == "" || field == "{" {
				continue
			}
			if strings.HasPrefix(field, `\`) {
				return nil, core.Error(core.EPARSE, "pattern line %d: unknown command %s", lineno, field)
			}
			if inExceptions {
				dict.AddException(field)
			} else if isUpper(field) {
				continue // libhnj directive, e.g. LEFTHYPHENMIN
			} else {
				dict.AddPattern(field)
			}
		}
	}
	if err := lines.Err(); err != nil {
		return nil, core.WrapError(err, core.EPARSE, "reading hyphenation patterns: %v", err)
	}
	tracer().Infof("loaded %d hyphenation patterns for %s", dict.count, lang)
	return dict, nil
}

func isCharsetLine(line string) bool {
	line = strings.TrimSpace(line)
	return strings.HasPrefix(line, "ISO") || strings.HasPrefix(line, "UTF") ||
		strings.HasPrefix(line, "KOI") || strings.HasPrefix(line, "microsoft")
}

func isUpper(s string) bool {
	for _, r := range s {
		if unicode.IsLower(r) || r == '.' || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// AddPattern adds a Liang pattern, such as "hen5at" or ".ex1".
func (dict *Dictionary) AddPattern(pattern string) {
	var letters []rune
	weights := []int{0}
	for _, r := range pattern {
		if r >= '0' && r <= '9' {
			weights[len(weights)-1] = int(r - '0')
			continue
		}
		letters = append(letters, unicode.ToLower(r))
		weights = append(weights, 0)
	}
	if len(letters) == 0 {
		return
	}
	dict.patterns.Add(string(letters), weights)
	if len(letters) > dict.maxlen {
		dict.maxlen = len(letters)
	}
	dict.count++
}

// AddException adds a word with explicit hyphens, such as "ta-ble".
func (dict *Dictionary) AddException(word string) {
	var letters []rune
	var mask []int
	for _, r := range word {
		if r == '-' {
			if len(mask) > 0 {
				mask[len(mask)-1] = 1
			}
			continue
		}
		letters = append(letters, unicode.ToLower(r))
		mask = append(mask, 0)
	}
	dict.exceptions[string(letters)] = mask
}

// Hyphenate returns the hyphenation points of a word: an odd value at
// index i allows a hyphen after the i-th rune of word.
// LeftMin and RightMin are not applied.
func (dict *Dictionary) Hyphenate(word string) []int {
	runes := []rune(strings.ToLower(word))
	if len(runes) == 0 {
		return nil
	}
	if mask, ok := dict.exceptions[string(runes)]; ok {
		return append([]int(nil), mask...)
	}
	w := make([]rune, 0, len(runes)+2)
	w = append(append(append(w, '.'), runes...), '.')
	points := make([]int, len(w)+1)
	for i := 0; i < len(w); i++ {
		for j := i + 1; j <= len(w) && j-i <= dict.maxlen; j++ {
			key := string(w[i:j])
			if node, ok := dict.patterns.Find(key); ok {
				for k, v := range node.Meta().([]int) {
					if v > points[i+k] {
						points[i+k] = v
					}
				}
			}
			if !dict.patterns.HasKeysWithPrefix(key) {
				break
			}
		}
	}
	mask := make([]int, len(runes))
	for r := range runes {
		mask[r] = points[r+2]
	}
	mask[len(runes)-1] = 0
	return mask
}

// Syllables splits a word at its hyphenation points, observing LeftMin and
// RightMin.
func (dict *Dictionary) Syllables(word string) []string {
	runes := []rune(word)
	if len(runes) == 0 || len(runes) < dict.LeftMin+dict.RightMin {
		return []string{word}
	}
	mask := dict.Hyphenate(word)
	var syllables []string
	start := 0
	left := dict.LeftMin
	if left < 1 {
		left = 1
	}
	for i := left - 1; i < len(runes)-dict.RightMin; i++ {
		if mask[i]%2 == 1 {
			syllables = append(syllables, string(runes[start:i+1]))
			start = i + 1
		}
	}
	return append(syllables, string(runes[start:]))
}
