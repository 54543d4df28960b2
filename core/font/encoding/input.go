package encoding

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/pstext/core"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/unicode/norm"
)

// InputEncoding maps input bytes to glyph names.
type InputEncoding struct {
	name    string
	charmap *charmap.Charmap
	names   [256]string
}

// NewInputEncoding creates an input encoding for a single-byte character set
// known by its IANA name or alias, e.g. "ISO-8859-1", "latin2" or
// "windows-1252".
func NewInputEncoding(name string) (*InputEncoding, error) {
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil || enc == nil {
		return nil, core.WrapError(err, core.EMISSING, "no input encoding %q", name)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, core.Error(core.EINVALID, "input encoding %q is not a single-byte charset", name)
	}
	ie := &InputEncoding{name: name, charmap: cm}
	if canonical, err := ianaindex.MIME.Name(enc); err == nil {
		ie.name = canonical
	} else if canonical, err := ianaindex.IANA.Name(enc); err == nil {
		ie.name = canonical
	}
	for b := 0; b < 256; b++ {
		ie.names[b] = glyphNameForRune(cm.DecodeByte(byte(b)))
	}
	return ie, nil
}

// Latin1 is the default input encoding, ISO-8859-1.
func Latin1() *InputEncoding {
	ie, err := NewInputEncoding("ISO-8859-1")
	if err != nil {
		panic(err) // x/text always knows Latin-1
	}
	return ie
}

func glyphNameForRune(r rune) string {
	if r == utf8.RuneError || r < 0x20 || (r >= 0x7F && r < 0xA0) {
		return ""
	}
	if name, ok := runeNames[r]; ok {
		return name
	}
	return fmt.Sprintf("uni%04X", r)
}

// Name returns the canonical name of the input encoding.
func (ie *InputEncoding) Name() string {
	return ie.name
}

// GlyphName returns the name of the glyph denoted by an input byte, or ""
// for control codes and unassigned positions.
func (ie *InputEncoding) GlyphName(b byte) string {
	return ie.names[b]
}

// Decode converts 8-bit text to UTF-8.
func (ie *InputEncoding) Decode(text []byte) string {
	var sb strings.Builder
	for _, b := range text {
		sb.WriteRune(ie.charmap.DecodeByte(b))
	}
	return sb.String()
}

// Encode converts UTF-8 text to 8-bit text. The text is NFC-normalized first,
// so that combining sequences map to precomposed characters. Runes outside
// the character set are an error.
func (ie *InputEncoding) Encode(s string) ([]byte, error) {
	s = norm.NFC.String(s)
	out := make([]byte, 0, len(s))
	for i, r := range s {
		b, ok := ie.charmap.EncodeRune(r)
		if !ok {
			return out, core.Error(core.EINVALID, "character %q at position %d not in %s",
				r, i, ie.name)
		}
		out = append(out, b)
	}
	return out, nil
}
