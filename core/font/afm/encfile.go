package afm

import (
	"bufio"
	"io"
	"strings"

	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/font/encoding"
)

// LoadEncoding reads a PostScript encoding file
//
//	/MyEncoding [ /glyph0 /glyph1 … /glyph255 ] def
//
// and makes it the font encoding. LIGKERN instructions in comments are
// applied to the font; if there are none, DefaultLigKern is applied.
// The font's EncodingScheme is set to the name of the encoding vector.
func (f *Font) LoadEncoding(r io.Reader) error {
	var tokens []string
	sawLigKern := false
	lines := bufio.NewScanner(r)
	for lines.Scan() {
		line := lines.Text()
		if i := strings.IndexByte(line, '%'); i >= 0 {
			comment := strings.TrimLeft(line[i+1:], " \t")
			line = line[:i]
			if strings.HasPrefix(comment, "LIGKERN") {
				sawLigKern = true
				if err := f.ApplyLigKern(comment[len("LIGKERN"):]); err != nil {
					return err
				}
			}
		}
		tokens = append(tokens, psTokens(line)...)
	}
	if err := lines.Err(); err != nil {
		return core.WrapError(err, core.EPARSE, "reading encoding file: %v", err)
	}
	name, vector, err := encodingVector(tokens)
	if err != nil {
		return err
	}
	if !sawLigKern {
		f.applyDefaultLigKern()
	}
	f.Encoding = encoding.FromVector(name, vector)
	f.EncodingScheme = name
	tracer().Debugf("font %s uses encoding %s", f.FontName, name)
	return nil
}

func encodingVector(tokens []string) (string, [256]string, error) {
	var vector [256]string
	pos := 0
	next := func() string {
		if pos >= len(tokens) {
			return ""
		}
		pos++
		return tokens[pos-1]
	}
	t := next()
	if len(t) < 2 || t[0] != '/' {
		return "", vector, core.Error(core.EPARSE, "encoding file must start with name of encoding")
	}
	name := t[1:]
	if next() != "[" {
		return "", vector, core.Error(core.EPARSE, "name of encoding must be followed by '['")
	}
	for i := 0; i < 256; i++ {
		t = next()
		if len(t) < 2 || t[0] != '/' {
			return "", vector, core.Error(core.EPARSE, "encoding vector must contain 256 glyph names, entry %d is %q", i, t)
		}
		if t != "/.notdef" {
			vector[i] = t[1:]
		}
	}
	if next() != "]" {
		return "", vector, core.Error(core.EPARSE, "encoding vector must be ended by ']'")
	}
	return name, vector, nil
}

// psTokens splits a line of PostScript into brackets, braces and names.
// Anything else is skipped.
func psTokens(line string) []string {
	var tokens []string
	isName := func(c byte) bool {
		return c == '-' || c == '_' || c == '.' || (c >= '0' && c <= '9') ||
			(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
	}
	for i := 0; i < len(line); {
		c := line[i]
		switch {
		case c == '[' || c == ']' || c == '{' || c == '}':
			tokens = append(tokens, line[i:i+1])
			i++
		case c == '/' || isName(c):
			j := i + 1
			for j < len(line) && isName(line[j]) {
				j++
			}
			tokens = append(tokens, line[i:j])
			i = j
		default:
			i++
		}
	}
	return tokens
}

// UseDefaultEncoding applies DefaultLigKern and makes the Cork encoding the
// font encoding.
func (f *Font) UseDefaultEncoding() {
	f.applyDefaultLigKern()
	f.Encoding = encoding.Default()
	f.EncodingScheme = f.Encoding.Name()
}

// UseBuiltinEncoding makes the font's own encoding, as given by the
// character codes of the AFM data, the font encoding.
func (f *Font) UseBuiltinEncoding() {
	var vector [256]string
	it := f.glyphs.Iterate()
	for it.Next() {
		g := it.Value()
		if g.Code > 0 && g.Code < 256 {
			vector[g.Code] = g.Name
		}
	}
	f.Encoding = encoding.FromVector(f.FontName, vector)
	f.EncodingScheme = f.FontName
}

// UseEncoding applies DefaultLigKern and makes a built-in font encoding the
// font encoding.
func (f *Font) UseEncoding(name string) error {
	enc, ok := encoding.Builtin(name)
	if !ok {
		return core.Error(core.EMISSING, "no built-in font encoding %q", name)
	}
	f.applyDefaultLigKern()
	f.Encoding = enc
	f.EncodingScheme = enc.Name()
	return nil
}
