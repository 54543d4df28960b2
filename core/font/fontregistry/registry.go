package fontregistry

import (
	"fmt"
	"path"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/pstext/core"
	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/core/font/encoding"
	"github.com/npillmayer/pstext/core/locate/resources"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/schuko/tracing"
	xfont "golang.org/x/image/font"
)

// Encoding names with special meaning for FindFont.
const (
	DefaultEncoding = "default" // built-in default encoding plus default ligatures
	BuiltinEncoding = "builtin" // encoding given by the character codes of the AFM
)

// Registry is a type for holding loaded fonts.
type Registry struct {
	sync.Mutex
	catalog *resources.Catalog
	regs    *parameters.TypesettingRegisters
	afmOpts []afm.Option
	fonts   map[string]*afm.Font
}

var globalFontRegistry *Registry

var globalRegistryCreation sync.Once

// GlobalRegistry is an application-wide singleton to hold loaded fonts. It
// resolves files with the global resource catalog.
func GlobalRegistry() *Registry {
	globalRegistryCreation.Do(func() {
		globalFontRegistry = NewRegistry(resources.GlobalCatalog(), nil)
	})
	return globalFontRegistry
}

// NewRegistry creates a registry which locates files with catalog. If
// registers are given, font loading follows the kerning switch in them.
// afmOpts are passed on to the AFM parser.
func NewRegistry(catalog *resources.Catalog, regs *parameters.TypesettingRegisters,
	afmOpts ...afm.Option) *Registry {
	//
	if catalog == nil {
		catalog = resources.NewCatalog()
	}
	if regs == nil {
		regs = parameters.NewTypesettingRegisters()
	}
	return &Registry{
		catalog: catalog,
		regs:    regs,
		afmOpts: afmOpts,
		fonts:   make(map[string]*afm.Font),
	}
}

// Catalog returns the resource catalog of the registry.
func (fr *Registry) Catalog() *resources.Catalog {
	return fr.catalog
}

func fontKey(name, enc string) string {
	style, weight := GuessStyleAndWeight(name)
	return NormalizeFontname(name, style, weight) + "@" + enc
}

// FindFont returns a font with a given encoding, loading it if necessary.
//
// The metrics are read from the file defined as resource FontAFM for the
// font name, or from "<name>.afm". The encoding may be a built-in encoding
// (see package encoding), the name of an encoding file, BuiltinEncoding
// for the font's own encoding, or empty. If empty, an encoding file defined as
// resource FontEncoding for the font is used, or the default encoding.
// With kerning switched on, margin protrusion values are read from resource
// FontProtusion or "<name>.pro"; a missing protrusion file is not an error.
func (fr *Registry) FindFont(name, enc string) (*afm.Font, error) {
	if name = strings.TrimSpace(name); name == "" {
		return nil, core.Error(core.EINVALID, "no font name given")
	}
	fr.Lock()
	defer fr.Unlock()
	key := fontKey(name, enc)
	if f, ok := fr.fonts[key]; ok {
		tracer().Debugf("registry found font %s", key)
		return f, nil
	}
	f, err := fr.loadMetrics(name)
	if err != nil {
		return nil, err
	}
	if err = fr.applyEncoding(f, name, enc); err != nil {
		return nil, err
	}
	if fr.regs.B(parameters.P_KERNING) {
		fr.loadProtrusion(f, name)
	}
	tracer().Infof("font registry caches font %s as %s", f.FontName, key)
	fr.fonts[key] = f
	return f, nil
}

func (fr *Registry) loadMetrics(name string) (*afm.Font, error) {
	r, err := fr.catalog.OpenResource(resources.FontAFM, name, name+".afm")
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font metrics could not be loaded (%s)", name)
	}
	defer r.Close()
	f, err := afm.Parse(r, fr.afmOpts...)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (fr *Registry) applyEncoding(f *afm.Font, name, enc string) error {
	if enc == "" {
		if enc, _ = fr.catalog.Find(resources.FontEncoding, name); enc == "" {
			enc = DefaultEncoding
		}
	}
	switch enc {
	case DefaultEncoding:
		f.UseDefaultEncoding()
		return nil
	case BuiltinEncoding:
		f.UseBuiltinEncoding()
		return nil
	}
	if _, ok := encoding.Builtin(enc); ok {
		return f.UseEncoding(enc)
	}
	r, err := fr.catalog.Open(enc)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "encoding file could not be loaded (%s)", enc)
	}
	defer r.Close()
	return f.LoadEncoding(r)
}

func (fr *Registry) loadProtrusion(f *afm.Font, name string) {
	r, err := fr.catalog.OpenResource(resources.FontProtusion, name, name+".pro")
	if err != nil {
		tracer().Errorf("could not open protrusion file for %s", name)
		return
	}
	defer r.Close()
	if err = f.LoadProtrusion(r); err != nil {
		tracer().Errorf("protrusion file for %s: %v", name, err)
	}
}

// StoreFont pushes a font into the registry if it isn't contained yet.
//
// The font will be stored using the normalized font name and the encoding as
// a key. If this key is already associated with a font, that font will not be
// overridden.
func (fr *Registry) StoreFont(name, enc string, f *afm.Font) {
	if f == nil {
		tracer().Errorf("registry cannot store null font")
		return
	}
	fr.Lock()
	defer fr.Unlock()
	key := fontKey(name, enc)
	if _, ok := fr.fonts[key]; !ok {
		tracer().Debugf("registry stores font %s as %s", f.FontName, key)
		fr.fonts[key] = f
	}
}

// Fonts returns the keys of all fonts in the registry, sorted.
func (fr *Registry) Fonts() []string {
	fr.Lock()
	defer fr.Unlock()
	set := treeset.NewWithStringComparator()
	for k := range fr.fonts {
		set.Add(k)
	}
	keys := make([]string, 0, set.Size())
	for _, k := range set.Values() {
		keys = append(keys, k.(string))
	}
	return keys
}

// LogFontList is a helper function to dump the list of known fonts
// in a registry to the trace-file (log-level Info).
func (fr *Registry) LogFontList() {
	level := tracer().GetTraceLevel()
	tracer().SetTraceLevel(tracing.LevelInfo)
	tracer().Infof("--- registered fonts ---")
	for _, k := range fr.Fonts() {
		fr.Lock()
		f := fr.fonts[k]
		fr.Unlock()
		tracer().Infof("font [%s] = %v (%d glyphs, %s)", k, f.FontName, f.GlyphCount(), f.EncodingScheme)
	}
	tracer().Infof("------------------------")
	tracer().SetTraceLevel(level)
}

// NormalizeFontname creates a lookup key for a font from its name, style and
// weight.
func NormalizeFontname(fname string, style xfont.Style, weight xfont.Weight) string {
	fname = strings.TrimSpace(fname)
	fname = strings.ReplaceAll(fname, " ", "_")
	if ext := path.Ext(fname); ext == ".afm" || ext == ".pfb" || ext == ".pfa" {
		fname = fname[:len(fname)-len(ext)]
	}
	fname = strings.ToLower(fname)
	switch style {
	case xfont.StyleItalic, xfont.StyleOblique:
		fname += "-italic"
	}
	switch weight {
	case xfont.WeightLight, xfont.WeightExtraLight:
		fname += "-light"
	case xfont.WeightBold, xfont.WeightExtraBold, xfont.WeightSemiBold:
		fname += "-bold"
	}
	return fname
}

// GuessStyleAndWeight trys to guess a font's style and weight from the
// font's name, e.g. "Times-BoldItalic".
func GuessStyleAndWeight(fontname string) (xfont.Style, xfont.Weight) {
	fontname = path.Base(fontname)
	ext := path.Ext(fontname)
	fontname = strings.ToLower(fontname[:len(fontname)-len(ext)])
	s := strings.Split(fontname, "-")
	if len(s) > 1 {
		switch s[len(s)-1] {
		case "light", "xlight":
			return xfont.StyleNormal, xfont.WeightLight
		case "normal", "medium", "regular", "roman", "r":
			return xfont.StyleNormal, xfont.WeightNormal
		case "bold", "b":
			return xfont.StyleNormal, xfont.WeightBold
		case "xbold", "black":
			return xfont.StyleNormal, xfont.WeightExtraBold
		}
	}
	style, weight := xfont.StyleNormal, xfont.WeightNormal
	if strings.Contains(fontname, "italic") {
		style = xfont.StyleItalic
	} else if strings.Contains(fontname, "oblique") {
		style = xfont.StyleOblique
	}
	if strings.Contains(fontname, "light") {
		weight = xfont.WeightLight
	}
	if strings.Contains(fontname, "bold") {
		weight = xfont.WeightBold
	}
	return style, weight
}

// MatchConfidence is a type for expressing the confidence level of font matching.
type MatchConfidence int

const (
	NoConfidence      MatchConfidence = 0
	LowConfidence     MatchConfidence = 2
	HighConfidence    MatchConfidence = 3
	PerfectConfidence MatchConfidence = 4
)

func (c MatchConfidence) String() string {
	switch c {
	case NoConfidence:
		return "none"
	case LowConfidence:
		return "low"
	case HighConfidence:
		return "high"
	case PerfectConfidence:
		return "perfect"
	}
	return strconv.Itoa(int(c))
}

// variant extracts the variant part of a font name, e.g. "bolditalic" from
// "Times-BoldItalic".
func variant(fontname string) string {
	fontname = strings.ToLower(path.Base(fontname))
	fontname = fontname[:len(fontname)-len(path.Ext(fontname))]
	if dash := strings.LastIndex(fontname, "-"); dash >= 0 && dash < len(fontname)-1 {
		return fontname[dash+1:]
	}
	return "regular"
}

// ClosestMatch scans a list of font names and returns the closest match
// for a family pattern, style and weight. Font names are expected in the
// usual PostScript form "Family-Variant".
// If no font matches, returns `NoConfidence`.
func ClosestMatch(fontnames []string, pattern string, style xfont.Style,
	weight xfont.Weight) (match string, confidence MatchConfidence) {
	//
	r, err := regexp.Compile(strings.ToLower(pattern))
	if err != nil {
		tracer().Errorf("invalid font name pattern %q", pattern)
		return
	}
	for _, name := range fontnames {
		family := strings.ToLower(name)
		if dash := strings.LastIndex(family, "-"); dash > 0 {
			family = family[:dash]
		}
		if !r.MatchString(family) {
			continue
		}
		v := variant(name)
		s := MatchStyle(v, style)
		w := MatchWeight(v, weight)
		if c := (s + w) / 2; c > confidence {
			tracer().Debugf("font %s matches with confidence %s", name, c)
			confidence, match = c, name
		}
	}
	return
}

// FindClosest finds the font defined as FontAFM resource in the registry's
// catalog which matches pattern, style and weight best, and loads it with
// the default encoding.
func (fr *Registry) FindClosest(pattern string, style xfont.Style, weight xfont.Weight) (*afm.Font, error) {
	name, conf := ClosestMatch(fr.catalog.Names(resources.FontAFM), pattern, style, weight)
	if conf == NoConfidence {
		return nil, core.Error(core.EMISSING, "no font matching %q", pattern)
	}
	return fr.FindFont(name, "")
}

// ---------------------------------------------------------------------------

// MatchStyle trys to match a font-variant to a given style.
func MatchStyle(variantName string, style xfont.Style) MatchConfidence {
	variantName = strings.ToLower(variantName)
	italic := strings.Contains(variantName, "italic")
	oblique := strings.Contains(variantName, "obliq")
	switch style {
	case xfont.StyleNormal:
		switch {
		case variantName == "regular" || variantName == "roman" || variantName == "400":
			return PerfectConfidence
		case !italic && !oblique:
			return HighConfidence
		}
		return NoConfidence
	case xfont.StyleItalic:
		if italic {
			return PerfectConfidence
		}
		if oblique {
			return HighConfidence
		}
		return NoConfidence
	case xfont.StyleOblique:
		if oblique {
			return PerfectConfidence
		}
		if italic {
			return HighConfidence
		}
		return NoConfidence
	}
	return NoConfidence
}

// MatchWeight trys to match a font-variant to a given weight.
func MatchWeight(variantName string, weight xfont.Weight) MatchConfidence {
	/* from https://pkg.go.dev/golang.org/x/image/font
	WeightThin       Weight = -3 // CSS font-weight value 100.
	WeightExtraLight Weight = -2 // CSS font-weight value 200.
	WeightLight      Weight = -1 // CSS font-weight value 300.
	WeightNormal     Weight = +0 // CSS font-weight value 400.
	WeightMedium     Weight = +1 // CSS font-weight value 500.
	WeightSemiBold   Weight = +2 // CSS font-weight value 600.
	WeightBold       Weight = +3 // CSS font-weight value 700.
	WeightExtraBold  Weight = +4 // CSS font-weight value 800.
	WeightBlack      Weight = +5 // CSS font-weight value 900.
	*/
	variantName = strings.ToLower(variantName)
	if strconv.Itoa((int(weight)+4)*100) == variantName {
		return PerfectConfidence
	}
	switch {
	case strings.Contains(variantName, "semibold") || strings.Contains(variantName, "demi"):
		switch weight {
		case xfont.WeightSemiBold:
			return PerfectConfidence
		case xfont.WeightBold, xfont.WeightMedium:
			return HighConfidence
		}
		return NoConfidence
	case strings.Contains(variantName, "extrabold") || strings.Contains(variantName, "black"):
		switch weight {
		case xfont.WeightExtraBold, xfont.WeightBlack:
			return PerfectConfidence
		case xfont.WeightBold:
			return HighConfidence
		}
		return NoConfidence
	case strings.Contains(variantName, "bold"):
		switch weight {
		case xfont.WeightBold:
			return PerfectConfidence
		case xfont.WeightSemiBold, xfont.WeightExtraBold:
			return HighConfidence
		}
		return NoConfidence
	case strings.Contains(variantName, "light"):
		switch weight {
		case xfont.WeightThin, xfont.WeightExtraLight, xfont.WeightLight:
			return PerfectConfidence
		case xfont.WeightNormal:
			return LowConfidence
		}
		return NoConfidence
	case variantName == "medium":
		switch weight {
		case xfont.WeightMedium:
			return PerfectConfidence
		case xfont.WeightNormal, xfont.WeightSemiBold:
			return HighConfidence
		}
		return LowConfidence
	}
	// regular, roman, italic, oblique, book …
	switch weight {
	case xfont.WeightNormal, xfont.WeightMedium:
		return PerfectConfidence
	case xfont.WeightThin, xfont.WeightExtraLight, xfont.WeightLight:
		return LowConfidence
	}
	return NoConfidence
}

// Describe returns a one-line description of a font.
func Describe(f *afm.Font) string {
	return fmt.Sprintf("%s (%s, %d glyphs, encoding %s)", f.FontName, f.FullName, f.GlyphCount(), f.EncodingScheme)
}

