package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pstext/backend/recorder"
	"github.com/npillmayer/pstext/core/font/afm"
	"github.com/npillmayer/pstext/core/font/encoding"
	"github.com/npillmayer/pstext/core/font/fontregistry"
	"github.com/npillmayer/pstext/core/locate/resources"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/pstext/engine/glyphing"
	"github.com/npillmayer/pstext/engine/hyphenation"
	"github.com/npillmayer/pstext/engine/textbox"
	"github.com/pterm/pterm"
)

// defaultPatterns is the hyphenation pattern file loaded if no other
// dictionary has been loaded.
const defaultPatterns = "hyph_en.tex"

// Intp is our interpreter object
type Intp struct {
	registry *fontregistry.Registry
	regs     *parameters.TypesettingRegisters
	font     *afm.Font
	dict     *hyphenation.Dictionary
	size     float64
	out      io.Writer
	repl     *readline.Instance
}

// NewIntp creates an interpreter which loads fonts with registry.
func NewIntp(registry *fontregistry.Registry, regs *parameters.TypesettingRegisters) *Intp {
	return &Intp{
		registry: registry,
		regs:     regs,
		size:     textbox.DefaultSize,
		out:      os.Stdout,
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		cmd, err := intp.parseCommand(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		quit, err := intp.execute(cmd)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

// Command is a parsed command line.
type Command struct {
	code int
	args []string
}

// arg returns argument i or an empty string.
func (cmd *Command) arg(i int) string {
	if i < len(cmd.args) {
		return cmd.args[i]
	}
	return ""
}

// text joins the arguments from i on.
func (cmd *Command) text(i int) string {
	if i < len(cmd.args) {
		return strings.Join(cmd.args[i:], " ")
	}
	return ""
}

const (
	QUIT int = iota
	HELP
	FONT
	FONTS
	GLYPH
	GLYPHS
	KERN
	LIG
	SIZE
	MEASURE
	SET
	PATH
	DEFINE
	DICT
	HYPH
	BOX
)

var commands = map[string]int{
	"quit":    QUIT,
	"help":    HELP,
	"font":    FONT,
	"fonts":   FONTS,
	"glyph":   GLYPH,
	"glyphs":  GLYPHS,
	"kern":    KERN,
	"lig":     LIG,
	"size":    SIZE,
	"measure": MEASURE,
	"set":     SET,
	"path":    PATH,
	"define":  DEFINE,
	"dict":    DICT,
	"hyph":    HYPH,
	"box":     BOX,
}

// minimum number of arguments per command
var arity = map[int]int{
	FONT: 1, GLYPH: 1, KERN: 2, LIG: 2, SIZE: 1, MEASURE: 1,
	SET: 2, PATH: 1, DEFINE: 2, DICT: 1, HYPH: 1, BOX: 4,
}

func (intp *Intp) parseCommand(line string) (*Command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.New("empty command")
	}
	code, ok := commands[strings.ToLower(fields[0])]
	if !ok {
		return &Command{code: HELP}, fmt.Errorf("unknown command %q, try 'help'", fields[0])
	}
	cmd := &Command{code: code, args: fields[1:]}
	if len(cmd.args) < arity[code] {
		return nil, fmt.Errorf("command %s needs %d arguments", fields[0], arity[code])
	}
	tracer().Debugf("parse command = %v", fields)
	return cmd, nil
}

func (intp *Intp) execute(cmd *Command) (bool, error) {
	switch cmd.code {
	case QUIT:
		return true, nil
	case HELP:
		help(cmd.arg(0))
		return false, nil
	case FONT:
		return false, intp.loadFont(cmd.arg(0), cmd.arg(1))
	case FONTS:
		for _, k := range intp.registry.Fonts() {
			pterm.Println(k)
		}
		return false, nil
	case SIZE:
		size, err := strconv.ParseFloat(cmd.arg(0), 64)
		if err != nil || size <= 0 {
			return false, fmt.Errorf("not a font size: %s", cmd.arg(0))
		}
		intp.size = size
		return false, nil
	case SET:
		p, ok := parameters.ByKey(cmd.arg(0))
		if !ok {
			return false, fmt.Errorf("unknown parameter %q", cmd.arg(0))
		}
		if !intp.regs.Set(p, cmd.text(1)) {
			return false, fmt.Errorf("cannot set %s to %q", p, cmd.text(1))
		}
		return false, nil
	case PATH:
		return false, intp.registry.Catalog().Define(resources.SearchPath, "", cmd.arg(0))
	case DEFINE:
		cat, ok := resources.ParseCategory(cmd.arg(0))
		if !ok {
			return false, fmt.Errorf("unknown resource category %q", cmd.arg(0))
		}
		return false, intp.registry.Catalog().DefineParameter(cat, cmd.text(1))
	case DICT:
		return false, intp.loadDictionary(cmd.arg(0))
	case HYPH:
		return false, intp.hyphenate(cmd.text(0))
	}
	if intp.font == nil {
		return false, errors.New("no font loaded, use 'font <name>'")
	}
	switch cmd.code {
	case GLYPH:
		return false, intp.showGlyph(cmd.arg(0))
	case GLYPHS:
		pterm.Println(strings.Join(intp.font.GlyphNames(), " "))
	case KERN:
		g, ok := intp.font.Glyph(cmd.arg(0))
		if !ok {
			return false, fmt.Errorf("no glyph %s", cmd.arg(0))
		}
		pterm.Printfln("kern %s %s = %d", cmd.arg(0), cmd.arg(1), g.Kerning(cmd.arg(1)))
	case LIG:
		g, ok := intp.font.Glyph(cmd.arg(0))
		if !ok {
			return false, fmt.Errorf("no glyph %s", cmd.arg(0))
		}
		if lig, ok := g.Ligature(cmd.arg(1)); ok {
			pterm.Printfln("lig %s %s = %s (%s)", cmd.arg(0), cmd.arg(1), lig.Substitute, lig.Op)
		} else {
			pterm.Printfln("no ligature for %s %s", cmd.arg(0), cmd.arg(1))
		}
	case MEASURE:
		return false, intp.measure(cmd.text(0))
	case BOX:
		return false, intp.layout(cmd)
	}
	return false, nil
}

func (intp *Intp) loadFont(name, enc string) (err error) {
	intp.font, err = intp.registry.FindFont(name, enc)
	if err == nil {
		pterm.Printfln("loaded %s", fontregistry.Describe(intp.font))
	}
	return
}

func (intp *Intp) loadDictionary(filename string) error {
	r, err := intp.registry.Catalog().Open(filename)
	if err != nil {
		return err
	}
	defer r.Close()
	dict, err := hyphenation.LoadPatterns(r, intp.regs.S(parameters.P_LANGUAGE))
	if err != nil {
		return err
	}
	intp.dict = dict
	pterm.Printfln("loaded hyphenation patterns from %s", filename)
	return nil
}

func (intp *Intp) hyphenate(text string) error {
	if intp.dict == nil {
		if err := intp.loadDictionary(defaultPatterns); err != nil {
			return err
		}
	}
	h := intp.dict.HyphenateText(text)
	pterm.Println(strings.ReplaceAll(h, string(hyphenation.SoftHyphen), "-"))
	return nil
}

// encode converts user input to the input encoding.
func (intp *Intp) encode(text string) ([]byte, *encoding.InputEncoding, error) {
	ie, err := encoding.NewInputEncoding(intp.regs.S(parameters.P_INPUTENCODING))
	if err != nil {
		return nil, nil, err
	}
	b, err := ie.Encode(text)
	return b, ie, err
}

func (intp *Intp) measure(text string) error {
	b, ie, err := intp.encode(text)
	if err != nil {
		return err
	}
	params := glyphing.DefaultParams(intp.size)
	params.Input = ie
	params.Ligatures = intp.regs.B(parameters.P_LIGATURES)
	params.Kerning = intp.regs.B(parameters.P_KERNING)
	params.CharSpacing = intp.regs.D(parameters.P_CHARSPACING).Points()
	shaper := glyphing.NewShaper(intp.font, params)
	seq := shaper.Shape(b)
	names := make([]string, len(seq.Glyphs))
	for i, g := range seq.Glyphs {
		names[i] = g.Name
	}
	pterm.Printfln("glyphs:  %s", strings.Join(names, " "))
	pterm.Printfln("width = %.3f, ascent = %.3f, descent = %.3f", seq.W, seq.H, seq.D)
	return nil
}

func (intp *Intp) showGlyph(name string) error {
	g, ok := intp.font.Glyph(name)
	if !ok {
		return fmt.Errorf("no glyph %s in font %s", name, intp.font.FontName)
	}
	data := pterm.TableData{
		{"Property", "Value"},
		{"code", strconv.Itoa(g.Code)},
		{"width", strconv.Itoa(g.Width)},
		{"bbox", fmt.Sprintf("%v", g.BBox)},
		{"protrusion", fmt.Sprintf("%d %d", g.LeftProtrusion, g.RightProtrusion)},
	}
	for _, lig := range g.Ligatures {
		data = append(data, []string{"ligature", fmt.Sprintf("%s %s %s", lig.Successor, lig.Op, lig.Substitute)})
	}
	for _, k := range g.Kerns {
		data = append(data, []string{"kern", fmt.Sprintf("%s %d", k.Successor, k.Delta)})
	}
	for _, c := range g.Composite {
		data = append(data, []string{"part", fmt.Sprintf("%s %d %d", c.Part, c.DX, c.DY)})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// layout executes 'box <width> <height> <mode> <text>'.
func (intp *Intp) layout(cmd *Command) error {
	w, err1 := strconv.ParseFloat(cmd.arg(0), 64)
	h, err2 := strconv.ParseFloat(cmd.arg(1), 64)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("box dimensions must be numeric")
	}
	text, ie, err := intp.encode(cmd.text(3))
	if err != nil {
		return err
	}
	rec := recorder.New()
	opts := []textbox.Option{
		textbox.WithSize(intp.size),
		textbox.WithRegisters(intp.regs),
		textbox.WithInputEncoding(ie),
		textbox.WithEmitter(rec),
	}
	if intp.regs.B(parameters.P_HYPHENATION) {
		if intp.dict == nil {
			if err := intp.loadDictionary(defaultPatterns); err != nil {
				return err
			}
		}
		opts = append(opts, textbox.WithHyphenator(intp.dict))
	}
	box := textbox.Box{Width: w, Height: h}
	result, err := textbox.Layout(intp.font, text, box, textbox.ParseMode(cmd.arg(2)), opts...)
	if err != nil {
		return err
	}
	data := pterm.TableData{{"#", "x", "y", "width", "+space", "text"}}
	for i, l := range result.Lines {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			fmt.Sprintf("%.2f", l.X),
			fmt.Sprintf("%.2f", l.Y),
			fmt.Sprintf("%.2f", l.Width),
			fmt.Sprintf("%.2f", l.WordSpacing),
			ie.Decode(l.Text),
		})
	}
	if err = pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	pterm.Printfln("unlaid = %d, box height = %.2f", result.Unlaid, result.BoxHeight)
	return rec.WritePostScript(intp.out)
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	switch strings.ToLower(topic) {
	case "box", "layout":
		pterm.Info.Println("box <width> <height> <mode> <text>")
		pterm.Println(`
	Lays out text in a box of the given dimensions (in points), with mode one of
	left, right, center, justify or fulljustify. A height of 0 is unbounded.
	Layout parameters are changed with 'set', e.g.

		set hyphenation on
		set parindent 12pt
		set linenumbermode box
	`)
	case "set", "parameters":
		pterm.Info.Println("set <parameter> <value>")
		pterm.Println(`
	Parameters: language, inputencoding, hyphenation, hyphenminchars, hyphenchar,
	linebreak, parbreak, leading, parindent, numindentlines, parindentskip,
	parskip, linenumbermode, linenumberspace, linenumbersep, ligatures,
	ligaturebreakchar, kerning, charspacing
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	font <name> [encoding]    load a font
	fonts                     list loaded fonts
	glyph <name>              show metrics of a glyph
	glyphs                    list glyphs of the current font
	kern <glyph> <glyph>      show kerning of a pair
	lig <glyph> <glyph>       show ligature of a pair
	size <points>             set the font size
	measure <text>            measure text
	set <parameter> <value>   set a layout parameter (help set)
	path <directory>          add a directory to the search path
	define <category> <n=f>   define a resource, e.g. define FontAFM Times=ptmr.afm
	dict <file>               load hyphenation patterns
	hyph <text>               hyphenate text
	box <w> <h> <mode> <text> lay out text in a box (help box)
	quit
	`)
	}
}
