/*
Command pstextcli is an interactive shell to inspect AFM fonts and to try out
text layout.

Start it with

	pstextcli -font Times-Roman -path /usr/share/fonts/type1/gsfonts

and type 'help' for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/pstext/core/font/fontregistry"
	"github.com/npillmayer/pstext/core/locate/resources"
	"github.com/npillmayer/pstext/core/parameters"
	"github.com/npillmayer/schuko/gconf"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'pstext.cli'
func tracer() tracing.Trace {
	return tracing.Select("pstext.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontname := flag.String("font", "", "Font to load")
	encname := flag.String("encoding", "", "Font encoding to use")
	searchpath := flag.String("path", "", "Resource search path")
	datadir := flag.String("data", "", "Data directory")
	flag.Parse()

	// set up configuration and logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":          "go",
		"app-key":                  "pstext",
		"trace.pstext.cli":         *tlevel,
		"trace.pstext.fonts":       *tlevel,
		"trace.pstext.layout":      *tlevel,
		"trace.pstext.glyphs":      *tlevel,
		"trace.pstext.core":        *tlevel,
		"trace.pstext.backend":     *tlevel,
		"trace.pstext.hyphenation": *tlevel,
		"trace.pstext.resources":   *tlevel,
	}
	if *searchpath != "" {
		conf["resource-path"] = *searchpath
	}
	if *datadir != "" {
		conf["data-dir"] = *datadir
	}
	gconf.Initialize(conf)
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())
	pterm.Info.Println("Welcome to the PostScript text CLI") // colored welcome message
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up REPL
	repl, err := readline.New("pstext > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	regs := parameters.NewTypesettingRegisters()
	intp := NewIntp(fontregistry.NewRegistry(resources.GlobalCatalog(), regs), regs)
	intp.repl = repl
	//
	// load font to use
	if *fontname != "" {
		if err := intp.loadFont(*fontname, *encname); err != nil { // font name provided by flag
			tracer().Errorf(err.Error())
			os.Exit(4)
		}
	}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp.REPL()                            // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
