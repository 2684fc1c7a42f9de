package main

import (
	"flag"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/lolml/lolml/core"
	"github.com/lolml/lolml/engine/htmlgen"
	"github.com/lolml/lolml/engine/semantic"
	"github.com/lolml/lolml/lang/parser"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'lolml.cli'
func tracer() tracing.Trace {
	return tracing.Select("lolml.cli")
}

func main() {
	initDisplay()

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	outname := flag.String("o", "", "Output file (default: input with .html extension)")
	open := flag.Bool("open", false, "Open the generated HTML in a browser")
	interactive := flag.Bool("i", false, "Interactive mode: compile snippets from a prompt")
	flag.Parse()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":      "go",
		"trace.lolml.cli":      *tlevel,
		"trace.lolml.lang":     *tlevel,
		"trace.lolml.semantic": *tlevel,
		"trace.lolml.gen":      *tlevel,
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	if *interactive {
		repl()
		return
	}

	if flag.NArg() != 1 {
		pterm.Error.Println("Usage: lolml [-o out.html] [-open] <file.lol>")
		os.Exit(2)
	}
	input := flag.Arg(0)
	if err := compileFile(input, *outname, *open); err != nil {
		core.UserError(err)
		os.Exit(1)
	}
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " lol ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// compile runs the full pipeline on in-memory source: parse, semantic
// check, HTML generation. The first error aborts the compilation; there is
// no partial output.
func compile(source string) (string, error) {
	p, err := parser.New(source)
	if err != nil {
		return "", err
	}
	nodes, err := p.ParseDocument()
	if err != nil {
		return "", err
	}
	checked, err := semantic.New(nodes).Check()
	if err != nil {
		return "", err
	}
	return htmlgen.New().GenerateString(checked)
}

// compileFile reads a .lol source file, compiles it and writes the HTML
// next to it (or to outname, if given).
func compileFile(input, outname string, open bool) error {
	source, err := os.ReadFile(input)
	if err != nil {
		return core.WrapError(err, core.EMISSING, "cannot read input file %s", input)
	}
	htmltext, err := compile(string(source))
	if err != nil {
		return err
	}
	if outname == "" {
		ext := filepath.Ext(input)
		outname = strings.TrimSuffix(input, ext) + ".html"
	}
	if err := os.WriteFile(outname, []byte(htmltext), 0644); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write output file %s", outname)
	}
	pterm.Info.Println("Generated: " + outname)
	if open {
		openInBrowser(outname)
	}
	return nil
}

// openInBrowser launches the platform's default browser on the generated
// file. Failures are traced, not fatal.
func openInBrowser(path string) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	fileURL := "file://" + filepath.ToSlash(abs)
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "windows":
		cmd = exec.Command("cmd", "/C", "start", "", fileURL)
	case "darwin":
		cmd = exec.Command("open", fileURL)
	default:
		cmd = exec.Command("xdg-open", fileURL)
	}
	if err := cmd.Start(); err != nil {
		tracer().Errorf("cannot open browser: %s", err)
	}
}
