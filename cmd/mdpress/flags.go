package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that are not about rendering.
type commonFlags struct {
	config  string
	stdin   bool
	verbose bool
	strict  bool
}

// formatFlags selects output formats.
type formatFlags struct {
	tex  bool
	pdf  bool
	epub bool
	mobi bool
}

// renderFlags holds pandoc layout flags.
type renderFlags struct {
	sectionNumbers bool
	template       string
	tocLevel       int
	margins        float64
	coverImage     string
	resourcePath   string
	sectionNewpage bool
	titleNewpage   bool
	bodyNewpage    bool
	fancy          bool
	figuresTables  bool
	datestampToday bool
}

// actionFlags holds post-build actions.
type actionFlags struct {
	open       bool
	clean      bool
	cleanLight bool
}

// infoFlags short-circuit the build.
type infoFlags struct {
	help        bool
	version     bool
	printConfig bool
	doctor      bool
	json        bool
}

// cliFlags holds every flag of the mdpress command.
type cliFlags struct {
	common  commonFlags
	format  formatFlags
	render  renderFlags
	actions actionFlags
	info    infoFlags

	changed map[string]bool // flags set on the command line
}

// isSet reports whether name was given on the command line.
func (f *cliFlags) isSet(name string) bool {
	return f.changed[name]
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVar(&f.config, "config", "", "config file name or path")
	fs.BoolVarP(&f.stdin, "stdin", "i", false, "accept stdin (recorded only)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "echo commands and progress")
	fs.BoolVar(&f.strict, "strict", false, "exit 4 when any conversion or action failed")
}

// addFormatFlags adds output format flags to a FlagSet.
func addFormatFlags(fs *flag.FlagSet, f *formatFlags) {
	fs.BoolVarP(&f.tex, "tex", "t", false, "produce LaTeX")
	fs.BoolVarP(&f.pdf, "pdf", "p", false, "produce PDF (default when no format is given)")
	fs.BoolVarP(&f.epub, "epub", "e", false, "produce EPUB")
	fs.BoolVarP(&f.mobi, "mobi", "m", false, "produce MOBI (implies --epub)")
}

// addRenderFlags adds layout flags to a FlagSet.
func addRenderFlags(fs *flag.FlagSet, f *renderFlags) {
	fs.BoolVarP(&f.sectionNumbers, "section-numbers", "N", false, "number sections")
	fs.StringVarP(&f.template, "template", "P", "", "template for tex/pdf, also used as epub stylesheet")
	fs.IntVarP(&f.tocLevel, "toc-level", "T", 0, "table of contents depth (0 = none, max 6)")
	fs.Float64VarP(&f.margins, "margins", "Z", 0, "page margins in inches (default 0.7)")
	fs.StringVarP(&f.coverImage, "cover-image", "I", "", "epub cover image")
	fs.StringVarP(&f.resourcePath, "resource-path", "r", "", "pandoc resource path (default ~/)")
	fs.BoolVarP(&f.sectionNewpage, "section-newpage", "S", false, "new page before each section")
	fs.BoolVarP(&f.titleNewpage, "title-newpage", "X", false, "new page after the title page")
	fs.BoolVarP(&f.bodyNewpage, "body-newpage", "Y", false, "new page before the body")
	fs.BoolVarP(&f.fancy, "fancy", "F", false, "fancy headers and footers")
	fs.BoolVarP(&f.figuresTables, "figures-tables", "Q", false, "lists of figures and tables")
	fs.BoolVarP(&f.datestampToday, "datestamp-today", "D", false, "set the document date to today")
}

// addActionFlags adds post-build action flags to a FlagSet.
func addActionFlags(fs *flag.FlagSet, f *actionFlags) {
	fs.BoolVarP(&f.open, "open", "o", false, "open the primary output")
	fs.BoolVarP(&f.clean, "clean", "c", false, "remove intermediate and output files")
	fs.BoolVarP(&f.cleanLight, "clean-light", "C", false, "remove intermediate files only")
}

// addInfoFlags adds flags that print information and exit.
func addInfoFlags(fs *flag.FlagSet, f *infoFlags) {
	fs.BoolVarP(&f.help, "help", "h", false, "show help")
	fs.BoolVar(&f.version, "version", false, "show version")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML")
	fs.BoolVar(&f.doctor, "doctor", false, "check that the external tools are installed")
	fs.BoolVar(&f.json, "json", false, "with --doctor, print JSON")
}

// newFlagSet registers every flag group on a fresh FlagSet.
func newFlagSet(f *cliFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("mdpress", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addFormatFlags(fs, &f.format)
	addRenderFlags(fs, &f.render)
	addActionFlags(fs, &f.actions)
	addCommonFlags(fs, &f.common)
	addInfoFlags(fs, &f.info)
	return fs
}

// parseFlags parses args (without the program name) and returns the
// positional arguments.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{changed: make(map[string]bool)}
	fs := newFlagSet(f)

	if err := fs.Parse(args); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}
	fs.Visit(func(fl *flag.Flag) { f.changed[fl.Name] = true })

	return f, fs.Args(), nil
}
