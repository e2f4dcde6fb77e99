package mdpress

import "slices"

// Format is an output document format mdpress can produce.
type Format int

// Formats in build order. MOBI comes last because it is transcoded from the
// EPUB artifact.
const (
	FormatTeX Format = iota
	FormatPDF
	FormatEPUB
	FormatMOBI
)

var formatInfo = [...]struct {
	name string
	ext  string
}{
	FormatTeX:  {"tex", ".tex"},
	FormatPDF:  {"pdf", ".pdf"},
	FormatEPUB: {"epub", ".epub"},
	FormatMOBI: {"mobi", ".mobi"},
}

func (f Format) String() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return "unknown"
	}
	return formatInfo[f].name
}

// Extension returns the output file extension, dot included.
func (f Format) Extension() string {
	if f < 0 || int(f) >= len(formatInfo) {
		return ""
	}
	return formatInfo[f].ext
}

// Action is a post-build step.
type Action int

// Actions in execution order: open before any cleaning so the viewer gets
// the file first.
const (
	ActionOpen Action = iota
	ActionClean
	ActionCleanLight
)

func (a Action) String() string {
	switch a {
	case ActionOpen:
		return "open"
	case ActionClean:
		return "clean"
	case ActionCleanLight:
		return "clean-light"
	default:
		return "unknown"
	}
}

// Tools names the external executables.
type Tools struct {
	Pandoc    string
	Kindlegen string
	Open      string // empty = OS default opener
}

// DefaultTools returns executables looked up on PATH.
func DefaultTools() Tools {
	return Tools{Pandoc: "pandoc", Kindlegen: "kindlegen"}
}

// Options are the resolved pandoc rendering options. Every field carries its
// final value; the command builder never applies defaults.
type Options struct {
	SectionNumbers bool
	Template       string  // TeX template for tex/pdf
	Stylesheet     string  // CSS for epub
	TOCLevel       int     // 0 = no table of contents
	Margins        float64 // inches
	CoverImage     string  // epub only, empty = none
	ResourcePath   string
	SectionNewpage bool
	TitleNewpage   bool
	BodyNewpage    bool
	Fancy          bool
	FiguresTables  bool
	Datestamp      string // empty = keep the document's own date
}

// BuildConfig is the resolved configuration of one invocation. It is built
// once by Resolver.Resolve and only read afterwards.
type BuildConfig struct {
	InputPath string
	Targets   []Format // ordered TeX, PDF, EPUB, MOBI
	Actions   []Action // ordered open, clean, clean-light
	Options   Options
	Tools     Tools
	Verbose   bool
	Stdin     bool
}

// Has reports whether f is a requested target.
func (c BuildConfig) Has(f Format) bool {
	return slices.Contains(c.Targets, f)
}

// Wants reports whether a is a requested post-build action.
func (c BuildConfig) Wants(a Action) bool {
	return slices.Contains(c.Actions, a)
}
