package mdpress

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdpress/internal/dateutil"
	"github.com/alnah/go-mdpress/internal/fileutil"
)

// MaxTOCLevel is the deepest heading level pandoc can list.
const MaxTOCLevel = 6

// Request holds the typed command-line values of one invocation, before
// defaults and derived rules apply.
type Request struct {
	Filename string // empty = autodetect in the working directory
	Stdin    bool

	TeX, PDF, EPUB, MOBI    bool
	Open, Clean, CleanLight bool
	Verbose                 bool

	SectionNumbers bool
	Template       string   // overrides both the TeX template and the EPUB stylesheet
	TOCLevel       int      // 0 = no table of contents
	Margins        *float64 // nil = default
	CoverImage     string
	ResourcePath   string // empty = default
	SectionNewpage bool
	TitleNewpage   bool
	BodyNewpage    bool
	Fancy          bool
	FiguresTables  bool
	DatestampToday bool
}

// Defaults are the values substituted for options the request leaves unset.
// Paths may start with "~".
type Defaults struct {
	InputExt        string
	Template        string
	Stylesheet      string
	ResourcePath    string
	Margins         float64
	DatestampFormat string
	Tools           Tools
}

// StandardDefaults returns the built-in defaults.
func StandardDefaults() Defaults {
	return Defaults{
		InputExt:        ".txt",
		Template:        "~/bin/mdtemplate.tex",
		Stylesheet:      "~/bin/mdtemplate.css",
		ResourcePath:    "~/",
		Margins:         0.7,
		DatestampFormat: dateutil.DefaultFormat,
		Tools:           DefaultTools(),
	}
}

// NoInputError reports a failed input autodetection.
type NoInputError struct {
	Dir string // directory scanned
	Ext string // suffix looked for
	Err error  // directory read error, if any
}

func (e *NoInputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: scanning %s: %v", ErrNoInput, e.Dir, e.Err)
	}
	return fmt.Sprintf("%v: no *%s file in %s", ErrNoInput, e.Ext, e.Dir)
}

func (e *NoInputError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrNoInput) true for any NoInputError.
func (e *NoInputError) Is(target error) bool { return target == ErrNoInput }

// Resolver turns a Request into a BuildConfig.
type Resolver struct {
	Dir      string // directory scanned for input; "" = current directory
	Home     string // expansion of "~"; "" leaves "~" untouched
	Now      func() time.Time
	ReadDir  func(name string) ([]fs.DirEntry, error)
	Defaults Defaults
}

// NewResolver returns a Resolver for the current directory and user.
func NewResolver(defaults Defaults) *Resolver {
	home, _ := os.UserHomeDir()
	return &Resolver{
		Home:     home,
		Now:      time.Now,
		ReadDir:  os.ReadDir,
		Defaults: defaults,
	}
}

// Resolve applies input discovery, defaulting and the derived target rules.
// A returned error is fatal: no conversion should start.
func (r *Resolver) Resolve(req Request) (BuildConfig, error) {
	input := req.Filename
	if input == "" {
		var err error
		if input, err = r.findInput(); err != nil {
			return BuildConfig{}, err
		}
	}

	opts, err := r.resolveOptions(req)
	if err != nil {
		return BuildConfig{}, err
	}

	return BuildConfig{
		InputPath: input,
		Targets:   resolveTargets(req),
		Actions:   resolveActions(req),
		Options:   opts,
		Tools:     r.Defaults.Tools,
		Verbose:   req.Verbose,
		Stdin:     req.Stdin,
	}, nil
}

// findInput returns the first entry of the scanned directory whose name ends
// with the input extension. os.ReadDir sorts by name, so "first" is
// lexical order.
func (r *Resolver) findInput() (string, error) {
	dir := r.Dir
	if dir == "" {
		dir = "."
	}
	ext := r.Defaults.InputExt
	readDir := r.ReadDir
	if readDir == nil {
		readDir = os.ReadDir
	}

	entries, err := readDir(dir)
	if err != nil {
		return "", &NoInputError{Dir: dir, Ext: ext, Err: err}
	}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		if r.Dir == "" {
			return e.Name(), nil
		}
		return filepath.Join(r.Dir, e.Name()), nil
	}
	return "", &NoInputError{Dir: dir, Ext: ext}
}

func (r *Resolver) resolveOptions(req Request) (Options, error) {
	d := r.Defaults

	margins := d.Margins
	if req.Margins != nil {
		margins = *req.Margins
	}
	if margins <= 0 {
		return Options{}, fmt.Errorf("%w: %g (must be positive inches)", ErrInvalidMargin, margins)
	}
	if req.TOCLevel < 0 || req.TOCLevel > MaxTOCLevel {
		return Options{}, fmt.Errorf("%w: %d (must be between 0 and %d)", ErrInvalidTOCLevel, req.TOCLevel, MaxTOCLevel)
	}

	template, stylesheet := d.Template, d.Stylesheet
	if req.Template != "" {
		template, stylesheet = req.Template, req.Template
	}
	resourcePath := d.ResourcePath
	if req.ResourcePath != "" {
		resourcePath = req.ResourcePath
	}

	var datestamp string
	if req.DatestampToday {
		now := time.Now
		if r.Now != nil {
			now = r.Now
		}
		stamp, err := dateutil.Stamp(d.DatestampFormat, now())
		if err != nil {
			return Options{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
		}
		datestamp = stamp
	}

	return Options{
		SectionNumbers: req.SectionNumbers,
		Template:       r.expand(template),
		Stylesheet:     r.expand(stylesheet),
		TOCLevel:       req.TOCLevel,
		Margins:        margins,
		CoverImage:     r.expand(req.CoverImage),
		ResourcePath:   r.expand(resourcePath),
		SectionNewpage: req.SectionNewpage,
		TitleNewpage:   req.TitleNewpage,
		BodyNewpage:    req.BodyNewpage,
		Fancy:          req.Fancy,
		FiguresTables:  req.FiguresTables,
		Datestamp:      datestamp,
	}, nil
}

func (r *Resolver) expand(path string) string {
	if r.Home == "" {
		return path
	}
	return fileutil.ExpandHome(path, r.Home)
}

// resolveTargets applies the default-to-PDF rule, which only fires when no
// clean action was asked for either, and the MOBI-needs-EPUB rule.
func resolveTargets(req Request) []Format {
	tex, pdf, epub, mobi := req.TeX, req.PDF, req.EPUB, req.MOBI
	if !tex && !pdf && !epub && !mobi && !req.Clean && !req.CleanLight {
		pdf = true
	}
	if mobi {
		epub = true
	}

	var targets []Format
	for _, t := range []struct {
		on bool
		f  Format
	}{{tex, FormatTeX}, {pdf, FormatPDF}, {epub, FormatEPUB}, {mobi, FormatMOBI}} {
		if t.on {
			targets = append(targets, t.f)
		}
	}
	return targets
}

func resolveActions(req Request) []Action {
	var actions []Action
	if req.Open {
		actions = append(actions, ActionOpen)
	}
	if req.Clean {
		actions = append(actions, ActionClean)
	}
	if req.CleanLight {
		actions = append(actions, ActionCleanLight)
	}
	return actions
}
