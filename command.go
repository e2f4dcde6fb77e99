package mdpress

import (
	"strconv"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Tool   string   // executable
	Args   []string // arguments, without the executable
	Input  string   // file the tool reads, for diagnostics
	Output string   // file the tool writes, empty when unknown
}

// Argv returns the full argument vector, executable first.
func (c Command) Argv() []string {
	return append([]string{c.Tool}, c.Args...)
}

// String renders the command the way a shell user would type it. Arguments
// containing whitespace or quotes are quoted.
func (c Command) String() string {
	argv := c.Argv()
	parts := make([]string, len(argv))
	for i, a := range argv {
		if a == "" || strings.ContainsAny(a, " \t\n\"'") {
			a = strconv.Quote(a)
		}
		parts[i] = a
	}
	return strings.Join(parts, " ")
}

// BuildCommand maps a resolved configuration and one target format to the
// converter invocation producing it. It has no side effects: the same inputs
// always give the same command.
func BuildCommand(cfg BuildConfig, f Format) Command {
	switch f {
	case FormatEPUB:
		return epubCommand(cfg)
	case FormatMOBI:
		return mobiCommand(cfg)
	default:
		return latexCommand(cfg, f)
	}
}

// latexCommand builds the pandoc call shared by the tex and pdf targets; only
// the output extension differs.
func latexCommand(cfg BuildConfig, f Format) Command {
	o := cfg.Options
	args := []string{"-s", "--quiet"}

	if o.SectionNumbers {
		args = append(args, "-N")
	}
	args = append(args, "--template", o.Template)
	args = appendTOC(args, o.TOCLevel)
	args = append(args,
		"-V", "geometry:margin="+FormatMargin(o.Margins)+"in",
		"--resource-path", o.ResourcePath,
	)

	if o.SectionNewpage {
		args = appendVar(args, "newpagebeforesection", "True")
	}
	if o.TitleNewpage {
		args = appendVar(args, "newpageaftertitlepage", "True")
	}
	if o.BodyNewpage {
		args = appendVar(args, "newpagebeforebody", "True")
	}
	if o.FiguresTables {
		args = appendVar(args, "lot", "True")
		args = appendVar(args, "lof", "True")
	}
	if o.Fancy {
		args = appendVar(args, "fancyheaderfooter", "True")
	}
	if o.Datestamp != "" {
		args = appendVar(args, "date", o.Datestamp)
	}

	out := OutputPath(cfg.InputPath, f.Extension())
	args = append(args, "-o", out, cfg.InputPath)

	return Command{Tool: cfg.Tools.Pandoc, Args: args, Input: cfg.InputPath, Output: out}
}

// epubCommand builds the pandoc call for epub. It ignores the LaTeX layout
// variables (margins, resource path, page breaks).
func epubCommand(cfg BuildConfig) Command {
	o := cfg.Options
	args := []string{"-s"}

	if o.CoverImage != "" {
		args = append(args, "--epub-cover-image="+o.CoverImage)
	}
	args = append(args, "--epub-stylesheet="+o.Stylesheet)
	args = appendTOC(args, o.TOCLevel)

	out := OutputPath(cfg.InputPath, FormatEPUB.Extension())
	args = append(args, "-t", "epub3", "-o", out, cfg.InputPath)

	return Command{Tool: cfg.Tools.Pandoc, Args: args, Input: cfg.InputPath, Output: out}
}

// mobiCommand transcodes the epub artifact; kindlegen writes the .mobi next
// to it.
func mobiCommand(cfg BuildConfig) Command {
	epub := OutputPath(cfg.InputPath, FormatEPUB.Extension())
	return Command{
		Tool:   cfg.Tools.Kindlegen,
		Args:   []string{epub},
		Input:  epub,
		Output: OutputPath(cfg.InputPath, FormatMOBI.Extension()),
	}
}

func appendTOC(args []string, level int) []string {
	if level <= 0 {
		return args
	}
	return append(args, "--toc", "--toc-depth", strconv.Itoa(level))
}

func appendVar(args []string, key, value string) []string {
	return append(args, "-V", key+"="+value)
}

// FormatMargin renders inches in the shortest form: 0.7 -> "0.7", 1 -> "1".
func FormatMargin(inches float64) string {
	return strconv.FormatFloat(inches, 'f', -1, 64)
}
