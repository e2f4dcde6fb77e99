package mdpress

// Notes:
// - BuildCommand is pure; every test builds a BuildConfig literal and compares
//   argument vectors exactly, so flag order is part of the contract.
// No coverage gaps.

import (
	"reflect"
	"slices"
	"testing"
)

// testConfig returns a resolved configuration with fixed, home-free paths.
func testConfig(input string, targets ...Format) BuildConfig {
	return BuildConfig{
		InputPath: input,
		Targets:   targets,
		Tools:     DefaultTools(),
		Options: Options{
			Template:     "/home/ada/bin/mdtemplate.tex",
			Stylesheet:   "/home/ada/bin/mdtemplate.css",
			Margins:      0.7,
			ResourcePath: "/home/ada/",
		},
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_LaTeX - Base invocation for tex and pdf
// ---------------------------------------------------------------------------

func TestBuildCommand_LaTeX(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format Format
		out    string
	}{
		{"tex", FormatTeX, "report.tex"},
		{"pdf", FormatPDF, "report.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := BuildCommand(testConfig("report.txt", tt.format), tt.format)

			want := []string{
				"pandoc", "-s", "--quiet",
				"--template", "/home/ada/bin/mdtemplate.tex",
				"-V", "geometry:margin=0.7in",
				"--resource-path", "/home/ada/",
				"-o", tt.out, "report.txt",
			}
			if got := cmd.Argv(); !reflect.DeepEqual(got, want) {
				t.Errorf("Argv() =\n  %q\nwant\n  %q", got, want)
			}
			if cmd.Output != tt.out {
				t.Errorf("Output = %q, want %q", cmd.Output, tt.out)
			}
			if cmd.Input != "report.txt" {
				t.Errorf("Input = %q, want %q", cmd.Input, "report.txt")
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_AllLayoutOptions - Optional variables in order
// ---------------------------------------------------------------------------

func TestBuildCommand_AllLayoutOptions(t *testing.T) {
	t.Parallel()

	cfg := testConfig("docs/report.txt", FormatPDF)
	cfg.Options.SectionNumbers = true
	cfg.Options.TOCLevel = 3
	cfg.Options.Margins = 1.2
	cfg.Options.SectionNewpage = true
	cfg.Options.TitleNewpage = true
	cfg.Options.BodyNewpage = true
	cfg.Options.FiguresTables = true
	cfg.Options.Fancy = true
	cfg.Options.Datestamp = "2026-10-17"
	cfg.Options.CoverImage = "cover.png" // epub only

	want := []string{
		"pandoc", "-s", "--quiet", "-N",
		"--template", "/home/ada/bin/mdtemplate.tex",
		"--toc", "--toc-depth", "3",
		"-V", "geometry:margin=1.2in",
		"--resource-path", "/home/ada/",
		"-V", "newpagebeforesection=True",
		"-V", "newpageaftertitlepage=True",
		"-V", "newpagebeforebody=True",
		"-V", "lot=True",
		"-V", "lof=True",
		"-V", "fancyheaderfooter=True",
		"-V", "date=2026-10-17",
		"-o", "docs/report.pdf", "docs/report.txt",
	}

	if got := BuildCommand(cfg, FormatPDF).Argv(); !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() =\n  %q\nwant\n  %q", got, want)
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_Margins - Geometry variable formatting
// ---------------------------------------------------------------------------

func TestBuildCommand_Margins(t *testing.T) {
	t.Parallel()

	tests := []struct {
		margins float64
		want    string
	}{
		{0.7, "geometry:margin=0.7in"},
		{1.2, "geometry:margin=1.2in"},
		{1, "geometry:margin=1in"},
		{0.25, "geometry:margin=0.25in"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			t.Parallel()

			cfg := testConfig("report.txt", FormatPDF)
			cfg.Options.Margins = tt.margins
			argv := BuildCommand(cfg, FormatPDF).Argv()
			if !slices.Contains(argv, tt.want) {
				t.Errorf("Argv() = %q, want it to contain %q", argv, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_EPUB - Independent, smaller invocation
// ---------------------------------------------------------------------------

func TestBuildCommand_EPUB(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		want := []string{
			"pandoc", "-s",
			"--epub-stylesheet=/home/ada/bin/mdtemplate.css",
			"-t", "epub3",
			"-o", "report.epub", "report.txt",
		}
		got := BuildCommand(testConfig("report.txt", FormatEPUB), FormatEPUB).Argv()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() =\n  %q\nwant\n  %q", got, want)
		}
	})

	t.Run("cover and toc, no latex variables", func(t *testing.T) {
		t.Parallel()

		cfg := testConfig("report.txt", FormatEPUB)
		cfg.Options.CoverImage = "cover.png"
		cfg.Options.TOCLevel = 2
		cfg.Options.Fancy = true
		cfg.Options.SectionNewpage = true
		cfg.Options.Datestamp = "2026-10-17"

		want := []string{
			"pandoc", "-s",
			"--epub-cover-image=cover.png",
			"--epub-stylesheet=/home/ada/bin/mdtemplate.css",
			"--toc", "--toc-depth", "2",
			"-t", "epub3",
			"-o", "report.epub", "report.txt",
		}
		got := BuildCommand(cfg, FormatEPUB).Argv()
		if !reflect.DeepEqual(got, want) {
			t.Errorf("Argv() =\n  %q\nwant\n  %q", got, want)
		}
	})
}

// ---------------------------------------------------------------------------
// TestBuildCommand_MOBI - Transcode of the epub artifact
// ---------------------------------------------------------------------------

func TestBuildCommand_MOBI(t *testing.T) {
	t.Parallel()

	cfg := testConfig("books/novel.txt", FormatEPUB, FormatMOBI)
	cfg.Tools.Kindlegen = "/opt/kindlegen"

	cmd := BuildCommand(cfg, FormatMOBI)
	want := []string{"/opt/kindlegen", "books/novel.epub"}
	if got := cmd.Argv(); !reflect.DeepEqual(got, want) {
		t.Errorf("Argv() = %q, want %q", got, want)
	}
	if cmd.Input != "books/novel.epub" {
		t.Errorf("Input = %q, want the epub path", cmd.Input)
	}
	if cmd.Output != "books/novel.mobi" {
		t.Errorf("Output = %q, want %q", cmd.Output, "books/novel.mobi")
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_Deterministic - Same input, same vector
// ---------------------------------------------------------------------------

func TestBuildCommand_Deterministic(t *testing.T) {
	t.Parallel()

	cfg := testConfig("report.txt", FormatTeX, FormatPDF, FormatEPUB, FormatMOBI)
	cfg.Options.TOCLevel = 2
	cfg.Options.Datestamp = "2026-10-17"

	for _, f := range cfg.Targets {
		first := BuildCommand(cfg, f)
		second := BuildCommand(cfg, f)
		if !reflect.DeepEqual(first, second) {
			t.Errorf("BuildCommand(%s) not deterministic: %q vs %q", f, first.Argv(), second.Argv())
		}
	}
}

// ---------------------------------------------------------------------------
// TestBuildCommand_TemplateOverride - A user template feeds both builders
// ---------------------------------------------------------------------------

func TestBuildCommand_TemplateOverride(t *testing.T) {
	t.Parallel()

	cfg := testConfig("report.txt", FormatPDF, FormatEPUB)
	cfg.Options.Template = "my.tex"
	cfg.Options.Stylesheet = "my.tex"

	pdf := BuildCommand(cfg, FormatPDF).Argv()
	if !slices.Contains(pdf, "my.tex") {
		t.Errorf("pdf Argv() = %q, want template my.tex", pdf)
	}
	epub := BuildCommand(cfg, FormatEPUB).Argv()
	if !slices.Contains(epub, "--epub-stylesheet=my.tex") {
		t.Errorf("epub Argv() = %q, want stylesheet my.tex", epub)
	}
}

// ---------------------------------------------------------------------------
// TestCommand_String - Verbose echo quoting
// ---------------------------------------------------------------------------

func TestCommand_String(t *testing.T) {
	t.Parallel()

	c := Command{Tool: "pandoc", Args: []string{"-o", "my report.pdf", "-V", "date="}}
	want := `pandoc -o "my report.pdf" -V date=`
	if got := c.String(); got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	empty := Command{Tool: "kindlegen", Args: []string{""}}
	if got := empty.String(); got != `kindlegen ""` {
		t.Errorf("String() = %q, want %q", got, `kindlegen ""`)
	}
}
