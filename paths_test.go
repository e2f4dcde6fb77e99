package mdpress

// Notes:
// - Paths use forward slashes; filepath.Ext and filepath.Dir behave the same on
//   all platforms for these inputs except InputDir on Windows separators,
//   which is not tested.
// No other coverage gaps.

import "testing"

// ---------------------------------------------------------------------------
// TestSplitExt - Base and extension split
// ---------------------------------------------------------------------------

func TestSplitExt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		wantBase string
		wantExt  string
	}{
		{"report.txt", "report", ".txt"},
		{"docs/report.txt", "docs/report", ".txt"},
		{"/abs/book.md", "/abs/book", ".md"},
		{"archive.tar.gz", "archive.tar", ".gz"},
		{"README", "README", ""},
		{".profile", ".profile", ""},
		{"docs/.hidden", "docs/.hidden", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			base, ext := SplitExt(tt.in)
			if base != tt.wantBase || ext != tt.wantExt {
				t.Errorf("SplitExt(%q) = (%q, %q), want (%q, %q)", tt.in, base, ext, tt.wantBase, tt.wantExt)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestOutputPath - Extension replacement per format
// ---------------------------------------------------------------------------

func TestOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		format Format
		want   string
	}{
		{"report.txt", FormatPDF, "report.pdf"},
		{"report.txt", FormatTeX, "report.tex"},
		{"report.txt", FormatEPUB, "report.epub"},
		{"report.txt", FormatMOBI, "report.mobi"},
		{"notes/ch1.md", FormatPDF, "notes/ch1.pdf"},
		{"README", FormatPDF, "README.pdf"},
	}

	for _, tt := range tests {
		t.Run(tt.input+"_"+tt.format.String(), func(t *testing.T) {
			t.Parallel()

			if got := OutputPath(tt.input, tt.format.Extension()); got != tt.want {
				t.Errorf("OutputPath(%q, %s) = %q, want %q", tt.input, tt.format, got, tt.want)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestInputDir - Clean directory
// ---------------------------------------------------------------------------

func TestInputDir(t *testing.T) {
	t.Parallel()

	if got := InputDir("report.txt"); got != "." {
		t.Errorf("InputDir(bare) = %q, want %q", got, ".")
	}
	if got := InputDir("docs/report.txt"); got != "docs" {
		t.Errorf("InputDir(docs/report.txt) = %q, want %q", got, "docs")
	}
}

// ---------------------------------------------------------------------------
// TestFormat_String - Names and extensions
// ---------------------------------------------------------------------------

func TestFormat_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f        Format
		wantName string
		wantExt  string
	}{
		{FormatTeX, "tex", ".tex"},
		{FormatPDF, "pdf", ".pdf"},
		{FormatEPUB, "epub", ".epub"},
		{FormatMOBI, "mobi", ".mobi"},
		{Format(99), "unknown", ""},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.wantName {
			t.Errorf("Format(%d).String() = %q, want %q", tt.f, got, tt.wantName)
		}
		if got := tt.f.Extension(); got != tt.wantExt {
			t.Errorf("Format(%d).Extension() = %q, want %q", tt.f, got, tt.wantExt)
		}
	}
}
