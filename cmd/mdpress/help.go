package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdpress [flags] [filename]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert a text or Markdown document with pandoc (and kindlegen for MOBI).")
	fmt.Fprintln(w, "Without a filename, the first *.txt file of the current directory is used.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formats (default: pdf):")
	fmt.Fprintln(w, "  -t, --tex                 LaTeX")
	fmt.Fprintln(w, "  -p, --pdf                 PDF")
	fmt.Fprintln(w, "  -e, --epub                EPUB")
	fmt.Fprintln(w, "  -m, --mobi                MOBI (implies --epub)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Layout:")
	fmt.Fprintln(w, "  -N, --section-numbers     Number sections")
	fmt.Fprintln(w, "  -P, --template <path>     Template for tex/pdf, stylesheet for epub")
	fmt.Fprintln(w, "  -T, --toc-level <n>       Table of contents depth (0 = none, max 6)")
	fmt.Fprintln(w, "  -Z, --margins <f>         Margins in inches (default 0.7)")
	fmt.Fprintln(w, "  -I, --cover-image <path>  EPUB cover image")
	fmt.Fprintln(w, "  -r, --resource-path <p>   Pandoc resource path (default ~/)")
	fmt.Fprintln(w, "  -S, --section-newpage     New page before each section")
	fmt.Fprintln(w, "  -X, --title-newpage       New page after the title page")
	fmt.Fprintln(w, "  -Y, --body-newpage        New page before the body")
	fmt.Fprintln(w, "  -F, --fancy               Fancy headers and footers")
	fmt.Fprintln(w, "  -Q, --figures-tables      Lists of figures and tables")
	fmt.Fprintln(w, "  -D, --datestamp-today     Set the document date to today")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Actions (after building):")
	fmt.Fprintln(w, "  -o, --open                Open the primary output")
	fmt.Fprintln(w, "  -c, --clean               Remove intermediate and output files")
	fmt.Fprintln(w, "  -C, --clean-light         Remove intermediate files only")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other:")
	fmt.Fprintln(w, "      --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -i, --stdin               Accept stdin (recorded only)")
	fmt.Fprintln(w, "  -v, --verbose             Echo commands and progress")
	fmt.Fprintln(w, "      --strict              Exit 4 when any step failed")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration as YAML")
	fmt.Fprintln(w, "      --doctor [--json]     Check that pandoc and kindlegen are installed")
	fmt.Fprintln(w, "      --version             Show version")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDPRESS_CONFIG            Config file name or path")
	fmt.Fprintln(w, "  MDPRESS_TEMPLATE          Default TeX template")
	fmt.Fprintln(w, "  MDPRESS_STYLESHEET        Default EPUB stylesheet")
	fmt.Fprintln(w, "  MDPRESS_RESOURCE_PATH     Default pandoc resource path")
	fmt.Fprintln(w, "  MDPRESS_PANDOC            pandoc executable")
	fmt.Fprintln(w, "  MDPRESS_KINDLEGEN         kindlegen executable")
	fmt.Fprintln(w, "  MDPRESS_OPEN              Program used by --open")
	fmt.Fprintln(w, "  MDPRESS_OPEN_DELAY        Wait after --open (e.g. 2s, 0s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Exit codes:")
	fmt.Fprintln(w, "  0 success, 1 general error, 2 usage error, 3 input or config not found,")
	fmt.Fprintln(w, "  4 conversion failed (--strict only)")
}
