// Package mdpress turns a plain-text or Markdown document into LaTeX, PDF,
// EPUB and MOBI by driving external converters (pandoc and kindlegen).
//
// mdpress does no document processing of its own. It resolves options,
// builds argument vectors, runs the converters, and tidies up afterwards.
//
// # Quick Start
//
//	r := mdpress.NewResolver(mdpress.StandardDefaults())
//	cfg, err := r.Resolve(mdpress.Request{Filename: "report.txt", PDF: true, EPUB: true})
//	if err != nil {
//	    log.Fatal(err) // no input: nothing was started
//	}
//
//	report := mdpress.NewBuilder(os.Stderr).Run(ctx, cfg)
//	if report.Failed() {
//	    // conversions were attempted best-effort; failures were already printed
//	}
//
// # Pipeline
//
//  1. Resolver: input autodetection, defaults, PDF-by-default, MOBI implies EPUB
//  2. BuildCommand: pure mapping from BuildConfig and Format to a Command
//  3. CommandRunner: runs each Command; failures become *ConversionError
//  4. Post-build: open the primary output, then clean or clean-light
//
// Targets always run in the order TeX, PDF, EPUB, MOBI. MOBI is transcoded
// from the EPUB file written just before it.
//
// # Testing
//
// Builder.Runner accepts any CommandRunner, so tests can record commands
// instead of spawning converters:
//
//	b := &mdpress.Builder{Runner: recorder}
package mdpress
