package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	mdpress "github.com/alnah/go-mdpress"
	"github.com/alnah/go-mdpress/internal/config"
	"github.com/alnah/go-mdpress/internal/yamlutil"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage       = errors.New("invalid usage")
	ErrTooManyArgs = errors.New("too many arguments")
	ErrBuildFailed = errors.New("build finished with errors")
	ErrNotReady    = errors.New("required tools are missing")
)

// run resolves the invocation and drives the builder. Conversion failures
// are printed by the builder and only surface here with --strict.
func run(ctx context.Context, positional []string, flags *cliFlags, env *Environment) error {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	cfg, err := loadConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)

	switch {
	case flags.info.printConfig:
		return printConfig(env.Stdout, cfg)
	case flags.info.doctor:
		if runDoctor(ctx, cfg, flags.info.json, env, nil) == ExitSuccess {
			return nil
		}
		return ErrNotReady
	}

	req, err := buildRequest(positional, flags, cfg)
	if err != nil {
		return err
	}

	resolver := &mdpress.Resolver{
		Dir:      env.Dir,
		Home:     env.Home,
		Now:      env.Now,
		ReadDir:  os.ReadDir,
		Defaults: defaultsFromConfig(cfg),
	}
	buildCfg, err := resolver.Resolve(req)
	if err != nil {
		return err
	}

	builder := &mdpress.Builder{
		Runner:    env.Runner,
		Log:       env.Stderr,
		Hint:      recoveredHint(buildCfg.Tools),
		Sleep:     env.Sleep,
		OpenDelay: cfg.OpenDelay(),
	}
	report := builder.Run(ctx, buildCfg)

	if flags.common.verbose {
		printReport(env.Stderr, report)
	}
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("interrupted: %w", err)
	}
	if flags.common.strict && report.Failed() {
		return fmt.Errorf("%w: %d error(s)", ErrBuildFailed, len(report.Errors))
	}
	return nil
}

// loadConfig loads the config named by the flag, else by MDPRESS_CONFIG,
// else returns the built-in defaults.
func loadConfig(flagName, envName string) (*config.Config, error) {
	name := flagName
	if name == "" {
		name = envName
	}
	if name == "" {
		return config.DefaultConfig(), nil
	}
	return config.LoadConfig(name)
}

// buildRequest merges CLI flags over the config file (CLI wins).
// Boolean render options are enabled by either source.
func buildRequest(positional []string, f *cliFlags, cfg *config.Config) (mdpress.Request, error) {
	if len(positional) > 1 {
		return mdpress.Request{}, fmt.Errorf("%w: expected at most one filename, got %q", ErrTooManyArgs, positional)
	}

	r := cfg.Render
	req := mdpress.Request{
		Stdin:          f.common.stdin,
		TeX:            f.format.tex,
		PDF:            f.format.pdf,
		EPUB:           f.format.epub,
		MOBI:           f.format.mobi,
		Open:           f.actions.open,
		Clean:          f.actions.clean,
		CleanLight:     f.actions.cleanLight,
		Verbose:        f.common.verbose,
		SectionNumbers: f.render.sectionNumbers || r.SectionNumbers,
		TOCLevel:       r.TOCLevel,
		CoverImage:     r.CoverImage,
		SectionNewpage: f.render.sectionNewpage || r.SectionNewpage,
		TitleNewpage:   f.render.titleNewpage || r.TitleNewpage,
		BodyNewpage:    f.render.bodyNewpage || r.BodyNewpage,
		Fancy:          f.render.fancy || r.Fancy,
		FiguresTables:  f.render.figuresTables || r.FiguresTables,
		DatestampToday: f.render.datestampToday,
	}
	if len(positional) == 1 {
		req.Filename = positional[0]
	}

	if f.isSet("template") {
		req.Template = f.render.template
	}
	if f.isSet("toc-level") {
		req.TOCLevel = f.render.tocLevel
	}
	if f.isSet("margins") {
		m := f.render.margins
		req.Margins = &m
	}
	if f.isSet("cover-image") {
		req.CoverImage = f.render.coverImage
	}
	if f.isSet("resource-path") {
		req.ResourcePath = f.render.resourcePath
	}

	return req, nil
}

// defaultsFromConfig maps config values onto resolver defaults.
func defaultsFromConfig(cfg *config.Config) mdpress.Defaults {
	return mdpress.Defaults{
		InputExt:        cfg.Input.Extension,
		Template:        cfg.Render.Template,
		Stylesheet:      cfg.Render.Stylesheet,
		ResourcePath:    cfg.Render.ResourcePath,
		Margins:         cfg.Render.Margins,
		DatestampFormat: cfg.Datestamp.Format,
		Tools: mdpress.Tools{
			Pandoc:    cfg.Tools.Pandoc,
			Kindlegen: cfg.Tools.Kindlegen,
			Open:      cfg.Tools.Open,
		},
	}
}

// printConfig writes the effective configuration as YAML.
func printConfig(w io.Writer, cfg *config.Config) error {
	data, err := yamlutil.Encode(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = w.Write(data)
	return err
}

// printReport writes a per-target summary in verbose mode.
func printReport(w io.Writer, rep *mdpress.Report) {
	for _, r := range rep.Results {
		status := "ok"
		if r.Err != nil {
			status = "failed"
		}
		fmt.Fprintf(w, "%-5s %-6s %s (%v)\n", r.Format, status, r.Command.Output, r.Duration.Round(time.Millisecond))
	}
	if rep.Opened != "" {
		fmt.Fprintf(w, "opened %s\n", rep.Opened)
	}
	fmt.Fprintf(w, "Done: %d target(s), %d removed, %d error(s)\n", len(rep.Results), len(rep.Removed), len(rep.Errors))
}
