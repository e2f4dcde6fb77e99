package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-mdpress/internal/config"
)

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath   string // MDPRESS_CONFIG
	Template     string // MDPRESS_TEMPLATE
	Stylesheet   string // MDPRESS_STYLESHEET
	ResourcePath string // MDPRESS_RESOURCE_PATH
	Pandoc       string // MDPRESS_PANDOC
	Kindlegen    string // MDPRESS_KINDLEGEN
	Open         string // MDPRESS_OPEN
	OpenDelay    string // MDPRESS_OPEN_DELAY, kept only when it parses
}

// Environment variables naming executables, used by tool-not-found hints.
const (
	envPandoc    = "MDPRESS_PANDOC"
	envKindlegen = "MDPRESS_KINDLEGEN"
	envOpen      = "MDPRESS_OPEN"
)

// knownEnvVars lists valid MDPRESS_* environment variables.
var knownEnvVars = map[string]bool{
	"MDPRESS_CONFIG":        true,
	"MDPRESS_TEMPLATE":      true,
	"MDPRESS_STYLESHEET":    true,
	"MDPRESS_RESOURCE_PATH": true,
	envPandoc:               true,
	envKindlegen:            true,
	envOpen:                 true,
	"MDPRESS_OPEN_DELAY":    true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath:   os.Getenv("MDPRESS_CONFIG"),
		Template:     os.Getenv("MDPRESS_TEMPLATE"),
		Stylesheet:   os.Getenv("MDPRESS_STYLESHEET"),
		ResourcePath: os.Getenv("MDPRESS_RESOURCE_PATH"),
		Pandoc:       os.Getenv(envPandoc),
		Kindlegen:    os.Getenv(envKindlegen),
		Open:         os.Getenv(envOpen),
	}

	// Invalid or negative delays are ignored
	if delay := os.Getenv("MDPRESS_OPEN_DELAY"); delay != "" {
		if d, err := time.ParseDuration(delay); err == nil && d >= 0 {
			cfg.OpenDelay = delay
		}
	}

	return cfg
}

// warnUnknownEnvVars logs warnings for unrecognized MDPRESS_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "MDPRESS_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig overrides config file values with the environment.
// Precedence: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via buildRequest)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Render.Template, env.Template)
	set(&cfg.Render.Stylesheet, env.Stylesheet)
	set(&cfg.Render.ResourcePath, env.ResourcePath)
	set(&cfg.Tools.Pandoc, env.Pandoc)
	set(&cfg.Tools.Kindlegen, env.Kindlegen)
	set(&cfg.Tools.Open, env.Open)
	set(&cfg.Open.Delay, env.OpenDelay)
}
