package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/alnah/go-mdpress/internal/dateutil"
	"github.com/alnah/go-mdpress/internal/fileutil"
	"github.com/alnah/go-mdpress/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Built-in defaults. Paths keep their "~" until the resolver expands them.
const (
	DefaultInputExtension = ".txt"
	DefaultPandoc         = "pandoc"
	DefaultKindlegen      = "kindlegen"
	DefaultTemplate       = "~/bin/mdtemplate.tex"
	DefaultStylesheet     = "~/bin/mdtemplate.css"
	DefaultResourcePath   = "~/"
	DefaultMargins        = 0.7
	DefaultOpenDelay      = "2s"
	MaxTOCLevel           = 6
)

// Config holds everything mdpress reads from a YAML file.
type Config struct {
	Input     InputConfig     `yaml:"input"`
	Tools     ToolsConfig     `yaml:"tools"`
	Render    RenderConfig    `yaml:"render"`
	Datestamp DatestampConfig `yaml:"datestamp"`
	Open      OpenConfig      `yaml:"open"`
}

// InputConfig controls source autodetection.
type InputConfig struct {
	Extension string `yaml:"extension"` // suffix scanned for when no filename is given
}

// ToolsConfig names the external executables.
type ToolsConfig struct {
	Pandoc    string `yaml:"pandoc"`
	Kindlegen string `yaml:"kindlegen"`
	Open      string `yaml:"open"` // empty = OS default opener
}

// RenderConfig holds default values for the rendering flags.
type RenderConfig struct {
	Template       string  `yaml:"template"`     // TeX template for tex/pdf
	Stylesheet     string  `yaml:"stylesheet"`   // CSS for epub
	ResourcePath   string  `yaml:"resourcePath"` // pandoc --resource-path
	Margins        float64 `yaml:"margins"`      // inches
	TOCLevel       int     `yaml:"tocLevel"`     // 0 = no TOC
	CoverImage     string  `yaml:"coverImage"`
	SectionNumbers bool    `yaml:"sectionNumbers"`
	SectionNewpage bool    `yaml:"sectionNewpage"`
	TitleNewpage   bool    `yaml:"titleNewpage"`
	BodyNewpage    bool    `yaml:"bodyNewpage"`
	Fancy          bool    `yaml:"fancy"`
	FiguresTables  bool    `yaml:"figuresTables"`
}

// DatestampConfig controls the value passed for --datestamp-today.
type DatestampConfig struct {
	Format string `yaml:"format"` // dateutil tokens or preset
}

// OpenConfig controls the post-build open action.
type OpenConfig struct {
	Delay string `yaml:"delay"` // Go duration, wait before cleaning
}

// DefaultConfig returns the configuration used when no file is loaded.
func DefaultConfig() *Config {
	return &Config{
		Input: InputConfig{Extension: DefaultInputExtension},
		Tools: ToolsConfig{Pandoc: DefaultPandoc, Kindlegen: DefaultKindlegen},
		Render: RenderConfig{
			Template:     DefaultTemplate,
			Stylesheet:   DefaultStylesheet,
			ResourcePath: DefaultResourcePath,
			Margins:      DefaultMargins,
		},
		Datestamp: DatestampConfig{Format: dateutil.DefaultFormat},
		Open:      OpenConfig{Delay: DefaultOpenDelay},
	}
}

// OpenDelay returns the parsed open delay. Call after Validate.
func (c *Config) OpenDelay() time.Duration {
	d, err := time.ParseDuration(c.Open.Delay)
	if err != nil {
		return 0
	}
	return d
}

// Validate checks values a YAML file can get wrong.
func (c *Config) Validate() error {
	ext := c.Input.Extension
	if !strings.HasPrefix(ext, ".") || len(ext) < 2 || strings.ContainsAny(ext, "/\\\x00") {
		return fmt.Errorf("%w: input.extension %q (must look like \".txt\")", ErrInvalidValue, ext)
	}
	if c.Tools.Pandoc == "" {
		return fmt.Errorf("%w: tools.pandoc cannot be empty", ErrInvalidValue)
	}
	if c.Tools.Kindlegen == "" {
		return fmt.Errorf("%w: tools.kindlegen cannot be empty", ErrInvalidValue)
	}
	if c.Render.Margins <= 0 {
		return fmt.Errorf("%w: render.margins must be positive, got %g", ErrInvalidValue, c.Render.Margins)
	}
	if c.Render.TOCLevel < 0 || c.Render.TOCLevel > MaxTOCLevel {
		return fmt.Errorf("%w: render.tocLevel must be between 0 and %d, got %d", ErrInvalidValue, MaxTOCLevel, c.Render.TOCLevel)
	}
	if _, err := dateutil.Layout(c.Datestamp.Format); err != nil {
		return fmt.Errorf("%w: datestamp.format: %v", ErrInvalidValue, err)
	}
	if d, err := time.ParseDuration(c.Open.Delay); err != nil || d < 0 {
		return fmt.Errorf("%w: open.delay %q (use a duration like \"2s\")", ErrInvalidValue, c.Open.Delay)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's searched as <name>.yaml or <name>.yml in the current
// directory, then in the user config directory under mdpress/.
// Keys missing from the file keep their defaults.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.DecodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", configPath, err)
	}

	return cfg, nil
}

// NotFoundError carries the locations searched for a named config.
type NotFoundError struct {
	Name  string
	Tried []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (tried %s)", ErrConfigNotFound, e.Name, strings.Join(e.Tried, ", "))
}

func (e *NotFoundError) Unwrap() error { return ErrConfigNotFound }

// resolveConfigPath searches for a config file by name in standard locations.
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	dirs := []string{"."}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(userConfigDir, "mdpress"))
	}

	tried := make([]string, 0, len(dirs)*len(extensions))
	for _, dir := range dirs {
		for _, ext := range extensions {
			p := filepath.Join(dir, name+ext)
			if fileutil.FileExists(p) {
				return p, nil
			}
			tried = append(tried, p)
		}
	}

	return "", &NotFoundError{Name: name, Tried: tried}
}
