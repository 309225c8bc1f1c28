package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dkoosis/svgstats/internal/results"
	"github.com/dkoosis/svgstats/pkg/render"
)

// FileName is the config file name looked up in the working directory and
// the user config dir.
const FileName = ".svgstats.yaml"

// EnvConfigPath names an explicit config file.
const EnvConfigPath = "SVGSTATS_CONFIG"

// EnvDebug enables debug logging when non-empty.
const EnvDebug = "SVGSTATS_DEBUG"

// Summary output formats.
const (
	FormatAuto     = "auto"
	FormatTerminal = "terminal"
	FormatLLM      = "llm"
	FormatJSON     = "json"
)

// Config holds every setting of one svgstats run. It is loaded once and
// passed by value; nothing in it is mutated after Load returns.
type Config struct {
	ResultsPath     string   `yaml:"results"`
	TestsDir        string   `yaml:"tests_dir"`
	Extension       string   `yaml:"extension"`
	Marker          string   `yaml:"marker"`
	Denylist        []string `yaml:"denylist"`
	Renderers       []string `yaml:"renderers"`
	ChartPath       string   `yaml:"chart"`
	GroupsPath      string   `yaml:"groups"`
	ImagePath       string   `yaml:"image"`
	SubsetImagePath string   `yaml:"subset_image"`
	BarhPath        string   `yaml:"barh"`
	Chart           Chart    `yaml:"chart_style"`
	Format          string   `yaml:"format"`
	Theme           string   `yaml:"theme"`
	Debug           bool     `yaml:"debug"`
}

// Chart holds the presentation settings copied into the barh descriptor.
type Chart struct {
	FontFamily      string `yaml:"font_family"`
	FontSize        int    `yaml:"font_size"`
	AxisTitle       string `yaml:"axis_title"`
	Width           int    `yaml:"width"`
	RoundTickValues bool   `yaml:"round_tick_values"`
}

// DefaultDenylist lists test files that carry the SVG 2 marker but are
// known to break the subset report (encoding, emoji and complex-script
// cases).
func DefaultDenylist() []string {
	return []string{
		"not-UTF-8-encoding.svg",
		"invalid-id-attribute-2.svg",
		"non-ASCII-character.svg",
		"compound-emojis-and-coordinates-list.svg",
		"compound-emojis.svg",
		"emojis.svg",
		"escaped-text-4.svg",
		"rotate-with-multiple-values-and-complex-text.svg",
		"zalgo.svg",
		"on-tspan-with-arabic.svg",
		"complex.svg",
		"writing-mode=tb.svg",
		"tb-and-punctuation.svg",
	}
}

// DefaultRenderers returns the display names of the four renderer slots,
// in CSV column order.
func DefaultRenderers() []string {
	return []string{
		"Batik 1.17",
		"JSVG 1.6.1",
		"svgSalamander 1.1.4",
		"EchoSVG 1.2.2",
	}
}

// Default returns the configuration for the main test suite.
func Default() Config {
	return Config{
		ResultsPath:     "results.csv",
		TestsDir:        "tests",
		Extension:       ".svg",
		Marker:          "(SVG 2)",
		Denylist:        DefaultDenylist(),
		Renderers:       DefaultRenderers(),
		ChartPath:       "chart.json",
		GroupsPath:      "group_results.json",
		ImagePath:       filepath.Join("site", "images", "chart.svg"),
		SubsetImagePath: filepath.Join("site", "images", "chart-svg2.svg"),
		BarhPath:        "./barh",
		Chart: Chart{
			FontFamily:      "Arial",
			FontSize:        12,
			AxisTitle:       "Tests passed",
			Width:           700,
			RoundTickValues: true,
		},
		Format: FormatAuto,
		Theme:  "default",
	}
}

// Load finds and parses the config file, layering it over Default.
// It returns the resolved config and the path it was read from ("" when
// defaults were used).
func Load() (Config, string, error) {
	path := configPath()
	if path == "" {
		cfg := Default()
		cfg.Debug = cfg.Debug || os.Getenv(EnvDebug) != ""
		return cfg, "", nil
	}
	cfg, err := LoadFile(path)
	if err != nil {
		return Config{}, path, err
	}
	return cfg, path, nil
}

// LoadFile parses the YAML file at path over Default and validates it.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
	}
	if os.Getenv(EnvDebug) != "" {
		cfg.Debug = true
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first setting that cannot drive a run.
func (c Config) Validate() error {
	if len(c.Renderers) != results.Slots {
		return fmt.Errorf("renderers: want %d names, got %d", results.Slots, len(c.Renderers))
	}
	if c.ResultsPath == "" {
		return errors.New("results: path is empty")
	}
	if c.ChartPath == "" || c.GroupsPath == "" {
		return errors.New("chart and groups output paths are required")
	}
	if !slices.Contains([]string{FormatAuto, FormatTerminal, FormatLLM, FormatJSON}, c.Format) {
		return fmt.Errorf("format: unknown %q (expected auto, terminal, llm, json)", c.Format)
	}
	if themes := render.ThemeNames(); !slices.Contains(themes, c.Theme) {
		return fmt.Errorf("theme: unknown %q (expected %s)", c.Theme, strings.Join(themes, ", "))
	}
	return nil
}

// ImageFor returns the chart image path for the given mode.
func (c Config) ImageFor(subset bool) string {
	if subset {
		return c.SubsetImagePath
	}
	return c.ImagePath
}

// DenySet returns the denylist as a lookup set. The result is a fresh map
// on every call.
func (c Config) DenySet() map[string]struct{} {
	set := make(map[string]struct{}, len(c.Denylist))
	for _, name := range c.Denylist {
		set[name] = struct{}{}
	}
	return set
}

// configPath locates the config file. SVGSTATS_CONFIG is returned even when
// the file does not exist; LoadFile then reports the read error.
func configPath() string {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName
	}
	configHome, err := os.UserConfigDir()
	if err != nil || configHome == "" || configHome == "/" {
		return ""
	}
	xdgPath := filepath.Join(configHome, "svgstats", FileName)
	if _, err := os.Stat(xdgPath); err == nil {
		return xdgPath
	}
	return ""
}
