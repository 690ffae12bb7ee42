package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fosdem/galaxykd/lib/geometry"
	galaxylog "github.com/fosdem/galaxykd/lib/log"
	"github.com/fosdem/galaxykd/lib/utils"
	yaml "github.com/goccy/go-yaml"
)

type Config struct {
	Window  *WindowCfg         `json:"window"`
	Grid    *geometry.GridSpec `json:"grid"`
	Colours *ColourCfg         `json:"colours"`
	Render  *RenderCfg         `json:"render"`
	Shaders *ShadersCfg        `json:"shaders"`
	Log     *LogCfg            `json:"log"`
	Api     *ApiCfg            `json:"api,omitempty"`
}

type WindowCfg struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	Vsync  *bool  `json:"vsync"`
}

type ColourCfg struct {
	Background string `json:"background"`
	Grid       string `json:"grid"`
	Ship       string `json:"ship"`
}

type RenderCfg struct {
	// ReuploadStatic re-sends the (unchanging) vertex data on every frame.
	ReuploadStatic *bool `yaml:"reupload_static" json:"reupload_static"`
}

type LinkFailurePolicy string

const (
	LinkFailureLog   LinkFailurePolicy = "log"
	LinkFailureFatal LinkFailurePolicy = "fatal"
)

type ShadersCfg struct {
	OnLinkFailure LinkFailurePolicy `yaml:"on_link_failure" json:"on_link_failure"`
}

type LogCfg struct {
	Level string `json:"level"`
}

type ApiCfg struct {
	Bind           string `json:"bind"`
	EnableProfiler bool   `yaml:"enable_profiler" json:"enable_profiler"`
}

func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func Parse(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("could not open %s: %w", filename, err)
	}
	defer func(f *os.File) {
		_ = f.Close()
	}(f)

	m := yaml.NewDecoder(f, yaml.DisallowUnknownField())
	cfg := &Config{}
	err = m.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}
	cfg.applyDefaults()
	err = cfg.Validate()
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

func boolPtr(b bool) *bool {
	return &b
}

func (c *Config) applyDefaults() {
	if c.Window == nil {
		c.Window = &WindowCfg{}
	}
	if c.Window.Width == 0 {
		c.Window.Width = 640
	}
	if c.Window.Height == 0 {
		c.Window.Height = 480
	}
	if c.Window.Title == "" {
		c.Window.Title = "GalaxyKD"
	}
	if c.Window.Vsync == nil {
		c.Window.Vsync = boolPtr(true)
	}

	if c.Grid == nil {
		c.Grid = &geometry.GridSpec{Lanes: 5, Rows: 3}
	}

	if c.Colours == nil {
		c.Colours = &ColourCfg{}
	}
	if c.Colours.Background == "" {
		c.Colours.Background = "#000000ff"
	}
	if c.Colours.Grid == "" {
		c.Colours.Grid = "#ffffffff"
	}
	if c.Colours.Ship == "" {
		c.Colours.Ship = "#ff0000ff"
	}

	if c.Render == nil {
		c.Render = &RenderCfg{}
	}
	if c.Render.ReuploadStatic == nil {
		c.Render.ReuploadStatic = boolPtr(true)
	}

	if c.Shaders == nil {
		c.Shaders = &ShadersCfg{}
	}
	if c.Shaders.OnLinkFailure == "" {
		c.Shaders.OnLinkFailure = LinkFailureLog
	}

	if c.Log == nil {
		c.Log = &LogCfg{Level: "info"}
	}
}

func (c *Config) Validate() error {
	err := c.Window.Validate()
	if err != nil {
		return fmt.Errorf("window config is invalid: %w", err)
	}
	err = c.Grid.Validate()
	if err != nil {
		return fmt.Errorf("grid config is invalid: %w", err)
	}
	err = c.Colours.Validate()
	if err != nil {
		return fmt.Errorf("colours config is invalid: %w", err)
	}
	err = c.Shaders.Validate()
	if err != nil {
		return fmt.Errorf("shaders config is invalid: %w", err)
	}
	_, err = galaxylog.ParseLevel(c.Log.Level)
	if err != nil {
		return fmt.Errorf("log config is invalid: %w", err)
	}
	if c.Api != nil {
		err = c.Api.Validate()
		if err != nil {
			return fmt.Errorf("api config is invalid: %w", err)
		}
	}
	return nil
}

func (w *WindowCfg) Validate() error {
	if w.Width < 1 || w.Height < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", w.Width, w.Height)
	}
	return nil
}

func (c *ColourCfg) Validate() error {
	for name, v := range map[string]string{
		"background": c.Background,
		"grid":       c.Grid,
		"ship":       c.Ship,
	} {
		if !utils.ColourValidate(v) {
			return fmt.Errorf("%s colour %s is not a valid RGBA hex colour", name, v)
		}
	}
	return nil
}

func (s *ShadersCfg) Validate() error {
	switch s.OnLinkFailure {
	case LinkFailureLog, LinkFailureFatal:
		return nil
	default:
		return fmt.Errorf("on_link_failure must be %q or %q, got %q", LinkFailureLog, LinkFailureFatal, s.OnLinkFailure)
	}
}

func (a *ApiCfg) Validate() error {
	if a.Bind == "" {
		return fmt.Errorf("bind address must be specified")
	}
	return nil
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("Window:\n")
	b.WriteString(fmt.Sprintf("  %q %dx%d (vsync %t)\n", c.Window.Title, c.Window.Width, c.Window.Height, *c.Window.Vsync))

	b.WriteString("\nGrid:\n")
	b.WriteString(fmt.Sprintf("  %d lanes, %d rows\n", c.Grid.Lanes, c.Grid.Rows))

	b.WriteString("\nColours:\n")
	b.WriteString(fmt.Sprintf("  background %s, grid %s, ship %s\n", c.Colours.Background, c.Colours.Grid, c.Colours.Ship))

	b.WriteString("\nRendering:\n")
	b.WriteString(fmt.Sprintf("  reupload static geometry: %t\n", *c.Render.ReuploadStatic))
	b.WriteString(fmt.Sprintf("  on link failure: %s\n", c.Shaders.OnLinkFailure))

	b.WriteString("\nApi:\n")
	if c.Api == nil {
		b.WriteString("  disabled\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s (profiler %t)\n", c.Api.Bind, c.Api.EnableProfiler))
	}

	return b.String()
}
