// Package config loads drawpoker.hcl. Every block and attribute is optional;
// anything left out keeps its default.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/drawpoker/internal/game"
)

// DefaultFilename is looked up in the working directory when no --config
// flag is given
const DefaultFilename = "drawpoker.hcl"

// Config is the resolved configuration
type Config struct {
	Game game.Settings
	UI   UISettings
}

// UISettings contains user interface settings
type UISettings struct {
	LogLevel   string
	LogFile    string
	Theme      string
	WideCards  bool   // Render card faces with full-width characters
	HistoryDir string // Save session transcripts here when set
}

// file mirrors the HCL layout. Pointers distinguish "absent" from zero, since
// zero jokers and zero exchanges are both legitimate.
type file struct {
	Game *gameBlock `hcl:"game,block"`
	UI   *uiBlock   `hcl:"ui,block"`
}

type gameBlock struct {
	Jokers    *int `hcl:"jokers,optional"`
	Exchanges *int `hcl:"exchanges,optional"`
}

type uiBlock struct {
	LogLevel   *string `hcl:"log_level,optional"`
	LogFile    *string `hcl:"log_file,optional"`
	Theme      *string `hcl:"theme,optional"`
	WideCards  *bool   `hcl:"wide_cards,optional"`
	HistoryDir *string `hcl:"history_dir,optional"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		Game: game.DefaultSettings(),
		UI: UISettings{
			LogLevel:  "info",
			LogFile:   "drawpoker.log",
			Theme:     "default",
			WideCards: true,
		},
	}
}

// Load reads filename, returning defaults if it does not exist
func Load(filename string) (*Config, error) {
	src, err := os.ReadFile(filename)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(src, filename)
}

// Parse decodes HCL source over the defaults and validates the result
func Parse(src []byte, filename string) (*Config, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var raw file
	if diags := gohcl.DecodeBody(f.Body, nil, &raw); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if g := raw.Game; g != nil {
		setIfPresent(&cfg.Game.Jokers, g.Jokers)
		setIfPresent(&cfg.Game.Exchanges, g.Exchanges)
	}
	if ui := raw.UI; ui != nil {
		setIfPresent(&cfg.UI.LogLevel, ui.LogLevel)
		setIfPresent(&cfg.UI.LogFile, ui.LogFile)
		setIfPresent(&cfg.UI.Theme, ui.Theme)
		setIfPresent(&cfg.UI.WideCards, ui.WideCards)
		setIfPresent(&cfg.UI.HistoryDir, ui.HistoryDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

func setIfPresent[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Themes lists the accepted values of ui.theme
var Themes = []string{"default", "dark", "light"}

// Validate checks the configuration
func (c *Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return err
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.UI.LogLevel] {
		return fmt.Errorf("invalid log level: %s", c.UI.LogLevel)
	}

	validTheme := false
	for _, t := range Themes {
		if c.UI.Theme == t {
			validTheme = true
		}
	}
	if !validTheme {
		return fmt.Errorf("invalid theme: %s", c.UI.Theme)
	}

	if c.UI.LogFile == "" {
		return fmt.Errorf("log file is required")
	}
	return nil
}
