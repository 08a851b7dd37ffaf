// Package config loads the optional TOML configuration file
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/vi-snake/constants"
	"github.com/lixenwraith/vi-snake/input"
	"github.com/lixenwraith/vi-snake/render"
)

// Config is the decoded configuration file
// Fields absent from the file keep their defaults
type Config struct {
	TickMs        int               `toml:"tick_ms"`
	MaxSpan       int               `toml:"max_span"`
	MinWidth      int               `toml:"min_width"`
	MinHeight     int               `toml:"min_height"`
	HighscoreFile string            `toml:"highscore_file"`
	Seed          uint64            `toml:"seed"` // 0 = random
	Glyphs        Glyphs            `toml:"glyphs"`
	Keys          map[string]string `toml:"keys"`
}

// Glyphs holds one-character strings for each drawn element
type Glyphs struct {
	Wall       string `toml:"wall"`
	Head       string `toml:"head"`
	Horizontal string `toml:"horizontal"`
	Vertical   string `toml:"vertical"`
	Food       string `toml:"food"`
	Empty      string `toml:"empty"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		TickMs:    int(constants.TickInterval / time.Millisecond),
		MaxSpan:   constants.ArenaMaxSpan,
		MinWidth:  constants.MinScreenWidth,
		MinHeight: constants.MinScreenHeight,
		Glyphs: Glyphs{
			Wall:       string(constants.GlyphWall),
			Head:       string(constants.GlyphHead),
			Horizontal: string(constants.GlyphHorizontal),
			Vertical:   string(constants.GlyphVertical),
			Food:       string(constants.GlyphFood),
			Empty:      string(constants.GlyphEmpty),
		},
	}
}

// Dir returns the per-user configuration directory of the game
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, constants.AppName)
}

// DefaultPath returns the config file looked up when no path is given
func DefaultPath() string {
	return filepath.Join(Dir(), constants.ConfigFileName)
}

// Load reads the config at path, or DefaultPath when path is empty
// A missing file yields the defaults; a malformed file or an unknown key is an error
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath()
	}

	cfg := Default()
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and glyph widths
func (c *Config) Validate() error {
	if c.TickInterval() < constants.MinTickInterval {
		return fmt.Errorf("tick_ms %d below minimum %v", c.TickMs, constants.MinTickInterval)
	}
	if c.MaxSpan < constants.ArenaMinSpan {
		return fmt.Errorf("max_span %d below minimum %d", c.MaxSpan, constants.ArenaMinSpan)
	}
	if c.MinWidth < constants.MinScreenWidth || c.MinHeight < constants.MinScreenHeight {
		return fmt.Errorf("min screen %dx%d below minimum %dx%d",
			c.MinWidth, c.MinHeight, constants.MinScreenWidth, constants.MinScreenHeight)
	}
	if _, err := c.GlyphSet(); err != nil {
		return err
	}
	if _, err := c.KeyTable(); err != nil {
		return err
	}
	return nil
}

// TickInterval returns the playing input timeout
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.TickMs) * time.Millisecond
}

// HighscorePath returns the highscore file, defaulting next to the config file
func (c *Config) HighscorePath() string {
	if c.HighscoreFile != "" {
		return c.HighscoreFile
	}
	return filepath.Join(Dir(), constants.HighscoreFileName)
}

// GlyphSet converts the glyph strings into render glyphs
// Each glyph must be exactly one character
func (c *Config) GlyphSet() (render.Glyphs, error) {
	var g render.Glyphs
	fields := []struct {
		name string
		val  string
		dst  *rune
	}{
		{"wall", c.Glyphs.Wall, &g.Wall},
		{"head", c.Glyphs.Head, &g.Head},
		{"horizontal", c.Glyphs.Horizontal, &g.Horizontal},
		{"vertical", c.Glyphs.Vertical, &g.Vertical},
		{"food", c.Glyphs.Food, &g.Food},
		{"empty", c.Glyphs.Empty, &g.Empty},
	}

	for _, f := range fields {
		if utf8.RuneCountInString(f.val) != 1 {
			return render.Glyphs{}, fmt.Errorf("glyphs.%s %q: must be a single character", f.name, f.val)
		}
		*f.dst, _ = utf8.DecodeRuneInString(f.val)
	}
	return g, nil
}

// KeyTable returns the default bindings with the [keys] overrides applied
func (c *Config) KeyTable() (*input.KeyTable, error) {
	kt := input.DefaultKeyTable()
	if len(c.Keys) == 0 {
		return kt, nil
	}
	override, err := input.LoadKeyConfig(c.Keys)
	if err != nil {
		return nil, err
	}
	kt.Merge(override)
	return kt, nil
}
