// Package config holds the difficulty table, gameplay constants and the
// optional TOML override file.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the live configuration of one session. The multiplier table is
// looked up on every call to Multipliers, so SetDifficulty takes effect on
// the next stat computation.
type Config struct {
	Width, Height float64
	difficulty    Difficulty
	overrides     map[Difficulty]Multipliers
}

// New returns a Config with the default arena size.
func New(d Difficulty) *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		difficulty: d,
		overrides:  make(map[Difficulty]Multipliers),
	}
}

// Difficulty returns the active difficulty.
func (c *Config) Difficulty() Difficulty { return c.difficulty }

// SetDifficulty switches the active multiplier row.
func (c *Config) SetDifficulty(d Difficulty) { c.difficulty = d }

// Multipliers returns the active row, with file overrides applied.
func (c *Config) Multipliers() Multipliers {
	m := DefaultMultipliers(c.difficulty)
	if o, ok := c.overrides[c.difficulty]; ok {
		m = m.merge(o)
	}
	return m
}

// fileConfig mirrors the TOML layout:
//
//	[world]
//	width = 1600
//	height = 900
//
//	[difficulty.hard]
//	enemy_health = 2.0
type fileConfig struct {
	World struct {
		Width  float64 `toml:"width"`
		Height float64 `toml:"height"`
	} `toml:"world"`
	Difficulty map[string]Multipliers `toml:"difficulty"`
}

// LoadFile applies the overrides in the TOML file at path. Unknown keys are
// rejected so a typo never silently falls back to defaults.
func (c *Config) LoadFile(path string) error {
	var fc fileConfig
	md, err := toml.DecodeFile(path, &fc)
	if err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return fmt.Errorf("config %s: unknown key %q", path, undecoded[0].String())
	}
	if fc.World.Width > 0 {
		c.Width = fc.World.Width
	}
	if fc.World.Height > 0 {
		c.Height = fc.World.Height
	}
	for name, m := range fc.Difficulty {
		d, err := ParseDifficulty(name)
		if err != nil {
			return fmt.Errorf("config %s: %w", path, err)
		}
		c.overrides[d] = m
	}
	return nil
}
