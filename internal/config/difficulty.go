package config

import "fmt"

// Difficulty selects one row of the multiplier table.
type Difficulty uint8

const (
	Easy Difficulty = iota
	Normal
	Hard
)

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	}
	return "normal"
}

// ParseDifficulty maps a name to a Difficulty.
func ParseDifficulty(s string) (Difficulty, error) {
	switch s {
	case "easy":
		return Easy, nil
	case "normal", "":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return Normal, fmt.Errorf("unknown difficulty %q", s)
}

// Multipliers is the flat set of named scaling factors for one difficulty.
type Multipliers struct {
	PlayerHealth  float64 `toml:"player_health"`
	PlayerDamage  float64 `toml:"player_damage"`
	PlayerSpeed   float64 `toml:"player_speed"`
	XPGain        float64 `toml:"xp_gain"`
	EnemyHealth   float64 `toml:"enemy_health"`
	EnemyDamage   float64 `toml:"enemy_damage"`
	EnemySpeed    float64 `toml:"enemy_speed"`
	WaveScaling   float64 `toml:"wave_scaling"`
	SpawnInterval float64 `toml:"spawn_interval"`
	DropChance    float64 `toml:"drop_chance"`
}

// DefaultMultipliers returns the built-in table for d.
func DefaultMultipliers(d Difficulty) Multipliers {
	switch d {
	case Easy:
		return Multipliers{
			PlayerHealth: 1.5, PlayerDamage: 1.3, PlayerSpeed: 1.1, XPGain: 1.5,
			EnemyHealth: 0.7, EnemyDamage: 0.7, EnemySpeed: 0.85,
			WaveScaling: 1.05, SpawnInterval: 12, DropChance: 0.25,
		}
	case Hard:
		return Multipliers{
			PlayerHealth: 0.75, PlayerDamage: 0.85, PlayerSpeed: 0.95, XPGain: 0.8,
			EnemyHealth: 1.4, EnemyDamage: 1.3, EnemySpeed: 1.15,
			WaveScaling: 1.25, SpawnInterval: 8, DropChance: 0.10,
		}
	}
	return Multipliers{
		PlayerHealth: 1, PlayerDamage: 1, PlayerSpeed: 1, XPGain: 1,
		EnemyHealth: 1, EnemyDamage: 1, EnemySpeed: 1,
		WaveScaling: 1.15, SpawnInterval: 10, DropChance: 0.15,
	}
}

// merge overlays the non-zero fields of o onto m.
func (m Multipliers) merge(o Multipliers) Multipliers {
	pick := func(base, over float64) float64 {
		if over != 0 {
			return over
		}
		return base
	}
	return Multipliers{
		PlayerHealth:  pick(m.PlayerHealth, o.PlayerHealth),
		PlayerDamage:  pick(m.PlayerDamage, o.PlayerDamage),
		PlayerSpeed:   pick(m.PlayerSpeed, o.PlayerSpeed),
		XPGain:        pick(m.XPGain, o.XPGain),
		EnemyHealth:   pick(m.EnemyHealth, o.EnemyHealth),
		EnemyDamage:   pick(m.EnemyDamage, o.EnemyDamage),
		EnemySpeed:    pick(m.EnemySpeed, o.EnemySpeed),
		WaveScaling:   pick(m.WaveScaling, o.WaveScaling),
		SpawnInterval: pick(m.SpawnInterval, o.SpawnInterval),
		DropChance:    pick(m.DropChance, o.DropChance),
	}
}
