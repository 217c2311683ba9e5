package component

import "emoji-survivors/internal/ecs"

const (
	CAudioEvent   ecs.ComponentType = 34
	CDamageNumber ecs.ComponentType = 35
)

// SoundKind names a one-shot sound.
type SoundKind uint8

const (
	SoundPlayerHit SoundKind = iota + 1
	SoundEnemyDeath
	SoundAbilityCast
	SoundBossSpawn
	SoundLevelUp
	SoundProjectileFire
	SoundEnemySpawn
)

func (k SoundKind) String() string {
	switch k {
	case SoundPlayerHit:
		return "player_hit"
	case SoundEnemyDeath:
		return "enemy_death"
	case SoundAbilityCast:
		return "ability_cast"
	case SoundBossSpawn:
		return "boss_spawn"
	case SoundLevelUp:
		return "level_up"
	case SoundProjectileFire:
		return "projectile_fire"
	case SoundEnemySpawn:
		return "enemy_spawn"
	}
	return "unknown"
}

// AudioEvent is a fire-and-forget marker consumed by the presentation layer.
type AudioEvent struct {
	Kind SoundKind
}

func (AudioEvent) Type() ecs.ComponentType { return CAudioEvent }

// DamageNumber floats above the hit position. OnPlayer marks damage the
// player took.
type DamageNumber struct {
	Amount   float64
	OnPlayer bool
}

func (DamageNumber) Type() ecs.ComponentType { return CDamageNumber }
