// Package assets holds the static archetype tables: enemy types, bosses,
// weapons, character classes and maps. Tables are immutable after init and
// addressed by enumerated IDs.
package assets

// EnemyType identifies a regular enemy archetype.
type EnemyType uint8

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyTank
	EnemyRanged
)

// Base stats every enemy archetype scales from.
const (
	EnemyBaseHealth = 20.0
	EnemyBaseDamage = 5.0
	EnemyBaseSpeed  = 80.0
	EnemyBaseSize   = 28.0
	EnemyBaseXP     = 10
)

// EnemyDef is a stat template applied on top of the base enemy stats.
type EnemyDef struct {
	Type   EnemyType
	Name   string
	Glyph  string
	Speed  float64 // multipliers
	Health float64
	Damage float64
	Size   float64
	XP     float64
	Weight float64 // relative spawn probability

	// Ranged attack, zero for melee-only types.
	AttackRange  float64
	AttackCD     float64
	KeepDistance float64
}

var enemyDefs = [...]EnemyDef{
	EnemyBasic: {Type: EnemyBasic, Name: "Ghoul", Glyph: GlyphBasic, Speed: 1, Health: 1, Damage: 1, Size: 1, XP: 1, Weight: 0.50},
	EnemyFast:  {Type: EnemyFast, Name: "Bat", Glyph: GlyphFast, Speed: 1.5, Health: 0.6, Damage: 0.8, Size: 0.7, XP: 0.8, Weight: 0.25},
	EnemyTank:  {Type: EnemyTank, Name: "Golem", Glyph: GlyphTank, Speed: 0.5, Health: 3.0, Damage: 1.5, Size: 1.5, XP: 2.0, Weight: 0.15},
	EnemyRanged: {
		Type: EnemyRanged, Name: "Cultist", Glyph: GlyphRanged,
		Speed: 0.7, Health: 0.8, Damage: 1.2, Size: 0.9, XP: 1.5, Weight: 0.10,
		AttackRange: 300, AttackCD: 2.0, KeepDistance: 250,
	},
}

// Enemy returns the definition for t. Unknown types fall back to EnemyBasic.
func Enemy(t EnemyType) EnemyDef {
	if int(t) >= len(enemyDefs) {
		return enemyDefs[EnemyBasic]
	}
	return enemyDefs[t]
}

// EnemyTypes lists every regular archetype in weight-table order.
func EnemyTypes() []EnemyType {
	return []EnemyType{EnemyBasic, EnemyFast, EnemyTank, EnemyRanged}
}

// PickEnemyType maps a uniform roll in [0,1) onto the weighted archetype mix.
func PickEnemyType(roll float64) EnemyType {
	acc := 0.0
	for _, t := range EnemyTypes() {
		acc += enemyDefs[t].Weight
		if roll < acc {
			return t
		}
	}
	return EnemyBasic
}
