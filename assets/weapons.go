package assets

// WeaponID identifies a weapon archetype.
type WeaponID uint8

const (
	WeaponNone WeaponID = iota
	WeaponShadowBlade
	WeaponArcaneSeeker
	WeaponChainLightning
	WeaponBlessedVial
	WeaponGarlicAura
	WeaponDeathScythe
	WeaponFrostOrb
	WeaponCrimsonSpear
	// evolved
	WeaponReapersEmbrace
	WeaponCosmicAnnihilation
	WeaponSacredWard
)

// WeaponKind selects how the weapon pass fires a weapon.
type WeaponKind uint8

const (
	KindProjectile WeaponKind = iota // homing or straight shots at the nearest enemies
	KindMelee                        // blades orbiting the owner
	KindAura                         // radial damage around the owner
	KindChain                        // lightning bouncing between enemies
)

// MaxWeaponLevel is the highest level a non-evolved weapon reaches.
const MaxWeaponLevel = 5

// EvolveMinPlayerLevel gates evolutions behind player progress.
const EvolveMinPlayerLevel = 5

// WeaponDef describes one weapon. Per-level slices are indexed by level-1.
type WeaponDef struct {
	ID       WeaponID
	Name     string
	Glyph    string
	Kind     WeaponKind
	Damage   []float64
	Cooldown []float64
	Range    []float64
	Count    []int

	Homing   bool
	Piercing bool
	Slow     float64 // slow percent applied on hit
	Speed    float64 // projectile speed
	Evolved  bool
}

// Level-clamped accessors.
func (d WeaponDef) idx(level int) int {
	if level < 1 {
		return 0
	}
	if level > len(d.Damage) {
		return len(d.Damage) - 1
	}
	return level - 1
}

func (d WeaponDef) DamageAt(level int) float64   { return d.Damage[d.idx(level)] }
func (d WeaponDef) CooldownAt(level int) float64 { return d.Cooldown[d.idx(level)] }
func (d WeaponDef) RangeAt(level int) float64    { return d.Range[d.idx(level)] }
func (d WeaponDef) CountAt(level int) int        { return d.Count[d.idx(level)] }

// MaxLevel is the number of levels the weapon has.
func (d WeaponDef) MaxLevel() int { return len(d.Damage) }

var weaponDefs = map[WeaponID]WeaponDef{
	WeaponShadowBlade: {
		ID: WeaponShadowBlade, Name: "Shadow Blade", Glyph: "⚔️", Kind: KindMelee,
		Damage:   []float64{15, 20, 30, 45, 70},
		Cooldown: []float64{1.5, 1.3, 1.1, 0.9, 0.7},
		Range:    []float64{80, 90, 100, 120, 150},
		Count:    []int{1, 1, 2, 2, 3},
		Speed:    200,
	},
	WeaponArcaneSeeker: {
		ID: WeaponArcaneSeeker, Name: "Arcane Seeker", Glyph: "🔮", Kind: KindProjectile,
		Damage:   []float64{12, 18, 25, 35, 50},
		Cooldown: []float64{2.0, 1.8, 1.5, 1.2, 1.0},
		Range:    []float64{400, 450, 500, 550, 600},
		Count:    []int{1, 2, 3, 4, 5},
		Homing:   true, Speed: 250,
	},
	WeaponChainLightning: {
		ID: WeaponChainLightning, Name: "Chain Lightning", Glyph: "⚡", Kind: KindChain,
		Damage:   []float64{20, 30, 45, 65, 90},
		Cooldown: []float64{3.0, 2.7, 2.4, 2.0, 1.5},
		Range:    []float64{250, 280, 320, 360, 400},
		Count:    []int{1, 1, 1, 2, 2},
	},
	WeaponBlessedVial: {
		ID: WeaponBlessedVial, Name: "Blessed Vial", Glyph: "🧪", Kind: KindAura,
		Damage:   []float64{8, 12, 18, 26, 40},
		Cooldown: []float64{5.0, 4.5, 4.0, 3.5, 3.0},
		Range:    []float64{150, 200, 250, 300, 350},
		Count:    []int{1, 1, 2, 2, 3},
	},
	WeaponGarlicAura: {
		ID: WeaponGarlicAura, Name: "Garlic Aura", Glyph: "🧄", Kind: KindAura,
		Damage:   []float64{5, 8, 12, 18, 28},
		Cooldown: []float64{0.5, 0.5, 0.5, 0.5, 0.5},
		Range:    []float64{60, 80, 100, 120, 150},
		Count:    []int{1, 1, 1, 1, 1},
	},
	WeaponDeathScythe: {
		ID: WeaponDeathScythe, Name: "Death's Scythe", Glyph: "🗡️", Kind: KindMelee,
		Damage:   []float64{25, 35, 50, 70, 100},
		Cooldown: []float64{2.0, 1.8, 1.6, 1.3, 1.0},
		Range:    []float64{100, 120, 140, 170, 200},
		Count:    []int{1, 2, 2, 3, 3},
		Speed:    200,
	},
	WeaponFrostOrb: {
		ID: WeaponFrostOrb, Name: "Frost Orb", Glyph: "❄️", Kind: KindProjectile,
		Damage:   []float64{10, 16, 24, 35, 50},
		Cooldown: []float64{2.5, 2.3, 2.0, 1.7, 1.4},
		Range:    []float64{300, 350, 400, 450, 500},
		Count:    []int{1, 2, 3, 4, 5},
		Slow:     0.4, Speed: 300,
	},
	WeaponCrimsonSpear: {
		ID: WeaponCrimsonSpear, Name: "Crimson Spear", Glyph: "🔱", Kind: KindProjectile,
		Damage:   []float64{18, 28, 42, 60, 85},
		Cooldown: []float64{1.8, 1.6, 1.4, 1.2, 1.0},
		Range:    []float64{350, 400, 450, 500, 600},
		Count:    []int{1, 1, 2, 3, 4},
		Piercing: true, Speed: 450,
	},
	WeaponReapersEmbrace: {
		ID: WeaponReapersEmbrace, Name: "Reaper's Embrace", Glyph: "💀", Kind: KindMelee,
		Damage: []float64{210}, Cooldown: []float64{0.35}, Range: []float64{300}, Count: []int{6},
		Speed: 260, Evolved: true,
	},
	WeaponCosmicAnnihilation: {
		ID: WeaponCosmicAnnihilation, Name: "Cosmic Annihilation", Glyph: "🌌", Kind: KindProjectile,
		Damage: []float64{125}, Cooldown: []float64{0.6}, Range: []float64{900}, Count: []int{10},
		Homing: true, Speed: 320, Evolved: true,
	},
	WeaponSacredWard: {
		ID: WeaponSacredWard, Name: "Sacred Ward", Glyph: "✨", Kind: KindAura,
		Damage: []float64{112}, Cooldown: []float64{0.5}, Range: []float64{375}, Count: []int{1},
		Evolved: true,
	},
}

// Weapon returns the definition for id and whether it exists.
func Weapon(id WeaponID) (WeaponDef, bool) {
	d, ok := weaponDefs[id]
	return d, ok
}

// WeaponPool lists the base weapons offered on level-up, in a fixed order.
func WeaponPool() []WeaponID {
	return []WeaponID{
		WeaponShadowBlade, WeaponArcaneSeeker, WeaponChainLightning, WeaponBlessedVial,
		WeaponGarlicAura, WeaponDeathScythe, WeaponFrostOrb, WeaponCrimsonSpear,
	}
}

var evolutions = map[WeaponID]WeaponID{
	WeaponShadowBlade:  WeaponReapersEmbrace,
	WeaponArcaneSeeker: WeaponCosmicAnnihilation,
	WeaponGarlicAura:   WeaponSacredWard,
}

// EvolutionOf returns the evolved form of base, if it has one.
func EvolutionOf(base WeaponID) (WeaponID, bool) {
	e, ok := evolutions[base]
	return e, ok
}
