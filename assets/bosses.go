package assets

// BossID identifies a boss archetype.
type BossID uint8

const (
	BossNone BossID = iota
	BossBloodTitan
	BossVoidReaver
	BossFrostColossus
	BossPlagueHerald
	BossInfernoLord
)

// BossAbilityKind is the special behavior a boss archetype declares.
type BossAbilityKind uint8

const (
	AbilityNone BossAbilityKind = iota
	AbilityTeleport
	AbilityAuraSlow
	AbilitySummon
	AbilityRage
)

func (k BossAbilityKind) String() string {
	switch k {
	case AbilityTeleport:
		return "teleport"
	case AbilityAuraSlow:
		return "aura_slow"
	case AbilitySummon:
		return "summon"
	case AbilityRage:
		return "rage"
	}
	return "none"
}

// BossDef holds stat multipliers over the base enemy and the ability tuning.
type BossDef struct {
	ID      BossID
	Name    string
	Glyph   string
	Health  float64
	Damage  float64
	Speed   float64
	Size    float64
	XP      float64
	Ability BossAbilityKind

	Cooldown float64

	// teleport
	TeleportMin, TeleportMax float64
	TeleportInvuln           float64

	// aura
	AuraRadius   float64
	AuraSlow     float64
	AuraDuration float64

	// summon
	SummonCount  int
	SummonRadius float64

	// rage
	RageThreshold float64
	RageBoost     float64
}

var bossDefs = map[BossID]BossDef{
	BossBloodTitan: {
		ID: BossBloodTitan, Name: "Blood Titan", Glyph: GlyphBloodTitan,
		Health: 10, Damage: 2, Speed: 0.6, Size: 2, XP: 10,
	},
	BossVoidReaver: {
		ID: BossVoidReaver, Name: "Void Reaver", Glyph: GlyphVoidReaver,
		Health: 6, Damage: 3, Speed: 1.2, Size: 1.5, XP: 12,
		Ability: AbilityTeleport, Cooldown: 3,
		TeleportMin: 200, TeleportMax: 350, TeleportInvuln: 0.5,
	},
	BossFrostColossus: {
		ID: BossFrostColossus, Name: "Frost Colossus", Glyph: GlyphFrostColossus,
		Health: 15, Damage: 1.5, Speed: 0.4, Size: 2.5, XP: 15,
		Ability: AbilityAuraSlow, Cooldown: 5,
		AuraRadius: 300, AuraSlow: 0.5, AuraDuration: 1.5,
	},
	BossPlagueHerald: {
		ID: BossPlagueHerald, Name: "Plague Herald", Glyph: GlyphPlagueHerald,
		Health: 8, Damage: 1.8, Speed: 0.7, Size: 1.8, XP: 10,
		Ability: AbilitySummon, Cooldown: 5,
		SummonCount: 3, SummonRadius: 80,
	},
	BossInfernoLord: {
		ID: BossInfernoLord, Name: "Inferno Lord", Glyph: GlyphInfernoLord,
		Health: 12, Damage: 2.5, Speed: 0.8, Size: 2.2, XP: 12,
		Ability: AbilityRage, Cooldown: 5,
		RageThreshold: 0.3, RageBoost: 1.5,
	},
}

// Boss returns the definition for id and whether it exists.
func Boss(id BossID) (BossDef, bool) {
	d, ok := bossDefs[id]
	return d, ok
}

// bossRotation is cycled after the first boss wave.
var bossRotation = [...]BossID{BossVoidReaver, BossFrostColossus, BossPlagueHerald, BossInfernoLord}

// BossForWave returns the archetype for the n-th boss wave (1-based).
// The first boss wave is always the Blood Titan; later ones cycle through
// the rotation starting with the Void Reaver.
func BossForWave(n int) BossID {
	if n <= 1 {
		return BossBloodTitan
	}
	return bossRotation[(n-2)%len(bossRotation)]
}
