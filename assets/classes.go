package assets

// ClassID identifies a playable character class.
type ClassID uint8

const (
	ClassShadowKnight ClassID = iota
	ClassBloodMage
	ClassVoidGuardian
)

// ClassDef defines a player class with stats and passive mechanics.
type ClassDef struct {
	ID          ClassID
	Key         string // command-line name
	Name        string
	Glyph       string
	Lore        string
	MaxHP       float64
	Speed       float64
	Damage      float64
	PassiveDesc string

	DashCooldownMult  float64 // multiplies the Q cooldown
	AbilityDamageMult float64 // multiplies every ability's damage
	DamageTakenMult   float64 // multiplies incoming damage
	StartWeapon       WeaponID
}

// Classes is the ordered list of selectable player classes.
var Classes = []ClassDef{
	{
		ID: ClassShadowKnight, Key: "knight", Name: "Shadow Knight", Glyph: GlyphKnight,
		Lore:  "A sworn blade of the sanctum who strikes from between heartbeats",
		MaxHP: 100, Speed: 250, Damage: 10,
		PassiveDesc:      "Shadow Dash recharges 25% faster",
		DashCooldownMult: 0.75, AbilityDamageMult: 1, DamageTakenMult: 1,
		StartWeapon:      WeaponShadowBlade,
	},
	{
		ID: ClassBloodMage, Key: "mage", Name: "Blood Mage", Glyph: GlyphMage,
		Lore:  "Pays for every spell in blood, and the spells are worth it",
		MaxHP: 70, Speed: 220, Damage: 15,
		PassiveDesc:      "Abilities deal 50% more damage",
		DashCooldownMult: 1, AbilityDamageMult: 1.5, DamageTakenMult: 1,
		StartWeapon:      WeaponArcaneSeeker,
	},
	{
		ID: ClassVoidGuardian, Key: "guardian", Name: "Void Guardian", Glyph: GlyphGuardian,
		Lore:  "Armored in the hush between stars",
		MaxHP: 150, Speed: 200, Damage: 7,
		PassiveDesc:      "Takes 25% less damage",
		DashCooldownMult: 1, AbilityDamageMult: 1, DamageTakenMult: 0.75,
		StartWeapon:      WeaponGarlicAura,
	},
}

// Class returns the definition for id. Unknown IDs fall back to the first class.
func Class(id ClassID) ClassDef {
	for _, c := range Classes {
		if c.ID == id {
			return c
		}
	}
	return Classes[0]
}

// ClassByKey looks up a class by its command-line name.
func ClassByKey(key string) (ClassDef, bool) {
	for _, c := range Classes {
		if c.Key == key {
			return c, true
		}
	}
	return ClassDef{}, false
}
