package assets

// MapID identifies an arena layout.
type MapID uint8

const (
	MapDarkSanctum MapID = iota
	MapBloodCathedral
	MapCursedCrypts
)

// HazardKind identifies a static damage zone type.
type HazardKind uint8

const (
	HazardBloodPool HazardKind = iota + 1
	HazardSpikeTrap
)

// HazardDef is the template for one hazard kind.
type HazardDef struct {
	Kind     HazardKind
	Glyph    string
	Damage   float64
	Interval float64 // seconds between damage ticks
	Radius   float64
	Toggle   float64 // >0: alternates active/inactive every Toggle seconds
}

// MapDef describes an arena and the hazards scattered over it.
type MapDef struct {
	ID           MapID
	Key          string
	Name         string
	Floor        string
	Hazard       HazardKind
	HazardCount  int
	HazardMinRad float64 // distance band from the arena center
	HazardMaxRad float64
}

var hazardDefs = map[HazardKind]HazardDef{
	HazardBloodPool: {Kind: HazardBloodPool, Glyph: GlyphBloodPool, Damage: 5, Interval: 1, Radius: 60},
	HazardSpikeTrap: {Kind: HazardSpikeTrap, Glyph: GlyphSpikeTrap, Damage: 20, Interval: 2, Radius: 40, Toggle: 2},
}

// Hazard returns the template for kind.
func Hazard(kind HazardKind) (HazardDef, bool) {
	d, ok := hazardDefs[kind]
	return d, ok
}

// Maps is the ordered list of selectable arenas.
var Maps = []MapDef{
	{ID: MapDarkSanctum, Key: "sanctum", Name: "Dark Sanctum", Floor: "⬛"},
	{
		ID: MapBloodCathedral, Key: "cathedral", Name: "Blood Cathedral", Floor: "🟥",
		Hazard: HazardBloodPool, HazardCount: 8, HazardMinRad: 150, HazardMaxRad: 400,
	},
	{
		ID: MapCursedCrypts, Key: "crypts", Name: "Cursed Crypts", Floor: "🟫",
		Hazard: HazardSpikeTrap, HazardCount: 12, HazardMinRad: 150, HazardMaxRad: 400,
	},
}

// Map returns the definition for id. Unknown IDs fall back to the first map.
func Map(id MapID) MapDef {
	for _, m := range Maps {
		if m.ID == id {
			return m
		}
	}
	return Maps[0]
}

// MapByKey looks up a map by its command-line name.
func MapByKey(key string) (MapDef, bool) {
	for _, m := range Maps {
		if m.Key == key {
			return m, true
		}
	}
	return MapDef{}, false
}
