package assets

// Emoji constants used as entity glyphs.
const (
	GlyphKnight   = "🗡"
	GlyphMage     = "🧛"
	GlyphGuardian = "🛡"

	GlyphBasic  = "👹"
	GlyphFast   = "🦇"
	GlyphTank   = "🗿"
	GlyphRanged = "🧟"
	GlyphElite  = "😈"

	GlyphBloodTitan    = "👺"
	GlyphVoidReaver    = "👁"
	GlyphFrostColossus = "🥶"
	GlyphPlagueHerald  = "🦠"
	GlyphInfernoLord   = "🔥"

	GlyphBolt       = "•"
	GlyphEnemyBolt  = "∘"
	GlyphMissile    = "✦"
	GlyphLance      = "➶"
	GlyphBlade      = "⚔"
	GlyphSpark      = "·"
	GlyphHealth     = "❤️"
	GlyphXPOrb      = "💠"
	GlyphDamageUp   = "💪"
	GlyphBloodPool  = "🩸"
	GlyphSpikeTrap  = "📍"
	GlyphSpikeDown  = "▫"
)
