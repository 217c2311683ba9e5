package config

// Arena and frame timing.
const (
	DefaultWidth  = 1280.0
	DefaultHeight = 720.0
	FPS           = 60
)

// Player.
const (
	PlayerSize          = 32.0
	PlayerContactDamage = 5.0
	PlayerRegen         = 0.5 // hp per second
)

// Auto-attack.
const (
	AutoAttackDamage   = 10.0
	AutoAttackRange    = 200.0
	AutoAttackCooldown = 0.5
	ProjectileSpeed    = 400.0
	ProjectileSize     = 8.0
	ProjectileLifetime = 3.0
)

// Waves.
const (
	InitialEnemies    = 5.0
	SpawnMinDistance  = 400.0
	SpawnMaxDistance  = 600.0
	SpawnPadding      = 50.0
	BossSpawnPadding  = 100.0
	BossInterval      = 5
	EliteMinWave      = 3
	EliteChance       = 0.10
	EliteHealthMult   = 2.0
	EliteXPMult       = 2.0
	EliteDamageMult   = 1.5
	TimeScalingPerMin = 1.1
)

// Experience.
const (
	XPBase         = 100
	XPLevelFactor  = 1.5
	MaxLevel       = 50
	UpgradeChoices = 3
)

// Contact damage.
const ContactCooldown = 0.5

// Abilities.
const (
	DashCooldown    = 8.0
	DashDistance    = 150.0
	DashInvuln      = 0.3
	NovaCooldown    = 10.0
	NovaDamage      = 150.0
	NovaRadius      = 100.0
	NovaKnockback   = 200.0
	KnockbackTime   = 0.2
	MissileCooldown = 6.0
	MissileDamage   = 30.0
	MissileSpeed    = 300.0
	MissileCount    = 3
	HomingHitDist   = 10.0
	FreezeCooldown  = 30.0
	FreezeSlow      = 0.7
	FreezeDuration  = 3.0
)

// Power-ups.
const (
	PowerUpLifetime   = 10.0
	PowerUpRadius     = 30.0
	PowerUpHeal       = 25.0
	PowerUpXP         = 50
	DamageBoostAmount = 5.0
	DamageBoostTime   = 10.0
)

// Limits.
const (
	MaxEntities    = 500
	MaxProjectiles = 200
)

// Presentation timers.
const (
	HitFlashTime     = 0.1
	DamageNumberTime = 0.8
	ParticleTime     = 0.5
	ParticleCount    = 6
	MarkerTime       = 0.5
)
