package system

// Pass priorities. Lower runs first; gaps leave room for new passes.
const (
	PriorityInput      = 10
	PriorityAbility    = 15
	PriorityAI         = 20
	PriorityBoss       = 25
	PriorityStatus     = 30
	PriorityMovement   = 40
	PriorityTargeting  = 50
	PriorityWeapons    = 52
	PriorityHoming     = 55
	PriorityProjectile = 60
	PriorityContact    = 62
	PriorityHazard     = 64
	PriorityPowerUp    = 66
	PrioritySpawner    = 70
	PriorityDeath      = 80
	PriorityLifecycle  = 90
	PriorityStats      = 95
)
