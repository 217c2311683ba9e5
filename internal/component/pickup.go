package component

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/ecs"
)

const (
	CPowerUp        ecs.ComponentType = 22
	CGuaranteedDrop ecs.ComponentType = 23
	CHazard         ecs.ComponentType = 24
)

// PowerUpKind is what a pickup grants.
type PowerUpKind uint8

const (
	PowerUpHealth PowerUpKind = iota
	PowerUpXP
	PowerUpDamage
)

type PowerUp struct {
	Kind      PowerUpKind
	Remaining float64
}

func (PowerUp) Type() ecs.ComponentType { return CPowerUp }

// GuaranteedDrop forces a power-up drop on death.
type GuaranteedDrop struct{}

func (GuaranteedDrop) Type() ecs.ComponentType { return CGuaranteedDrop }

// Hazard is a static damage zone. It damages player-side entities inside
// Radius once every Interval seconds. Toggling hazards flip Active every
// Toggle seconds.
type Hazard struct {
	Kind        assets.HazardKind
	Radius      float64
	Damage      float64
	Interval    float64
	Timer       float64
	Toggle      float64
	ToggleTimer float64
	Active      bool
}

func (Hazard) Type() ecs.ComponentType { return CHazard }
