package component

import "emoji-survivors/internal/ecs"

const (
	CPosition ecs.ComponentType = 1
	CVelocity ecs.ComponentType = 2
	CSize     ecs.ComponentType = 3
)

// Position is the entity's center in world units.
type Position struct {
	X, Y float64
}

func (Position) Type() ecs.ComponentType { return CPosition }

// Velocity is in world units per second.
type Velocity struct {
	X, Y float64
}

func (Velocity) Type() ecs.ComponentType { return CVelocity }

// Size is the bounding box, centered on Position. Circle tests use W/2.
type Size struct {
	W, H float64
}

func (Size) Type() ecs.ComponentType { return CSize }

// Radius returns the bounding-circle radius.
func (s Size) Radius() float64 { return s.W / 2 }
