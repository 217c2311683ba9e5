package component

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/ecs"
)

const (
	CProjectile ecs.ComponentType = 17
	CHoming     ecs.ComponentType = 18
	COrbit      ecs.ComponentType = 19
	CLifetime   ecs.ComponentType = 20
	CParticle   ecs.ComponentType = 21
)

// Projectile damages the first opposing entity it touches. Piercing
// projectiles keep going but never hit the same entity twice.
type Projectile struct {
	OwnerTeam Side
	Damage    float64
	Remaining float64
	Piercing  bool
	Slow      float64
	Source    assets.WeaponID
	Hits      map[ecs.EntityID]bool
}

func (Projectile) Type() ecs.ComponentType { return CProjectile }

// Homing re-aims at Target every frame.
type Homing struct {
	Target ecs.EntityID
	Speed  float64
}

func (Homing) Type() ecs.ComponentType { return CHoming }

// Orbit pins the entity to a circle around Owner.
type Orbit struct {
	Owner  ecs.EntityID
	Angle  float64
	Radius float64
	Speed  float64 // radians per second
}

func (Orbit) Type() ecs.ComponentType { return COrbit }

type Lifetime struct {
	Remaining float64
}

func (Lifetime) Type() ecs.ComponentType { return CLifetime }

type Particle struct {
	Remaining float64
}

func (Particle) Type() ecs.ComponentType { return CParticle }
