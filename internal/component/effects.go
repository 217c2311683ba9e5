package component

import "emoji-survivors/internal/ecs"

const (
	CSlowed       ecs.ComponentType = 25
	CInvulnerable ecs.ComponentType = 26
	CFrozen       ecs.ComponentType = 27
	CKnockback    ecs.ComponentType = 28
	CDamageBoost  ecs.ComponentType = 29
	CHitFlash     ecs.ComponentType = 30
	CScreenEffect ecs.ComponentType = 31
)

// Slowed scales velocity by (1 - Percent).
type Slowed struct {
	Percent   float64
	Remaining float64
}

func (Slowed) Type() ecs.ComponentType { return CSlowed }

type Invulnerable struct {
	Remaining float64
}

func (Invulnerable) Type() ecs.ComponentType { return CInvulnerable }

type Frozen struct {
	Remaining float64
}

func (Frozen) Type() ecs.ComponentType { return CFrozen }

// Knockback adds (X, Y) to velocity while it lasts.
type Knockback struct {
	X, Y      float64
	Remaining float64
}

func (Knockback) Type() ecs.ComponentType { return CKnockback }

type DamageBoost struct {
	Amount    float64
	Remaining float64
}

func (DamageBoost) Type() ecs.ComponentType { return CDamageBoost }

type HitFlash struct {
	Remaining float64
}

func (HitFlash) Type() ecs.ComponentType { return CHitFlash }

// ScreenKind names a full-screen tint.
type ScreenKind uint8

const (
	ScreenTimeFreeze ScreenKind = iota + 1
	ScreenLevelUp
	ScreenBossWarning
)

// ScreenEffect lives on its own entity, destroyed when it expires.
type ScreenEffect struct {
	Kind      ScreenKind
	Remaining float64
}

func (ScreenEffect) Type() ecs.ComponentType { return CScreenEffect }
