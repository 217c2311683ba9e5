package component

import "emoji-survivors/internal/ecs"

const (
	CDamage ecs.ComponentType = 6
	CTeam   ecs.ComponentType = 7
)

// Damage is the contact damage an entity deals.
type Damage struct {
	Amount float64
}

func (Damage) Type() ecs.ComponentType { return CDamage }

// Side is which team an entity fights for.
type Side uint8

const (
	SidePlayer Side = iota + 1
	SideEnemy
)

type Team struct {
	Side Side
}

func (Team) Type() ecs.ComponentType { return CTeam }

// Opposes reports whether a and b are on different, non-zero sides.
func Opposes(a, b Side) bool {
	return a != 0 && b != 0 && a != b
}
