package component

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/ecs"
)

const (
	CPlayer          ecs.ComponentType = 11
	CExperience      ecs.ComponentType = 12
	CAutoAttack      ecs.ComponentType = 13
	CAbilities       ecs.ComponentType = 14
	CWeaponInventory ecs.ComponentType = 15
	CLevelUpPending  ecs.ComponentType = 16
)

// Player holds the class and the last non-zero movement direction.
type Player struct {
	Class            assets.ClassID
	FacingX, FacingY float64
}

func (Player) Type() ecs.ComponentType { return CPlayer }

type Experience struct {
	Level int
	XP    int
	Next  int // XP needed for the next level
}

func (Experience) Type() ecs.ComponentType { return CExperience }

// AutoAttack fires at the nearest opposing entity in range. Timer counts up
// to Cooldown and stays there until a target appears.
type AutoAttack struct {
	Damage   float64
	Range    float64
	Cooldown float64
	Timer    float64
}

func (AutoAttack) Type() ecs.ComponentType { return CAutoAttack }

// Ready reports whether the cooldown has elapsed.
func (a AutoAttack) Ready() bool { return a.Timer >= a.Cooldown }

// AbilitySlot indexes the four player abilities.
type AbilitySlot uint8

const (
	SlotDash AbilitySlot = iota
	SlotNova
	SlotMissiles
	SlotFreeze
	NumAbilitySlots
)

func (s AbilitySlot) String() string {
	switch s {
	case SlotDash:
		return "shadow_dash"
	case SlotNova:
		return "blood_nova"
	case SlotMissiles:
		return "arcane_missiles"
	case SlotFreeze:
		return "time_freeze"
	}
	return "unknown"
}

// Abilities holds the remaining cooldown per slot. Zero means ready.
type Abilities struct {
	Remaining [NumAbilitySlots]float64
}

func (Abilities) Type() ecs.ComponentType { return CAbilities }

// WeaponInventory maps owned weapons to their level and fire timers.
// The maps are shared between copies; create them once with NewWeaponInventory.
type WeaponInventory struct {
	Levels map[assets.WeaponID]int
	Timers map[assets.WeaponID]float64
	Order  []assets.WeaponID // acquisition order
}

func (WeaponInventory) Type() ecs.ComponentType { return CWeaponInventory }

// NewWeaponInventory returns an inventory holding the given starting weapons at level 1.
func NewWeaponInventory(start ...assets.WeaponID) WeaponInventory {
	inv := WeaponInventory{
		Levels: make(map[assets.WeaponID]int),
		Timers: make(map[assets.WeaponID]float64),
	}
	for _, id := range start {
		inv.Levels[id] = 1
		inv.Order = append(inv.Order, id)
	}
	return inv
}

// LevelUpPending is attached when XP crosses a threshold and stripped once
// every pending level has been resolved.
type LevelUpPending struct {
	Count   int
	Choices []assets.WeaponID
}

func (LevelUpPending) Type() ecs.ComponentType { return CLevelUpPending }
