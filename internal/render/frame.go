package render

import (
	"emoji-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Sprite is one drawable entity in world coordinates.
type Sprite struct {
	X, Y  float64
	Glyph string
	Color tcell.Color
	Order int
	Flash bool
}

// FloatText is a damage number drifting above a hit.
type FloatText struct {
	X, Y     float64
	Text     string
	OnPlayer bool
}

// WeaponStatus is one owned weapon as shown in the HUD.
type WeaponStatus struct {
	Glyph string
	Name  string
	Level int
}

// HUD carries everything the status panel shows.
type HUD struct {
	Class      string
	Difficulty string
	HP, MaxHP  float64
	Level      int
	XP, NextXP int
	Wave       int
	Kills      int
	Time       float64
	Cooldowns  [component.NumAbilitySlots]float64
	Weapons    []WeaponStatus
	Boost      float64
	Pending    int
	Choices    []string
	Dead       bool
}

// Frame is a read-only snapshot of one simulation tick.
type Frame struct {
	Width, Height float64
	Floor         string
	Sprites       []Sprite
	Numbers       []FloatText
	Effects       []component.ScreenKind
	HUD           HUD
}
