package render

import (
	"emoji-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Background tints for full-screen effects, strongest first.
var effectTints = []struct {
	Kind  component.ScreenKind
	Color tcell.Color
}{
	{component.ScreenBossWarning, tcell.NewRGBColor(60, 0, 0)},
	{component.ScreenTimeFreeze, tcell.NewRGBColor(0, 20, 60)},
	{component.ScreenLevelUp, tcell.NewRGBColor(50, 40, 0)},
}

// arenaBackground picks the tint of the strongest active effect.
func arenaBackground(effects []component.ScreenKind) tcell.Color {
	for _, t := range effectTints {
		for _, k := range effects {
			if k == t.Kind {
				return t.Color
			}
		}
	}
	return tcell.ColorBlack
}

// healthColor shades the HP bar from green through yellow to red.
func healthColor(frac float64) tcell.Color {
	switch {
	case frac > 0.6:
		return tcell.ColorGreen
	case frac > 0.3:
		return tcell.ColorYellow
	}
	return tcell.ColorRed
}

const (
	flashColor       = tcell.ColorWhite
	playerHurtColor  = tcell.ColorRed
	enemyDamageColor = tcell.ColorLightYellow
)
