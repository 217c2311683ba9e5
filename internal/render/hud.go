package render

import (
	"fmt"
	"strings"

	"emoji-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

var abilityKeys = [component.NumAbilitySlots]string{"Q", "W", "E", "R"}

// DrawHUD renders the status panel in the rows below the arena.
func (r *Renderer) DrawHUD(h HUD) {
	screenW, screenH := r.screen.Size()
	hudY := screenH - hudRows
	r.drawHLine(hudY, tcell.ColorGray)

	white := tcell.StyleDefault.Foreground(tcell.ColorWhite)
	gray := tcell.StyleDefault.Foreground(tcell.ColorGray)

	frac := 0.0
	if h.MaxHP > 0 {
		frac = h.HP / h.MaxHP
	}
	bar := hpBar(frac, 20)
	col := r.drawText(0, hudY+1, fmt.Sprintf("[%s] ", h.Class), white)
	col = r.drawText(col, hudY+1, bar, tcell.StyleDefault.Foreground(healthColor(frac)))
	status := fmt.Sprintf(" %d/%d  Lv %d  XP %d/%d  Wave %d  Kills %d  %s  %s",
		int(h.HP), int(h.MaxHP), h.Level, h.XP, h.NextXP, h.Wave, h.Kills, clock(h.Time), h.Difficulty)
	if h.Boost > 0 {
		status += fmt.Sprintf("  +DMG %.0fs", h.Boost)
	}
	r.drawText(col, hudY+1, status, white)

	col = 0
	for i, cd := range h.Cooldowns {
		label := fmt.Sprintf("%s:%s ", abilityKeys[i], component.AbilitySlot(i))
		style := tcell.StyleDefault.Foreground(tcell.ColorAqua)
		if cd > 0 {
			label = fmt.Sprintf("%s:%4.1fs ", abilityKeys[i], cd)
			style = gray
		}
		col = r.drawText(col, hudY+2, label, style)
	}

	var parts []string
	for _, w := range h.Weapons {
		parts = append(parts, fmt.Sprintf("%s %s %d", w.Glyph, w.Name, w.Level))
	}
	line := runewidth.Truncate(strings.Join(parts, "  "), screenW, "…")
	r.drawText(0, hudY+3, line, tcell.StyleDefault.Foreground(tcell.ColorLightYellow))

	if h.Dead {
		msg := "YOU DIED"
		r.drawText((screenW-runewidth.StringWidth(msg))/2, r.camera.OffsetY+r.camera.Rows/2, msg,
			tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true))
	}
}

func hpBar(frac float64, width int) string {
	filled := int(frac*float64(width) + 0.5)
	filled = max(0, min(width, filled))
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}

func clock(sec float64) string {
	s := int(sec)
	return fmt.Sprintf("%02d:%02d", s/60, s%60)
}

func (r *Renderer) drawHLine(y int, color tcell.Color) {
	w, _ := r.screen.Size()
	style := tcell.StyleDefault.Foreground(color)
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, y, '─', nil, style)
	}
}

// drawText writes text from column x and returns the column after it.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		r.screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}
