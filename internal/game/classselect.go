package game

import (
	"context"
	"fmt"

	"emoji-survivors/assets"
	"emoji-survivors/internal/config"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// menuItem is one selectable row: a heading line and optional detail lines.
type menuItem struct {
	Title   string
	Details []string
}

var (
	titleStyle     = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 40, 60)).Bold(true)
	normalStyle    = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	dimStyle       = tcell.StyleDefault.Foreground(tcell.ColorGray)
	highlightStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.NewRGBColor(200, 40, 60))
	detailStyle    = tcell.StyleDefault.Foreground(tcell.NewRGBColor(150, 220, 255))
)

// runMenu shows a vertical list and blocks until the player picks a row.
// Returns false if the player quits or the context ends.
func (g *Game) runMenu(ctx context.Context, heading string, items []menuItem) (int, bool) {
	selected := 0
	for {
		g.drawMenu(heading, items, selected)
		ev, ok := g.nextEvent(ctx)
		if !ok {
			return 0, false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyUp:
				selected = (selected - 1 + len(items)) % len(items)
			case tcell.KeyDown:
				selected = (selected + 1) % len(items)
			case tcell.KeyEnter:
				return selected, true
			case tcell.KeyEscape, tcell.KeyCtrlC:
				return 0, false
			}
			switch r := ev.Rune(); r {
			case 'k', 'K':
				selected = (selected - 1 + len(items)) % len(items)
			case 'j', 'J':
				selected = (selected + 1) % len(items)
			case 'q', 'Q':
				return 0, false
			default:
				if idx := int(r - '1'); r >= '1' && idx < len(items) {
					return idx, true
				}
			}
		}
	}
}

func (g *Game) drawMenu(heading string, items []menuItem, selected int) {
	g.screen.Clear()
	w, _ := g.screen.Size()

	centerText := func(y int, text string, style tcell.Style) {
		x := max(0, (w-runewidth.StringWidth(text))/2)
		drawScreenText(g.screen, x, y, text, style)
	}

	centerText(1, "🩸 EMOJI SURVIVORS 🩸", titleStyle)
	centerText(2, heading, dimStyle)

	y := 4
	for i, item := range items {
		prefix := "  "
		style := normalStyle
		if i == selected {
			prefix = "► "
			style = highlightStyle
		}
		drawScreenText(g.screen, 2, y, fmt.Sprintf("%s[%d] %s", prefix, i+1, item.Title), style)
		y++
		for _, d := range item.Details {
			drawScreenText(g.screen, 8, y, d, detailStyle)
			y++
		}
		if len(item.Details) > 0 {
			y++
		}
	}
	centerText(y+1, "[j/k or ↑/↓] Navigate   [1-9] Quick-select   [Enter] Confirm   [q] Quit", dimStyle)
	g.screen.Show()
}

// pickClass asks for a class unless one was preselected.
func (g *Game) pickClass(ctx context.Context) (assets.ClassDef, bool) {
	if g.opts.Class != "" {
		c, ok := assets.ClassByKey(g.opts.Class)
		return c, ok
	}
	items := make([]menuItem, len(assets.Classes))
	for i, c := range assets.Classes {
		items[i] = menuItem{
			Title: c.Glyph + " " + c.Name,
			Details: []string{
				fmt.Sprintf("\"%s\"", c.Lore),
				fmt.Sprintf("HP:%-3.0f SPD:%-3.0f DMG:%-2.0f", c.MaxHP, c.Speed, c.Damage),
				"Passive: " + c.PassiveDesc,
			},
		}
	}
	i, ok := g.runMenu(ctx, "Choose your class", items)
	if !ok {
		return assets.ClassDef{}, false
	}
	return assets.Classes[i], true
}

// pickMap asks for an arena unless one was preselected.
func (g *Game) pickMap(ctx context.Context) (assets.MapDef, bool) {
	if g.opts.Map != "" {
		m, ok := assets.MapByKey(g.opts.Map)
		return m, ok
	}
	items := make([]menuItem, len(assets.Maps))
	for i, m := range assets.Maps {
		detail := "No hazards"
		if def, ok := assets.Hazard(m.Hazard); ok {
			detail = fmt.Sprintf("%d × %s hazards", m.HazardCount, def.Glyph)
		}
		items[i] = menuItem{Title: m.Floor + " " + m.Name, Details: []string{detail}}
	}
	i, ok := g.runMenu(ctx, "Choose your arena", items)
	if !ok {
		return assets.MapDef{}, false
	}
	return assets.Maps[i], true
}

// pickDifficulty asks for a difficulty unless one was preselected.
func (g *Game) pickDifficulty(ctx context.Context) (config.Difficulty, bool) {
	if g.opts.Difficulty != "" {
		d, err := config.ParseDifficulty(g.opts.Difficulty)
		return d, err == nil
	}
	levels := []config.Difficulty{config.Easy, config.Normal, config.Hard}
	items := make([]menuItem, len(levels))
	for i, d := range levels {
		m := config.DefaultMultipliers(d)
		items[i] = menuItem{
			Title: d.String(),
			Details: []string{fmt.Sprintf("enemy HP ×%.2f  enemy DMG ×%.2f  waves every %.0fs",
				m.EnemyHealth, m.EnemyDamage, m.SpawnInterval)},
		}
	}
	i, ok := g.runMenu(ctx, "Choose your difficulty", items)
	if !ok {
		return config.Normal, false
	}
	return levels[i], true
}

// drawScreenText writes a string to the screen at (x, y) with the given style.
func drawScreenText(screen tcell.Screen, x, y int, text string, style tcell.Style) int {
	col := x
	for _, ch := range text {
		screen.SetContent(col, y, ch, nil, style)
		col += runewidth.RuneWidth(ch)
	}
	return col
}
