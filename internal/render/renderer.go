package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

// hudRows is the number of terminal rows reserved below the arena.
const hudRows = 4

// Renderer draws simulation frames onto a tcell screen.
type Renderer struct {
	screen tcell.Screen
	camera *Camera
}

// NewRenderer creates a Renderer for a worldW x worldH arena.
func NewRenderer(screen tcell.Screen, worldW, worldH float64) *Renderer {
	w, h := screen.Size()
	return &Renderer{
		screen: screen,
		camera: NewCamera(worldW, worldH, w, h-hudRows),
	}
}

// Resize refits the camera to the current screen size.
func (r *Renderer) Resize() {
	w, h := r.screen.Size()
	r.camera.Resize(w, h-hudRows)
}

// Camera exposes the arena mapping, mostly for tests and mouse input.
func (r *Renderer) Camera() *Camera { return r.camera }

// Draw renders the arena, entities, floating numbers and the HUD, then shows the screen.
func (r *Renderer) Draw(f Frame) {
	r.screen.Clear()
	bg := arenaBackground(f.Effects)
	r.drawFloor(f.Floor, bg)
	r.drawSprites(f.Sprites, bg)
	r.drawNumbers(f.Numbers, bg)
	r.DrawHUD(f.HUD)
	if f.HUD.Pending > 0 && len(f.HUD.Choices) > 0 {
		r.drawChoices(f.HUD.Choices)
	}
	r.screen.Show()
}

func (r *Renderer) drawFloor(glyph string, bg tcell.Color) {
	style := tcell.StyleDefault.Background(bg)
	c := r.camera
	for y := 0; y < c.Rows; y++ {
		for x := 0; x < c.Cols; x++ {
			sx, sy := c.OffsetX+x*2, c.OffsetY+y
			// Checkered floor keeps the arena readable under dense sprites.
			if (x+y)%4 == 0 && glyph != "" {
				r.putGlyph(sx, sy, glyph, style)
			} else {
				r.screen.SetContent(sx, sy, ' ', nil, style)
				r.screen.SetContent(sx+1, sy, ' ', nil, style)
			}
		}
	}
}

func (r *Renderer) drawSprites(sprites []Sprite, bg tcell.Color) {
	sorted := make([]Sprite, len(sprites))
	copy(sorted, sprites)
	// Ascending render order; lower is drawn first, behind.
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Order < sorted[j].Order })

	for _, s := range sorted {
		sx, sy, ok := r.camera.WorldToScreen(s.X, s.Y)
		if !ok {
			continue
		}
		fg := s.Color
		if s.Flash {
			fg = flashColor
		}
		r.putGlyph(sx, sy, s.Glyph, tcell.StyleDefault.Foreground(fg).Background(bg))
	}
}

func (r *Renderer) drawNumbers(nums []FloatText, bg tcell.Color) {
	for _, n := range nums {
		sx, sy, ok := r.camera.WorldToScreen(n.X, n.Y)
		if !ok {
			continue
		}
		color := enemyDamageColor
		if n.OnPlayer {
			color = playerHurtColor
		}
		r.drawText(sx, sy-1, n.Text, tcell.StyleDefault.Foreground(color).Background(bg).Bold(true))
	}
}

func (r *Renderer) drawChoices(choices []string) {
	c := r.camera
	title := "LEVEL UP! choose an upgrade"
	width := runewidth.StringWidth(title)
	for _, ch := range choices {
		width = max(width, runewidth.StringWidth(ch)+4)
	}
	x := c.OffsetX + (c.Cols*2-width)/2
	y := c.OffsetY + c.Rows/2 - len(choices)/2 - 1
	panel := tcell.StyleDefault.Background(tcell.ColorDarkSlateGray)
	for row := 0; row <= len(choices)+1; row++ {
		for col := -1; col <= width; col++ {
			r.screen.SetContent(x+col, y+row, ' ', nil, panel)
		}
	}
	r.drawText(x, y, title, panel.Foreground(tcell.ColorGold).Bold(true))
	for i, ch := range choices {
		r.drawText(x, y+1+i, string(rune('1'+i))+". "+ch, panel.Foreground(tcell.ColorWhite))
	}
}

// putGlyph draws a single glyph (ASCII or multi-rune emoji) at screen position (x, y).
func (r *Renderer) putGlyph(x, y int, glyph string, style tcell.Style) {
	runes := []rune(glyph)
	if len(runes) == 0 {
		return
	}
	var combc []rune
	if len(runes) > 1 {
		combc = runes[1:]
	}
	r.screen.SetContent(x, y, runes[0], combc, style)
	if runewidth.StringWidth(glyph) < 2 {
		// Narrow glyphs still own both columns of their cell.
		r.screen.SetContent(x+1, y, ' ', nil, style)
	}
}
