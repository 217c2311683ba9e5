package render

// Camera maps the continuous arena onto terminal cells. Every glyph takes
// two columns, so the arena is laid out on a grid of Cols x Rows glyph cells.
type Camera struct {
	OffsetX, OffsetY int // top-left corner in terminal columns/rows
	Cols, Rows       int // glyph cells available
	WorldW, WorldH   float64
}

// NewCamera fits a worldW x worldH arena into a viewW x viewH terminal area.
func NewCamera(worldW, worldH float64, viewW, viewH int) *Camera {
	c := &Camera{WorldW: worldW, WorldH: worldH}
	c.Resize(viewW, viewH)
	return c
}

// Resize refits the arena after the terminal changed size, keeping the
// arena's aspect ratio with glyph cells treated as square.
func (c *Camera) Resize(viewW, viewH int) {
	cols, rows := viewW/2, viewH
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	aspect := c.WorldW / c.WorldH
	if float64(cols)/float64(rows) > aspect {
		cols = int(float64(rows) * aspect)
	} else {
		rows = int(float64(cols) / aspect)
	}
	c.Cols, c.Rows = max(cols, 1), max(rows, 1)
	c.OffsetX = (viewW - c.Cols*2) / 2
	c.OffsetY = (viewH - c.Rows) / 2
}

// WorldToScreen converts world (wx, wy) to terminal (sx, sy).
// visible is false when the point lies outside the arena.
func (c *Camera) WorldToScreen(wx, wy float64) (sx, sy int, visible bool) {
	if wx < 0 || wy < 0 || wx >= c.WorldW || wy >= c.WorldH {
		return 0, 0, false
	}
	cx := int(wx / c.WorldW * float64(c.Cols))
	cy := int(wy / c.WorldH * float64(c.Rows))
	return c.OffsetX + cx*2, c.OffsetY + cy, true
}

// ScreenToWorld converts terminal (sx, sy) to the world point at the
// center of that glyph cell.
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	cx := float64((sx-c.OffsetX)/2) + 0.5
	cy := float64(sy-c.OffsetY) + 0.5
	return cx / float64(c.Cols) * c.WorldW, cy / float64(c.Rows) * c.WorldH
}
