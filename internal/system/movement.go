package system

import (
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
)

// Movement integrates position from velocity and keeps sized entities
// inside the arena.
type Movement struct {
	Cfg *config.Config
}

func (m *Movement) Update(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CPosition, component.CVelocity) {
		pos, ok := position(w, id)
		if !ok {
			continue
		}
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		pos.X += vel.X * dt
		pos.Y += vel.Y * dt
		if c := w.Get(id, component.CSize); c != nil {
			pos = ClampToWorld(m.Cfg, pos, c.(component.Size))
		}
		w.Add(id, pos)
	}
}

// ClampToWorld pulls pos inward so a box of the given size stays inside the arena.
func ClampToWorld(cfg *config.Config, pos component.Position, size component.Size) component.Position {
	hw, hh := size.W/2, size.H/2
	pos.X = clamp(pos.X, hw, cfg.Width-hw)
	pos.Y = clamp(pos.Y, hh, cfg.Height-hh)
	return pos
}

// ClampPadding keeps pos at least pad units away from every arena edge.
func ClampPadding(cfg *config.Config, pos component.Position, pad float64) component.Position {
	pos.X = clamp(pos.X, pad, cfg.Width-pad)
	pos.Y = clamp(pos.Y, pad, cfg.Height-pad)
	return pos
}
