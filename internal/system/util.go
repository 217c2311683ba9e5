package system

import (
	"math"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/ecs"
)

// PlayerID returns the first entity tagged as the player, or NilEntity.
func PlayerID(w *ecs.World) ecs.EntityID {
	ids := w.Query(component.CTagPlayer)
	if len(ids) == 0 {
		return ecs.NilEntity
	}
	return ids[0]
}

func position(w *ecs.World, id ecs.EntityID) (component.Position, bool) {
	c := w.Get(id, component.CPosition)
	if c == nil {
		return component.Position{}, false
	}
	return c.(component.Position), true
}

func sizeOf(w *ecs.World, id ecs.EntityID) component.Size {
	if c := w.Get(id, component.CSize); c != nil {
		return c.(component.Size)
	}
	return component.Size{}
}

func sideOf(w *ecs.World, id ecs.EntityID) component.Side {
	if c := w.Get(id, component.CTeam); c != nil {
		return c.(component.Team).Side
	}
	return 0
}

// livingHealth returns the entity's health if it is still above zero.
func livingHealth(w *ecs.World, id ecs.EntityID) (component.Health, bool) {
	c := w.Get(id, component.CHealth)
	if c == nil {
		return component.Health{}, false
	}
	h := c.(component.Health)
	return h, h.Current > 0
}

func distSq(a, b component.Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	return dx*dx + dy*dy
}

// direction returns the unit vector from a to b and the distance between them.
// Coincident points yield (0, 0, 0).
func direction(a, b component.Position) (float64, float64, float64) {
	dx, dy := b.X-a.X, b.Y-a.Y
	d := math.Hypot(dx, dy)
	if d == 0 {
		return 0, 0, 0
	}
	return dx / d, dy / d, d
}

func clamp(v, lo, hi float64) float64 {
	if lo > hi {
		return (lo + hi) / 2
	}
	return math.Max(lo, math.Min(hi, v))
}
