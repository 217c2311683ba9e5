package system

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/ecs"
)

// Hazards damages player-side entities standing in a hazard zone. Each
// hazard keeps a single timer: once Interval has passed it waits, armed,
// until someone steps in, then hits everyone inside and rearms.
type Hazards struct{}

func (Hazards) Update(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CHazard, component.CPosition) {
		hz := w.Get(id, component.CHazard).(component.Hazard)
		if hz.Toggle > 0 {
			hz.ToggleTimer += dt
			if hz.ToggleTimer >= hz.Toggle {
				hz.ToggleTimer = 0
				hz.Active = !hz.Active
				toggleGlyph(w, id, hz)
			}
		}
		if hz.Timer < hz.Interval {
			hz.Timer += dt
		}
		if hz.Active && hz.Timer >= hz.Interval {
			pos, _ := position(w, id)
			struck := false
			for _, t := range w.Query(component.CTeam, component.CPosition, component.CHealth) {
				if sideOf(w, t) != component.SidePlayer {
					continue
				}
				tpos, _ := position(w, t)
				if distSq(pos, tpos) > hz.Radius*hz.Radius {
					continue
				}
				ApplyDamage(w, t, hz.Damage)
				struck = true
			}
			if struck {
				hz.Timer = 0
			}
		}
		w.Add(id, hz)
	}
}

func toggleGlyph(w *ecs.World, id ecs.EntityID, hz component.Hazard) {
	c := w.Get(id, component.CRenderable)
	if c == nil || hz.Kind != assets.HazardSpikeTrap {
		return
	}
	r := c.(component.Renderable)
	r.Glyph = assets.GlyphSpikeTrap
	if !hz.Active {
		r.Glyph = assets.GlyphSpikeDown
	}
	w.Add(id, r)
}
