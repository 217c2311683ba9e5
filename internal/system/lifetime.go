package system

import (
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/ecs"
)

// Lifecycle counts down every timed entity and destroys it on expiry.
type Lifecycle struct{}

func (Lifecycle) Update(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CProjectile) {
		p := w.Get(id, component.CProjectile).(component.Projectile)
		p.Remaining -= dt
		w.Add(id, p)
		if p.Remaining <= 0 {
			w.DestroyEntity(id)
		}
	}
	for _, id := range w.Query(component.CLifetime) {
		l := w.Get(id, component.CLifetime).(component.Lifetime)
		l.Remaining -= dt
		w.Add(id, l)
		if l.Remaining <= 0 {
			w.DestroyEntity(id)
		}
	}
	for _, id := range w.Query(component.CParticle) {
		p := w.Get(id, component.CParticle).(component.Particle)
		p.Remaining -= dt
		w.Add(id, p)
		if p.Remaining <= 0 {
			w.DestroyEntity(id)
		}
	}
	for _, id := range w.Query(component.CPowerUp) {
		p := w.Get(id, component.CPowerUp).(component.PowerUp)
		p.Remaining -= dt
		w.Add(id, p)
		if p.Remaining <= 0 {
			w.DestroyEntity(id)
		}
	}
}
