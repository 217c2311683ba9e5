package system

import (
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/ecs"
)

// Status layers timed modifiers onto the velocities written by the input
// and AI passes, counts their durations down and applies regeneration.
type Status struct{}

func (Status) Update(w *ecs.World, dt float64) {
	applyVelocityModifiers(w)
	tickTimers(w, dt)
	regenerate(w, dt)
}

func applyVelocityModifiers(w *ecs.World) {
	for _, id := range w.Query(component.CVelocity) {
		frozen := w.Has(id, component.CFrozen)
		slow := w.Get(id, component.CSlowed)
		kb := w.Get(id, component.CKnockback)
		if !frozen && slow == nil && kb == nil {
			continue
		}
		vel := w.Get(id, component.CVelocity).(component.Velocity)
		switch {
		case frozen:
			vel = component.Velocity{}
		case slow != nil:
			f := 1 - slow.(component.Slowed).Percent
			vel.X *= f
			vel.Y *= f
		}
		if kb != nil {
			k := kb.(component.Knockback)
			vel.X += k.X
			vel.Y += k.Y
		}
		w.Add(id, vel)
	}
}

// timer adapts one timed fragment kind for tickTimers.
type timer struct {
	kind ecs.ComponentType
	step func(c ecs.Component, dt float64) (ecs.Component, bool) // false once expired
}

var timedEffects = []timer{
	{component.CSlowed, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.Slowed)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
	{component.CInvulnerable, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.Invulnerable)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
	{component.CFrozen, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.Frozen)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
	{component.CKnockback, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.Knockback)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
	{component.CDamageBoost, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.DamageBoost)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
	{component.CHitFlash, func(c ecs.Component, dt float64) (ecs.Component, bool) {
		e := c.(component.HitFlash)
		e.Remaining -= dt
		return e, e.Remaining > 0
	}},
}

func tickTimers(w *ecs.World, dt float64) {
	for _, t := range timedEffects {
		for _, id := range w.Query(t.kind) {
			c := w.Get(id, t.kind)
			if c == nil {
				continue
			}
			if next, live := t.step(c, dt); live {
				w.Add(id, next)
			} else {
				w.Remove(id, t.kind)
			}
		}
	}
	for _, id := range w.Query(component.CScreenEffect) {
		se := w.Get(id, component.CScreenEffect).(component.ScreenEffect)
		se.Remaining -= dt
		if se.Remaining <= 0 {
			w.DestroyEntity(id)
			continue
		}
		w.Add(id, se)
	}
}

func regenerate(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CHealth) {
		h := w.Get(id, component.CHealth).(component.Health)
		if h.Regen <= 0 || h.Current <= 0 || h.Current >= h.Max {
			continue
		}
		h.Current = clamp(h.Current+h.Regen*dt, 0, h.Max)
		w.Add(id, h)
	}
}

// Re-applying any timed effect replaces it: the new duration and magnitude
// win, nothing stacks.

func ApplySlow(w *ecs.World, id ecs.EntityID, percent, duration float64) {
	w.Add(id, component.Slowed{Percent: clamp(percent, 0, 1), Remaining: duration})
}

func ApplyInvulnerable(w *ecs.World, id ecs.EntityID, duration float64) {
	w.Add(id, component.Invulnerable{Remaining: duration})
}

func ApplyFreeze(w *ecs.World, id ecs.EntityID, duration float64) {
	w.Add(id, component.Frozen{Remaining: duration})
}

func ApplyKnockback(w *ecs.World, id ecs.EntityID, vx, vy, duration float64) {
	w.Add(id, component.Knockback{X: vx, Y: vy, Remaining: duration})
}

func ApplyDamageBoost(w *ecs.World, id ecs.EntityID, amount, duration float64) {
	w.Add(id, component.DamageBoost{Amount: amount, Remaining: duration})
}

// IsInvulnerable reports whether id currently ignores incoming damage.
func IsInvulnerable(w *ecs.World, id ecs.EntityID) bool {
	return w.Has(id, component.CInvulnerable)
}

// DamageBonus returns the flat bonus from an active DamageBoost.
func DamageBonus(w *ecs.World, id ecs.EntityID) float64 {
	if c := w.Get(id, component.CDamageBoost); c != nil {
		return c.(component.DamageBoost).Amount
	}
	return 0
}
