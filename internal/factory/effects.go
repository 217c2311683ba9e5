package factory

import (
	"math"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

var powerUpGlyphs = map[component.PowerUpKind]string{
	component.PowerUpHealth: assets.GlyphHealth,
	component.PowerUpXP:     assets.GlyphXPOrb,
	component.PowerUpDamage: assets.GlyphDamageUp,
}

// NewPowerUp drops a pickup at (x, y).
func NewPowerUp(w *ecs.World, x, y float64, kind component.PowerUpKind) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.PowerUp{Kind: kind, Remaining: config.PowerUpLifetime})
	w.Add(id, component.Renderable{
		Glyph:       powerUpGlyphs[kind],
		FGColor:     tcell.ColorGreen,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 2,
	})
	return id
}

// NewHazard places a static damage zone.
func NewHazard(w *ecs.World, x, y float64, def assets.HazardDef) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Hazard{
		Kind:     def.Kind,
		Radius:   def.Radius,
		Damage:   def.Damage,
		Interval: def.Interval,
		Timer:    def.Interval,
		Toggle:   def.Toggle,
		Active:   true,
	})
	w.Add(id, component.Renderable{
		Glyph:       def.Glyph,
		FGColor:     tcell.ColorDarkRed,
		BGColor:     tcell.ColorDefault,
		RenderOrder: 1,
	})
	return id
}

// NewParticles bursts n short-lived sparks outward from (x, y).
func NewParticles(w *ecs.World, rng *rand.Rand, x, y float64, n int, color tcell.Color) {
	for i := 0; i < n; i++ {
		angle := rng.Float64() * 2 * math.Pi
		speed := 40 + rng.Float64()*80
		id := w.CreateEntity()
		w.Add(id, component.Position{X: x, Y: y})
		w.Add(id, component.Velocity{X: math.Cos(angle) * speed, Y: math.Sin(angle) * speed})
		w.Add(id, component.Particle{Remaining: config.ParticleTime})
		w.Add(id, component.Renderable{
			Glyph:       assets.GlyphSpark,
			FGColor:     color,
			BGColor:     tcell.ColorDefault,
			RenderOrder: 3,
		})
	}
}

// NewAudioEvent queues a one-shot sound. Unconsumed events expire on their own.
func NewAudioEvent(w *ecs.World, kind component.SoundKind) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.AudioEvent{Kind: kind})
	w.Add(id, component.Lifetime{Remaining: config.MarkerTime})
	return id
}

// NewDamageNumber floats the amount upward from (x, y).
func NewDamageNumber(w *ecs.World, x, y, amount float64, onPlayer bool) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{Y: -40})
	w.Add(id, component.DamageNumber{Amount: amount, OnPlayer: onPlayer})
	w.Add(id, component.Lifetime{Remaining: config.DamageNumberTime})
	return id
}

// NewScreenEffect starts a full-screen tint that lasts duration seconds.
func NewScreenEffect(w *ecs.World, kind component.ScreenKind, duration float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.ScreenEffect{Kind: kind, Remaining: duration})
	return id
}
