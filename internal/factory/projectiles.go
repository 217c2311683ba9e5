package factory

import (
	"math"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"

	"github.com/gdamore/tcell/v2"
)

// Shot describes a projectile beyond its position and velocity.
type Shot struct {
	Team     component.Side
	Damage   float64
	Glyph    string
	Lifetime float64 // defaults to config.ProjectileLifetime
	Size     float64 // defaults to config.ProjectileSize
	Piercing bool
	Slow     float64
	Source   assets.WeaponID
}

func shotColor(team component.Side) tcell.Color {
	if team == component.SideEnemy {
		return tcell.ColorOrangeRed
	}
	return tcell.ColorAqua
}

// NewProjectile creates a straight-flying projectile.
func NewProjectile(w *ecs.World, x, y, vx, vy float64, s Shot) ecs.EntityID {
	if s.Lifetime <= 0 {
		s.Lifetime = config.ProjectileLifetime
	}
	if s.Size <= 0 {
		s.Size = config.ProjectileSize
	}
	if s.Glyph == "" {
		s.Glyph = assets.GlyphBolt
	}
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Velocity{X: vx, Y: vy})
	w.Add(id, component.Projectile{
		OwnerTeam: s.Team,
		Damage:    s.Damage,
		Remaining: s.Lifetime,
		Piercing:  s.Piercing,
		Slow:      s.Slow,
		Source:    s.Source,
		Hits:      make(map[ecs.EntityID]bool),
	})
	w.Add(id, component.Team{Side: s.Team})
	w.Add(id, component.Renderable{
		Glyph:       s.Glyph,
		FGColor:     shotColor(s.Team),
		BGColor:     tcell.ColorDefault,
		RenderOrder: 8,
	})
	w.Add(id, component.Size{W: s.Size, H: s.Size})
	return id
}

// Aimed creates a projectile flying from (x, y) toward (tx, ty) at speed.
func Aimed(w *ecs.World, x, y, tx, ty, speed float64, s Shot) ecs.EntityID {
	dx, dy := tx-x, ty-y
	d := math.Hypot(dx, dy)
	if d == 0 {
		dy, d = -1, 1
	}
	return NewProjectile(w, x, y, dx/d*speed, dy/d*speed, s)
}

// NewHomingMissile creates a projectile that re-aims at target every frame.
func NewHomingMissile(w *ecs.World, x, y float64, target ecs.EntityID, speed float64, s Shot) ecs.EntityID {
	if s.Glyph == "" {
		s.Glyph = assets.GlyphMissile
	}
	id := NewProjectile(w, x, y, 0, -speed, s)
	w.Add(id, component.Homing{Target: target, Speed: speed})
	return id
}

// NewOrbitBlade creates a melee blade circling owner.
func NewOrbitBlade(w *ecs.World, owner ecs.EntityID, angle, radius, speed float64, s Shot) ecs.EntityID {
	var ox, oy float64
	if c := w.Get(owner, component.CPosition); c != nil {
		p := c.(component.Position)
		ox, oy = p.X, p.Y
	}
	if s.Glyph == "" {
		s.Glyph = assets.GlyphBlade
	}
	s.Piercing = true
	if s.Size <= 0 {
		s.Size = 24
	}
	id := NewProjectile(w, ox+math.Cos(angle)*radius, oy+math.Sin(angle)*radius, 0, 0, s)
	w.Add(id, component.Orbit{Owner: owner, Angle: angle, Radius: radius, Speed: speed / radius})
	return id
}
