package system

import (
	"math"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
)

const (
	bladeLifetime   = 1.5
	missileLifetime = 3.0
	chainBounces    = 5
	chainFalloff    = 0.8
)

// Weapons fires every owned weapon on its per-level cooldown. A weapon
// timer counts down and the weapon fires, then rearms, once it reaches zero,
// so a freshly acquired weapon fires on its first frame.
type Weapons struct {
	Cfg     *config.Config
	Rng     *rand.Rand
	elapsed float64
}

func (p *Weapons) Update(w *ecs.World, dt float64) {
	p.elapsed += dt
	for _, id := range w.Query(component.CWeaponInventory, component.CPosition) {
		if _, alive := livingHealth(w, id); !alive {
			continue
		}
		inv := w.Get(id, component.CWeaponInventory).(component.WeaponInventory)
		for _, wid := range inv.Order {
			def, ok := assets.Weapon(wid)
			if !ok {
				continue
			}
			inv.Timers[wid] -= dt
			if inv.Timers[wid] > 0 {
				continue
			}
			p.fire(w, id, def, inv.Levels[wid])
			inv.Timers[wid] = def.CooldownAt(inv.Levels[wid])
		}
	}
}

func (p *Weapons) fire(w *ecs.World, owner ecs.EntityID, def assets.WeaponDef, level int) {
	dmg := playerDamage(w, p.Cfg, owner, def.DamageAt(level))
	switch def.Kind {
	case assets.KindProjectile:
		p.shoot(w, owner, def, level, dmg)
	case assets.KindMelee:
		p.blades(w, owner, def, level, dmg)
	case assets.KindAura:
		p.aura(w, owner, def.RangeAt(level), dmg)
	case assets.KindChain:
		p.chain(w, owner, def, level, dmg)
	}
}

// shoot sends one projectile at each of the nearest enemies in range.
func (p *Weapons) shoot(w *ecs.World, owner ecs.EntityID, def assets.WeaponDef, level int, dmg float64) {
	pos, _ := position(w, owner)
	side := sideOf(w, owner)
	targets := NearestTargets(w, pos, side, def.RangeAt(level), def.CountAt(level))
	fired := false
	for _, t := range targets {
		if !projectileRoom(w) {
			break
		}
		shot := factory.Shot{
			Team:     side,
			Damage:   dmg,
			Glyph:    def.Glyph,
			Piercing: def.Piercing,
			Slow:     def.Slow,
			Source:   def.ID,
		}
		if def.Homing {
			shot.Lifetime = missileLifetime
			factory.NewHomingMissile(w, pos.X, pos.Y, t, def.Speed, shot)
		} else {
			tpos, _ := position(w, t)
			factory.Aimed(w, pos.X, pos.Y, tpos.X, tpos.Y, def.Speed, shot)
		}
		fired = true
	}
	if fired {
		factory.NewAudioEvent(w, component.SoundProjectileFire)
	}
}

// blades spreads Count blades evenly around the owner, rotated by the
// pass clock so consecutive volleys do not overlap.
func (p *Weapons) blades(w *ecs.World, owner ecs.EntityID, def assets.WeaponDef, level int, dmg float64) {
	n := def.CountAt(level)
	for i := 0; i < n && projectileRoom(w); i++ {
		angle := 2*math.Pi/float64(n)*float64(i) + p.elapsed
		factory.NewOrbitBlade(w, owner, angle, def.RangeAt(level), def.Speed, factory.Shot{
			Team:     sideOf(w, owner),
			Damage:   dmg,
			Glyph:    def.Glyph,
			Lifetime: bladeLifetime,
			Source:   def.ID,
		})
	}
}

// aura hits every opposing entity within radius of the owner.
func (p *Weapons) aura(w *ecs.World, owner ecs.EntityID, radius, dmg float64) {
	pos, _ := position(w, owner)
	for _, t := range candidates(w, sideOf(w, owner)) {
		tpos, _ := position(w, t)
		if distSq(pos, tpos) <= radius*radius {
			ApplyDamage(w, t, dmg)
		}
	}
}

// chain strikes the nearest unhit enemy within range of the previous strike,
// up to chainBounces times per chain, losing a fifth of its damage per bounce.
func (p *Weapons) chain(w *ecs.World, owner ecs.EntityID, def assets.WeaponDef, level int, dmg float64) {
	start, _ := position(w, owner)
	side := sideOf(w, owner)
	rng := def.RangeAt(level)
	for c := 0; c < def.CountAt(level); c++ {
		from := start
		hit := make(map[ecs.EntityID]bool)
		for bounce := 0; bounce < chainBounces; bounce++ {
			next, ok := ecs.NilEntity, false
			best := rng * rng
			for _, t := range candidates(w, side) {
				if hit[t] {
					continue
				}
				tpos, _ := position(w, t)
				if d := distSq(from, tpos); d <= best && (!ok || d < best) {
					next, best, ok = t, d, true
				}
			}
			if !ok {
				break
			}
			ApplyDamage(w, next, dmg*math.Pow(chainFalloff, float64(bounce)))
			hit[next] = true
			from, _ = position(w, next)
			factory.NewParticles(w, p.Rng, from.X, from.Y, 2, tcell.ColorLightCyan)
		}
	}
}
