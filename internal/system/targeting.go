package system

import (
	"math"
	"sort"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
)

// candidates returns living entities opposing side, in ID order.
func candidates(w *ecs.World, side component.Side) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CTeam, component.CPosition, component.CHealth) {
		if !component.Opposes(side, sideOf(w, id)) {
			continue
		}
		if _, alive := livingHealth(w, id); alive {
			out = append(out, id)
		}
	}
	return out
}

// NearestTarget finds the closest living entity opposing side within
// maxRange of from. Ties go to the first entity in query order.
func NearestTarget(w *ecs.World, from component.Position, side component.Side, maxRange float64) (ecs.EntityID, bool) {
	best, bestD := ecs.NilEntity, maxRange*maxRange
	found := false
	for _, id := range candidates(w, side) {
		pos, _ := position(w, id)
		d := distSq(from, pos)
		if d > maxRange*maxRange {
			continue
		}
		if !found || d < bestD {
			best, bestD, found = id, d, true
		}
	}
	return best, found
}

// NearestTargets returns up to n opposing entities within maxRange,
// closest first.
func NearestTargets(w *ecs.World, from component.Position, side component.Side, maxRange float64, n int) []ecs.EntityID {
	type ranked struct {
		id ecs.EntityID
		d  float64
	}
	var all []ranked
	for _, id := range candidates(w, side) {
		pos, _ := position(w, id)
		if d := distSq(from, pos); d <= maxRange*maxRange {
			all = append(all, ranked{id, d})
		}
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].d < all[j].d })
	if len(all) > n {
		all = all[:n]
	}
	out := make([]ecs.EntityID, len(all))
	for i, r := range all {
		out[i] = r.id
	}
	return out
}

// projectileRoom reports whether another projectile may be created.
func projectileRoom(w *ecs.World) bool {
	return w.Count(component.CProjectile) < config.MaxProjectiles
}

// playerDamage scales a base damage by the entity's boost and, for the
// player side, by the current difficulty.
func playerDamage(w *ecs.World, cfg *config.Config, id ecs.EntityID, base float64) float64 {
	dmg := base + DamageBonus(w, id)
	if sideOf(w, id) == component.SidePlayer {
		dmg *= cfg.Multipliers().PlayerDamage
	}
	return dmg
}

// AutoAttack fires a projectile from every ready attacker at its nearest
// opposing target. Without a target the attacker stays ready.
type AutoAttack struct {
	Cfg *config.Config
}

func (a *AutoAttack) Update(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CAutoAttack, component.CPosition, component.CTeam) {
		aa := w.Get(id, component.CAutoAttack).(component.AutoAttack)
		aa.Timer = math.Min(aa.Timer+dt, aa.Cooldown)
		if aa.Ready() && projectileRoom(w) {
			pos, _ := position(w, id)
			side := sideOf(w, id)
			if target, ok := NearestTarget(w, pos, side, aa.Range); ok {
				tpos, _ := position(w, target)
				factory.Aimed(w, pos.X, pos.Y, tpos.X, tpos.Y, config.ProjectileSpeed, factory.Shot{
					Team:   side,
					Damage: playerDamage(w, a.Cfg, id, aa.Damage),
				})
				factory.NewAudioEvent(w, component.SoundProjectileFire)
				aa.Timer = 0
			}
		}
		w.Add(id, aa)
	}
}

// Guidance steers homing projectiles toward their live target and keeps
// orbiting blades pinned to their owner. A missile whose target is gone is
// destroyed rather than flying on to a stale position.
type Guidance struct{}

func (Guidance) Update(w *ecs.World, dt float64) {
	for _, id := range w.Query(component.CHoming, component.CPosition) {
		h := w.Get(id, component.CHoming).(component.Homing)
		pos, _ := position(w, id)
		tpos, ok := position(w, h.Target)
		if _, alive := livingHealth(w, h.Target); !ok || !alive {
			w.DestroyEntity(id)
			continue
		}
		dx, dy, d := direction(pos, tpos)
		if d < config.HomingHitDist {
			if c := w.Get(id, component.CProjectile); c != nil {
				ApplyDamage(w, h.Target, c.(component.Projectile).Damage)
			}
			w.DestroyEntity(id)
			continue
		}
		w.Add(id, component.Velocity{X: dx * h.Speed, Y: dy * h.Speed})
	}

	for _, id := range w.Query(component.COrbit, component.CPosition) {
		o := w.Get(id, component.COrbit).(component.Orbit)
		owner, ok := position(w, o.Owner)
		if !ok {
			w.DestroyEntity(id)
			continue
		}
		o.Angle += o.Speed * dt
		w.Add(id, o)
		w.Add(id, component.Position{
			X: owner.X + math.Cos(o.Angle)*o.Radius,
			Y: owner.Y + math.Sin(o.Angle)*o.Radius,
		})
	}
}
