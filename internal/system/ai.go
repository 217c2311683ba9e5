package system

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
)

// AI writes base velocity for chasing enemies and lets ranged enemies
// hold their distance and shoot. Status effects scale the result later.
type AI struct{}

func (AI) Update(w *ecs.World, dt float64) {
	player := PlayerID(w)
	ppos, hasPlayer := position(w, player)

	for _, id := range w.Query(component.CAIChase, component.CPosition, component.CVelocity) {
		if !hasPlayer {
			w.Add(id, component.Velocity{})
			continue
		}
		chase := w.Get(id, component.CAIChase).(component.AIChase)
		pos, _ := position(w, id)
		dx, dy, dist := direction(pos, ppos)

		vel := component.Velocity{X: dx * chase.Speed, Y: dy * chase.Speed}
		if c := w.Get(id, component.CAIRanged); c != nil {
			r := c.(component.AIRanged)
			switch {
			case dist < r.KeepDistance:
				vel = component.Velocity{X: -vel.X, Y: -vel.Y}
			case dist <= r.Range:
				vel = component.Velocity{}
			}
			r.Timer += dt
			if r.Timer >= r.Cooldown && dist <= r.Range && projectileRoom(w) {
				dmg := w.Get(id, component.CDamage)
				if dmg != nil {
					factory.Aimed(w, pos.X, pos.Y, ppos.X, ppos.Y, config.ProjectileSpeed*0.6, factory.Shot{
						Team:   component.SideEnemy,
						Damage: dmg.(component.Damage).Amount,
						Glyph:  assets.GlyphEnemyBolt,
					})
					r.Timer = 0
				}
			}
			w.Add(id, r)
		}
		w.Add(id, vel)
	}
}
