package system

import (
	"log/slog"
	"math/rand"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
)

// Death removes every non-player entity whose health reached zero. Enemies
// pay out XP, may drop a power-up and count toward the run statistics.
// The player is left in place; callers detect its death through its health.
type Death struct {
	Cfg *config.Config
	Rng *rand.Rand
	Log *slog.Logger
}

func (d *Death) Update(w *ecs.World, _ float64) {
	player := PlayerID(w)
	for _, id := range w.Query(component.CHealth) {
		if id == player || w.Has(id, component.CTagPlayer) {
			continue
		}
		if _, alive := livingHealth(w, id); alive {
			continue
		}
		pos, hasPos := position(w, id)
		if c := w.Get(id, component.CEnemy); c != nil {
			e := c.(component.Enemy)
			if player != ecs.NilEntity {
				GrantXP(w, d.Cfg, d.Rng, player, e.XPValue)
				updateStats(w, player, func(s *component.GameStats) {
					s.Kills++
					if e.IsBoss {
						s.BossesKilled++
					}
				})
			}
			if e.IsBoss {
				d.Log.Info("boss defeated", "entity", id, "boss", e.BossID)
			}
			if hasPos {
				d.drop(w, id, pos)
			}
			factory.NewAudioEvent(w, component.SoundEnemyDeath)
		}
		if hasPos {
			factory.NewParticles(w, d.Rng, pos.X, pos.Y, config.ParticleCount, tcell.ColorRed)
		}
		w.DestroyEntity(id)
	}
}

// drop rolls for a power-up: guaranteed for elites and bosses, otherwise
// at the difficulty's drop chance. Kind split is 50% health, 30% XP and
// 20% damage boost.
func (d *Death) drop(w *ecs.World, id ecs.EntityID, pos component.Position) {
	if !w.Has(id, component.CGuaranteedDrop) && d.Rng.Float64() >= d.Cfg.Multipliers().DropChance {
		return
	}
	kind := component.PowerUpDamage
	switch roll := d.Rng.Float64(); {
	case roll < 0.5:
		kind = component.PowerUpHealth
	case roll < 0.8:
		kind = component.PowerUpXP
	}
	factory.NewPowerUp(w, pos.X, pos.Y, kind)
}
