package system

import (
	"math/rand"

	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
)

// PowerUps lets the player collect pickups within config.PowerUpRadius.
type PowerUps struct {
	Cfg *config.Config
	Rng *rand.Rand
}

func (p *PowerUps) Update(w *ecs.World, _ float64) {
	player := PlayerID(w)
	ppos, ok := position(w, player)
	if !ok {
		return
	}
	if _, alive := livingHealth(w, player); !alive {
		return
	}
	for _, id := range w.Query(component.CPowerUp, component.CPosition) {
		pos, _ := position(w, id)
		if distSq(pos, ppos) >= config.PowerUpRadius*config.PowerUpRadius {
			continue
		}
		switch w.Get(id, component.CPowerUp).(component.PowerUp).Kind {
		case component.PowerUpHealth:
			Heal(w, player, config.PowerUpHeal)
		case component.PowerUpXP:
			GrantXP(w, p.Cfg, p.Rng, player, config.PowerUpXP)
		case component.PowerUpDamage:
			ApplyDamageBoost(w, player, config.DamageBoostAmount, config.DamageBoostTime)
		}
		updateStats(w, player, func(s *component.GameStats) { s.PowerUpsCollected++ })
		w.DestroyEntity(id)
	}
}

// Heal raises health by amount, capped at Max. Dead entities stay dead.
func Heal(w *ecs.World, id ecs.EntityID, amount float64) {
	h, alive := livingHealth(w, id)
	if !alive {
		return
	}
	h.Current = clamp(h.Current+amount, 0, h.Max)
	w.Add(id, h)
}
