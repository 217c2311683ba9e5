package system

import (
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/ecs"
)

// Stats accumulates the player's survival time.
type Stats struct{}

func (Stats) Update(w *ecs.World, dt float64) {
	player := PlayerID(w)
	if _, alive := livingHealth(w, player); !alive {
		return
	}
	updateStats(w, player, func(s *component.GameStats) { s.SurvivalTime += dt })
}
