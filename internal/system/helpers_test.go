package system

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
)

var normal = config.DefaultMultipliers(config.Normal)

func newPlayer(w *ecs.World, x, y float64) ecs.EntityID {
	return factory.NewPlayer(w, x, y, assets.Class(assets.ClassShadowKnight), normal)
}

// dummy creates a minimal opposing body with the given health.
func dummy(w *ecs.World, side component.Side, x, y, hp float64) ecs.EntityID {
	id := w.CreateEntity()
	w.Add(id, component.Position{X: x, Y: y})
	w.Add(id, component.Size{W: 28, H: 28})
	w.Add(id, component.Health{Current: hp, Max: hp})
	w.Add(id, component.Team{Side: side})
	w.Add(id, component.Damage{Amount: 5})
	if side == component.SideEnemy {
		w.Add(id, component.Enemy{XPValue: 10})
		w.Add(id, component.TagEnemy{})
	}
	return id
}

func health(w *ecs.World, id ecs.EntityID) float64 {
	return w.Get(id, component.CHealth).(component.Health).Current
}

func stats(w *ecs.World, id ecs.EntityID) component.GameStats {
	return w.Get(id, component.CGameStats).(component.GameStats)
}

func countSounds(w *ecs.World, kind component.SoundKind) int {
	n := 0
	for _, id := range w.Query(component.CAudioEvent) {
		if w.Get(id, component.CAudioEvent).(component.AudioEvent).Kind == kind {
			n++
		}
	}
	return n
}
