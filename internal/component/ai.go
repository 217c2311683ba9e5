package component

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/ecs"
)

const (
	CEnemy    ecs.ComponentType = 8
	CAIChase  ecs.ComponentType = 9
	CAIRanged ecs.ComponentType = 10
)

// Enemy carries the reward and archetype data of a hostile entity.
type Enemy struct {
	Kind    assets.EnemyType
	XPValue int
	IsBoss  bool
	BossID  assets.BossID
	IsElite bool
}

func (Enemy) Type() ecs.ComponentType { return CEnemy }

// AIChase steers the entity straight at the player.
type AIChase struct {
	Speed float64
}

func (AIChase) Type() ecs.ComponentType { return CAIChase }

// AIRanged keeps its distance and shoots at the player.
type AIRanged struct {
	Range        float64
	KeepDistance float64
	Cooldown     float64
	Timer        float64
}

func (AIRanged) Type() ecs.ComponentType { return CAIRanged }
