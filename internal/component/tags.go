package component

import "emoji-survivors/internal/ecs"

const (
	CTagPlayer ecs.ComponentType = 37
	CTagEnemy  ecs.ComponentType = 38
)

// TagPlayer marks the player-controlled entity.
type TagPlayer struct{}

func (TagPlayer) Type() ecs.ComponentType { return CTagPlayer }

// TagEnemy marks every hostile body (regular enemies, elites, bosses).
type TagEnemy struct{}

func (TagEnemy) Type() ecs.ComponentType { return CTagEnemy }
