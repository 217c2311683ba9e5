package component

import (
	"emoji-survivors/assets"
	"emoji-survivors/internal/ecs"

	"github.com/looplab/fsm"
)

const (
	CBossAbility ecs.ComponentType = 32
	CBossRage    ecs.ComponentType = 33
)

// BossAbility is attached lazily the first time the boss pass sees a boss.
// State tracks charging -> ready -> charging, or ready -> spent for
// one-shot abilities.
type BossAbility struct {
	Kind     assets.BossAbilityKind
	Cooldown float64
	Timer    float64
	State    *fsm.FSM
}

func (BossAbility) Type() ecs.ComponentType { return CBossAbility }

// BossRage marks a boss whose enrage has already fired.
type BossRage struct{}

func (BossRage) Type() ecs.ComponentType { return CBossRage }
