package component

import "emoji-survivors/internal/ecs"

const CHealth ecs.ComponentType = 5

// Health is clamped to [0, Max] at every mutation. Regen is hp per second.
type Health struct {
	Current, Max float64
	Regen        float64
}

func (Health) Type() ecs.ComponentType { return CHealth }

// Fraction returns Current/Max, or 0 when Max is not positive.
func (h Health) Fraction() float64 {
	if h.Max <= 0 {
		return 0
	}
	return h.Current / h.Max
}
