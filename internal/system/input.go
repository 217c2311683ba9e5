package system

import (
	"math"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
)

// InputState is one frame of player intent.
type InputState struct {
	MoveX, MoveY float64
	Cast         [component.NumAbilitySlots]bool
}

// InputSource supplies the current frame's input.
type InputSource interface {
	Input() InputState
}

// InputBuffer is an InputSource written by the front end between ticks.
type InputBuffer struct {
	state InputState
}

func (b *InputBuffer) Input() InputState { return b.state }

// SetMove replaces the movement axis.
func (b *InputBuffer) SetMove(x, y float64) {
	b.state.MoveX, b.state.MoveY = x, y
}

// Press requests a cast of slot on the next tick.
func (b *InputBuffer) Press(slot component.AbilitySlot) {
	if slot < component.NumAbilitySlots {
		b.state.Cast[slot] = true
	}
}

// EndFrame clears one-shot cast requests.
func (b *InputBuffer) EndFrame() {
	b.state.Cast = [component.NumAbilitySlots]bool{}
}

// Input turns the movement axis into player velocity. Speed comes from the
// class and the current difficulty.
type Input struct {
	Source InputSource
	Cfg    *config.Config
}

func (in *Input) Update(w *ecs.World, _ float64) {
	state := in.Source.Input()
	dx, dy := state.MoveX, state.MoveY
	if l := math.Hypot(dx, dy); l > 0 {
		dx, dy = dx/l, dy/l
	}
	for _, id := range w.Query(component.CTagPlayer, component.CPlayer, component.CVelocity) {
		p := w.Get(id, component.CPlayer).(component.Player)
		speed := assets.Class(p.Class).Speed * in.Cfg.Multipliers().PlayerSpeed
		w.Add(id, component.Velocity{X: dx * speed, Y: dy * speed})
		if dx != 0 || dy != 0 {
			p.FacingX, p.FacingY = dx, dy
			w.Add(id, p)
		}
	}
}
