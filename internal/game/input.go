package game

import (
	"emoji-survivors/internal/component"

	"github.com/gdamore/tcell/v2"
)

// Action represents a player-requested game action.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoveN
	ActionMoveS
	ActionMoveE
	ActionMoveW
	ActionMoveNE
	ActionMoveNW
	ActionMoveSE
	ActionMoveSW
	ActionStop
	ActionDash
	ActionNova
	ActionMissiles
	ActionFreeze
	ActionChoice1
	ActionChoice2
	ActionChoice3
	ActionConfirm
	ActionQuit
)

// keyToAction maps a tcell key event to a game action.
func keyToAction(ev *tcell.EventKey) Action {
	// Named keys.
	switch ev.Key() {
	case tcell.KeyUp:
		return ActionMoveN
	case tcell.KeyDown:
		return ActionMoveS
	case tcell.KeyRight:
		return ActionMoveE
	case tcell.KeyLeft:
		return ActionMoveW
	case tcell.KeyEnter:
		return ActionConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return ActionQuit
	}

	// Rune keys.
	switch ev.Rune() {
	case 'k', 'K':
		return ActionMoveN
	case 'j', 'J':
		return ActionMoveS
	case 'l', 'L':
		return ActionMoveE
	case 'h', 'H':
		return ActionMoveW
	case 'y', 'Y':
		return ActionMoveNW
	case 'u', 'U':
		return ActionMoveNE
	case 'b', 'B':
		return ActionMoveSW
	case 'n', 'N':
		return ActionMoveSE
	case ' ', '.':
		return ActionStop
	case 'q', 'Q':
		return ActionDash
	case 'w', 'W':
		return ActionNova
	case 'e', 'E':
		return ActionMissiles
	case 'r', 'R':
		return ActionFreeze
	case '1':
		return ActionChoice1
	case '2':
		return ActionChoice2
	case '3':
		return ActionChoice3
	}
	return ActionNone
}

// actionToDelta converts a movement action to a direction.
func actionToDelta(a Action) (float64, float64) {
	switch a {
	case ActionMoveN:
		return 0, -1
	case ActionMoveS:
		return 0, 1
	case ActionMoveE:
		return 1, 0
	case ActionMoveW:
		return -1, 0
	case ActionMoveNE:
		return 1, -1
	case ActionMoveNW:
		return -1, -1
	case ActionMoveSE:
		return 1, 1
	case ActionMoveSW:
		return -1, 1
	}
	return 0, 0
}

// actionToSlot maps a cast action to its ability slot.
func actionToSlot(a Action) (component.AbilitySlot, bool) {
	switch a {
	case ActionDash:
		return component.SlotDash, true
	case ActionNova:
		return component.SlotNova, true
	case ActionMissiles:
		return component.SlotMissiles, true
	case ActionFreeze:
		return component.SlotFreeze, true
	}
	return 0, false
}

// actionToChoice maps a number key to a level-up choice index.
func actionToChoice(a Action) (int, bool) {
	switch a {
	case ActionChoice1:
		return 0, true
	case ActionChoice2:
		return 1, true
	case ActionChoice3:
		return 2, true
	}
	return 0, false
}
