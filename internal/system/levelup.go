package system

import (
	"errors"
	"fmt"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
)

var (
	ErrNoPendingLevel = errors.New("no pending level-up")
	ErrBadChoice      = errors.New("invalid upgrade choice")
	ErrNoUpgrade      = errors.New("weapon cannot be upgraded")
)

// GrantXP adds amount, scaled by the difficulty's XPGain, to id's
// experience. Overflow carries into the next level and each threshold is
// 1.5x the previous one. It returns the number of levels gained; every one
// of them waits in LevelUpPending for an upgrade choice.
func GrantXP(w *ecs.World, cfg *config.Config, rng *rand.Rand, id ecs.EntityID, amount int) int {
	c := w.Get(id, component.CExperience)
	if c == nil || amount <= 0 {
		return 0
	}
	exp := c.(component.Experience)
	exp.XP += int(float64(amount) * cfg.Multipliers().XPGain)
	gained := 0
	for exp.XP >= exp.Next && exp.Level < config.MaxLevel {
		exp.XP -= exp.Next
		exp.Level++
		exp.Next = int(float64(exp.Next) * config.XPLevelFactor)
		gained++
	}
	w.Add(id, exp)
	if gained == 0 {
		return 0
	}

	var pending component.LevelUpPending
	if pc := w.Get(id, component.CLevelUpPending); pc != nil {
		pending = pc.(component.LevelUpPending)
	}
	pending.Count += gained
	if len(pending.Choices) == 0 {
		pending.Choices = UpgradeChoices(w, id, rng)
	}
	w.Add(id, pending)

	factory.NewAudioEvent(w, component.SoundLevelUp)
	factory.NewScreenEffect(w, component.ScreenLevelUp, 0.5)
	if pos, ok := position(w, id); ok {
		factory.NewParticles(w, rng, pos.X, pos.Y, config.ParticleCount*3, tcell.ColorGold)
	}
	return gained
}

// UpgradeChoices draws up to config.UpgradeChoices distinct weapons the
// player can take: new weapons, owned ones below their max level, and
// maxed weapons ready to evolve.
func UpgradeChoices(w *ecs.World, id ecs.EntityID, rng *rand.Rand) []assets.WeaponID {
	c := w.Get(id, component.CWeaponInventory)
	if c == nil {
		return nil
	}
	inv := c.(component.WeaponInventory)
	level := playerLevel(w, id)

	var avail []assets.WeaponID
	for _, wid := range assets.WeaponPool() {
		if upgradable(inv, wid, level) {
			avail = append(avail, wid)
		}
	}
	rng.Shuffle(len(avail), func(i, j int) { avail[i], avail[j] = avail[j], avail[i] })
	if len(avail) > config.UpgradeChoices {
		avail = avail[:config.UpgradeChoices]
	}
	return avail
}

func upgradable(inv component.WeaponInventory, wid assets.WeaponID, playerLevel int) bool {
	def, ok := assets.Weapon(wid)
	if !ok {
		return false
	}
	evo, canEvolve := assets.EvolutionOf(wid)
	if canEvolve && inv.Levels[evo] > 0 {
		return false
	}
	if inv.Levels[wid] < def.MaxLevel() {
		return true
	}
	return canEvolve && playerLevel >= assets.EvolveMinPlayerLevel
}

func playerLevel(w *ecs.World, id ecs.EntityID) int {
	if c := w.Get(id, component.CExperience); c != nil {
		return c.(component.Experience).Level
	}
	return 0
}

// ApplyUpgrade adds wid to id's inventory, raises its level, or evolves it
// once it is at max level.
func ApplyUpgrade(w *ecs.World, id ecs.EntityID, wid assets.WeaponID) error {
	c := w.Get(id, component.CWeaponInventory)
	if c == nil {
		return fmt.Errorf("entity %d: %w", id, ErrNoUpgrade)
	}
	inv := c.(component.WeaponInventory)
	if !upgradable(inv, wid, playerLevel(w, id)) {
		return fmt.Errorf("weapon %d: %w", wid, ErrNoUpgrade)
	}
	def, _ := assets.Weapon(wid)
	switch lvl := inv.Levels[wid]; {
	case lvl == 0:
		inv.Levels[wid] = 1
		inv.Order = append(inv.Order, wid)
	case lvl < def.MaxLevel():
		inv.Levels[wid] = lvl + 1
	default:
		evo, _ := assets.EvolutionOf(wid)
		delete(inv.Levels, wid)
		delete(inv.Timers, wid)
		for i, o := range inv.Order {
			if o == wid {
				inv.Order[i] = evo
			}
		}
		inv.Levels[evo] = 1
		updateStats(w, id, func(s *component.GameStats) { s.WeaponsEvolved++ })
	}
	w.Add(id, inv)
	return nil
}

// ResolveLevelUp applies the choice-th pending upgrade and consumes one
// pending level. With nothing left to offer any choice just consumes the level.
func ResolveLevelUp(w *ecs.World, rng *rand.Rand, id ecs.EntityID, choice int) error {
	c := w.Get(id, component.CLevelUpPending)
	if c == nil {
		return ErrNoPendingLevel
	}
	pending := c.(component.LevelUpPending)
	if len(pending.Choices) > 0 {
		if choice < 0 || choice >= len(pending.Choices) {
			return fmt.Errorf("choice %d of %d: %w", choice, len(pending.Choices), ErrBadChoice)
		}
		if err := ApplyUpgrade(w, id, pending.Choices[choice]); err != nil {
			return err
		}
	}
	pending.Count--
	if pending.Count <= 0 {
		w.Remove(id, component.CLevelUpPending)
		return nil
	}
	pending.Choices = UpgradeChoices(w, id, rng)
	w.Add(id, pending)
	return nil
}
