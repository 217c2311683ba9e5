package system

import (
	"log/slog"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
)

// Abilities counts down the player's ability cooldowns and casts at most
// one requested ability per frame. Requests for an ability still on
// cooldown are ignored.
type Abilities struct {
	Source InputSource
	Cfg    *config.Config
	Rng    *rand.Rand
	Log    *slog.Logger
}

func (a *Abilities) Update(w *ecs.World, dt float64) {
	state := a.Source.Input()
	for _, id := range w.Query(component.CTagPlayer, component.CAbilities, component.CPosition) {
		ab := w.Get(id, component.CAbilities).(component.Abilities)
		for i := range ab.Remaining {
			ab.Remaining[i] = max(ab.Remaining[i]-dt, 0)
		}
		for slot := component.AbilitySlot(0); slot < component.NumAbilitySlots; slot++ {
			if !state.Cast[slot] || ab.Remaining[slot] > 0 {
				continue
			}
			if cd, ok := a.cast(w, id, slot); ok {
				ab.Remaining[slot] = cd
				updateStats(w, id, func(s *component.GameStats) { s.AbilitiesCast++ })
				factory.NewAudioEvent(w, component.SoundAbilityCast)
				a.Log.Debug("ability cast", "ability", slot.String(), "cooldown", cd)
				break
			}
		}
		w.Add(id, ab)
	}
}

func (a *Abilities) class(w *ecs.World, id ecs.EntityID) assets.ClassDef {
	if c := w.Get(id, component.CPlayer); c != nil {
		return assets.Class(c.(component.Player).Class)
	}
	return assets.Class(assets.ClassShadowKnight)
}

// abilityDamage applies the class and difficulty multipliers.
func (a *Abilities) abilityDamage(w *ecs.World, id ecs.EntityID, base float64) float64 {
	return base * a.class(w, id).AbilityDamageMult * a.Cfg.Multipliers().PlayerDamage
}

// cast performs the ability and returns its cooldown. ok is false when
// the ability had nothing to act on and should stay ready.
func (a *Abilities) cast(w *ecs.World, id ecs.EntityID, slot component.AbilitySlot) (float64, bool) {
	switch slot {
	case component.SlotDash:
		a.dash(w, id)
		return config.DashCooldown * a.class(w, id).DashCooldownMult, true
	case component.SlotNova:
		a.nova(w, id)
		return config.NovaCooldown, true
	case component.SlotMissiles:
		return config.MissileCooldown, a.missiles(w, id)
	case component.SlotFreeze:
		a.freeze(w)
		return config.FreezeCooldown, true
	}
	return 0, false
}

// dash teleports along the facing direction (up when standing still) and
// grants a short invulnerability window.
func (a *Abilities) dash(w *ecs.World, id ecs.EntityID) {
	pos, _ := position(w, id)
	fx, fy := 0.0, -1.0
	if c := w.Get(id, component.CPlayer); c != nil {
		if p := c.(component.Player); p.FacingX != 0 || p.FacingY != 0 {
			fx, fy = p.FacingX, p.FacingY
		}
	}
	factory.NewParticles(w, a.Rng, pos.X, pos.Y, config.ParticleCount, tcell.ColorPurple)
	pos.X += fx * config.DashDistance
	pos.Y += fy * config.DashDistance
	w.Add(id, ClampToWorld(a.Cfg, pos, sizeOf(w, id)))
	ApplyInvulnerable(w, id, config.DashInvuln)
}

// nova damages every enemy within the radius and knocks it outward.
func (a *Abilities) nova(w *ecs.World, id ecs.EntityID) {
	pos, _ := position(w, id)
	dmg := a.abilityDamage(w, id, config.NovaDamage)
	for _, e := range candidates(w, sideOf(w, id)) {
		epos, _ := position(w, e)
		if distSq(pos, epos) > config.NovaRadius*config.NovaRadius {
			continue
		}
		ApplyDamage(w, e, dmg)
		dx, dy, _ := direction(pos, epos)
		ApplyKnockback(w, e, dx*config.NovaKnockback, dy*config.NovaKnockback, config.KnockbackTime)
	}
	factory.NewParticles(w, a.Rng, pos.X, pos.Y, config.ParticleCount*2, tcell.ColorDarkRed)
}

// missiles launches one homing missile at each of the nearest enemies.
func (a *Abilities) missiles(w *ecs.World, id ecs.EntityID) bool {
	pos, _ := position(w, id)
	targets := NearestTargets(w, pos, sideOf(w, id), a.Cfg.Width+a.Cfg.Height, config.MissileCount)
	if len(targets) == 0 {
		return false
	}
	dmg := a.abilityDamage(w, id, config.MissileDamage)
	for _, t := range targets {
		factory.NewHomingMissile(w, pos.X, pos.Y, t, config.MissileSpeed, factory.Shot{
			Team:   sideOf(w, id),
			Damage: dmg,
		})
	}
	return true
}

// freeze slows every enemy and tints the screen.
func (a *Abilities) freeze(w *ecs.World) {
	for _, e := range w.Query(component.CTagEnemy) {
		ApplySlow(w, e, config.FreezeSlow, config.FreezeDuration)
	}
	factory.NewScreenEffect(w, component.ScreenTimeFreeze, config.FreezeDuration)
}
