package system

import (
	"context"
	"log/slog"
	"math"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/gdamore/tcell/v2"
	"github.com/looplab/fsm"
)

// Boss ability states and events.
const (
	StateCharging = "charging"
	StateReady    = "ready"
	StateSpent    = "spent"

	eventCharged = "charged"
	eventTrigger = "trigger"
	eventLatch   = "latch"
)

// newAbilityFSM builds the per-boss machine. Cooldown-gated abilities
// cycle charging -> ready -> charging; continuous abilities start ready and
// one-shot ones end in spent.
func newAbilityFSM(initial string) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: eventCharged, Src: []string{StateCharging}, Dst: StateReady},
			{Name: eventTrigger, Src: []string{StateReady}, Dst: StateCharging},
			{Name: eventLatch, Src: []string{StateReady}, Dst: StateSpent},
		},
		fsm.Callbacks{},
	)
}

// continuous abilities are evaluated every frame instead of on a cooldown.
func continuous(kind assets.BossAbilityKind) bool {
	return kind == assets.AbilityRage
}

// BossAbilities drives each boss's special ability. The ability fragment
// is attached the first time a boss is seen.
type BossAbilities struct {
	Cfg *config.Config
	Rng *rand.Rand
	Log *slog.Logger
}

func (b *BossAbilities) Update(w *ecs.World, dt float64) {
	ctx := context.Background()
	for _, id := range w.Query(component.CEnemy, component.CPosition, component.CHealth) {
		e := w.Get(id, component.CEnemy).(component.Enemy)
		if !e.IsBoss {
			continue
		}
		if _, alive := livingHealth(w, id); !alive {
			continue
		}
		def, ok := assets.Boss(e.BossID)
		if !ok || def.Ability == assets.AbilityNone {
			continue
		}

		var ab component.BossAbility
		if c := w.Get(id, component.CBossAbility); c != nil {
			ab = c.(component.BossAbility)
		} else {
			initial := StateCharging
			if continuous(def.Ability) {
				initial = StateReady
			}
			ab = component.BossAbility{Kind: def.Ability, Cooldown: def.Cooldown, State: newAbilityFSM(initial)}
		}

		if continuous(def.Ability) {
			if ab.State.Is(StateReady) && b.rage(w, id, def) {
				b.fire(ctx, ab.State, eventLatch)
			}
			w.Add(id, ab)
			continue
		}

		ab.Timer += dt
		if ab.State.Is(StateCharging) && ab.Timer >= ab.Cooldown {
			b.fire(ctx, ab.State, eventCharged)
		}
		if ab.State.Is(StateReady) {
			b.triggered(w, id, def)
			b.fire(ctx, ab.State, eventTrigger)
			ab.Timer = 0
		}
		w.Add(id, ab)
	}
}

func (b *BossAbilities) fire(ctx context.Context, f *fsm.FSM, event string) {
	if err := f.Event(ctx, event); err != nil {
		b.Log.Debug("boss ability transition", "event", event, "err", err)
	}
}

func (b *BossAbilities) triggered(w *ecs.World, id ecs.EntityID, def assets.BossDef) {
	switch def.Ability {
	case assets.AbilityTeleport:
		b.teleport(w, id, def)
	case assets.AbilityAuraSlow:
		b.aura(w, id, def)
	case assets.AbilitySummon:
		b.summon(w, id, def)
	}
}

func (b *BossAbilities) teleport(w *ecs.World, id ecs.EntityID, def assets.BossDef) {
	ppos, ok := position(w, PlayerID(w))
	if !ok {
		return
	}
	old, _ := position(w, id)
	angle := b.Rng.Float64() * 2 * math.Pi
	dist := def.TeleportMin + b.Rng.Float64()*(def.TeleportMax-def.TeleportMin)
	dest := ClampPadding(b.Cfg, component.Position{
		X: ppos.X + math.Cos(angle)*dist,
		Y: ppos.Y + math.Sin(angle)*dist,
	}, config.BossSpawnPadding)

	factory.NewParticles(w, b.Rng, old.X, old.Y, config.ParticleCount, tcell.ColorPurple)
	w.Add(id, dest)
	factory.NewParticles(w, b.Rng, dest.X, dest.Y, config.ParticleCount, tcell.ColorPurple)
	ApplyInvulnerable(w, id, def.TeleportInvuln)
	factory.NewAudioEvent(w, component.SoundAbilityCast)
	b.Log.Debug("boss teleported", "boss", def.Name, "x", dest.X, "y", dest.Y)
}

// aura slows the player when inside the radius. The cooldown restarts
// whether or not the player was caught.
func (b *BossAbilities) aura(w *ecs.World, id ecs.EntityID, def assets.BossDef) {
	player := PlayerID(w)
	ppos, ok := position(w, player)
	if !ok {
		return
	}
	pos, _ := position(w, id)
	if distSq(pos, ppos) > def.AuraRadius*def.AuraRadius {
		return
	}
	ApplySlow(w, player, def.AuraSlow, def.AuraDuration)
	factory.NewAudioEvent(w, component.SoundAbilityCast)
}

func (b *BossAbilities) summon(w *ecs.World, id ecs.EntityID, def assets.BossDef) {
	pos, _ := position(w, id)
	m := b.Cfg.Multipliers()
	for i := 0; i < def.SummonCount; i++ {
		if w.Count(component.CTagEnemy) >= config.MaxEntities {
			break
		}
		angle := 2*math.Pi/float64(def.SummonCount)*float64(i) + (b.Rng.Float64()*0.6 - 0.3)
		p := ClampPadding(b.Cfg, component.Position{
			X: pos.X + math.Cos(angle)*def.SummonRadius,
			Y: pos.Y + math.Sin(angle)*def.SummonRadius,
		}, config.SpawnPadding)
		factory.NewEnemy(w, p.X, p.Y, 1, assets.EnemyFast, false, m)
	}
	factory.NewParticles(w, b.Rng, pos.X, pos.Y, config.ParticleCount, tcell.ColorGreen)
	factory.NewAudioEvent(w, component.SoundEnemySpawn)
	b.Log.Debug("boss summoned adds", "boss", def.Name, "count", def.SummonCount)
}

// rage boosts damage and chase speed once health falls to the threshold.
func (b *BossAbilities) rage(w *ecs.World, id ecs.EntityID, def assets.BossDef) bool {
	if w.Has(id, component.CBossRage) {
		return false
	}
	h, _ := livingHealth(w, id)
	if h.Fraction() > def.RageThreshold {
		return false
	}
	if c := w.Get(id, component.CDamage); c != nil {
		d := c.(component.Damage)
		d.Amount *= def.RageBoost
		w.Add(id, d)
	}
	if c := w.Get(id, component.CAIChase); c != nil {
		ai := c.(component.AIChase)
		ai.Speed *= def.RageBoost
		w.Add(id, ai)
	}
	if c := w.Get(id, component.CRenderable); c != nil {
		r := c.(component.Renderable)
		r.FGColor = tcell.ColorOrange
		w.Add(id, r)
	}
	w.Add(id, component.BossRage{})
	pos, _ := position(w, id)
	factory.NewParticles(w, b.Rng, pos.X, pos.Y, config.ParticleCount*2, tcell.ColorOrange)
	factory.NewAudioEvent(w, component.SoundBossSpawn)
	b.Log.Info("boss enraged", "boss", def.Name)
	return true
}
