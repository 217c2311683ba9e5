package system

import (
	"log/slog"
	"math"
	"math/rand"
	"testing"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBossPass() *BossAbilities {
	return &BossAbilities{
		Cfg: config.New(config.Normal),
		Rng: rand.New(rand.NewSource(7)),
		Log: slog.Default(),
	}
}

func abilityState(w *ecs.World, id ecs.EntityID) component.BossAbility {
	return w.Get(id, component.CBossAbility).(component.BossAbility)
}

func TestBossAbilityAttachedLazily(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	boss := factory.NewBoss(w, 100, 100, 1, assets.BossVoidReaver, normal)
	require.False(t, w.Has(boss, component.CBossAbility))

	newBossPass().Update(w, 0.1)

	ab := abilityState(w, boss)
	assert.Equal(t, assets.AbilityTeleport, ab.Kind)
	assert.Equal(t, 3.0, ab.Cooldown)
	assert.Equal(t, StateCharging, ab.State.Current())
}

func TestBloodTitanHasNoAbility(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	boss := factory.NewBoss(w, 100, 100, 1, assets.BossBloodTitan, normal)

	newBossPass().Update(w, 10)

	assert.False(t, w.Has(boss, component.CBossAbility))
}

func TestTeleportAfterCooldown(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 640, 360)
	boss := factory.NewBoss(w, 100, 100, 1, assets.BossVoidReaver, normal)
	pass := newBossPass()

	pass.Update(w, 2.9)
	assert.Equal(t, component.Position{X: 100, Y: 100}, w.Get(boss, component.CPosition))

	pass.Update(w, 0.2)
	pos := w.Get(boss, component.CPosition).(component.Position)
	ppos := w.Get(player, component.CPosition).(component.Position)
	assert.NotEqual(t, component.Position{X: 100, Y: 100}, pos)
	assert.LessOrEqual(t, math.Hypot(pos.X-ppos.X, pos.Y-ppos.Y), 350.0+1e-9)
	assert.GreaterOrEqual(t, pos.X, config.BossSpawnPadding)
	assert.LessOrEqual(t, pos.Y, config.DefaultHeight-config.BossSpawnPadding)
	assert.True(t, IsInvulnerable(w, boss))

	ab := abilityState(w, boss)
	assert.Equal(t, StateCharging, ab.State.Current())
	assert.Zero(t, ab.Timer)
}

func TestAuraWaitsForCooldown(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	factory.NewBoss(w, 600, 400, 1, assets.BossFrostColossus, normal)
	pass := newBossPass()

	pass.Update(w, 0.1)
	assert.False(t, w.Has(player, component.CSlowed), "no cast before the first cooldown")

	pass.Update(w, 5)
	s := w.Get(player, component.CSlowed).(component.Slowed)
	assert.Equal(t, 0.5, s.Percent)
	assert.Equal(t, 1.5, s.Remaining)
	assert.Equal(t, 1, countSounds(w, component.SoundAbilityCast))
}

func TestAuraCastsOncePerCooldown(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	boss := factory.NewBoss(w, 460, 400, 1, assets.BossFrostColossus, normal)
	pass := newBossPass()

	casts, slowedFrames := 0, 0
	for i := 0; i < 115; i++ {
		pass.Update(w, 0.1)
		if c := w.Get(player, component.CSlowed); c != nil {
			slowedFrames++
			if c.(component.Slowed).Remaining == 1.5 {
				casts++
			}
		}
		tickTimers(w, 0.1)
	}

	assert.Equal(t, 2, casts)
	assert.InDelta(t, 30, slowedFrames, 3)
	assert.Equal(t, StateCharging, abilityState(w, boss).State.Current())
}

func TestAuraIgnoresDistantPlayer(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 100, 100)
	factory.NewBoss(w, 1100, 600, 1, assets.BossFrostColossus, normal)

	newBossPass().Update(w, 5)

	assert.False(t, w.Has(player, component.CSlowed))
}

func TestSummonSpawnsFastAddsInRing(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 100, 100)
	boss := factory.NewBoss(w, 640, 360, 1, assets.BossPlagueHerald, normal)

	newBossPass().Update(w, 5)

	var adds []ecs.EntityID
	for _, id := range w.Query(component.CEnemy) {
		if id != boss {
			adds = append(adds, id)
		}
	}
	require.Len(t, adds, 3)
	for _, id := range adds {
		e := w.Get(id, component.CEnemy).(component.Enemy)
		assert.Equal(t, assets.EnemyFast, e.Kind)
		assert.False(t, e.IsElite)
		p := w.Get(id, component.CPosition).(component.Position)
		assert.InDelta(t, 80, math.Hypot(p.X-640, p.Y-360), 1e-6)
	}
}

func TestSummonRespectsEnemyCap(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 100, 100)
	for i := 0; i < config.MaxEntities; i++ {
		dummy(w, component.SideEnemy, 1000, 600, 10)
	}
	factory.NewBoss(w, 640, 360, 1, assets.BossPlagueHerald, normal)
	before := w.Count(component.CTagEnemy)

	newBossPass().Update(w, 5)

	assert.Equal(t, before, w.Count(component.CTagEnemy))
}

func TestRageLatchesOnce(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 100, 100)
	boss := factory.NewBoss(w, 640, 360, 1, assets.BossInfernoLord, normal)
	pass := newBossPass()
	baseDmg := w.Get(boss, component.CDamage).(component.Damage).Amount
	baseSpeed := w.Get(boss, component.CAIChase).(component.AIChase).Speed

	pass.Update(w, 0.1)
	assert.False(t, w.Has(boss, component.CBossRage), "healthy boss stays calm")

	h := w.Get(boss, component.CHealth).(component.Health)
	h.Current = h.Max * 0.25
	w.Add(boss, h)
	pass.Update(w, 0.1)
	pass.Update(w, 0.1)

	assert.True(t, w.Has(boss, component.CBossRage))
	assert.InDelta(t, baseDmg*1.5, w.Get(boss, component.CDamage).(component.Damage).Amount, 1e-9)
	assert.InDelta(t, baseSpeed*1.5, w.Get(boss, component.CAIChase).(component.AIChase).Speed, 1e-9)
	assert.Equal(t, StateSpent, abilityState(w, boss).State.Current())
}
