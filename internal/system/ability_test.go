package system

import (
	"log/slog"
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

func newAbilities(buf *InputBuffer, d config.Difficulty) *Abilities {
	return &Abilities{
		Source: buf,
		Cfg:    config.New(d),
		Rng:    rand.New(rand.NewSource(1)),
		Log:    slog.Default(),
	}
}

func cooldown(w *ecs.World, id ecs.EntityID, slot component.AbilitySlot) float64 {
	return w.Get(id, component.CAbilities).(component.Abilities).Remaining[slot]
}

func TestDashMovesUpByDefaultAndGrantsInvulnerability(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	buf := &InputBuffer{}
	buf.Press(component.SlotDash)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	assert.Equal(t, component.Position{X: 400, Y: 250}, w.Get(player, component.CPosition))
	assert.True(t, IsInvulnerable(w, player))
	assert.InDelta(t, config.DashCooldown*0.75, cooldown(w, player, component.SlotDash), 1e-9, "knight passive")
	assert.Equal(t, 1, stats(w, player).AbilitiesCast)
	assert.Equal(t, 1, countSounds(w, component.SoundAbilityCast))
}

func TestCastOnCooldownIsIgnored(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	buf := &InputBuffer{}
	ab := newAbilities(buf, config.Normal)

	buf.Press(component.SlotDash)
	ab.Update(w, 1.0/60)
	ab.Update(w, 1.0/60)

	assert.Equal(t, component.Position{X: 400, Y: 250}, w.Get(player, component.CPosition))
	assert.Equal(t, 1, stats(w, player).AbilitiesCast)
}

func TestOneCastPerFrame(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	buf := &InputBuffer{}
	buf.Press(component.SlotDash)
	buf.Press(component.SlotFreeze)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	assert.Greater(t, cooldown(w, player, component.SlotDash), 0.0)
	assert.Zero(t, cooldown(w, player, component.SlotFreeze))
}

func TestNovaDamagesAndKnocksBackNearbyEnemies(t *testing.T) {
	w := ecs.NewWorld()
	factory.NewPlayer(w, 400, 400, assets.Class(assets.ClassBloodMage), normal)
	near := dummy(w, component.SideEnemy, 450, 400, 500)
	far := dummy(w, component.SideEnemy, 600, 400, 500)
	buf := &InputBuffer{}
	buf.Press(component.SlotNova)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	assert.Equal(t, 275.0, health(w, near), "150 x 1.5 blood mage")
	assert.Equal(t, 500.0, health(w, far))
	kb := w.Get(near, component.CKnockback).(component.Knockback)
	assert.InDelta(t, config.NovaKnockback, kb.X, 1e-9)
}

func TestMissilesTargetNearestThree(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 400, 400)
	var enemies []ecs.EntityID
	for i := 0; i < 5; i++ {
		enemies = append(enemies, dummy(w, component.SideEnemy, 450+float64(i)*50, 400, 50))
	}
	buf := &InputBuffer{}
	buf.Press(component.SlotMissiles)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	missiles := w.Query(component.CHoming)
	require.Len(t, missiles, 3)
	for i, m := range missiles {
		assert.Equal(t, enemies[i], w.Get(m, component.CHoming).(component.Homing).Target)
	}
}

func TestMissilesWithoutEnemiesStayReady(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	buf := &InputBuffer{}
	buf.Press(component.SlotMissiles)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	assert.Zero(t, cooldown(w, player, component.SlotMissiles))
	assert.Zero(t, stats(w, player).AbilitiesCast)
}

func TestFreezeSlowsAllEnemies(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 400, 400)
	a := dummy(w, component.SideEnemy, 1000, 100, 50)
	b := dummy(w, component.SideEnemy, 10, 600, 50)
	buf := &InputBuffer{}
	buf.Press(component.SlotFreeze)

	newAbilities(buf, config.Normal).Update(w, 1.0/60)

	for _, id := range []ecs.EntityID{a, b} {
		s := w.Get(id, component.CSlowed).(component.Slowed)
		assert.Equal(t, config.FreezeSlow, s.Percent)
		assert.Equal(t, config.FreezeDuration, s.Remaining)
	}
	assert.Equal(t, 1, w.Count(component.CScreenEffect))
}

func TestInputSetsVelocityAndFacing(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 400, 400)
	buf := &InputBuffer{}
	buf.SetMove(1, 1)

	(&Input{Source: buf, Cfg: config.New(config.Normal)}).Update(w, 1.0/60)

	v := w.Get(player, component.CVelocity).(component.Velocity)
	assert.InDelta(t, 250/1.4142135623730951, v.X, 1e-6)
	assert.InDelta(t, v.X, v.Y, 1e-9)
	p := w.Get(player, component.CPlayer).(component.Player)
	assert.InDelta(t, 0.7071067811865476, p.FacingX, 1e-9)
}

func TestInputBufferEndFrameClearsCasts(t *testing.T) {
	buf := &InputBuffer{}
	buf.SetMove(-1, 0)
	buf.Press(component.SlotNova)
	buf.EndFrame()
	in := buf.Input()
	assert.False(t, in.Cast[component.SlotNova])
	assert.Equal(t, -1.0, in.MoveX)
}
