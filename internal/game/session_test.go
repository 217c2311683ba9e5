package game

import (
	"io"
	"log/slog"
	"testing"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame = 1.0 / config.FPS

func newTestSession(t *testing.T, opts Options) *Session {
	t.Helper()
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	s, err := NewSession(opts)
	require.NoError(t, err)
	return s
}

func playerPos(s *Session) component.Position {
	return s.World().Get(s.Player(), component.CPosition).(component.Position)
}

func TestAutoAttackAimsAtNearbyEnemy(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	p := playerPos(s)
	enemy := factory.NewEnemy(s.World(), p.X+50, p.Y, 1, assets.EnemyBasic, false, s.Config().Multipliers())
	require.Equal(t, 20.0, s.World().Get(enemy, component.CHealth).(component.Health).Current)

	s.Tick(0.001)

	var bolts []ecs.EntityID
	for _, id := range s.World().Query(component.CProjectile) {
		if s.World().Get(id, component.CProjectile).(component.Projectile).Source == assets.WeaponNone {
			bolts = append(bolts, id)
		}
	}
	require.Len(t, bolts, 1)
	v := s.World().Get(bolts[0], component.CVelocity).(component.Velocity)
	assert.InDelta(t, config.ProjectileSpeed, v.X, 1)
	assert.InDelta(t, 0, v.Y, 5)
}

func TestLethalHitRewardsPlayer(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	w := s.World()
	p := playerPos(s)
	enemy := factory.NewEnemy(w, p.X+300, p.Y, 1, assets.EnemyBasic, false, s.Config().Multipliers())
	h := w.Get(enemy, component.CHealth).(component.Health)
	h.Current = 5
	w.Add(enemy, h)
	factory.NewProjectile(w, p.X+300, p.Y, 0, 0, factory.Shot{Team: component.SidePlayer, Damage: 10})

	s.Tick(frame)

	assert.False(t, w.Alive(enemy))
	assert.Nil(t, w.Get(enemy, component.CHealth))
	exp := w.Get(s.Player(), component.CExperience).(component.Experience)
	assert.Equal(t, assets.EnemyBaseXP, exp.XP)
	assert.Equal(t, 1, s.Stats().Kills)
}

func TestUnknownClassOrMap(t *testing.T) {
	_, err := NewSession(Options{Class: assets.ClassID(99)})
	assert.Error(t, err)
	_, err = NewSession(Options{Map: assets.MapID(99)})
	assert.Error(t, err)
}

func TestMapPlacesHazards(t *testing.T) {
	s := newTestSession(t, Options{Map: assets.MapCursedCrypts, Seed: 3})
	assert.Equal(t, assets.Map(assets.MapCursedCrypts).HazardCount, s.World().Count(component.CHazard))

	s = newTestSession(t, Options{Map: assets.MapDarkSanctum, Seed: 3})
	assert.Zero(t, s.World().Count(component.CHazard))
}

func TestInputMovesPlayer(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	start := playerPos(s)

	s.Input().SetMove(1, 0)
	s.Tick(0.1)

	assert.InDelta(t, start.X+assets.Class(assets.ClassShadowKnight).Speed*0.1, playerPos(s).X, 1e-9)
	assert.Equal(t, start.Y, playerPos(s).Y)
}

func TestCastRequestLastsOneFrame(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})

	s.Input().Press(component.SlotDash)
	s.Tick(frame)
	assert.Equal(t, 1, s.Stats().AbilitiesCast)
	assert.Contains(t, s.DrainAudio(), component.SoundAbilityCast)

	s.Tick(frame)
	assert.Equal(t, 1, s.Stats().AbilitiesCast)
}

func TestLevelUpPausesUntilChosen(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	w := s.World()
	p := playerPos(s)
	boss := factory.NewBoss(w, p.X+300, p.Y, 1, assets.BossBloodTitan, s.Config().Multipliers())
	h := w.Get(boss, component.CHealth).(component.Health)
	h.Current = 0
	w.Add(boss, h)

	s.Tick(frame)
	require.True(t, s.Paused())
	choices := s.PendingChoices()
	require.NotEmpty(t, choices)

	before := s.Stats().SurvivalTime
	s.Tick(frame)
	assert.Equal(t, before, s.Stats().SurvivalTime, "world is frozen while choosing")

	assert.Error(t, s.ChooseUpgrade(len(choices)))
	require.NoError(t, s.ChooseUpgrade(0))
	assert.False(t, s.Paused())

	f := s.Snapshot()
	assert.Zero(t, f.HUD.Pending)
	assert.Equal(t, 2, f.HUD.Level)
}

func TestDeadPlayerFreezesSession(t *testing.T) {
	s := newTestSession(t, Options{Seed: 1})
	w := s.World()
	h := w.Get(s.Player(), component.CHealth).(component.Health)
	h.Current = 0
	w.Add(s.Player(), h)

	assert.True(t, s.PlayerDead())
	s.Tick(frame)
	assert.True(t, w.Alive(s.Player()), "the player entity is kept for the end screen")
	assert.ErrorIs(t, s.ChooseUpgrade(0), ErrPlayerDead)
	assert.True(t, s.Snapshot().HUD.Dead)
}

func TestSnapshotShowsPlayer(t *testing.T) {
	s := newTestSession(t, Options{Class: assets.ClassBloodMage, Seed: 1})

	f := s.Snapshot()

	assert.Equal(t, config.DefaultWidth, f.Width)
	assert.Equal(t, "Blood Mage", f.HUD.Class)
	found := false
	for _, sp := range f.Sprites {
		if sp.Glyph == assets.GlyphMage {
			found = true
			assert.Equal(t, config.DefaultWidth/2, sp.X)
		}
	}
	assert.True(t, found)
	require.Len(t, f.HUD.Weapons, 1)
	assert.Equal(t, "Arcane Seeker", f.HUD.Weapons[0].Name)
}

func TestSameSeedSameRun(t *testing.T) {
	run := func() ([]component.SoundKind, component.GameStats, component.Position) {
		s := newTestSession(t, Options{Seed: 99, Map: assets.MapBloodCathedral})
		var sounds []component.SoundKind
		for i := 0; i < 60*25; i++ {
			s.Input().SetMove(float64(i/120%3-1), float64(i/90%3-1))
			if s.Paused() {
				require.NoError(t, s.ChooseUpgrade(0))
			}
			s.Tick(frame)
			sounds = append(sounds, s.DrainAudio()...)
		}
		return sounds, s.Stats(), playerPos(s)
	}

	sa, sta, pa := run()
	sb, stb, pb := run()
	assert.Equal(t, sa, sb)
	assert.Equal(t, sta, stb)
	assert.Equal(t, pa, pb)
	assert.GreaterOrEqual(t, sta.HighestWave, 2)
}

func TestDrainConsumesMarkers(t *testing.T) {
	s := newTestSession(t, Options{Seed: 3})
	w := s.World()
	factory.NewDamageNumber(w, 10, 10, 12, true)
	factory.NewAudioEvent(w, component.SoundLevelUp)

	nums := s.DrainDamageNumbers()
	require.Len(t, nums, 1)
	assert.Equal(t, 12.0, nums[0].Amount)
	assert.True(t, nums[0].OnPlayer)
	assert.Empty(t, s.DrainDamageNumbers())

	assert.Equal(t, []component.SoundKind{component.SoundLevelUp}, s.DrainAudio())
	assert.Empty(t, s.DrainAudio())
}
