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

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpawner(d config.Difficulty) *Spawner {
	return NewSpawner(config.New(d), rand.New(rand.NewSource(42)), slog.Default())
}

func bosses(w *ecs.World) []ecs.EntityID {
	var out []ecs.EntityID
	for _, id := range w.Query(component.CEnemy) {
		if w.Get(id, component.CEnemy).(component.Enemy).IsBoss {
			out = append(out, id)
		}
	}
	return out
}

func TestWaveFiresOnInterval(t *testing.T) {
	w := ecs.NewWorld()
	player := newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)

	s.Update(w, 9.9)
	assert.Zero(t, s.Wave)
	assert.Zero(t, w.Count(component.CTagEnemy))

	s.Update(w, 0.1)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, 5, w.Count(component.CTagEnemy))
	assert.InDelta(t, 5*1.15, s.EnemiesThisWave, 1e-9)
	assert.Equal(t, 1, stats(w, player).HighestWave)
}

func TestWaveSizeCompoundsAcrossWaves(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)

	total := 0
	for k := 0; k < 4; k++ {
		s.Update(w, 10)
		want := int(5 * math.Pow(1.15, float64(k)))
		assert.Equal(t, want, w.Count(component.CTagEnemy)-total, "wave %d", k+1)
		total = w.Count(component.CTagEnemy)
	}
	assert.InDelta(t, 5*math.Pow(1.15, 4), s.EnemiesThisWave, 1e-9)
}

func TestSpawnIntervalFollowsDifficulty(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Hard)

	s.Update(w, 8)
	assert.Equal(t, 1, s.Wave)

	s.Cfg.SetDifficulty(config.Easy)
	s.Update(w, 8)
	assert.Equal(t, 1, s.Wave, "easy waits 12s")
	s.Update(w, 4)
	assert.Equal(t, 2, s.Wave)
}

func TestSpawnsStayInsideWorld(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 50, 50)
	s := newTestSpawner(config.Normal)

	for i := 0; i < 4; i++ {
		s.Update(w, 10)
	}

	for _, id := range w.Query(component.CTagEnemy) {
		p := w.Get(id, component.CPosition).(component.Position)
		assert.GreaterOrEqual(t, p.X, config.SpawnPadding)
		assert.LessOrEqual(t, p.X, config.DefaultWidth-config.SpawnPadding)
		assert.GreaterOrEqual(t, p.Y, config.SpawnPadding)
		assert.LessOrEqual(t, p.Y, config.DefaultHeight-config.SpawnPadding)
	}
}

func TestBossWaveSpawnsExactlyOneBoss(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)

	for i := 0; i < 4; i++ {
		s.Update(w, 10)
	}
	require.Empty(t, bosses(w))
	before := w.Count(component.CTagEnemy)
	scale := s.EnemiesThisWave

	s.Update(w, 10)

	assert.Equal(t, 5, s.Wave)
	found := bosses(w)
	require.Len(t, found, 1)
	assert.Equal(t, before+1, w.Count(component.CTagEnemy))
	assert.Equal(t, scale, s.EnemiesThisWave, "boss waves do not grow the wave size")
	e := w.Get(found[0], component.CEnemy).(component.Enemy)
	assert.Equal(t, assets.BossBloodTitan, e.BossID)
	assert.Equal(t, 1, countSounds(w, component.SoundBossSpawn))
	assert.Len(t, w.Query(component.CScreenEffect), 1)
}

func TestSecondBossWaveUsesRotation(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)
	s.Wave = 9
	s.BossWaves = 1

	s.Update(w, 10)

	found := bosses(w)
	require.Len(t, found, 1)
	assert.Equal(t, assets.BossVoidReaver, w.Get(found[0], component.CEnemy).(component.Enemy).BossID)
}

func TestElitesOnlyFromWaveThree(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)
	s.EnemiesThisWave = 300

	s.Update(w, 10)
	s.Update(w, 10)
	for _, id := range w.Query(component.CEnemy) {
		assert.False(t, w.Get(id, component.CEnemy).(component.Enemy).IsElite)
	}

	for _, id := range w.Query(component.CEnemy) {
		w.DestroyEntity(id)
	}
	w.Flush()
	s.EnemiesThisWave = 300
	s.Update(w, 10)
	elites := 0
	for _, id := range w.Query(component.CEnemy) {
		if w.Get(id, component.CEnemy).(component.Enemy).IsElite {
			elites++
		}
	}
	assert.Greater(t, elites, 5)
}

func TestEnemyCapSkipsExcessSpawns(t *testing.T) {
	w := ecs.NewWorld()
	newPlayer(w, 640, 360)
	s := newTestSpawner(config.Normal)
	s.EnemiesThisWave = config.MaxEntities + 50

	s.Update(w, 10)

	assert.Equal(t, config.MaxEntities, w.Count(component.CTagEnemy))
}

func TestHealthScalesWithElapsedMinutes(t *testing.T) {
	s := newTestSpawner(config.Normal)
	assert.Equal(t, 1.0, s.HealthScale())
	s.Elapsed = 59
	assert.Equal(t, 1.0, s.HealthScale())
	s.Elapsed = 125
	assert.InDelta(t, math.Pow(1.1, 2), s.HealthScale(), 1e-12)
}
