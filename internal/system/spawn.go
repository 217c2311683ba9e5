package system

import (
	"log/slog"
	"math"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
)

const bossWarningTime = 2.0

// Spawner emits a wave every SpawnInterval seconds of the active
// difficulty. Every config.BossInterval-th wave is a boss wave holding a
// single boss; other waves spawn a weighted mix whose size grows by
// WaveScaling each time.
type Spawner struct {
	Cfg *config.Config
	Rng *rand.Rand
	Log *slog.Logger

	Wave            int
	BossWaves       int
	Timer           float64
	Elapsed         float64
	EnemiesThisWave float64
}

// NewSpawner returns a spawner waiting for its first wave.
func NewSpawner(cfg *config.Config, rng *rand.Rand, log *slog.Logger) *Spawner {
	return &Spawner{Cfg: cfg, Rng: rng, Log: log, EnemiesThisWave: config.InitialEnemies}
}

func (s *Spawner) Update(w *ecs.World, dt float64) {
	s.Elapsed += dt
	s.Timer += dt
	if s.Timer < s.Cfg.Multipliers().SpawnInterval {
		return
	}
	s.Timer = 0
	s.Wave++

	player := PlayerID(w)
	updateStats(w, player, func(st *component.GameStats) {
		if s.Wave > st.HighestWave {
			st.HighestWave = s.Wave
		}
	})
	ppos, ok := position(w, player)
	if !ok {
		return
	}

	if s.Wave%config.BossInterval == 0 {
		s.spawnBoss(w, ppos)
		return
	}

	n := int(s.EnemiesThisWave)
	spawned := 0
	for i := 0; i < n; i++ {
		if s.spawnEnemy(w, ppos) {
			spawned++
		}
	}
	s.EnemiesThisWave *= s.Cfg.Multipliers().WaveScaling
	if spawned > 0 {
		factory.NewAudioEvent(w, component.SoundEnemySpawn)
	}
	s.Log.Debug("wave spawned", "wave", s.Wave, "enemies", spawned, "next", int(s.EnemiesThisWave))
}

// HealthScale is the time-based enemy health multiplier, compounding
// once per full minute survived.
func (s *Spawner) HealthScale() float64 {
	return math.Pow(config.TimeScalingPerMin, math.Floor(s.Elapsed/60))
}

func (s *Spawner) spawnEnemy(w *ecs.World, around component.Position) bool {
	if w.Count(component.CTagEnemy) >= config.MaxEntities {
		return false
	}
	kind := assets.PickEnemyType(s.Rng.Float64())
	elite := s.Wave >= config.EliteMinWave && s.Rng.Float64() < config.EliteChance
	pos := s.spawnPoint(around, config.SpawnPadding)
	factory.NewEnemy(w, pos.X, pos.Y, s.HealthScale(), kind, elite, s.Cfg.Multipliers())
	return true
}

func (s *Spawner) spawnBoss(w *ecs.World, around component.Position) {
	s.BossWaves++
	id := assets.BossForWave(s.BossWaves)
	pos := s.spawnPoint(around, config.BossSpawnPadding)
	factory.NewBoss(w, pos.X, pos.Y, s.HealthScale(), id, s.Cfg.Multipliers())
	factory.NewAudioEvent(w, component.SoundBossSpawn)
	factory.NewScreenEffect(w, component.ScreenBossWarning, bossWarningTime)
	def, _ := assets.Boss(id)
	s.Log.Info("boss wave", "wave", s.Wave, "boss", def.Name)
}

// spawnPoint picks a random point in the spawn band around the player,
// kept pad units inside the world.
func (s *Spawner) spawnPoint(around component.Position, pad float64) component.Position {
	angle := s.Rng.Float64() * 2 * math.Pi
	dist := config.SpawnMinDistance + s.Rng.Float64()*(config.SpawnMaxDistance-config.SpawnMinDistance)
	return ClampPadding(s.Cfg, component.Position{
		X: around.X + math.Cos(angle)*dist,
		Y: around.Y + math.Sin(angle)*dist,
	}, pad)
}
