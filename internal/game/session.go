package game

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"math/rand"

	"emoji-survivors/assets"
	"emoji-survivors/internal/component"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/ecs"
	"emoji-survivors/internal/factory"
	"emoji-survivors/internal/system"
)

// ErrPlayerDead is returned by operations that need a living player.
var ErrPlayerDead = errors.New("player is dead")

// Options configures a new Session.
type Options struct {
	Config *config.Config // defaults to config.New(config.Normal)
	Class  assets.ClassID
	Map    assets.MapID
	Seed   int64
	Logger *slog.Logger // defaults to slog.Default()
}

// Session is one run of the simulation: a world, its scheduled passes and
// the player. It has no terminal dependency; front ends feed it input,
// call Tick, and read Snapshot.
type Session struct {
	cfg     *config.Config
	world   *ecs.World
	sched   *ecs.Scheduler
	rng     *rand.Rand
	log     *slog.Logger
	input   *system.InputBuffer
	spawner *system.Spawner
	player  ecs.EntityID
	class   assets.ClassDef
	arena   assets.MapDef
	seed    int64
}

// NewSession builds a world for one run and registers every pass.
func NewSession(opts Options) (*Session, error) {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.New(config.Normal)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("invalid arena %gx%g", cfg.Width, cfg.Height)
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}
	class, err := lookupClass(opts.Class)
	if err != nil {
		return nil, err
	}
	arena, err := lookupMap(opts.Map)
	if err != nil {
		return nil, err
	}

	s := &Session{
		cfg:   cfg,
		world: ecs.NewWorld(),
		sched: ecs.NewScheduler(),
		rng:   rand.New(rand.NewSource(opts.Seed)),
		log:   log,
		input: &system.InputBuffer{},
		class: class,
		arena: arena,
		seed:  opts.Seed,
	}
	s.player = factory.NewPlayer(s.world, cfg.Width/2, cfg.Height/2, class, cfg.Multipliers())
	s.placeHazards()
	s.spawner = system.NewSpawner(cfg, s.rng, log)

	s.sched.Register(&system.Input{Source: s.input, Cfg: cfg}, system.PriorityInput)
	s.sched.Register(&system.Abilities{Source: s.input, Cfg: cfg, Rng: s.rng, Log: log}, system.PriorityAbility)
	s.sched.Register(system.AI{}, system.PriorityAI)
	s.sched.Register(&system.BossAbilities{Cfg: cfg, Rng: s.rng, Log: log}, system.PriorityBoss)
	s.sched.Register(system.Status{}, system.PriorityStatus)
	s.sched.Register(&system.Movement{Cfg: cfg}, system.PriorityMovement)
	s.sched.Register(&system.AutoAttack{Cfg: cfg}, system.PriorityTargeting)
	s.sched.Register(&system.Weapons{Cfg: cfg, Rng: s.rng}, system.PriorityWeapons)
	s.sched.Register(system.Guidance{}, system.PriorityHoming)
	s.sched.Register(system.ProjectileCollision{}, system.PriorityProjectile)
	s.sched.Register(system.NewContact(), system.PriorityContact)
	s.sched.Register(system.Hazards{}, system.PriorityHazard)
	s.sched.Register(&system.PowerUps{Cfg: cfg, Rng: s.rng}, system.PriorityPowerUp)
	s.sched.Register(s.spawner, system.PrioritySpawner)
	s.sched.Register(&system.Death{Cfg: cfg, Rng: s.rng, Log: log}, system.PriorityDeath)
	s.sched.Register(system.Lifecycle{}, system.PriorityLifecycle)
	s.sched.Register(system.Stats{}, system.PriorityStats)

	log.Info("session started",
		"class", class.Key, "map", arena.Key, "difficulty", cfg.Difficulty(), "seed", opts.Seed)
	return s, nil
}

func lookupClass(id assets.ClassID) (assets.ClassDef, error) {
	for _, c := range assets.Classes {
		if c.ID == id {
			return c, nil
		}
	}
	return assets.ClassDef{}, fmt.Errorf("unknown class %d", id)
}

func lookupMap(id assets.MapID) (assets.MapDef, error) {
	for _, m := range assets.Maps {
		if m.ID == id {
			return m, nil
		}
	}
	return assets.MapDef{}, fmt.Errorf("unknown map %d", id)
}

// placeHazards scatters the map's hazard zones in a band around the center.
func (s *Session) placeHazards() {
	def, ok := assets.Hazard(s.arena.Hazard)
	if !ok {
		return
	}
	cx, cy := s.cfg.Width/2, s.cfg.Height/2
	for i := 0; i < s.arena.HazardCount; i++ {
		angle := s.rng.Float64() * 2 * math.Pi
		dist := s.arena.HazardMinRad + s.rng.Float64()*(s.arena.HazardMaxRad-s.arena.HazardMinRad)
		pos := system.ClampPadding(s.cfg, component.Position{
			X: cx + math.Cos(angle)*dist,
			Y: cy + math.Sin(angle)*dist,
		}, def.Radius)
		factory.NewHazard(s.world, pos.X, pos.Y, def)
	}
}

// Tick advances the simulation by dt seconds. While the player is dead or
// a level-up choice is pending the world is frozen.
func (s *Session) Tick(dt float64) {
	if s.PlayerDead() || s.Paused() {
		return
	}
	s.sched.Tick(s.world, dt)
	s.input.EndFrame()
}

// Input returns the buffer the front end writes player intent into.
func (s *Session) Input() *system.InputBuffer { return s.input }

// World exposes the entity store, read-only by convention.
func (s *Session) World() *ecs.World { return s.world }

// Player returns the player entity.
func (s *Session) Player() ecs.EntityID { return s.player }

// Config returns the live configuration.
func (s *Session) Config() *config.Config { return s.cfg }

// Wave returns the number of waves spawned so far.
func (s *Session) Wave() int { return s.spawner.Wave }

// Class returns the player's class.
func (s *Session) Class() assets.ClassDef { return s.class }

// PlayerDead reports whether the player's health reached zero.
func (s *Session) PlayerDead() bool {
	c := s.world.Get(s.player, component.CHealth)
	return c == nil || c.(component.Health).Current <= 0
}

// Paused reports whether a level-up choice is waiting.
func (s *Session) Paused() bool {
	return s.world.Has(s.player, component.CLevelUpPending)
}

// Stats returns the player's run statistics.
func (s *Session) Stats() component.GameStats {
	if c := s.world.Get(s.player, component.CGameStats); c != nil {
		return c.(component.GameStats)
	}
	return component.GameStats{}
}

// PendingChoices returns the weapons offered by the current level-up.
func (s *Session) PendingChoices() []assets.WeaponID {
	if c := s.world.Get(s.player, component.CLevelUpPending); c != nil {
		return c.(component.LevelUpPending).Choices
	}
	return nil
}

// ChooseUpgrade resolves the pending level-up with the i-th choice.
func (s *Session) ChooseUpgrade(i int) error {
	if s.PlayerDead() {
		return ErrPlayerDead
	}
	choices := s.PendingChoices()
	if err := system.ResolveLevelUp(s.world, s.rng, s.player, i); err != nil {
		return fmt.Errorf("choose upgrade: %w", err)
	}
	if i >= 0 && i < len(choices) {
		def, _ := assets.Weapon(choices[i])
		s.log.Info("upgrade chosen", "weapon", def.Name)
	}
	return nil
}

// DrainAudio returns and removes every queued sound.
func (s *Session) DrainAudio() []component.SoundKind {
	var out []component.SoundKind
	for _, id := range s.world.Query(component.CAudioEvent) {
		out = append(out, s.world.Get(id, component.CAudioEvent).(component.AudioEvent).Kind)
		s.world.DestroyEntity(id)
	}
	s.world.Flush()
	return out
}

// DrainDamageNumbers returns and removes every floating damage number.
// Front ends that draw from Snapshot leave them to expire instead.
func (s *Session) DrainDamageNumbers() []component.DamageNumber {
	var out []component.DamageNumber
	for _, id := range s.world.Query(component.CDamageNumber) {
		out = append(out, s.world.Get(id, component.CDamageNumber).(component.DamageNumber))
		s.world.DestroyEntity(id)
	}
	s.world.Flush()
	return out
}
