package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"emoji-survivors/assets"
	"emoji-survivors/internal/audio"
	"emoji-survivors/internal/config"
	"emoji-survivors/internal/game"

	"github.com/pkg/profile"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	class := flag.String("class", "", "Class key (knight, mage, guardian); empty shows the menu")
	arena := flag.String("map", "", "Map key (sanctum, cathedral, crypts); empty shows the menu")
	difficulty := flag.String("difficulty", "", "easy, normal or hard; empty shows the menu")
	cfgFile := flag.String("config", "", "Optional TOML file overriding difficulty multipliers and arena size")
	seed := flag.Int64("seed", 0, "RNG seed; 0 picks one per run")
	logFile := flag.String("log", "", "Write logs to this file (discarded when empty)")
	headless := flag.Float64("headless", 0, "Run a bot for this many game seconds without a terminal")
	prof := flag.String("profile", "", "Write a cpu or mem profile to the current directory")
	mute := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	switch *prof {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *prof)
	}

	log, closeLog, err := openLogger(*logFile, *headless > 0)
	if err != nil {
		return err
	}
	defer closeLog()

	diff, err := config.ParseDifficulty(*difficulty)
	if err != nil {
		return err
	}
	cfg := config.New(diff)
	if *cfgFile != "" {
		if err := cfg.LoadFile(*cfgFile); err != nil {
			return err
		}
	}
	if *class != "" {
		if _, ok := assets.ClassByKey(*class); !ok {
			return fmt.Errorf("unknown class %q", *class)
		}
	}
	if *arena != "" {
		if _, ok := assets.MapByKey(*arena); !ok {
			return fmt.Errorf("unknown map %q", *arena)
		}
	}

	if *headless > 0 {
		return runHeadless(log, cfg, *class, *arena, *seed, *headless)
	}

	sound := audio.NewSoundManager()
	if !*mute {
		if err := sound.Initialize(); err != nil {
			log.Warn("audio disabled", "err", err)
		}
	}
	defer sound.Cleanup()

	g, err := game.New(game.Settings{
		Config:     cfg,
		Class:      *class,
		Map:        *arena,
		Difficulty: *difficulty,
		Seed:       *seed,
		PlayerName: os.Getenv("USER"),
		Logger:     log,
		Sound:      sound,
	})
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return g.Run(ctx)
}

// openLogger writes to path, or to stderr for headless runs. The terminal
// belongs to tcell otherwise, so logs are discarded without a file.
func openLogger(path string, headless bool) (*slog.Logger, func(), error) {
	switch {
	case path != "":
		f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})), func() { f.Close() }, nil
	case headless:
		return slog.New(slog.NewTextHandler(os.Stderr, nil)), func() {}, nil
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil)), func() {}, nil
}

func runHeadless(log *slog.Logger, cfg *config.Config, classKey, mapKey string, seed int64, seconds float64) error {
	opts := game.Options{Config: cfg, Seed: seed, Logger: log}
	if c, ok := assets.ClassByKey(classKey); ok {
		opts.Class = c.ID
	}
	if m, ok := assets.MapByKey(mapKey); ok {
		opts.Map = m.ID
	}
	res, err := game.RunHeadless(opts, seconds)
	if err != nil {
		return err
	}
	st := res.Run.Stats
	fmt.Printf("class=%s map=%s difficulty=%s seed=%d\n", res.Run.Class, res.Run.Map, res.Run.Difficulty, res.Run.Seed)
	fmt.Printf("survived %.1fs  level %d  wave %d  kills %d  bosses %d  died=%v\n",
		st.SurvivalTime, res.Run.Level, st.HighestWave, st.Kills, st.BossesKilled, res.Run.Died)
	fmt.Printf("damage dealt %.0f  taken %.0f  frames %d\n", st.DamageDealt, st.DamageTaken, res.Frames)
	return nil
}
