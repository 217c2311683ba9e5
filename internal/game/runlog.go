package game

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"emoji-survivors/internal/component"
)

// RunLog records one finished run.
type RunLog struct {
	Player     string              `json:"player,omitempty"`
	Class      string              `json:"class"`
	Map        string              `json:"map"`
	Difficulty string              `json:"difficulty"`
	Seed       int64               `json:"seed"`
	Level      int                 `json:"level"`
	Died       bool                `json:"died"`
	EndedAt    time.Time           `json:"ended_at"`
	Stats      component.GameStats `json:"stats"`
}

// saveRunLog appends the completed run as a single JSON line to runs.jsonl.
// Failures are logged and otherwise ignored so a disk problem never ends the game.
func saveRunLog(log *slog.Logger, run RunLog) {
	if err := appendRunLog(run); err != nil {
		log.Warn("run log not saved", "err", err)
	}
}

func appendRunLog(run RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(run)
	if err != nil {
		return fmt.Errorf("encode run log: %w", err)
	}
	if _, err := f.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write run log: %w", err)
	}
	return nil
}

// runLogDir returns the directory where run logs are stored.
// Uses the XDG data directory: $XDG_DATA_HOME/emoji-survivors,
// defaulting to ~/.local/share/emoji-survivors.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "emoji-survivors"), nil
}

// RunLog summarizes the session for the run log.
func (s *Session) RunLog(player string) RunLog {
	level := 0
	if c := s.world.Get(s.player, component.CExperience); c != nil {
		level = c.(component.Experience).Level
	}
	return RunLog{
		Player:     player,
		Class:      s.class.Key,
		Map:        s.arena.Key,
		Difficulty: s.cfg.Difficulty().String(),
		Seed:       s.seed,
		Level:      level,
		Died:       s.PlayerDead(),
		EndedAt:    time.Now().UTC(),
		Stats:      s.Stats(),
	}
}
