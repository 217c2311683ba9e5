package game

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"emoji-survivors/assets"
	"emoji-survivors/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunLogDirXDGEnvOverride(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)

	dir, err := runLogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "emoji-survivors"), dir)
}

func TestRunLogDirDefaultFallback(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "") // force the fallback path

	dir, err := runLogDir()
	if err != nil {
		t.Skip("skipping: no user home directory available in test environment")
	}
	assert.True(t, strings.HasSuffix(dir, filepath.Join(".local", "share", "emoji-survivors")))
}

func TestSaveRunLogFromSession(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	s := newTestSession(t, Options{
		Config: config.New(config.Hard),
		Class:  assets.ClassVoidGuardian,
		Map:    assets.MapBloodCathedral,
		Seed:   7,
	})
	for i := 0; i < 120; i++ {
		s.Tick(frame)
	}

	saveRunLog(slog.New(slog.NewTextHandler(io.Discard, nil)), s.RunLog("alice"))

	data, err := os.ReadFile(filepath.Join(tmp, "emoji-survivors", "runs.jsonl"))
	require.NoError(t, err)
	require.True(t, strings.HasSuffix(string(data), "\n"))

	var got RunLog
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "alice", got.Player)
	assert.Equal(t, "guardian", got.Class)
	assert.Equal(t, "cathedral", got.Map)
	assert.Equal(t, "hard", got.Difficulty)
	assert.Equal(t, int64(7), got.Seed)
	assert.InDelta(t, 2.0, got.Stats.SurvivalTime, 1e-6)
}

func TestSaveRunLogAppendsMultiple(t *testing.T) {
	tmp := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmp)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	for i := 0; i < 3; i++ {
		saveRunLog(log, RunLog{Class: "mage", Level: i + 1})
	}

	data, err := os.ReadFile(filepath.Join(tmp, "emoji-survivors", "runs.jsonl"))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	assert.Len(t, lines, 3)
}
