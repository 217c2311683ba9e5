package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTable(t *testing.T) {
	assert.Equal(t, 1.15, DefaultMultipliers(Normal).WaveScaling)
	assert.Equal(t, 12.0, DefaultMultipliers(Easy).SpawnInterval)
	assert.Equal(t, 0.10, DefaultMultipliers(Hard).DropChance)
}

func TestMultipliersReadFresh(t *testing.T) {
	c := New(Normal)
	assert.Equal(t, 1.0, c.Multipliers().EnemyHealth)
	c.SetDifficulty(Hard)
	assert.Equal(t, 1.4, c.Multipliers().EnemyHealth)
	assert.Equal(t, Hard, c.Difficulty())
}

func TestParseDifficulty(t *testing.T) {
	for _, d := range []Difficulty{Easy, Normal, Hard} {
		got, err := ParseDifficulty(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, got)
	}
	_, err := ParseDifficulty("nightmare")
	assert.Error(t, err)
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "survivors.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadFileOverrides(t *testing.T) {
	path := writeConfig(t, `
[world]
width = 1600

[difficulty.hard]
enemy_health = 2.0
`)
	c := New(Hard)
	require.NoError(t, c.LoadFile(path))
	assert.Equal(t, 1600.0, c.Width)
	assert.Equal(t, DefaultHeight, c.Height)
	m := c.Multipliers()
	assert.Equal(t, 2.0, m.EnemyHealth)
	assert.Equal(t, 1.3, m.EnemyDamage, "unset keys keep their default")

	c.SetDifficulty(Normal)
	assert.Equal(t, 1.0, c.Multipliers().EnemyHealth)
}

func TestLoadFileRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "[difficulty.normal]\nenemy_hp = 3\n")
	err := New(Normal).LoadFile(path)
	assert.ErrorContains(t, err, "unknown key")
}

func TestLoadFileRejectsUnknownDifficulty(t *testing.T) {
	path := writeConfig(t, "[difficulty.nightmare]\nenemy_health = 3\n")
	assert.Error(t, New(Normal).LoadFile(path))
}

func TestLoadFileMissing(t *testing.T) {
	assert.Error(t, New(Normal).LoadFile(filepath.Join(t.TempDir(), "nope.toml")))
}
