package audio

import (
	"testing"
	"time"

	"emoji-survivors/internal/component"

	"github.com/gopxl/beep"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allKinds = []component.SoundKind{
	component.SoundPlayerHit,
	component.SoundEnemyDeath,
	component.SoundAbilityCast,
	component.SoundBossSpawn,
	component.SoundLevelUp,
	component.SoundProjectileFire,
	component.SoundEnemySpawn,
}

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if v := buf[i][0]; v > peak {
				peak = v
			} else if -v > peak {
				peak = -v
			}
		}
		total += n
		if !ok {
			break
		}
		require.Less(t, total, int(sampleRate)*10, "stream never ended")
	}
	require.NoError(t, s.Err())
	return total, peak
}

func TestEverySoundKindSynthesizes(t *testing.T) {
	for _, k := range allKinds {
		t.Run(k.String(), func(t *testing.T) {
			s := Sound(sampleRate, k)
			require.NotNil(t, s)
			n, peak := drain(t, s)
			assert.Equal(t, sampleRate.N(Length(k)), n)
			assert.Greater(t, peak, 0.0)
			assert.LessOrEqual(t, peak, 1.0)
		})
	}
}

func TestUnknownSoundIsNil(t *testing.T) {
	assert.Nil(t, Sound(sampleRate, component.SoundKind(0)))
}

func TestToneLength(t *testing.T) {
	s := NewTone(sampleRate, WaveSine, 440, 440, 50*time.Millisecond)
	n, _ := drain(t, s)
	assert.Equal(t, sampleRate.N(50*time.Millisecond), n)
}

func TestCollapseCapsRepeats(t *testing.T) {
	in := []component.SoundKind{
		component.SoundEnemyDeath, component.SoundEnemyDeath, component.SoundLevelUp,
		component.SoundEnemyDeath, component.SoundEnemyDeath, component.SoundEnemyDeath,
	}
	got := collapse(in)
	assert.Equal(t, []component.SoundKind{
		component.SoundEnemyDeath, component.SoundEnemyDeath, component.SoundLevelUp, component.SoundEnemyDeath,
	}, got)
	assert.Len(t, in, 6, "input untouched")
}

func TestManagerSilentWithoutInit(t *testing.T) {
	sm := NewSoundManager()
	assert.NotPanics(t, func() {
		sm.Play(allKinds)
		sm.SetMuted(true)
		sm.Cleanup()
	})
}

func TestManagerInitialization(t *testing.T) {
	sm := NewSoundManager()
	if err := sm.Initialize(); err != nil {
		t.Skipf("no audio device: %v", err)
	}
	defer sm.Cleanup()
	require.NoError(t, sm.Initialize(), "second init is a no-op")
	sm.Play([]component.SoundKind{component.SoundLevelUp})
}
