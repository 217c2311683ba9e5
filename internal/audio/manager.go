// Package audio synthesizes the game's one-shot sound effects and plays
// them through the system speaker.
package audio

import (
	"fmt"
	"sync"
	"time"

	"emoji-survivors/internal/component"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// maxVoices caps how many copies of one sound may be queued per drain.
const maxVoices = 3

// SoundManager plays sounds through a shared mixer. Every method is safe to
// call before Initialize or after Cleanup, in which case it does nothing.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
}

// NewSoundManager creates a manager that is silent until initialized.
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops every playing sound.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// SetMuted toggles output without closing the speaker.
func (sm *SoundManager) SetMuted(m bool) {
	sm.mu.Lock()
	sm.muted = m
	sm.mu.Unlock()
}

// Play queues the given sounds. Repeats of one kind within a batch are
// collapsed to at most maxVoices.
func (sm *SoundManager) Play(kinds []component.SoundKind) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	batch := collapse(kinds)
	if len(batch) == 0 {
		return
	}
	speaker.Lock()
	for _, k := range batch {
		if s := Sound(sampleRate, k); s != nil {
			sm.mixer.Add(s)
		}
	}
	speaker.Unlock()
}

// collapse keeps the first maxVoices occurrences of each kind, preserving order.
func collapse(kinds []component.SoundKind) []component.SoundKind {
	seen := make(map[component.SoundKind]int, len(kinds))
	out := kinds[:0:0]
	for _, k := range kinds {
		if seen[k] >= maxVoices {
			continue
		}
		seen[k]++
		out = append(out, k)
	}
	return out
}
