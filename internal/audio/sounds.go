package audio

import (
	"time"

	"emoji-survivors/internal/component"

	"github.com/gopxl/beep"
)

// recipe describes how to synthesize one sound kind.
type recipe struct {
	wave     Wave
	from, to float64 // Hz
	length   time.Duration
	attack   time.Duration
	decay    float64
	gain     float64
	harmonic float64 // >0 layers a second tone at this multiple
}

var recipes = map[component.SoundKind]recipe{
	component.SoundPlayerHit:      {wave: WaveSquare, from: 180, to: 90, length: 150 * time.Millisecond, attack: 5 * time.Millisecond, decay: 6, gain: 0.35},
	component.SoundEnemyDeath:     {wave: WaveNoise, length: 200 * time.Millisecond, attack: 2 * time.Millisecond, decay: 8, gain: 0.25},
	component.SoundAbilityCast:    {wave: WaveSaw, from: 300, to: 900, length: 250 * time.Millisecond, attack: 10 * time.Millisecond, decay: 4, gain: 0.3},
	component.SoundBossSpawn:      {wave: WaveSaw, from: 70, to: 55, length: 1200 * time.Millisecond, attack: 100 * time.Millisecond, decay: 2, gain: 0.5, harmonic: 1.5},
	component.SoundLevelUp:        {wave: WaveSine, from: 523, to: 1047, length: 500 * time.Millisecond, attack: 10 * time.Millisecond, decay: 3, gain: 0.4, harmonic: 2},
	component.SoundProjectileFire: {wave: WaveSquare, from: 900, to: 600, length: 60 * time.Millisecond, attack: 2 * time.Millisecond, decay: 10, gain: 0.12},
	component.SoundEnemySpawn:     {wave: WaveSine, from: 220, to: 330, length: 180 * time.Millisecond, attack: 20 * time.Millisecond, decay: 5, gain: 0.2},
}

// Length returns how long the sound for kind plays.
func Length(kind component.SoundKind) time.Duration {
	return recipes[kind].length
}

// Sound synthesizes the streamer for kind. Unknown kinds yield nil.
func Sound(rate beep.SampleRate, kind component.SoundKind) beep.Streamer {
	r, ok := recipes[kind]
	if !ok {
		return nil
	}
	tone := func(freq, end float64) beep.Streamer {
		return NewEnvelope(rate, NewTone(rate, r.wave, freq, end, r.length), r.attack, r.length, r.decay)
	}
	s := tone(r.from, r.to)
	if r.harmonic > 0 {
		s = beep.Mix(withVolume(s, 0.7), withVolume(tone(r.from*r.harmonic, r.to*r.harmonic), 0.3))
	}
	return beep.Take(rate.N(r.length), withVolume(s, r.gain))
}
