package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Wave selects an oscillator shape.
type Wave uint8

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator produces a fixed-length tone whose frequency glides linearly
// from freq to endFreq.
type oscillator struct {
	rate     beep.SampleRate
	wave     Wave
	freq     float64
	endFreq  float64
	phase    float64
	pos      int
	duration int
	rng      *rand.Rand
}

// NewTone returns a streamer of length d gliding from freq to endFreq.
func NewTone(rate beep.SampleRate, wave Wave, freq, endFreq float64, d time.Duration) beep.Streamer {
	return &oscillator{
		rate:     rate,
		wave:     wave,
		freq:     freq,
		endFreq:  endFreq,
		duration: rate.N(d),
		rng:      rand.New(rand.NewSource(int64(freq*1000) + int64(d))),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.duration {
			return i, i > 0
		}
		var v float64
		switch o.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			v = 1
			if o.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (o.phase - 0.5)
		case WaveNoise:
			v = o.rng.Float64()*2 - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t := float64(o.pos) / float64(o.duration)
		f := o.freq + (o.endFreq-o.freq)*t
		o.phase += f / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope shapes a stream with a linear attack and an exponential release.
type envelope struct {
	s       beep.Streamer
	pos     int
	attack  int
	total   int
	release float64
}

// NewEnvelope wraps s with an attack of length attack over a total of d.
// decay sets how quickly the tail fades; larger is shorter.
func NewEnvelope(rate beep.SampleRate, s beep.Streamer, attack, d time.Duration, decay float64) beep.Streamer {
	return &envelope{s: s, attack: rate.N(attack), total: rate.N(d), release: decay}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.s.Stream(samples)
	for i := 0; i < n; i++ {
		if e.pos >= e.total {
			return i, i > 0
		}
		vol := 1.0
		if e.pos < e.attack {
			vol = float64(e.pos) / float64(e.attack)
		} else {
			t := float64(e.pos-e.attack) / float64(e.total)
			vol = math.Exp(-t * e.release)
		}
		samples[i][0] *= vol
		samples[i][1] *= vol
		e.pos++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.s.Err() }

// withVolume scales s by a linear gain; zero or less is silent.
func withVolume(s beep.Streamer, gain float64) beep.Streamer {
	if gain <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(gain)}
}
