package audio

import (
	"math"
	"math/rand/v2"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// oscillator generates a raw wave, optionally sliding in pitch
type oscillator struct {
	freq     float64
	slide    float64 // Hz per sample
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator creates a fixed-pitch oscillator
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return NewSweep(freq, freq, duration, wave, rate)
}

// NewSweep creates an oscillator gliding linearly from one pitch to another
func NewSweep(from, to float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	samples := rate.N(duration)
	slide := 0.0
	if samples > 0 {
		slide = (to - from) / float64(samples)
	}
	return &oscillator{
		freq:     from,
		slide:    slide,
		duration: samples,
		wave:     wave,
		rate:     rate,
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveSaw:
			val = 2.0 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.freq += o.slide
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack/release shaping
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	sustainSamples int
	totalSamples   int
}

// NewEnvelope wraps s with an attack and release over duration
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := rate.N(attack)
	rel := rate.N(release)
	sus := max(total-att-rel, 0)

	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		sustainSamples: sus,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples && e.attackSamples > 0 {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		releaseStart := e.attackSamples + e.sustainSamples
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = max(float64(e.totalSamples-e.position)/float64(e.releaseSamples), 0)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume scales linearly; log2(0) is -Inf so zero is silent
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol), Silent: false}
}

// killSound is a short bright ping with an octave overtone
func killSound(rate beep.SampleRate) beep.Streamer {
	fund, err := generators.SineTone(rate, 1318.51)
	if err != nil {
		fund = NewOscillator(1318.51, KillDuration, WaveSine, rate)
	}
	fundShaped := NewEnvelope(beep.Take(rate.N(KillDuration), fund), KillDuration, KillAttack, KillRelease, rate)

	over := NewOscillator(2637.02, KillDuration, WaveSine, rate)
	overShaped := NewEnvelope(over, KillDuration, KillAttack, KillRelease/2, rate)

	return beep.Mix(
		newVolume(fundShaped, 0.7),
		newVolume(overShaped, 0.3),
	)
}

// gameOverSound is a falling saw buzz over a noise burst
func gameOverSound(rate beep.SampleRate) beep.Streamer {
	fall := NewSweep(440, 55, GameOverDuration, WaveSaw, rate)
	fallShaped := NewEnvelope(fall, GameOverDuration, GameOverAttack, GameOverRelease, rate)

	noise := NewOscillator(0, GameOverDuration/4, WaveNoise, rate)
	noiseShaped := NewEnvelope(noise, GameOverDuration/4, 0, GameOverDuration/4, rate)

	return beep.Mix(
		newVolume(fallShaped, 0.6),
		newVolume(noiseShaped, 0.3),
	)
}

// restartSound is a rising two-note square chime
func restartSound(rate beep.SampleRate) beep.Streamer {
	n1 := NewOscillator(987.77, RestartNoteDuration, WaveSquare, rate)
	n1Shaped := NewEnvelope(n1, RestartNoteDuration, RestartAttack, RestartRelease, rate)

	n2 := NewOscillator(1318.51, RestartNoteDuration*2, WaveSquare, rate)
	n2Shaped := NewEnvelope(n2, RestartNoteDuration*2, RestartAttack, RestartRelease*2, rate)

	return newVolume(beep.Seq(n1Shaped, n2Shaped), 0.5)
}

// Streamer builds a fresh streamer for cue at rate, nil for unknown cues
func (c Cue) Streamer(rate beep.SampleRate) beep.Streamer {
	switch c {
	case CueKill:
		return killSound(rate)
	case CueGameOver:
		return gameOverSound(rate)
	case CueRestart:
		return restartSound(rate)
	default:
		return nil
	}
}
