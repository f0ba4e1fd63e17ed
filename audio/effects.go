package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
}

// NewOscillator returns a streamer producing duration worth of wave at freq.
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
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
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope fades a stream in over attack and out over release.
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	return &envelope{
		streamer:       s,
		attackSamples:  rate.N(attack),
		releaseSamples: rate.N(release),
		totalSamples:   rate.N(duration),
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.releaseSamples > 0 && e.position >= releaseStart {
			vol = math.Max(0, float64(e.totalSamples-e.position)/float64(e.releaseSamples))
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// math.Log2(0) is -Inf, so zero volume is expressed as Silent.
func newVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}

// createFlapSound is a short rising chirp.
func createFlapSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)
	half := flapDuration / 2

	low := NewEnvelope(NewOscillator(520, half, WaveSquare, rate), half, flapAttack, 0, rate)
	high := NewEnvelope(NewOscillator(780, half, WaveSquare, rate), half, 0, flapRelease/2, rate)

	return newVolume(beep.Seq(low, high), cfg.volume(SoundFlap)*0.5)
}

// createScoreSound is a two-note chime.
func createScoreSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	n1 := NewEnvelope(NewOscillator(987.77, scoreNote1Duration, WaveSine, rate), scoreNote1Duration, scoreAttack, scoreNote1Duration/2, rate)
	n2 := NewEnvelope(NewOscillator(1318.51, scoreNote2Duration, WaveSine, rate), scoreNote2Duration, scoreAttack, scoreRelease, rate)

	return newVolume(beep.Seq(n1, n2), cfg.volume(SoundScore))
}

// createHitSound is a noise burst over a low saw thud.
func createHitSound(cfg *Config) beep.Streamer {
	rate := beep.SampleRate(cfg.SampleRate)

	noise := NewEnvelope(NewOscillator(0, hitDuration, WaveNoise, rate), hitDuration, hitAttack, hitRelease, rate)
	thud := NewEnvelope(NewOscillator(90, hitDuration, WaveSaw, rate), hitDuration, hitAttack, hitRelease, rate)

	mixed := beep.Mix(newVolume(noise, 0.4), newVolume(thud, 0.6))
	return newVolume(mixed, cfg.volume(SoundHit))
}

// Effect returns a fresh streamer for s, or nil for an unknown sound.
func Effect(s Sound, cfg *Config) beep.Streamer {
	switch s {
	case SoundFlap:
		return createFlapSound(cfg)
	case SoundScore:
		return createScoreSound(cfg)
	case SoundHit:
		return createHitSound(cfg)
	default:
		return nil
	}
}
