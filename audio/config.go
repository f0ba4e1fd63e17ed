package audio

import "time"

const (
	flapDuration = 90 * time.Millisecond
	flapAttack   = 5 * time.Millisecond
	flapRelease  = 60 * time.Millisecond

	scoreNote1Duration = 70 * time.Millisecond
	scoreNote2Duration = 140 * time.Millisecond
	scoreAttack        = 3 * time.Millisecond
	scoreRelease       = 100 * time.Millisecond

	hitDuration = 250 * time.Millisecond
	hitAttack   = 2 * time.Millisecond
	hitRelease  = 200 * time.Millisecond
)

// Config holds volume and format settings shared by every backend.
type Config struct {
	SampleRate    int
	MasterVolume  float64
	EffectVolumes map[Sound]float64
}

func DefaultConfig() *Config {
	return &Config{
		SampleRate:   44100,
		MasterVolume: 0.5,
		EffectVolumes: map[Sound]float64{
			SoundFlap:  0.6,
			SoundScore: 0.8,
			SoundHit:   0.9,
		},
	}
}

func (c *Config) volume(s Sound) float64 {
	v, ok := c.EffectVolumes[s]
	if !ok {
		v = 1
	}
	return v * c.MasterVolume
}
