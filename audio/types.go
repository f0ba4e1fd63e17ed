package audio

// Sound identifies a sound effect.
type Sound int

const (
	SoundFlap Sound = iota
	SoundScore
	SoundHit
	soundCount
)

func (s Sound) String() string {
	switch s {
	case SoundFlap:
		return "flap"
	case SoundScore:
		return "score"
	case SoundHit:
		return "hit"
	default:
		return "unknown"
	}
}

// Player plays sound effects. Implementations never block the frame loop.
type Player interface {
	Play(s Sound)
}

// Mute discards every sound.
type Mute struct{}

func (Mute) Play(Sound) {}
