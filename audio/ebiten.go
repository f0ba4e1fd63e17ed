package audio

import (
	"log"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenPlayer plays effects through an Ebiten audio context. Effects are
// synthesized once and replayed from memory.
type EbitenPlayer struct {
	ctx     *ebaudio.Context
	cfg     *Config
	pcm     [soundCount][]byte
	playing []*ebaudio.Player
}

// NewEbitenPlayer creates the process-wide Ebiten audio context.
func NewEbitenPlayer(cfg *Config) *EbitenPlayer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	p := &EbitenPlayer{
		ctx: ebaudio.NewContext(cfg.SampleRate),
		cfg: cfg,
	}
	for s := Sound(0); s < soundCount; s++ {
		p.pcm[s] = EncodePCM(Effect(s, cfg))
	}
	return p
}

func (p *EbitenPlayer) Play(s Sound) {
	if s < 0 || s >= soundCount || len(p.pcm[s]) == 0 {
		return
	}
	p.prune()

	player := p.ctx.NewPlayerFromBytes(p.pcm[s])
	player.Play()
	p.playing = append(p.playing, player)
}

// prune closes players that finished.
func (p *EbitenPlayer) prune() {
	kept := p.playing[:0]
	for _, player := range p.playing {
		if player.IsPlaying() {
			kept = append(kept, player)
			continue
		}
		if err := player.Close(); err != nil {
			log.Printf("audio: close player: %v", err)
		}
	}
	p.playing = kept
}
