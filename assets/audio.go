package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	cfg "github.com/automoto/seasonscape/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// AudioLoader synthesises sound effects and caches their PCM bytes
type AudioLoader struct {
	sfxCache map[cfg.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[cfg.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesises a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id cfg.SoundID) error {
	if _, ok := l.sfxCache[id]; ok {
		return nil
	}
	notes, ok := cfg.Sound.Effects[id]
	if !ok {
		return fmt.Errorf("no notes for sound %d", id)
	}
	l.sfxCache[id] = Synthesize(notes, l.context.SampleRate())
	return nil
}

// LoadSFX returns a new player for a sound effect each time.
func (l *AudioLoader) LoadSFX(id cfg.SoundID) (*audio.Player, error) {
	if err := l.PreloadSFX(id); err != nil {
		return nil, err
	}
	return l.context.NewPlayerFromBytes(l.sfxCache[id]), nil
}

// Synthesize mixes notes into 16-bit little-endian stereo PCM. Each note is
// a sine sweeping linearly from StartHz to EndHz under an exponential decay
// envelope with a short attack.
func Synthesize(notes []cfg.Note, sampleRate int) []byte {
	total := 0.0
	for _, n := range notes {
		total = math.Max(total, n.Delay+n.Seconds)
	}
	frames := int(total * float64(sampleRate))
	mix := make([]float64, frames)

	attack := 0.005
	for _, n := range notes {
		start := int(n.Delay * float64(sampleRate))
		count := int(n.Seconds * float64(sampleRate))
		phase := 0.0
		for i := 0; i < count && start+i < frames; i++ {
			t := float64(i) / float64(sampleRate)
			progress := t / n.Seconds
			hz := n.StartHz + (n.EndHz-n.StartHz)*progress
			phase += 2 * math.Pi * hz / float64(sampleRate)

			env := math.Exp(-n.DecayExp * t)
			if t < attack {
				env *= t / attack
			}
			mix[start+i] += math.Sin(phase) * env * n.Amp
		}
	}

	var buf bytes.Buffer
	buf.Grow(frames * 4)
	for _, v := range mix {
		s := int16(math.Max(-1, math.Min(1, v)) * math.MaxInt16)
		_ = binary.Write(&buf, binary.LittleEndian, s) // left
		_ = binary.Write(&buf, binary.LittleEndian, s) // right
	}
	return buf.Bytes()
}
