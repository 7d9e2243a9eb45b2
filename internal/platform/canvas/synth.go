package canvas

import (
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2/audio"

	"github.com/vovakirdan/sky-runner/internal/games/runner"
)

const toneGain = 0.1

// ToneFor maps a simulation event to the blip played for it: a short sine
// at the event pitch for jumps and a longer square for the collision.
func ToneFor(e runner.Event) Tone {
	if e.Kind == runner.EventCollided {
		return Tone{Wave: Square, Freq: e.Pitch, Duration: 200 * time.Millisecond, Gain: toneGain}
	}
	return Tone{Wave: Sine, Freq: e.Pitch, Duration: 100 * time.Millisecond, Gain: toneGain}
}

// Synth is a runner.AudioSink that synthesizes every cue. Rendered clips are
// cached by tone so repeated jumps do not allocate.
type Synth struct {
	ctx    *audio.Context
	logger *log.Logger

	mu    sync.Mutex
	clips map[Tone][]byte
}

var (
	audioContext     *audio.Context
	audioContextOnce sync.Once
)

// NewSynth returns a synth on the process-wide audio context.
func NewSynth(logger *log.Logger) *Synth {
	audioContextOnce.Do(func() {
		audioContext = audio.NewContext(SampleRate)
	})
	if logger == nil {
		logger = log.Default()
	}
	return &Synth{ctx: audioContext, logger: logger, clips: make(map[Tone][]byte)}
}

// Play starts the tone for e and returns immediately.
func (s *Synth) Play(e runner.Event) {
	t := ToneFor(e)

	s.mu.Lock()
	clip, ok := s.clips[t]
	if !ok {
		clip = t.PCM()
		s.clips[t] = clip
	}
	s.mu.Unlock()

	if len(clip) == 0 {
		return
	}
	p := s.ctx.NewPlayerFromBytes(clip)
	p.Play()
	s.logger.Debug("tone", "event", e.Kind, "hz", t.Freq)
}

// Mute is an AudioSink that drops every event.
type Mute struct{}

// Play does nothing.
func (Mute) Play(runner.Event) {}
