package canvas

import (
	"encoding/binary"
	"math"
	"time"
)

// SampleRate is the output rate of the audio context.
const SampleRate = 44100

// Waveform selects the oscillator shape of a tone.
type Waveform int

const (
	Sine Waveform = iota
	Square
)

// Tone describes a fixed-pitch blip.
type Tone struct {
	Wave     Waveform
	Freq     float64
	Duration time.Duration
	Gain     float64
}

// PCM renders t as 16-bit little-endian stereo samples at SampleRate.
// The last millisecond fades out so the blip ends without a click.
func (t Tone) PCM() []byte {
	n := int(float64(SampleRate) * t.Duration.Seconds())
	if n <= 0 || t.Freq <= 0 {
		return nil
	}
	fade := min(SampleRate/1000, n)

	data := make([]byte, n*4)
	for i := 0; i < n; i++ {
		phase := 2 * math.Pi * t.Freq * float64(i) / SampleRate
		v := math.Sin(phase)
		if t.Wave == Square {
			v = 1
			if math.Sin(phase) < 0 {
				v = -1
			}
		}
		env := 1.0
		if left := n - i; left < fade {
			env = float64(left) / float64(fade)
		}
		s := uint16(int16(v * t.Gain * env * math.MaxInt16))
		binary.LittleEndian.PutUint16(data[i*4:], s)
		binary.LittleEndian.PutUint16(data[i*4+2:], s)
	}
	return data
}
