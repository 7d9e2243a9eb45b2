package runner

// Oscillator is a triangular wave between 0 and Range.
// Offset moves by Speed per Advance and reverses at either bound.
type Oscillator struct {
	Offset float64
	Speed  float64
	Range  float64
	dir    float64
}

// NewOscillator returns an oscillator at offset 0 moving upward.
func NewOscillator(speed, span float64) Oscillator {
	return Oscillator{Speed: speed, Range: span, dir: 1}
}

// Advance moves the offset one step.
func (o *Oscillator) Advance() {
	o.Offset += o.Speed * o.dir
	if o.Offset >= o.Range {
		o.Offset = o.Range
		o.dir = -1
	} else if o.Offset <= 0 {
		o.Offset = 0
		o.dir = 1
	}
}
