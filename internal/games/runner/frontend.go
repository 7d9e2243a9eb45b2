package runner

// Renderer draws a snapshot. The terminal and canvas frontends implement it.
type Renderer interface {
	Draw(s Snapshot)
}

// AudioSink plays event cues. Implementations must not block the caller.
type AudioSink interface {
	Play(e Event)
}

// Present draws the current state with r and forwards pending events to
// sink, which may be nil.
func Present(s *RunState, r Renderer, sink AudioSink) {
	r.Draw(s.Snapshot())
	for _, e := range s.DrainEvents() {
		if sink != nil {
			sink.Play(e)
		}
	}
}
