package runner

// EventKind identifies a discrete simulation event.
type EventKind int

const (
	EventJumped EventKind = iota
	EventCollided
)

// String returns the event name.
func (k EventKind) String() string {
	switch k {
	case EventJumped:
		return "jumped"
	case EventCollided:
		return "collided"
	default:
		return "unknown"
	}
}

// Pitch hints in Hz for the tone a frontend plays on an event.
const (
	PitchJump         = 440.0
	PitchPlatformJump = 523.25
	PitchDoubleJump   = 660.0
	PitchBounce       = 330.0
	PitchCollision    = 220.0
)

// maxPendingEvents bounds the event buffer when no frontend drains it.
const maxPendingEvents = 32

// Event is a fire-and-forget notification for audio and logging.
type Event struct {
	Kind  EventKind
	Pitch float64
	Tick  uint64
}
