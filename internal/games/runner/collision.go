package runner

import (
	"github.com/vovakirdan/sky-runner/internal/core"
)

// FindLethal returns the index of the first lethal obstacle whose bounding
// box strictly overlaps box. Touching edges do not count.
func FindLethal(box core.Box, obstacles []Obstacle) (int, bool) {
	for i, o := range obstacles {
		if o.Kind.Lethal() && box.Overlaps(o.Box()) {
			return i, true
		}
	}
	return -1, false
}
