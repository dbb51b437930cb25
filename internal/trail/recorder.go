// Package trail records the positions a walker has actually visited.
package trail

import (
	"github.com/Faultbox/trailwalk/pkg/math"
)

// DefaultThreshold is the distance a walker must move before a new trail
// point is laid down.
const DefaultThreshold = 0.5

// Recorder is an append-only polyline of visited positions. A position is
// kept only when it lies strictly farther than the threshold from the last
// kept one. Not safe for concurrent use.
type Recorder struct {
	threshold float32
	points    []math.Vec3
	dirty     bool
}

// NewRecorder starts a trail at start.
func NewRecorder(threshold float32, start math.Vec3) *Recorder {
	return &Recorder{
		threshold: threshold,
		points:    []math.Vec3{start},
		dirty:     true,
	}
}

// Observe offers the current position and reports whether it was recorded.
func (r *Recorder) Observe(p math.Vec3) bool {
	last := r.points[len(r.points)-1]
	if p.Distance(last) <= r.threshold {
		return false
	}
	r.points = append(r.points, p)
	r.dirty = true
	return true
}

// Points returns the recorded positions. The slice must not be modified.
func (r *Recorder) Points() []math.Vec3 { return r.points }

// Len returns the number of recorded positions.
func (r *Recorder) Len() int { return len(r.points) }

// Dirty reports whether points were added since the last ClearDirty.
func (r *Recorder) Dirty() bool { return r.dirty }

// ClearDirty marks the current points as uploaded.
func (r *Recorder) ClearDirty() { r.dirty = false }
