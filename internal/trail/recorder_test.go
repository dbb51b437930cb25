package trail

import (
	"testing"

	"github.com/Faultbox/trailwalk/pkg/math"
)

func TestNewRecorderKeepsStart(t *testing.T) {
	start := math.Vec3{X: 1, Y: 2, Z: 3}
	r := NewRecorder(DefaultThreshold, start)

	if r.Len() != 1 {
		t.Fatalf("expected 1 point, got %d", r.Len())
	}
	if r.Points()[0] != start {
		t.Errorf("expected start %v, got %v", start, r.Points()[0])
	}
	if !r.Dirty() {
		t.Error("expected new recorder to be dirty")
	}
}

func TestObserveThreshold(t *testing.T) {
	tests := []struct {
		name  string
		pos   math.Vec3
		added bool
	}{
		{"no movement", math.Vec3{}, false},
		{"below threshold", math.Vec3{X: 0.3}, false},
		{"exactly threshold", math.Vec3{X: 0.5}, false},
		{"just above threshold", math.Vec3{X: 0.51}, true},
		{"diagonal above", math.Vec3{X: 0.4, Z: 0.4}, true},
		{"vertical only", math.Vec3{Y: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRecorder(0.5, math.Vec3{})
			r.ClearDirty()

			if got := r.Observe(tt.pos); got != tt.added {
				t.Errorf("expected added=%v, got %v", tt.added, got)
			}
			wantLen := 1
			if tt.added {
				wantLen = 2
			}
			if r.Len() != wantLen {
				t.Errorf("expected %d points, got %d", wantLen, r.Len())
			}
			if r.Dirty() != tt.added {
				t.Errorf("expected dirty=%v, got %v", tt.added, r.Dirty())
			}
		})
	}
}

func TestObserveMeasuresFromLastRecorded(t *testing.T) {
	r := NewRecorder(0.5, math.Vec3{})

	// Many small steps, each under the threshold on its own.
	var added int
	for i := 1; i <= 10; i++ {
		if r.Observe(math.Vec3{X: float32(i) * 0.2}) {
			added++
		}
	}

	// Recorded at 0.6, 1.2 and 1.8 (each > 0.5 from the previous record).
	if added != 3 {
		t.Errorf("expected 3 points added, got %d (%v)", added, r.Points())
	}
	if r.Len() != 4 {
		t.Errorf("expected 4 points total, got %d", r.Len())
	}

	pts := r.Points()
	for i := 1; i < len(pts); i++ {
		if d := pts[i].Distance(pts[i-1]); d <= 0.5 {
			t.Errorf("points %d and %d only %f apart", i-1, i, d)
		}
	}
}

func TestObserveIsAppendOnly(t *testing.T) {
	r := NewRecorder(0.5, math.Vec3{})
	r.Observe(math.Vec3{X: 1})
	first := r.Points()[1]

	r.Observe(math.Vec3{X: 2})
	r.Observe(math.Vec3{X: 0})

	if r.Points()[1] != first {
		t.Errorf("expected earlier point to stay %v, got %v", first, r.Points()[1])
	}
	if r.Len() != 4 {
		t.Errorf("expected 4 points, got %d", r.Len())
	}
}
