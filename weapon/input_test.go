package weapon

import (
	"math/rand"
	"testing"
)

func TestGripTrackerCountsPairedEvents(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for run := 0; run < 50; run++ {
		var g GripTracker
		grabs, releases := 0, 0
		for step := 0; step < 40; step++ {
			// Only release what is held, the host pairs events per appendage.
			if g.Count() > 0 && rng.Intn(2) == 0 {
				g.Release()
				releases++
			} else {
				g.Grab()
				grabs++
			}
			if g.Count() != grabs-releases {
				t.Fatalf("run %d step %d: count = %d, want %d", run, step, g.Count(), grabs-releases)
			}
			if g.Count() < 0 {
				t.Fatalf("run %d step %d: negative count %d", run, step, g.Count())
			}
		}
	}
}

func TestGripTrackerIgnoresUnpairedRelease(t *testing.T) {
	var g GripTracker
	g.Release()
	if g.Count() != 0 {
		t.Fatalf("count = %d, want 0", g.Count())
	}
	g.Grab()
	g.Release()
	g.Release()
	if g.Count() != 0 {
		t.Fatalf("count = %d, want 0", g.Count())
	}
}

func TestInputEdgeTracker(t *testing.T) {
	tests := []struct {
		name          string
		steps         func(in *InputEdgeTracker)
		wantPressed   bool
		wantArmed     bool
		wantTriggered bool
	}{
		{
			name:  "idle",
			steps: func(in *InputEdgeTracker) {},
		},
		{
			name: "press",
			steps: func(in *InputEdgeTracker) {
				in.Press()
			},
			wantPressed:   true,
			wantTriggered: true,
		},
		{
			name: "repeated press is idempotent",
			steps: func(in *InputEdgeTracker) {
				in.Press()
				in.Press()
			},
			wantPressed:   true,
			wantTriggered: true,
		},
		{
			name: "armed press does not trigger",
			steps: func(in *InputEdgeTracker) {
				in.Press()
				in.Arm()
			},
			wantPressed: true,
			wantArmed:   true,
		},
		{
			name: "release clears latch",
			steps: func(in *InputEdgeTracker) {
				in.Press()
				in.Arm()
				in.Release()
			},
		},
		{
			name: "press after release triggers",
			steps: func(in *InputEdgeTracker) {
				in.Press()
				in.Arm()
				in.Release()
				in.Press()
			},
			wantPressed:   true,
			wantTriggered: true,
		},
		{
			name: "arm while released latches false",
			steps: func(in *InputEdgeTracker) {
				in.Arm()
				in.Press()
			},
			wantPressed:   true,
			wantTriggered: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in InputEdgeTracker
			tt.steps(&in)
			if in.Pressed() != tt.wantPressed {
				t.Errorf("Pressed() = %v, want %v", in.Pressed(), tt.wantPressed)
			}
			if in.Armed() != tt.wantArmed {
				t.Errorf("Armed() = %v, want %v", in.Armed(), tt.wantArmed)
			}
			if in.Triggered() != tt.wantTriggered {
				t.Errorf("Triggered() = %v, want %v", in.Triggered(), tt.wantTriggered)
			}
		})
	}
}
