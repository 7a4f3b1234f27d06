package weapon

import (
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestFadeTaskEndpoints(t *testing.T) {
	c0 := colorful.Color{R: 8, G: 2.1, B: 0}
	c1 := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	m := &fakeMaterial{color: c0}

	task := NewFadeTask(m, c1, 1.5)
	if m.color != c0 {
		t.Fatalf("t=0 colour = %v, want %v", m.color, c0)
	}

	if task.Step(0.75) {
		t.Fatal("fade finished at t=0.75")
	}
	mid := c0.BlendRgb(c1, 0.5)
	if !closeColor(m.color, mid, 1e-6) {
		t.Fatalf("t=0.75 colour = %v, want %v", m.color, mid)
	}

	if !task.Step(0.75) {
		t.Fatal("fade not finished at t=1.5")
	}
	if m.color != c1 {
		t.Fatalf("t=1.5 colour = %v, want exactly %v", m.color, c1)
	}
}

func TestFadeTaskDoesNotOvershoot(t *testing.T) {
	c0 := colorful.Color{R: 1, G: 1, B: 1}
	c1 := colorful.Color{R: 0, G: 0, B: 0}
	m := &fakeMaterial{color: c0}

	task := NewFadeTask(m, c1, 1.5)
	if !task.Step(5) {
		t.Fatal("fade should finish on a long step")
	}
	if m.color != c1 {
		t.Fatalf("colour = %v, want %v", m.color, c1)
	}
}

func TestFadeTaskFinishesOnFrameBoundary(t *testing.T) {
	c0 := colorful.Color{R: 1, G: 1, B: 1}
	c1 := colorful.Color{}
	m := &fakeMaterial{color: c0}

	task := NewFadeTask(m, c1, 1.5)
	for i := 1; i < 90; i++ {
		if task.Step(1.0 / 60) {
			t.Fatalf("fade finished early at frame %d", i)
		}
	}
	if m.color == c1 {
		t.Fatal("target colour written before the last frame")
	}
	if !task.Step(1.0 / 60) {
		t.Fatal("fade not finished at frame 90")
	}
	if m.color != c1 {
		t.Fatalf("colour = %v, want %v", m.color, c1)
	}
}

func TestSchedulerCancelStopsWrites(t *testing.T) {
	m := &fakeMaterial{color: colorful.Color{R: 1}}
	var s Scheduler
	s.Start(NewFadeTask(m, colorful.Color{}, 1.5))
	s.Tick(0.5)
	writes := m.writes

	s.Cancel()
	s.Tick(0.5)
	s.Tick(0.5)
	if m.writes != writes {
		t.Fatalf("writes after cancel = %d, want %d", m.writes, writes)
	}
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestSchedulerDropsFinishedTasks(t *testing.T) {
	m := &fakeMaterial{}
	var s Scheduler
	s.Start(NewFadeTask(m, colorful.Color{R: 1}, 0.5))
	s.Start(NewFadeTask(m, colorful.Color{R: 1}, 1.0))
	s.Tick(0.5)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	s.Tick(0.5)
	if s.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", s.Len())
	}
}

func TestOscillatePeriodic(t *testing.T) {
	original := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	overheat := colorful.Color{R: 8, G: 2.1, B: 0}

	for _, ts := range []float64{0, 0.2, 0.75, 1.4, 1.5, 2.2, 2.99} {
		a := Oscillate(original, overheat, ts, 1.5)
		b := Oscillate(original, overheat, ts+3.0, 1.5)
		if !closeColor(a, b, 1e-9) {
			t.Errorf("t=%v: %v != %v at t+3", ts, a, b)
		}
	}

	if got := Oscillate(original, overheat, 1.5, 1.5); !closeColor(got, overheat, 1e-9) {
		t.Errorf("peak = %v, want %v", got, overheat)
	}
	if got := Oscillate(original, overheat, 3.0, 1.5); !closeColor(got, original, 1e-9) {
		t.Errorf("trough = %v, want %v", got, original)
	}
}

func TestOscillateBounded(t *testing.T) {
	original := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	overheat := colorful.Color{R: 8, G: 2.1, B: 0}

	for ts := 0.0; ts < 10; ts += 0.07 {
		c := Oscillate(original, overheat, ts, 1.5)
		if !between(c.R, original.R, overheat.R) || !between(c.G, original.G, overheat.G) || !between(c.B, original.B, overheat.B) {
			t.Fatalf("t=%v: %v outside [%v, %v]", ts, c, original, overheat)
		}
	}
}

func TestVisualModulatorFadesBackToOriginal(t *testing.T) {
	original := colorful.Color{R: 0.1, G: 0.2, B: 0.3}
	m := &fakeMaterial{color: original}
	v := NewVisualModulator(m, colorful.Color{R: 8}, 1.5, 1.5)

	v.Glow(1.0)
	if m.color == original {
		t.Fatal("glow did not change the colour")
	}

	v.FadeToOriginal()
	if !v.Fading() {
		t.Fatal("fade not pending")
	}
	for i := 0; i < 3; i++ {
		v.Tick(0.5)
	}
	if v.Fading() {
		t.Fatal("fade still pending after 1.5s")
	}
	if m.color != original {
		t.Fatalf("colour = %v, want %v", m.color, original)
	}
}

func closeColor(a, b colorful.Color, eps float64) bool {
	return math.Abs(a.R-b.R) <= eps && math.Abs(a.G-b.G) <= eps && math.Abs(a.B-b.B) <= eps
}

func between(v, a, b float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	return v >= lo-1e-12 && v <= hi+1e-12
}
