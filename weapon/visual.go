package weapon

import (
	"github.com/automoto/dogma/gamemath"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Oscillate blends from original toward overheat and back, a full cycle
// taking 2*length seconds.
func Oscillate(original, overheat colorful.Color, t, length float64) colorful.Color {
	if length <= 0 {
		return original
	}
	return original.BlendRgb(overheat, gamemath.PingPong(t, length)/length)
}

// Task is resumed once per tick until it reports done.
type Task interface {
	Step(dt float64) (done bool)
}

// Scheduler runs tasks cooperatively from the owner's tick.
type Scheduler struct {
	tasks []Task
}

// Start queues a task. It is first stepped on the next Tick.
func (s *Scheduler) Start(t Task) {
	s.tasks = append(s.tasks, t)
}

// Tick steps every task and drops finished ones.
func (s *Scheduler) Tick(dt float64) {
	if len(s.tasks) == 0 {
		return
	}
	kept := s.tasks[:0]
	for _, t := range s.tasks {
		if !t.Step(dt) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(s.tasks); i++ {
		s.tasks[i] = nil
	}
	s.tasks = kept
}

// Cancel abandons every pending task without stepping it again.
func (s *Scheduler) Cancel() {
	s.tasks = nil
}

// Len returns the number of pending tasks.
func (s *Scheduler) Len() int {
	return len(s.tasks)
}

// FadeTask linearly blends a material's emission colour to a target over a
// fixed duration, then pins it to the target.
type FadeTask struct {
	material Material
	start    colorful.Color
	target   colorful.Color
	tween    *gween.Tween
	elapsed  float64
	duration float64
}

// NewFadeTask samples the current colour as the start and writes it back,
// which is the t=0 sample.
func NewFadeTask(m Material, target colorful.Color, duration float64) *FadeTask {
	start := m.EmissionColor()
	m.SetEmissionColor(start)
	return &FadeTask{
		material: m,
		start:    start,
		target:   target,
		tween:    gween.New(0, 1, float32(duration), ease.Linear),
		duration: duration,
	}
}

// Step advances the fade by dt seconds. Completion is decided on a float64
// clock; the tween's float32 clock lags by a frame at common frame rates.
func (f *FadeTask) Step(dt float64) bool {
	f.elapsed += dt
	progress, finished := f.tween.Update(float32(dt))
	if finished || f.elapsed >= f.duration-1e-6 {
		f.material.SetEmissionColor(f.target)
		return true
	}
	f.material.SetEmissionColor(f.start.BlendRgb(f.target, float64(progress)))
	return false
}

// VisualModulator drives the weapon's emission colour.
type VisualModulator struct {
	material     Material
	original     colorful.Color
	overheat     colorful.Color
	period       float64
	fadeDuration float64
	tasks        Scheduler
}

// NewVisualModulator captures the material's current colour as the
// original the weapon returns to.
func NewVisualModulator(m Material, overheat colorful.Color, period, fadeDuration float64) *VisualModulator {
	return &VisualModulator{
		material:     m,
		original:     m.EmissionColor(),
		overheat:     overheat,
		period:       period,
		fadeDuration: fadeDuration,
	}
}

// Glow sets the overcharged oscillation colour for the given time in mode.
func (v *VisualModulator) Glow(t float64) {
	v.material.SetEmissionColor(Oscillate(v.original, v.overheat, t, v.period))
}

// FadeToOriginal starts a fade back to the original colour and returns
// without waiting for it.
func (v *VisualModulator) FadeToOriginal() {
	v.tasks.Start(NewFadeTask(v.material, v.original, v.fadeDuration))
}

// Tick advances pending fades.
func (v *VisualModulator) Tick(dt float64) {
	v.tasks.Tick(dt)
}

// Cancel abandons pending fades.
func (v *VisualModulator) Cancel() {
	v.tasks.Cancel()
}

// Fading reports whether a fade is pending.
func (v *VisualModulator) Fading() bool {
	return v.tasks.Len() > 0
}

func (v *VisualModulator) Original() colorful.Color {
	return v.original
}
