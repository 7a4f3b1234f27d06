package sim

import (
	"log"
	"math"
	"sync"
	"time"
)

// Scene is what the loop drives. scenes.ArenaScene implements it.
type Scene interface {
	Target
	Update()
	Elapsed() float64
}

// Loop runs a scene at a fixed tick rate, feeding it scripted input before
// every tick.
type Loop struct {
	scene    Scene
	script   *Script
	tickRate int
	maxTicks int
	fast     bool

	ticks    int
	running  bool
	stopChan chan struct{}
	stopOnce sync.Once
	mu       sync.Mutex
}

// NewLoop builds a loop. duration is in unscaled seconds; zero runs until
// Stop. A fast loop runs ticks back to back instead of waiting on a ticker.
func NewLoop(scene Scene, script *Script, tickRate int, duration float64, fast bool) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	maxTicks := 0
	if duration > 0 {
		maxTicks = int(math.Round(duration * float64(tickRate)))
	}
	return &Loop{
		scene:    scene,
		script:   script,
		tickRate: tickRate,
		maxTicks: maxTicks,
		fast:     fast,
		stopChan: make(chan struct{}),
	}
}

// Run blocks until the duration is reached, Stop is called or a scripted
// respawn fails.
func (l *Loop) Run() error {
	l.setRunning(true)
	defer l.setRunning(false)

	log.Printf("Sim loop started at %d ticks/second", l.tickRate)

	if l.fast {
		for !l.finished() {
			select {
			case <-l.stopChan:
				log.Println("Sim loop stopped")
				return nil
			default:
			}
			if err := l.tick(); err != nil {
				return err
			}
		}
		return nil
	}

	ticker := time.NewTicker(time.Second / time.Duration(l.tickRate))
	defer ticker.Stop()

	for !l.finished() {
		select {
		case <-l.stopChan:
			log.Println("Sim loop stopped")
			return nil
		case <-ticker.C:
			if err := l.tick(); err != nil {
				return err
			}
		}
	}
	return nil
}

// Stop ends Run. Safe to call more than once.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() { close(l.stopChan) })
}

func (l *Loop) tick() error {
	if _, err := l.script.Apply(l.scene, l.scene.Elapsed()); err != nil {
		return err
	}
	l.scene.Update()

	l.mu.Lock()
	l.ticks++
	l.mu.Unlock()
	return nil
}

func (l *Loop) finished() bool {
	return l.maxTicks > 0 && l.Ticks() >= l.maxTicks
}

// Ticks returns the number of ticks run so far.
func (l *Loop) Ticks() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ticks
}

// Running reports whether Run is in progress.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

func (l *Loop) setRunning(v bool) {
	l.mu.Lock()
	l.running = v
	l.mu.Unlock()
}
