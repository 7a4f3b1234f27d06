package sim

import (
	"errors"
	"testing"
	"time"
)

func TestLoopFastRunsDuration(t *testing.T) {
	scene := &fakeScene{step: 1.0 / 60}
	script, err := ParseScript([]byte("- {at: 0, action: grab}\n- {at: 0.5, action: press}"))
	if err != nil {
		t.Fatal(err)
	}

	l := NewLoop(scene, script, 60, 1.0, true)
	if err := l.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if scene.updates != 60 || l.Ticks() != 60 {
		t.Errorf("updates = %d, ticks = %d, want 60", scene.updates, l.Ticks())
	}
	if !script.Done() {
		t.Error("script not finished")
	}
	if l.Running() {
		t.Error("loop still running")
	}
}

func TestLoopStop(t *testing.T) {
	scene := &fakeScene{step: 0.01}
	l := NewLoop(scene, nil, 200, 0, false)

	done := make(chan error, 1)
	go func() { done <- l.Run() }()

	time.Sleep(50 * time.Millisecond)
	l.Stop()
	l.Stop()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop")
	}
	if l.Ticks() == 0 {
		t.Error("ticker loop never ticked")
	}
}

func TestLoopStopsOnRespawnError(t *testing.T) {
	scene := &fakeScene{step: 0.1, respawnErr: errors.New("no map")}
	script, err := ParseScript([]byte("- {at: 0.2, action: respawn}"))
	if err != nil {
		t.Fatal(err)
	}

	l := NewLoop(scene, script, 10, 0, true)
	if err := l.Run(); !errors.Is(err, scene.respawnErr) {
		t.Fatalf("err = %v, want %v", err, scene.respawnErr)
	}
}
