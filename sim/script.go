package sim

import (
	"fmt"
	"os"
	"sort"

	"github.com/automoto/dogma/weapon"
	"gopkg.in/yaml.v3"
)

// Step is one scripted input, applied once the scene clock reaches At.
type Step struct {
	At     float64 `yaml:"at"`
	Action string  `yaml:"action"`
	Hand   string  `yaml:"hand"`
}

const (
	ActionGrab    = "grab"
	ActionRelease = "release"
	ActionThrow   = "throw"
	ActionPress   = "press"
	ActionUnpress = "unpress"
	ActionDespawn = "despawn"
	ActionRespawn = "respawn"
)

var validActions = map[string]bool{
	ActionGrab:    true,
	ActionRelease: true,
	ActionThrow:   true,
	ActionPress:   true,
	ActionUnpress: true,
	ActionDespawn: true,
	ActionRespawn: true,
}

// Target receives scripted input. scenes.ArenaScene implements it.
type Target interface {
	Grab(hand weapon.Hand)
	Release(hand weapon.Hand, throwing bool)
	AlternateUse(start bool)
	Despawn()
	Respawn() error
}

// Script is a time-ordered list of inputs. Step times are absolute script
// times; a respawn restarts the scene clock, so later steps are compared
// against the scene clock plus the time of the last respawn.
type Script struct {
	Steps  []Step
	next   int
	offset float64
}

// ParseScript decodes a YAML list of steps. Steps are applied in time order; steps
// sharing a time keep their file order.
func ParseScript(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s.Steps); err != nil {
		return nil, fmt.Errorf("failed to parse script: %w", err)
	}
	for i, step := range s.Steps {
		if !validActions[step.Action] {
			return nil, fmt.Errorf("step %d: unknown action %q", i, step.Action)
		}
		if _, err := parseHand(step.Hand); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if step.At < 0 {
			return nil, fmt.Errorf("step %d: negative time %v", i, step.At)
		}
	}
	sort.SliceStable(s.Steps, func(i, j int) bool { return s.Steps[i].At < s.Steps[j].At })
	return &s, nil
}

// LoadScript reads and parses a script file.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	return ParseScript(data)
}

func parseHand(name string) (weapon.Hand, error) {
	switch name {
	case "", "left":
		return weapon.HandLeft, nil
	case "right":
		return weapon.HandRight, nil
	}
	return weapon.HandLeft, fmt.Errorf("unknown hand %q", name)
}

// Apply sends every step due at elapsed seconds of scene time that has not
// been sent yet and returns how many were sent. It stops after a respawn,
// since elapsed belongs to the torn-down scene.
func (s *Script) Apply(t Target, elapsed float64) (int, error) {
	if s == nil {
		return 0, nil
	}
	applied := 0
	for s.next < len(s.Steps) && s.Steps[s.next].At <= elapsed+s.offset {
		step := s.Steps[s.next]
		s.next++
		applied++

		hand, _ := parseHand(step.Hand)
		switch step.Action {
		case ActionGrab:
			t.Grab(hand)
		case ActionRelease:
			t.Release(hand, false)
		case ActionThrow:
			t.Release(hand, true)
		case ActionPress:
			t.AlternateUse(true)
		case ActionUnpress:
			t.AlternateUse(false)
		case ActionDespawn:
			t.Despawn()
		case ActionRespawn:
			if err := t.Respawn(); err != nil {
				return applied, fmt.Errorf("respawn at %.2fs: %w", step.At, err)
			}
			s.offset = step.At
			return applied, nil
		}
	}
	return applied, nil
}

// Done reports whether every step has been sent.
func (s *Script) Done() bool {
	return s == nil || s.next >= len(s.Steps)
}

// Reset rewinds the script.
func (s *Script) Reset() {
	if s != nil {
		s.next = 0
		s.offset = 0
	}
}
