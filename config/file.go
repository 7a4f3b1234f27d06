package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// File is the YAML document accepted by LoadFile. Omitted sections and keys
// keep their current values.
type File struct {
	Window   *Config         `yaml:"window"`
	Weapon   *WeaponConfig   `yaml:"weapon"`
	Physics  *PhysicsConfig  `yaml:"physics"`
	Creature *CreatureConfig `yaml:"creature"`
	Effect   *EffectConfig   `yaml:"effect"`
	Arena    *ArenaConfig    `yaml:"arena"`
	Debug    *DebugConfig    `yaml:"debug"`
}

// LoadFile reads a YAML overlay from disk and applies it to the globals.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := Apply(data); err != nil {
		return fmt.Errorf("config: %s: %w", path, err)
	}
	return nil
}

// Apply decodes a YAML overlay over the current globals. Nothing is applied
// when decoding fails.
func Apply(data []byte) error {
	// Decode into copies so a bad document leaves the globals untouched.
	window := *C
	weapon := Weapon
	physics := Physics
	creature := Creature
	effect := Effect
	arena := Arena
	debug := Debug

	f := File{
		Window:   &window,
		Weapon:   &weapon,
		Physics:  &physics,
		Creature: &creature,
		Effect:   &effect,
		Arena:    &arena,
		Debug:    &debug,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	if err := weapon.Validate(); err != nil {
		return err
	}

	*C = window
	Weapon = weapon
	Physics = physics
	Creature = creature
	Effect = effect
	Arena = arena
	Debug = debug
	return nil
}

// Validate rejects durations the state machine cannot use.
func (w WeaponConfig) Validate() error {
	durations := map[string]float64{
		"max_sharp_duration":            w.MaxSharpDuration,
		"sharp_cooldown_duration":       w.SharpCooldownDuration,
		"overcharged_cooldown_duration": w.OverchargedCooldownDuration,
		"oscillation_period":            w.OscillationPeriod,
	}
	for name, v := range durations {
		if v <= 0 {
			return fmt.Errorf("weapon.%s must be positive, got %v", name, v)
		}
	}
	if w.FadeDuration < 0 {
		return fmt.Errorf("weapon.fade_duration must not be negative, got %v", w.FadeDuration)
	}
	return nil
}
