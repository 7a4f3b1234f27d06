package weapon

import (
	"log"
	"math"
	"sync/atomic"
)

type atomicFloat struct {
	bits atomic.Uint64
}

func (f *atomicFloat) Load() float64 {
	return math.Float64frombits(f.bits.Load())
}

func (f *atomicFloat) Store(v float64) {
	f.bits.Store(math.Float64bits(v))
}

// Durations holds the state machine's timings in seconds. MaxSharp and
// SharpCooldown may be written from another goroutine by a TimerCalibrator;
// each field is written atomically but there is no ordering between fields
// or against the first read.
type Durations struct {
	maxSharp            atomicFloat
	sharpCooldown       atomicFloat
	overchargedCooldown float64
}

// NewDurations returns durations holding the given defaults.
func NewDurations(maxSharp, sharpCooldown, overchargedCooldown float64) *Durations {
	d := &Durations{overchargedCooldown: overchargedCooldown}
	d.maxSharp.Store(maxSharp)
	d.sharpCooldown.Store(sharpCooldown)
	return d
}

func (d *Durations) MaxSharp() float64 {
	return d.maxSharp.Load()
}

func (d *Durations) SharpCooldown() float64 {
	return d.sharpCooldown.Load()
}

func (d *Durations) OverchargedCooldown() float64 {
	return d.overchargedCooldown
}

// SetMaxSharp replaces the Sharp duration. Non-positive or non-finite values
// are ignored.
func (d *Durations) SetMaxSharp(v float64) bool {
	if !validDuration(v) {
		return false
	}
	d.maxSharp.Store(v)
	return true
}

// SetSharpCooldown replaces the cooldown that follows Sharp. Non-positive or
// non-finite values are ignored.
func (d *Durations) SetSharpCooldown(v float64) bool {
	if !validDuration(v) {
		return false
	}
	d.sharpCooldown.Store(v)
	return true
}

func validDuration(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// TimerCalibrator replaces default durations with lengths loaded from
// assets. Calibration is best effort: a load may land after the default was
// already used, or never land at all.
type TimerCalibrator struct {
	durations *Durations
}

func NewTimerCalibrator(d *Durations) *TimerCalibrator {
	return &TimerCalibrator{durations: d}
}

// Calibrate starts both loads. It does not wait for them.
func (c *TimerCalibrator) Calibrate(loader AssetLoader, sharpAsset, cooldownAsset string) {
	if loader == nil {
		return
	}
	if sharpAsset != "" {
		loader.LoadDurationAsync(sharpAsset, c.SetMaxSharp)
	}
	if cooldownAsset != "" {
		loader.LoadDurationAsync(cooldownAsset, c.SetSharpCooldown)
	}
}

// SetMaxSharp is the completion for the Sharp duration asset.
func (c *TimerCalibrator) SetMaxSharp(seconds float64) {
	if !c.durations.SetMaxSharp(seconds) {
		log.Printf("Warning: ignoring sharp duration %v", seconds)
	}
}

// SetSharpCooldown is the completion for the Sharp cooldown asset.
func (c *TimerCalibrator) SetSharpCooldown(seconds float64) {
	if !c.durations.SetSharpCooldown(seconds) {
		log.Printf("Warning: ignoring sharp cooldown %v", seconds)
	}
}
