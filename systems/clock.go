package systems

import (
	"github.com/automoto/dogma/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ClockStep returns the scaled seconds of the current tick, or zero when the
// world has no clock.
func ClockStep(w donburi.World) float64 {
	entry, ok := components.Clock.First(w)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Step()
}

// UpdateClock counts the tick that just ran.
func UpdateClock(ecs *ecs.ECS) {
	entry, ok := components.Clock.First(ecs.World)
	if !ok {
		return
	}
	clock := components.Clock.Get(entry)
	clock.Elapsed += clock.Step()
	clock.Ticks++
}
