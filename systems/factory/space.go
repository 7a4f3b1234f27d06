package factory

import (
	"github.com/automoto/dogma/archetypes"
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

// CreatePhysicsSpace creates the Chipmunk space ragdolls are simulated in.
func CreatePhysicsSpace(ecs *ecs.ECS) *donburi.Entry {
	entry := archetypes.PhysicsSpace.Spawn(ecs)

	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: cfg.Physics.GravityX, Y: cfg.Physics.GravityY})
	space.SetDamping(cfg.Physics.Damping)
	if cfg.Physics.Iterations > 0 {
		space.Iterations = uint(cfg.Physics.Iterations)
	}

	components.PhysicsSpace.SetValue(entry, components.PhysicsSpaceData{Space: space})
	return entry
}

// CreateClock creates the simulation clock ticking at tickRate.
func CreateClock(ecs *ecs.ECS, tickRate int, timeScale float64) *donburi.Entry {
	entry := archetypes.Clock.Spawn(ecs)
	if tickRate <= 0 {
		tickRate = 60
	}
	if timeScale <= 0 {
		timeScale = 1
	}
	components.Clock.SetValue(entry, components.ClockData{
		DT:        1 / float64(tickRate),
		TimeScale: timeScale,
	})
	return entry
}
