package systems

import (
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdatePhysics(ecs *ecs.ECS) {
	spaceEntry, ok := components.PhysicsSpace.First(ecs.World)
	if !ok {
		return
	}
	space := components.PhysicsSpace.Get(spaceEntry).Space

	dt := ClockStep(ecs.World)
	if dt <= 0 {
		return
	}

	// Standing creatures hold their pose; anything else is a free ragdoll.
	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		if components.Creature.Get(e).Ragdoll != weapon.RagdollStanding {
			return
		}
		for _, p := range components.Ragdoll.Get(e).Parts {
			p.Body.SetVelocity(0, 0)
			p.Body.SetAngularVelocity(0)
		}
	})

	space.Step(dt)

	// Hulls track the torso so broadphase queries see where the body went.
	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		torso := components.Ragdoll.Get(e).Part(weapon.PartTorso)
		if torso == nil {
			return
		}
		p := torso.Body.Position()
		obj := components.Object.Get(e)
		obj.X = p.X - obj.W/2
		obj.Y = p.Y - factory.TorsoOffsetY - obj.H/2
	})
}
