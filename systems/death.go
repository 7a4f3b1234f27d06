package systems

import (
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths removes corpses whose timer ran out.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := ClockStep(ecs.World)
	var expired []*donburi.Entry

	components.Death.Each(ecs.World, func(e *donburi.Entry) {
		death := components.Death.Get(e)
		death.Timer -= dt
		if death.Timer <= 0 {
			expired = append(expired, e)
		}
	})

	for _, e := range expired {
		factory.DestroyCreature(ecs, e)
	}
}
