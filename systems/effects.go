package systems

import (
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects expires one-shot cues and drops continuous visuals whose
// owner is gone.
func UpdateEffects(ecs *ecs.ECS) {
	dt := ClockStep(ecs.World)
	var toDestroy []*donburi.Entry

	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining -= dt
		if ad.Remaining <= 0 {
			toDestroy = append(toDestroy, e)
		}
	})

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Continuous && (fx.Follow == nil || !fx.Follow.Valid()) {
			toDestroy = append(toDestroy, e)
		}
	})

	for _, e := range toDestroy {
		factory.DestroyObject(ecs.World, e)
	}
}
