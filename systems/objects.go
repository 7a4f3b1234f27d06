package systems

import (
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects moves held items to their holder's hand and continuous
// effects onto whatever they follow, then refreshes every object's cells.
func UpdateObjects(ecs *ecs.ECS) {
	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		if item.Grip() == 0 || item.Holder == nil || !item.Holder.Valid() {
			return
		}
		x, y := factory.HandPosition(item.Holder)
		obj := components.Object.Get(e)
		obj.X = x - obj.W/2
		obj.Y = y - obj.H
	})

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Follow == nil || !fx.Follow.Valid() {
			return
		}
		target := components.Object.Get(fx.Follow)
		obj := components.Object.Get(e)
		obj.X = target.X + target.W/2 - obj.W/2
		obj.Y = target.Y + target.H/2 - obj.H/2
	})

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		obj.Update()
	}
}
