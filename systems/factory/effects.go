package factory

import (
	"github.com/automoto/dogma/archetypes"
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const effectSize = 8

// CreateEffect spawns an effect centred at (x, y). One-shot effects are
// removed after lifetime seconds; continuous ones follow the given entry
// until it is destroyed.
func CreateEffect(ecs *ecs.ECS, id string, x, y, lifetime float64, follow *donburi.Entry) *donburi.Entry {
	continuous := follow != nil

	var entry *donburi.Entry
	if continuous {
		entry = archetypes.Effect.Spawn(ecs)
	} else {
		entry = archetypes.Effect.Spawn(ecs, components.AutoDestroy)
		components.AutoDestroy.SetValue(entry, components.AutoDestroyData{Remaining: lifetime})
	}

	obj := resolv.NewObject(x-effectSize/2, y-effectSize/2, effectSize, effectSize)
	obj.AddTags(tags.ResolvEffect)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})

	components.Effect.SetValue(entry, components.EffectData{
		ID:         id,
		Continuous: continuous,
		Follow:     follow,
	})
	return entry
}

// DestroyObject removes an entity and its broadphase object.
func DestroyObject(w donburi.World, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if e.HasComponent(components.Object) {
		obj := components.Object.Get(e)
		if obj.Object != nil && obj.Space != nil {
			obj.Space.Remove(obj.Object)
		}
	}
	w.Remove(e.Entity())
}
