package archetypes

import (
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Space = newArchetype(
		components.Space,
	)
	PhysicsSpace = newArchetype(
		components.PhysicsSpace,
	)
	Clock = newArchetype(
		components.Clock,
	)
	Listeners = newArchetype(
		components.Listeners,
	)
	Creature = newArchetype(
		tags.Creature,
		components.Creature,
		components.Object,
		components.Ragdoll,
	)
	Item = newArchetype(
		tags.Item,
		components.Item,
		components.Object,
	)
	Effect = newArchetype(
		tags.Effect,
		components.Effect,
		components.Object,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
