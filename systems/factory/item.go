package factory

import (
	"github.com/automoto/dogma/archetypes"
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/tags"
	"github.com/automoto/dogma/weapon"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	itemWidth  = 4
	itemHeight = 30
)

// CreateWeaponItem spawns the sword in the holder's right hand with its
// blade in the default profile and every continuous visual attached.
func CreateWeaponItem(ecs *ecs.ECS, holder *donburi.Entry) *donburi.Entry {
	item := archetypes.Item.Spawn(ecs)

	x, y := HandPosition(holder)
	obj := resolv.NewObject(x-itemWidth/2, y-itemHeight, itemWidth, itemHeight)
	obj.AddTags(tags.ResolvItem)
	obj.Data = item
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(item, components.ObjectData{Object: obj})

	profile := cfg.Weapon.Profile
	data := components.ItemData{
		Name: "Dogma",
		Groups: []*components.ColliderGroupData{
			{Name: profile.ColliderGroupName, Data: profile.ColliderGroupDefault},
			{Name: "Handle", Data: "HandleDefault"},
		},
		Handlers: []*components.CollisionHandlerData{
			{Name: "Blade", Damagers: []*components.DamagerData{{ID: profile.SlashDefault}, {ID: profile.PierceDefault}}},
			{Name: "Pommel", Damagers: []*components.DamagerData{{ID: "Blunt"}}},
		},
		References: map[string]*donburi.Entry{},
		Emission:   cfg.Arena.BladeEmission.Color(),
		Holder:     holder,
	}

	refs := cfg.Weapon.References
	for _, name := range []string{refs.Trail, refs.Smoke, refs.ExplosionSmoke, refs.Overcharge} {
		if name == "" {
			continue
		}
		data.References[name] = CreateEffect(ecs, name, x, y-itemHeight/2, 0, item)
	}

	components.Item.SetValue(item, data)
	return item
}

// DestroyItem removes the item and its continuous visuals.
func DestroyItem(w donburi.World, item *donburi.Entry) {
	if item == nil || !item.Valid() {
		return
	}
	for _, ref := range components.Item.Get(item).References {
		DestroyObject(w, ref)
	}
	DestroyObject(w, item)
}

// HandPosition returns where a creature holds an item, in pixels. It falls
// back to the hull when the hand is gone.
func HandPosition(creature *donburi.Entry) (float64, float64) {
	if creature == nil || !creature.Valid() {
		return 0, 0
	}
	if creature.HasComponent(components.Ragdoll) {
		if hand := components.Ragdoll.Get(creature).Part(weapon.PartRightHand); hand != nil && !hand.Severed {
			p := hand.Body.Position()
			return p.X, p.Y
		}
	}
	obj := components.Object.Get(creature)
	return obj.X + obj.W/2, obj.Y + obj.H/2
}
