package systems

import (
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectLengths looks up how long a one-shot cue plays.
type EffectLengths interface {
	Length(id string) (float64, bool)
}

// ArmWeapon attaches a controller to an item entity. The controller reads
// the weapon config current at the time of the call.
func ArmWeapon(ecs *ecs.ECS, item *donburi.Entry, loader weapon.AssetLoader, lengths EffectLengths) *weapon.Controller {
	ctrl := weapon.New(weapon.Deps{
		Item:      &itemHost{entry: item},
		Events:    NewItemEvents(ecs.World, item.Entity()),
		Effects:   &effectSpawner{ecs: ecs, lengths: lengths},
		Assets:    loader,
		Creatures: &creatureQuery{ecs: ecs},
	}, cfg.Weapon)

	if !item.HasComponent(components.Weapon) {
		item.AddComponent(components.Weapon)
	}
	components.Weapon.SetValue(item, components.WeaponData{Controller: ctrl})
	return ctrl
}

// UpdateWeapons advances every live controller by one tick.
func UpdateWeapons(ecs *ecs.ECS) {
	dt := ClockStep(ecs.World)

	// Collected first: an explosion adds and removes entities.
	var ctrls []*weapon.Controller
	components.Weapon.Each(ecs.World, func(e *donburi.Entry) {
		if ctrl := components.Weapon.Get(e).Controller; ctrl != nil && !ctrl.Destroyed() {
			ctrls = append(ctrls, ctrl)
		}
	})
	for _, ctrl := range ctrls {
		ctrl.Update(dt)
	}
}
