package components

import (
	"github.com/automoto/dogma/weapon"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/yohamta/donburi"
)

// ColliderGroupData is a named set of colliders whose collision profile is
// selected by Data.
type ColliderGroupData struct {
	Name string
	Data string
}

type DamagerData struct {
	ID string
}

type CollisionHandlerData struct {
	Name     string
	Damagers []*DamagerData
}

// ItemData is a holdable item. References maps a continuous visual's name to
// its effect entity.
type ItemData struct {
	Name       string
	Groups     []*ColliderGroupData
	Handlers   []*CollisionHandlerData
	References map[string]*donburi.Entry
	Emission   colorful.Color
	Holder     *donburi.Entry
	Held       [2]bool // indexed by weapon.Hand
}

// Grip returns the number of hands on the item.
func (i *ItemData) Grip() int {
	n := 0
	for _, held := range i.Held {
		if held {
			n++
		}
	}
	return n
}

// IsHeld reports whether hand is on the item.
func (i *ItemData) IsHeld(hand weapon.Hand) bool {
	return hand >= 0 && int(hand) < len(i.Held) && i.Held[hand]
}

var Item = donburi.NewComponentType[ItemData]()

// WeaponData attaches the weapon state machine to an item.
type WeaponData struct {
	Controller *weapon.Controller
}

var Weapon = donburi.NewComponentType[WeaponData]()
