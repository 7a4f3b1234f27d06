package components

import (
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
)

// ListenerSlot is one subscription to an item's notifications.
type ListenerSlot struct {
	Listener weapon.Listener
	Removed  bool
}

// ListenersData routes item notifications to the slots subscribed to each
// item entity.
type ListenersData struct {
	Slots map[donburi.Entity][]*ListenerSlot
}

var Listeners = donburi.NewComponentType[ListenersData]()
