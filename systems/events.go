package systems

import (
	"log"

	"github.com/automoto/dogma/archetypes"
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
)

type GrabEvent struct {
	Item donburi.Entity
	Hand weapon.Hand
}

type ReleaseEvent struct {
	Item     donburi.Entity
	Hand     weapon.Hand
	Throwing bool
}

type HeldActionEvent struct {
	Item   donburi.Entity
	Hand   weapon.Hand
	Action weapon.Action
}

type DespawnEvent struct {
	Item donburi.Entity
	Time weapon.EventTime
}

var (
	GrabEventType       = events.NewEventType[GrabEvent]()
	ReleaseEventType    = events.NewEventType[ReleaseEvent]()
	HeldActionEventType = events.NewEventType[HeldActionEvent]()
	DespawnEventType    = events.NewEventType[DespawnEvent]()
)

// InitEvents installs the item notification router. Each event type gets a
// single subscription per world; listeners are kept in slots keyed by item.
func InitEvents(ecs *ecs.ECS) {
	entry := archetypes.Listeners.Spawn(ecs)
	components.Listeners.SetValue(entry, components.ListenersData{
		Slots: map[donburi.Entity][]*components.ListenerSlot{},
	})

	GrabEventType.Subscribe(ecs.World, onGrab)
	ReleaseEventType.Subscribe(ecs.World, onRelease)
	HeldActionEventType.Subscribe(ecs.World, onHeldAction)
	DespawnEventType.Subscribe(ecs.World, onDespawn)
}

// UpdateEvents delivers the notifications queued since the last tick.
func UpdateEvents(ecs *ecs.ECS) {
	events.ProcessAllEvents(ecs.World)
}

func onGrab(w donburi.World, e GrabEvent) {
	if setHeld(w, e.Item, e.Hand, true) {
		dispatch(w, e.Item, func(l weapon.Listener) { l.OnGrab(e.Hand) })
	}
}

func onRelease(w donburi.World, e ReleaseEvent) {
	if setHeld(w, e.Item, e.Hand, false) {
		dispatch(w, e.Item, func(l weapon.Listener) { l.OnRelease(e.Hand, e.Throwing) })
	}
}

// setHeld records a hand change and reports whether it changed anything.
// Repeated grabs, unpaired releases and unknown hands are dropped.
func setHeld(w donburi.World, entity donburi.Entity, hand weapon.Hand, held bool) bool {
	item, ok := itemData(w, entity)
	if !ok {
		return false
	}
	if hand < 0 || int(hand) >= len(item.Held) {
		log.Printf("item: ignoring event for unknown hand %d", hand)
		return false
	}
	if item.Held[hand] == held {
		return false
	}
	item.Held[hand] = held
	return true
}

func onHeldAction(w donburi.World, e HeldActionEvent) {
	dispatch(w, e.Item, func(l weapon.Listener) { l.OnHeldAction(e.Hand, e.Action) })
}

func onDespawn(w donburi.World, e DespawnEvent) {
	dispatch(w, e.Item, func(l weapon.Listener) { l.OnDespawn(e.Time) })
	if e.Time != weapon.OnEnd {
		return
	}
	// The item is gone once every listener has seen the end of despawn.
	if w.Valid(e.Item) {
		factory.DestroyItem(w, w.Entry(e.Item))
	}
	if l, ok := listeners(w); ok {
		delete(l.Slots, e.Item)
	}
}

func itemData(w donburi.World, item donburi.Entity) (*components.ItemData, bool) {
	if !w.Valid(item) {
		return nil, false
	}
	entry := w.Entry(item)
	if !entry.HasComponent(components.Item) {
		return nil, false
	}
	return components.Item.Get(entry), true
}

func listeners(w donburi.World) (*components.ListenersData, bool) {
	entry, ok := components.Listeners.First(w)
	if !ok {
		return nil, false
	}
	return components.Listeners.Get(entry), true
}

// dispatch calls fn for each live slot of item. The slot list is copied so a
// listener may unsubscribe while being notified.
func dispatch(w donburi.World, item donburi.Entity, fn func(l weapon.Listener)) {
	l, ok := listeners(w)
	if !ok {
		return
	}
	slots := append([]*components.ListenerSlot(nil), l.Slots[item]...)
	for _, s := range slots {
		if !s.Removed {
			fn(s.Listener)
		}
	}
}

// ItemEvents is the weapon.Events source of one item entity.
type ItemEvents struct {
	world donburi.World
	item  donburi.Entity
}

func NewItemEvents(w donburi.World, item donburi.Entity) *ItemEvents {
	return &ItemEvents{world: w, item: item}
}

// Subscribe adds a listener slot for the item. The returned function removes
// it and may be called more than once.
func (e *ItemEvents) Subscribe(listener weapon.Listener) func() {
	l, ok := listeners(e.world)
	if !ok {
		return func() {}
	}
	slot := &components.ListenerSlot{Listener: listener}
	l.Slots[e.item] = append(l.Slots[e.item], slot)

	return func() {
		if slot.Removed {
			return
		}
		slot.Removed = true
		l, ok := listeners(e.world)
		if !ok {
			return
		}
		kept := l.Slots[e.item][:0]
		for _, s := range l.Slots[e.item] {
			if s != slot {
				kept = append(kept, s)
			}
		}
		l.Slots[e.item] = kept
	}
}

// Publish helpers queue a notification for the next UpdateEvents.

func PublishGrab(w donburi.World, item donburi.Entity, hand weapon.Hand) {
	GrabEventType.Publish(w, GrabEvent{Item: item, Hand: hand})
}

func PublishRelease(w donburi.World, item donburi.Entity, hand weapon.Hand, throwing bool) {
	ReleaseEventType.Publish(w, ReleaseEvent{Item: item, Hand: hand, Throwing: throwing})
}

func PublishHeldAction(w donburi.World, item donburi.Entity, hand weapon.Hand, action weapon.Action) {
	HeldActionEventType.Publish(w, HeldActionEvent{Item: item, Hand: hand, Action: action})
}

func PublishDespawn(w donburi.World, item donburi.Entity) {
	DespawnEventType.Publish(w, DespawnEvent{Item: item, Time: weapon.OnStart})
	DespawnEventType.Publish(w, DespawnEvent{Item: item, Time: weapon.OnEnd})
}
