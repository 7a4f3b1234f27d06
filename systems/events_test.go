package systems

import (
	"reflect"
	"testing"

	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/systems/factory"
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
)

func TestItemEventsDeliverInOrder(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 300)
	item := factory.CreateWeaponItem(e, player)

	r := &recorder{}
	NewItemEvents(e.World, item.Entity()).Subscribe(r)

	PublishGrab(e.World, item.Entity(), weapon.HandLeft)
	PublishGrab(e.World, item.Entity(), weapon.HandRight)
	UpdateEvents(e)
	PublishRelease(e.World, item.Entity(), weapon.HandRight, true)
	UpdateEvents(e)

	want := []string{"grab:left", "grab:right", "throw:right"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	data := components.Item.Get(item)
	if !data.IsHeld(weapon.HandLeft) || data.IsHeld(weapon.HandRight) || data.Grip() != 1 {
		t.Errorf("held = %v, want left only", data.Held)
	}
}

func TestItemEventsDropUnchangedHands(t *testing.T) {
	tests := []struct {
		name    string
		publish func(w donburi.World, item donburi.Entity)
		want    []string
		grip    int
	}{
		{
			name: "repeated grab",
			publish: func(w donburi.World, item donburi.Entity) {
				PublishGrab(w, item, weapon.HandLeft)
				PublishGrab(w, item, weapon.HandLeft)
			},
			want: []string{"grab:left"},
			grip: 1,
		},
		{
			name: "unpaired release",
			publish: func(w donburi.World, item donburi.Entity) {
				PublishRelease(w, item, weapon.HandRight, false)
			},
		},
		{
			name: "release after release",
			publish: func(w donburi.World, item donburi.Entity) {
				PublishGrab(w, item, weapon.HandRight)
				PublishRelease(w, item, weapon.HandRight, false)
				PublishRelease(w, item, weapon.HandRight, true)
			},
			want: []string{"grab:right", "release:right"},
		},
		{
			name: "unknown hand",
			publish: func(w donburi.World, item donburi.Entity) {
				PublishGrab(w, item, weapon.Hand(5))
				PublishRelease(w, item, weapon.Hand(-1), false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestECS(t)
			item := factory.CreateWeaponItem(e, factory.CreatePlayer(e, 200, 300))
			r := &recorder{}
			NewItemEvents(e.World, item.Entity()).Subscribe(r)

			tt.publish(e.World, item.Entity())
			UpdateEvents(e)

			if !reflect.DeepEqual(r.log, tt.want) {
				t.Errorf("log = %v, want %v", r.log, tt.want)
			}
			if got := components.Item.Get(item).Grip(); got != tt.grip {
				t.Errorf("grip = %d, want %d", got, tt.grip)
			}
		})
	}
}

func TestItemEventsUnsubscribe(t *testing.T) {
	e := newTestECS(t)
	item := factory.CreateWeaponItem(e, factory.CreatePlayer(e, 200, 300))

	r := &recorder{}
	unsubscribe := NewItemEvents(e.World, item.Entity()).Subscribe(r)
	unsubscribe()
	unsubscribe()

	PublishHeldAction(e.World, item.Entity(), weapon.HandLeft, weapon.ActionAlternateUseStart)
	UpdateEvents(e)

	if len(r.log) != 0 {
		t.Errorf("unsubscribed listener got %v", r.log)
	}
}

// selfRemover drops another subscription the first time it is notified.
type selfRemover struct {
	recorder
	remove func()
}

func (s *selfRemover) OnGrab(hand weapon.Hand) {
	s.recorder.OnGrab(hand)
	if s.remove != nil {
		s.remove()
	}
}

func TestItemEventsRemovalDuringDispatch(t *testing.T) {
	e := newTestECS(t)
	item := factory.CreateWeaponItem(e, factory.CreatePlayer(e, 200, 300))
	events := NewItemEvents(e.World, item.Entity())

	first := &selfRemover{}
	second := &recorder{}
	events.Subscribe(first)
	first.remove = events.Subscribe(second)

	PublishGrab(e.World, item.Entity(), weapon.HandLeft)
	UpdateEvents(e)

	if len(first.log) != 1 {
		t.Errorf("first log = %v", first.log)
	}
	if len(second.log) != 0 {
		t.Errorf("removed listener was notified: %v", second.log)
	}
}

func TestItemEventsOtherItem(t *testing.T) {
	e := newTestECS(t)
	player := factory.CreatePlayer(e, 200, 300)
	a := factory.CreateWeaponItem(e, player)
	b := factory.CreateWeaponItem(e, player)

	r := &recorder{}
	NewItemEvents(e.World, a.Entity()).Subscribe(r)
	PublishGrab(e.World, b.Entity(), weapon.HandLeft)
	UpdateEvents(e)

	if len(r.log) != 0 {
		t.Errorf("listener on a heard b: %v", r.log)
	}
}

func TestDespawnRemovesItem(t *testing.T) {
	e := newTestECS(t)
	item := factory.CreateWeaponItem(e, factory.CreatePlayer(e, 200, 300))
	refs := components.Item.Get(item).References

	r := &recorder{}
	NewItemEvents(e.World, item.Entity()).Subscribe(r)
	PublishDespawn(e.World, item.Entity())
	UpdateEvents(e)

	want := []string{"despawn:start", "despawn:end"}
	if !reflect.DeepEqual(r.log, want) {
		t.Errorf("log = %v, want %v", r.log, want)
	}
	if item.Valid() {
		t.Error("item still valid")
	}
	for name, ref := range refs {
		if ref.Valid() {
			t.Errorf("reference %s still valid", name)
		}
	}
	l, _ := listeners(e.World)
	if _, ok := l.Slots[item.Entity()]; ok {
		t.Error("listener slots kept after despawn")
	}
}

func TestDespawnTwiceIsHarmless(t *testing.T) {
	e := newTestECS(t)
	item := factory.CreateWeaponItem(e, factory.CreatePlayer(e, 200, 300))

	PublishDespawn(e.World, item.Entity())
	PublishDespawn(e.World, item.Entity())
	UpdateEvents(e)

	if item.Valid() {
		t.Error("item still valid")
	}
}
