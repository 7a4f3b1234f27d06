package weapon

import (
	"reflect"
	"testing"

	"github.com/automoto/dogma/config"
)

func TestExplosionTrigger(t *testing.T) {
	a := newFakeCreature("a", true, Vector{X: 1, Y: 0})
	b := newFakeCreature("b", true, Vector{X: 0, Y: 4})
	dead := newFakeCreature("dead", false, Vector{X: -2, Y: -2})
	far := newFakeCreature("far", true, Vector{X: 9, Y: 0})
	player := newFakeCreature("player", true, Vector{X: 0.5, Y: 0})
	player.player = true

	query := &fakeQuery{creatures: []*fakeCreature{a, b, dead, far, player}}
	spawner := &fakeSpawner{}
	e := NewExplosionEffect(spawner, query, config.Weapon.Effects.Explosion, config.Weapon.Explosion)

	if got := e.Trigger(Vector{}); got != 3 {
		t.Fatalf("Trigger() = %d, want 3", got)
	}
	if query.lastRange != 5 {
		t.Errorf("query radius = %v, want 5", query.lastRange)
	}
	if spawner.played(config.Weapon.Effects.Explosion) != 1 {
		t.Error("explosion effect not played")
	}

	wantSevered := []PartType{PartHead, PartLeftHand, PartRightFoot}
	wantAlive := []string{"ragdoll", "impulse:head", "sever:head", "impulse:torso", "impulse:left_arm",
		"impulse:left_hand", "sever:left_hand", "impulse:right_foot", "sever:right_foot", "kill"}
	for _, c := range []*fakeCreature{a, b} {
		if !reflect.DeepEqual(c.log, wantAlive) {
			t.Errorf("%s: log = %v, want %v", c.name, c.log, wantAlive)
		}
		if c.ragdoll != RagdollDestabilized {
			t.Errorf("%s: ragdoll = %v, want destabilized", c.name, c.ragdoll)
		}
		if !reflect.DeepEqual(c.severed, wantSevered) {
			t.Errorf("%s: severed = %v, want %v", c.name, c.severed, wantSevered)
		}
		if c.alive {
			t.Errorf("%s still alive", c.name)
		}
	}

	if dead.ragdoll != RagdollInert {
		t.Errorf("dead creature was destabilized")
	}
	if !reflect.DeepEqual(dead.severed, wantSevered) {
		t.Errorf("dead: severed = %v, want %v", dead.severed, wantSevered)
	}
	if dead.log[len(dead.log)-1] != "kill" {
		t.Errorf("dead: last step = %q, want kill", dead.log[len(dead.log)-1])
	}

	for _, c := range []*fakeCreature{far, player} {
		if len(c.log) != 0 {
			t.Errorf("%s was hit: %v", c.name, c.log)
		}
		if !c.alive {
			t.Errorf("%s was killed", c.name)
		}
	}
}

func TestExplosionImpulseParameters(t *testing.T) {
	c := newFakeCreature("c", true, Vector{X: 1, Y: 1})
	e := NewExplosionEffect(&fakeSpawner{}, &fakeQuery{creatures: []*fakeCreature{c}}, "fx", config.Weapon.Explosion)

	origin := Vector{X: 0.5, Y: 0.5}
	e.Trigger(origin)

	want := Impulse{Force: 25, Origin: origin, Radius: 10, UpwardsModifier: 0.5, Mode: ForceModeVelocityChange}
	for _, p := range c.parts {
		if len(p.impulses) != 1 {
			t.Fatalf("%v: %d impulses, want 1", p.kind, len(p.impulses))
		}
		if p.impulses[0] != want {
			t.Errorf("%v: impulse = %+v, want %+v", p.kind, p.impulses[0], want)
		}
	}
}

func TestExplosionWithoutQuery(t *testing.T) {
	spawner := &fakeSpawner{}
	e := NewExplosionEffect(spawner, nil, "fx", config.Weapon.Explosion)
	if got := e.Trigger(Vector{}); got != 0 {
		t.Fatalf("Trigger() = %d, want 0", got)
	}
	if spawner.played("fx") != 1 {
		t.Error("explosion effect not played")
	}
}
