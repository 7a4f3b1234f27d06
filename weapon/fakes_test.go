package weapon

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

type fakeEffect struct {
	id      string
	playing bool
	plays   int
	stops   int
}

func (e *fakeEffect) Play() {
	e.playing = true
	e.plays++
}

func (e *fakeEffect) Stop() {
	e.playing = false
	e.stops++
}

func (e *fakeEffect) IsPlaying() bool { return e.playing }

type fakeSpawner struct {
	spawned []*fakeEffect
}

func (s *fakeSpawner) Spawn(id string, at Vector) Effect {
	e := &fakeEffect{id: id}
	s.spawned = append(s.spawned, e)
	return e
}

func (s *fakeSpawner) played(id string) int {
	n := 0
	for _, e := range s.spawned {
		if e.id == id {
			n += e.plays
		}
	}
	return n
}

type fakeMaterial struct {
	color  colorful.Color
	writes int
}

func (m *fakeMaterial) EmissionColor() colorful.Color { return m.color }
func (m *fakeMaterial) SetEmissionColor(c colorful.Color) {
	m.color = c
	m.writes++
}

type fakeGroup struct {
	name string
	data string
}

func (g *fakeGroup) Name() string      { return g.name }
func (g *fakeGroup) DataID() string    { return g.data }
func (g *fakeGroup) SetData(id string) { g.data = id }

type fakeDamager struct {
	id    string
	loads int
}

func (d *fakeDamager) DataID() string { return d.id }
func (d *fakeDamager) Load(id string) {
	d.id = id
	d.loads++
}

type fakeHandler struct {
	damagers []*fakeDamager
}

func (h *fakeHandler) Damagers() []Damager {
	out := make([]Damager, len(h.damagers))
	for i, d := range h.damagers {
		out[i] = d
	}
	return out
}

type fakeItem struct {
	pos      Vector
	groups   []*fakeGroup
	handlers []*fakeHandler
	refs     map[string]*fakeEffect
	material *fakeMaterial
}

func newFakeItem() *fakeItem {
	return &fakeItem{
		groups: []*fakeGroup{
			{name: "Blades", data: "BladeDogmaDefault"},
			{name: "Handle", data: "HandleDefault"},
		},
		handlers: []*fakeHandler{
			{damagers: []*fakeDamager{{id: "DogmaSlashDefault"}, {id: "DogmaPierceDefault"}}},
			{damagers: []*fakeDamager{{id: "Blunt"}}},
		},
		refs: map[string]*fakeEffect{
			"Trail":      {id: "Trail", playing: true},
			"Smoke":      {id: "Smoke"},
			"ESmoke":     {id: "ESmoke"},
			"Overcharge": {id: "Overcharge"},
		},
		material: &fakeMaterial{color: colorful.Color{R: 0.1, G: 0.2, B: 0.3}},
	}
}

func (i *fakeItem) Position() Vector { return i.pos }

func (i *fakeItem) ColliderGroups() []ColliderGroup {
	out := make([]ColliderGroup, len(i.groups))
	for n, g := range i.groups {
		out[n] = g
	}
	return out
}

func (i *fakeItem) CollisionHandlers() []CollisionHandler {
	out := make([]CollisionHandler, len(i.handlers))
	for n, h := range i.handlers {
		out[n] = h
	}
	return out
}

func (i *fakeItem) Reference(name string) Effect {
	if e, ok := i.refs[name]; ok {
		return e
	}
	return nil
}

func (i *fakeItem) Material() Material { return i.material }

func (i *fakeItem) damagerIDs() []string {
	var ids []string
	for _, h := range i.handlers {
		for _, d := range h.damagers {
			ids = append(ids, d.id)
		}
	}
	return ids
}

type fakeEvents struct {
	listeners    []Listener
	unsubscribed int
}

func (e *fakeEvents) Subscribe(l Listener) func() {
	e.listeners = append(e.listeners, l)
	idx := len(e.listeners) - 1
	return func() {
		if e.listeners[idx] != nil {
			e.listeners[idx] = nil
			e.unsubscribed++
		}
	}
}

func (e *fakeEvents) each(fn func(l Listener)) {
	for _, l := range e.listeners {
		if l != nil {
			fn(l)
		}
	}
}

func (e *fakeEvents) grab(h Hand)         { e.each(func(l Listener) { l.OnGrab(h) }) }
func (e *fakeEvents) release(h Hand)      { e.each(func(l Listener) { l.OnRelease(h, false) }) }
func (e *fakeEvents) press()              { e.each(func(l Listener) { l.OnHeldAction(HandLeft, ActionAlternateUseStart) }) }
func (e *fakeEvents) unpress()            { e.each(func(l Listener) { l.OnHeldAction(HandLeft, ActionAlternateUseStop) }) }
func (e *fakeEvents) despawn(t EventTime) { e.each(func(l Listener) { l.OnDespawn(t) }) }

type pendingLoad struct {
	assetID string
	done    func(float64)
}

// fakeAssets holds completions until the test fires them.
type fakeAssets struct {
	pending []pendingLoad
}

func (a *fakeAssets) LoadDurationAsync(assetID string, done func(seconds float64)) {
	a.pending = append(a.pending, pendingLoad{assetID: assetID, done: done})
}

func (a *fakeAssets) complete(assetID string, seconds float64) bool {
	for i, p := range a.pending {
		if p.assetID == assetID {
			a.pending = append(a.pending[:i], a.pending[i+1:]...)
			p.done(seconds)
			return true
		}
	}
	return false
}

type fakePart struct {
	kind      PartType
	important bool
	impulses  []Impulse
	owner     *fakeCreature
}

func (p *fakePart) Type() PartType  { return p.kind }
func (p *fakePart) Important() bool { return p.important }
func (p *fakePart) ApplyExplosionImpulse(i Impulse) {
	p.impulses = append(p.impulses, i)
	p.owner.log = append(p.owner.log, "impulse:"+p.kind.String())
}

type fakeCreature struct {
	name    string
	alive   bool
	player  bool
	pos     Vector
	ragdoll RagdollState
	parts   []*fakePart
	severed []PartType
	log     []string
}

func newFakeCreature(name string, alive bool, pos Vector) *fakeCreature {
	c := &fakeCreature{name: name, alive: alive, pos: pos}
	for _, kind := range []PartType{PartHead, PartTorso, PartLeftArm, PartLeftHand, PartRightFoot} {
		c.parts = append(c.parts, &fakePart{kind: kind, important: kind.Important(), owner: c})
	}
	if !alive {
		c.ragdoll = RagdollInert
	}
	return c
}

func (c *fakeCreature) Alive() bool { return c.alive }
func (c *fakeCreature) SetRagdollState(s RagdollState) {
	c.ragdoll = s
	c.log = append(c.log, "ragdoll")
}

func (c *fakeCreature) Parts() []BodyPart {
	out := make([]BodyPart, len(c.parts))
	for i, p := range c.parts {
		out[i] = p
	}
	return out
}

func (c *fakeCreature) Sever(part BodyPart) {
	c.severed = append(c.severed, part.Type())
	c.log = append(c.log, "sever:"+part.Type().String())
}

func (c *fakeCreature) Kill() {
	c.alive = false
	c.log = append(c.log, "kill")
}

type fakeQuery struct {
	creatures []*fakeCreature
	calls     int
	lastRange float64
}

func (q *fakeQuery) CreaturesInRadius(center Vector, radius float64, includeAlive, includeDead, includePlayer bool) []Creature {
	q.calls++
	q.lastRange = radius
	var out []Creature
	for _, c := range q.creatures {
		if c.player && !includePlayer {
			continue
		}
		if c.alive && !includeAlive || !c.alive && !includeDead {
			continue
		}
		if math.Hypot(c.pos.X-center.X, c.pos.Y-center.Y) > radius {
			continue
		}
		out = append(out, c)
	}
	return out
}
