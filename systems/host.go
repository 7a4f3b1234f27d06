package systems

import (
	"math"
	"sort"

	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/gamemath"
	"github.com/automoto/dogma/systems/factory"
	"github.com/automoto/dogma/tags"
	"github.com/automoto/dogma/weapon"
	"github.com/jakecoffman/cp"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// The weapon works in world units; the arena is in pixels.

func toUnits(px float64) float64 {
	return px / cfg.Arena.PixelsPerUnit
}

func toPixels(u float64) float64 {
	return u * cfg.Arena.PixelsPerUnit
}

// itemHost exposes an item entity as a weapon.Item.
type itemHost struct {
	entry *donburi.Entry
}

func (h *itemHost) data() *components.ItemData {
	return components.Item.Get(h.entry)
}

func (h *itemHost) Position() weapon.Vector {
	if !h.entry.Valid() {
		return weapon.Vector{}
	}
	obj := components.Object.Get(h.entry)
	return weapon.Vector{X: toUnits(obj.X + obj.W/2), Y: toUnits(obj.Y + obj.H/2)}
}

func (h *itemHost) ColliderGroups() []weapon.ColliderGroup {
	groups := h.data().Groups
	out := make([]weapon.ColliderGroup, len(groups))
	for i, g := range groups {
		out[i] = colliderGroup{g}
	}
	return out
}

func (h *itemHost) CollisionHandlers() []weapon.CollisionHandler {
	handlers := h.data().Handlers
	out := make([]weapon.CollisionHandler, len(handlers))
	for i, c := range handlers {
		out[i] = collisionHandler{c}
	}
	return out
}

func (h *itemHost) Reference(name string) weapon.Effect {
	ref, ok := h.data().References[name]
	if !ok {
		return nil
	}
	return &effectHandle{entry: ref}
}

func (h *itemHost) Material() weapon.Material {
	return &itemMaterial{entry: h.entry}
}

type colliderGroup struct {
	g *components.ColliderGroupData
}

func (c colliderGroup) Name() string      { return c.g.Name }
func (c colliderGroup) DataID() string    { return c.g.Data }
func (c colliderGroup) SetData(id string) { c.g.Data = id }

type collisionHandler struct {
	h *components.CollisionHandlerData
}

func (c collisionHandler) Damagers() []weapon.Damager {
	out := make([]weapon.Damager, len(c.h.Damagers))
	for i, d := range c.h.Damagers {
		out[i] = damager{d}
	}
	return out
}

type damager struct {
	d *components.DamagerData
}

func (d damager) DataID() string { return d.d.ID }
func (d damager) Load(id string) { d.d.ID = id }

// itemMaterial is the blade's emissive colour.
type itemMaterial struct {
	entry *donburi.Entry
}

func (m *itemMaterial) EmissionColor() colorful.Color {
	if !m.entry.Valid() {
		return colorful.Color{}
	}
	return components.Item.Get(m.entry).Emission
}

func (m *itemMaterial) SetEmissionColor(c colorful.Color) {
	if !m.entry.Valid() {
		return
	}
	components.Item.Get(m.entry).Emission = c
}

// effectHandle drives an effect entity. Calls on a removed effect do nothing.
type effectHandle struct {
	entry *donburi.Entry
}

func (e *effectHandle) Play() {
	if !e.entry.Valid() {
		return
	}
	fx := components.Effect.Get(e.entry)
	fx.Playing = true
	fx.Plays++
}

func (e *effectHandle) Stop() {
	if !e.entry.Valid() {
		return
	}
	components.Effect.Get(e.entry).Playing = false
}

func (e *effectHandle) IsPlaying() bool {
	return e.entry.Valid() && components.Effect.Get(e.entry).Playing
}

// effectSpawner creates one-shot cues whose lifetime comes from the catalog.
type effectSpawner struct {
	ecs     *ecs.ECS
	lengths EffectLengths
}

func (s *effectSpawner) Spawn(id string, at weapon.Vector) weapon.Effect {
	lifetime := cfg.Effect.DefaultLifetime
	if s.lengths != nil {
		if v, ok := s.lengths.Length(id); ok && v > 0 {
			lifetime = v
		}
	}
	entry := factory.CreateEffect(s.ecs, id, toPixels(at.X), toPixels(at.Y), lifetime, nil)
	return &effectHandle{entry: entry}
}

// creatureQuery finds creatures with a resolv broadphase check followed by
// an exact distance test against hull centres.
type creatureQuery struct {
	ecs *ecs.ECS
}

func (q *creatureQuery) CreaturesInRadius(center weapon.Vector, radius float64, includeAlive, includeDead, includePlayer bool) []weapon.Creature {
	spaceEntry, ok := components.Space.First(q.ecs.World)
	if !ok || radius < 0 {
		return nil
	}
	space := components.Space.Get(spaceEntry)

	cx, cy, r := toPixels(center.X), toPixels(center.Y), toPixels(radius)
	probe := resolv.NewObject(cx-r, cy-r, 2*r, 2*r, tags.ResolvQuery)
	space.Add(probe)
	defer space.Remove(probe)

	collision := probe.Check(0, 0, tags.ResolvCreature)
	if collision == nil {
		return nil
	}

	type hit struct {
		entry *donburi.Entry
		dist  float64
	}
	var hits []hit
	seen := map[donburi.Entity]bool{}
	for _, obj := range collision.Objects {
		entry, ok := obj.Data.(*donburi.Entry)
		if !ok || !entry.Valid() || seen[entry.Entity()] {
			continue
		}
		seen[entry.Entity()] = true

		c := components.Creature.Get(entry)
		if c.Player && !includePlayer {
			continue
		}
		if c.Alive && !includeAlive || !c.Alive && !includeDead {
			continue
		}
		dist := math.Hypot(obj.X+obj.W/2-cx, obj.Y+obj.H/2-cy)
		if dist > r {
			continue
		}
		hits = append(hits, hit{entry: entry, dist: dist})
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].dist < hits[j].dist })
	out := make([]weapon.Creature, len(hits))
	for i, h := range hits {
		out[i] = &creatureHandle{ecs: q.ecs, entry: h.entry}
	}
	return out
}

type creatureHandle struct {
	ecs   *ecs.ECS
	entry *donburi.Entry
}

func (c *creatureHandle) Alive() bool {
	return c.entry.Valid() && components.Creature.Get(c.entry).Alive
}

func (c *creatureHandle) SetRagdollState(s weapon.RagdollState) {
	if c.entry.Valid() {
		components.Creature.Get(c.entry).Ragdoll = s
	}
}

// Parts returns a snapshot; severing does not change it.
func (c *creatureHandle) Parts() []weapon.BodyPart {
	if !c.entry.Valid() {
		return nil
	}
	parts := components.Ragdoll.Get(c.entry).Parts
	out := make([]weapon.BodyPart, len(parts))
	for i, p := range parts {
		out[i] = &partHandle{part: p}
	}
	return out
}

// Sever detaches a part by removing the joint to its parent.
func (c *creatureHandle) Sever(part weapon.BodyPart) {
	ph, ok := part.(*partHandle)
	if !ok || ph.part.Severed {
		return
	}
	ph.part.Severed = true
	if ph.part.Joint == nil {
		return
	}
	if spaceEntry, ok := components.PhysicsSpace.First(c.ecs.World); ok {
		space := components.PhysicsSpace.Get(spaceEntry).Space
		if space.ContainsConstraint(ph.part.Joint) {
			space.RemoveConstraint(ph.part.Joint)
		}
	}
}

// Kill turns a living creature into a corpse that is removed later.
func (c *creatureHandle) Kill() {
	if !c.entry.Valid() {
		return
	}
	data := components.Creature.Get(c.entry)
	if !data.Alive {
		return
	}
	data.Alive = false
	data.Ragdoll = weapon.RagdollInert
	if !c.entry.HasComponent(components.Death) {
		c.entry.AddComponent(components.Death)
	}
	components.Death.SetValue(c.entry, components.DeathData{Timer: cfg.Creature.CorpseLifetime})
}

type partHandle struct {
	part *components.PartData
}

func (p *partHandle) Type() weapon.PartType { return p.part.Type }
func (p *partHandle) Important() bool       { return p.part.Type.Important() }

// ApplyExplosionImpulse pushes the part's body away from the blast.
func (p *partHandle) ApplyExplosionImpulse(i weapon.Impulse) {
	body := p.part.Body
	pos := body.Position()
	dvX, dvY := gamemath.ExplosionVelocityChange(i.Force, i.Origin.X, i.Origin.Y, i.Radius, i.UpwardsModifier, toUnits(pos.X), toUnits(pos.Y))
	dv := cp.Vector{X: toPixels(dvX), Y: toPixels(dvY)}

	switch i.Mode {
	case weapon.ForceModeImpulse:
		dv = dv.Mult(1 / body.Mass())
	case weapon.ForceModeForce:
		// A force acts for one fixed step.
		dv = dv.Mult(1 / (body.Mass() * float64(cfg.C.TickRate)))
	}
	body.SetVelocityVector(body.Velocity().Add(dv))
}
