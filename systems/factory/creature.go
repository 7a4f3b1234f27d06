package factory

import (
	"github.com/automoto/dogma/archetypes"
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/tags"
	"github.com/automoto/dogma/weapon"
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// TorsoOffsetY is the torso centre relative to the hull centre.
const TorsoOffsetY = -6

// partLayout places a ragdoll part relative to the hull centre, in pixels.
// The joint to parent sits halfway between the two part centres.
type partLayout struct {
	part   weapon.PartType
	x, y   float64
	w, h   float64
	parent weapon.PartType
}

// Parents precede children so joints can be made in one pass.
var ragdollLayout = []partLayout{
	{weapon.PartTorso, 0, TorsoOffsetY, 12, 20, weapon.PartTorso},
	{weapon.PartNeck, 0, -18, 4, 4, weapon.PartTorso},
	{weapon.PartHead, 0, -25, 10, 10, weapon.PartNeck},
	{weapon.PartLeftArm, -9, -8, 4, 12, weapon.PartTorso},
	{weapon.PartRightArm, 9, -8, 4, 12, weapon.PartTorso},
	{weapon.PartLeftHand, -9, 1, 4, 4, weapon.PartLeftArm},
	{weapon.PartRightHand, 9, 1, 4, 4, weapon.PartRightArm},
	{weapon.PartLeftLeg, -4, 12, 5, 16, weapon.PartTorso},
	{weapon.PartRightLeg, 4, 12, 5, 16, weapon.PartTorso},
	{weapon.PartLeftFoot, -4, 22, 6, 4, weapon.PartLeftLeg},
	{weapon.PartRightFoot, 4, 22, 6, 4, weapon.PartRightLeg},
}

// CreateCreature spawns a creature standing with its feet at (x, y). Dead
// creatures start as inert corpses.
func CreateCreature(ecs *ecs.ECS, name string, x, y float64, dead bool) *donburi.Entry {
	return createCreature(ecs, name, x, y, dead, false)
}

// CreatePlayer spawns the creature that wields the weapon.
func CreatePlayer(ecs *ecs.ECS, x, y float64) *donburi.Entry {
	return createCreature(ecs, "player", x, y, false, true)
}

func createCreature(ecs *ecs.ECS, name string, x, y float64, dead, player bool) *donburi.Entry {
	var creature *donburi.Entry
	if player {
		creature = archetypes.Creature.Spawn(ecs, tags.Player)
	} else {
		creature = archetypes.Creature.Spawn(ecs)
	}

	w, h := cfg.Creature.HullWidth, cfg.Creature.HullHeight
	obj := resolv.NewObject(x-w/2, y-h, w, h)
	obj.AddTags(tags.ResolvCreature)
	if player {
		obj.AddTags(tags.ResolvPlayer)
	}
	obj.Data = creature
	components.Object.SetValue(creature, components.ObjectData{Object: obj})
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}

	state := weapon.RagdollStanding
	if dead {
		state = weapon.RagdollInert
	}
	components.Creature.SetValue(creature, components.CreatureData{
		Name:    name,
		Alive:   !dead,
		Player:  player,
		Ragdoll: state,
	})

	cx, cy := x, y-h/2
	components.Ragdoll.SetValue(creature, components.RagdollData{
		Parts: buildRagdoll(ecs, uint(creature.Entity().Id()), cx, cy),
	})

	return creature
}

func buildRagdoll(ecs *ecs.ECS, group uint, cx, cy float64) []*components.PartData {
	spaceEntry, ok := components.PhysicsSpace.First(ecs.World)
	if !ok {
		return nil
	}
	space := components.PhysicsSpace.Get(spaceEntry).Space

	// Parts of one creature never collide with each other.
	filter := cp.NewShapeFilter(group+1, cp.ALL_CATEGORIES, cp.ALL_CATEGORIES)

	parts := make([]*components.PartData, 0, len(ragdollLayout))
	byType := make(map[weapon.PartType]*components.PartData, len(ragdollLayout))
	centres := make(map[weapon.PartType]cp.Vector, len(ragdollLayout))

	for _, l := range ragdollLayout {
		mass := cfg.Physics.PartMass
		body := space.AddBody(cp.NewBody(mass, cp.MomentForBox(mass, l.w, l.h)))
		centre := cp.Vector{X: cx + l.x, Y: cy + l.y}
		body.SetPosition(centre)

		shape := space.AddShape(cp.NewBox(body, l.w, l.h, 0))
		shape.SetFilter(filter)

		part := &components.PartData{
			Type:  l.part,
			Body:  body,
			Shape: shape,
			W:     l.w,
			H:     l.h,
		}
		body.UserData = part

		if parent, ok := byType[l.parent]; ok && l.parent != l.part {
			pc := centres[l.parent]
			pivot := cp.Vector{X: (pc.X + centre.X) / 2, Y: (pc.Y + centre.Y) / 2}
			part.Joint = space.AddConstraint(cp.NewPivotJoint(parent.Body, body, pivot))
		}

		byType[l.part] = part
		centres[l.part] = centre
		parts = append(parts, part)
	}
	return parts
}

// DestroyCreature removes the creature's bodies, hull and entity.
func DestroyCreature(ecs *ecs.ECS, e *donburi.Entry) {
	if e == nil || !e.Valid() {
		return
	}
	if spaceEntry, ok := components.PhysicsSpace.First(ecs.World); ok {
		space := components.PhysicsSpace.Get(spaceEntry).Space
		parts := components.Ragdoll.Get(e).Parts
		// Joints first, a joint may still reference a body removed below.
		for _, p := range parts {
			if p.Joint != nil && space.ContainsConstraint(p.Joint) {
				space.RemoveConstraint(p.Joint)
			}
		}
		for _, p := range parts {
			if space.ContainsShape(p.Shape) {
				space.RemoveShape(p.Shape)
			}
			if space.ContainsBody(p.Body) {
				space.RemoveBody(p.Body)
			}
		}
	}
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		if obj := components.Object.Get(e); obj != nil && obj.Object != nil {
			components.Space.Get(spaceEntry).Remove(obj.Object)
		}
	}
	ecs.World.Remove(e.Entity())
}
