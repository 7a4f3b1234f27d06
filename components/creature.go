package components

import (
	"github.com/automoto/dogma/weapon"
	"github.com/jakecoffman/cp"
	"github.com/yohamta/donburi"
)

type CreatureData struct {
	Name    string
	Alive   bool
	Player  bool
	Ragdoll weapon.RagdollState
}

var Creature = donburi.NewComponentType[CreatureData]()

// PartData is one ragdoll body. Joint ties it to its parent part and is nil
// for the torso.
type PartData struct {
	Type    weapon.PartType
	Body    *cp.Body
	Shape   *cp.Shape
	Joint   *cp.Constraint
	W, H    float64
	Severed bool
}

type RagdollData struct {
	Parts []*PartData
}

// Part returns the part of the given type, or nil.
func (r *RagdollData) Part(t weapon.PartType) *PartData {
	for _, p := range r.Parts {
		if p.Type == t {
			return p
		}
	}
	return nil
}

var Ragdoll = donburi.NewComponentType[RagdollData]()
