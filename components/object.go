package components

import (
	"github.com/jakecoffman/cp"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

type ObjectData struct {
	*resolv.Object
}

var Object = donburi.NewComponentType[ObjectData]()

// Space is the resolv broadphase shared by hulls, items and effects.
var Space = donburi.NewComponentType[resolv.Space]()

// PhysicsSpaceData wraps the Chipmunk space every ragdoll part lives in.
type PhysicsSpaceData struct {
	*cp.Space
}

var PhysicsSpace = donburi.NewComponentType[PhysicsSpaceData]()
