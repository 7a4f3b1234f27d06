package weapon

import "github.com/lucasb-eyer/go-colorful"

// Vector is a world-space position. Screen coordinates: +Y points down.
type Vector struct {
	X, Y float64
}

// Hand identifies the appendage holding the item.
type Hand int

const (
	HandLeft Hand = iota
	HandRight
)

func (h Hand) String() string {
	if h == HandRight {
		return "right"
	}
	return "left"
}

// Action is the kind of held-item button notification.
type Action int

const (
	ActionUseStart Action = iota
	ActionUseStop
	ActionAlternateUseStart
	ActionAlternateUseStop
)

// EventTime is the phase of a despawn notification.
type EventTime int

const (
	OnStart EventTime = iota
	OnEnd
)

// RagdollState is the physical state requested on a creature's ragdoll.
type RagdollState int

const (
	RagdollStanding RagdollState = iota
	RagdollDestabilized
	RagdollInert
)

// ForceMode selects how an impulse is applied to a body.
type ForceMode int

const (
	ForceModeForce ForceMode = iota
	ForceModeImpulse
	// ForceModeVelocityChange adds directly to velocity and ignores mass.
	ForceModeVelocityChange
)

// PartType classifies a ragdoll body part.
type PartType int

const (
	PartHead PartType = iota
	PartNeck
	PartTorso
	PartLeftArm
	PartRightArm
	PartLeftHand
	PartRightHand
	PartLeftLeg
	PartRightLeg
	PartLeftFoot
	PartRightFoot
)

var partNames = map[PartType]string{
	PartHead:      "head",
	PartNeck:      "neck",
	PartTorso:     "torso",
	PartLeftArm:   "left_arm",
	PartRightArm:  "right_arm",
	PartLeftHand:  "left_hand",
	PartRightHand: "right_hand",
	PartLeftLeg:   "left_leg",
	PartRightLeg:  "right_leg",
	PartLeftFoot:  "left_foot",
	PartRightFoot: "right_foot",
}

func (p PartType) String() string {
	if name, ok := partNames[p]; ok {
		return name
	}
	return "unknown"
}

// Important reports whether the part belongs to the head, hand, foot or torso
// class. Hosts may use it as their classification.
func (p PartType) Important() bool {
	switch p {
	case PartHead, PartNeck, PartTorso, PartLeftHand, PartRightHand, PartLeftFoot, PartRightFoot:
		return true
	}
	return false
}

// Impulse describes an explosion push applied to one body part.
type Impulse struct {
	Force           float64
	Origin          Vector
	Radius          float64
	UpwardsModifier float64
	Mode            ForceMode
}

// Listener receives the held item's notifications.
type Listener interface {
	OnGrab(hand Hand)
	OnRelease(hand Hand, throwing bool)
	OnHeldAction(hand Hand, action Action)
	OnDespawn(t EventTime)
}

// Events is the host item's notification source. The returned function
// removes the subscription; calling it more than once is allowed.
type Events interface {
	Subscribe(l Listener) (unsubscribe func())
}

// Effect is a playable effect instance or a continuous particle reference.
type Effect interface {
	Play()
	Stop()
	IsPlaying() bool
}

// EffectSpawner creates effect instances by catalog id.
type EffectSpawner interface {
	Spawn(id string, at Vector) Effect
}

// Material exposes the single emissive colour property the weapon drives.
type Material interface {
	EmissionColor() colorful.Color
	SetEmissionColor(c colorful.Color)
}

// ColliderGroup is a named group whose data is referenced by id.
type ColliderGroup interface {
	Name() string
	DataID() string
	SetData(id string)
}

// Damager is a damage profile slot referenced by id.
type Damager interface {
	DataID() string
	Load(id string)
}

// CollisionHandler owns a set of damagers.
type CollisionHandler interface {
	Damagers() []Damager
}

// Item is the held weapon as seen by the controller.
type Item interface {
	Position() Vector
	ColliderGroups() []ColliderGroup
	CollisionHandlers() []CollisionHandler
	// Reference returns a continuous visual attached to the item, or nil.
	Reference(name string) Effect
	Material() Material
}

// AssetLoader loads asset durations asynchronously. done may run on any
// goroutine, before or after LoadDurationAsync returns, or never.
type AssetLoader interface {
	LoadDurationAsync(assetID string, done func(seconds float64))
}

// CreatureQuery finds simulated creatures around a point.
type CreatureQuery interface {
	CreaturesInRadius(center Vector, radius float64, includeAlive, includeDead, includePlayer bool) []Creature
}

// Creature is a simulated body that can be pushed, cut and killed.
type Creature interface {
	Alive() bool
	SetRagdollState(s RagdollState)
	Parts() []BodyPart
	Sever(part BodyPart)
	Kill()
}

// BodyPart is one ragdoll part.
type BodyPart interface {
	Type() PartType
	Important() bool
	ApplyExplosionImpulse(i Impulse)
}

type nopEffect struct{}

func (nopEffect) Play()           {}
func (nopEffect) Stop()           {}
func (nopEffect) IsPlaying() bool { return false }

func orNop(e Effect) Effect {
	if e == nil {
		return nopEffect{}
	}
	return e
}
