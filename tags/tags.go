package tags

import "github.com/yohamta/donburi"

var (
	Player   = donburi.NewTag().SetName("Player")
	Creature = donburi.NewTag().SetName("Creature")
	Item     = donburi.NewTag().SetName("Item")
	Effect   = donburi.NewTag().SetName("Effect")
)

// Resolv tags for broadphase queries
const (
	ResolvCreature = "creature"
	ResolvPlayer   = "player"
	ResolvItem     = "item"
	ResolvEffect   = "effect"
	ResolvQuery    = "query"
)
