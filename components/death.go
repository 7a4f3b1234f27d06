package components

import "github.com/yohamta/donburi"

// DeathData marks a corpse. Timer counts down in seconds; at zero the
// creature is removed from the world.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
