package components

import "github.com/yohamta/donburi"

// EffectData is a spawned cue or a continuous visual. Continuous effects
// follow an item and are only toggled, never expired.
type EffectData struct {
	ID         string
	Playing    bool
	Plays      int
	Continuous bool
	Follow     *donburi.Entry
}

var Effect = donburi.NewComponentType[EffectData]()

// AutoDestroyData removes an entity once its lifetime runs out.
type AutoDestroyData struct {
	Remaining float64 // seconds
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
