package weapon

import "github.com/automoto/dogma/config"

// BladeEnhancer swaps the blade between its default and enhanced collision
// and damage profiles and runs the trail while enhanced.
type BladeEnhancer struct {
	item     Item
	profile  config.BladeProfileConfig
	trail    Effect
	enhanced bool
}

func NewBladeEnhancer(item Item, profile config.BladeProfileConfig, trail Effect) *BladeEnhancer {
	return &BladeEnhancer{
		item:    item,
		profile: profile,
		trail:   orNop(trail),
	}
}

// SetEnhanced selects the enhanced profile when active is true and the
// default one otherwise. Groups or damagers that are missing or already on
// the requested variant are left alone.
func (b *BladeEnhancer) SetEnhanced(active bool) {
	group := b.profile.ColliderGroupDefault
	if active {
		group = b.profile.ColliderGroupEnhanced
	}
	for _, g := range b.item.ColliderGroups() {
		if g.Name() == b.profile.ColliderGroupName {
			g.SetData(group)
		}
	}

	for _, handler := range b.item.CollisionHandlers() {
		for _, d := range handler.Damagers() {
			if next, ok := b.swapFor(d.DataID(), active); ok {
				d.Load(next)
			}
		}
	}

	if active {
		if !b.trail.IsPlaying() {
			b.trail.Play()
		}
	} else {
		b.trail.Stop()
	}
	b.enhanced = active
}

// swapFor maps a damager id to the variant it should load. The id is read
// once so a swapped damager is never swapped a second time in the same pass.
func (b *BladeEnhancer) swapFor(id string, active bool) (string, bool) {
	p := b.profile
	if active {
		switch id {
		case p.SlashDefault:
			return p.SlashEnhanced, true
		case p.PierceDefault:
			return p.PierceEnhanced, true
		}
		return "", false
	}
	switch id {
	case p.SlashEnhanced:
		return p.SlashDefault, true
	case p.PierceEnhanced:
		return p.PierceDefault, true
	}
	return "", false
}

// Enhanced reports the last requested profile.
func (b *BladeEnhancer) Enhanced() bool {
	return b.enhanced
}
