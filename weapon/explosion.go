package weapon

import "github.com/automoto/dogma/config"

// ExplosionEffect pushes, dismembers and kills every creature near the
// blast, the wielder excepted.
type ExplosionEffect struct {
	effects   EffectSpawner
	creatures CreatureQuery
	effectID  string
	cfg       config.ExplosionConfig
}

func NewExplosionEffect(effects EffectSpawner, creatures CreatureQuery, effectID string, cfg config.ExplosionConfig) *ExplosionEffect {
	return &ExplosionEffect{
		effects:   effects,
		creatures: creatures,
		effectID:  effectID,
		cfg:       cfg,
	}
}

// Trigger detonates at origin and returns the number of creatures hit.
func (e *ExplosionEffect) Trigger(origin Vector) int {
	if e.effects != nil {
		if fx := e.effects.Spawn(e.effectID, origin); fx != nil {
			fx.Play()
		}
	}
	if e.creatures == nil {
		return 0
	}

	impulse := Impulse{
		Force:           e.cfg.Force,
		Origin:          origin,
		Radius:          e.cfg.FalloffRadius,
		UpwardsModifier: e.cfg.UpwardsModifier,
		Mode:            ForceModeVelocityChange,
	}

	hit := e.creatures.CreaturesInRadius(origin, e.cfg.QueryRadius, true, true, false)
	for _, c := range hit {
		if c.Alive() {
			c.SetRagdollState(RagdollDestabilized)
		}
		for _, part := range c.Parts() {
			part.ApplyExplosionImpulse(impulse)
			if part.Important() && part.Type() != PartTorso {
				c.Sever(part)
			}
		}
		c.Kill()
	}
	return len(hit)
}
