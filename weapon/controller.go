package weapon

import (
	"log"

	"github.com/automoto/dogma/config"
)

// Deps are the host collaborators a Controller talks to. Assets and
// Creatures may be nil; the weapon then keeps its default durations and the
// explosion hits nothing.
type Deps struct {
	Item      Item
	Events    Events
	Effects   EffectSpawner
	Assets    AssetLoader
	Creatures CreatureQuery
}

// Controller is the weapon's per-tick state machine. Update and the
// Listener methods must be called from the same goroutine; only the
// calibrated durations are written from elsewhere.
type Controller struct {
	cfg     config.WeaponConfig
	item    Item
	effects EffectSpawner

	mode          Mode
	previous      Mode
	timeInMode    float64
	cooldownTimer float64

	grip      GripTracker
	input     InputEdgeTracker
	durations *Durations

	blade     *BladeEnhancer
	explosion *ExplosionEffect
	visual    *VisualModulator

	smoke          Effect
	explosionSmoke Effect
	overcharge     Effect

	unsubscribe func()
	destroyed   bool
}

// New builds a controller in Idle, stops the continuous visuals, subscribes
// to the item's notifications and starts duration calibration.
func New(d Deps, cfg config.WeaponConfig) *Controller {
	c := &Controller{
		cfg:       cfg,
		item:      d.Item,
		effects:   d.Effects,
		mode:      Idle,
		previous:  Idle,
		durations: NewDurations(cfg.MaxSharpDuration, cfg.SharpCooldownDuration, cfg.OverchargedCooldownDuration),
	}

	refs := cfg.References
	c.smoke = orNop(d.Item.Reference(refs.Smoke))
	c.explosionSmoke = orNop(d.Item.Reference(refs.ExplosionSmoke))
	c.overcharge = orNop(d.Item.Reference(refs.Overcharge))
	trail := orNop(d.Item.Reference(refs.Trail))
	for _, e := range []Effect{trail, c.smoke, c.explosionSmoke, c.overcharge} {
		e.Stop()
	}

	c.blade = NewBladeEnhancer(d.Item, cfg.Profile, trail)
	c.explosion = NewExplosionEffect(d.Effects, d.Creatures, cfg.Effects.Explosion, cfg.Explosion)
	c.visual = NewVisualModulator(d.Item.Material(), cfg.OverheatColor.Color(), cfg.OscillationPeriod, cfg.FadeDuration)

	if d.Events != nil {
		c.unsubscribe = d.Events.Subscribe(c)
	}

	NewTimerCalibrator(c.durations).Calibrate(d.Assets, cfg.Calibration.SharpDurationAsset, cfg.Calibration.SharpCooldownAsset)

	return c
}

// Update advances the weapon by dt seconds.
func (c *Controller) Update(dt float64) {
	if c.destroyed {
		return
	}
	c.timeInMode += dt
	c.visual.Tick(dt)

	if during, ok := whileIn[c.mode]; ok {
		during(c)
	}

	for _, t := range transitions {
		if t.from != c.mode || !t.guard(c) {
			continue
		}
		if t.action != nil {
			t.action(c)
		}
		c.switchMode(t.to)
		if enter, ok := entries[edge{from: t.from, to: t.to}]; ok {
			enter(c)
		}
		return
	}
}

func (c *Controller) switchMode(next Mode) {
	if config.Debug.LogTransitions {
		log.Printf("weapon: %s -> %s after %.2fs", c.mode, next, c.timeInMode)
	}
	c.previous = c.mode
	c.mode = next
	c.timeInMode = 0
}

func (c *Controller) playCue(id string) {
	if c.effects == nil || id == "" {
		return
	}
	if fx := c.effects.Spawn(id, c.item.Position()); fx != nil {
		fx.Play()
	}
}

// OnGrab implements Listener.
func (c *Controller) OnGrab(hand Hand) {
	c.grip.Grab()
}

// OnRelease implements Listener. Throwing counts as a release.
func (c *Controller) OnRelease(hand Hand, throwing bool) {
	c.grip.Release()
}

// OnHeldAction implements Listener. Only the alternate use button matters.
func (c *Controller) OnHeldAction(hand Hand, action Action) {
	switch action {
	case ActionAlternateUseStart:
		c.input.Press()
	case ActionAlternateUseStop:
		c.input.Release()
	}
}

// OnDespawn implements Listener. Teardown happens at the start of despawn.
func (c *Controller) OnDespawn(t EventTime) {
	if t == OnStart {
		c.Destroy()
	}
}

// Destroy releases the subscriptions and abandons any pending fade. The
// controller ignores Update afterwards. Safe to call more than once.
func (c *Controller) Destroy() {
	if c.destroyed {
		return
	}
	c.destroyed = true
	if c.unsubscribe != nil {
		c.unsubscribe()
		c.unsubscribe = nil
	}
	c.visual.Cancel()
}

func (c *Controller) Mode() Mode                  { return c.mode }
func (c *Controller) PreviousMode() Mode          { return c.previous }
func (c *Controller) TimeInMode() float64         { return c.timeInMode }
func (c *Controller) CooldownTimer() float64      { return c.cooldownTimer }
func (c *Controller) Grip() int                   { return c.grip.Count() }
func (c *Controller) Pressed() bool               { return c.input.Pressed() }
func (c *Controller) Armed() bool                 { return c.input.Armed() }
func (c *Controller) Durations() *Durations       { return c.durations }
func (c *Controller) Enhanced() bool              { return c.blade.Enhanced() }
func (c *Controller) Fading() bool                { return c.visual.Fading() }
func (c *Controller) Destroyed() bool             { return c.destroyed }
func (c *Controller) Visual() *VisualModulator    { return c.visual }
func (c *Controller) Explosion() *ExplosionEffect { return c.explosion }
