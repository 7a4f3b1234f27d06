package weapon

// transition is one row of the mode table: when the weapon is in from and
// guard holds, action runs and the weapon switches to to.
type transition struct {
	from   Mode
	to     Mode
	guard  func(c *Controller) bool
	action func(c *Controller)
}

// edge keys entry actions by the mode left and the mode entered.
type edge struct {
	from, to Mode
}

// Rows are evaluated in order and at most one fires per tick. The single
// hand row precedes the two hand row; grip makes them exclusive anyway.
var transitions = []transition{
	{from: Idle, to: Sharp, guard: (*Controller).oneHandedPress, action: (*Controller).activate},
	{from: Idle, to: Overcharged, guard: (*Controller).twoHandedPress, action: (*Controller).charge},
	{from: Sharp, to: Coolingdown, guard: (*Controller).sharpExpired, action: (*Controller).overheat},
	{from: Overcharged, to: Coolingdown, guard: (*Controller).detonationRequested, action: (*Controller).detonate},
	{from: Coolingdown, to: Idle, guard: (*Controller).cooldownElapsed, action: (*Controller).restore},
}

// whileIn runs every tick spent in a mode, before its transitions.
var whileIn = map[Mode]func(c *Controller){
	Overcharged: (*Controller).glow,
}

// entries run once, right after the switch.
var entries = map[edge]func(c *Controller){
	{from: Sharp, to: Coolingdown}:       (*Controller).enterCooldownFromSharp,
	{from: Overcharged, to: Coolingdown}: (*Controller).enterCooldownFromOvercharged,
}

func (c *Controller) oneHandedPress() bool {
	return c.grip.Count() == 1 && c.input.Pressed()
}

func (c *Controller) twoHandedPress() bool {
	return c.grip.Count() > 1 && c.input.Pressed()
}

func (c *Controller) sharpExpired() bool {
	return c.timeInMode > c.durations.MaxSharp()
}

// detonationRequested needs a release after entering Overcharged; the press
// that entered the mode is latched by charge.
func (c *Controller) detonationRequested() bool {
	return c.input.Triggered()
}

func (c *Controller) cooldownElapsed() bool {
	return c.timeInMode > c.cooldownTimer
}

func (c *Controller) activate() {
	c.playCue(c.cfg.Effects.Activation)
	c.blade.SetEnhanced(true)
}

func (c *Controller) charge() {
	c.input.Arm()
	// A new charge owns the emission colour.
	c.visual.Cancel()
	c.playCue(c.cfg.Effects.Charge)
	c.overcharge.Play()
}

func (c *Controller) overheat() {
	c.playCue(c.cfg.Effects.Overheat)
}

func (c *Controller) glow() {
	c.visual.Glow(c.timeInMode)
}

func (c *Controller) detonate() {
	c.overcharge.Stop()
	c.explosion.Trigger(c.item.Position())
	c.visual.FadeToOriginal()
}

func (c *Controller) enterCooldownFromSharp() {
	c.blade.SetEnhanced(false)
	c.cooldownTimer = c.durations.SharpCooldown()
	c.smoke.Play()
}

func (c *Controller) enterCooldownFromOvercharged() {
	c.cooldownTimer = c.durations.OverchargedCooldown()
	c.explosionSmoke.Play()
}

func (c *Controller) restore() {
	c.cooldownTimer = 0
	c.playCue(c.cfg.Effects.Restored)
	if c.smoke.IsPlaying() {
		c.smoke.Stop()
	}
	if c.explosionSmoke.IsPlaying() {
		c.explosionSmoke.Stop()
	}
}
