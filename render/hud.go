package render

import (
	"fmt"
	"image/color"

	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/fonts"
	"github.com/automoto/dogma/tags"
	"github.com/automoto/dogma/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudMargin     = 8
	hudLineHeight = 14
	hudWidth      = 210
)

var (
	white     = color.RGBA{255, 255, 255, 255}
	dim       = color.RGBA{160, 160, 170, 255}
	panel     = color.RGBA{0, 0, 0, 170}
	hotColor  = color.RGBA{255, 110, 40, 255}
	coolColor = color.RGBA{110, 200, 255, 255}
)

var modeColors = map[weapon.Mode]color.RGBA{
	weapon.Idle:        white,
	weapon.Sharp:       coolColor,
	weapon.Overcharged: hotColor,
	weapon.Coolingdown: dim,
}

// DrawHUD shows the weapon state in the top-left corner and the key hints at
// the bottom.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	face := fonts.HUD.Get()
	small := fonts.HUDSmall.Get()

	vector.FillRect(screen, hudMargin, hudMargin, hudWidth, hudLineHeight*5+8, panel, false)

	x, y := hudMargin+6, hudMargin+hudLineHeight
	weaponEntry, ok := components.Weapon.First(ecs.World)
	if !ok || components.Weapon.Get(weaponEntry).Controller.Destroyed() {
		text.Draw(screen, "weapon despawned (R to respawn)", face, x, y, dim)
	} else {
		ctrl := components.Weapon.Get(weaponEntry).Controller
		d := ctrl.Durations()

		text.Draw(screen, fmt.Sprintf("%s  %.1fs", ctrl.Mode(), ctrl.TimeInMode()), face, x, y, modeColors[ctrl.Mode()])
		y += hudLineHeight
		text.Draw(screen, fmt.Sprintf("grip %d  pressed %t  armed %t", ctrl.Grip(), ctrl.Pressed(), ctrl.Armed()), small, x, y, white)
		y += hudLineHeight
		text.Draw(screen, fmt.Sprintf("sharp %.2fs  cooldown %.2fs", d.MaxSharp(), d.SharpCooldown()), small, x, y, white)
		y += hudLineHeight
		text.Draw(screen, fmt.Sprintf("overcharged cooldown %.2fs", d.OverchargedCooldown()), small, x, y, white)
		y += hudLineHeight
		if ctrl.Mode() == weapon.Coolingdown {
			text.Draw(screen, fmt.Sprintf("cooling %.1f / %.1fs", ctrl.TimeInMode(), ctrl.CooldownTimer()), small, x, y, dim)
		}
	}

	alive := 0
	tags.Creature.Each(ecs.World, func(e *donburi.Entry) {
		if c := components.Creature.Get(e); c.Alive && !c.Player {
			alive++
		}
	})
	status := fmt.Sprintf("creatures alive %d", alive)
	if clockEntry, ok := components.Clock.First(ecs.World); ok {
		clock := components.Clock.Get(clockEntry)
		status += fmt.Sprintf("  t=%.1fs  x%.2f", clock.Elapsed, clock.TimeScale)
	}
	text.Draw(screen, status, small, hudMargin, cfg.C.Height-hudLineHeight-hudMargin, dim)
	text.Draw(screen, "Q/E grip  SPACE use  T throw  R respawn  F1 debug  +/- speed", small, hudMargin, cfg.C.Height-hudMargin, dim)
}
