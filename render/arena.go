package render

import (
	"image/color"
	"math"

	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/gamemath"
	"github.com/automoto/dogma/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	background  = color.RGBA{18, 18, 24, 255}
	floor       = color.RGBA{60, 60, 70, 255}
	playerColor = color.RGBA{90, 140, 255, 255}
	aliveColor  = color.RGBA{200, 200, 200, 255}
	wobblyColor = color.RGBA{230, 200, 80, 255}
	deadColor   = color.RGBA{140, 40, 40, 255}
	effectColor = color.RGBA{255, 160, 60, 200}
	idleEffect  = color.RGBA{120, 120, 120, 90}
)

// DrawArena clears the screen and draws the floor line and every ragdoll.
func DrawArena(ecs *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(background)

	w := float32(screen.Bounds().Dx())
	spawnY := float32(0)
	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		if y := float32(obj.Y + obj.H); y > spawnY {
			spawnY = y
		}
	})
	if spawnY > 0 {
		vector.FillRect(screen, 0, spawnY, w, 2, floor, false)
	}

	components.Creature.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Creature.Get(e)
		clr := creatureColor(c)
		for _, p := range components.Ragdoll.Get(e).Parts {
			drawPart(screen, p, clr)
		}
	})
}

func creatureColor(c *components.CreatureData) color.RGBA {
	switch {
	case !c.Alive:
		return deadColor
	case c.Player:
		return playerColor
	case c.Ragdoll == weapon.RagdollDestabilized:
		return wobblyColor
	}
	return aliveColor
}

// drawPart outlines the part's rotated box. The head is drawn as a disc.
func drawPart(screen *ebiten.Image, p *components.PartData, clr color.RGBA) {
	if p.Severed {
		clr = color.RGBA{clr.R / 2, clr.G / 2, clr.B / 2, 255}
	}
	pos := p.Body.Position()
	if p.Type == weapon.PartHead {
		vector.FillCircle(screen, float32(pos.X), float32(pos.Y), float32(math.Min(p.W, p.H)/2), clr, true)
		return
	}

	sin, cos := math.Sincos(p.Body.Angle())
	hw, hh := p.W/2, p.H/2
	corners := [4][2]float64{{-hw, -hh}, {hw, -hh}, {hw, hh}, {-hw, hh}}
	var pts [4][2]float32
	for i, c := range corners {
		pts[i] = [2]float32{
			float32(pos.X + c[0]*cos - c[1]*sin),
			float32(pos.Y + c[0]*sin + c[1]*cos),
		}
	}
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(screen, a[0], a[1], b[0], b[1], 1.5, clr, true)
	}
}

// DrawItems draws each weapon blade tinted by its emissive colour.
func DrawItems(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		item := components.Item.Get(e)
		obj := components.Object.Get(e)

		r, g, b := gamemath.ToneMap(item.Emission).RGB255()
		blade := color.RGBA{r, g, b, 255}
		vector.FillRect(screen, float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H), blade, false)

		if item.Grip() == 0 {
			return
		}
		// Hilt marker per hand on the item.
		for hand, held := range item.Held {
			if held {
				x := float32(obj.X) + float32(obj.W)/2
				y := float32(obj.Y+obj.H) - float32(hand)*5
				vector.FillCircle(screen, x, y, 2, playerColor, true)
			}
		}
	})
}

// DrawEffects draws effect instances; playing ones are brighter.
func DrawEffects(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		obj := components.Object.Get(e)
		clr := idleEffect
		if fx.Playing {
			clr = effectColor
		} else if fx.Continuous && !cfg.Debug.ShowOverlay {
			return
		}
		vector.FillCircle(screen, float32(obj.X+obj.W/2), float32(obj.Y+obj.H/2), float32(obj.W/2), clr, true)
	})
}
