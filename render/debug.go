package render

import (
	"image/color"

	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/fonts"
	"github.com/automoto/dogma/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawDebug outlines every resolv object and the explosion query radius when
// the overlay is on.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowOverlay {
		return
	}
	spaceEntry, ok := components.Space.First(ecs.World)
	if !ok {
		return
	}
	space := components.Space.Get(spaceEntry)
	mono := fonts.Mono.Get()

	for _, obj := range space.Objects() {
		c := color.RGBA{0, 255, 255, 255}
		if obj.HasTags(tags.ResolvPlayer) {
			c = color.RGBA{0, 0, 255, 255}
		} else if obj.HasTags(tags.ResolvCreature) {
			c = color.RGBA{255, 0, 0, 255}
		} else if obj.HasTags(tags.ResolvItem) {
			c = color.RGBA{0, 255, 0, 255}
		} else if obj.HasTags(tags.ResolvEffect) {
			c = color.RGBA{255, 0, 255, 255}
		}
		x, y, w, h := float32(obj.X), float32(obj.Y), float32(obj.W), float32(obj.H)
		vector.StrokeRect(screen, x, y, w, h, 1, c, false)
	}

	components.Effect.Each(ecs.World, func(e *donburi.Entry) {
		fx := components.Effect.Get(e)
		if fx.Continuous {
			return
		}
		obj := components.Object.Get(e)
		text.Draw(screen, fx.ID, mono, int(obj.X+obj.W), int(obj.Y), color.RGBA{255, 0, 255, 255})
	})

	components.Item.Each(ecs.World, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		r := float32(cfg.Weapon.Explosion.QueryRadius * cfg.Arena.PixelsPerUnit)
		vector.StrokeCircle(screen, float32(obj.X+obj.W/2), float32(obj.Y+obj.H/2), r, 1, color.RGBA{255, 110, 40, 120}, true)
	})
}
