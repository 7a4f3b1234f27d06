package main

import (
	"flag"
	"log"
	"path/filepath"
	"time"

	"github.com/automoto/dogma/assets"
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/config"
	"github.com/automoto/dogma/fonts"
	"github.com/automoto/dogma/render"
	"github.com/automoto/dogma/scenes"
	"github.com/automoto/dogma/systems"
	"github.com/automoto/dogma/weapon"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/yohamta/donburi/ecs"
)

const (
	minTimeScale = 0.125
	maxTimeScale = 4
)

type Game struct {
	scene      *scenes.ArenaScene
	opts       scenes.ArenaOptions
	settings   *systems.SavedSettings
	watcher    *config.Watcher
	configPath string
}

func NewGame(settings *systems.SavedSettings, configPath string) (*Game, error) {
	catalog, err := assets.DefaultCatalog()
	if err != nil {
		return nil, err
	}

	g := &Game{
		settings:   settings,
		configPath: configPath,
		opts: scenes.ArenaOptions{
			Loader:    assets.NewDurationLoader(catalog, time.Duration(config.Arena.AssetLatency*float64(time.Second))),
			Catalog:   catalog,
			TimeScale: settings.TimeScale,
			Configure: addRenderers,
		},
	}

	if configPath != "" {
		w, err := config.NewWatcher(filepath.Dir(configPath))
		if err != nil {
			log.Printf("Warning: Could not watch %s: %v", configPath, err)
		} else {
			g.watcher = w
		}
	}

	g.scene, err = scenes.NewArenaScene(g.opts)
	if err != nil {
		return nil, err
	}
	return g, nil
}

// addRenderers registers the draw layers. The scene calls it for every ECS
// it builds, so renderers survive a respawn.
func addRenderers(e *ecs.ECS) {
	for _, r := range []ecs.RendererWithArg[ebiten.Image]{
		render.DrawArena,
		render.DrawEffects,
		render.DrawItems,
		render.DrawDebug,
		render.DrawHUD,
	} {
		e.AddRenderer(config.Default, r)
	}
}

func (g *Game) Update() error {
	g.reloadConfig()
	g.handleInput()
	g.scene.Update()
	return nil
}

// reloadConfig applies edits to the config file. New values reach the
// weapon on the next respawn.
func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	open := g.watcher.Poll(func(path string) {
		if filepath.Clean(path) != filepath.Clean(g.configPath) {
			return
		}
		if err := config.LoadFile(path); err != nil {
			log.Printf("Warning: Could not reload config: %v", err)
			return
		}
		log.Printf("Reloaded %s, press R to respawn with it", path)
	}, func(err error) {
		log.Printf("Warning: Config watcher: %v", err)
	})
	if !open {
		g.watcher = nil
	}
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		g.toggleGrip(weapon.HandLeft)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyE) {
		g.toggleGrip(weapon.HandRight)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.scene.AlternateUse(true)
	}
	if inpututil.IsKeyJustReleased(ebiten.KeySpace) {
		g.scene.AlternateUse(false)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		for _, hand := range []weapon.Hand{weapon.HandLeft, weapon.HandRight} {
			if g.held(hand) {
				g.scene.Release(hand, true)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyX) {
		g.scene.Despawn()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.scene.Respawn(); err != nil {
			log.Printf("Warning: Could not respawn arena: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		config.Debug.ShowOverlay = !config.Debug.ShowOverlay
		g.settings.ShowDebug = config.Debug.ShowOverlay
		_ = systems.SaveSettings(g.settings)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) {
		g.setTimeScale(g.settings.TimeScale * 2)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) {
		g.setTimeScale(g.settings.TimeScale / 2)
	}
}

func (g *Game) held(hand weapon.Hand) bool {
	item := g.scene.Item()
	return item != nil && item.Valid() && components.Item.Get(item).IsHeld(hand)
}

func (g *Game) toggleGrip(hand weapon.Hand) {
	if g.held(hand) {
		g.scene.Release(hand, false)
		return
	}
	g.scene.Grab(hand)
}

func (g *Game) setTimeScale(scale float64) {
	scale = max(minTimeScale, min(maxTimeScale, scale))
	g.settings.TimeScale = scale
	g.opts.TimeScale = scale
	if clockEntry, ok := components.Clock.First(g.scene.World()); ok {
		components.Clock.Get(clockEntry).TimeScale = scale
	}
	_ = systems.SaveSettings(g.settings)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.ECS().Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return config.C.Width, config.C.Height
}

func main() {
	configPath := flag.String("config", "", "YAML config overlay, reloaded on change")
	flag.Parse()

	if err := systems.InitPersistence(); err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
	}
	settings, _ := systems.LoadSettings()
	if settings == nil {
		settings = &systems.SavedSettings{TimeScale: config.Arena.TimeScale}
	}
	if *configPath == "" {
		*configPath = settings.ConfigPath
	}
	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
		settings.ConfigPath = *configPath
	}
	config.Debug.ShowOverlay = settings.ShowDebug

	if err := fonts.LoadDefaults(); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	ebiten.SetWindowSize(config.C.Width*2, config.C.Height*2)
	ebiten.SetWindowTitle("Dogma")
	ebiten.SetTPS(config.C.TickRate)

	game, err := NewGame(settings, *configPath)
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}
	_ = systems.SaveSettings(settings)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
