package scenes

import (
	"fmt"
	"io/fs"

	"github.com/automoto/dogma/assets"
	"github.com/automoto/dogma/components"
	cfg "github.com/automoto/dogma/config"
	"github.com/automoto/dogma/systems"
	"github.com/automoto/dogma/systems/factory"
	"github.com/automoto/dogma/weapon"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ArenaOptions configures an ArenaScene. Zero values fall back to the
// embedded assets and the global config.
type ArenaOptions struct {
	FS        fs.FS
	MapPath   string
	Loader    weapon.AssetLoader // nil keeps the default durations
	Catalog   *assets.Catalog
	TimeScale float64

	// Configure runs on every freshly built ECS, including after Respawn.
	// Front ends use it to register renderers.
	Configure func(*ecs.ECS)
}

// ArenaScene is the sandbox: a player holding the weapon among the
// creatures of an arena map.
type ArenaScene struct {
	ecs    *ecs.ECS
	opts   ArenaOptions
	arena  *assets.Arena
	player *donburi.Entry
	item   *donburi.Entry
	ctrl   *weapon.Controller
}

func NewArenaScene(opts ArenaOptions) (*ArenaScene, error) {
	if opts.FS == nil {
		opts.FS = assets.FS()
	}
	if opts.MapPath == "" {
		opts.MapPath = cfg.Arena.MapPath
	}
	if opts.TimeScale <= 0 {
		opts.TimeScale = cfg.Arena.TimeScale
	}

	s := &ArenaScene{opts: opts}
	if err := s.configure(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ArenaScene) configure() error {
	arena, err := assets.LoadArena(s.opts.FS, s.opts.MapPath)
	if err != nil {
		return fmt.Errorf("arena: %w", err)
	}
	s.arena = arena

	ecs := ecs.NewECS(donburi.NewWorld())

	ecs.AddSystem(systems.UpdateEvents)
	ecs.AddSystem(systems.UpdateWeapons)
	ecs.AddSystem(systems.UpdatePhysics)
	ecs.AddSystem(systems.UpdateObjects)
	ecs.AddSystem(systems.UpdateEffects)
	ecs.AddSystem(systems.UpdateDeaths)
	ecs.AddSystem(systems.UpdateClock)

	s.ecs = ecs

	factory.CreateClock(ecs, cfg.C.TickRate, s.opts.TimeScale)
	factory.CreateSpace(ecs, arena.Width, arena.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)
	factory.CreatePhysicsSpace(ecs)
	systems.InitEvents(ecs)

	spawn := arena.PlayerSpawns[0]
	s.player = factory.CreatePlayer(ecs, spawn.X, spawn.Y)
	for _, c := range arena.CreatureSpawns {
		factory.CreateCreature(ecs, c.Name, c.X, c.Y, c.Dead)
	}

	s.item = factory.CreateWeaponItem(ecs, s.player)
	s.ctrl = systems.ArmWeapon(ecs, s.item, s.opts.Loader, s.opts.Catalog)

	if s.opts.Configure != nil {
		s.opts.Configure(ecs)
	}
	return nil
}

// Update runs one tick.
func (s *ArenaScene) Update() {
	s.ecs.Update()
}

// Respawn tears the arena down and builds it again from the map.
func (s *ArenaScene) Respawn() error {
	if s.ctrl != nil {
		s.ctrl.Destroy()
	}
	return s.configure()
}

// Input notifications are queued and delivered at the start of the next
// tick.

func (s *ArenaScene) Grab(hand weapon.Hand) {
	if s.itemAlive() {
		systems.PublishGrab(s.ecs.World, s.item.Entity(), hand)
	}
}

func (s *ArenaScene) Release(hand weapon.Hand, throwing bool) {
	if s.itemAlive() {
		systems.PublishRelease(s.ecs.World, s.item.Entity(), hand, throwing)
	}
}

// AlternateUse presses or releases the alternate use button with the first
// hand on the item.
func (s *ArenaScene) AlternateUse(start bool) {
	if !s.itemAlive() {
		return
	}
	action := weapon.ActionAlternateUseStop
	if start {
		action = weapon.ActionAlternateUseStart
	}
	systems.PublishHeldAction(s.ecs.World, s.item.Entity(), s.activeHand(), action)
}

func (s *ArenaScene) Despawn() {
	if s.itemAlive() {
		systems.PublishDespawn(s.ecs.World, s.item.Entity())
	}
}

func (s *ArenaScene) activeHand() weapon.Hand {
	item := components.Item.Get(s.item)
	if !item.IsHeld(weapon.HandLeft) && item.IsHeld(weapon.HandRight) {
		return weapon.HandRight
	}
	return weapon.HandLeft
}

func (s *ArenaScene) itemAlive() bool {
	return s.item != nil && s.item.Valid()
}

func (s *ArenaScene) ECS() *ecs.ECS              { return s.ecs }
func (s *ArenaScene) World() donburi.World       { return s.ecs.World }
func (s *ArenaScene) Arena() *assets.Arena       { return s.arena }
func (s *ArenaScene) Player() *donburi.Entry     { return s.player }
func (s *ArenaScene) Item() *donburi.Entry       { return s.item }
func (s *ArenaScene) Weapon() *weapon.Controller { return s.ctrl }

// Elapsed returns the simulated seconds since the arena was built.
func (s *ArenaScene) Elapsed() float64 {
	entry, ok := components.Clock.First(s.ecs.World)
	if !ok {
		return 0
	}
	return components.Clock.Get(entry).Elapsed
}
