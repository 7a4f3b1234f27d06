package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/automoto/dogma/assets"
	"github.com/automoto/dogma/components"
	"github.com/automoto/dogma/config"
	"github.com/automoto/dogma/scenes"
	"github.com/automoto/dogma/sim"
	"github.com/yohamta/donburi"
)

func main() {
	scriptPath := flag.String("script", "", "YAML input script")
	tickRate := flag.Int("tickrate", 60, "Simulation tick rate (updates per second)")
	duration := flag.Float64("duration", 20, "Seconds to simulate (0 = until interrupted)")
	configPath := flag.String("config", "", "YAML config overlay")
	fast := flag.Bool("fast", false, "Run ticks back to back instead of in real time")
	flag.Parse()

	if *configPath != "" {
		if err := config.LoadFile(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	config.C.TickRate = *tickRate
	config.Debug.LogTransitions = true

	var script *sim.Script
	if *scriptPath != "" {
		s, err := sim.LoadScript(*scriptPath)
		if err != nil {
			log.Fatalf("Failed to load script: %v", err)
		}
		script = s
	}

	catalog, err := assets.DefaultCatalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	latency := time.Duration(config.Arena.AssetLatency * float64(time.Second))

	scene, err := scenes.NewArenaScene(scenes.ArenaOptions{
		Loader:  assets.NewDurationLoader(catalog, latency),
		Catalog: catalog,
	})
	if err != nil {
		log.Fatalf("Failed to build arena: %v", err)
	}

	loop := sim.NewLoop(scene, script, *tickRate, *duration, *fast)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		log.Println("Stopping simulation...")
		loop.Stop()
	}()

	log.Printf("Simulating %q (tick rate: %d/s, duration: %.1fs, fast: %t)",
		scene.Arena().Name, *tickRate, *duration, *fast)
	if err := loop.Run(); err != nil {
		log.Fatalf("Simulation error: %v", err)
	}

	report(scene, loop)
}

func report(scene *scenes.ArenaScene, loop *sim.Loop) {
	log.Printf("Ran %d ticks, %.2fs simulated", loop.Ticks(), scene.Elapsed())
	if ctrl := scene.Weapon(); ctrl != nil {
		d := ctrl.Durations()
		log.Printf("Weapon: %s (destroyed: %t), sharp %.2fs, cooldown %.2fs",
			ctrl.Mode(), ctrl.Destroyed(), d.MaxSharp(), d.SharpCooldown())
	}
	components.Creature.Each(scene.World(), func(e *donburi.Entry) {
		c := components.Creature.Get(e)
		log.Printf("  %-10s alive=%t ragdoll=%d", c.Name, c.Alive, c.Ragdoll)
	})
}
