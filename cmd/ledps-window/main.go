package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lixenwraith/ledps/config"
	"github.com/lixenwraith/ledps/display/window"
	"github.com/lixenwraith/ledps/engine"
	"github.com/lixenwraith/ledps/manifest"
	"github.com/lixenwraith/ledps/registry"
	"github.com/lixenwraith/ledps/render"
)

var (
	configPath = flag.String("config", "", "TOML preset file")
	effectFlag = flag.String("effect", "", "Effect to start with, overrides the preset")
	scaleFlag  = flag.Int("scale", 16, "Screen pixels per LED")
	fpsFlag    = flag.Int("fps", 60, "Simulation ticks per second")
)

func main() {
	flag.Parse()
	manifest.RegisterEffects()

	settings := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "settings: %v\n", err)
			os.Exit(1)
		}
		settings = loaded
	}
	config.ApplyEnv(settings, os.Getenv)
	if *effectFlag != "" {
		settings.Effect = *effectFlag
	}

	store, err := config.NewStore(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(1)
	}
	sys, err := engine.NewSystem(store)
	if err != nil {
		fmt.Fprintf(os.Stderr, "engine: %v\n", err)
		os.Exit(1)
	}

	reset := false
	win := window.New(settings.Width, settings.Height, *scaleFlag, func(sink render.Sink) error {
		if reset {
			sys.Reset()
			reset = false
		}
		if err := sys.Tick(sink); err != nil {
			log.Printf("tick: %v", err)
		}
		return nil
	})

	// Key callbacks run on the update goroutine, ahead of the tick
	win.Bind(ebiten.KeyN, func() { cycle(store, 1) })
	win.Bind(ebiten.KeyP, func() { cycle(store, -1) })
	win.Bind(ebiten.KeyR, func() { reset = true })
	win.Bind(ebiten.KeyC, func() {
		err := store.Update(func(s *config.Settings) { s.Physics.Collide = !s.Physics.Collide })
		if err != nil {
			log.Printf("settings: %v", err)
		}
	})

	title := fmt.Sprintf("ledps %dx%d", settings.Width, settings.Height)
	if err := win.Run(title, max(*fpsFlag, 1)); err != nil {
		log.Fatal(err)
	}
}

func cycle(store *config.Store, dir int) {
	err := store.Update(func(s *config.Settings) {
		s.Effect = registry.Cycle(s.Effect, dir)
	})
	if err != nil {
		log.Printf("settings: %v", err)
	}
}
