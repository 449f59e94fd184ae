package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime/debug"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ledps/audio"
	"github.com/lixenwraith/ledps/config"
	"github.com/lixenwraith/ledps/display"
	"github.com/lixenwraith/ledps/engine"
	"github.com/lixenwraith/ledps/manifest"
	"github.com/lixenwraith/ledps/registry"
)

var (
	configPath = flag.String("config", "", "TOML preset file")
	effectFlag = flag.String("effect", "", "Effect to start with, overrides the preset")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/ledps.log")
	fpsFlag    = flag.Int("fps", 60, "Simulation ticks per second")
	muteFlag   = flag.Bool("mute", false, "Disable collision clicks")
	listFlag   = flag.Bool("list", false, "List effects and exit")
)

// sweepPeriod is seconds per attractor pass across the matrix
const sweepPeriod = 4

// sandbox wires the engine to a tcell screen
// step runs on the scheduler goroutine; key handling runs on main and only
// touches the settings store and atomics
type sandbox struct {
	screen  tcell.Screen
	term    *display.Terminal
	sys     *engine.System
	store   *config.Store
	sched   *engine.Scheduler
	clicker *audio.Clicker
	sweep   *engine.Sweep
	dt      float32

	sweeping atomic.Bool
	resetReq atomic.Bool
}

func loadSettings() (*config.Settings, error) {
	s := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return nil, err
		}
		s = loaded
	}
	config.ApplyEnv(s, os.Getenv)
	if *effectFlag != "" {
		s.Effect = *effectFlag
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func main() {
	flag.Parse()
	manifest.RegisterEffects()

	if *listFlag {
		fmt.Println(strings.Join(registry.EffectNames(), "\n"))
		return
	}

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	settings, err := loadSettings()
	if err != nil {
		fmt.Fprintf(os.Stderr, "settings: %v\n", err)
		os.Exit(1)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}

	// Panic recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			crash(screen, r)
		}
	}()
	defer screen.Fini()

	fps := max(*fpsFlag, 1)
	sb := &sandbox{
		screen:  screen,
		term:    display.NewTerminal(screen, 1, 1, settings.Width, settings.Height),
		sys:     sys,
		store:   store,
		clicker: audio.NewClicker(),
		sweep:   engine.NewSweep(sys.Area(), sweepPeriod),
		dt:      1 / float32(fps),
	}

	if !*muteFlag {
		if err := sb.clicker.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		}
	}
	defer sb.clicker.Cleanup()

	sb.sched = engine.NewScheduler(time.Second/time.Duration(fps), sb.step)
	sb.sched.SetCrashHandler(func(r any) { crash(screen, r) })

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		sb.sched.Stop()
		screen.Fini()
		os.Exit(0)
	}()

	log.Printf("ledps: %s %dx%d, %d particles, %d fps", settings.Effect, settings.Width, settings.Height, settings.Capacity, fps)
	screen.Clear()
	sb.sched.Start()
	sb.run()
	sb.sched.Stop()
}

// crash restores the terminal and exits with the stack trace
func crash(screen tcell.Screen, r any) {
	screen.Fini()
	// \r\n keeps the trace readable if the terminal is still raw
	fmt.Fprintf(os.Stderr, "\r\n\x1b[31mLEDPS CRASHED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
	os.Exit(1)
}

// run handles input until the user quits
func (sb *sandbox) run() {
	for {
		switch ev := sb.screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			sb.screen.Sync()
		case *tcell.EventKey:
			if !sb.handleKey(ev) {
				return
			}
		}
	}
}

// step advances one tick and presents it
func (sb *sandbox) step() {
	if sb.resetReq.Swap(false) {
		sb.sys.Reset()
	}
	if sb.sweeping.Load() {
		sb.sys.SetAttractor(sb.sweep.Update(sb.dt))
	}

	if !sb.term.Fits() {
		sb.screen.Clear()
		sb.term.Text(0, 0, "terminal too small for the LED matrix", tcell.ColorRed)
		sb.term.Show()
		return
	}

	if err := sb.sys.Tick(sb.term); err != nil {
		log.Printf("tick: %v", err)
	}
	st := sb.sys.Stats()
	if st.Collisions > 0 {
		sb.clicker.Click(st.Collisions)
	}
	sb.drawStatus(st)
	sb.term.Show()
}

func (sb *sandbox) drawStatus(st engine.Stats) {
	cfg := sb.store.Load()
	w, _ := sb.screen.Size()
	row := 2 + cfg.Height

	line := fmt.Sprintf("%-10s live %4d/%-4d hits %3d  hardness %3d  collide %-5t wrap %-5t swallow %-5t",
		st.Effect, st.Live, st.Capacity, st.Collisions, cfg.Physics.Hardness,
		cfg.Physics.Collide, cfg.Physics.WrapX, cfg.Physics.Swallow)
	help := "[n/p] effect [r]eset [c]ollide [w]rap [s]wallow [k]ill [a]ttract [+/-] hardness [m]ute [space] pause [q]uit"

	sb.term.Text(1, row, fmt.Sprintf("%-*s", max(w-1, 0), line), tcell.ColorWhite)
	sb.term.Text(1, row+1, help, tcell.ColorGray)
}

// cycleEffect selects the effect dir steps away from the current one
func (sb *sandbox) cycleEffect(dir int) {
	err := sb.store.Update(func(s *config.Settings) {
		s.Effect = registry.Cycle(s.Effect, dir)
	})
	if err != nil {
		log.Printf("settings: %v", err)
	}
}

func (sb *sandbox) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyRune:
	default:
		return true
	}

	var err error
	switch ev.Rune() {
	case 'q':
		return false
	case 'n':
		sb.cycleEffect(1)
	case 'p':
		sb.cycleEffect(-1)
	case 'r':
		sb.resetReq.Store(true)
	case ' ':
		if sb.sched.Paused() {
			sb.sched.Resume()
		} else {
			sb.sched.Pause()
		}
	case 'c':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.Collide = !s.Physics.Collide })
	case 'w':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.WrapX = !s.Physics.WrapX })
	case 's':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.Swallow = !s.Physics.Swallow })
	case 'k':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.Kill = !s.Physics.Kill })
	case '+', '=':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.Hardness = min(s.Physics.Hardness, 239) + 16 })
	case '-':
		err = sb.store.Update(func(s *config.Settings) { s.Physics.Hardness = max(s.Physics.Hardness, 16) - 16 })
	case 'a':
		on := !sb.sweeping.Load()
		sb.sweeping.Store(on)
		if !on {
			area := sb.store.Load().Area()
			sb.sys.SetAttractor(area.SpanX()/2, area.SpanY()/2)
		}
	case 'm':
		sb.clicker.SetEnabled(!sb.clicker.Enabled())
	}
	if err != nil {
		log.Printf("settings: %v", err)
	}
	return true
}
