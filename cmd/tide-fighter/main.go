package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/tide-fighter/asset"
	"github.com/lixenwraith/tide-fighter/audio"
	"github.com/lixenwraith/tide-fighter/config"
	"github.com/lixenwraith/tide-fighter/constants"
	"github.com/lixenwraith/tide-fighter/core"
	"github.com/lixenwraith/tide-fighter/engine"
	"github.com/lixenwraith/tide-fighter/input"
	"github.com/lixenwraith/tide-fighter/render"
	"github.com/lixenwraith/tide-fighter/render/renderers"
	"github.com/lixenwraith/tide-fighter/systems"
	"github.com/lixenwraith/tide-fighter/ui"
	"golang.org/x/sync/errgroup"
)

var (
	configFlag   = flag.String("config", "", "Path to a YAML match config")
	seedFlag     = flag.Int64("seed", 0, "Random seed; 0 uses the config seed or the clock")
	debugFlag    = flag.Bool("debug", false, "Start with the debug overlay and write logs/tide-fighter.log")
	durationFlag = flag.Duration("duration", 0, "Override the match time limit")
	muteFlag     = flag.Bool("mute", false, "Start with sound muted")
)

// bannerHold keeps the final frame with its banner on screen before the results dialog
var bannerHold = 2 * time.Second

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}
	logger := newLogger(logFile)

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}
	sheets, err := asset.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load art: %v\n", err)
		os.Exit(1)
	}

	// Initialize audio; the match runs silent when no device is available
	audioCfg, err := audio.LoadAudioConfig()
	if err != nil {
		logger.Warn().Err(err).Msg("audio config")
	}
	sound := audio.NewSoundManager(audioCfg)
	if err := sound.Initialize(); err != nil {
		logger.Warn().Err(err).Msg("continuing without audio")
	} else {
		defer sound.Cleanup()
	}
	if cfg.Mute {
		sound.ToggleMute()
	}

	state, err := engine.NewGameState(cfg, sheets, constants.WorldWidth, constants.WorldHeight)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create match: %v\n", err)
		os.Exit(1)
	}
	world := engine.NewWorld(state, rand.New(rand.NewSource(cfg.Seed)), sound, logger)
	systems.Register(world)
	world.Log.Info().Int64("seed", cfg.Seed).Msg("match started")

	// Initialize terminal
	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	core.RegisterCrashTerminal(screen)

	scene := renderers.NewScene(render.NewTerminalSurface(screen, constants.WorldWidth, constants.WorldHeight))
	clock := engine.SystemClock{}
	scheduler := engine.NewClockScheduler(world, scene, clock)

	quit, err := runMatch(context.Background(), screen, scheduler, input.NewHandler(keys, clock))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Match aborted: %v\n", err)
		os.Exit(1)
	}
	if quit {
		return
	}

	results, err := tcell.NewScreen()
	if err != nil {
		return
	}
	core.RegisterCrashTerminal(results)
	if err := ui.ShowResults(results, ui.NewSummary(state)); err != nil {
		logger.Error().Err(err).Msg("results screen")
	}
}

// loadConfig reads the match config and applies command-line overrides
func loadConfig() (config.Match, error) {
	cfg := config.Default()
	if *configFlag != "" {
		var err error
		if cfg, err = config.Load(*configFlag); err != nil {
			return cfg, err
		}
	}

	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if *durationFlag > 0 {
		cfg.MatchTimeLimit = *durationFlag
	}
	cfg.Debug = cfg.Debug || *debugFlag
	cfg.Mute = cfg.Mute || *muteFlag
	return cfg, cfg.Validate()
}

// runMatch drives the frame loop until the match ends or the player quits
// Terminal events are pumped on their own goroutine; the world is only touched by the frame loop
// The screen is finalized on return. quit reports whether the player left before the end
func runMatch(ctx context.Context, screen tcell.Screen, scheduler *engine.ClockScheduler, handler *input.Handler) (quit bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, ctx := errgroup.WithContext(ctx)
	events := make(chan tcell.Event, 256)

	// Input polling interacts directly with the terminal; it ends when the screen is finalized
	g.Go(func() error {
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return nil
			}
		}
	})

	g.Go(func() error {
		defer cancel()
		defer screen.Fini()
		defer func() {
			if r := recover(); r != nil {
				core.HandleCrash(r)
			}
		}()

		frameTicker := time.NewTicker(constants.FrameUpdateInterval)
		defer frameTicker.Stop()

		for {
			select {
			case <-ctx.Done():
				return ctx.Err()

			case ev := <-events:
				switch ev := ev.(type) {
				case *tcell.EventKey:
					if handler.HandleKey(ev) == input.ActionQuit {
						quit = true
						return nil
					}
				case *tcell.EventResize:
					screen.Sync()
				}

			case <-frameTicker.C:
				running, err := scheduler.Tick(handler.Snapshot())
				if err != nil {
					return err
				}
				if !running {
					quit = holdBanner(ctx, events)
					return nil
				}
			}
		}
	})

	err = g.Wait()
	return quit, err
}

// holdBanner waits on the final frame until bannerHold lapses or a key is pressed
// Reports whether that key was escape
func holdBanner(ctx context.Context, events <-chan tcell.Event) bool {
	timer := time.NewTimer(bannerHold)
	defer timer.Stop()
	for {
		select {
		case <-ctx.Done():
			return false
		case <-timer.C:
			return false
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				return key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC
			}
		}
	}
}
