package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/henshin/config"
	"github.com/lixenwraith/henshin/core"
	"github.com/lixenwraith/henshin/engine"
	"github.com/lixenwraith/henshin/input"
	"github.com/lixenwraith/henshin/logger"
	"github.com/lixenwraith/henshin/parameter"
	"github.com/lixenwraith/henshin/system"
	"github.com/lixenwraith/henshin/terminal"
)

var (
	configPath = flag.String("config", "", "Path to YAML config (built-in defaults when empty)")
	logLevel   = flag.String("log-level", "", "Override log level: debug, info, warn, error")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}

	log, logCloser, err := logger.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	keys, err := terminal.NewKeyTranslator(cfg.Keys)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid key bindings: %v\n", err)
		os.Exit(1)
	}

	screen, err := terminal.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	presenter := terminal.NewPresenter(cfg.Vsync)
	ctx := engine.NewGameContext(log, float32(cfg.Viewport.Width), float32(cfg.Viewport.Height), presenter)

	if err := system.Setup(ctx.World); err != nil {
		screen.Fini()
		log.WithError(err).Fatal("startup contract violated")
	}
	system.Register(ctx.World)

	log.WithFields(logrus.Fields{
		"viewport": fmt.Sprintf("%dx%d", cfg.Viewport.Width, cfg.Viewport.Height),
		"vsync":    cfg.Vsync,
	}).Info("starting")

	run(ctx, screen, presenter, keys, input.NewTracker(cfg.HoldWindow, cfg.RepeatInterval))

	log.WithField("frames", ctx.FrameNumber.Load()).Info("exit")
}

// run drives one simulation tick and one render per frame until quit
func run(ctx *engine.GameContext, screen *terminal.Screen, presenter *terminal.Presenter, keys *terminal.KeyTranslator, tracker *input.Tracker) {
	renderer := terminal.NewRenderer(ctx.World)

	events := make(chan tcell.Event, parameter.EventChannelSize)
	screen.Poll(events)

	frameTimer := time.NewTimer(presenter.FrameInterval())
	defer frameTimer.Stop()

	last := time.Now()
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if action, ok := keys.Translate(ev); ok {
					tracker.Press(action, time.Now())
				}
			case *tcell.EventFocus:
				// Keys released while unfocused are never reported
				if !ev.Focused {
					tracker.Reset()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case now := <-frameTimer.C:
			ctx.Tick(now.Sub(last), tracker.Snapshot(now))
			last = now

			if ctx.ExitRequested() {
				return
			}

			renderer.Draw(screen)
			screen.Show()

			// Present mode may have been toggled this tick
			frameTimer.Reset(presenter.FrameInterval())
		}
	}
}
