package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"runtime/debug"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/kako-jun/yatagarrage/audio"
	"github.com/kako-jun/yatagarrage/config"
	"github.com/kako-jun/yatagarrage/game"
)

var (
	configFlag   = flag.String("config", "", "Path to a TOML config file")
	modeFlag     = flag.String("mode", "", "Simulation mode: game, sandbox (overrides config)")
	patternFlag  = flag.String("pattern", "", "Pattern id to fire at start")
	debugFlag    = flag.Bool("debug", false, "Write logs to the log file")
	headlessFlag = flag.Int("headless", 0, "Run N fixed steps without a terminal and print counters")
	muteFlag     = flag.Bool("mute", false, "Start with audio muted")
)

func main() {
	var screen tcell.Screen

	// Panic Recovery: restore the terminal before printing the trace
	defer func() {
		if r := recover(); r != nil {
			if screen != nil {
				screen.Fini()
			}
			fmt.Fprintf(os.Stderr, "\n\x1b[31mYATAGARRAGE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *modeFlag != "" {
		cfg.Simulation.Mode = *modeFlag
	}

	if cfg.Log.File != "" {
		logDir, logFileName = filepath.Split(cfg.Log.File)
		if logDir == "" {
			logDir = "."
		}
	}
	var logOut io.Writer
	if logFile := setupLogging(*debugFlag || cfg.Log.Debug); logFile != nil {
		defer logFile.Close()
		logOut = logFile
	}
	logger := newLogger(logOut, cfg.LogLevel())

	if *headlessFlag > 0 {
		g, err := game.New(cfg, game.WithLogger(logger))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
			os.Exit(1)
		}
		if err := runHeadless(os.Stdout, g, *headlessFlag, *patternFlag); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
		return
	}

	sound := audio.NewSoundManager(logger)
	if err := sound.Initialize(); err != nil {
		logger.Warn("audio unavailable, continuing without sound", "error", err)
	}
	defer sound.Cleanup()
	if *muteFlag {
		sound.ToggleMute()
	}

	g, err := game.New(cfg, game.WithLogger(logger), game.WithObserver(sound))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create game: %v\n", err)
		os.Exit(1)
	}
	if *patternFlag != "" && !g.FirePattern(*patternFlag) {
		fmt.Fprintf(os.Stderr, "Unknown pattern %q\n", *patternFlag)
		os.Exit(1)
	}

	screen, err = tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := newViewer(screen, g, sound)
	runErr := v.run(ctx)
	v.close()
	if runErr != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "Viewer stopped: %v\n", runErr)
		os.Exit(1)
	}
	logger.Info("exit", "session", g.Session(), "score", g.Score())
}

// runHeadless steps g n times at the fixed tick and prints the counters
func runHeadless(w io.Writer, g *game.Game, n int, patternID string) error {
	if patternID != "" && !g.FirePattern(patternID) {
		return fmt.Errorf("unknown pattern %q", patternID)
	}
	for range n {
		g.Step(g.TickLength())
	}
	c := g.Counters()
	fmt.Fprintf(w, "mode            %s\n", g.Mode())
	fmt.Fprintf(w, "session         %s\n", c.Session)
	fmt.Fprintf(w, "tick            %d\n", c.Tick)
	fmt.Fprintf(w, "score           %d\n", c.Score)
	fmt.Fprintf(w, "game_over       %t\n", c.GameOver)
	fmt.Fprintf(w, "bullets.player  %d\n", c.PlayerBullets)
	fmt.Fprintf(w, "bullets.enemy   %d\n", c.EnemyBullets)
	fmt.Fprintf(w, "enemies         %d\n", c.Enemies)
	fmt.Fprintf(w, "emissions       %d\n", c.Emissions)
	fmt.Fprintf(w, "timers          %d\n", c.Timers)
	fmt.Fprintf(w, "dropped         %d\n", c.Dropped)
	fmt.Fprintf(w, "gravity.active  %d\n", c.GravityActive)
	return nil
}
