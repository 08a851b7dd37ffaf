package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/lixenwraith/vi-snake/config"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/highscore"
	"github.com/lixenwraith/vi-snake/status"
	"github.com/lixenwraith/vi-snake/terminal"
)

var (
	configFlag = flag.String("config", "", "Path to config file (default: user config dir)")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/vi-snake.log")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(); err != nil {
		logrus.WithError(err).Error("exiting")
		fmt.Fprintf(os.Stderr, "vi-snake: %v\n", err)
		if logFile != nil {
			logFile.Close()
		}
		os.Exit(1)
	}
}

func run() error {
	path := *configFlag
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	keys, err := cfg.KeyTable()
	if err != nil {
		return err
	}
	glyphs, err := cfg.GlyphSet()
	if err != nil {
		return err
	}

	log := logrus.StandardLogger()
	log.WithFields(logrus.Fields{
		"config":    path,
		"highscore": cfg.HighscorePath(),
		"tick":      cfg.TickInterval().String(),
	}).Info("starting")

	// Initialize terminal
	screen, err := terminal.New()
	if err != nil {
		return fmt.Errorf("failed to initialize terminal: %w", err)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			log.WithField("panic", r).Error("crashed")

			// Print error and stack trace to stderr so it's visible after reset
			fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-SNAKE CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	// Interrupts end the run quietly
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store := highscore.NewFileStore(cfg.HighscorePath(), log)
	manager := engine.NewManager(screen, store, engine.Options{
		TickInterval: cfg.TickInterval(),
		MaxSpan:      cfg.MaxSpan,
		MinWidth:     cfg.MinWidth,
		MinHeight:    cfg.MinHeight,
		Seed:         cfg.Seed,
		Keys:         keys,
		Glyphs:       &glyphs,
		Logger:       log,
		Status:       status.NewRegistry(),
	})

	return manager.Run(ctx)
}
