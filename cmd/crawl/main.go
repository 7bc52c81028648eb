// Package main provides the crawl binary: a single-player dungeon crawl
// played over a line-oriented terminal.
package main

import (
	"flag"
	"log"
	"math"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/crawl/internal/config"
	"github.com/cory-johannsen/crawl/internal/game/actor"
	"github.com/cory-johannsen/crawl/internal/game/behavior"
	"github.com/cory-johannsen/crawl/internal/game/command"
	"github.com/cory-johannsen/crawl/internal/game/dice"
	"github.com/cory-johannsen/crawl/internal/game/dungeon"
	"github.com/cory-johannsen/crawl/internal/game/session"
	"github.com/cory-johannsen/crawl/internal/observability"
	"github.com/cory-johannsen/crawl/internal/scripting"
)

func main() {
	start := time.Now()

	configPath := flag.String("config", "configs/dev.yaml", "path to configuration file")
	seedOverride := flag.Int64("seed", 0, "random seed; overrides game.seed when non-zero")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logging)
	if err != nil {
		log.Fatalf("initializing logger: %v", err)
	}
	defer logger.Sync()

	templates, err := actor.LoadTemplates(cfg.Content.MonstersDir)
	if err != nil {
		logger.Fatal("loading monster templates", zap.Error(err))
	}
	levels, err := dungeon.LoadLevels(cfg.Content.LevelsDir)
	if err != nil {
		logger.Fatal("loading levels", zap.Error(err))
	}
	logger.Info("content loaded",
		zap.Int("templates", len(templates)),
		zap.Int("levels", len(levels)),
	)

	seed := cfg.Game.Seed
	if *seedOverride != 0 {
		seed = *seedOverride
	}
	if seed == 0 {
		seed = int64(dice.NewCryptoSource().Intn(math.MaxInt32)) + 1
	}
	src := dice.NewSeededSource(seed)

	// Scripting is optional; a nil caller makes scripted behaviors fail Check.
	var caller behavior.ScriptCaller
	if cfg.Content.ScriptsDir != "" {
		scripts := scripting.NewManager(dice.NewLoggedRoller(src, logger), logger)
		if err := scripts.Load(cfg.Content.ScriptsDir, cfg.Content.ScriptInstructionLimit); err != nil {
			logger.Fatal("loading scripts", zap.Error(err))
		}
		defer scripts.Close()
		caller = scripts
	}

	behaviors := behavior.NewRegistry(caller, logger)
	if err := behaviors.Check(templates); err != nil {
		logger.Fatal("checking monster behaviors", zap.Error(err))
	}

	sess, err := session.New(levels, templates, session.Options{
		Player: actor.PlayerStats{
			Name:      cfg.Game.PlayerName,
			Awareness: cfg.Game.PlayerAwareness,
			Speed:     cfg.Game.PlayerSpeed,
			Attack:    cfg.Game.PlayerAttack,
			Defense:   cfg.Game.PlayerDefense,
			Health:    cfg.Game.PlayerHealth,
		},
		AlertDecay: cfg.Game.AlertDecayTurns,
		Seed:       seed,
		Random:     src,
		Logger:     logger,
	})
	if err != nil {
		logger.Fatal("starting session", zap.Error(err))
	}
	sessions := session.NewManager()
	if err := sessions.Add(sess); err != nil {
		logger.Fatal("registering session", zap.Error(err))
	}

	logger.Info("game ready",
		zap.String("session", sess.ID),
		zap.Int64("seed", seed),
		zap.Duration("elapsed", time.Since(start)),
	)

	g := newGame(command.NewOrchestrator(sess, behaviors), command.DefaultRegistry(), os.Stdout)
	runErr := g.Run(os.Stdin)
	if err := sessions.Remove(sess.ID); err != nil {
		logger.Warn("unregistering session", zap.String("session", sess.ID), zap.Error(err))
	}
	if runErr != nil {
		logger.Fatal("game loop", zap.Error(runErr))
	}
	logger.Info("game ended",
		zap.String("session", sess.ID),
		zap.Bool("game_over", sess.GameOver),
		zap.Int("depth", sess.Depth),
		zap.Int("gold", sess.Player.Gold),
	)
}
