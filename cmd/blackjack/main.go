package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"blackjack-engine/internal/cli"
	"blackjack-engine/internal/config"
	"blackjack-engine/internal/game"
	"blackjack-engine/internal/logging"

	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync()

	seed := cfg.ShuffleSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Debug("shuffle seed", zap.Int64("seed", seed))

	rule := game.DealerRawSum
	if cfg.DealerSoft17 {
		rule = game.DealerHitsSoft17
	}

	engine := game.NewEngine(game.WithLogger(logger), game.WithDealerRule(rule))
	session := cli.NewSession(engine, rand.New(rand.NewSource(seed)), os.Stdin, os.Stdout, logger)

	if err := session.Run(cfg.StartingBalance); err != nil {
		logger.Fatal("game aborted", zap.Error(err))
	}
}
