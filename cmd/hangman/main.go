package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"

	"github.com/firefly/hangman/internal/config"
	outputio "github.com/firefly/hangman/internal/io"
	"github.com/firefly/hangman/internal/player"
	"github.com/firefly/hangman/internal/round"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)

	if err := config.LoadDotEnv(".env"); err != nil {
		logger.Fatal().Err(err).Msg("Configuration error")
	}

	cfg, err := config.Parse(os.Args[1:], os.Getenv)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		logger.Fatal().Err(err).Msg("Configuration error")
	}

	if cfg.Verbose {
		logger = logger.Level(zerolog.DebugLevel)
	}

	logger.Debug().
		Str("book", cfg.BookID).
		Str("cache_dir", cfg.CacheDir).
		Str("endpoint", cfg.Endpoint).
		Dur("timeout", cfg.Timeout).
		Int("lives", cfg.Lives).
		Msg("starting hangman")

	// Setup graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	words, err := loadDictionary(ctx, cfg, logger)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load dictionary")
	}

	word, err := chooseWord(words, cfg.Word, rand.Intn)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to choose word")
	}

	r := round.New(word, words)
	p := player.New(cfg.Lives)

	logger.Debug().Int("length", r.Len()).Int("candidates", r.CandidateCount()).Msg("round started")

	err = runRound(ctx, r, p, os.Stdin, os.Stdout)
	if errors.Is(err, context.Canceled) {
		fmt.Println()
		logger.Warn().Msg("Received interrupt signal, shutting down")
	} else if err != nil {
		logger.Fatal().Err(err).Msg("Game error")
	}

	if err := outputio.OutputSummary(os.Stdout, outputio.NewSummary(r, p)); err != nil {
		logger.Fatal().Err(err).Msg("Output error")
	}
}
