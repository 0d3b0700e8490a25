package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/firefly/hangman/internal/config"
	"github.com/firefly/hangman/internal/fetcher"
	"github.com/firefly/hangman/internal/parser"
	"github.com/firefly/hangman/internal/processor"
	"github.com/firefly/hangman/internal/wordbank"
)

// loadDictionary wires the dictionary collaborators and returns a validated word set
func loadDictionary(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (wordbank.Set, error) {
	fetch := fetcher.New(cfg.Endpoint, cfg.Timeout, cfg.RateLimit, logger.With().Str("component", "fetcher").Logger())
	store := wordbank.NewStore(cfg.CacheDir, logger.With().Str("component", "wordbank").Logger())

	words, err := wordbank.Open(ctx, store, fetch, parser.New(), processor.New(cfg.MinWordLength), cfg.BookID)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary for %s: %w", cfg.BookID, err)
	}

	return words, nil
}

// chooseWord returns the configured secret word, or a random dictionary word when none is set
func chooseWord(words wordbank.Set, configured string, intn func(int) int) (string, error) {
	if configured != "" {
		return configured, nil
	}

	if words.Size() == 0 {
		return "", fmt.Errorf("dictionary is empty")
	}

	sorted := words.Sorted()
	return sorted[intn(len(sorted))], nil
}
