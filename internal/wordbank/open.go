package wordbank

import (
	"context"
	"fmt"
)

// Source fetches the raw description text for a book
type Source interface {
	FetchDescription(ctx context.Context, id string) (string, error)
}

// Extractor turns fetched markup into plain text
type Extractor interface {
	ExtractText(raw string) (string, error)
}

// Builder tokenizes text into candidate words
type Builder interface {
	Build(text string) map[string]struct{}
}

// Open returns a validated dictionary for id. A cached file is loaded when present,
// otherwise the description is fetched, built and saved. Both paths are validated.
func Open(ctx context.Context, store *Store, source Source, extractor Extractor, builder Builder, id string) (Set, error) {
	cached, err := store.Exists(id)
	if err != nil {
		return nil, err
	}

	if cached {
		words, err := store.Load(id)
		if err != nil {
			return nil, err
		}
		if err := Validate(words); err != nil {
			return nil, fmt.Errorf("validating %s: %w", store.Path(id), err)
		}
		store.logger.Info().Str("book", id).Int("words", len(words)).Msg("using cached dictionary")
		return words, nil
	}

	raw, err := source.FetchDescription(ctx, id)
	if err != nil {
		return nil, err
	}

	text, err := extractor.ExtractText(raw)
	if err != nil {
		return nil, fmt.Errorf("extracting description text: %w", err)
	}

	words := Set(builder.Build(text))
	if err := Validate(words); err != nil {
		return nil, fmt.Errorf("validating description of %s: %w", id, err)
	}

	if err := store.Save(id, words); err != nil {
		return nil, err
	}

	store.logger.Info().Str("book", id).Int("words", len(words)).Msg("built dictionary")

	return words, nil
}
