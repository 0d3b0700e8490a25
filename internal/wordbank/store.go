package wordbank

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

// Store persists dictionaries as one word per line under a directory
type Store struct {
	dir    string
	logger zerolog.Logger
}

// NewStore creates a Store rooted at dir
func NewStore(dir string, logger zerolog.Logger) *Store {
	return &Store{
		dir:    dir,
		logger: logger,
	}
}

// Path returns the cache file for a book id
func (s *Store) Path(id string) string {
	return filepath.Join(s.dir, "hangman_"+id+".txt")
}

// Exists reports whether a cache file is present for id
func (s *Store) Exists(id string) (bool, error) {
	_, err := os.Stat(s.Path(id))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("checking dictionary file: %w", err)
}

// Load reads the dictionary for id. Lines are kept verbatim.
func (s *Store) Load(id string) (Set, error) {
	path := s.Path(id)

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dictionary file: %w", err)
	}
	defer file.Close()

	words := make(Set)
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		words[scanner.Text()] = struct{}{}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary file: %w", err)
	}

	s.logger.Debug().Str("path", path).Int("words", len(words)).Msg("loaded dictionary")

	return words, nil
}

// Save writes the dictionary for id, creating the directory if needed.
// Words go to a temporary file that replaces the cache only once fully written.
func (s *Store) Save(id string, words Set) (err error) {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating dictionary directory: %w", err)
	}

	file, err := os.CreateTemp(s.dir, ".hangman-*.tmp")
	if err != nil {
		return fmt.Errorf("creating dictionary file: %w", err)
	}
	tmpPath := file.Name()
	defer func() {
		if err != nil {
			file.Close()
			os.Remove(tmpPath)
		}
	}()

	writer := bufio.NewWriter(file)
	for _, w := range words.Sorted() {
		if _, err := writer.WriteString(w + "\n"); err != nil {
			return fmt.Errorf("writing dictionary file: %w", err)
		}
	}

	if err := writer.Flush(); err != nil {
		return fmt.Errorf("writing dictionary file: %w", err)
	}

	if err := file.Chmod(0644); err != nil {
		return fmt.Errorf("setting dictionary file mode: %w", err)
	}

	if err := file.Close(); err != nil {
		return fmt.Errorf("closing dictionary file: %w", err)
	}

	path := s.Path(id)
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replacing dictionary file: %w", err)
	}

	s.logger.Debug().Str("path", path).Int("words", len(words)).Msg("saved dictionary")

	return nil
}
