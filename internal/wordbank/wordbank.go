package wordbank

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"
)

// Dictionary rules
const (
	// MinSize is the smallest acceptable dictionary
	MinSize = 20

	// MinWordLength is the shortest acceptable word
	MinWordLength = 6

	// LongWordLength is the length from which a word counts as long
	LongWordLength = 9

	// MinLongRatio is the required fraction of long words
	MinLongRatio = 0.2
)

var (
	// ErrUndersize is returned when the dictionary has too few words
	ErrUndersize = errors.New("dictionary undersized")

	// ErrInvalidRange is returned when a word is too short
	ErrInvalidRange = errors.New("dictionary word out of range")

	// ErrUnbalanced is returned when there are too few long words
	ErrUnbalanced = errors.New("dictionary unbalanced")
)

// Set holds unique dictionary words
type Set map[string]struct{}

// NewSet creates a Set from a list of words
func NewSet(words ...string) Set {
	s := make(Set, len(words))
	for _, w := range words {
		s[w] = struct{}{}
	}
	return s
}

// Contains reports whether word is in the set
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Size returns the number of words in the set
func (s Set) Size() int {
	return len(s)
}

// Sorted returns the words in lexical order
func (s Set) Sorted() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Validate checks size, word length and length distribution, in that order
func Validate(s Set) error {
	size := len(s)
	if size < MinSize {
		return fmt.Errorf("%w: has %d words, needs at least %d", ErrUndersize, size, MinSize)
	}

	longWords := 0
	for w := range s {
		n := utf8.RuneCountInString(w)
		if n < MinWordLength {
			return fmt.Errorf("%w: %q has %d characters, needs at least %d", ErrInvalidRange, w, n, MinWordLength)
		}
		if n >= LongWordLength {
			longWords++
		}
	}

	if ratio := float64(longWords) / float64(size); ratio < MinLongRatio {
		return fmt.Errorf("%w: %.0f%% of words have %d+ characters, needs %.0f%%",
			ErrUnbalanced, ratio*100, LongWordLength, MinLongRatio*100)
	}

	return nil
}
