package round

import (
	"fmt"
	"sort"
)

// Scores awarded by Play
const (
	// MissPoints is returned for every wrong guess
	MissPoints = -15

	likelyPoints   = 5
	probablePoints = 10
	possiblePoints = 15
	unlikelyPoints = 30
)

// Round tracks one game against a single secret word
type Round struct {
	word []rune

	// candidates maps every surviving dictionary word to its runes
	candidates    map[string][]rune
	probabilities []map[rune]float64
	revealed      []bool
	history       []rune

	correctGuesses int
	totalGuesses   int
}

// New creates a Round for word, keeping only the dictionary entries with the same length.
// The secret word does not have to be part of the dictionary.
func New(word string, dictionary map[string]struct{}) *Round {
	runes := []rune(word)

	candidates := make(map[string][]rune)
	for w := range dictionary {
		wr := []rune(w)
		if len(wr) == len(runes) {
			candidates[w] = wr
		}
	}

	r := &Round{
		word:          runes,
		candidates:    candidates,
		probabilities: make([]map[rune]float64, len(runes)),
		revealed:      make([]bool, len(runes)),
		history:       make([]rune, 0),
	}
	r.computeProbabilities()

	return r
}

// Play applies a guess of char at position and returns the points it earns.
// A position that is already revealed scores 0 and leaves the round untouched.
// Play panics if position is out of range.
func (r *Round) Play(position int, char rune) int {
	if position < 0 || position >= len(r.word) {
		panic(fmt.Sprintf("round: position %d out of range [0,%d)", position, len(r.word)))
	}

	if r.revealed[position] {
		return 0
	}

	r.history = append(r.history, char)
	r.totalGuesses++

	success := char == r.word[position]
	if success {
		r.revealed[position] = true
		r.correctGuesses++
	}

	// Score against the distribution before narrowing
	points := Points(r.probabilities[position][char], success)

	r.removeUnlikeWords(position, char, success)
	r.computeProbabilities()

	return points
}

// Points maps the probability of a guess to its score.
// Failed guesses always return MissPoints.
func Points(probability float64, success bool) int {
	if !success {
		return MissPoints
	}

	switch {
	case probability >= 0.6:
		return likelyPoints
	case probability >= 0.4:
		return probablePoints
	case probability >= 0.25:
		return possiblePoints
	default:
		return unlikelyPoints
	}
}

// EndOfGame reports whether every position has been revealed
func (r *Round) EndOfGame() bool {
	return r.correctGuesses >= len(r.word)
}

// removeUnlikeWords drops candidates inconsistent with the guess outcome
func (r *Round) removeUnlikeWords(position int, char rune, success bool) {
	for w, runes := range r.candidates {
		if (runes[position] == char) != success {
			delete(r.candidates, w)
		}
	}
}

// computeProbabilities rebuilds the whole table from the current candidates.
// With no candidates left every position maps to an empty table.
func (r *Round) computeProbabilities() {
	total := float64(len(r.candidates))

	for i := range r.probabilities {
		counts := make(map[rune]float64)
		for _, runes := range r.candidates {
			counts[runes[i]]++
		}
		for c := range counts {
			counts[c] /= total
		}
		r.probabilities[i] = counts
	}
}

// Len returns the length of the secret word
func (r *Round) Len() int {
	return len(r.word)
}

// Word returns the secret word
func (r *Round) Word() string {
	return string(r.word)
}

// Probabilities returns a copy of the character distribution at position
func (r *Round) Probabilities(position int) map[rune]float64 {
	out := make(map[rune]float64, len(r.probabilities[position]))
	for c, p := range r.probabilities[position] {
		out[c] = p
	}
	return out
}

// Candidates returns the surviving candidate words in sorted order
func (r *Round) Candidates() []string {
	words := make([]string, 0, len(r.candidates))
	for w := range r.candidates {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// CandidateCount returns the number of surviving candidates
func (r *Round) CandidateCount() int {
	return len(r.candidates)
}

// History returns the guessed characters in order
func (r *Round) History() []rune {
	return append([]rune(nil), r.history...)
}

// Revealed returns a copy of the revealed mask
func (r *Round) Revealed() []bool {
	return append([]bool(nil), r.revealed...)
}

// IsRevealed reports whether position has been guessed correctly
func (r *Round) IsRevealed(position int) bool {
	return r.revealed[position]
}

// Pattern renders the word with unrevealed positions as '_'
func (r *Round) Pattern() string {
	out := make([]rune, len(r.word))
	for i, c := range r.word {
		if r.revealed[i] {
			out[i] = c
		} else {
			out[i] = '_'
		}
	}
	return string(out)
}

// TotalGuesses returns the number of scored guesses
func (r *Round) TotalGuesses() int {
	return r.totalGuesses
}

// CorrectGuesses returns the number of successful guesses
func (r *Round) CorrectGuesses() int {
	return r.correctGuesses
}
