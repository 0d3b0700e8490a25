package io

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/firefly/hangman/internal/player"
	"github.com/firefly/hangman/internal/round"
)

var (
	hitColor     = color.New(color.FgGreen, color.Bold)
	missColor    = color.New(color.FgRed, color.Bold)
	patternColor = color.New(color.FgCyan, color.Bold)
	dimColor     = color.New(color.Faint)
)

// CharProbability is one entry of a position's distribution
type CharProbability struct {
	Char        string  `json:"char"`
	Probability float64 `json:"probability"`
}

// Summary represents the final result of a round for JSON output
type Summary struct {
	Word           string `json:"word"`
	Won            bool   `json:"won"`
	Points         int    `json:"points"`
	Lives          int    `json:"lives"`
	TotalGuesses   int    `json:"total_guesses"`
	CorrectGuesses int    `json:"correct_guesses"`
	History        string `json:"history"`
}

// NewSummary collects the final state of a round and its player
func NewSummary(r *round.Round, p *player.Player) Summary {
	return Summary{
		Word:           r.Word(),
		Won:            r.EndOfGame(),
		Points:         p.Points(),
		Lives:          p.Lives(),
		TotalGuesses:   r.TotalGuesses(),
		CorrectGuesses: r.CorrectGuesses(),
		History:        string(r.History()),
	}
}

// OutputSummary writes the summary as indented JSON
func OutputSummary(w io.Writer, s Summary) error {
	jsonData, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling summary to JSON: %w", err)
	}

	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}
	return nil
}

// SortedProbabilities orders a distribution by descending probability, then by character
func SortedProbabilities(probs map[rune]float64) []CharProbability {
	chars := make([]rune, 0, len(probs))
	for c := range probs {
		chars = append(chars, c)
	}

	sort.Slice(chars, func(i, j int) bool {
		if probs[chars[i]] == probs[chars[j]] {
			return chars[i] < chars[j]
		}
		return probs[chars[i]] > probs[chars[j]]
	})

	out := make([]CharProbability, len(chars))
	for i, c := range chars {
		out[i] = CharProbability{Char: string(c), Probability: probs[c]}
	}
	return out
}

// PrintProbabilities lists the candidate characters for a position
func PrintProbabilities(w io.Writer, position int, probs map[rune]float64) {
	fmt.Fprintf(w, "Position %d:\n", position)

	entries := SortedProbabilities(probs)
	if len(entries) == 0 {
		dimColor.Fprintln(w, "  no candidate words left")
		return
	}

	for _, e := range entries {
		fmt.Fprintf(w, "  %s  %5.1f%%\n", e.Char, e.Probability*100)
	}
}

// PrintPattern shows the word with hidden positions
func PrintPattern(w io.Writer, r *round.Round) {
	patternColor.Fprintln(w, r.Pattern())
}

// PrintTurn reports the result of one guess
func PrintTurn(w io.Writer, points int, p *player.Player) {
	switch {
	case points > 0:
		hitColor.Fprintf(w, "Correct! +%d points\n", points)
	case points < 0:
		missColor.Fprintf(w, "Wrong! %d points\n", points)
	default:
		dimColor.Fprintln(w, "Position already revealed")
	}

	fmt.Fprintf(w, "Number of points: %d\n", p.Points())
	fmt.Fprintf(w, "Remaining lives: %d\n", p.Lives())
}
