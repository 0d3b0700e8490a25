package processor

import (
	"regexp"
)

// Processor turns raw text into a set of candidate words
type Processor struct {
	minWordLength int

	// Word extraction regex
	wordRegex *regexp.Regexp
}

// New creates a new Processor keeping words of at least minWordLength characters
func New(minWordLength int) *Processor {
	return &Processor{
		minWordLength: minWordLength,
		wordRegex:     regexp.MustCompile(`\w+`),
	}
}

// Build splits text on runs of non-word characters and returns the unique
// tokens that are long enough. Case is preserved.
func (p *Processor) Build(text string) map[string]struct{} {
	words := make(map[string]struct{})

	for _, word := range p.wordRegex.FindAllString(text, -1) {
		if len([]rune(word)) >= p.minWordLength {
			words[word] = struct{}{}
		}
	}

	return words
}
