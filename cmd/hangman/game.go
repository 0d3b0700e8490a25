package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	outputio "github.com/firefly/hangman/internal/io"
	"github.com/firefly/hangman/internal/player"
	"github.com/firefly/hangman/internal/round"
)

// readLines sends input lines to the returned channel until EOF or cancellation
func readLines(ctx context.Context, r io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}

// nextLine waits for one input line. ok is false once input is exhausted.
func nextLine(ctx context.Context, lines <-chan string) (line string, ok bool, err error) {
	select {
	case <-ctx.Done():
		return "", false, ctx.Err()
	case line, ok = <-lines:
		return strings.TrimSpace(line), ok, nil
	}
}

// askPosition prompts until a position inside the word is entered
func askPosition(ctx context.Context, length int, lines <-chan string, out io.Writer) (int, bool, error) {
	for {
		fmt.Fprint(out, "Choose the position of your guess: ")

		line, ok, err := nextLine(ctx, lines)
		if err != nil || !ok {
			return 0, ok, err
		}

		pos, err := strconv.Atoi(line)
		if err != nil || pos < 0 || pos >= length {
			fmt.Fprintf(out, "Position must be a number between 0 and %d\n", length-1)
			continue
		}

		return pos, true, nil
	}
}

// askChar prompts until a non-empty line is entered and returns its first character
func askChar(ctx context.Context, lines <-chan string, out io.Writer) (rune, bool, error) {
	for {
		fmt.Fprint(out, "Choose the character of your guess: ")

		line, ok, err := nextLine(ctx, lines)
		if err != nil || !ok {
			return 0, ok, err
		}

		if line == "" {
			continue
		}

		c, _ := utf8.DecodeRuneInString(line)
		return c, true, nil
	}
}

// runRound plays a round from the lines of in and stops the reader once the round returns
func runRound(ctx context.Context, r *round.Round, p *player.Player, in io.Reader, out io.Writer) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	return playRound(ctx, r, p, readLines(ctx, in), out)
}

// playRound drives one round until the word is revealed, the player dies or input ends
func playRound(ctx context.Context, r *round.Round, p *player.Player, lines <-chan string, out io.Writer) error {
	for !r.EndOfGame() && p.IsAlive() {
		outputio.PrintPattern(out, r)

		pos, ok, err := askPosition(ctx, r.Len(), lines, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		outputio.PrintProbabilities(out, pos, r.Probabilities(pos))

		char, ok, err := askChar(ctx, lines, out)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		points := r.Play(pos, char)
		p.Record(points)
		outputio.PrintTurn(out, points, p)
	}

	if r.EndOfGame() {
		fmt.Fprintf(out, "You found the word %s!\n", r.Word())
	} else {
		fmt.Fprintf(out, "Out of lives. The word was %s\n", r.Word())
	}

	return nil
}
