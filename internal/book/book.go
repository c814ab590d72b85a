// Package book implements the opening book: a small set of named lines
// loaded from a plain-text file and consulted by prefix match against the
// moves played so far.
package book

import (
	"bufio"
	"context"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/seekerror/logw"
	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/halvardh/corvid/internal/board"
)

// Opening is a single named line: its ECO code, display name, and the
// sequence of moves as played from the initial position.
type Opening struct {
	ECO   string
	Name  string
	Moves []board.Move
}

// Book is an immutable opening book, safe to share read-only across the
// search's root workers.
type Book struct {
	openings []Opening
}

// Load reads a book file formatted as contiguous three-line records:
//
//	ECO <code>
//	NAME <free text, rest of line>
//	UCI <move1> <move2> ... <moveN>
//
// A missing or malformed book file is fatal: Load logs via logw.Exitf and
// does not return, matching the teacher's pattern of treating a broken
// opening book as a startup-time configuration error rather than a
// runtime one. A caller whose ctx is already done before the read starts
// gets the same fatal treatment, since an Engine under construction has no
// way to proceed without a book.
func Load(ctx context.Context, path string) *Book {
	if contextx.IsCancelled(ctx) {
		logw.Exitf(ctx, "Failed to load opening book %v: %v", path, ctx.Err())
	}

	b, err := load(path)
	if err != nil {
		logw.Exitf(ctx, "Failed to load opening book %v: %v", path, err)
	}
	logw.Infof(ctx, "Loaded opening book %v: %v openings", path, len(b.openings))
	return b
}

func load(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	defer f.Close()

	var openings []Opening
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		ecoLine := strings.TrimSpace(scanner.Text())
		if ecoLine == "" {
			continue
		}
		eco, err := parseField(ecoLine, "ECO")
		if err != nil {
			return nil, err
		}

		if !scanner.Scan() {
			return nil, fmt.Errorf("book: truncated record after ECO %v", eco)
		}
		name, err := parseField(strings.TrimSpace(scanner.Text()), "NAME")
		if err != nil {
			return nil, err
		}

		if !scanner.Scan() {
			return nil, fmt.Errorf("book: truncated record after NAME %v", name)
		}
		uciLine, err := parseField(strings.TrimSpace(scanner.Text()), "UCI")
		if err != nil {
			return nil, err
		}

		var moves []board.Move
		for _, tok := range strings.Fields(uciLine) {
			m, err := board.ParseMove(tok)
			if err != nil {
				return nil, fmt.Errorf("book: opening %v: %w", eco, err)
			}
			moves = append(moves, m)
		}
		if len(moves) == 0 {
			return nil, fmt.Errorf("book: opening %v has no moves", eco)
		}

		openings = append(openings, Opening{ECO: eco, Name: name, Moves: moves})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("book: %w", err)
	}
	if len(openings) == 0 {
		return nil, fmt.Errorf("book: no openings found in %v", path)
	}

	return &Book{openings: openings}, nil
}

func parseField(line, tag string) (string, error) {
	prefix := tag + " "
	if !strings.HasPrefix(line, prefix) {
		return "", fmt.Errorf("book: expected %q, got %q", tag, line)
	}
	return strings.TrimSpace(strings.TrimPrefix(line, prefix)), nil
}

// Find returns a move to play given the game's move history so far, or
// false if no opening covers it. Every opening whose move list strictly
// exceeds len(history), and whose prefix matches history by from/to
// squares only (ignoring promotion piece), is a candidate; one candidate
// is picked uniformly at random and its move at index len(history) is
// returned.
func (b *Book) Find(history []board.Move) (board.Move, bool) {
	var candidates []Opening
	for _, o := range b.openings {
		if len(o.Moves) <= len(history) {
			continue
		}
		if matchesPrefix(o.Moves, history) {
			candidates = append(candidates, o)
		}
	}
	if len(candidates) == 0 {
		return board.Move{}, false
	}

	chosen := candidates[rand.Intn(len(candidates))]
	return chosen.Moves[len(history)], true
}

func matchesPrefix(opening, history []board.Move) bool {
	for i, h := range history {
		o := opening[i]
		if o.From != h.From || o.To != h.To {
			return false
		}
	}
	return true
}
