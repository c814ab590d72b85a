// Command corvid runs the engine once against a position and prints its
// chosen move: construct, optionally replay moves, search, report. It is
// not a UCI or console protocol driver -- just a thin front-end over
// internal/engine for exercising the engine API end to end.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/seekerror/logw"

	"github.com/halvardh/corvid/internal/board"
	"github.com/halvardh/corvid/internal/engine"
)

var (
	position = flag.String("fen", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", "starting position in FEN")
	book     = flag.String("book", "chess_openings.txt", "opening book file, repository-root relative")
	moves    = flag.String("moves", "", "space-separated long-algebraic moves to apply before searching, e.g. \"e2e4 e7e5\"")
	depth    = flag.Int("depth", engine.SearchDepth, "search depth in plies")
)

func init() {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: corvid [options]

corvid searches one position and prints its chosen move.
Options:
`)
		flag.PrintDefaults()
	}
}

func main() {
	flag.Parse()
	ctx := context.Background()

	e := engine.New(ctx, *position, *book, engine.WithDepthLimit(*depth))

	if applied := strings.Fields(*moves); len(applied) > 0 {
		parsed := make([]board.Move, len(applied))
		for i, str := range applied {
			m, err := board.ParseMove(str)
			if err != nil {
				logw.Exitf(ctx, "Invalid move %q: %v", str, err)
			}
			parsed[i] = m
		}
		e.ApplyMoves(ctx, parsed...)
	}

	best, err := e.GetBestMove(ctx)
	if err != nil {
		logw.Exitf(ctx, "Search failed: %v", err)
	}

	fmt.Printf("%v %v\n", engine.Version(), e.ToFEN())
	fmt.Println(best)
}
