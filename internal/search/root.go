package search

import (
	"context"
	"fmt"
	"math/rand"
	"sync"

	"github.com/seekerror/stdlib/pkg/util/contextx"

	"github.com/halvardh/corvid/internal/board"
)

// ErrNoMoves is returned by GetBestMove when the side to move has no
// pseudo-legal moves at all, e.g. a side with no pieces on the board.
var ErrNoMoves = fmt.Errorf("search: no moves available")

// GetBestMove searches depth plies from pos and returns the best root move
// along with its score (from the point of view of the side to move).
//
// Each root move is explored by its own goroutine against an independent
// board.Position clone, so no mutable state is shared across the fan-out.
// Goroutines are joined in dispatch order rather than completion order,
// which keeps result ordering -- and so the tie-break below -- independent
// of scheduling jitter. Among moves tied for the best score, the return
// value is chosen uniformly at random, matching a player who has no further
// basis to prefer one equally good line over another.
func GetBestMove(ctx context.Context, pos *board.Position, depth int) (board.Move, int64, error) {
	moves := board.PseudoLegalMoves(pos, pos.SideToMove)
	if len(moves) == 0 {
		return board.Move{}, 0, ErrNoMoves
	}

	scores := make([]int64, len(moves))

	var wg sync.WaitGroup
	for i, m := range moves {
		wg.Add(1)
		go func(i int, m board.Move) {
			defer wg.Done()

			child := pos.Clone()
			child.DoMove(m)

			if missingKing(child, pos.SideToMove) {
				scores[i] = board.CheckMateScore
				return
			}
			if depth <= 1 {
				scores[i] = -evaluate(child)
				return
			}
			scores[i] = -negamax(child, depth-1, board.CheckMateScore+1)
		}(i, m)
	}
	wg.Wait()

	if contextx.IsCancelled(ctx) {
		return board.Move{}, 0, ctx.Err()
	}

	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	var tied []int
	for i, s := range scores {
		if s == best {
			tied = append(tied, i)
		}
	}
	choice := tied[rand.Intn(len(tied))]

	return moves[choice], best, nil
}
