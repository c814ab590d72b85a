// Package search implements negamax move selection over internal/board
// positions, with alpha-beta-style cutoffs and mate-distance adjustment.
package search

import "github.com/halvardh/corvid/internal/board"

// mateThreshold marks the boundary above (below, negated) which a score is
// considered a forced mate rather than a material evaluation, leaving
// enough headroom below board.CheckMateScore to absorb a full search's
// worth of per-ply decrements without a mate score reading as a normal one.
const mateThreshold = board.CheckMateScore - 1<<20

// evaluate scores pos from the point of view of the side to move: positive
// is good for the mover. CalculateBoardScore is always from White's point
// of view, so Black's turn negates it.
func evaluate(pos *board.Position) int64 {
	s := pos.CalculateBoardScore()
	if pos.SideToMove == board.Black {
		return -s
	}
	return s
}

// negamax returns the best score reachable from pos by the side to move,
// searching depth plies and pruning any line that cannot beat scoreToBeat
// (the negated score the opponent is already guaranteed elsewhere in the
// tree -- the classical alpha-beta fail-high cutoff, expressed in negamax's
// single-sign convention).
//
// A position with the mover's own king already missing or the opponent's
// king capturable this move both fall out of evaluate's CheckMateScore
// sentinel; mate scores returned from a deeper ply are moved one step
// closer to zero per ply of recursion, so a forced mate in 1 always
// outscores a forced mate in 3.
func negamax(pos *board.Position, depth int, scoreToBeat int64) int64 {
	if depth == 0 {
		return evaluate(pos)
	}

	moves := board.PseudoLegalMoves(pos, pos.SideToMove)
	if len(moves) == 0 {
		return evaluate(pos)
	}

	best := -board.CheckMateScore - 1
	for _, m := range moves {
		child := pos.Clone()
		child.DoMove(m)

		if missingKing(child, pos.SideToMove) {
			// The move captured the opposing king outright: an immediate,
			// maximal win, not subject to further search or decrement.
			if board.CheckMateScore > best {
				best = board.CheckMateScore
			}
			if best >= scoreToBeat {
				break
			}
			continue
		}

		score := -negamax(child, depth-1, -best)
		score = closeMateByOnePly(score)

		if score > best {
			best = score
			if best >= scoreToBeat {
				break
			}
		}
	}
	return best
}

// missingKing reports whether moverColor, the side that just moved, has
// captured the other color's king on child.
func missingKing(child *board.Position, moverColor board.Color) bool {
	target := moverColor.Opposite()
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := child.Board[rank][file]
			if p.Kind == board.King && p.Color == target {
				return false
			}
		}
	}
	return true
}

// closeMateByOnePly nudges a mate score one step closer to zero, so a mate
// found one ply deeper in the tree scores strictly worse than the same
// mate found shallower.
func closeMateByOnePly(score int64) int64 {
	switch {
	case score > mateThreshold:
		return score - 1
	case score < -mateThreshold:
		return score + 1
	default:
		return score
	}
}
