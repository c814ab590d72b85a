package board

import "fmt"

// Board is the 8x8 grid of squares, indexed [rank][file]. The zero Piece
// means the square is empty.
type Board [8][8]Piece

// Position is a complete, self-contained snapshot of a game: board
// contents, whose move it is, remaining castling rights, the en-passant
// target (if any), the move history applied to reach it, and the cached
// evaluation of the current board. Decode/Encode live in the fen
// subpackage, which builds and reads Position values through these fields.
type Position struct {
	Board           Board
	SideToMove      Color
	Castling        CastlingRights
	EnPassant       Square
	History         []Move
	ScoreWhite      int64
	FullMoveCounter int
	HalfMoveClock   int
	Phase           GamePhase
}

// rookHomeSquares maps each corner square to the single castling right that
// is lost forever once that corner stops holding its original rook -- by
// the rook leaving, or by being captured there.
var rookHomeSquares = map[Square]CastlingRights{
	{File: 0, Rank: 0}: WhiteQueenSide,
	{File: 7, Rank: 0}: WhiteKingSide,
	{File: 0, Rank: 7}: BlackQueenSide,
	{File: 7, Rank: 7}: BlackKingSide,
}

// DoMove applies m to the position in place: it classifies the move,
// updates the board, applies the incremental score delta for the piece(s)
// that moved plus anything captured, revokes any castling rights the move
// affects, sets or clears the en-passant target, advances the side to move
// and full-move counter, and appends to History. Game phase is not touched
// here -- it is computed once when a Position is loaded (see
// internal/board/fen) and held fixed for the rest of the game, matching
// the piece-square tables' own phase dimension. m is assumed pseudo-legal
// and consistent with the position (e.g. produced by PseudoLegalMoves or
// ParseMove against this exact position).
func (pos *Position) DoMove(m Move) {
	moving := pos.Board[m.From.Rank][m.From.File]
	mtype, aux := Classify(m, pos.Castling, true, pos.EnPassant, pos.EnPassant.IsValid(), moving.Kind)
	color := pos.SideToMove

	// Castling never captures; m.To is the rook's own home square there
	// (the wire economy, see Move's doc comment), not an enemy-occupied
	// square. En passant's victim sits beside the mover, not on m.To.
	var captured Piece
	var captureSquare Square
	switch mtype {
	case EnPassant:
		captureSquare = Square{File: m.To.File, Rank: m.From.Rank}
		captured = pos.Board[captureSquare.Rank][captureSquare.File]
	case Castle:
	default:
		captureSquare = m.To
		captured = pos.Board[m.To.Rank][m.To.File]
	}

	if mtype == EnPassant || moving.Kind == Pawn || captured.IsPresent() {
		pos.HalfMoveClock = 0
	} else {
		pos.HalfMoveClock++
	}

	delta := -moving.Score(m.From, pos.Phase)
	switch mtype {
	case Castle:
		delta += pos.castleScoreDelta(m, aux, color)
		pos.doCastle(m, aux, color)
	case EnPassant:
		delta += moving.Score(m.To, pos.Phase)
		pos.doEnPassant(m, color)
	case Promote:
		// aux.Color is unreliable here: the long-algebraic wire format's
		// promotion letter is always lowercase regardless of the mover
		// (see ParsePiece), so a Move built by ParseMove always carries a
		// Black-colored promotion piece even for a White promotion. The
		// real mover color is pos.SideToMove, not aux.Color.
		placed := Piece{Kind: aux.Kind, Color: color}
		delta += placed.Score(m.To, pos.Phase)
		pos.doPromote(m, aux, color)
	default:
		delta += moving.Score(m.To, pos.Phase)
		pos.doStandard(m)
	}

	if captured.Kind == King {
		if captured.Color == White {
			pos.ScoreWhite = -CheckMateScore
		} else {
			pos.ScoreWhite = CheckMateScore
		}
	} else {
		if captured.IsPresent() {
			delta += captured.Score(captureSquare, pos.Phase)
		}
		if color == White {
			pos.ScoreWhite += delta
		} else {
			pos.ScoreWhite -= delta
		}
	}

	pos.updateCastlingRights(m, moving, captured)
	pos.updateEnPassant(m, moving)

	if color == Black {
		pos.FullMoveCounter++
	}
	pos.SideToMove = color.Opposite()
	pos.History = append(pos.History, m)
}

// castleScoreDelta returns the score delta contributed by the rook's move
// plus the king's new-square value; the king's old-square value is already
// subtracted by DoMove before dispatching here, since m.From is the king's
// square for a Castle move.
func (pos *Position) castleScoreDelta(m Move, aux Piece, color Color) int64 {
	homeRank := m.From.Rank
	kingTo, rookFrom, rookTo := Square{File: 6, Rank: homeRank}, Square{File: 7, Rank: homeRank}, Square{File: 5, Rank: homeRank}
	if aux.Kind == Queen {
		kingTo, rookFrom, rookTo = Square{File: 2, Rank: homeRank}, Square{File: 0, Rank: homeRank}, Square{File: 3, Rank: homeRank}
	}

	king := Piece{Kind: King, Color: color}
	rook := pos.Board[rookFrom.Rank][rookFrom.File]
	return king.Score(kingTo, pos.Phase) - rook.Score(rookFrom, pos.Phase) + rook.Score(rookTo, pos.Phase)
}

func (pos *Position) doStandard(m Move) {
	pos.Board[m.To.Rank][m.To.File] = pos.Board[m.From.Rank][m.From.File]
	pos.Board[m.From.Rank][m.From.File] = NoPiece
}

// doCastle moves both king and rook. m.To carries the rook's original
// square (see Move's doc comment); aux.Kind distinguishes king-side from
// queen-side.
func (pos *Position) doCastle(m Move, aux Piece, color Color) {
	homeRank := m.From.Rank
	kingTo, rookFrom, rookTo := Square{File: 6, Rank: homeRank}, Square{File: 7, Rank: homeRank}, Square{File: 5, Rank: homeRank}
	if aux.Kind == Queen {
		kingTo, rookFrom, rookTo = Square{File: 2, Rank: homeRank}, Square{File: 0, Rank: homeRank}, Square{File: 3, Rank: homeRank}
	}

	pos.Board[m.From.Rank][m.From.File] = NoPiece
	pos.Board[kingTo.Rank][kingTo.File] = Piece{Kind: King, Color: color}
	pos.Board[rookFrom.Rank][rookFrom.File] = NoPiece
	pos.Board[rookTo.Rank][rookTo.File] = Piece{Kind: Rook, Color: color}
}

// doEnPassant moves the capturing pawn and removes the captured pawn, which
// sits beside the mover rather than on m.To.
func (pos *Position) doEnPassant(m Move, color Color) {
	pos.Board[m.From.Rank][m.From.File] = NoPiece
	pos.Board[m.To.Rank][m.To.File] = Piece{Kind: Pawn, Color: color}
	pos.Board[m.From.Rank][m.To.File] = NoPiece
}

// doPromote replaces the pawn with aux, the promoted-to piece.
func (pos *Position) doPromote(m Move, aux Piece, color Color) {
	pos.Board[m.From.Rank][m.From.File] = NoPiece
	pos.Board[m.To.Rank][m.To.File] = Piece{Kind: aux.Kind, Color: color}
}

// updateCastlingRights drops both of a color's rights if that color's king
// either moved or was captured this move, plus the usual per-rook-corner
// revocation for a rook that moved off or was captured on its home square.
func (pos *Position) updateCastlingRights(m Move, moving, captured Piece) {
	if moving.Kind == King {
		pos.Castling = pos.Castling.Without(moving.Color)
	}
	if captured.Kind == King {
		pos.Castling = pos.Castling.Without(captured.Color)
	}
	if right, ok := rookHomeSquares[m.From]; ok {
		pos.Castling &^= right
	}
	if right, ok := rookHomeSquares[m.To]; ok {
		pos.Castling &^= right
	}
}

func (pos *Position) updateEnPassant(m Move, moving Piece) {
	delta := m.To.Rank - m.From.Rank
	if moving.Kind == Pawn && (delta == 2 || delta == -2) {
		pos.EnPassant = Square{File: m.From.File, Rank: (m.From.Rank + m.To.Rank) / 2}
		return
	}
	pos.EnPassant = InvalidSquare
}

// ApplyMoves applies each move in order via DoMove. It is a convenience for
// replaying a game from its start position, e.g. from a recorded move list
// or a search's principal variation.
func (pos *Position) ApplyMoves(moves ...Move) {
	for _, m := range moves {
		pos.DoMove(m)
	}
}

// CalculateBoardScore recomputes the position's score from scratch, from
// White's point of view: the sum of every piece's phase-specific
// piece-square score, White's pieces positive and Black's negative. If
// either king is missing from the board -- the search's king-capture
// sentinel for checkmate -- the corresponding CheckMateScore is returned
// instead of a material sum.
func (pos *Position) CalculateBoardScore() int64 {
	var whiteKing, blackKing bool
	var score int64

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			p := pos.Board[rank][file]
			if !p.IsPresent() {
				continue
			}
			if p.Kind == King {
				if p.Color == White {
					whiteKing = true
				} else {
					blackKing = true
				}
			}

			s := p.Score(Square{File: file, Rank: rank}, pos.Phase)
			if p.Color == White {
				score += s
			} else {
				score -= s
			}
		}
	}

	switch {
	case !whiteKing:
		return -CheckMateScore
	case !blackKing:
		return CheckMateScore
	default:
		return score
	}
}

// RecomputePhase classifies the position from scratch and stores the
// result in Phase: Mid once more than 8 pieces occupy ranks 2..5 or the
// fullmove counter passes 15, End once total piece count drops below 12
// (which overrides Mid), Start otherwise. Callers loading a Position from
// FEN must call this once before trusting Phase or a score computed from
// it; DoMove itself never calls it; phase is fixed for the life of a
// Position once loaded.
func (pos *Position) RecomputePhase() {
	pos.Phase = pos.computeGamePhase()
}

func (pos *Position) computeGamePhase() GamePhase {
	var total, inMiddleRanks int
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if !pos.Board[rank][file].IsPresent() {
				continue
			}
			total++
			if rank >= 2 && rank <= 5 {
				inMiddleRanks++
			}
		}
	}

	phase := StartPhase
	if inMiddleRanks > 8 || pos.FullMoveCounter > 15 {
		phase = MidPhase
	}
	if total < 12 {
		phase = EndPhase
	}
	return phase
}

func (pos *Position) String() string {
	return fmt.Sprintf("pos{turn=%v, castling=%v, ep=%v, score=%v, phase=%v, fullmove=%v}",
		pos.SideToMove, pos.Castling, pos.EnPassant, pos.ScoreWhite, pos.Phase, pos.FullMoveCounter)
}

// Clone returns a deep copy of pos, safe to mutate independently: each
// root move explored by the search's per-goroutine workers operates on its
// own Clone rather than sharing the parent position.
func (pos *Position) Clone() *Position {
	clone := *pos
	clone.History = append([]Move(nil), pos.History...)
	return &clone
}
