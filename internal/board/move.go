package board

import "fmt"

// MoveType is the classification derived from a Move plus context; it is
// never stored on the Move itself.
type MoveType uint8

const (
	Standard MoveType = iota
	Promote
	Castle
	EnPassant
)

// Move is a from/to square pair plus an optional auxiliary piece. The
// auxiliary piece carries:
//
//   - for a promotion, the promoted-to piece (color = mover),
//   - for a castle, a King or Queen of the mover's color indicating
//     king-side vs queen-side (the To field still points at the rook's
//     original square, not the king's destination -- see classify.go),
//   - otherwise it is the zero Piece and unused.
type Move struct {
	From, To Square
	Piece    Piece
}

// Equals reports whether two moves carry the same from/to/piece.
func (m Move) Equals(o Move) bool {
	return m.From == o.From && m.To == o.To && m.Piece == o.Piece
}

// ParseMove parses a move in long-algebraic notation: two file-rank pairs
// followed by an optional lowercase promotion letter, e.g. "e2e4" or
// "a7a8q".
func ParseMove(str string) (Move, error) {
	if len(str) != 4 && len(str) != 5 {
		return Move{}, fmt.Errorf("invalid move notation: %q", str)
	}

	from, err := ParseSquareStr(str[0:2])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move notation %q: %w", str, err)
	}
	to, err := ParseSquareStr(str[2:4])
	if err != nil {
		return Move{}, fmt.Errorf("invalid move notation %q: %w", str, err)
	}

	m := Move{From: from, To: to}
	if len(str) == 5 {
		promo, ok := ParsePiece(rune(str[4]))
		if !ok || promo.Kind == Pawn || promo.Kind == King {
			return Move{}, fmt.Errorf("invalid promotion in move notation %q", str)
		}
		m.Piece = promo
	}
	return m, nil
}

// String renders the move in long-algebraic notation. The promotion letter
// is only emitted when the move actually classifies as a promotion: castle
// and standard moves never carry a trailing letter even though Piece may be
// set for bookkeeping. Per the wire format, the promotion letter is always
// lowercase regardless of the mover's color, so it comes from Kind.String()
// rather than the color-sensitive FENLetter().
func (m Move) String() string {
	if m.Piece.IsPresent() && (m.From.Rank == 1 || m.From.Rank == 6) {
		return fmt.Sprintf("%v%v%v", m.From, m.To, m.Piece.Kind)
	}
	return fmt.Sprintf("%v%v", m.From, m.To)
}
