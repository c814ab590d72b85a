package board

// PieceKind identifies a piece without color.
type PieceKind uint8

const (
	NoKind PieceKind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

func (k PieceKind) String() string {
	switch k {
	case Pawn:
		return "p"
	case Knight:
		return "n"
	case Bishop:
		return "b"
	case Rook:
		return "r"
	case Queen:
		return "q"
	case King:
		return "k"
	default:
		return "-"
	}
}

// Piece is a (kind, color) pair. The zero value (Kind == NoKind) represents
// the absence of a piece, used both for empty board squares and for the
// optional piece carried by a Move.
type Piece struct {
	Kind  PieceKind
	Color Color
}

// NoPiece is the zero Piece, i.e. "no piece present".
var NoPiece = Piece{}

// IsPresent reports whether the piece is set (as opposed to the zero value).
func (p Piece) IsPresent() bool {
	return p.Kind != NoKind
}

// ParsePiece parses a FEN piece letter: uppercase is White, lowercase is Black.
func ParsePiece(r rune) (Piece, bool) {
	var c Color
	if r >= 'a' && r <= 'z' {
		c = Black
	} else {
		c = White
	}

	switch r {
	case 'p', 'P':
		return Piece{Pawn, c}, true
	case 'n', 'N':
		return Piece{Knight, c}, true
	case 'b', 'B':
		return Piece{Bishop, c}, true
	case 'r', 'R':
		return Piece{Rook, c}, true
	case 'q', 'Q':
		return Piece{Queen, c}, true
	case 'k', 'K':
		return Piece{King, c}, true
	default:
		return NoPiece, false
	}
}

// FENLetter returns the FEN letter for the piece: uppercase for White,
// lowercase for Black.
func (p Piece) FENLetter() rune {
	var letter rune
	switch p.Kind {
	case Pawn:
		letter = 'p'
	case Knight:
		letter = 'n'
	case Bishop:
		letter = 'b'
	case Rook:
		letter = 'r'
	case Queen:
		letter = 'q'
	case King:
		letter = 'k'
	default:
		return '?'
	}
	if p.Color == White {
		return letter - ('a' - 'A')
	}
	return letter
}

// nominal is the material base value added to a piece's piece-square score,
// in the same units as the tables (see psqt.go). The King and Pawn have no
// material base: the King is never traded and the Pawn's table already
// encodes its value.
func (k PieceKind) nominal() int64 {
	switch k {
	case Queen:
		return 900
	case Rook:
		return 500
	case Bishop, Knight:
		return 300
	default:
		return 0
	}
}

// Score returns the phase-specific piece-square value of the piece standing
// on sq, plus its material base. Black's rank is mirrored before indexing
// since the tables are white-oriented.
func (p Piece) Score(sq Square, phase GamePhase) int64 {
	rank := sq.Rank
	if p.Color == Black {
		rank = 7 - rank
	}
	return pieceSquareTable[phase][p.Kind][rank][sq.File] + p.Kind.nominal()
}
