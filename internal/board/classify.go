package board

// Classify derives a move's type from the move itself plus context that is
// not stored on the Move: the castling rights in effect before the move,
// the en-passant target square in effect before the move, and the kind of
// the piece standing on From. hasRights and hasEP report whether rights and
// epTarget are supplied; when one is false the matching value is ignored.
// movingKind is required.
//
// The result's second value is the auxiliary piece classify derived for
// Promote and Castle (see Move's doc comment); it is zero for Standard and
// EnPassant.
func Classify(m Move, rights CastlingRights, hasRights bool, epTarget Square, hasEP bool, movingKind PieceKind) (MoveType, Piece) {
	if m.Piece.IsPresent() && (m.From.Rank == 1 || m.From.Rank == 6) {
		return Promote, m.Piece
	}

	if hasRights && m.From.File == 4 && (m.From.Rank == 0 || m.From.Rank == 7) {
		color := White
		if m.From.Rank == 7 {
			color = Black
		}
		king := Piece{King, color}
		queen := Piece{Queen, color}

		if (m.To.File == 6 || m.To.File == 7) && rights.HasKingSide(color) {
			return Castle, king
		}
		if (m.To.File == 0 || m.To.File == 2) && rights.HasQueenSide(color) {
			return Castle, queen
		}
	}

	if hasEP && movingKind == Pawn && m.To == epTarget {
		return EnPassant, NoPiece
	}

	return Standard, NoPiece
}
