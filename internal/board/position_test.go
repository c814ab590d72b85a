package board_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/halvardh/corvid/internal/board"
	"github.com/halvardh/corvid/internal/board/fen"
)

func TestDoMoveStandard(t *testing.T) {
	pos := fen.StartPosition()
	pos.DoMove(board.Move{From: board.Square{File: 4, Rank: 1}, To: board.Square{File: 4, Rank: 3}})

	require.False(t, pos.Board[1][4].IsPresent())
	require.Equal(t, board.Piece{Kind: board.Pawn, Color: board.White}, pos.Board[3][4])
	require.Equal(t, board.Black, pos.SideToMove)
	require.Equal(t, board.Square{File: 4, Rank: 2}, pos.EnPassant)
}

func TestDoMoveFullMoveCounterAdvancesAfterBlack(t *testing.T) {
	pos := fen.StartPosition()
	require.Equal(t, 1, pos.FullMoveCounter)

	pos.DoMove(board.Move{From: board.Square{File: 4, Rank: 1}, To: board.Square{File: 4, Rank: 3}})
	require.Equal(t, 1, pos.FullMoveCounter)

	pos.DoMove(board.Move{From: board.Square{File: 4, Rank: 6}, To: board.Square{File: 4, Rank: 4}})
	require.Equal(t, 2, pos.FullMoveCounter)
}

func TestDoMoveCastleKingSide(t *testing.T) {
	pos, err := fen.Decode("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	require.NoError(t, err)

	pos.DoMove(board.Move{
		From:  board.Square{File: 4, Rank: 0},
		To:    board.Square{File: 7, Rank: 0},
		Piece: board.Piece{Kind: board.King, Color: board.White},
	})

	require.Equal(t, board.Piece{Kind: board.King, Color: board.White}, pos.Board[0][6])
	require.Equal(t, board.Piece{Kind: board.Rook, Color: board.White}, pos.Board[0][5])
	require.False(t, pos.Board[0][4].IsPresent())
	require.False(t, pos.Board[0][7].IsPresent())
	require.False(t, pos.Castling.HasKingSide(board.White))
	require.False(t, pos.Castling.HasQueenSide(board.White))
	require.True(t, pos.Castling.HasKingSide(board.Black))
}

func TestDoMoveEnPassantCapture(t *testing.T) {
	pos, err := fen.Decode("rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3")
	require.NoError(t, err)

	pos.DoMove(board.Move{From: board.Square{File: 4, Rank: 4}, To: board.Square{File: 3, Rank: 5}})

	require.Equal(t, board.Piece{Kind: board.Pawn, Color: board.White}, pos.Board[5][3])
	require.False(t, pos.Board[4][3].IsPresent(), "captured pawn removed")
	require.False(t, pos.Board[4][4].IsPresent())
}

func TestDoMovePromotion(t *testing.T) {
	pos, err := fen.Decode("8/P7/8/8/8/8/8/4k2K w - - 0 1")
	require.NoError(t, err)

	pos.DoMove(board.Move{
		From:  board.Square{File: 0, Rank: 6},
		To:    board.Square{File: 0, Rank: 7},
		Piece: board.Piece{Kind: board.Queen, Color: board.White},
	})

	require.Equal(t, board.Piece{Kind: board.Queen, Color: board.White}, pos.Board[7][0])
}

func TestCastlingRightsRevokedByRookCapture(t *testing.T) {
	pos, err := fen.Decode("r3k3/8/8/8/8/8/8/R3K2R w KQq - 0 1")
	require.NoError(t, err)
	require.True(t, pos.Castling.HasQueenSide(board.Black))

	pos.DoMove(board.Move{From: board.Square{File: 0, Rank: 0}, To: board.Square{File: 0, Rank: 7}})
	require.False(t, pos.Castling.HasQueenSide(board.Black), "black's rook was captured on its home square")
}

func TestCastlingRightsRevokedByKingCapture(t *testing.T) {
	pos, err := fen.Decode("4k2r/8/8/8/4Q3/8/8/4K2R w Kk - 0 1")
	require.NoError(t, err)
	require.True(t, pos.Castling.HasKingSide(board.Black))

	pos.DoMove(board.Move{From: board.Square{File: 4, Rank: 3}, To: board.Square{File: 4, Rank: 7}})
	require.False(t, pos.Castling.HasKingSide(board.Black), "black's king was captured, not merely moved")
	require.True(t, pos.Castling.HasKingSide(board.White), "the capturing side's own rights are untouched")
}

// TestDoMoveScoreMatchesFullRescan exercises spec §3's invariant --
// score_white after do_move equals what a full rescan would produce -- for
// each move type DoMove implements incrementally: a plain capture, a
// king-side castle, an en-passant capture and a capturing promotion.
func TestDoMoveScoreMatchesFullRescan(t *testing.T) {
	cases := []struct {
		name string
		fen  string
		move board.Move
	}{
		{
			name: "standard capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 2",
			move: board.Move{From: board.Square{File: 4, Rank: 3}, To: board.Square{File: 3, Rank: 4}},
		},
		{
			name: "king-side castle",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			move: board.Move{From: board.Square{File: 4, Rank: 0}, To: board.Square{File: 7, Rank: 0}, Piece: board.Piece{Kind: board.King, Color: board.White}},
		},
		{
			name: "en passant capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3pP3/8/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 3",
			move: board.Move{From: board.Square{File: 4, Rank: 4}, To: board.Square{File: 3, Rank: 5}},
		},
		{
			name: "capturing promotion",
			fen:  "1n2k3/P7/8/8/8/8/8/4K3 w - - 0 1",
			move: board.Move{From: board.Square{File: 0, Rank: 6}, To: board.Square{File: 1, Rank: 7}, Piece: board.Piece{Kind: board.Queen, Color: board.White}},
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			pos, err := fen.Decode(c.fen)
			require.NoError(t, err)

			pos.DoMove(c.move)
			require.Equal(t, pos.CalculateBoardScore(), pos.ScoreWhite)
		})
	}
}

// TestDoMoveScoreIgnoresUnreliablePromotionAuxColor guards against a
// White promotion parsed from long-algebraic notation: ParseMove's
// promotion letter is always lowercase, so ParsePiece always reports the
// auxiliary piece as Black regardless of the real mover. DoMove must use
// the mover's actual color, not the auxiliary piece's, when scoring the
// placed piece.
func TestDoMoveScoreIgnoresUnreliablePromotionAuxColor(t *testing.T) {
	pos, err := fen.Decode("4k3/P7/8/8/8/8/8/4K3 w - - 0 1")
	require.NoError(t, err)

	m, err := board.ParseMove("a7a8q")
	require.NoError(t, err)
	require.Equal(t, board.Black, m.Piece.Color, "parsed promotion letter is always lowercase")

	pos.DoMove(m)
	require.Equal(t, board.Piece{Kind: board.Queen, Color: board.White}, pos.Board[7][0])
	require.Equal(t, pos.CalculateBoardScore(), pos.ScoreWhite)
}

func TestCalculateBoardScoreSymmetricAtStart(t *testing.T) {
	pos := fen.StartPosition()
	require.Equal(t, int64(0), pos.CalculateBoardScore())
	require.Equal(t, int64(0), pos.ScoreWhite)
}

func TestCalculateBoardScoreReportsMissingKing(t *testing.T) {
	pos, err := fen.Decode("8/8/8/8/4k3/8/8/7K w - - 0 1")
	require.NoError(t, err)
	pos.Board[3][4] = board.NoPiece

	require.Equal(t, board.CheckMateScore, pos.CalculateBoardScore())
}

func TestCloneIsIndependent(t *testing.T) {
	pos := fen.StartPosition()
	clone := pos.Clone()

	clone.DoMove(board.Move{From: board.Square{File: 4, Rank: 1}, To: board.Square{File: 4, Rank: 3}})

	require.True(t, pos.Board[1][4].IsPresent(), "original position must be untouched")
	require.False(t, clone.Board[1][4].IsPresent())
	require.Len(t, pos.History, 0)
	require.Len(t, clone.History, 1)
}

func TestApplyMoves(t *testing.T) {
	pos := fen.StartPosition()
	e4 := board.Move{From: board.Square{File: 4, Rank: 1}, To: board.Square{File: 4, Rank: 3}}
	e5 := board.Move{From: board.Square{File: 4, Rank: 6}, To: board.Square{File: 4, Rank: 4}}

	pos.ApplyMoves(e4, e5)

	require.Equal(t, []board.Move{e4, e5}, pos.History)
	require.Equal(t, board.White, pos.SideToMove)
}
