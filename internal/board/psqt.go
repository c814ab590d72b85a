package board

// GamePhase coarsely classifies a position for the purpose of selecting a
// piece-square table. It is computed once when a Position is loaded (see
// Position.RecomputePhase) and held fixed for the rest of the game.
type GamePhase uint8

const (
	StartPhase GamePhase = iota
	MidPhase
	EndPhase

	numPhases = 3
)

func (p GamePhase) String() string {
	switch p {
	case StartPhase:
		return "start"
	case MidPhase:
		return "mid"
	case EndPhase:
		return "end"
	default:
		return "?"
	}
}

// pieceSquareTable holds a 3x7x8x8 table of positional bonuses (the NoKind
// slot is unused), keyed by
// game phase, piece kind and (rank, file) from White's point of view --
// Black mirrors the rank before indexing (see Piece.Score). Values for the
// Start and Mid phases follow the well-known "simplified evaluation
// function" set (Tomasz Michniewski); the End phase swaps in the endgame
// King and Pawn tables from the same source, since those two pieces behave
// very differently once material has been traded off. Knight, Bishop, Rook
// and Queen keep the same positional shape across phases: the teacher's
// data tables do the same for any piece whose good squares don't change
// with the phase.
var pieceSquareTable = [numPhases][7][8][8]int64{
	StartPhase: {
		Pawn:   pawnMidTable,
		Knight: knightTable,
		Bishop: bishopTable,
		Rook:   rookTable,
		Queen:  queenTable,
		King:   kingMidTable,
	},
	MidPhase: {
		Pawn:   pawnMidTable,
		Knight: knightTable,
		Bishop: bishopTable,
		Rook:   rookTable,
		Queen:  queenTable,
		King:   kingMidTable,
	},
	EndPhase: {
		Pawn:   pawnEndTable,
		Knight: knightTable,
		Bishop: bishopTable,
		Rook:   rookTable,
		Queen:  queenTable,
		King:   kingEndTable,
	},
}

var pawnMidTable = [8][8]int64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var pawnEndTable = [8][8]int64{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{10, 10, 10, 10, 10, 10, 10, 10},
	{15, 15, 20, 20, 20, 20, 15, 15},
	{25, 25, 30, 35, 35, 30, 25, 25},
	{45, 45, 50, 55, 55, 50, 45, 45},
	{70, 70, 75, 80, 80, 75, 70, 70},
	{100, 100, 100, 100, 100, 100, 100, 100},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var knightTable = [8][8]int64{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
}

var bishopTable = [8][8]int64{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
}

var rookTable = [8][8]int64{
	{0, 0, 0, 5, 5, 0, 0, 0},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
}

var queenTable = [8][8]int64{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
}

var kingMidTable = [8][8]int64{
	{20, 30, 10, 0, 0, 10, 30, 20},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
}

var kingEndTable = [8][8]int64{
	{-50, -30, -30, -30, -30, -30, -30, -50},
	{-30, -30, 0, 0, 0, 0, -30, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 30, 40, 40, 30, -10, -30},
	{-30, -10, 20, 30, 30, 20, -10, -30},
	{-30, -20, -10, 0, 0, -10, -20, -30},
	{-50, -40, -30, -20, -20, -30, -40, -50},
}
