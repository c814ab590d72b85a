// Package fen decodes and encodes Forsyth-Edwards Notation, the standard
// textual representation of a chess position.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/halvardh/corvid/internal/board"
)

// Decode parses a full FEN record into a Position: piece placement, side to
// move, castling availability, en-passant target, halfmove clock and
// fullmove number, in that order and separated by single spaces.
func Decode(s string) (*board.Position, error) {
	fields := strings.Fields(s)
	if len(fields) != 6 {
		return nil, fmt.Errorf("fen: expected 6 fields, got %d: %q", len(fields), s)
	}

	b, err := decodeBoard(fields[0])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	side, err := decodeSide(fields[1])
	if err != nil {
		return nil, fmt.Errorf("fen: %w", err)
	}

	castling := decodeCastling(fields[2])

	ep := board.InvalidSquare
	if fields[3] != "-" {
		ep, err = board.ParseSquareStr(fields[3])
		if err != nil {
			return nil, fmt.Errorf("fen: invalid en passant target: %w", err)
		}
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid halfmove clock: %w", err)
	}
	fullmove, err := strconv.Atoi(fields[5])
	if err != nil {
		return nil, fmt.Errorf("fen: invalid fullmove number: %w", err)
	}

	pos := &board.Position{
		Board:           b,
		SideToMove:      side,
		Castling:        castling,
		EnPassant:       ep,
		HalfMoveClock:   halfmove,
		FullMoveCounter: fullmove,
	}
	pos.RecomputePhase()
	pos.ScoreWhite = pos.CalculateBoardScore()
	return pos, nil
}

func decodeBoard(field string) (board.Board, error) {
	var b board.Board

	rows := strings.Split(field, "/")
	if len(rows) != 8 {
		return b, fmt.Errorf("expected 8 ranks, got %d: %q", len(rows), field)
	}

	for i, row := range rows {
		rank := 7 - i
		file := 0
		for _, r := range row {
			if r >= '1' && r <= '8' {
				file += int(r - '0')
				continue
			}
			p, ok := board.ParsePiece(r)
			if !ok {
				return b, fmt.Errorf("invalid piece letter %q in rank %q", r, row)
			}
			if file > 7 {
				return b, fmt.Errorf("rank %q overflows the board", row)
			}
			b[rank][file] = p
			file++
		}
		if file != 8 {
			return b, fmt.Errorf("rank %q does not account for all 8 files", row)
		}
	}

	return b, nil
}

func decodeSide(field string) (board.Color, error) {
	switch field {
	case "w":
		return board.White, nil
	case "b":
		return board.Black, nil
	default:
		return board.White, fmt.Errorf("invalid side to move: %q", field)
	}
}

func decodeCastling(field string) board.CastlingRights {
	if field == "-" {
		return 0
	}
	var c board.CastlingRights
	for _, r := range field {
		switch r {
		case 'K':
			c |= board.WhiteKingSide
		case 'Q':
			c |= board.WhiteQueenSide
		case 'k':
			c |= board.BlackKingSide
		case 'q':
			c |= board.BlackQueenSide
		}
	}
	return c
}

// Encode renders a Position as a full FEN record. Unlike a naive
// translation that hardcodes the en-passant, halfmove and fullmove fields,
// Encode reflects the position's actual state in each, so Decode(Encode(p))
// reproduces p's board, side to move, castling rights, en-passant target
// and both move counters. The move history is not encoded.
func Encode(pos *board.Position) string {
	var sb strings.Builder

	for rank := 7; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < 8; file++ {
			p := pos.Board[rank][file]
			if !p.IsPresent() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteRune(p.FENLetter())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(pos.SideToMove.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.Castling.String())

	sb.WriteByte(' ')
	sb.WriteString(pos.EnPassant.String())

	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.HalfMoveClock))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(pos.FullMoveCounter))

	return sb.String()
}

// StartPosition returns the standard chess starting position.
func StartPosition() *board.Position {
	pos, err := Decode("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
	if err != nil {
		panic(err)
	}
	return pos
}
