// Package fen converts between FEN strings and position snapshots. It is an
// adapter on the engine's boundary: the board package itself never parses
// text.
package fen

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/position"
)

// StartingPosition is the FEN of the standard initial position.
const StartingPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

// Parse decodes a six-segment FEN string into a position snapshot.
func Parse(fen string) (board.Snapshot, error) {
	var snap board.Snapshot
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return snap, fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != position.Width {
		return snap, fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var kings [3]int
	for r, row := range rows {
		rank := position.Square(position.Width - 1 - r)
		file := position.Square(0)
		skipped := false
		for _, cell := range row {
			if cell >= '1' && cell <= '8' {
				if skipped {
					return snap, fmt.Errorf("%w: split empty-cell run on rank %s", ErrInvalidFEN, rank.RankNotation())
				}
				skipped = true
				file += position.Square(cell - '0')
				continue
			}
			skipped = false
			if file >= position.Width {
				return snap, fmt.Errorf("%w: too many files on rank %s", ErrInvalidFEN, rank.RankNotation())
			}
			p := PieceFromSymbol(cell)
			if p == board.PieceNone {
				return snap, fmt.Errorf("%w: unknown symbol %q", ErrInvalidFEN, string(cell))
			}
			if p.Type() == board.PieceTypeKing {
				kings[p.Side()]++
			}
			snap.Pieces[position.NewSquare(file, rank)] = p
			file++
		}
		if file != position.Width {
			return snap, fmt.Errorf("%w: missing cells on rank %s", ErrInvalidFEN, rank.RankNotation())
		}
	}
	if kings[board.SideWhite] != 1 || kings[board.SideBlack] != 1 {
		return snap, fmt.Errorf("%w: each side needs exactly one king", ErrInvalidFEN)
	}

	switch segments[1] {
	case "w":
		snap.Turn = board.SideWhite
	case "b":
		snap.Turn = board.SideBlack
	default:
		return snap, fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 {
		return snap, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for _, e := range segments[2] {
			switch e {
			case 'K':
				snap.CastlingRights.Set(board.CastleDirectionWhiteKingside, true)
			case 'Q':
				snap.CastlingRights.Set(board.CastleDirectionWhiteQueenside, true)
			case 'k':
				snap.CastlingRights.Set(board.CastleDirectionBlackKingside, true)
			case 'q':
				snap.CastlingRights.Set(board.CastleDirectionBlackQueenside, true)
			default:
				return snap, fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}

	snap.EnPassant = position.NoSquare
	if segments[3] != "-" {
		sq, err := position.NewSquareFromNotation(segments[3])
		if err != nil {
			return snap, fmt.Errorf("%w: invalid en-passant square", ErrInvalidFEN)
		}
		snap.EnPassant = sq
	}

	halfMove, err := strconv.Atoi(segments[4])
	if err != nil || halfMove < 0 {
		return snap, fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	snap.HalfMoveClock = halfMove

	fullMove, err := strconv.Atoi(segments[5])
	if err != nil || fullMove < 1 {
		return snap, fmt.Errorf("%w: invalid full move number", ErrInvalidFEN)
	}
	snap.FullMoveNumber = fullMove

	return snap, nil
}

// Format encodes a snapshot as a six-segment FEN string.
func Format(snap board.Snapshot) string {
	builder := strings.Builder{}
	for rank := position.Square(position.Width) - 1; rank >= 0; rank-- {
		skip := 0
		for file := position.Square(0); file < position.Width; file++ {
			p := snap.Pieces[position.NewSquare(file, rank)]
			if p == board.PieceNone {
				skip++
				continue
			}
			if skip > 0 {
				_, _ = builder.WriteRune(rune('0' + skip))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN())
		}
		if skip > 0 {
			_, _ = builder.WriteRune(rune('0' + skip))
		}
		if rank > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if snap.Turn == board.SideBlack {
		_, _ = builder.WriteString(" b ")
	} else {
		_, _ = builder.WriteString(" w ")
	}

	if !snap.CastlingRights.IsSideAllowed(board.SideWhite) && !snap.CastlingRights.IsSideAllowed(board.SideBlack) {
		_, _ = builder.WriteRune('-')
	} else {
		if snap.CastlingRights.IsAllowed(board.CastleDirectionWhiteKingside) {
			_, _ = builder.WriteRune('K')
		}
		if snap.CastlingRights.IsAllowed(board.CastleDirectionWhiteQueenside) {
			_, _ = builder.WriteRune('Q')
		}
		if snap.CastlingRights.IsAllowed(board.CastleDirectionBlackKingside) {
			_, _ = builder.WriteRune('k')
		}
		if snap.CastlingRights.IsAllowed(board.CastleDirectionBlackQueenside) {
			_, _ = builder.WriteRune('q')
		}
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %s %d %d", snap.EnPassant.Notation(), snap.HalfMoveClock, snap.FullMoveNumber))
	return builder.String()
}

// PieceFromSymbol maps a FEN piece letter to its piece, or PieceNone.
func PieceFromSymbol(c rune) board.Piece {
	switch c {
	case 'P':
		return board.WhitePawn
	case 'B':
		return board.WhiteBishop
	case 'N':
		return board.WhiteKnight
	case 'R':
		return board.WhiteRook
	case 'Q':
		return board.WhiteQueen
	case 'K':
		return board.WhiteKing
	case 'p':
		return board.BlackPawn
	case 'b':
		return board.BlackBishop
	case 'n':
		return board.BlackKnight
	case 'r':
		return board.BlackRook
	case 'q':
		return board.BlackQueen
	case 'k':
		return board.BlackKing
	default:
		return board.PieceNone
	}
}
