package board

import "github.com/woodpusher/arbiter/position"

// Snapshot is a plain, self-contained description of a position: the unit
// exchanged with notation codecs and the unit pushed onto the history stack.
// All history entries carry the same fields so that undo is a wholesale
// restore with no per-move-type asymmetry.
type Snapshot struct {
	Pieces         [position.TotalSquares]Piece
	Turn           Side
	CastlingRights CastlingRights
	EnPassant      position.Square
	HalfMoveClock  int
	FullMoveNumber int
	Captured       []Piece
}

// StartingPosition returns a snapshot of the standard initial position.
func StartingPosition() Snapshot {
	snap := Snapshot{
		Turn:           SideWhite,
		EnPassant:      position.NoSquare,
		FullMoveNumber: 1,
	}
	snap.CastlingRights.Set(CastleDirectionWhiteKingside, true)
	snap.CastlingRights.Set(CastleDirectionWhiteQueenside, true)
	snap.CastlingRights.Set(CastleDirectionBlackKingside, true)
	snap.CastlingRights.Set(CastleDirectionBlackQueenside, true)

	backRank := []PieceType{
		PieceTypeRook, PieceTypeKnight, PieceTypeBishop, PieceTypeQueen,
		PieceTypeKing, PieceTypeBishop, PieceTypeKnight, PieceTypeRook,
	}
	for file := position.Square(0); file < position.Width; file++ {
		snap.Pieces[position.NewSquare(file, position.Rank1)] = NewPiece(SideWhite, backRank[file])
		snap.Pieces[position.NewSquare(file, position.Rank2)] = WhitePawn
		snap.Pieces[position.NewSquare(file, position.Rank7)] = BlackPawn
		snap.Pieces[position.NewSquare(file, position.Rank8)] = NewPiece(SideBlack, backRank[file])
	}
	return snap
}

// clone returns a deep copy; the piece grid copies by value but the
// captured-pieces list needs its own backing array.
func (s Snapshot) clone() Snapshot {
	cp := s
	cp.Captured = append([]Piece(nil), s.Captured...)
	return cp
}
