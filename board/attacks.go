package board

import "github.com/woodpusher/arbiter/position"

// Ray direction offsets in rank-major square numbering.
const (
	dirN  position.Square = 8
	dirS  position.Square = -8
	dirE  position.Square = 1
	dirW  position.Square = -1
	dirNE position.Square = 9
	dirNW position.Square = 7
	dirSE position.Square = -7
	dirSW position.Square = -9
)

var (
	rookDirections   = []position.Square{dirN, dirS, dirE, dirW}
	bishopDirections = []position.Square{dirNE, dirNW, dirSE, dirSW}
	queenDirections  = []position.Square{dirN, dirS, dirE, dirW, dirNE, dirNW, dirSE, dirSW}

	knightOffsets = []position.Square{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets   = []position.Square{dirSW, dirS, dirSE, dirW, dirE, dirNW, dirN, dirNE}

	// Process-wide immutable lookup tables, built once at init. They map a
	// square to the squares a knight/king standing there reaches, and to the
	// squares a pawn of either side attacks from there.
	attacksKnight [position.TotalSquares][]position.Square
	attacksKing   [position.TotalSquares][]position.Square
	attacksPawn   [3][position.TotalSquares][]position.Square // indexed by Side
)

func init() {
	initAttackTables()
	initZobrist()
}

func initAttackTables() {
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		for _, offset := range knightOffsets {
			if to := sq.Step(offset); to != position.NoSquare {
				attacksKnight[sq] = append(attacksKnight[sq], to)
			}
		}
		for _, offset := range kingOffsets {
			if to := sq.Step(offset); to != position.NoSquare {
				attacksKing[sq] = append(attacksKing[sq], to)
			}
		}
		for _, offset := range []position.Square{dirNW, dirNE} {
			if to := sq.Step(offset); to != position.NoSquare {
				attacksPawn[SideWhite][sq] = append(attacksPawn[SideWhite][sq], to)
			}
		}
		for _, offset := range []position.Square{dirSW, dirSE} {
			if to := sq.Step(offset); to != position.NoSquare {
				attacksPawn[SideBlack][sq] = append(attacksPawn[SideBlack][sq], to)
			}
		}
	}
}

// sliderDirections returns the ray set of a slider type, or nil for
// non-sliders.
func sliderDirections(t PieceType) []position.Square {
	switch t {
	case PieceTypeBishop:
		return bishopDirections
	case PieceTypeRook:
		return rookDirections
	case PieceTypeQueen:
		return queenDirections
	default:
		return nil
	}
}

// pawnAdvanceDirection returns the push offset of the side's pawns.
func pawnAdvanceDirection(s Side) position.Square {
	if s == SideWhite {
		return dirN
	}
	return dirS
}

// pawnStartRank returns the rank a side's pawns double-push from.
func pawnStartRank(s Side) position.Square {
	if s == SideWhite {
		return position.Rank2
	}
	return position.Rank7
}

// pawnPromoteRank returns the last rank for the side's pawns.
func pawnPromoteRank(s Side) position.Square {
	if s == SideWhite {
		return position.Rank8
	}
	return position.Rank1
}
