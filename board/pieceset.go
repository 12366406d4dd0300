package board

import (
	"fmt"

	"github.com/woodpusher/arbiter/position"
)

// PieceSet is the mechanical piece storage: a 64-cell grid with O(1) lookup
// by square and cached king squares. It performs no legality checking; a Put
// on an occupied square or a Remove on an empty one indicates a corrupted
// caller and panics.
type PieceSet struct {
	squares [position.TotalSquares]Piece
	kings   [3]position.Square // indexed by Side
}

func NewPieceSet() *PieceSet {
	ps := &PieceSet{}
	ps.kings[SideWhite] = position.NoSquare
	ps.kings[SideBlack] = position.NoSquare
	return ps
}

// Get returns the piece on the square, or PieceNone.
func (ps *PieceSet) Get(sq position.Square) Piece {
	return ps.squares[sq]
}

// Put places a piece on an empty square.
func (ps *PieceSet) Put(p Piece, sq position.Square) {
	if ps.squares[sq] != PieceNone {
		panic(fmt.Sprintf("pieceset: put %s on occupied square %s", p, sq))
	}
	if p == PieceNone {
		panic(fmt.Sprintf("pieceset: put empty piece on %s", sq))
	}
	ps.squares[sq] = p
	if p.Type() == PieceTypeKing {
		ps.kings[p.Side()] = sq
	}
}

// Remove takes the piece off a square and returns it.
func (ps *PieceSet) Remove(sq position.Square) Piece {
	p := ps.squares[sq]
	if p == PieceNone {
		panic(fmt.Sprintf("pieceset: remove from empty square %s", sq))
	}
	ps.squares[sq] = PieceNone
	if p.Type() == PieceTypeKing {
		ps.kings[p.Side()] = position.NoSquare
	}
	return p
}

// KingSquare returns the cached square of the side's king, or NoSquare.
func (ps *PieceSet) KingSquare(s Side) position.Square {
	return ps.kings[s]
}

// Group lists every square holding exactly the given piece value, used for
// disambiguation search and material counts.
func (ps *PieceSet) Group(p Piece) []position.Square {
	var group []position.Square
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		if ps.squares[sq] == p {
			group = append(group, sq)
		}
	}
	return group
}

// Count returns the number of pieces of the given value on the board.
func (ps *PieceSet) Count(p Piece) int {
	n := 0
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		if ps.squares[sq] == p {
			n++
		}
	}
	return n
}

// Clone returns an independent copy of the set.
func (ps *PieceSet) Clone() *PieceSet {
	cp := *ps
	return &cp
}

// Placement copies out the raw grid.
func (ps *PieceSet) Placement() [position.TotalSquares]Piece {
	return ps.squares
}
