// Package position provides the square coordinate system of the board.
package position

import (
	"errors"
)

const (
	// Width is the number of files and ranks the board supports.
	Width = 8

	// TotalSquares is the number of addressable squares.
	TotalSquares = Width * Width
)

var (
	// ErrInvalidNotation represents an invalid notation error.
	ErrInvalidNotation = errors.New("invalid notation")
)

// Square addresses a single cell in rank-major order, A1=0 .. H8=63.
type Square int8

// NoSquare is the reserved sentinel for "no square".
const NoSquare Square = -1

const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// Files
const (
	FileA Square = iota
	FileB
	FileC
	FileD
	FileE
	FileF
	FileG
	FileH
)

// Ranks
const (
	Rank1 Square = iota
	Rank2
	Rank3
	Rank4
	Rank5
	Rank6
	Rank7
	Rank8
)

// NewSquare returns the square on the given file (0-7) and rank (0-7).
func NewSquare(file, rank Square) Square {
	return rank*Width + file
}

// NewSquareFromNotation parses algebraic notation such as "e4".
func NewSquareFromNotation(n string) (Square, error) {
	if len(n) != 2 {
		return NoSquare, ErrInvalidNotation
	}
	file := Square(n[0] - 'a')
	rank := Square(n[1] - '1')
	if file < 0 || file >= Width || rank < 0 || rank >= Width {
		return NoSquare, ErrInvalidNotation
	}
	return NewSquare(file, rank), nil
}

// IsValid reports whether the square lies on the board.
func (sq Square) IsValid() bool {
	return sq >= 0 && sq < TotalSquares
}

// File returns the square's file (0-7).
func (sq Square) File() Square {
	return sq % Width
}

// Rank returns the square's rank (0-7).
func (sq Square) Rank() Square {
	return sq / Width
}

// FileDistance returns the absolute file distance to another square.
func (sq Square) FileDistance(other Square) Square {
	d := sq.File() - other.File()
	if d < 0 {
		return -d
	}
	return d
}

// RankDistance returns the absolute rank distance to another square.
func (sq Square) RankDistance(other Square) Square {
	d := sq.Rank() - other.Rank()
	if d < 0 {
		return -d
	}
	return d
}

// Step returns the square reached by stepping the given offset, or NoSquare
// if the step would fall off the board. Offsets must not jump more than two
// files (a knight's jump); wider jumps are treated as wrap-arounds.
func (sq Square) Step(offset Square) Square {
	to := sq + offset
	if !to.IsValid() {
		return NoSquare
	}
	if d := to.File() - sq.File(); d < -2 || d > 2 {
		return NoSquare
	}
	return to
}

func (sq Square) String() string {
	return sq.Notation()
}

// Notation returns the algebraic notation of the square, or "-" for NoSquare.
func (sq Square) Notation() string {
	if !sq.IsValid() {
		return "-"
	}
	return sq.FileNotation() + sq.RankNotation()
}

// FileNotation returns the file letter of the square.
func (sq Square) FileNotation() string {
	if !sq.IsValid() {
		return ""
	}
	return string(rune('a' + sq.File()))
}

// RankNotation returns the rank digit of the square.
func (sq Square) RankNotation() string {
	if !sq.IsValid() {
		return ""
	}
	return string(rune('1' + sq.Rank()))
}
