package board

import (
	"math/rand"

	"github.com/woodpusher/arbiter/position"
)

// Zobrist keys, built once at init from a fixed-seed source so that hashes
// are stable across processes.
var (
	zobristPiece         [maxPieceValue][position.TotalSquares]uint64
	zobristEnPassantFile [position.Width]uint64
	zobristCastling      [16]uint64
	zobristSideWhite     uint64
)

func initZobrist() {
	r := rand.New(rand.NewSource(7))
	for _, p := range []Piece{
		WhitePawn, WhiteBishop, WhiteKnight, WhiteRook, WhiteQueen, WhiteKing,
		BlackPawn, BlackBishop, BlackKnight, BlackRook, BlackQueen, BlackKing,
	} {
		for sq := position.Square(0); sq < position.TotalSquares; sq++ {
			zobristPiece[p][sq] = r.Uint64()
		}
	}
	for file := position.Square(0); file < position.Width; file++ {
		zobristEnPassantFile[file] = r.Uint64()
	}
	for i := range zobristCastling {
		zobristCastling[i] = r.Uint64()
	}
	zobristSideWhite = r.Uint64()
}

// HashPosition computes the canonical key of a position over placement, side
// to move, castling rights and en-passant file. The clocks are deliberately
// excluded so that repeats of the same position collapse onto one key.
func HashPosition(pieces *PieceSet, turn Side, rights CastlingRights, enPassant position.Square) uint64 {
	var h uint64
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		if p := pieces.Get(sq); p != PieceNone {
			h ^= zobristPiece[p][sq]
		}
	}
	if turn == SideWhite {
		h ^= zobristSideWhite
	}
	h ^= zobristCastling[rights]
	if enPassant != position.NoSquare {
		h ^= zobristEnPassantFile[enPassant.File()]
	}
	return h
}

// RepetitionTable tracks how often each position key has occurred.
type RepetitionTable struct {
	occurrences map[uint64]int
}

func NewRepetitionTable() *RepetitionTable {
	return &RepetitionTable{occurrences: make(map[uint64]int)}
}

// Record counts one more occurrence of the key and returns the new count.
func (t *RepetitionTable) Record(key uint64) int {
	t.occurrences[key]++
	return t.occurrences[key]
}

// Forget removes one occurrence of the key, never dropping below zero.
// It is used only when undoing a move.
func (t *RepetitionTable) Forget(key uint64) {
	n, ok := t.occurrences[key]
	if !ok {
		return
	}
	if n <= 1 {
		delete(t.occurrences, key)
		return
	}
	t.occurrences[key] = n - 1
}

// Count returns the occurrence count of the key.
func (t *RepetitionTable) Count(key uint64) int {
	return t.occurrences[key]
}

// Reset drops all tracked occurrences.
func (t *RepetitionTable) Reset() {
	t.occurrences = make(map[uint64]int)
}
