package board

import "github.com/woodpusher/arbiter/position"

// PerftResult tallies the legal-move tree at a fixed depth.
type PerftResult struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
}

// Add accumulates another tally into r.
func (r *PerftResult) Add(o PerftResult) {
	r.Nodes += o.Nodes
	r.Captures += o.Captures
	r.EnPassants += o.EnPassants
	r.Castles += o.Castles
	r.Promotions += o.Promotions
}

// Clone copies the live position into a fresh board with empty history,
// move list and repetition tracking.
func (b *Board) Clone() *Board {
	return &Board{
		pieces:         b.pieces.Clone(),
		turn:           b.turn,
		castlingRights: b.castlingRights,
		enPassant:      b.enPassant,
		halfMoveClock:  b.halfMoveClock,
		fullMoveNumber: b.fullMoveNumber,
		captured:       append([]Piece(nil), b.captured...),
		history:        NewHistoryStack(),
		moveList:       NewMoveList(b.turn == SideBlack),
		repetition:     NewRepetitionTable(),
	}
}

// Perft walks the legal-move tree to the given depth and counts leaf nodes
// together with capture, en-passant, castling and promotion breakdowns at
// the leaves.
func (b *Board) Perft(depth int) PerftResult {
	if depth <= 0 {
		return PerftResult{Nodes: 1}
	}
	var result PerftResult
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		p := b.pieces.Get(sq)
		if p == PieceNone || p.Side() != b.turn {
			continue
		}
		for _, mv := range b.PseudoLegalMoves(p, sq) {
			if !b.isMoveSafe(mv) {
				continue
			}
			if depth == 1 {
				result.Nodes++
				if mv.IsCapture {
					result.Captures++
				}
				if mv.IsEnPassant {
					result.EnPassants++
				}
				if mv.Castle != CastleDirectionUnknown {
					result.Castles++
				}
				if mv.Promotion != PieceTypeUnknown {
					result.Promotions++
				}
				continue
			}
			child := b.Clone()
			child.applyMove(mv)
			result.Add(child.Perft(depth - 1))
		}
	}
	return result
}

// PerftDivide returns the per-root-move node counts at the given depth,
// keyed by the move in UCI notation.
func (b *Board) PerftDivide(depth int) map[string]uint64 {
	counts := make(map[string]uint64)
	for _, mv := range b.LegalMoves(b.turn) {
		child := b.Clone()
		child.applyMove(mv)
		counts[mv.UCI()] = child.Perft(depth - 1).Nodes
	}
	return counts
}
