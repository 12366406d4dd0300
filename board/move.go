package board

import "github.com/woodpusher/arbiter/position"

// Disambiguation tells how much of the origin square algebraic notation
// must spell out when several same-type pieces reach the same target.
type Disambiguation uint8

const (
	DisambiguateNone Disambiguation = iota
	DisambiguateFile
	DisambiguateRank
	DisambiguateBoth
)

// Move is a fact about a ply already decided to be legal. It is immutable
// once constructed; From always differs from To and Promotion is set iff a
// pawn reaches the last rank.
type Move struct {
	Piece    Piece
	From, To position.Square

	Captured  Piece
	Promotion PieceType

	IsCapture   bool
	IsEnPassant bool
	IsCheck     bool
	IsCheckmate bool
	Castle      CastleDirection

	Disambiguation Disambiguation
}

func (m Move) String() string {
	return m.Algebra()
}

// Algebra returns the move in standard algebraic notation, including
// disambiguation, capture, promotion, check and mate marks.
func (m Move) Algebra() string {
	if m.Castle != CastleDirectionUnknown {
		nt := "0-0"
		if !m.Castle.IsKingside() {
			nt = "0-0-0"
		}
		return nt + m.suffix()
	}
	var nt string
	if m.Piece.Type() == PieceTypePawn {
		if m.IsCapture {
			nt += m.From.FileNotation()
		}
	} else {
		nt += m.Piece.Type().SymbolAlgebra()
		switch m.Disambiguation {
		case DisambiguateFile:
			nt += m.From.FileNotation()
		case DisambiguateRank:
			nt += m.From.RankNotation()
		case DisambiguateBoth:
			nt += m.From.Notation()
		}
	}
	if m.IsCapture {
		nt += "x"
	}
	nt += m.To.Notation()
	if m.Promotion != PieceTypeUnknown {
		nt += "=" + m.Promotion.SymbolAlgebra()
	}
	return nt + m.suffix()
}

func (m Move) suffix() string {
	if m.IsCheckmate {
		return "#"
	}
	if m.IsCheck {
		return "+"
	}
	return ""
}

// UCI returns the move in long algebraic (UCI) notation.
func (m Move) UCI() string {
	nt := m.From.Notation() + m.To.Notation()
	if m.Promotion != PieceTypeUnknown {
		// UCI wants the promotion letter in lowercase
		nt += string(m.Promotion.SymbolAlgebra()[0] | 0x20)
	}
	return nt
}
