package board

// PieceType is the colorless identity of a piece.
type PieceType uint8

const (
	PieceTypeUnknown PieceType = iota
	PieceTypePawn
	PieceTypeBishop
	PieceTypeKnight
	PieceTypeRook
	PieceTypeQueen
	PieceTypeKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []PieceType{PieceTypeQueen, PieceTypeRook, PieceTypeBishop, PieceTypeKnight}

func (t PieceType) String() string {
	return t.Name()
}

func (t PieceType) Name() string {
	switch t {
	case PieceTypePawn:
		return "Pawn"
	case PieceTypeBishop:
		return "Bishop"
	case PieceTypeKnight:
		return "Knight"
	case PieceTypeRook:
		return "Rook"
	case PieceTypeQueen:
		return "Queen"
	case PieceTypeKing:
		return "King"
	default:
		return ""
	}
}

// SymbolAlgebra returns the capital letter used in algebraic notation,
// which is empty for pawns.
func (t PieceType) SymbolAlgebra() string {
	switch t {
	case PieceTypeBishop:
		return "B"
	case PieceTypeKnight:
		return "N"
	case PieceTypeRook:
		return "R"
	case PieceTypeQueen:
		return "Q"
	case PieceTypeKing:
		return "K"
	default:
		return ""
	}
}

// Piece is a concrete piece: a type owned by a side. Black pieces set the
// high bit so that masking it off yields the type, giving exactly twelve
// concrete values beside PieceNone.
type Piece uint8

const pieceSideBit Piece = 0b1000

const (
	PieceNone Piece = 0

	WhitePawn   = Piece(PieceTypePawn)
	WhiteBishop = Piece(PieceTypeBishop)
	WhiteKnight = Piece(PieceTypeKnight)
	WhiteRook   = Piece(PieceTypeRook)
	WhiteQueen  = Piece(PieceTypeQueen)
	WhiteKing   = Piece(PieceTypeKing)

	BlackPawn   = Piece(PieceTypePawn) | pieceSideBit
	BlackBishop = Piece(PieceTypeBishop) | pieceSideBit
	BlackKnight = Piece(PieceTypeKnight) | pieceSideBit
	BlackRook   = Piece(PieceTypeRook) | pieceSideBit
	BlackQueen  = Piece(PieceTypeQueen) | pieceSideBit
	BlackKing   = Piece(PieceTypeKing) | pieceSideBit

	// maxPieceValue bounds lookup tables indexed by Piece.
	maxPieceValue = int(BlackKing) + 1
)

// NewPiece combines a side and a type into a concrete piece.
func NewPiece(s Side, t PieceType) Piece {
	if t == PieceTypeUnknown || s == SideUnknown {
		return PieceNone
	}
	p := Piece(t)
	if s == SideBlack {
		p |= pieceSideBit
	}
	return p
}

// Type returns the colorless type of the piece.
func (p Piece) Type() PieceType {
	return PieceType(p &^ pieceSideBit)
}

// Side returns the side that owns the piece.
func (p Piece) Side() Side {
	if p == PieceNone {
		return SideUnknown
	}
	if p&pieceSideBit != 0 {
		return SideBlack
	}
	return SideWhite
}

func (p Piece) String() string {
	if p == PieceNone {
		return ""
	}
	return p.Side().String() + " " + p.Type().Name()
}

// SymbolFEN returns the FEN letter of the piece, uppercase for White.
func (p Piece) SymbolFEN() string {
	var sym rune
	switch p.Type() {
	case PieceTypePawn:
		sym = 'P'
	case PieceTypeBishop:
		sym = 'B'
	case PieceTypeKnight:
		sym = 'N'
	case PieceTypeRook:
		sym = 'R'
	case PieceTypeQueen:
		sym = 'Q'
	case PieceTypeKing:
		sym = 'K'
	default:
		return ""
	}
	if p.Side() == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

// SymbolUnicode returns the figurine glyph of the piece.
func (p Piece) SymbolUnicode() string {
	switch p.Side() {
	case SideWhite:
		switch p.Type() {
		case PieceTypePawn:
			return "♙"
		case PieceTypeBishop:
			return "♗"
		case PieceTypeKnight:
			return "♘"
		case PieceTypeRook:
			return "♖"
		case PieceTypeQueen:
			return "♕"
		case PieceTypeKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p.Type() {
		case PieceTypePawn:
			return "♟"
		case PieceTypeBishop:
			return "♝"
		case PieceTypeKnight:
			return "♞"
		case PieceTypeRook:
			return "♜"
		case PieceTypeQueen:
			return "♛"
		case PieceTypeKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}
