package board

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White 0-0"
	case CastleDirectionWhiteQueenside:
		return "White 0-0-0"
	case CastleDirectionBlackKingside:
		return "Black 0-0"
	case CastleDirectionBlackQueenside:
		return "Black 0-0-0"
	default:
		return ""
	}
}

func (d CastleDirection) Side() Side {
	switch d {
	case CastleDirectionWhiteKingside, CastleDirectionWhiteQueenside:
		return SideWhite
	case CastleDirectionBlackKingside, CastleDirectionBlackQueenside:
		return SideBlack
	default:
		return SideUnknown
	}
}

func (d CastleDirection) IsKingside() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionBlackKingside
}

// CastlingRights tracks the four castling availabilities as a bitmask.
// Within a game rights only ever get cleared; they come back solely through
// a full position reload.
type CastlingRights uint8

var maskCastlingRights = [5]CastlingRights{
	CastleDirectionWhiteKingside:  0b1000,
	CastleDirectionWhiteQueenside: 0b0100,
	CastleDirectionBlackKingside:  0b0010,
	CastleDirectionBlackQueenside: 0b0001,
}

func (c *CastlingRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastlingRights[d]
	} else {
		*c &^= maskCastlingRights[d]
	}
}

func (c CastlingRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastlingRights[d] != 0
}

func (c CastlingRights) IsSideAllowed(s Side) bool {
	if s == SideWhite {
		return c&(maskCastlingRights[CastleDirectionWhiteKingside]|maskCastlingRights[CastleDirectionWhiteQueenside]) != 0
	}
	return c&(maskCastlingRights[CastleDirectionBlackKingside]|maskCastlingRights[CastleDirectionBlackQueenside]) != 0
}

// KingMoved clears both rights for the side.
func (c *CastlingRights) KingMoved(s Side) {
	if s == SideWhite {
		c.Set(CastleDirectionWhiteKingside, false)
		c.Set(CastleDirectionWhiteQueenside, false)
	} else {
		c.Set(CastleDirectionBlackKingside, false)
		c.Set(CastleDirectionBlackQueenside, false)
	}
}

// RookMoved clears the single right tied to the rook's home square. It also
// covers the capture case: a rook taken on its home square loses the right
// the same way.
func (c *CastlingRights) RookMoved(d CastleDirection) {
	c.Set(d, false)
}
