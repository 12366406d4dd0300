package board

type GameState uint8

const (
	// StateUnknown is when game state is unknown.
	StateUnknown GameState = iota

	// StatePlaying is when the game is in progress.
	StatePlaying

	// StateCheck is when the side to move is in check.
	StateCheck

	// StateCheckmate is when the side to move is in checkmate.
	StateCheckmate

	// StateStalemate is when the side to move has no legal move and is not in check.
	StateStalemate

	// StateDrawRepetition is when the same position occurred three times.
	StateDrawRepetition

	// StateDrawFiftyMove is when 50 full moves passed without a capture or pawn move.
	StateDrawFiftyMove

	// StateDrawInsufficientMaterial is when neither side can ever deliver mate.
	StateDrawInsufficientMaterial
)

func (s GameState) IsRunning() bool {
	switch s {
	case StatePlaying, StateCheck:
		return true
	default:
		return false
	}
}

func (s GameState) IsCheck() bool {
	return s == StateCheck
}

func (s GameState) IsCheckmate() bool {
	return s == StateCheckmate
}

func (s GameState) IsDraw() bool {
	switch s {
	case StateStalemate, StateDrawRepetition, StateDrawFiftyMove, StateDrawInsufficientMaterial:
		return true
	default:
		return false
	}
}

func (s GameState) String() string {
	switch s {
	case StateUnknown:
		return "StateUnknown"
	case StatePlaying:
		return "StatePlaying"
	case StateCheck:
		return "StateCheck"
	case StateCheckmate:
		return "StateCheckmate"
	case StateStalemate:
		return "StateStalemate"
	case StateDrawRepetition:
		return "StateDrawRepetition"
	case StateDrawFiftyMove:
		return "StateDrawFiftyMove"
	case StateDrawInsufficientMaterial:
		return "StateDrawInsufficientMaterial"
	default:
		return ""
	}
}
