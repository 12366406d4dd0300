package board

import "errors"

var (
	// ErrIllegalMove is returned for player moves that break the rules.
	// The board is left untouched when it is returned.
	ErrIllegalMove = errors.New("illegal move")

	// ErrWrongMode is returned when an operation requires the other of
	// setup/play mode.
	ErrWrongMode = errors.New("wrong mode")

	// ErrKingDeletion is returned by setup-mode edits that would remove
	// a king from the board.
	ErrKingDeletion = errors.New("king cannot be removed")

	// ErrPawnOnBackRank is returned by setup-mode edits that would put a
	// pawn on the first or last rank.
	ErrPawnOnBackRank = errors.New("pawn cannot stand on back rank")

	// ErrNothingToUndo is returned when no played move remains to undo.
	ErrNothingToUndo = errors.New("no move to undo")
)
