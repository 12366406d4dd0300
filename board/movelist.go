package board

import "fmt"

// BrowseType selects how the move-list cursor moves.
type BrowseType uint8

const (
	BrowseFirst BrowseType = iota
	BrowsePrevious
	BrowseNext
	BrowseLast
)

func (t BrowseType) String() string {
	switch t {
	case BrowseFirst:
		return "First"
	case BrowsePrevious:
		return "Previous"
	case BrowseNext:
		return "Next"
	case BrowseLast:
		return "Last"
	default:
		return ""
	}
}

// MoveList records the linear sequence of played moves together with a
// movable cursor. The cursor ranges from -1 (before the first move) to
// Len()-1 and moves independently of the list's end. Moves are also
// addressable by the two-column white/black table scheme used for display;
// when Black opened the game (loaded from a mid-game position) the first
// row's white column stays empty and indexing shifts by one.
type MoveList struct {
	moves      []Move
	current    int
	blackOpens bool
}

func NewMoveList(blackOpens bool) *MoveList {
	return &MoveList{current: -1, blackOpens: blackOpens}
}

// AddMove appends a move and advances the cursor to it.
func (l *MoveList) AddMove(mv Move) {
	l.moves = append(l.moves, mv)
	l.current = len(l.moves) - 1
}

// RemoveLast drops the latest move; the cursor clamps to the new end.
func (l *MoveList) RemoveLast() {
	if len(l.moves) == 0 {
		panic("movelist: remove on empty list")
	}
	l.moves = l.moves[:len(l.moves)-1]
	if l.current >= len(l.moves) {
		l.current = len(l.moves) - 1
	}
}

// Browse moves the cursor without appending and returns its new value.
func (l *MoveList) Browse(t BrowseType) int {
	switch t {
	case BrowseFirst:
		l.current = -1
	case BrowsePrevious:
		if l.current > -1 {
			l.current--
		}
	case BrowseNext:
		if l.current < len(l.moves)-1 {
			l.current++
		}
	case BrowseLast:
		l.current = len(l.moves) - 1
	default:
		panic(fmt.Sprintf("movelist: unknown browse type %d", t))
	}
	return l.current
}

// Current returns the cursor: the index of the move whose resulting
// position is on display, or -1.
func (l *MoveList) Current() int {
	return l.current
}

// AtEnd reports whether the cursor sits on the latest move.
func (l *MoveList) AtEnd() bool {
	return l.current == len(l.moves)-1
}

// Len returns the number of recorded moves (plies).
func (l *MoveList) Len() int {
	return len(l.moves)
}

// Move returns the move at the given index.
func (l *MoveList) Move(index int) Move {
	return l.moves[index]
}

// All returns a copy of the recorded moves.
func (l *MoveList) All() []Move {
	return append([]Move(nil), l.moves...)
}

func (l *MoveList) shift() int {
	if l.blackOpens {
		return 1
	}
	return 0
}

// RowOf returns the display row of the move at index.
func (l *MoveList) RowOf(index int) int {
	return (index + l.shift()) / 2
}

// ColumnOf returns 0 for the white column and 1 for the black column.
func (l *MoveList) ColumnOf(index int) int {
	return (index + l.shift()) % 2
}

// TotalMoves counts display rows, rounding up for an odd trailing entry.
func (l *MoveList) TotalMoves() int {
	return (len(l.moves) + l.shift() + 1) / 2
}
