package board

import "fmt"

// HistoryStack stores the snapshot taken before each played move, in
// lockstep with the move list: entry i is the position move i was played
// from. Browsing reads entries without removing them; only undo pops.
type HistoryStack struct {
	snapshots []Snapshot
}

func NewHistoryStack() *HistoryStack {
	return &HistoryStack{}
}

// Size returns the number of stored snapshots, which equals the number of
// played moves.
func (h *HistoryStack) Size() int {
	return len(h.snapshots)
}

// Push appends a snapshot.
func (h *HistoryStack) Push(snap Snapshot) {
	h.snapshots = append(h.snapshots, snap.clone())
}

// PopLast removes and returns the most recent snapshot.
func (h *HistoryStack) PopLast() Snapshot {
	if len(h.snapshots) == 0 {
		panic("history: pop on empty stack")
	}
	snap := h.snapshots[len(h.snapshots)-1]
	h.snapshots = h.snapshots[:len(h.snapshots)-1]
	return snap
}

// RestoreTo returns the snapshot at the given index for read-only display.
// Index 0 is the position before the first move; index Size()-1 the position
// before the latest move. The live position is not stored here.
func (h *HistoryStack) RestoreTo(index int) Snapshot {
	if index < 0 || index >= len(h.snapshots) {
		panic(fmt.Sprintf("history: index %d out of range [0,%d)", index, len(h.snapshots)))
	}
	return h.snapshots[index].clone()
}

// Reset drops all snapshots.
func (h *HistoryStack) Reset() {
	h.snapshots = h.snapshots[:0]
}
