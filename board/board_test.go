package board_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/fen"
	"github.com/woodpusher/arbiter/position"
)

func playMoves(t *testing.T, b *board.Board, moves [][2]position.Square) board.GameState {
	t.Helper()
	var state board.GameState
	for _, mv := range moves {
		var err error
		state, err = b.MakePlayerMove(mv[0], mv[1], board.PieceTypeUnknown)
		if err != nil {
			t.Fatalf("unexpected error on %s%s: %v", mv[0], mv[1], err)
		}
	}
	return state
}

func TestMakePlayerMoveRejections(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()

	if _, err := b.MakePlayerMove(position.E4, position.E5, board.PieceTypeUnknown); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("move from empty square: got=%v want=%v", err, board.ErrIllegalMove)
	}
	if _, err := b.MakePlayerMove(position.E7, position.E5, board.PieceTypeUnknown); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("move out of turn: got=%v want=%v", err, board.ErrIllegalMove)
	}
	if _, err := b.MakePlayerMove(position.E2, position.E5, board.PieceTypeUnknown); !errors.Is(err, board.ErrIllegalMove) {
		t.Errorf("unreachable target: got=%v want=%v", err, board.ErrIllegalMove)
	}
	if got := b.MoveList().Len(); got != 0 {
		t.Errorf("rejected moves must not be recorded: got=%d", got)
	}
}

func TestFoolsMate(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	state := playMoves(t, b, [][2]position.Square{
		{position.F2, position.F3},
		{position.E7, position.E5},
		{position.G2, position.G4},
		{position.D8, position.H4},
	})
	if state != board.StateCheckmate {
		t.Errorf("unexpected state: got=%s want=%s", state, board.StateCheckmate)
	}
	last := b.MoveList().Move(b.MoveList().Len() - 1)
	if got := last.Algebra(); got != "Qh4#" {
		t.Errorf("unexpected notation: got=%q want=%q", got, "Qh4#")
	}
	if got := b.FindLegalMoves(board.WhiteKing, b.KingSquare(board.SideWhite)); len(got) != 0 {
		t.Errorf("mated king should have no moves: got=%v", got)
	}
	if got := b.LegalMoves(board.SideWhite); len(got) != 0 {
		t.Errorf("mated side should have no moves: got=%v", got)
	}
}

func TestStalemate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		fen  string
		side board.Side
	}{
		{
			name: "queen boxes the king",
			fen:  "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
			side: board.SideBlack,
		},
		{
			name: "king trapped in the corner",
			fen:  "8/8/8/8/8/kq6/8/K7 w - - 0 1",
			side: board.SideWhite,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			b := boardFromFEN(t, tt.fen)
			if got := b.CheckGameState(tt.side); got != board.StateStalemate {
				t.Errorf("unexpected state: got=%s want=%s", got, board.StateStalemate)
			}
		})
	}
}

func TestCheckBeforeMate(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	state := playMoves(t, b, [][2]position.Square{
		{position.E2, position.E4},
		{position.E7, position.E5},
		{position.D1, position.H5},
	})
	if state != board.StatePlaying {
		t.Fatalf("unexpected state: got=%s want=%s", state, board.StatePlaying)
	}
	state = playMoves(t, b, [][2]position.Square{{position.G7, position.G6}, {position.H5, position.E5}})
	if state != board.StateCheck {
		t.Errorf("unexpected state: got=%s want=%s", state, board.StateCheck)
	}
	last := b.MoveList().Move(b.MoveList().Len() - 1)
	if got := last.Algebra(); got != "Qxe5+" {
		t.Errorf("unexpected notation: got=%q want=%q", got, "Qxe5+")
	}
}

func TestUndoRestoresExactState(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	s0 := b.Snapshot()

	playMoves(t, b, [][2]position.Square{{position.E2, position.E4}})
	s1 := b.Snapshot()
	playMoves(t, b, [][2]position.Square{{position.D7, position.D5}, {position.E4, position.D5}})

	if err := b.UndoPlayerMove(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.UndoPlayerMove(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(s1, b.Snapshot()); diff != "" {
		t.Errorf("undo did not restore the position (-want +got):\n%s", diff)
	}
	if got := b.MoveList().Len(); got != 1 {
		t.Errorf("unexpected move list length: got=%d want=1", got)
	}

	if err := b.UndoPlayerMove(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff(s0, b.Snapshot()); diff != "" {
		t.Errorf("undo did not restore the initial position (-want +got):\n%s", diff)
	}
	if err := b.UndoPlayerMove(); !errors.Is(err, board.ErrNothingToUndo) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrNothingToUndo)
	}
}

func TestThreefoldRepetition(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	shuffle := [][2]position.Square{
		{position.G1, position.F3},
		{position.G8, position.F6},
		{position.F3, position.G1},
		{position.F6, position.G8},
	}

	state := playMoves(t, b, shuffle)
	if state != board.StatePlaying {
		t.Fatalf("unexpected state after one cycle: got=%s", state)
	}
	state = playMoves(t, b, shuffle)
	if state != board.StateDrawRepetition {
		t.Errorf("unexpected state: got=%s want=%s", state, board.StateDrawRepetition)
	}
}

func TestFiftyMoveRule(t *testing.T) {
	t.Parallel()
	b := boardFromFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 99 80")

	state, err := b.MakePlayerMove(position.A1, position.A2, board.PieceTypeUnknown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != board.StateDrawFiftyMove {
		t.Errorf("unexpected state: got=%s want=%s", state, board.StateDrawFiftyMove)
	}
	if got := b.HalfMoveClock(); got != 100 {
		t.Errorf("unexpected half move clock: got=%d want=100", got)
	}
}

func TestHalfMoveClockResets(t *testing.T) {
	t.Parallel()
	b := boardFromFEN(t, "4k3/8/8/8/8/8/4P3/R3K3 w - - 42 30")

	playMoves(t, b, [][2]position.Square{{position.E2, position.E4}})
	if got := b.HalfMoveClock(); got != 0 {
		t.Errorf("pawn move should reset the clock: got=%d", got)
	}
}

func TestInsufficientMaterial(t *testing.T) {
	t.Parallel()
	b := boardFromFEN(t, "4k3/8/8/8/8/8/3b4/4K3 w - - 0 1")

	state, err := b.MakePlayerMove(position.E1, position.D2, board.PieceTypeUnknown)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state != board.StateDrawInsufficientMaterial {
		t.Errorf("unexpected state: got=%s want=%s", state, board.StateDrawInsufficientMaterial)
	}
}

func TestDisambiguation(t *testing.T) {
	t.Parallel()

	t.Run("rooks on one rank", func(t *testing.T) {
		t.Parallel()
		b := boardFromFEN(t, "4k3/8/8/8/8/8/4K3/R6R w - - 0 1")
		playMoves(t, b, [][2]position.Square{{position.A1, position.D1}})
		if got := b.MoveList().Move(0).Algebra(); got != "Rad1" {
			t.Errorf("unexpected notation: got=%q want=%q", got, "Rad1")
		}
	})

	t.Run("rooks on one file", func(t *testing.T) {
		t.Parallel()
		b := boardFromFEN(t, "4k3/8/8/8/R7/8/4K3/R7 w - - 0 1")
		playMoves(t, b, [][2]position.Square{{position.A1, position.A2}})
		if got := b.MoveList().Move(0).Algebra(); got != "R1a2" {
			t.Errorf("unexpected notation: got=%q want=%q", got, "R1a2")
		}
	})

	t.Run("lone piece needs no tag", func(t *testing.T) {
		t.Parallel()
		b := board.NewBoard()
		playMoves(t, b, [][2]position.Square{{position.G1, position.F3}})
		if got := b.MoveList().Move(0).Algebra(); got != "Nf3" {
			t.Errorf("unexpected notation: got=%q want=%q", got, "Nf3")
		}
	})
}

func TestSetupMode(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()

	if err := b.SetPieceInSetupMode(board.WhiteQueen, position.E4); !errors.Is(err, board.ErrWrongMode) {
		t.Errorf("edit outside setup mode: got=%v want=%v", err, board.ErrWrongMode)
	}

	b.SetSetupMode(true)
	if !b.IsSetupMode() {
		t.Fatal("board should be in setup mode")
	}
	if _, err := b.MakePlayerMove(position.E2, position.E4, board.PieceTypeUnknown); !errors.Is(err, board.ErrWrongMode) {
		t.Errorf("play in setup mode: got=%v want=%v", err, board.ErrWrongMode)
	}
	if err := b.SetPieceInSetupMode(board.WhitePawn, position.A8); !errors.Is(err, board.ErrPawnOnBackRank) {
		t.Errorf("pawn on back rank: got=%v want=%v", err, board.ErrPawnOnBackRank)
	}
	if err := b.RemovePieceInSetupMode(position.E1); !errors.Is(err, board.ErrKingDeletion) {
		t.Errorf("king deletion: got=%v want=%v", err, board.ErrKingDeletion)
	}
	if err := b.MovePieceInSetupMode(position.D1, position.E8); !errors.Is(err, board.ErrKingDeletion) {
		t.Errorf("king replacement: got=%v want=%v", err, board.ErrKingDeletion)
	}

	// a second king relocates the existing one
	if err := b.SetPieceInSetupMode(board.WhiteKing, position.C4); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.KingSquare(board.SideWhite); got != position.C4 {
		t.Errorf("unexpected white king square: got=%s want=c4", got)
	}
	if !b.IsSquareEmpty(position.E1) {
		t.Error("e1 should be vacated by the king relocation")
	}

	if err := b.RemovePieceInSetupMode(position.A1); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := b.MovePieceInSetupMode(position.D1, position.D5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.PieceAt(position.D5); got != board.WhiteQueen {
		t.Errorf("unexpected piece on d5: got=%v", got)
	}

	// leaving setup mode restarts the game from the edited position
	b.SetSetupMode(false)
	if b.IsSetupMode() {
		t.Fatal("board should have left setup mode")
	}
	if err := b.UndoPlayerMove(); !errors.Is(err, board.ErrNothingToUndo) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrNothingToUndo)
	}
	if got := b.MoveList().Len(); got != 0 {
		t.Errorf("unexpected move list length: got=%d want=0", got)
	}
}

func TestBrowseMoveList(t *testing.T) {
	t.Parallel()
	b := board.NewBoard()
	playMoves(t, b, [][2]position.Square{
		{position.E2, position.E4},
		{position.E7, position.E5},
		{position.G1, position.F3},
	})
	live := b.Snapshot()

	if err := b.BrowseMoveList(board.BrowseFirst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.PieceAt(position.E2); got != board.WhitePawn {
		t.Errorf("initial position should be on display: e2 holds %v", got)
	}
	if got := b.MoveList().Current(); got != -1 {
		t.Errorf("unexpected cursor: got=%d want=-1", got)
	}
	if diff := cmp.Diff(live, b.Snapshot()); diff != "" {
		t.Errorf("browsing must not disturb the live snapshot (-want +got):\n%s", diff)
	}

	if err := b.BrowseMoveList(board.BrowseNext); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.PieceAt(position.E4); got != board.WhitePawn {
		t.Errorf("position after 1.e4 should be on display: e4 holds %v", got)
	}
	if got := b.Turn(); got != board.SideBlack {
		t.Errorf("unexpected turn on display: got=%s", got)
	}

	if err := b.BrowseMoveList(board.BrowseLast); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.PieceAt(position.F3); got != board.WhiteKnight {
		t.Errorf("live position should be back: f3 holds %v", got)
	}

	// making a move while browsing first snaps back to the live position
	if err := b.BrowseMoveList(board.BrowseFirst); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.MakePlayerMove(position.B8, position.C6, board.PieceTypeUnknown); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := b.MoveList().Len(); got != 4 {
		t.Errorf("unexpected move list length: got=%d want=4", got)
	}
	if !b.MoveList().AtEnd() {
		t.Error("the cursor should sit on the latest move")
	}
}

func TestLoadPositionRoundTrip(t *testing.T) {
	t.Parallel()
	const f = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	b := boardFromFEN(t, f)

	if got := fen.Format(b.Snapshot()); got != f {
		t.Errorf("unexpected round trip: got=%q want=%q", got, f)
	}

	snap := b.Snapshot()
	b.LoadPosition(snap)
	if diff := cmp.Diff(snap, b.Snapshot()); diff != "" {
		t.Errorf("reloading the same snapshot changed the position (-want +got):\n%s", diff)
	}
	if got := b.MoveList().Len(); got != 0 {
		t.Errorf("unexpected move list length: got=%d want=0", got)
	}
}

func TestMoveListOpensWithBlack(t *testing.T) {
	t.Parallel()
	b := boardFromFEN(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1")
	playMoves(t, b, [][2]position.Square{{position.E7, position.E5}})

	l := b.MoveList()
	if got := l.ColumnOf(0); got != 1 {
		t.Errorf("the opening black move belongs in the black column: got=%d", got)
	}
	if got := l.TotalMoves(); got != 1 {
		t.Errorf("unexpected number of rows: got=%d want=1", got)
	}
}
