package board

import (
	"fmt"
	"strings"

	"github.com/woodpusher/arbiter/position"
)

// Board is the aggregate root of the rules engine: one live position, the
// history of snapshots before each played move, the move list, and the
// repetition table. It is exclusively owned by one caller; no internal
// locking is provided.
type Board struct {
	pieces         *PieceSet
	turn           Side
	castlingRights CastlingRights
	enPassant      position.Square
	halfMoveClock  int
	fullMoveNumber int
	captured       []Piece

	history    *HistoryStack
	moveList   *MoveList
	repetition *RepetitionTable

	setupMode bool
	browsing  bool
	live      Snapshot
}

type boardConfig struct {
	snapshot Snapshot
}

type BoardOption func(*boardConfig)

// WithPosition initializes the board from the given snapshot instead of the
// standard starting position.
func WithPosition(snap Snapshot) BoardOption {
	return func(cfg *boardConfig) {
		cfg.snapshot = snap
	}
}

func NewBoard(opts ...BoardOption) *Board {
	cfg := &boardConfig{
		snapshot: StartingPosition(),
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{
		history:    NewHistoryStack(),
		repetition: NewRepetitionTable(),
	}
	b.LoadPosition(cfg.snapshot)
	return b
}

// LoadPosition replaces the whole game with the given snapshot: history,
// move list, captured pieces and repetition tracking all restart from it.
// Loading the same snapshot twice is a no-op relative to loading it once.
func (b *Board) LoadPosition(snap Snapshot) {
	b.restoreState(snap)
	if b.turn == SideUnknown {
		b.turn = SideWhite
	}
	if b.fullMoveNumber < 1 {
		b.fullMoveNumber = 1
	}
	b.history.Reset()
	b.moveList = NewMoveList(b.turn == SideBlack)
	b.repetition.Reset()
	b.repetition.Record(b.positionKey())
	b.browsing = false
	b.setupMode = false
}

// Snapshot captures the live position as a plain structure.
func (b *Board) Snapshot() Snapshot {
	if b.browsing {
		return b.live.clone()
	}
	return b.snapshotState()
}

func (b *Board) snapshotState() Snapshot {
	return Snapshot{
		Pieces:         b.pieces.Placement(),
		Turn:           b.turn,
		CastlingRights: b.castlingRights,
		EnPassant:      b.enPassant,
		HalfMoveClock:  b.halfMoveClock,
		FullMoveNumber: b.fullMoveNumber,
		Captured:       append([]Piece(nil), b.captured...),
	}
}

// restoreState overwrites the live position fields from a snapshot. It does
// not touch history, move list or repetition tracking.
func (b *Board) restoreState(snap Snapshot) {
	ps := NewPieceSet()
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		if p := snap.Pieces[sq]; p != PieceNone {
			ps.Put(p, sq)
		}
	}
	b.pieces = ps
	b.turn = snap.Turn
	b.castlingRights = snap.CastlingRights
	b.enPassant = snap.EnPassant
	b.halfMoveClock = snap.HalfMoveClock
	b.fullMoveNumber = snap.FullMoveNumber
	b.captured = append([]Piece(nil), snap.Captured...)
}

func (b *Board) positionKey() uint64 {
	return HashPosition(b.pieces, b.turn, b.castlingRights, b.enPassant)
}

// MakePlayerMove validates and executes one ply for the side to move. On an
// illegal move the board is left untouched and ErrIllegalMove is returned;
// on success it reports the resulting game state, with draws taking
// precedence in the order repetition, fifty-move rule, insufficient
// material.
func (b *Board) MakePlayerMove(from, to position.Square, promotion PieceType) (GameState, error) {
	if b.setupMode {
		return StateUnknown, fmt.Errorf("%w: board is in setup mode", ErrWrongMode)
	}
	b.returnToLive()

	p := b.pieces.Get(from)
	if p == PieceNone {
		return StateUnknown, fmt.Errorf("%w: no piece on %s", ErrIllegalMove, from)
	}
	if p.Side() != b.turn {
		return StateUnknown, fmt.Errorf("%w: it is %s's move", ErrIllegalMove, b.turn)
	}
	mv, ok := b.findMove(p, from, to, promotion)
	if !ok {
		return StateUnknown, fmt.Errorf("%w: %s %s%s", ErrIllegalMove, p, from, to)
	}
	mv.Disambiguation = b.disambiguate(mv)

	prev := b.snapshotState()
	b.applyMove(mv)

	occurrences := b.repetition.Record(b.positionKey())
	state := b.CheckGameState(b.turn)
	mv.IsCheck = state == StateCheck || state == StateCheckmate
	mv.IsCheckmate = state == StateCheckmate

	switch {
	case occurrences >= 3:
		state = StateDrawRepetition
	case b.halfMoveClock >= 100:
		state = StateDrawFiftyMove
	case b.insufficientMaterial():
		state = StateDrawInsufficientMaterial
	}

	b.history.Push(prev)
	b.moveList.AddMove(mv)
	return state, nil
}

// findMove locates the fully-flagged pseudo-legal move matching the request
// and verifies king safety.
func (b *Board) findMove(p Piece, from, to position.Square, promotion PieceType) (Move, bool) {
	for _, mv := range b.PseudoLegalMoves(p, from) {
		if mv.To == to && mv.Promotion == promotion {
			if !b.isMoveSafe(mv) {
				return Move{}, false
			}
			return mv, true
		}
	}
	return Move{}, false
}

// disambiguate searches the mover's same-type group for other pieces that
// could legally reach the same target. Pawns and kings never need a tag.
func (b *Board) disambiguate(mv Move) Disambiguation {
	t := mv.Piece.Type()
	if t == PieceTypePawn || t == PieceTypeKing {
		return DisambiguateNone
	}
	var sameFile, sameRank, conflict bool
	for _, sq := range b.pieces.Group(mv.Piece) {
		if sq == mv.From || !b.IsLegalMove(mv.Piece, sq, mv.To, PieceTypeUnknown) {
			continue
		}
		conflict = true
		if sq.File() == mv.From.File() {
			sameFile = true
		}
		if sq.Rank() == mv.From.Rank() {
			sameRank = true
		}
	}
	switch {
	case !conflict:
		return DisambiguateNone
	case !sameFile:
		return DisambiguateFile
	case !sameRank:
		return DisambiguateRank
	default:
		return DisambiguateBoth
	}
}

// applyMove mutates the live position: placement, captured list, en-passant
// square, castling rights, clocks and side to move.
func (b *Board) applyMove(mv Move) {
	s := mv.Piece.Side()
	applyMoveToSet(b.pieces, mv)
	if mv.IsCapture {
		b.captured = append(b.captured, mv.Captured)
	}

	// the en-passant square only survives the one ply after a double push
	b.enPassant = position.NoSquare
	if mv.Piece.Type() == PieceTypePawn && mv.From.RankDistance(mv.To) == 2 {
		b.enPassant = position.NewSquare(mv.From.File(), (mv.From.Rank()+mv.To.Rank())/2)
	}

	if mv.Piece.Type() == PieceTypeKing {
		b.castlingRights.KingMoved(s)
	}
	if mv.Piece.Type() == PieceTypeRook {
		if d := rookHomeCastleDirection(s, mv.From); d != CastleDirectionUnknown {
			b.castlingRights.RookMoved(d)
		}
	}
	if mv.IsCapture && !mv.IsEnPassant && mv.Captured.Type() == PieceTypeRook {
		if d := rookHomeCastleDirection(s.Opposite(), mv.To); d != CastleDirectionUnknown {
			b.castlingRights.RookMoved(d)
		}
	}

	if mv.Piece.Type() == PieceTypePawn || mv.IsCapture {
		b.halfMoveClock = 0
	} else {
		b.halfMoveClock++
	}

	b.turn = s.Opposite()
	if b.turn == SideWhite {
		b.fullMoveNumber++
	}
}

// UndoPlayerMove reverses the latest played move exactly: the prior
// snapshot is restored wholesale and the move list and repetition table
// shrink by one entry.
func (b *Board) UndoPlayerMove() error {
	if b.setupMode {
		return fmt.Errorf("%w: board is in setup mode", ErrWrongMode)
	}
	b.returnToLive()
	if b.history.Size() == 0 {
		return ErrNothingToUndo
	}
	b.repetition.Forget(b.positionKey())
	b.restoreState(b.history.PopLast())
	b.moveList.RemoveLast()
	return nil
}

// BrowseMoveList moves the move-list cursor and swaps the matching
// historical snapshot in for display. Browsing is read-only: the live state
// comes back on BrowseLast (or any move/undo) with nothing lost.
func (b *Board) BrowseMoveList(t BrowseType) error {
	if b.setupMode {
		return fmt.Errorf("%w: board is in setup mode", ErrWrongMode)
	}
	index := b.moveList.Browse(t)
	if index == b.moveList.Len()-1 {
		b.returnToLive()
		return nil
	}
	if !b.browsing {
		b.live = b.snapshotState()
		b.browsing = true
	}
	// position after move i is the snapshot taken before move i+1
	b.restoreState(b.history.RestoreTo(index + 1))
	return nil
}

func (b *Board) returnToLive() {
	if b.browsing {
		b.restoreState(b.live)
		b.browsing = false
	}
	b.moveList.Browse(BrowseLast)
}

// insufficientMaterial reports the simplified dead-position heuristic: no
// pawn, rook or queen remains and at most one minor piece in total stands
// beside the kings. Other minor combinations count as sufficient.
func (b *Board) insufficientMaterial() bool {
	minors := 0
	for _, s := range []Side{SideWhite, SideBlack} {
		if b.pieces.Count(NewPiece(s, PieceTypePawn)) > 0 ||
			b.pieces.Count(NewPiece(s, PieceTypeRook)) > 0 ||
			b.pieces.Count(NewPiece(s, PieceTypeQueen)) > 0 {
			return false
		}
		minors += b.pieces.Count(NewPiece(s, PieceTypeBishop))
		minors += b.pieces.Count(NewPiece(s, PieceTypeKnight))
	}
	return minors <= 1
}

// SetSetupMode toggles free-edit mode. Entering it abandons any browsing;
// leaving it re-roots history, move list and repetition tracking at the
// edited position.
func (b *Board) SetSetupMode(on bool) {
	if b.setupMode == on {
		return
	}
	if on {
		b.returnToLive()
		b.setupMode = true
		return
	}
	b.setupMode = false
	if b.turn == SideUnknown {
		b.turn = SideWhite
	}
	b.captured = nil
	b.history.Reset()
	b.moveList = NewMoveList(b.turn == SideBlack)
	b.repetition.Reset()
	b.repetition.Record(b.positionKey())
}

// IsSetupMode reports whether the board is in free-edit mode.
func (b *Board) IsSetupMode() bool {
	return b.setupMode
}

// SetPieceInSetupMode places a piece on a square, replacing any occupant.
// Kings cannot be replaced away and pawns cannot stand on the back ranks.
// Placing a second king of a side relocates the existing one.
func (b *Board) SetPieceInSetupMode(p Piece, sq position.Square) error {
	if !b.setupMode {
		return fmt.Errorf("%w: board is not in setup mode", ErrWrongMode)
	}
	if p == PieceNone {
		return fmt.Errorf("%w: no piece given", ErrIllegalMove)
	}
	if err := b.checkSetupPlacement(p, sq); err != nil {
		return err
	}
	if occupant := b.pieces.Get(sq); occupant != PieceNone {
		b.pieces.Remove(sq)
	}
	if p.Type() == PieceTypeKing {
		if prev := b.pieces.KingSquare(p.Side()); prev != position.NoSquare {
			b.pieces.Remove(prev)
		}
	}
	b.pieces.Put(p, sq)
	return nil
}

// MovePieceInSetupMode moves a piece freely, replacing any occupant of the
// target square.
func (b *Board) MovePieceInSetupMode(from, to position.Square) error {
	if !b.setupMode {
		return fmt.Errorf("%w: board is not in setup mode", ErrWrongMode)
	}
	p := b.pieces.Get(from)
	if p == PieceNone {
		return fmt.Errorf("%w: no piece on %s", ErrIllegalMove, from)
	}
	if from == to {
		return nil
	}
	if err := b.checkSetupPlacement(p, to); err != nil {
		return err
	}
	if occupant := b.pieces.Get(to); occupant != PieceNone {
		b.pieces.Remove(to)
	}
	b.pieces.Put(b.pieces.Remove(from), to)
	return nil
}

// RemovePieceInSetupMode deletes a piece; kings cannot be deleted.
func (b *Board) RemovePieceInSetupMode(sq position.Square) error {
	if !b.setupMode {
		return fmt.Errorf("%w: board is not in setup mode", ErrWrongMode)
	}
	p := b.pieces.Get(sq)
	if p == PieceNone {
		return fmt.Errorf("%w: no piece on %s", ErrIllegalMove, sq)
	}
	if p.Type() == PieceTypeKing {
		return fmt.Errorf("%w: %s", ErrKingDeletion, sq)
	}
	b.pieces.Remove(sq)
	return nil
}

// checkSetupPlacement enforces the two mode-independent invariants.
func (b *Board) checkSetupPlacement(p Piece, sq position.Square) error {
	if p.Type() == PieceTypePawn && (sq.Rank() == position.Rank1 || sq.Rank() == position.Rank8) {
		return fmt.Errorf("%w: %s", ErrPawnOnBackRank, sq)
	}
	if occupant := b.pieces.Get(sq); occupant != PieceNone && occupant.Type() == PieceTypeKing {
		return fmt.Errorf("%w: %s", ErrKingDeletion, sq)
	}
	return nil
}

// IsSquareEmpty reports whether no piece stands on the square.
func (b *Board) IsSquareEmpty(sq position.Square) bool {
	return b.pieces.Get(sq) == PieceNone
}

// PieceAt returns the piece on the square, or PieceNone.
func (b *Board) PieceAt(sq position.Square) Piece {
	return b.pieces.Get(sq)
}

// CastlingRights returns the current castling availabilities.
func (b *Board) CastlingRights() CastlingRights {
	return b.castlingRights
}

// EnPassantSquare returns the current en-passant target, or NoSquare.
func (b *Board) EnPassantSquare() position.Square {
	return b.enPassant
}

// Turn returns the side to move.
func (b *Board) Turn() Side {
	return b.turn
}

// CapturedPieces returns a copy of the pieces captured so far, in capture
// order.
func (b *Board) CapturedPieces() []Piece {
	return append([]Piece(nil), b.captured...)
}

// MoveList returns the recorded move sequence and its cursor.
func (b *Board) MoveList() *MoveList {
	return b.moveList
}

// KingSquare returns the square of the side's king, or NoSquare.
func (b *Board) KingSquare(s Side) position.Square {
	return b.pieces.KingSquare(s)
}

// HalfMoveClock returns the plies since the last capture or pawn move.
func (b *Board) HalfMoveClock() int {
	return b.halfMoveClock
}

// FullMoveNumber returns the 1-based full-move counter.
func (b *Board) FullMoveNumber() int {
	return b.fullMoveNumber
}

// Dump renders the position as a plain ASCII grid.
func (b *Board) Dump() string {
	builder := strings.Builder{}
	for rank := position.Square(position.Width) - 1; rank >= 0; rank-- {
		_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n")
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", rank+1))
		for file := position.Square(0); file < position.Width; file++ {
			sym := b.pieces.Get(position.NewSquare(file, rank)).SymbolFEN()
			if sym == "" {
				sym = " "
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s |", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   +---+---+---+---+---+---+---+---+\n   ")
	for file := position.Square(0); file < position.Width; file++ {
		_, _ = builder.WriteString(fmt.Sprintf("  %s ", position.NewSquare(file, 0).FileNotation()))
	}
	return builder.String()
}
