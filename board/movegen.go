package board

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/woodpusher/arbiter/position"
)

// Castling geometry: king hop, rook hop, the squares that must be empty
// between king and rook, and the squares the king occupies or crosses and
// which therefore must not be attacked.
var (
	castleKingHops = [5][2]position.Square{
		CastleDirectionWhiteKingside:  {position.E1, position.G1},
		CastleDirectionWhiteQueenside: {position.E1, position.C1},
		CastleDirectionBlackKingside:  {position.E8, position.G8},
		CastleDirectionBlackQueenside: {position.E8, position.C8},
	}
	castleRookHops = [5][2]position.Square{
		CastleDirectionWhiteKingside:  {position.H1, position.F1},
		CastleDirectionWhiteQueenside: {position.A1, position.D1},
		CastleDirectionBlackKingside:  {position.H8, position.F8},
		CastleDirectionBlackQueenside: {position.A8, position.D8},
	}
	castleEmptySquares = [5][]position.Square{
		CastleDirectionWhiteKingside:  {position.F1, position.G1},
		CastleDirectionWhiteQueenside: {position.B1, position.C1, position.D1},
		CastleDirectionBlackKingside:  {position.F8, position.G8},
		CastleDirectionBlackQueenside: {position.B8, position.C8, position.D8},
	}
	castleSafeSquares = [5][]position.Square{
		CastleDirectionWhiteKingside:  {position.E1, position.F1, position.G1},
		CastleDirectionWhiteQueenside: {position.E1, position.D1, position.C1},
		CastleDirectionBlackKingside:  {position.E8, position.F8, position.G8},
		CastleDirectionBlackQueenside: {position.E8, position.D8, position.C8},
	}
)

// rookHomeCastleDirection maps a side's rook home square to the castling
// right it carries.
func rookHomeCastleDirection(s Side, sq position.Square) CastleDirection {
	switch {
	case s == SideWhite && sq == position.H1:
		return CastleDirectionWhiteKingside
	case s == SideWhite && sq == position.A1:
		return CastleDirectionWhiteQueenside
	case s == SideBlack && sq == position.H8:
		return CastleDirectionBlackKingside
	case s == SideBlack && sq == position.A8:
		return CastleDirectionBlackQueenside
	default:
		return CastleDirectionUnknown
	}
}

// PseudoLegalMoves generates the moves the piece on from could make if king
// safety were no concern. Castling candidates are included when the rights
// remain and the span is empty; their attack tests belong to IsLegalMove.
func (b *Board) PseudoLegalMoves(p Piece, from position.Square) []Move {
	switch p.Type() {
	case PieceTypePawn:
		return b.pawnPseudoLegalMoves(p, from)
	case PieceTypeKnight:
		return b.tablePseudoLegalMoves(p, from, attacksKnight[from])
	case PieceTypeKing:
		mvs := b.tablePseudoLegalMoves(p, from, attacksKing[from])
		return append(mvs, b.castlePseudoLegalMoves(p, from)...)
	case PieceTypeBishop, PieceTypeRook, PieceTypeQueen:
		return b.sliderPseudoLegalMoves(p, from)
	default:
		return nil
	}
}

func (b *Board) pawnPseudoLegalMoves(p Piece, from position.Square) []Move {
	s := p.Side()
	advance := pawnAdvanceDirection(s)
	var mvs []Move

	if to := from.Step(advance); to != position.NoSquare && b.pieces.Get(to) == PieceNone {
		mvs = b.expandPromotions(mvs, Move{Piece: p, From: from, To: to})
		if from.Rank() == pawnStartRank(s) {
			if to2 := to.Step(advance); to2 != position.NoSquare && b.pieces.Get(to2) == PieceNone {
				mvs = append(mvs, Move{Piece: p, From: from, To: to2})
			}
		}
	}

	for _, to := range attacksPawn[s][from] {
		if target := b.pieces.Get(to); target != PieceNone {
			if target.Side() != s {
				mvs = b.expandPromotions(mvs, Move{
					Piece: p, From: from, To: to,
					Captured: target, IsCapture: true,
				})
			}
		} else if to == b.enPassant && b.enPassantVictim(s, from, to) != position.NoSquare {
			mvs = append(mvs, Move{
				Piece: p, From: from, To: to,
				Captured: NewPiece(s.Opposite(), PieceTypePawn), IsCapture: true, IsEnPassant: true,
			})
		}
	}
	return mvs
}

// enPassantVictim re-validates the en-passant geometry: the captured pawn
// sits one rank behind the target square, on the capturer's own rank, and
// never on the target square itself. Returns its square, or NoSquare.
func (b *Board) enPassantVictim(s Side, from, to position.Square) position.Square {
	victimSq := position.NewSquare(to.File(), from.Rank())
	if victimSq == to {
		return position.NoSquare
	}
	if to.Step(-pawnAdvanceDirection(s)) != victimSq {
		return position.NoSquare
	}
	if b.pieces.Get(victimSq) != NewPiece(s.Opposite(), PieceTypePawn) {
		return position.NoSquare
	}
	return victimSq
}

// expandPromotions appends mv as-is, or once per promotable type when the
// pawn lands on the last rank.
func (b *Board) expandPromotions(mvs []Move, mv Move) []Move {
	if mv.To.Rank() != pawnPromoteRank(mv.Piece.Side()) {
		return append(mvs, mv)
	}
	for _, t := range PawnPromoteCandidates {
		prom := mv
		prom.Promotion = t
		mvs = append(mvs, prom)
	}
	return mvs
}

func (b *Board) tablePseudoLegalMoves(p Piece, from position.Square, targets []position.Square) []Move {
	var mvs []Move
	for _, to := range targets {
		target := b.pieces.Get(to)
		if target != PieceNone && target.Side() == p.Side() {
			continue
		}
		mvs = append(mvs, Move{
			Piece: p, From: from, To: to,
			Captured: target, IsCapture: target != PieceNone,
		})
	}
	return mvs
}

func (b *Board) sliderPseudoLegalMoves(p Piece, from position.Square) []Move {
	var mvs []Move
	for _, dir := range sliderDirections(p.Type()) {
		for to := from.Step(dir); to != position.NoSquare; to = to.Step(dir) {
			target := b.pieces.Get(to)
			if target == PieceNone {
				mvs = append(mvs, Move{Piece: p, From: from, To: to})
				continue
			}
			if target.Side() != p.Side() {
				mvs = append(mvs, Move{
					Piece: p, From: from, To: to,
					Captured: target, IsCapture: true,
				})
			}
			break
		}
	}
	return mvs
}

func (b *Board) castlePseudoLegalMoves(p Piece, from position.Square) []Move {
	s := p.Side()
	if !b.castlingRights.IsSideAllowed(s) {
		return nil
	}
	ds := []CastleDirection{CastleDirectionWhiteKingside, CastleDirectionWhiteQueenside}
	if s == SideBlack {
		ds = []CastleDirection{CastleDirectionBlackKingside, CastleDirectionBlackQueenside}
	}
	var mvs []Move
	for _, d := range ds {
		if !b.castlingRights.IsAllowed(d) || from != castleKingHops[d][0] {
			continue
		}
		empty := true
		for _, sq := range castleEmptySquares[d] {
			if b.pieces.Get(sq) != PieceNone {
				empty = false
				break
			}
		}
		if !empty {
			continue
		}
		mvs = append(mvs, Move{
			Piece: p, From: castleKingHops[d][0], To: castleKingHops[d][1], Castle: d,
		})
	}
	return mvs
}

// IsLegalMove reports whether moving p from from to to (promoting to
// promotion, or PieceTypeUnknown) is fully legal: pseudo-legal and leaving
// the mover's own king safe, with the extra castling transit conditions.
func (b *Board) IsLegalMove(p Piece, from, to position.Square, promotion PieceType) bool {
	for _, mv := range b.PseudoLegalMoves(p, from) {
		if mv.To == to && mv.Promotion == promotion {
			return b.isMoveSafe(mv)
		}
	}
	return false
}

// isMoveSafe simulates the move and verifies the mover's king is not left
// in check. Castling must additionally start outside check and keep the
// king off attacked squares throughout its hop.
func (b *Board) isMoveSafe(mv Move) bool {
	s := mv.Piece.Side()
	if mv.Castle != CastleDirectionUnknown {
		for _, sq := range castleSafeSquares[mv.Castle] {
			if isSquareAttacked(b.pieces, sq, s.Opposite()) {
				return false
			}
		}
		return true
	}
	if b.IsPinned(mv.Piece, mv.From, mv.To) {
		return false
	}
	sim := b.pieces.Clone()
	applyMoveToSet(sim, mv)
	kingSq := sim.KingSquare(s)
	if kingSq == position.NoSquare {
		return true
	}
	return !isSquareAttacked(sim, kingSq, s.Opposite())
}

// applyMoveToSet performs the mechanical placement changes of a move on the
// given set: capture removal (including the en-passant victim), the castling
// rook hop, and promotion substitution.
func applyMoveToSet(ps *PieceSet, mv Move) {
	s := mv.Piece.Side()
	if mv.Castle != CastleDirectionUnknown {
		d := mv.Castle
		king := ps.Remove(castleKingHops[d][0])
		rook := ps.Remove(castleRookHops[d][0])
		if rook.Type() != PieceTypeRook || rook.Side() != s {
			panic(fmt.Sprintf("board: castling %s without rook on %s", d, castleRookHops[d][0]))
		}
		ps.Put(king, castleKingHops[d][1])
		ps.Put(rook, castleRookHops[d][1])
		return
	}
	moving := ps.Remove(mv.From)
	if mv.IsCapture {
		captureSq := mv.To
		if mv.IsEnPassant {
			captureSq = position.NewSquare(mv.To.File(), mv.From.Rank())
		}
		ps.Remove(captureSq)
	}
	if mv.Promotion != PieceTypeUnknown {
		moving = NewPiece(s, mv.Promotion)
	}
	ps.Put(moving, mv.To)
}

// FindLegalMoves returns every legal move of the piece on from, in a
// deterministic order.
func (b *Board) FindLegalMoves(p Piece, from position.Square) []Move {
	var mvs []Move
	for _, mv := range b.PseudoLegalMoves(p, from) {
		if b.isMoveSafe(mv) {
			mvs = append(mvs, mv)
		}
	}
	slices.SortFunc(mvs, compareMoves)
	return mvs
}

// LegalMoves returns every legal move for the side, in a deterministic
// order.
func (b *Board) LegalMoves(s Side) []Move {
	var mvs []Move
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		p := b.pieces.Get(sq)
		if p == PieceNone || p.Side() != s {
			continue
		}
		for _, mv := range b.PseudoLegalMoves(p, sq) {
			if b.isMoveSafe(mv) {
				mvs = append(mvs, mv)
			}
		}
	}
	slices.SortFunc(mvs, compareMoves)
	return mvs
}

func compareMoves(a, b Move) int {
	if a.From != b.From {
		return int(a.From) - int(b.From)
	}
	if a.To != b.To {
		return int(a.To) - int(b.To)
	}
	return int(a.Promotion) - int(b.Promotion)
}

func (b *Board) hasAnyLegalMove(s Side) bool {
	for sq := position.Square(0); sq < position.TotalSquares; sq++ {
		p := b.pieces.Get(sq)
		if p == PieceNone || p.Side() != s {
			continue
		}
		for _, mv := range b.PseudoLegalMoves(p, sq) {
			if b.isMoveSafe(mv) {
				return true
			}
		}
	}
	return false
}

// AttackersOf returns every square from which a piece of the given side
// could capture on sq, ignoring whose turn it is.
func (b *Board) AttackersOf(sq position.Square, by Side) []position.Square {
	return attackersOf(b.pieces, sq, by)
}

// IsSquareAttacked reports whether any piece of the given side attacks sq.
func (b *Board) IsSquareAttacked(sq position.Square, by Side) bool {
	return isSquareAttacked(b.pieces, sq, by)
}

func attackersOf(ps *PieceSet, sq position.Square, by Side) []position.Square {
	var attackers []position.Square

	// pawn attacks are symmetric: the squares a by-side pawn attacks sq
	// from are the squares a pawn of the other side would attack from sq
	pawn := NewPiece(by, PieceTypePawn)
	for _, from := range attacksPawn[by.Opposite()][sq] {
		if ps.Get(from) == pawn {
			attackers = append(attackers, from)
		}
	}
	knight := NewPiece(by, PieceTypeKnight)
	for _, from := range attacksKnight[sq] {
		if ps.Get(from) == knight {
			attackers = append(attackers, from)
		}
	}
	king := NewPiece(by, PieceTypeKing)
	for _, from := range attacksKing[sq] {
		if ps.Get(from) == king {
			attackers = append(attackers, from)
		}
	}
	for _, dir := range queenDirections {
		for from := sq.Step(dir); from != position.NoSquare; from = from.Step(dir) {
			p := ps.Get(from)
			if p == PieceNone {
				continue
			}
			if p.Side() == by && isSliderAlong(p.Type(), dir) {
				attackers = append(attackers, from)
			}
			break
		}
	}
	return attackers
}

func isSquareAttacked(ps *PieceSet, sq position.Square, by Side) bool {
	pawn := NewPiece(by, PieceTypePawn)
	for _, from := range attacksPawn[by.Opposite()][sq] {
		if ps.Get(from) == pawn {
			return true
		}
	}
	knight := NewPiece(by, PieceTypeKnight)
	for _, from := range attacksKnight[sq] {
		if ps.Get(from) == knight {
			return true
		}
	}
	king := NewPiece(by, PieceTypeKing)
	for _, from := range attacksKing[sq] {
		if ps.Get(from) == king {
			return true
		}
	}
	for _, dir := range queenDirections {
		for from := sq.Step(dir); from != position.NoSquare; from = from.Step(dir) {
			p := ps.Get(from)
			if p == PieceNone {
				continue
			}
			if p.Side() == by && isSliderAlong(p.Type(), dir) {
				return true
			}
			break
		}
	}
	return false
}

// isSliderAlong reports whether the piece type slides along the given ray
// direction.
func isSliderAlong(t PieceType, dir position.Square) bool {
	switch dir {
	case dirN, dirS, dirE, dirW:
		return t == PieceTypeRook || t == PieceTypeQueen
	case dirNE, dirNW, dirSE, dirSW:
		return t == PieceTypeBishop || t == PieceTypeQueen
	default:
		return false
	}
}

// rayDirection returns the step from a toward b when the squares share a
// rank, file or diagonal, and 0 otherwise.
func rayDirection(a, b position.Square) position.Square {
	fd := b.File() - a.File()
	rd := b.Rank() - a.Rank()
	switch {
	case fd == 0 && rd == 0:
		return 0
	case rd == 0:
		if fd > 0 {
			return dirE
		}
		return dirW
	case fd == 0:
		if rd > 0 {
			return dirN
		}
		return dirS
	case fd == rd:
		if rd > 0 {
			return dirNE
		}
		return dirSW
	case fd == -rd:
		if rd > 0 {
			return dirNW
		}
		return dirSE
	default:
		return 0
	}
}

// IsPinned reports whether moving p from from to to would expose its own
// king to an enemy slider sharing a ray through from. A horizontally pinned
// pawn is additionally barred from en-passant captures along the king's
// rank, since that capture vacates two squares of the rank at once.
func (b *Board) IsPinned(p Piece, from, to position.Square) bool {
	s := p.Side()
	kingSq := b.pieces.KingSquare(s)
	if kingSq == position.NoSquare || from == kingSq {
		return false
	}

	if p.Type() == PieceTypePawn && to == b.enPassant && kingSq.Rank() == from.Rank() {
		if victim := b.enPassantVictim(s, from, to); victim != position.NoSquare &&
			b.rankExposedAfterEnPassant(kingSq, from, victim, s) {
			return true
		}
	}

	dir := rayDirection(kingSq, from)
	if dir == 0 {
		return false
	}
	for sq := kingSq.Step(dir); sq != from; sq = sq.Step(dir) {
		if b.pieces.Get(sq) != PieceNone {
			return false
		}
	}
	for sq := from.Step(dir); sq != position.NoSquare; sq = sq.Step(dir) {
		pc := b.pieces.Get(sq)
		if pc == PieceNone {
			continue
		}
		if pc.Side() == s || !isSliderAlong(pc.Type(), dir) {
			return false
		}
		// pinned by the slider on sq unless to stays on the king-slider ray
		for ray := kingSq.Step(dir); ray != position.NoSquare; ray = ray.Step(dir) {
			if ray == to {
				return false
			}
			if ray == sq {
				break
			}
		}
		return true
	}
	return false
}

// rankExposedAfterEnPassant scans the king's rank with both the capturing
// and the captured pawn removed, looking for an enemy rook or queen.
func (b *Board) rankExposedAfterEnPassant(kingSq, from, victim position.Square, s Side) bool {
	for _, dir := range []position.Square{dirE, dirW} {
		for sq := kingSq.Step(dir); sq != position.NoSquare; sq = sq.Step(dir) {
			if sq == from || sq == victim {
				continue
			}
			pc := b.pieces.Get(sq)
			if pc == PieceNone {
				continue
			}
			if pc.Side() != s && (pc.Type() == PieceTypeRook || pc.Type() == PieceTypeQueen) {
				return true
			}
			break
		}
	}
	return false
}

// CheckGameState classifies the position for the side to move next.
func (b *Board) CheckGameState(s Side) GameState {
	checked := b.isKingChecked(s)
	if b.hasAnyLegalMove(s) {
		if checked {
			return StateCheck
		}
		return StatePlaying
	}
	if checked {
		return StateCheckmate
	}
	return StateStalemate
}

func (b *Board) isKingChecked(s Side) bool {
	kingSq := b.pieces.KingSquare(s)
	return kingSq != position.NoSquare && isSquareAttacked(b.pieces, kingSq, s.Opposite())
}
