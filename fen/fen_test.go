package fen

import (
	"testing"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/position"
)

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen     string
		wantErr bool
	}{
		{fen: StartingPosition, wantErr: false},
		{fen: "r3k2r/1bppqppp/p1n2n2/2b1p3/B3P3/2NP1N2/1PP2PPP/R1BQ1RK1 b kq - 2 10", wantErr: false},
		{fen: "rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2", wantErr: false},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", wantErr: false},
		{fen: "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", wantErr: false},
		{fen: "8/5kBp/3p3P/5pb1/8/5P2/4R2K/3r4 b - - 8 52", wantErr: false},
		{fen: "8/5k2/4N3/8/8/3K4/8/8 w - - 0 71", wantErr: false},
		{fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1", wantErr: false},
		{fen: "8/8/8/8/8/kq6/8/K7 w - - 0 1", wantErr: false},
		{fen: "4k3/8/8/K2Pp2r/8/8/8/8 w - e6 0 2", wantErr: false},
		{fen: "", wantErr: true},
		{fen: "invalid fen", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkqX - 0 1", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq z9 0 1", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/badboard/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", wantErr: true},
		{fen: "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBN w KQkq - 0 1", wantErr: true},
		{fen: "8/8/8/8/8/8/8/8 w - - 0 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/44K3 w - - 0 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/K34 w - - 0 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/K0kq4 w - - 0 1", wantErr: true},
		{fen: "k7/8/8/8/8/8/8/KK6 w - - 0 1", wantErr: true},
		{fen: "7k/8/8/8/8/8/8/7K w - - 0 1 extrasegment", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.fen, func(t *testing.T) {
			t.Parallel()

			snap, err := Parse(tt.fen)
			if tt.wantErr {
				if err == nil {
					t.Error("error expected: got=nil")
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			if got := Format(snap); got != tt.fen {
				t.Errorf("unexpected FEN: got=%s want=%s", got, tt.fen)
			}
		})
	}
}

func TestParseFields(t *testing.T) {
	t.Parallel()
	snap, err := Parse("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if snap.Turn != board.SideWhite {
		t.Errorf("unexpected turn: got=%s", snap.Turn)
	}
	if snap.EnPassant != position.E6 {
		t.Errorf("unexpected en-passant square: got=%s", snap.EnPassant)
	}
	if snap.HalfMoveClock != 0 || snap.FullMoveNumber != 2 {
		t.Errorf("unexpected clocks: got=%d/%d", snap.HalfMoveClock, snap.FullMoveNumber)
	}
	for _, d := range []board.CastleDirection{
		board.CastleDirectionWhiteKingside,
		board.CastleDirectionWhiteQueenside,
		board.CastleDirectionBlackKingside,
		board.CastleDirectionBlackQueenside,
	} {
		if !snap.CastlingRights.IsAllowed(d) {
			t.Errorf("castling right %s should be allowed", d)
		}
	}
	if got := snap.Pieces[position.E4]; got != board.WhitePawn {
		t.Errorf("unexpected piece on e4: got=%v", got)
	}
	if got := snap.Pieces[position.E8]; got != board.BlackKing {
		t.Errorf("unexpected piece on e8: got=%v", got)
	}
}
