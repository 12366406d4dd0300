package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/cli"
	"github.com/woodpusher/arbiter/fen"
)

// step plays random legal moves against itself until the game ends or the
// ply limit runs out, drawing every position along the way.
func step(f string, limit int) error {
	log.Println("============ step")
	snap, err := fen.Parse(f)
	if err != nil {
		return err
	}
	b := board.NewBoard(board.WithPosition(snap))
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	state := b.CheckGameState(b.Turn())
	for ply := 0; ply < limit && state.IsRunning(); ply++ {
		mvs := b.LegalMoves(b.Turn())
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", state)
		}
		mv := mvs[rng.Intn(len(mvs))]
		state, err = b.MakePlayerMove(mv.From, mv.To, mv.Promotion)
		if err != nil {
			return err
		}

		last := b.MoveList().Move(b.MoveList().Len() - 1)
		fmt.Printf("\n===== [#%d] %s: %s\n", b.MoveList().RowOf(b.MoveList().Len()-1)+1, mv.Piece.Side(), last)
		fmt.Println(cli.Draw(b))
		fmt.Println(fen.Format(b.Snapshot()))
		if state.IsCheck() {
			<-time.Tick(100 * time.Millisecond)
		} else {
			<-time.Tick(10 * time.Millisecond)
		}
	}

	fmt.Println()
	fmt.Println(state)
	return nil
}
