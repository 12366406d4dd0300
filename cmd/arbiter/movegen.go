package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/cli"
	"github.com/woodpusher/arbiter/fen"
)

func movegen(f string, draw bool) error {
	log.Println("============ movegen")
	snap, err := fen.Parse(f)
	if err != nil {
		return err
	}
	b := board.NewBoard(board.WithPosition(snap))
	fmt.Println("to move:", b.Turn())
	fmt.Println(cli.Draw(b))
	fmt.Println(b.CheckGameState(b.Turn()))
	dumpMoves(b)

	if draw {
		for _, mv := range b.LegalMoves(b.Turn()) {
			child := b.Clone()
			if _, err := child.MakePlayerMove(mv.From, mv.To, mv.Promotion); err != nil {
				return err
			}
			fmt.Println(mv)
			fmt.Println(cli.Draw(child))
			fmt.Println(fen.Format(child.Snapshot()))
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.LegalMoves(b.Turn())
	for n, mv := range mvs {
		fmt.Printf("option %*d: [%s] [%s] %s %s => %s (cap=%v) (enp=%v) (cas=%s) (pro=%s)\n",
			len(strconv.Itoa(len(mvs))), n+1, mv.UCI(), mv.Algebra(),
			mv.Piece, mv.From, mv.To, mv.IsCapture, mv.IsEnPassant, mv.Castle, mv.Promotion)
	}
}
