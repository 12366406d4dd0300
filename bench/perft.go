package bench

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/woodpusher/arbiter/board"
	"github.com/woodpusher/arbiter/fen"
)

// Perft counts the legal-move tree of the given position to the given depth
// and streams per-root-move counts and a timing summary to out. The parallel
// runner splits the tree at the root, one goroutine per root move.
func Perft(depth int, f string, parallel, verbose bool, out chan<- string) error {
	snap, err := fen.Parse(f)
	if err != nil {
		return err
	}
	b := board.NewBoard(board.WithPosition(snap))

	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	start := time.Now()
	result := run(b, depth, verbose, out)
	elapsed := time.Since(start)

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d (%.3fs elapsed)",
			depth, result.Nodes, int(float64(result.Nodes)/elapsed.Seconds()),
			result.Captures, result.EnPassants, result.Castles, result.Promotions, elapsed.Seconds())
	return nil
}

type perftFunc func(b *board.Board, depth int, verbose bool, out chan<- string) board.PerftResult

func runPerft(b *board.Board, depth int, verbose bool, out chan<- string) board.PerftResult {
	if !verbose || depth < 2 {
		return b.Perft(depth)
	}
	var total board.PerftResult
	for _, mv := range b.LegalMoves(b.Turn()) {
		child := b.Clone()
		if _, err := child.MakePlayerMove(mv.From, mv.To, mv.Promotion); err != nil {
			continue
		}
		sub := child.Perft(depth - 1)
		out <- fmt.Sprintf("%s: %d", mv.UCI(), sub.Nodes)
		total.Add(sub)
	}
	return total
}

func runPerftParallel(b *board.Board, depth int, verbose bool, out chan<- string) board.PerftResult {
	if depth < 2 {
		return b.Perft(depth)
	}

	var (
		mu    sync.Mutex
		wg    sync.WaitGroup
		total board.PerftResult
	)
	for _, mv := range b.LegalMoves(b.Turn()) {
		mv := mv
		child := b.Clone()
		if _, err := child.MakePlayerMove(mv.From, mv.To, mv.Promotion); err != nil {
			continue
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			sub := child.Perft(depth - 1)
			if verbose {
				out <- fmt.Sprintf("%s: %d", mv.UCI(), sub.Nodes)
			}
			mu.Lock()
			total.Add(sub)
			mu.Unlock()
		}()
	}
	wg.Wait()
	return total
}
