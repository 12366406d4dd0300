package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/woodpusher/arbiter/cli"
	"github.com/woodpusher/arbiter/fen"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw resulting positions in movegen mode")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepLimit = flag.Int("step.limit", 300, "maximum plies in step mode")

	perftRun      = flag.Bool("perft", false, "run perft mode")
	perftDepth    = flag.Int("perft.depth", 5, "tree depth in perft mode")
	perftParallel = flag.Bool("perft.parallel", true, "split perft across goroutines at the root")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	if err := realMain(flag.Args()); err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	const addr = "localhost:6060"
	log.Printf("pprof listening on http://%s/debug/pprof\n", addr)
	go func() {
		if err := http.ListenAndServe(addr, nil); err != nil {
			log.Println("pprof server stopped:", err)
		}
	}()
}

func realMain(args []string) error {
	f := fen.StartingPosition
	if len(args) > 0 {
		f = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(f, *movegenDraw)
	}
	if *stepRun {
		return step(f, *stepLimit)
	}
	if *perftRun {
		return perft(*perftDepth, f, *perftParallel)
	}

	return cli.NewInterface().Run()
}
