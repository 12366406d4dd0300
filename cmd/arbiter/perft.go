package main

import (
	"log"

	"github.com/woodpusher/arbiter/bench"
)

func perft(depth int, f string, parallel bool) error {
	log.Printf("============ perft(%d)\n", depth)

	out := make(chan string)
	done := make(chan error, 1)
	go func() {
		done <- bench.Perft(depth, f, parallel, true, out)
		close(out)
	}()
	for line := range out {
		log.Println(line)
	}
	return <-done
}
