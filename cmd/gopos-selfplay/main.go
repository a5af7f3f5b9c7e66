// Command gopos-selfplay runs a batch of random self-play games
// across a worker pool and logs a tally of Black wins, White wins and
// failed games, exercising the full
// position/playout/selfplay stack end to end.
package main

import (
	"flag"
	"log"
	"time"

	"github.com/quartobyte/gopos/selfplay"
)

func main() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lmicroseconds)

	games := flag.Int("games", 100, "number of self-play games to run")
	workers := flag.Int("workers", 4, "number of worker goroutines")
	komi := flag.Float64("komi", 6.5, "komi added to White's score")
	maxMoves := flag.Int("max-moves", 2*9*9, "maximum moves per game before forcing a stop")
	seed := flag.Uint64("seed", 1, "base RNG seed; game i uses seed+i")
	flag.Parse()

	log.Printf("running %d games with %d workers, komi=%.1f", *games, *workers, *komi)
	start := time.Now()

	r := selfplay.NewRunner(*workers)
	defer r.Close()

	results := r.RunGames(*games, *komi, *maxMoves, *seed)

	var blackWins, whiteWins, errored int
	for _, res := range results {
		if res.Err != nil {
			errored++
			log.Printf("game seed=%d failed: %v", res.Seed, res.Err)
			continue
		}
		if res.Score > 0 {
			blackWins++
		} else if res.Score < 0 {
			whiteWins++
		}
	}

	log.Printf("done in %s: %d games, Black won %d, White won %d, %d errored",
		time.Since(start), len(results), blackWins, whiteWins, errored)
}
