// Package selfplay demonstrates the caller-side parallelism the
// position package is built for: many independent Positions, each
// bound to its own visitor pair, advanced concurrently by a worker
// pool built on github.com/donyori/goctpf. It plays uniformly random
// games to completion (or a move cap) and scores them -- a minimal
// stand-in for the tree-search driver that would normally own this
// worker pool.
package selfplay

import (
	"math/rand"

	"github.com/donyori/goctpf"
	"github.com/donyori/goctpf/idtpf/dfw"
	"github.com/donyori/goctpf/prefab"
	"github.com/donyori/gorecover"

	"github.com/quartobyte/gopos/playout"
	"github.com/quartobyte/gopos/position"
)

// Result is the outcome of one self-played game.
type Result struct {
	Seed  uint64  // RNG seed that produced this game, for reproducing it.
	Score float64 // Tromp-Taylor area score, Black minus White minus komi.
	Moves int     // Number of moves played, including passes.
	Err   error   // Set if the game panicked; Score and Moves are then zero.
}

type gameTask struct {
	seed     uint64
	komi     float64
	maxMoves int
	output   chan<- Result
}

type waitAndCloseTask struct {
	waitTgt interface{ Wait() }
	output  chan<- Result
}

// Runner owns a pool of workers, each with its own scratch visitors
// and RNG, plus the small auxiliary pool that closes the output
// channel once every submitted game has reported in. Callers must
// call Close when done to let the underlying goroutines exit.
type Runner struct {
	gameInputChan         chan<- interface{}
	gameDoneChan          <-chan struct{}
	waitAndCloseInputChan chan<- interface{}
	waitAndCloseDoneChan  <-chan struct{}
}

// NewRunner starts a pool of workers goroutines ready to play games.
func NewRunner(workers int) *Runner {
	if workers < 1 {
		workers = 1
	}
	gic := make(chan interface{}, workers)
	wacic := make(chan interface{}, 1)

	r := &Runner{gameInputChan: gic, waitAndCloseInputChan: wacic}
	r.gameDoneChan = dfw.StartEx(prefab.StackTaskManagerMaker,
		r.gameHandler, nil, nil, goctpf.WorkerSettings{Number: workers}, gic, nil)
	r.waitAndCloseDoneChan = dfw.StartEx(prefab.QueueTaskManagerMaker,
		r.waitAndCloseHandler, nil, nil, goctpf.WorkerSettings{Number: 1}, wacic, nil)
	return r
}

// Close shuts down the worker pool. It must not be called while
// RunGames is still in flight.
func (r *Runner) Close() {
	if r.gameInputChan != nil {
		close(r.gameInputChan)
		r.gameInputChan = nil
	}
	if r.waitAndCloseInputChan != nil {
		close(r.waitAndCloseInputChan)
		r.waitAndCloseInputChan = nil
	}
	if r.gameDoneChan != nil {
		<-r.gameDoneChan
		r.gameDoneChan = nil
	}
	if r.waitAndCloseDoneChan != nil {
		<-r.waitAndCloseDoneChan
		r.waitAndCloseDoneChan = nil
	}
}

// RunGames plays n independent random games of komi and maxMoves move
// cap, distributing them across the worker pool, and returns one
// Result per game in completion order. baseSeed+i seeds game i's RNG,
// so a run is reproducible for a fixed baseSeed.
func (r *Runner) RunGames(n int, komi float64, maxMoves int, baseSeed uint64) []Result {
	output := make(chan Result, n)
	tg := goctpf.NewTaskGroup(nil, nil)
	for i := 0; i < n; i++ {
		r.gameInputChan <- tg.WrapTask(&gameTask{
			seed:     baseSeed + uint64(i),
			komi:     komi,
			maxMoves: maxMoves,
			output:   output,
		})
	}
	r.waitAndCloseInputChan <- &waitAndCloseTask{waitTgt: tg, output: output}

	results := make([]Result, 0, n)
	for res := range output {
		results = append(results, res)
	}
	return results
}

func (r *Runner) waitAndCloseHandler(workerNo int, task interface{},
	errBuf *[]error) (newTasks []interface{}, doesExit bool) {
	t := task.(*waitAndCloseTask)
	t.waitTgt.Wait()
	close(t.output)
	return
}

func (r *Runner) gameHandler(workerNo int, task interface{},
	errBuf *[]error) (newTasks []interface{}, doesExit bool) {
	t := task.(*goctpf.TaskGroupMember).Task.(*gameTask)
	t.output <- playGame(t.seed, t.komi, t.maxMoves)
	return
}

// playGame runs one random self-play game to completion, binding a
// fresh visitor pair and RNG local to this call so it never shares
// state with any other concurrently running game. A panicking
// assertion anywhere in position or playout is caught by gorecover
// and reported on Result.Err instead of taking down the worker.
func playGame(seed uint64, komi float64, maxMoves int) Result {
	res := Result{Seed: seed}
	err := gorecover.Recover(func() {
		var bv position.BoardVisitor
		var gv position.GroupVisitor
		pos := position.New(&bv, &gv, komi, position.Black, 0)

		rng := rand.New(playout.NewSource(seed))

		moves := 0
		for moves < maxMoves && !pos.IsGameOver() {
			mv := playout.RandomMove(pos, rng)
			pos.PlayMove(mv, position.Empty)
			moves++
		}
		res.Score = pos.CalculateScore()
		res.Moves = moves
	})
	if err != nil {
		res.Err = err
	}
	return res
}
