// Package worker provides a worker pool for playing independent selfplay
// matches concurrently. Each match owns its position and generator, so the
// pool shares no engine state between games.
package worker

import (
	"sync"
	"sync/atomic"
)

// Match describes one seeded AI-vs-AI game to play.
type Match struct {
	Index    int    // Original submission index for tracking
	FEN      string // Starting position; empty means the initial position
	White    string // White difficulty name
	Black    string // Black difficulty name
	Seed     uint32 // Base seed for the game's move selections
	MaxMoves int    // Full-move cap, 0 for no cap
}

// MatchResult is the outcome of one played match.
type MatchResult struct {
	Index    int
	Seed     uint32
	Moves    []string // Moves in coordinate form, in play order
	Status   string   // Final status label
	FinalFEN string
	Err      error
}

// PlayFunc plays a single match to completion.
type PlayFunc func(m Match) MatchResult

// Pool manages a set of workers playing matches in parallel.
type Pool struct {
	numWorkers int
	bufferSize int
	workChan   chan Match
	resultChan chan MatchResult
	play       PlayFunc
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool that plays matches with the given function.
// Defaults: 1 worker, buffer size of 8.
func NewPool(play PlayFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 8,
		play:       play,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan Match, p.bufferSize)
	p.resultChan = make(chan MatchResult, p.bufferSize)
	return p
}

// Start launches the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for m := range p.workChan {
		if p.IsStopped() {
			continue // Drain the channel without playing
		}
		p.resultChan <- p.play(m)
	}
}

// Submit queues a match for play. It may block when the buffer is full.
func (p *Pool) Submit(m Match) {
	p.workChan <- m
}

// Results returns the channel match results arrive on.
func (p *Pool) Results() <-chan MatchResult {
	return p.resultChan
}

// Close signals that no more matches will be submitted and closes the
// result channel once all workers finish.
func (p *Pool) Close() {
	close(p.workChan)
	go func() {
		p.wg.Wait()
		close(p.resultChan)
	}()
}

// Stop requests early termination; queued matches are drained unplayed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}
