package worker

import (
	"fmt"
	"sync/atomic"
	"testing"
)

func TestPoolPlaysAllMatches(t *testing.T) {
	play := func(m Match) MatchResult {
		return MatchResult{Index: m.Index, Seed: m.Seed, Status: "done"}
	}
	pool := NewPool(play, WithWorkers(4), WithBufferSize(16))
	pool.Start()

	const games = 20
	go func() {
		for i := 0; i < games; i++ {
			pool.Submit(Match{Index: i, Seed: uint32(i)})
		}
		pool.Close()
	}()

	seen := make(map[int]bool)
	for result := range pool.Results() {
		if result.Err != nil {
			t.Errorf("match %d failed: %v", result.Index, result.Err)
		}
		if seen[result.Index] {
			t.Errorf("match %d reported twice", result.Index)
		}
		seen[result.Index] = true
		if result.Seed != uint32(result.Index) {
			t.Errorf("match %d has seed %d", result.Index, result.Seed)
		}
	}
	if len(seen) != games {
		t.Errorf("got %d results, want %d", len(seen), games)
	}
}

func TestPoolStopDrainsQueue(t *testing.T) {
	var played int32
	play := func(m Match) MatchResult {
		atomic.AddInt32(&played, 1)
		return MatchResult{Index: m.Index}
	}
	pool := NewPool(play, WithWorkers(1), WithBufferSize(64))
	pool.Stop() // stop before starting: every queued match is drained
	pool.Start()

	go func() {
		for i := 0; i < 50; i++ {
			pool.Submit(Match{Index: i})
		}
		pool.Close()
	}()

	for range pool.Results() {
	}
	if n := atomic.LoadInt32(&played); n != 0 {
		t.Errorf("%d matches played after Stop, want 0", n)
	}
	if !pool.IsStopped() {
		t.Error("IsStopped = false after Stop")
	}
}

func TestPoolErrorsPropagate(t *testing.T) {
	play := func(m Match) MatchResult {
		if m.Index%2 == 1 {
			return MatchResult{Index: m.Index, Err: fmt.Errorf("match %d broke", m.Index)}
		}
		return MatchResult{Index: m.Index}
	}
	pool := NewPool(play, WithWorkers(2))
	pool.Start()

	go func() {
		for i := 0; i < 6; i++ {
			pool.Submit(Match{Index: i})
		}
		pool.Close()
	}()

	failures := 0
	for result := range pool.Results() {
		if result.Err != nil {
			failures++
		}
	}
	if failures != 3 {
		t.Errorf("got %d failures, want 3", failures)
	}
}

func TestPoolOptionDefaults(t *testing.T) {
	pool := NewPool(func(m Match) MatchResult { return MatchResult{} },
		WithWorkers(0), WithBufferSize(-5))
	if pool.numWorkers != 1 {
		t.Errorf("numWorkers = %d, want the default 1", pool.numWorkers)
	}
	if pool.bufferSize != 8 {
		t.Errorf("bufferSize = %d, want the default 8", pool.bufferSize)
	}
}
