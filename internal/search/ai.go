package search

import (
	"math/rand"
	"time"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
)

// Difficulty selects the search depth.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Medium
	Hard
)

// Depth returns the search depth in plies for the difficulty.
func (d Difficulty) Depth() int {
	switch d {
	case Easy:
		return 1
	case Hard:
		return 3
	default:
		return 2
	}
}

// String returns the string representation of a difficulty.
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Hard:
		return "hard"
	default:
		return "medium"
	}
}

// ParseDifficulty maps a difficulty name to its value; unknown names fall
// back to Medium with ok false.
func ParseDifficulty(name string) (Difficulty, bool) {
	switch name {
	case "easy":
		return Easy, true
	case "medium":
		return Medium, true
	case "hard":
		return Hard, true
	}
	return Medium, false
}

type options struct {
	colour     chess.Colour
	difficulty Difficulty
	seed       *uint32
}

// Option configures a ChooseMove invocation.
type Option func(*options)

// WithColour sets the side the AI plays. Default is Black.
func WithColour(c chess.Colour) Option {
	return func(o *options) { o.colour = c }
}

// WithDifficulty sets the search depth mapping. Default is Medium.
func WithDifficulty(d Difficulty) Option {
	return func(o *options) { o.difficulty = d }
}

// WithSeed fixes the tie-breaking generator's seed, making the chosen move
// reproducible for identical positions and options.
func WithSeed(seed uint32) Option {
	return func(o *options) {
		s := seed
		o.seed = &s
	}
}

// ChooseMove selects a move for the configured colour, or nil when that
// colour has no legal moves; callers are expected to have classified
// checkmate and stalemate beforehand via engine.GameStatus. Each invocation
// constructs its own generator: the seeded LCG when a seed is supplied,
// otherwise a throwaway time-seeded math/rand source.
func ChooseMove(pos *chess.Position, opts ...Option) *chess.Move {
	o := options{colour: chess.Black, difficulty: Medium}
	for _, opt := range opts {
		opt(&o)
	}

	if len(engine.AllLegalMoves(pos, o.colour)) == 0 {
		return nil
	}

	var rng Uniform
	if o.seed != nil {
		rng = NewLCG(*o.seed)
	} else {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return BestMove(pos, o.colour, o.difficulty.Depth(), rng)
}
