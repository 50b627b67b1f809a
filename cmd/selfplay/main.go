// Command selfplay plays seeded AI-vs-AI matches with the engine. A single
// game prints its moves and final board; multiple games run in parallel on
// a worker pool, one seed per game, and print a result line each.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/engine"
	"github.com/brainit-consulting/chess-sub000/internal/search"
	"github.com/brainit-consulting/chess-sub000/internal/worker"
)

func main() {
	var (
		fen      = flag.String("fen", "", "starting position in FEN (default: initial position)")
		white    = flag.String("white", "medium", "white difficulty: easy, medium or hard")
		black    = flag.String("black", "medium", "black difficulty: easy, medium or hard")
		seed     = flag.Uint("seed", 1, "base PRNG seed; game n uses seed+n")
		games    = flag.Int("games", 1, "number of games to play")
		workers  = flag.Int("workers", 1, "worker goroutines when playing multiple games")
		maxMoves = flag.Int("max-moves", 200, "full-move cap per game, 0 for no cap")
	)
	flag.Parse()

	for _, name := range []string{*white, *black} {
		if _, ok := search.ParseDifficulty(name); !ok {
			fmt.Fprintf(os.Stderr, "selfplay: unknown difficulty %q\n", name)
			os.Exit(1)
		}
	}
	if *games < 1 {
		fmt.Fprintln(os.Stderr, "selfplay: -games must be at least 1")
		os.Exit(1)
	}

	if *games == 1 {
		result := playMatch(worker.Match{
			FEN:      *fen,
			White:    *white,
			Black:    *black,
			Seed:     uint32(*seed),
			MaxMoves: *maxMoves,
		})
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "selfplay: %v\n", result.Err)
			os.Exit(1)
		}
		printGame(result)
		return
	}

	pool := worker.NewPool(playMatch, worker.WithWorkers(*workers), worker.WithBufferSize(*games))
	pool.Start()
	go func() {
		for i := 0; i < *games; i++ {
			pool.Submit(worker.Match{
				Index:    i,
				FEN:      *fen,
				White:    *white,
				Black:    *black,
				Seed:     uint32(*seed) + uint32(i),
				MaxMoves: *maxMoves,
			})
		}
		pool.Close()
	}()

	failed := false
	for result := range pool.Results() {
		if result.Err != nil {
			fmt.Fprintf(os.Stderr, "selfplay: game %d: %v\n", result.Index, result.Err)
			failed = true
			continue
		}
		fmt.Printf("game %d seed %d: %s in %d plies (%s)\n",
			result.Index, result.Seed, result.Status, len(result.Moves), result.FinalFEN)
	}
	if failed {
		os.Exit(1)
	}
}

// playMatch plays one game to its terminal status or the move cap. Each ply
// derives its own seed from the match seed so every move selection stays
// reproducible.
func playMatch(m worker.Match) worker.MatchResult {
	result := worker.MatchResult{Index: m.Index, Seed: m.Seed}

	var pos *chess.Position
	if m.FEN == "" {
		pos = chess.NewInitialPosition()
	} else {
		parsed, err := engine.ParseFEN(m.FEN)
		if err != nil {
			result.Err = err
			return result
		}
		pos = parsed
	}

	whiteDiff, _ := search.ParseDifficulty(m.White)
	blackDiff, _ := search.ParseDifficulty(m.Black)

	for ply := 0; ; ply++ {
		status := engine.GameStatus(pos)
		if status.Terminal() {
			result.Status = statusLabel(status)
			break
		}
		if m.MaxMoves > 0 && pos.FullmoveNumber > m.MaxMoves {
			result.Status = "unfinished (move cap)"
			break
		}

		diff := blackDiff
		if pos.ActiveColour == chess.White {
			diff = whiteDiff
		}
		move := search.ChooseMove(pos,
			search.WithColour(pos.ActiveColour),
			search.WithDifficulty(diff),
			search.WithSeed(m.Seed+uint32(ply)),
		)
		if move == nil {
			result.Status = statusLabel(engine.GameStatus(pos))
			break
		}
		if err := engine.Apply(pos, *move); err != nil {
			result.Err = err
			return result
		}
		result.Moves = append(result.Moves, move.String())
	}

	result.FinalFEN = engine.FormatFEN(pos)
	return result
}

func statusLabel(status engine.Status) string {
	if status.Kind == engine.Checkmate {
		return fmt.Sprintf("checkmate, %s wins", strings.ToLower(status.Winner.String()))
	}
	return status.Kind.String()
}

// printGame prints the move list, the final board and the result of a
// single-game run.
func printGame(result worker.MatchResult) {
	for i := 0; i < len(result.Moves); i += 2 {
		line := fmt.Sprintf("%3d. %s", i/2+1, result.Moves[i])
		if i+1 < len(result.Moves) {
			line += " " + result.Moves[i+1]
		}
		fmt.Println(line)
	}

	pos, err := engine.ParseFEN(result.FinalFEN)
	if err == nil {
		fmt.Println()
		fmt.Print(boardString(pos))
	}
	fmt.Printf("\n%s (%s)\n", result.Status, result.FinalFEN)
}

// boardString renders the board with White at the bottom, uppercase for
// White's pieces and dots for empty squares.
func boardString(pos *chess.Position) string {
	var sb strings.Builder
	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		fmt.Fprintf(&sb, "%d ", rank+1)
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.PieceAt(chess.Sq(file, rank))
			if piece == nil {
				sb.WriteString(" .")
				continue
			}
			letter := piece.Type.Letter()
			if piece.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("   a b c d e f g h\n")
	return sb.String()
}
