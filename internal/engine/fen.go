package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/brainit-consulting/chess-sub000/internal/chess"
	"github.com/brainit-consulting/chess-sub000/internal/errors"
)

// InitialFEN is the standard chess starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

var fenPieces = map[byte]struct {
	t chess.PieceType
	c chess.Colour
}{
	'P': {chess.Pawn, chess.White}, 'p': {chess.Pawn, chess.Black},
	'N': {chess.Knight, chess.White}, 'n': {chess.Knight, chess.Black},
	'B': {chess.Bishop, chess.White}, 'b': {chess.Bishop, chess.Black},
	'R': {chess.Rook, chess.White}, 'r': {chess.Rook, chess.Black},
	'Q': {chess.Queen, chess.White}, 'q': {chess.Queen, chess.Black},
	'K': {chess.King, chess.White}, 'k': {chess.King, chess.Black},
}

// ParseFEN builds a position from a FEN string. Pieces parsed from FEN have
// no per-piece history; castling availability is governed entirely by the
// rights field, which the move generator consults first.
func ParseFEN(fen string) (*chess.Position, error) {
	fields := strings.Fields(strings.TrimSpace(fen))
	if len(fields) != 6 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "expected 6 fields, got %d", len(fields))
	}

	pos := chess.NewPosition()

	ranks := strings.Split(fields[0], "/")
	if len(ranks) != chess.BoardSize {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "expected 8 ranks, got %d", len(ranks))
	}
	for i, rankStr := range ranks {
		rank := chess.BoardSize - 1 - i
		file := 0
		for j := 0; j < len(rankStr); j++ {
			ch := rankStr[j]
			if ch >= '1' && ch <= '8' {
				file += int(ch - '0')
				continue
			}
			entry, ok := fenPieces[ch]
			if !ok {
				return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad piece character %q", ch)
			}
			if file >= chess.BoardSize {
				return nil, errors.Wrapf(errors.ErrInvalidFEN, "rank %d overflows", rank+1)
			}
			pos.Place(entry.t, entry.c, chess.Sq(file, rank))
			file++
		}
		if file != chess.BoardSize {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "rank %d has %d files", rank+1, file)
		}
	}

	switch fields[1] {
	case "w":
		pos.ActiveColour = chess.White
	case "b":
		pos.ActiveColour = chess.Black
	default:
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad active colour %q", fields[1])
	}

	if fields[2] != "-" {
		for i := 0; i < len(fields[2]); i++ {
			switch fields[2][i] {
			case 'K':
				pos.Castling.WhiteKingside = true
			case 'Q':
				pos.Castling.WhiteQueenside = true
			case 'k':
				pos.Castling.BlackKingside = true
			case 'q':
				pos.Castling.BlackQueenside = true
			default:
				return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad castling field %q", fields[2])
			}
		}
	}

	if fields[3] != "-" {
		target, err := chess.ParseSquare(fields[3])
		if err != nil {
			return nil, errors.Wrap(errors.ErrInvalidFEN, "bad en-passant field")
		}
		pos.EnPassant = true
		pos.EPTarget = target
	}

	halfmove, err := strconv.Atoi(fields[4])
	if err != nil || halfmove < 0 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad halfmove clock %q", fields[4])
	}
	pos.HalfmoveClock = halfmove

	fullmove, err := strconv.Atoi(fields[5])
	if err != nil || fullmove < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "bad fullmove number %q", fields[5])
	}
	pos.FullmoveNumber = fullmove

	return pos, nil
}

// FormatFEN renders the position as a FEN string.
func FormatFEN(pos *chess.Position) string {
	var sb strings.Builder

	for rank := chess.BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := pos.PieceAt(chess.Sq(file, rank))
			if piece == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			letter := piece.Type.Letter()
			if piece.Colour == chess.Black {
				letter += 'a' - 'A'
			}
			sb.WriteByte(letter)
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}

	active := "w"
	if pos.ActiveColour == chess.Black {
		active = "b"
	}

	castling := ""
	if pos.Castling.WhiteKingside {
		castling += "K"
	}
	if pos.Castling.WhiteQueenside {
		castling += "Q"
	}
	if pos.Castling.BlackKingside {
		castling += "k"
	}
	if pos.Castling.BlackQueenside {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}

	ep := "-"
	if pos.EnPassant {
		ep = pos.EPTarget.String()
	}

	return fmt.Sprintf("%s %s %s %s %d %d",
		sb.String(), active, castling, ep, pos.HalfmoveClock, pos.FullmoveNumber)
}
