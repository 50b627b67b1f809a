package chess

// Position is the sole mutable aggregate of the engine: the board, the piece
// registry that owns all Piece values, and the game-state bookkeeping. The
// board references pieces by id only; every non-empty cell's id must exist in
// Pieces.
type Position struct {
	// Board holds the piece id on each square, indexed [file][rank].
	// Zero means empty.
	Board [BoardSize][BoardSize]PieceID

	// Pieces is the registry owning every piece on the board.
	Pieces map[PieceID]*Piece

	// ActiveColour is the side to move.
	ActiveColour Colour

	// Castling tracks the four castling permissions.
	Castling CastlingRights

	// EnPassant is true when EPTarget holds the square a pawn skipped on the
	// immediately preceding double push.
	EnPassant bool
	EPTarget  Square

	// HalfmoveClock counts plies since the last pawn move or capture.
	HalfmoveClock int

	// FullmoveNumber starts at 1 and increments after each Black move.
	FullmoveNumber int

	// LastMove is the most recently applied move, kept for UI highlighting.
	LastMove *Move

	// NextID is the id the next placed piece receives.
	NextID PieceID
}

// NewPosition creates an empty position with White to move.
func NewPosition() *Position {
	return &Position{
		Pieces:         make(map[PieceID]*Piece),
		ActiveColour:   White,
		FullmoveNumber: 1,
		NextID:         1,
	}
}

// NewInitialPosition creates the standard starting position with all
// castling rights granted.
func NewInitialPosition() *Position {
	pos := NewPosition()
	backRank := [BoardSize]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		pos.Place(backRank[file], White, Sq(file, 0))
		pos.Place(Pawn, White, Sq(file, 1))
		pos.Place(Pawn, Black, Sq(file, 6))
		pos.Place(backRank[file], Black, Sq(file, 7))
	}
	pos.Castling = AllCastlingRights()
	return pos
}

// Place adds a new piece to the registry and the board, returning its id.
// Any piece already on the square is dropped from the board but not the
// registry; Place is for position setup, not move application.
func (p *Position) Place(t PieceType, c Colour, sq Square) PieceID {
	id := p.NextID
	p.NextID++
	p.Pieces[id] = &Piece{ID: id, Type: t, Colour: c}
	p.Board[sq.File][sq.Rank] = id
	return id
}

// IDAt returns the piece id on the given square, or zero.
func (p *Position) IDAt(sq Square) PieceID {
	return p.Board[sq.File][sq.Rank]
}

// PieceAt returns the piece on the given square, or nil if the square is
// empty or the id is not in the registry.
func (p *Position) PieceAt(sq Square) *Piece {
	id := p.Board[sq.File][sq.Rank]
	if id == 0 {
		return nil
	}
	return p.Pieces[id]
}

// SquareOf scans the board for the square holding the given piece id.
// The board is 64 cells, so a full scan is acceptable.
func (p *Position) SquareOf(id PieceID) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p.Board[file][rank] == id {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// KingSquare returns the square of the given colour's king. The engine
// trusts its input positions; ok is false only for malformed setups with no
// king at all.
func (p *Position) KingSquare(c Colour) (Square, bool) {
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			id := p.Board[file][rank]
			if id == 0 {
				continue
			}
			if piece := p.Pieces[id]; piece != nil && piece.Type == King && piece.Colour == c {
				return Sq(file, rank), true
			}
		}
	}
	return Square{}, false
}

// Clone creates a deep copy of the position: the board grid, every piece in
// the registry, the castling rights, en-passant state, clocks and last move.
// Cloning is the engine's isolation mechanism for speculative moves.
func (p *Position) Clone() *Position {
	clone := &Position{
		Board:          p.Board,
		Pieces:         make(map[PieceID]*Piece, len(p.Pieces)),
		ActiveColour:   p.ActiveColour,
		Castling:       p.Castling,
		EnPassant:      p.EnPassant,
		EPTarget:       p.EPTarget,
		HalfmoveClock:  p.HalfmoveClock,
		FullmoveNumber: p.FullmoveNumber,
		NextID:         p.NextID,
	}
	for id, piece := range p.Pieces {
		copied := *piece
		clone.Pieces[id] = &copied
	}
	if p.LastMove != nil {
		last := *p.LastMove
		clone.LastMove = &last
	}
	return clone
}
