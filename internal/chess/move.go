package chess

// Move describes a single move from the mover's point of view. Moves are
// produced by the move generator and consumed by the executor; they are
// transient values and never owned by a Position (LastMove keeps a copy).
//
// Promotion and CapturedID may both be set: a pawn capturing onto the last
// rank promotes and captures in one move. En passant moves leave CapturedID
// zero; the executor resolves the captured pawn from the destination square.
type Move struct {
	From Square
	To   Square

	// Promotion is the piece type a pawn promotes to, or NoPiece.
	Promotion PieceType

	// IsCastle marks a king move that also relocates a rook.
	IsCastle bool

	// IsEnPassant marks a pawn capture onto the en-passant target square.
	IsEnPassant bool

	// CapturedID is the id of the piece on the destination square, or zero.
	CapturedID PieceID
}

// IsCapture reports whether the move removes an enemy piece, including by
// en passant.
func (m Move) IsCapture() bool {
	return m.CapturedID != 0 || m.IsEnPassant
}

// String returns the move in coordinate form, e.g. "e2e4" or "e7e8Q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != NoPiece {
		s += string(m.Promotion.Letter())
	}
	return s
}

// CastlingRights tracks the four castling permissions independently.
// Rights only ever go from true to false over the life of a game.
type CastlingRights struct {
	WhiteKingside  bool
	WhiteQueenside bool
	BlackKingside  bool
	BlackQueenside bool
}

// AllCastlingRights returns rights with all four permissions granted.
func AllCastlingRights() CastlingRights {
	return CastlingRights{
		WhiteKingside:  true,
		WhiteQueenside: true,
		BlackKingside:  true,
		BlackQueenside: true,
	}
}

// Kingside reports the kingside right for the given colour.
func (r CastlingRights) Kingside(c Colour) bool {
	if c == White {
		return r.WhiteKingside
	}
	return r.BlackKingside
}

// Queenside reports the queenside right for the given colour.
func (r CastlingRights) Queenside(c Colour) bool {
	if c == White {
		return r.WhiteQueenside
	}
	return r.BlackQueenside
}

// RevokeKingside clears the kingside right for the given colour.
func (r *CastlingRights) RevokeKingside(c Colour) {
	if c == White {
		r.WhiteKingside = false
	} else {
		r.BlackKingside = false
	}
}

// RevokeQueenside clears the queenside right for the given colour.
func (r *CastlingRights) RevokeQueenside(c Colour) {
	if c == White {
		r.WhiteQueenside = false
	} else {
		r.BlackQueenside = false
	}
}

// RevokeAll clears both rights for the given colour.
func (r *CastlingRights) RevokeAll(c Colour) {
	r.RevokeKingside(c)
	r.RevokeQueenside(c)
}
