package chess

// Board is the single owner of the pieces of one game together with all
// state needed to continue it. It is a plain value: copying a Board yields
// an independent snapshot that shares nothing with the original.
type Board struct {
	// Squares holds one slot per square; empty slots have Kind NoKind.
	Squares [NumSquares]Piece

	// Who has the next move.
	ToMove Colour

	// Castling rights still available.
	Castling CastlingRights

	// The square passed over by a pawn that just advanced two ranks.
	EnPassant Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, incremented after Black moves.
	MoveNumber uint

	// The square of a pawn waiting to be promoted.
	PendingPromotion Square

	// Game-over classification.
	Status Status
}

// NewBoard creates a new empty board with White to move.
func NewBoard() *Board {
	b := &Board{
		ToMove:           White,
		MoveNumber:       1,
		EnPassant:        NoSquare,
		PendingPromotion: NoSquare,
	}
	for sq := Square(0); sq < NumSquares; sq++ {
		b.Squares[sq] = Piece{Square: sq}
	}
	return b
}

// Get returns the piece at the given square.
func (b *Board) Get(sq Square) Piece {
	return b.Squares[sq]
}

// IsEmpty reports whether sq holds no piece.
func (b *Board) IsEmpty(sq Square) bool {
	return b.Squares[sq].IsEmpty()
}

// Put places p on sq, replacing whatever was there.
func (b *Board) Put(sq Square, p Piece) {
	p.Square = sq
	b.Squares[sq] = p
}

// Remove empties sq and returns the piece that was on it.
func (b *Board) Remove(sq Square) Piece {
	p := b.Squares[sq]
	b.Squares[sq] = Piece{Square: sq}
	return p
}

// Relocate moves the piece on from to to, marking it as moved.
// It returns whatever occupied the destination.
func (b *Board) Relocate(from, to Square) Piece {
	captured := b.Get(to)
	p := b.Remove(from)
	p.Moved = true
	b.Put(to, p)
	return captured
}

// Copy creates an independent copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}

// Pieces returns the pieces of the given colour in square order.
func (b *Board) Pieces(colour Colour) []Piece {
	var pieces []Piece
	for _, p := range b.Squares {
		if !p.IsEmpty() && p.Colour == colour {
			pieces = append(pieces, p)
		}
	}
	return pieces
}

// FindKing returns the square of the colour's king, or NoSquare.
func (b *Board) FindKing(colour Colour) Square {
	for _, p := range b.Squares {
		if p.Is(colour, King) {
			return p.Square
		}
	}
	return NoSquare
}

// HasPendingPromotion reports whether a pawn is waiting to be promoted.
func (b *Board) HasPendingPromotion() bool {
	return b.PendingPromotion != NoSquare
}
