package chess

import "unicode"

// Piece is a single placed chess piece. The zero Kind marks an empty square.
type Piece struct {
	Colour Colour
	Kind   Kind
	Square Square
	// Moved is set the first time the piece is relocated by a move.
	Moved bool
}

// NewPiece creates an unmoved piece.
func NewPiece(colour Colour, kind Kind, sq Square) Piece {
	return Piece{Colour: colour, Kind: kind, Square: sq}
}

// IsEmpty reports whether the value describes an empty square.
func (p Piece) IsEmpty() bool {
	return p.Kind == NoKind
}

// Is reports whether p is a piece of the given colour and kind.
func (p Piece) Is(colour Colour, kind Kind) bool {
	return p.Kind == kind && p.Colour == colour
}

// IsEnemyOf reports whether p is a piece of the colour opposing c.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour
}

// Letter returns the notation letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	letter := p.Kind.Letter()
	if p.Colour == Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// String returns a description such as "White Knight g1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty " + p.Square.String()
	}
	return p.Colour.String() + " " + p.Kind.String() + " " + p.Square.String()
}

// PieceFromLetter decodes a notation letter into colour and kind.
func PieceFromLetter(c byte) (Colour, Kind, bool) {
	kind, ok := KindFromLetter(c)
	if !ok {
		return Black, NoKind, false
	}
	if unicode.IsUpper(rune(c)) {
		return White, kind, true
	}
	return Black, kind, true
}
