// Package chess provides core chess types and operations.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Letter returns the active colour letter used in position notation.
func (c Colour) Letter() byte {
	if c == White {
		return 'w'
	}
	return 'b'
}

// Kind represents a chess piece type.
type Kind uint8

const (
	NoKind Kind = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumKinds
)

// String returns the string representation of a piece kind.
func (k Kind) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a kind (uppercase).
func (k Kind) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(k) < len(letters) {
		return letters[k]
	}
	return '?'
}

// IsPromotion reports whether a pawn may promote to this kind.
func (k Kind) IsPromotion() bool {
	return k == Knight || k == Bishop || k == Rook || k == Queen
}

// PromotionKinds lists the kinds a pawn may promote to, strongest first.
var PromotionKinds = [...]Kind{Queen, Rook, Bishop, Knight}

// KindFromLetter converts a piece letter of either case to its kind.
func KindFromLetter(c byte) (Kind, bool) {
	switch c {
	case 'P', 'p':
		return Pawn, true
	case 'N', 'n':
		return Knight, true
	case 'B', 'b':
		return Bishop, true
	case 'R', 'r':
		return Rook, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	}
	return NoKind, false
}

// Constants for board dimensions.
const (
	BoardSize  = 8
	NumSquares = BoardSize * BoardSize

	FileBase = 'a'
	RankBase = '1'
)

// Square is a board index 0..63 computed as rank*8 + file. Rank 0 is the
// first row of the notation, i.e. the eighth rank from White's side.
type Square int8

// NoSquare marks an absent square (no en passant target, no king).
const NoSquare Square = -1

// NewSquare returns the square at the given file and rank indices.
func NewSquare(file, rank int) Square {
	return Square(rank*BoardSize + file)
}

// File returns the 0-based file (0 = a).
func (s Square) File() int {
	return int(s) % BoardSize
}

// Rank returns the 0-based rank index (0 = the eighth rank).
func (s Square) Rank() int {
	return int(s) / BoardSize
}

// Valid reports whether s is on the board.
func (s Square) Valid() bool {
	return s >= 0 && s < NumSquares
}

// Offset returns the square df files and dr ranks away from s.
// The second result is false when that square is off the board.
func (s Square) Offset(df, dr int) (Square, bool) {
	f, r := s.File()+df, s.Rank()+dr
	if f < 0 || f >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(f, r), true
}

// IsLight returns true if the square is a light square.
func (s Square) IsLight() bool {
	return (s.File()+s.Rank())%2 == 0
}

// String returns the algebraic name of the square, or "-" for NoSquare.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return fmt.Sprintf("%c%c", FileBase+s.File(), RankBase+BoardSize-1-s.Rank())
}

// ParseSquare converts an algebraic name such as "e4" to a square.
func ParseSquare(name string) (Square, bool) {
	if len(name) != 2 {
		return NoSquare, false
	}
	file := int(name[0]) - FileBase
	rank := BoardSize - 1 - (int(name[1]) - RankBase)
	if file < 0 || file >= BoardSize || rank < 0 || rank >= BoardSize {
		return NoSquare, false
	}
	return NewSquare(file, rank), true
}

// ForwardDirection returns the rank step of a pawn of the given colour.
// White starts on the high rank indices and advances towards rank 0.
func ForwardDirection(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// HomeRank returns the rank index holding the colour's king and rooks.
func HomeRank(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// PawnStartRank returns the rank index a pawn double-steps from.
func PawnStartRank(colour Colour) int {
	return HomeRank(colour) + ForwardDirection(colour)
}

// PromotionRank returns the farthest rank index for the colour's pawns.
func PromotionRank(colour Colour) int {
	return HomeRank(colour.Opposite())
}

// CastlingRights holds the four independent castling flags.
type CastlingRights uint8

const (
	WhiteKingside CastlingRights = 1 << iota
	WhiteQueenside
	BlackKingside
	BlackQueenside

	NoCastling  CastlingRights = 0
	AllCastling                = WhiteKingside | WhiteQueenside | BlackKingside | BlackQueenside
)

// CastlingRight returns the flag for one colour and side.
func CastlingRight(colour Colour, kingside bool) CastlingRights {
	switch {
	case colour == White && kingside:
		return WhiteKingside
	case colour == White:
		return WhiteQueenside
	case kingside:
		return BlackKingside
	default:
		return BlackQueenside
	}
}

// ColourRights returns both flags of a colour.
func ColourRights(colour Colour) CastlingRights {
	return CastlingRight(colour, true) | CastlingRight(colour, false)
}

// Has reports whether every flag in r is set.
func (cr CastlingRights) Has(r CastlingRights) bool {
	return cr&r == r
}

// String renders the rights in KQkq order, or "-" when none are held.
func (cr CastlingRights) String() string {
	if cr == NoCastling {
		return "-"
	}
	var buf []byte
	for i, letter := range []byte("KQkq") {
		if cr.Has(CastlingRights(1 << i)) {
			buf = append(buf, letter)
		}
	}
	return string(buf)
}

// Status is the game-over classification of a board.
type Status uint8

const (
	Ongoing Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	default:
		return "Ongoing"
	}
}

// IsTerminal reports whether no further moves may be played.
func (s Status) IsTerminal() bool {
	return s != Ongoing
}
