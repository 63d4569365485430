package chess

import "strings"

// Move is a source-destination pair, with the promotion kind when a pawn
// reaches the farthest rank.
type Move struct {
	From      Square
	To        Square
	Promotion Kind
}

// String returns the move in long algebraic form, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	var sb strings.Builder
	sb.WriteString(m.From.String())
	sb.WriteString(m.To.String())
	if m.Promotion != NoKind {
		sb.WriteByte(Piece{Colour: Black, Kind: m.Promotion}.Letter())
	}
	return sb.String()
}

// ParseMove parses a long algebraic move such as "g1f3" or "a7a8n".
func ParseMove(text string) (Move, bool) {
	if len(text) != 4 && len(text) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(text[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(text[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(text) == 5 {
		kind, ok := KindFromLetter(text[4])
		if !ok || !kind.IsPromotion() {
			return Move{}, false
		}
		m.Promotion = kind
	}
	return m, true
}

// PieceMoves pairs a piece with its legal destinations.
type PieceMoves struct {
	Piece        Piece
	Destinations []Square
}

// Moves expands the destinations into moves without promotion kinds.
func (pm PieceMoves) Moves() []Move {
	moves := make([]Move, 0, len(pm.Destinations))
	for _, to := range pm.Destinations {
		moves = append(moves, Move{From: pm.Piece.Square, To: to})
	}
	return moves
}
