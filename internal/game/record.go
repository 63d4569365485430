package game

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// MoveRecord describes one completed turn.
type MoveRecord struct {
	Ply        int
	MoveNumber uint
	Colour     chess.Colour
	Piece      chess.Kind
	From       chess.Square
	To         chess.Square
	Captured   chess.Kind
	Promotion  chess.Kind
	Castle     bool
	EnPassant  bool
	// Check is set when the move leaves the opponent in check.
	Check bool
	// FEN is the position notation after the turn.
	FEN string
}

// Move returns the source-destination pair of the record.
func (r MoveRecord) Move() chess.Move {
	return chess.Move{From: r.From, To: r.To, Promotion: r.Promotion}
}

// String returns the move in long algebraic form with capture and check
// markers, e.g. "Ng1-f3", "e5xd6 e.p." or "Qd8xh4+".
func (r MoveRecord) String() string {
	if r.Castle {
		s := "O-O"
		if r.To.File() < r.From.File() {
			s = "O-O-O"
		}
		return s + r.checkSuffix()
	}

	var sb strings.Builder
	if r.Piece != chess.Pawn {
		sb.WriteByte(r.Piece.Letter())
	}
	sb.WriteString(r.From.String())
	if r.Captured != chess.NoKind {
		sb.WriteByte('x')
	} else {
		sb.WriteByte('-')
	}
	sb.WriteString(r.To.String())
	if r.Promotion != chess.NoKind {
		sb.WriteByte('=')
		sb.WriteByte(r.Promotion.Letter())
	}
	if r.EnPassant {
		sb.WriteString(" e.p.")
	}
	sb.WriteString(r.checkSuffix())
	return sb.String()
}

func (r MoveRecord) checkSuffix() string {
	if r.Check {
		return "+"
	}
	return ""
}
