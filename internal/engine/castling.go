package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// kingHomeFile is the e-file, where both kings start.
const kingHomeFile = 4

// rookHome returns the corner square of the rook backing a castling right.
func rookHome(colour chess.Colour, kingside bool) chess.Square {
	file := 0
	if kingside {
		file = chess.BoardSize - 1
	}
	return chess.NewSquare(file, chess.HomeRank(colour))
}

// kingHome returns the starting square of the colour's king.
func kingHome(colour chess.Colour) chess.Square {
	return chess.NewSquare(kingHomeFile, chess.HomeRank(colour))
}

// rookRight returns the castling right backed by a rook of the given colour
// standing on sq, or NoCastling when sq is not one of its corners.
func rookRight(colour chess.Colour, sq chess.Square) chess.CastlingRights {
	switch sq {
	case rookHome(colour, true):
		return chess.CastlingRight(colour, true)
	case rookHome(colour, false):
		return chess.CastlingRight(colour, false)
	}
	return chess.NoCastling
}

// castlingDestinations returns the two-file king shifts currently allowed.
// The king and the rook must be unmoved, the right still held, the squares
// between them empty, and the king's current, transit, and destination
// squares unattacked.
func castlingDestinations(board *chess.Board, from chess.Square) []chess.Square {
	king := board.Get(from)
	if king.Moved || from != kingHome(king.Colour) {
		return nil
	}
	if board.Castling&chess.ColourRights(king.Colour) == chess.NoCastling {
		return nil
	}
	if IsSquareAttacked(board, from, king.Colour.Opposite()) {
		return nil
	}

	var dests []chess.Square
	for _, kingside := range [...]bool{true, false} {
		if !board.Castling.Has(chess.CastlingRight(king.Colour, kingside)) {
			continue
		}
		rookSq := rookHome(king.Colour, kingside)
		rook := board.Get(rookSq)
		if !rook.Is(king.Colour, chess.Rook) || rook.Moved {
			continue
		}
		if !isPathClear(board, from, rookSq) {
			continue
		}

		dir := sign(rookSq.File() - from.File())
		transit, ok := from.Offset(dir, 0)
		if !ok {
			continue
		}
		dest, ok := from.Offset(2*dir, 0)
		if !ok || !strictlyBetween(dest.File(), from.File(), rookSq.File()) {
			continue
		}
		if !kingSafeOn(board, from, transit) || !kingSafeOn(board, from, dest) {
			continue
		}
		dests = append(dests, dest)
	}
	return dests
}

// strictlyBetween reports whether x lies strictly between a and b.
func strictlyBetween(x, a, b int) bool {
	if a > b {
		a, b = b, a
	}
	return a < x && x < b
}

// isPathClear checks that every square strictly between two squares on the
// same rank is empty.
func isPathClear(board *chess.Board, from, to chess.Square) bool {
	dir := sign(to.File() - from.File())
	sq, ok := from.Offset(dir, 0)
	for ok && sq != to {
		if !board.IsEmpty(sq) {
			return false
		}
		sq, ok = sq.Offset(dir, 0)
	}
	return true
}

// kingSafeOn reports whether the king on from would be safe standing on to,
// judged on a snapshot with only the king relocated.
func kingSafeOn(board *chess.Board, from, to chess.Square) bool {
	snapshot := *board
	colour := snapshot.Get(from).Colour
	snapshot.Relocate(from, to)
	return !IsInCheck(&snapshot, colour)
}

// IsCastling reports whether moving the piece on from to to is a castling
// move, that is a king shifting two files along its rank.
func IsCastling(board *chess.Board, from, to chess.Square) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	_, _, ok := castlingRook(board, from, to)
	return ok
}

// castlingRook returns the rook relocation implied by a king two-file shift.
func castlingRook(board *chess.Board, from, to chess.Square) (rookFrom, rookTo chess.Square, ok bool) {
	king := board.Get(from)
	if king.Kind != chess.King || from.Rank() != to.Rank() || abs(to.File()-from.File()) != 2 {
		return chess.NoSquare, chess.NoSquare, false
	}
	dir := sign(to.File() - from.File())
	rookFrom = rookHome(king.Colour, dir > 0)
	rookTo, _ = to.Offset(-dir, 0)
	return rookFrom, rookTo, true
}

// revokeCastling removes castling rights when a king or rook moves, or when
// a rook is captured on its corner. Rights are never restored.
func revokeCastling(board *chess.Board, mover chess.Piece, from chess.Square, captured chess.Piece, to chess.Square) {
	switch mover.Kind {
	case chess.King:
		board.Castling &^= chess.ColourRights(mover.Colour)
	case chess.Rook:
		board.Castling &^= rookRight(mover.Colour, from)
	}
	if captured.Kind == chess.Rook {
		board.Castling &^= rookRight(captured.Colour, to)
	}
}
