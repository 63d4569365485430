package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the legal destinations of the piece on from. It
// returns nil for an empty square, a piece of the side not to move, while
// a promotion is pending, and once the game is over.
func LegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	if !from.Valid() {
		return nil
	}
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove || !canMove(board) {
		return nil
	}
	return legalDestinations(board, from)
}

// AllLegalMoves returns every piece of the side to move that has at least
// one legal destination, in square order.
func AllLegalMoves(board *chess.Board) []chess.PieceMoves {
	if !canMove(board) {
		return nil
	}
	var all []chess.PieceMoves
	for _, piece := range board.Pieces(board.ToMove) {
		if dests := legalDestinations(board, piece.Square); len(dests) > 0 {
			all = append(all, chess.PieceMoves{Piece: piece, Destinations: dests})
		}
	}
	return all
}

// LegalMoveList returns the legal moves of the side to move with pawn
// promotions expanded to one move per promotion kind.
func LegalMoveList(board *chess.Board) []chess.Move {
	var moves []chess.Move
	for _, pm := range AllLegalMoves(board) {
		for _, to := range pm.Destinations {
			if !isPromotion(board, pm.Piece.Square, to) {
				moves = append(moves, chess.Move{From: pm.Piece.Square, To: to})
				continue
			}
			for _, kind := range chess.PromotionKinds {
				moves = append(moves, chess.Move{From: pm.Piece.Square, To: to, Promotion: kind})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(board *chess.Board, colour chess.Colour) bool {
	for _, piece := range board.Pieces(colour) {
		if len(legalDestinations(board, piece.Square)) > 0 {
			return true
		}
	}
	return false
}

// canMove reports whether move generation is open for the side to move.
func canMove(board *chess.Board) bool {
	return !board.HasPendingPromotion() && !board.Status.IsTerminal()
}

// legalDestinations filters the pseudo-legal destinations of the piece on
// from down to those that leave its own king safe.
func legalDestinations(board *chess.Board, from chess.Square) []chess.Square {
	colour := board.Get(from).Colour
	pseudo := PseudoLegalMoves(board, from)
	legal := pseudo[:0]
	for _, to := range pseudo {
		snapshot := simulate(board, from, to)
		if !IsInCheck(&snapshot, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// simulate returns a copy of the board with the move from→to applied to the
// squares only: the mover relocated, any victim removed, and the castling
// rook moved. The original board and its pieces are left untouched.
func simulate(board *chess.Board, from, to chess.Square) chess.Board {
	snapshot := *board
	if victim, ok := enPassantVictim(board, from, to); ok {
		snapshot.Remove(victim)
	}
	if rookFrom, rookTo, ok := castlingRook(board, from, to); ok {
		snapshot.Relocate(rookFrom, rookTo)
	}
	snapshot.Relocate(from, to)
	return snapshot
}
