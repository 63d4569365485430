package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Classify returns the game-over state of the side to move. Terminal states
// are sticky: once a board is checkmate or stalemate it stays that way.
func Classify(board *chess.Board) chess.Status {
	if board.Status.IsTerminal() {
		return board.Status
	}
	colour := board.ToMove
	if HasLegalMoves(board, colour) {
		return chess.Ongoing
	}
	if IsInCheck(board, colour) {
		return chess.Checkmate
	}
	return chess.Stalemate
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(board *chess.Board) bool {
	colour := board.ToMove
	return IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(board *chess.Board) bool {
	colour := board.ToMove
	return !IsInCheck(board, colour) && !HasLegalMoves(board, colour)
}
