package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the given colour's king is attacked. A board
// without that king is treated as not in check.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king := board.FindKing(colour)
	if king == chess.NoSquare {
		return false // No king found
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsSquareAttacked returns true if any piece of byColour attacks sq. Pins
// are ignored: a pinned piece still attacks.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Check pawn attacks: an attacking pawn stands one rank behind sq from
	// its own point of view.
	pawnDir := -chess.ForwardDirection(byColour)
	for _, dc := range [...]int{-1, 1} {
		if from, ok := sq.Offset(dc, pawnDir); ok && board.Get(from).Is(byColour, chess.Pawn) {
			return true
		}
	}

	// Check knight attacks
	for _, move := range knightMoves {
		if from, ok := sq.Offset(move[0], move[1]); ok && board.Get(from).Is(byColour, chess.Knight) {
			return true
		}
	}

	// Check king attacks
	for _, dir := range allDirs {
		if from, ok := sq.Offset(dir[0], dir[1]); ok && board.Get(from).Is(byColour, chess.King) {
			return true
		}
	}

	// Check sliding pieces along diagonals and straight lines
	return isRayAttacked(board, sq, byColour, diagonalDirs, chess.Bishop) ||
		isRayAttacked(board, sq, byColour, straightDirs, chess.Rook)
}

// isRayAttacked walks each ray from sq and reports whether the first piece
// met is a queen or the given slider of byColour.
func isRayAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour, dirs [][2]int, slider chess.Kind) bool {
	for _, dir := range dirs {
		from, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(from)
			if !piece.IsEmpty() {
				if piece.Colour == byColour && (piece.Kind == slider || piece.Kind == chess.Queen) {
					return true
				}
				break // Blocked
			}
			from, ok = from.Offset(dir[0], dir[1])
		}
	}
	return false
}
