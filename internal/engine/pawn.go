package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnDestinations generates pushes, double pushes from the start rank,
// diagonal captures, and en passant captures.
func pawnDestinations(board *chess.Board, from chess.Square) []chess.Square {
	pawn := board.Get(from)
	dir := chess.ForwardDirection(pawn.Colour)
	var dests []chess.Square

	// Forward move
	if one, ok := from.Offset(0, dir); ok && board.IsEmpty(one) {
		dests = append(dests, one)
		// Double push from starting rank
		if from.Rank() == chess.PawnStartRank(pawn.Colour) {
			if two, ok := from.Offset(0, 2*dir); ok && board.IsEmpty(two) {
				dests = append(dests, two)
			}
		}
	}

	// Captures
	for _, dc := range [...]int{-1, 1} {
		to, ok := from.Offset(dc, dir)
		if !ok {
			continue
		}
		if board.Get(to).IsEnemyOf(pawn.Colour) || canCaptureEnPassant(board, from, to) {
			dests = append(dests, to)
		}
	}
	return dests
}

// canCaptureEnPassant reports whether the pawn on from may capture onto the
// current en passant target to. Only the side to move may use the target,
// and the double-stepped pawn must still be beside the capturer.
func canCaptureEnPassant(board *chess.Board, from, to chess.Square) bool {
	if board.EnPassant == chess.NoSquare || to != board.EnPassant {
		return false
	}
	pawn := board.Get(from)
	if pawn.Kind != chess.Pawn || pawn.Colour != board.ToMove {
		return false
	}
	victim := chess.NewSquare(to.File(), from.Rank())
	return board.Get(victim).Is(pawn.Colour.Opposite(), chess.Pawn)
}

// enPassantVictim returns the square of the pawn captured en passant by the
// move from→to, if the move is an en passant capture.
func enPassantVictim(board *chess.Board, from, to chess.Square) (chess.Square, bool) {
	if from.File() == to.File() || !canCaptureEnPassant(board, from, to) {
		return chess.NoSquare, false
	}
	return chess.NewSquare(to.File(), from.Rank()), true
}

// isPromotion reports whether moving the piece on from to to promotes a pawn.
func isPromotion(board *chess.Board, from, to chess.Square) bool {
	p := board.Get(from)
	return p.Kind == chess.Pawn && to.Rank() == chess.PromotionRank(p.Colour)
}

// updateEnPassant sets the target behind a fresh double push, else clears it.
func updateEnPassant(board *chess.Board, mover chess.Piece, from, to chess.Square) {
	board.EnPassant = chess.NoSquare
	if mover.Kind == chess.Pawn && abs(to.Rank()-from.Rank()) == 2 {
		board.EnPassant = chess.NewSquare(from.File(), (from.Rank()+to.Rank())/2)
	}
}
