package engine

import (
	"fmt"
	"slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// AttemptMove plays from→to if it is one of the piece's legal moves. It
// returns false, and leaves the board unchanged, for an illegal move.
// Errors report sequencing violations: a move while a promotion is pending
// or after the game has ended.
func AttemptMove(board *chess.Board, from, to chess.Square) (bool, error) {
	if err := checkSequence(board); err != nil {
		return false, err
	}
	if !from.Valid() || !to.Valid() {
		return false, nil
	}
	return attempt(board, from, to, LegalMoves(board, from)), nil
}

// AttemptMoveWithLegal is AttemptMove validated against a destination list
// the caller obtained from LegalMoves for the same piece. The list must come
// from the current position; a stale list is not detected.
func AttemptMoveWithLegal(board *chess.Board, from, to chess.Square, legal []chess.Square) (bool, error) {
	if err := checkSequence(board); err != nil {
		return false, err
	}
	if !from.Valid() || !to.Valid() {
		return false, nil
	}
	piece := board.Get(from)
	if piece.IsEmpty() || piece.Colour != board.ToMove {
		return false, nil
	}
	return attempt(board, from, to, legal), nil
}

// ApplyMove plays a move and, when it promotes, resolves the promotion with
// m.Promotion. A promoting move without a promotion kind is played and left
// pending. A promotion kind on a non-promoting move is rejected unplayed.
func ApplyMove(board *chess.Board, m chess.Move) (bool, error) {
	if err := checkSequence(board); err != nil {
		return false, err
	}
	if !m.From.Valid() || !m.To.Valid() {
		return false, nil
	}
	if m.Promotion != chess.NoKind {
		if !m.Promotion.IsPromotion() {
			return false, fmt.Errorf("%s: %w", m.Promotion, errors.ErrInvalidPromotion)
		}
		if !isPromotion(board, m.From, m.To) {
			return false, nil
		}
	}
	if !attempt(board, m.From, m.To, LegalMoves(board, m.From)) {
		return false, nil
	}
	if m.Promotion != chess.NoKind {
		return true, ResolvePromotion(board, m.Promotion)
	}
	return true, nil
}

// ResolvePromotion replaces the pending pawn with a piece of the given kind
// and completes the turn that promoted it.
func ResolvePromotion(board *chess.Board, kind chess.Kind) error {
	if !board.HasPendingPromotion() {
		return errors.ErrNoPendingPromotion
	}
	if !kind.IsPromotion() {
		return fmt.Errorf("%s: %w", kind, errors.ErrInvalidPromotion)
	}

	sq := board.PendingPromotion
	pawn := board.Get(sq)
	board.Put(sq, chess.Piece{Colour: pawn.Colour, Kind: kind, Moved: true})
	board.PendingPromotion = chess.NoSquare

	// A pawn moved, so the clock resets.
	finishTurn(board, true)
	return nil
}

// checkSequence rejects moves while a promotion is pending or the game is over.
func checkSequence(board *chess.Board) error {
	if board.Status.IsTerminal() {
		return errors.ErrGameOver
	}
	if board.HasPendingPromotion() {
		return errors.ErrUnexpectedPromotion
	}
	return nil
}

// attempt executes from→to when to is in legal.
func attempt(board *chess.Board, from, to chess.Square, legal []chess.Square) bool {
	if !slices.Contains(legal, to) {
		return false
	}
	execute(board, from, to)
	return true
}

// execute applies a validated move and all of its bookkeeping.
func execute(board *chess.Board, from, to chess.Square) {
	mover := board.Get(from)

	// Handle en passant capture
	var captured chess.Piece
	if victim, ok := enPassantVictim(board, from, to); ok {
		captured = board.Remove(victim)
	}

	// Move rook when castling
	if rookFrom, rookTo, ok := castlingRook(board, from, to); ok {
		board.Relocate(rookFrom, rookTo)
	}

	promotes := isPromotion(board, from, to)
	if target := board.Relocate(from, to); !target.IsEmpty() {
		captured = target
	}

	revokeCastling(board, mover, from, captured, to)
	updateEnPassant(board, mover, from, to)

	if promotes {
		board.PendingPromotion = to
		return
	}
	finishTurn(board, mover.Kind == chess.Pawn || !captured.IsEmpty())
}

// finishTurn updates the counters, passes the move, and reclassifies.
func finishTurn(board *chess.Board, resetClock bool) {
	if resetClock {
		board.HalfmoveClock = 0
	} else {
		board.HalfmoveClock++
	}
	if board.ToMove == chess.Black {
		board.MoveNumber++
	}
	board.ToMove = board.ToMove.Opposite()
	board.Status = Classify(board)
}
