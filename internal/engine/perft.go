package engine

import (
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Perft counts the leaf nodes of the legal move tree to the given depth.
// Promotions count once per promotion kind. This is the standard way to
// verify move generation correctness.
func Perft(board *chess.Board, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := LegalMoveList(board)
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, m := range moves {
		child := board.Copy()
		play(child, m)
		nodes += Perft(child, depth-1)
	}
	return nodes
}

// DivideEntry is the node count below one root move.
type DivideEntry struct {
	Move  chess.Move
	Nodes uint64
}

// Divide returns the perft node count below each legal root move, sorted
// by move text.
func Divide(board *chess.Board, depth int) []DivideEntry {
	if depth <= 0 {
		return nil
	}
	moves := LegalMoveList(board)
	entries := make([]DivideEntry, 0, len(moves))
	for _, m := range moves {
		entries = append(entries, DivideEntry{Move: m, Nodes: PerftAfter(board, m, depth)})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries
}

// PerftAfter counts the leaf nodes at depth below a root move known to be
// legal. The board itself is not modified.
func PerftAfter(board *chess.Board, m chess.Move, depth int) uint64 {
	child := board.Copy()
	play(child, m)
	return Perft(child, depth-1)
}

// play executes a move taken from LegalMoveList without revalidating it.
func play(board *chess.Board, m chess.Move) {
	execute(board, m.From, m.To)
	if m.Promotion != chess.NoKind {
		// The pawn is pending after execute, so this cannot fail.
		_ = ResolvePromotion(board, m.Promotion)
	}
}
