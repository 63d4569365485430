package worker

import (
	"context"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Divide counts the perft nodes below each legal root move, spreading the
// root moves over a pool of workers. Entries are sorted by move text as in
// engine.Divide. Cancelling ctx stops the remaining root moves and returns
// the context's error.
func Divide(ctx context.Context, board *chess.Board, depth, workers int) ([]engine.DivideEntry, error) {
	if depth <= 0 {
		return nil, nil
	}

	moves := engine.LegalMoveList(board)
	pool := NewPool(workers, len(moves)+1, func(item WorkItem) ProcessResult {
		if err := ctx.Err(); err != nil {
			return ProcessResult{Index: item.Index, Move: item.Move, Err: err}
		}
		return ProcessResult{
			Index: item.Index,
			Move:  item.Move,
			Nodes: engine.PerftAfter(&item.Board, item.Move, item.Depth),
		}
	})
	pool.Start()

	go func() {
		for i, m := range moves {
			pool.Submit(WorkItem{Index: i, Board: *board, Move: m, Depth: depth})
		}
		pool.Close()
	}()

	entries, err := collect(ctx, pool.Results(), len(moves), pool.Stop)
	if err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Move.String() < entries[j].Move.String()
	})
	return entries, nil
}

// collect gathers want results into an index-ordered slice. A result error
// stops the pool. When fewer than want results arrive, the items skipped
// after a stop are blamed on ctx.
func collect(ctx context.Context, results <-chan ProcessResult, want int, stop func()) ([]engine.DivideEntry, error) {
	entries := make([]engine.DivideEntry, want)
	var firstErr error
	received := 0
	for result := range results {
		received++
		if result.Err != nil {
			if firstErr == nil {
				firstErr = result.Err
			}
			stop()
			continue
		}
		entries[result.Index] = engine.DivideEntry{Move: result.Move, Nodes: result.Nodes}
	}
	if firstErr == nil && received < want {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return entries, nil
}

// Total sums the node counts of a divide.
func Total(entries []engine.DivideEntry) uint64 {
	var total uint64
	for _, e := range entries {
		total += e.Nodes
	}
	return total
}
