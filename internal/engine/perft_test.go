package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// Reference node counts from the standard perft suite.
var perftPositions = []struct {
	name  string
	fen   string
	nodes []uint64 // indexed by depth-1
}{
	{"initial", InitialFEN, []uint64{20, 400, 8902, 197281}},
	{"kiwipete", "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", []uint64{48, 2039, 97862}},
	{"position 3", "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", []uint64{14, 191, 2812, 43238}},
	{"position 4", "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", []uint64{6, 264, 9467}},
	{"position 5", "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", []uint64{44, 1486, 62379}},
}

func TestPerft(t *testing.T) {
	for _, pos := range perftPositions {
		for i, want := range pos.nodes {
			depth := i + 1
			if testing.Short() && depth > 2 {
				continue
			}
			board := mustBoard(t, pos.fen)
			before := *board
			if got := Perft(board, depth); got != want {
				t.Errorf("Perft(%s, %d) = %d, want %d", pos.name, depth, got, want)
			}
			testutil.AssertEqual(t, *board, before, "board modified by Perft(%s, %d)", pos.name, depth)
		}
	}
}

func TestPerftDepthZero(t *testing.T) {
	testutil.AssertEqual(t, Perft(NewInitialBoard(), 0), uint64(1))
	testutil.AssertNil(t, Divide(NewInitialBoard(), 0))
}

func TestDivide(t *testing.T) {
	board := NewInitialBoard()
	entries := Divide(board, 2)

	testutil.AssertEqual(t, len(entries), 20)
	testutil.AssertEqual(t, entries[0].Move.String(), "a2a3")
	testutil.AssertEqual(t, entries[len(entries)-1].Move.String(), "h2h4")

	var total uint64
	for _, e := range entries {
		if e.Nodes != 20 {
			t.Errorf("Divide(initial, 2)[%s] = %d, want 20", e.Move, e.Nodes)
		}
		testutil.AssertEqual(t, PerftAfter(board, e.Move, 2), e.Nodes, "PerftAfter(%s)", e.Move)
		total += e.Nodes
	}
	testutil.AssertEqual(t, total, uint64(400))
}

func TestDividePromotions(t *testing.T) {
	board := mustBoard(t, "3r4/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	var promotions int
	for _, e := range Divide(board, 1) {
		if e.Move.Promotion.IsPromotion() {
			promotions++
		}
		testutil.AssertEqual(t, e.Nodes, uint64(1), "leaf count of %s", e.Move)
	}
	testutil.AssertEqual(t, promotions, 8)
}
