package opponent

import (
	"errors"
	"slices"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// fakeGame offers a fixed move table and records what is submitted.
type fakeGame struct {
	moves     []chess.PieceMoves
	promoteOn chess.Square
	pending   bool
	played    []chess.Move
	promoted  []chess.Kind
}

func (f *fakeGame) AllLegalMoves() []chess.PieceMoves { return f.moves }

func (f *fakeGame) PendingPromotion() (chess.Square, bool) {
	return f.promoteOn, f.pending
}

func (f *fakeGame) Move(from, to chess.Square) (bool, error) {
	f.played = append(f.played, chess.Move{From: from, To: to})
	f.pending = to == f.promoteOn
	return true, nil
}

func (f *fakeGame) Promote(kind chess.Kind) error {
	f.promoted = append(f.promoted, kind)
	f.pending = false
	return nil
}

func TestRandomMoverAlwaysLegal(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := game.NewStandard()
		mover := NewRandomMover(seed)

		for ply := 0; ply < 300 && !g.Status().IsTerminal(); ply++ {
			legal := g.AllLegalMoves()
			m, err := mover.Play(g)
			testutil.AssertNoError(t, err, "seed %d ply %d", seed, ply)

			found := false
			for _, pm := range legal {
				if pm.Piece.Square == m.From && slices.Contains(pm.Destinations, m.To) {
					found = true
				}
			}
			testutil.AssertTrue(t, found, "seed %d ply %d: %s not among legal moves", seed, ply, m)
			_, pending := g.PendingPromotion()
			testutil.AssertFalse(t, pending, "promotion left pending")
		}
	}
}

func TestRandomMoverDeterministic(t *testing.T) {
	play := func() []string {
		g := game.NewStandard()
		mover := NewRandomMover(42)
		for i := 0; i < 40 && !g.Status().IsTerminal(); i++ {
			if _, err := mover.Play(g); err != nil {
				t.Fatalf("Play() error: %v", err)
			}
		}
		return g.History()
	}
	testutil.AssertEqual(t, play(), play())
}

func TestRandomMoverGameOver(t *testing.T) {
	g, err := game.New("R6k/6pp/8/8/8/8/8/K7 b - - 0 1")
	testutil.AssertNoError(t, err)

	_, ok := NewRandomMover(1).Choose(g)
	testutil.AssertFalse(t, ok, "move chosen in a mated position")

	_, err = NewRandomMover(1).Play(g)
	testutil.AssertTrue(t, errors.Is(err, chesserrors.ErrGameOver), "Play() error = %v", err)
}

func TestRandomMoverPromotion(t *testing.T) {
	e7 := testutil.Square(t, "e7")
	e8 := testutil.Square(t, "e8")

	tests := []struct {
		name string
		opts []Option
		want chess.Kind
	}{
		{"queen by default", nil, chess.Queen},
		{"configured knight", []Option{WithPromotion(chess.Knight)}, chess.Knight},
		{"king ignored", []Option{WithPromotion(chess.King)}, chess.Queen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeGame{
				moves: []chess.PieceMoves{{
					Piece:        chess.NewPiece(chess.White, chess.Pawn, e7),
					Destinations: []chess.Square{e8},
				}},
				promoteOn: e8,
			}
			m, err := NewRandomMover(7, tt.opts...).Play(f)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, m, chess.Move{From: e7, To: e8, Promotion: tt.want})
			testutil.AssertEqual(t, f.promoted, []chess.Kind{tt.want})
		})
	}
}

func TestRandomMoverResolvesPendingPromotion(t *testing.T) {
	g, err := game.New("8/4P3/8/8/8/8/k7/4K3 w - - 0 1")
	testutil.AssertNoError(t, err)
	ok, err := g.Move(testutil.Square(t, "e7"), testutil.Square(t, "e8"))
	testutil.AssertTrue(t, ok && err == nil, "promoting push")

	m, err := NewRandomMover(3, WithPromotion(chess.Rook)).Play(g)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, m.Promotion, chess.Rook)
	testutil.AssertEqual(t, g.FEN(), "4R3/8/8/8/8/8/k7/4K3 b - - 0 1")
}

func TestRandomMoverStrategies(t *testing.T) {
	a1, b1 := testutil.Square(t, "a1"), testutil.Square(t, "b1")
	moves := []chess.PieceMoves{
		{Piece: chess.NewPiece(chess.White, chess.Rook, a1), Destinations: []chess.Square{
			testutil.Square(t, "a2"), testutil.Square(t, "a3"), testutil.Square(t, "a4"),
		}},
		{Piece: chess.NewPiece(chess.White, chess.Knight, b1), Destinations: []chess.Square{
			testutil.Square(t, "c3"),
		}},
	}

	tests := []struct {
		strategy Strategy
		min, max float64 // expected share of the knight's single move
	}{
		{UniformMoves, 0.20, 0.30},
		{UniformPieces, 0.45, 0.55},
	}

	const draws = 4000
	for _, tt := range tests {
		mover := NewRandomMover(11, WithStrategy(tt.strategy))
		knight := 0
		for i := 0; i < draws; i++ {
			m, ok := mover.Choose(&fakeGame{moves: moves})
			testutil.AssertTrue(t, ok)
			if m.From == b1 {
				knight++
			}
		}
		share := float64(knight) / draws
		if share < tt.min || share > tt.max {
			t.Errorf("strategy %d: knight share = %.3f, want [%.2f, %.2f]", tt.strategy, share, tt.min, tt.max)
		}
	}
}
