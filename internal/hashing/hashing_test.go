package hashing

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func mustBoard(t *testing.T, fen string) *chess.Board {
	t.Helper()
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		t.Fatalf("NewBoardFromFEN(%q) error: %v", fen, err)
	}
	return board
}

func TestZobristHashConsistency(t *testing.T) {
	// Create two identical boards and verify they produce the same hash
	hash1 := GenerateZobristHash(engine.NewInitialBoard())
	hash2 := GenerateZobristHash(engine.NewInitialBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different hashes: %x != %x", hash1, hash2)
	}
}

func TestZobristHashDistinguishes(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{
			name: "pawn moved",
			a:    engine.InitialFEN,
			b:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR w KQkq - 0 1",
		},
		{
			name: "side to move",
			a:    "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4K3 b - - 0 1",
		},
		{
			name: "castling rights",
			a:    "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			b:    "r3k2r/8/8/8/8/8/8/R3K2R w Kkq - 0 1",
		},
		{
			name: "capturable en passant target",
			a:    "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 3",
			b:    "rnbqkbnr/ppp1pppp/8/8/3pP3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 3",
		},
		{
			name: "unusable en passant target",
			a:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			b:    "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
			same: true,
		},
		{
			name: "clocks ignored",
			a:    "4k3/8/8/8/8/8/8/4KR2 w - - 0 1",
			b:    "4k3/8/8/8/8/8/8/4KR2 w - - 37 60",
			same: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hashA := GenerateZobristHash(mustBoard(t, tt.a))
			hashB := GenerateZobristHash(mustBoard(t, tt.b))
			if (hashA == hashB) != tt.same {
				t.Errorf("GenerateZobristHash equal = %v, want %v (%x, %x)", hashA == hashB, tt.same, hashA, hashB)
			}
		})
	}
}

func TestWeakHashConsistency(t *testing.T) {
	hash1 := WeakHash(engine.NewInitialBoard())
	hash2 := WeakHash(engine.NewInitialBoard())

	if hash1 != hash2 {
		t.Errorf("Identical boards produced different weak hashes: %x != %x", hash1, hash2)
	}
}

func TestRepetitionTracker(t *testing.T) {
	tracker := NewRepetitionTracker()
	board := engine.NewInitialBoard()

	testutil.AssertEqual(t, tracker.Record(board), 1, "first occurrence")

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for cycle := 2; cycle <= 3; cycle++ {
		for _, text := range shuffle {
			m, _ := chess.ParseMove(text)
			ok, err := engine.ApplyMove(board, m)
			if err != nil || !ok {
				t.Fatalf("ApplyMove(%s) = %v, %v", text, ok, err)
			}
			tracker.Record(board)
		}
		testutil.AssertEqual(t, tracker.Count(board), cycle, "occurrences after cycle")
	}

	testutil.AssertEqual(t, tracker.MaxOccurrences(), 3)
	testutil.AssertEqual(t, tracker.UniqueCount(), 4)
	testutil.AssertEqual(t, tracker.PositionCount(), 9)
	testutil.AssertEqual(t, tracker.Count(mustBoard(t, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")), 0, "unseen position")
}

func TestRepetitionTrackerNilBoard(t *testing.T) {
	tracker := NewRepetitionTracker()
	testutil.AssertEqual(t, tracker.Record(nil), 0)
	testutil.AssertEqual(t, tracker.Count(nil), 0)
	testutil.AssertEqual(t, tracker.PositionCount(), 0)
}
