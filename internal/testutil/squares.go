package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Square parses an algebraic square name, failing the test if it is invalid.
func Square(t *testing.T, name string) chess.Square {
	t.Helper()
	sq, ok := chess.ParseSquare(name)
	if !ok {
		t.Fatalf("invalid square name %q", name)
	}
	return sq
}

// SquareNames returns the sorted algebraic names of the squares.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// MoveNames returns the sorted long algebraic text of the moves.
func MoveNames(moves []chess.Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}

// AssertSquares compares a destination set against square names, ignoring order.
func AssertSquares(t *testing.T, got []chess.Square, want []string, msgAndArgs ...interface{}) {
	t.Helper()
	sorted := append([]string{}, want...)
	sort.Strings(sorted)
	AssertEqual(t, SquareNames(got), sorted, msgAndArgs...)
}
