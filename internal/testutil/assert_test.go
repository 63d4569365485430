package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Since we can't mock *testing.T, we test success cases directly
// and test the formatMessage helper which is internally testable.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "hello", "hello")
	AssertEqual(t, []int{1, 2, 3}, []int{1, 2, 3})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 42, 42, "value should be %d", 42)
}

func TestAssertEqualOpts_IgnoresFields(t *testing.T) {
	a := chess.Piece{Colour: chess.White, Kind: chess.Rook, Moved: true}
	b := chess.Piece{Colour: chess.White, Kind: chess.Rook}
	AssertEqualOpts(t, a, b, []cmp.Option{cmpopts.IgnoreFields(chess.Piece{}, "Moved")})
}

func TestAssertErrors_Success(t *testing.T) {
	AssertNoError(t, nil)
	AssertError(t, errors.New("test error"), "expected error from %s", "operation")
}

func TestAssertBool_Success(t *testing.T) {
	AssertTrue(t, len("hello") == 5)
	AssertFalse(t, len("hello") == 0)
	AssertContains(t, "hello world", "world")
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)
	var s []chess.Square
	AssertNil(t, s)
}

func TestSquareHelpers(t *testing.T) {
	squares := []chess.Square{Square(t, "h3"), Square(t, "f3"), Square(t, "e2")}
	AssertEqual(t, SquareNames(squares), []string{"e2", "f3", "h3"})
	AssertSquares(t, squares, []string{"f3", "h3", "e2"})

	moves := []chess.Move{
		{From: Square(t, "e7"), To: Square(t, "e8"), Promotion: chess.Queen},
		{From: Square(t, "a2"), To: Square(t, "a3")},
	}
	AssertEqual(t, MoveNames(moves), []string{"a2a3", "e7e8q"})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"empty args", []interface{}{}, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"hello %s", "world"}, "hello world"},
		{"format multiple", []interface{}{"%s %d %s", "test", 42, "end"}, "test 42 end"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatMessage(tt.args...)
			if got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
