package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// TestHasInsufficientMaterial tests various material configurations
func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool // true = insufficient material
	}{
		{"K vs K", "4k3/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K", "4k3/8/8/8/8/8/8/4KB2 w - - 0 1", true},
		{"K+N vs K", "4k3/8/8/8/8/8/8/4KN2 w - - 0 1", true},
		{"K vs K+b", "4k1b1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K vs K+n", "4k1n1/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"K+B vs K+B same color", "5b2/8/8/8/8/8/8/2B1K3 w - - 0 1", true},
		{"K+R vs K", "4k3/8/8/8/8/8/8/4KR2 w - - 0 1", false},
		{"K+Q vs K", "4k3/8/8/8/8/8/8/4KQ2 w - - 0 1", false},
		{"K+P vs K", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"K+B vs K+B opposite color", "5b2/8/8/8/8/8/8/3BK3 w - - 0 1", false},
		{"K+B+B vs K", "4k3/8/8/8/8/8/8/2B1KB2 w - - 0 1", false},
		{"K+N+N vs K", "4k3/8/8/8/8/8/8/1N2K1N1 w - - 0 1", false},
		{"standard starting position", InitialFEN, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			board := mustBoard(t, tt.fen)
			if got := HasInsufficientMaterial(board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAnalyzeDrawRules(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want DrawRuleResult
	}{
		{
			name: "fresh position",
			fen:  InitialFEN,
			want: DrawRuleResult{},
		},
		{
			name: "fifty moves",
			fen:  "4k3/8/8/8/8/8/8/4KR2 w - - 100 80",
			want: DrawRuleResult{FiftyMoveRule: true},
		},
		{
			name: "seventy-five moves",
			fen:  "4k3/8/8/8/8/8/8/4KR2 b - - 150 120",
			want: DrawRuleResult{FiftyMoveRule: true, SeventyFiveMoveRule: true},
		},
		{
			name: "bare kings",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - - 0 1",
			want: DrawRuleResult{InsufficientMaterial: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := mustBoard(t, tt.fen)
			got := AnalyzeDrawRules(board)
			testutil.AssertEqual(t, got, tt.want)
			testutil.AssertEqual(t, got.Any(), tt.want != DrawRuleResult{})
			// Draw conditions never end the game.
			testutil.AssertEqual(t, board.Status, chess.Ongoing)
		})
	}
}

func TestAnalyzeRepetitions(t *testing.T) {
	tests := []struct {
		occurrences int
		threefold   bool
		fivefold    bool
	}{
		{1, false, false},
		{2, false, false},
		{3, true, false},
		{4, true, false},
		{5, true, true},
	}
	for _, tt := range tests {
		got := AnalyzeRepetitions(DrawRuleResult{}, tt.occurrences)
		if got.ThreefoldRepetition != tt.threefold || got.FivefoldRepetition != tt.fivefold {
			t.Errorf("AnalyzeRepetitions(%d) = %+v", tt.occurrences, got)
		}
	}
}
