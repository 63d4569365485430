package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Half-move clock thresholds for the move-count draw rules.
const (
	FiftyMoveHalfmoves       = 100
	SeventyFiveMoveHalfmoves = 150
	ThreefoldRepetitionCount = 3
	FivefoldRepetitionCount  = 5
)

// DrawRuleResult contains the results of draw rule detection. None of these
// end the game: classification stays limited to checkmate and stalemate,
// and callers decide whether to act on a claimable draw.
type DrawRuleResult struct {
	// FiftyMoveRule is true once 50 moves (100 half-moves) have been made
	// without a pawn move or capture.
	FiftyMoveRule bool

	// SeventyFiveMoveRule is true once 75 moves (150 half-moves) have been
	// made without a pawn move or capture.
	SeventyFiveMoveRule bool

	// ThreefoldRepetition is true if the current position occurred 3 or more times.
	ThreefoldRepetition bool

	// FivefoldRepetition is true if the current position occurred 5 or more times.
	FivefoldRepetition bool

	// InsufficientMaterial is true if neither side has mating material.
	InsufficientMaterial bool
}

// Any reports whether any draw condition holds.
func (r DrawRuleResult) Any() bool {
	return r.FiftyMoveRule || r.SeventyFiveMoveRule || r.ThreefoldRepetition ||
		r.FivefoldRepetition || r.InsufficientMaterial
}

// AnalyzeDrawRules analyzes a position for the draw conditions that depend
// on the board alone. Repetitions need the game history and are reported by
// AnalyzeRepetitions.
func AnalyzeDrawRules(board *chess.Board) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveRule:        board.HalfmoveClock >= FiftyMoveHalfmoves,
		SeventyFiveMoveRule:  board.HalfmoveClock >= SeventyFiveMoveHalfmoves,
		InsufficientMaterial: HasInsufficientMaterial(board),
	}
}

// AnalyzeRepetitions adds the repetition conditions for a position that has
// occurred occurrences times.
func AnalyzeRepetitions(result DrawRuleResult, occurrences int) DrawRuleResult {
	result.ThreefoldRepetition = occurrences >= ThreefoldRepetitionCount
	result.FivefoldRepetition = occurrences >= FivefoldRepetitionCount
	return result
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.Kind
	var whiteBishopOnLight, blackBishopOnLight bool

	for _, piece := range board.Squares {
		// Kings don't count for material
		if piece.IsEmpty() || piece.Kind == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Kind == chess.Pawn || piece.Kind == chess.Rook || piece.Kind == chess.Queen {
			return false
		}

		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				whiteBishopOnLight = piece.Square.IsLight()
			}
		} else {
			blackPieces = append(blackPieces, piece.Kind)
			if piece.Kind == chess.Bishop {
				blackBishopOnLight = piece.Square.IsLight()
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return true
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return true
	}

	// K+B vs K+B (same color bishops)
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}
