package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// generator produces the pseudo-legal destinations of the piece on from.
type generator func(board *chess.Board, from chess.Square) []chess.Square

// generators dispatches move generation on the piece kind.
var generators = [chess.NumKinds]generator{
	chess.Pawn:   pawnDestinations,
	chess.Knight: knightDestinations,
	chess.Bishop: bishopDestinations,
	chess.Rook:   rookDestinations,
	chess.Queen:  queenDestinations,
	chess.King:   kingDestinations,
}

var (
	straightDirs = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	diagonalDirs = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	allDirs      = append(append([][2]int{}, straightDirs...), diagonalDirs...)
	knightMoves  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
)

// PseudoLegalMoves returns the destinations the piece on from can reach by
// its movement pattern, ignoring whether the move exposes its own king.
func PseudoLegalMoves(board *chess.Board, from chess.Square) []chess.Square {
	piece := board.Get(from)
	if piece.IsEmpty() {
		return nil
	}
	return generators[piece.Kind](board, from)
}

func knightDestinations(board *chess.Board, from chess.Square) []chess.Square {
	return stepDestinations(board, from, knightMoves)
}

func bishopDestinations(board *chess.Board, from chess.Square) []chess.Square {
	return slidingDestinations(board, from, diagonalDirs)
}

func rookDestinations(board *chess.Board, from chess.Square) []chess.Square {
	return slidingDestinations(board, from, straightDirs)
}

func queenDestinations(board *chess.Board, from chess.Square) []chess.Square {
	return slidingDestinations(board, from, allDirs)
}

func kingDestinations(board *chess.Board, from chess.Square) []chess.Square {
	return append(stepDestinations(board, from, allDirs), castlingDestinations(board, from)...)
}

// slidingDestinations walks each ray until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func slidingDestinations(board *chess.Board, from chess.Square, dirs [][2]int) []chess.Square {
	colour := board.Get(from).Colour
	var dests []chess.Square
	for _, dir := range dirs {
		to, ok := from.Offset(dir[0], dir[1])
		for ok {
			target := board.Get(to)
			if !target.IsEmpty() {
				if target.Colour != colour {
					dests = append(dests, to)
				}
				break // Blocked
			}
			dests = append(dests, to)
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return dests
}

// stepDestinations returns the single-step targets that are empty or hold
// an enemy piece.
func stepDestinations(board *chess.Board, from chess.Square, offsets [][2]int) []chess.Square {
	colour := board.Get(from).Colour
	var dests []chess.Square
	for _, offset := range offsets {
		to, ok := from.Offset(offset[0], offset[1])
		if !ok {
			continue
		}
		if target := board.Get(to); target.IsEmpty() || target.Colour != colour {
			dests = append(dests, to)
		}
	}
	return dests
}
