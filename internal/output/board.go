package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WriteBoard writes an ASCII diagram of the board from White's side, with
// '.' for empty squares and upper case for White.
func WriteBoard(w io.Writer, board *chess.Board) {
	for rank := 0; rank < 8; rank++ {
		var sb strings.Builder
		sb.WriteByte(byte('8' - rank))
		for file := 0; file < 8; file++ {
			sb.WriteByte(' ')
			piece := board.Get(chess.NewSquare(file, rank))
			if piece.IsEmpty() {
				sb.WriteByte('.')
			} else {
				sb.WriteByte(piece.Letter())
			}
		}
		fmt.Fprintln(w, sb.String())
	}
	fmt.Fprintln(w, "  a b c d e f g h")
}

// WriteLegalMoves writes one line per movable piece, in square order, with
// the destinations it can reach in name order.
func WriteLegalMoves(w io.Writer, all []chess.PieceMoves) {
	sorted := append([]chess.PieceMoves(nil), all...)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Piece.Square < sorted[j].Piece.Square
	})

	for _, pm := range sorted {
		targets := make([]string, len(pm.Destinations))
		for i, sq := range pm.Destinations {
			targets[i] = sq.String()
		}
		sort.Strings(targets)
		fmt.Fprintf(w, "%c%s: %s\n", pm.Piece.Kind.Letter(), pm.Piece.Square, strings.Join(targets, " "))
	}
}
