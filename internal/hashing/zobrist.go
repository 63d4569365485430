package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Zobrist tables, filled once from a fixed seed so a position always hashes
// to the same key.
var (
	zobristPieces     [2][chess.NumKinds][chess.NumSquares]uint64
	zobristCastling   [chess.AllCastling + 1]uint64
	zobristEnPassant  [chess.BoardSize]uint64
	zobristSideToMove uint64
)

func init() {
	rng := rand.New(rand.NewSource(0x5eed0fc4e55))

	for colour := range zobristPieces {
		for kind := range zobristPieces[colour] {
			for sq := range zobristPieces[colour][kind] {
				zobristPieces[colour][kind][sq] = rng.Uint64()
			}
		}
	}
	for i := range zobristCastling {
		zobristCastling[i] = rng.Uint64()
	}
	for file := range zobristEnPassant {
		zobristEnPassant[file] = rng.Uint64()
	}
	zobristSideToMove = rng.Uint64()
}

// GenerateZobristHash computes the position key of a board: piece
// placement, side to move, castling rights and a capturable en passant
// file. Clocks and moved flags do not contribute.
func GenerateZobristHash(board *chess.Board) uint64 {
	var h uint64

	for _, p := range board.Squares {
		if !p.IsEmpty() {
			h ^= zobristPieces[p.Colour][p.Kind][p.Square]
		}
	}

	h ^= zobristCastling[board.Castling]

	if enPassantCapturable(board) {
		h ^= zobristEnPassant[board.EnPassant.File()]
	}

	if board.ToMove == chess.Black {
		h ^= zobristSideToMove
	}
	return h
}

// enPassantCapturable reports whether a pawn of the side to move stands
// beside the pawn that just double-stepped. A target nobody can use does
// not distinguish positions.
func enPassantCapturable(board *chess.Board) bool {
	if board.EnPassant == chess.NoSquare {
		return false
	}
	victim, ok := board.EnPassant.Offset(0, -chess.ForwardDirection(board.ToMove))
	if !ok {
		return false
	}
	for _, df := range [...]int{-1, 1} {
		if sq, ok := victim.Offset(df, 0); ok && board.Get(sq).Is(board.ToMove, chess.Pawn) {
			return true
		}
	}
	return false
}

// WeakHash is a cheap secondary key built from piece placement only.
func WeakHash(board *chess.Board) uint32 {
	var h uint32
	for _, p := range board.Squares {
		if p.IsEmpty() {
			continue
		}
		code := uint32(p.Kind)
		if p.Colour == chess.Black {
			code += uint32(chess.NumKinds)
		}
		h += code * uint32(p.Square+1)
	}
	return h
}
