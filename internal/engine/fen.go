// Package engine provides chess move generation, validation, and board
// manipulation under full chess law.
package engine

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// fenFields is the number of space-separated fields in a FEN string.
const fenFields = 6

// malformed builds a NotationError wrapping ErrMalformedNotation.
func malformed(field, got, expected string) error {
	return &errors.NotationError{
		Err:      errors.ErrMalformedNotation,
		Field:    field,
		Got:      got,
		Expected: expected,
	}
}

// NewBoardFromFEN creates a board from a FEN string. On error no board is
// returned; callers never receive a partially decoded position.
func NewBoardFromFEN(fen string) (*chess.Board, error) {
	parts := strings.Fields(fen)
	if len(parts) != fenFields {
		return nil, malformed("fields", fen, fmt.Sprintf("%d space-separated fields", fenFields))
	}

	squares, err := DecodePlacement(parts[0])
	if err != nil {
		return nil, err
	}

	board := chess.NewBoard()
	board.Squares = squares

	if err := parseSideToMove(board, parts[1]); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(board, parts[2]); err != nil {
		return nil, err
	}
	if err := parseEnPassant(board, parts[3]); err != nil {
		return nil, err
	}
	if err := parseClocks(board, parts[4], parts[5]); err != nil {
		return nil, err
	}

	if err := restorePendingPromotion(board, parts[0]); err != nil {
		return nil, err
	}

	markMovedPieces(board)
	if !board.HasPendingPromotion() {
		board.Status = Classify(board)
	}
	return board, nil
}

// NewInitialBoard creates a board with the standard starting position.
func NewInitialBoard() *chess.Board {
	board, _ := NewBoardFromFEN(InitialFEN)
	return board
}

// DecodePlacement parses the piece placement field of a FEN string into a
// full set of squares. A pawn may stand on its promotion rank, at most one
// for the whole board; pawns on their own back rank are rejected.
func DecodePlacement(placement string) ([chess.NumSquares]chess.Piece, error) {
	var squares [chess.NumSquares]chess.Piece
	for sq := range squares {
		squares[sq] = chess.Piece{Square: chess.Square(sq)}
	}

	rows := strings.Split(placement, "/")
	if len(rows) != chess.BoardSize {
		return squares, malformed("placement", placement, "8 ranks separated by '/'")
	}

	var kings [2]int
	promoted := 0
	for rank, row := range rows {
		file := 0
		for i := 0; i < len(row); i++ {
			c := row[i]
			if c >= '1' && c <= '8' {
				file += int(c - '0')
				if file > chess.BoardSize {
					return squares, malformed("placement", row, "ranks of exactly 8 files")
				}
				continue
			}

			colour, kind, ok := chess.PieceFromLetter(c)
			if !ok {
				return squares, malformed("placement", string(c), "piece letter or empty-square count")
			}
			if file >= chess.BoardSize {
				return squares, malformed("placement", row, "ranks of exactly 8 files")
			}
			if kind == chess.Pawn && rank == chess.HomeRank(colour) {
				return squares, malformed("placement", row, "no pawns on their own back rank")
			}
			if kind == chess.Pawn && rank == chess.PromotionRank(colour) {
				promoted++
				if promoted > 1 {
					return squares, malformed("placement", placement, "at most one pawn awaiting promotion")
				}
			}
			if kind == chess.King {
				kings[colour]++
				if kings[colour] > 1 {
					return squares, malformed("placement", placement, "at most one king per colour")
				}
			}

			sq := chess.NewSquare(file, rank)
			squares[sq] = chess.NewPiece(colour, kind, sq)
			file++
		}
		if file != chess.BoardSize {
			return squares, malformed("placement", row, "ranks of exactly 8 files")
		}
	}
	return squares, nil
}

// restorePendingPromotion turns a pawn on its promotion rank back into the
// pending promotion of the side to move.
func restorePendingPromotion(board *chess.Board, placement string) error {
	for _, colour := range [...]chess.Colour{chess.White, chess.Black} {
		rank := chess.PromotionRank(colour)
		for file := 0; file < chess.BoardSize; file++ {
			sq := chess.NewSquare(file, rank)
			if !board.Get(sq).Is(colour, chess.Pawn) {
				continue
			}
			if colour != board.ToMove {
				return malformed("placement", placement, "pawn on the last rank only while its side promotes")
			}
			board.PendingPromotion = sq
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(board *chess.Board, field string) error {
	switch field {
	case "w":
		board.ToMove = chess.White
	case "b":
		board.ToMove = chess.Black
	default:
		return malformed("active colour", field, "w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field. Letters must
// appear in KQkq order and each right needs its king and rook at home.
func parseCastlingRights(board *chess.Board, field string) error {
	board.Castling = chess.NoCastling
	if field == "-" {
		return nil
	}

	order := "KQkq"
	last := -1
	for i := 0; i < len(field); i++ {
		idx := strings.IndexByte(order, field[i])
		if idx <= last {
			return malformed("castling", field, "subset of KQkq in that order, or -")
		}
		last = idx

		colour := chess.White
		if idx >= 2 {
			colour = chess.Black
		}
		kingside := idx%2 == 0
		if !castlingPiecesAtHome(board, colour, kingside) {
			return malformed("castling", field, "king and rook on their home squares")
		}
		board.Castling |= chess.CastlingRight(colour, kingside)
	}
	return nil
}

// castlingPiecesAtHome reports whether a castling right is backed by the
// king on its starting square and the rook on the matching corner.
func castlingPiecesAtHome(board *chess.Board, colour chess.Colour, kingside bool) bool {
	if board.FindKing(colour) != kingHome(colour) {
		return false
	}
	return board.Get(rookHome(colour, kingside)).Is(colour, chess.Rook)
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(board *chess.Board, field string) error {
	board.EnPassant = chess.NoSquare
	if field == "-" {
		return nil
	}

	sq, ok := chess.ParseSquare(field)
	if !ok {
		return malformed("en passant", field, "square name or -")
	}

	// The pawn that just double-stepped belongs to the side not to move and
	// stands one rank past the target from its own point of view.
	mover := board.ToMove.Opposite()
	if sq.Rank() != chess.PawnStartRank(mover)+chess.ForwardDirection(mover) {
		return malformed("en passant", field, "target on the third or sixth rank")
	}
	pawnSq, _ := sq.Offset(0, chess.ForwardDirection(mover))
	if !board.Get(pawnSq).Is(mover, chess.Pawn) {
		return malformed("en passant", field, "double-stepped pawn in front of the target")
	}

	board.EnPassant = sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(board *chess.Board, halfmove, fullmove string) error {
	half, err := strconv.ParseUint(halfmove, 10, 32)
	if err != nil {
		return malformed("halfmove clock", halfmove, "non-negative integer")
	}
	full, err := strconv.ParseUint(fullmove, 10, 32)
	if err != nil || full < 1 {
		return malformed("fullmove number", fullmove, "positive integer")
	}
	board.HalfmoveClock = uint(half)
	board.MoveNumber = uint(full)
	return nil
}

// markMovedPieces reconstructs the moved flags a decoded position implies:
// pawns off their start rank, kings without castling rights, and rooks not
// backing a right are treated as having moved.
func markMovedPieces(board *chess.Board) {
	for sq := chess.Square(0); sq < chess.NumSquares; sq++ {
		p := board.Get(sq)
		switch p.Kind {
		case chess.Pawn:
			p.Moved = sq.Rank() != chess.PawnStartRank(p.Colour)
		case chess.King:
			p.Moved = board.Castling&chess.ColourRights(p.Colour) == chess.NoCastling
		case chess.Rook:
			p.Moved = rookRight(p.Colour, sq)&board.Castling == chess.NoCastling
		default:
			continue
		}
		board.Put(sq, p)
	}
}

// BoardToFEN converts a board to a FEN string.
func BoardToFEN(board *chess.Board) string {
	var sb strings.Builder

	writePiecePositions(&sb, board)
	sb.WriteByte(' ')
	sb.WriteByte(board.ToMove.Letter())
	sb.WriteByte(' ')
	sb.WriteString(board.Castling.String())
	sb.WriteByte(' ')
	sb.WriteString(board.EnPassant.String())
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", board.HalfmoveClock, board.MoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for rank := 0; rank < chess.BoardSize; rank++ {
		emptyCount := 0
		for file := 0; file < chess.BoardSize; file++ {
			piece := board.Get(chess.NewSquare(file, rank))
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(piece.Letter())
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if rank < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}
