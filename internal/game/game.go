// Package game wraps one board with its history for the collaborators that
// drive a chess game: renderers, input handlers and opponents.
package game

import (
	"io"
	"log"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// Result strings in the usual notation.
const (
	ResultWhiteWins  = "1-0"
	ResultBlackWins  = "0-1"
	ResultDraw       = "1/2-1/2"
	ResultInProgress = "*"
)

// Game owns a single board for the whole game. It is not safe for
// concurrent use.
type Game struct {
	board       *chess.Board
	history     []string
	moves       []MoveRecord
	pending     *MoveRecord
	repetitions *hashing.RepetitionTracker
	logger      *log.Logger
}

// Option configures a Game.
type Option func(*Game)

// WithLogger reports finished games and rejected sequencing to logger.
func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// RepetitionStats counts the positions of a game.
type RepetitionStats struct {
	Positions    int // every position reached, repeats included
	Distinct     int
	MostRepeated int // occurrences of the most repeated position
}

// New starts a game from a FEN string.
func New(fen string, opts ...Option) (*Game, error) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, err
	}

	g := &Game{
		board:       board,
		history:     []string{engine.BoardToFEN(board)},
		repetitions: hashing.NewRepetitionTracker(),
		logger:      log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(g)
	}
	if board.HasPendingPromotion() {
		g.pending = pendingRecord(board)
	}
	g.repetitions.Record(board)
	return g, nil
}

// pendingRecord reconstructs the open turn of a position decoded with a
// pawn already on its last rank. The origin is taken as the square behind
// it; a capture onto that square cannot be told apart.
func pendingRecord(board *chess.Board) *MoveRecord {
	sq := board.PendingPromotion
	pawn := board.Get(sq)
	from, _ := sq.Offset(0, -chess.ForwardDirection(pawn.Colour))
	return &MoveRecord{
		Ply:        1,
		MoveNumber: board.MoveNumber,
		Colour:     pawn.Colour,
		Piece:      chess.Pawn,
		From:       from,
		To:         sq,
	}
}

// NewStandard starts a game from the standard initial position.
func NewStandard(opts ...Option) *Game {
	g, _ := New(engine.InitialFEN, opts...)
	return g
}

// Board returns a snapshot of the current position. Changing it does not
// affect the game.
func (g *Game) Board() chess.Board {
	return *g.board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.board.ToMove
}

// Status returns the game-over classification.
func (g *Game) Status() chess.Status {
	return g.board.Status
}

// IsCheckmate reports whether the game ended in checkmate.
func (g *Game) IsCheckmate() bool {
	return g.board.Status == chess.Checkmate
}

// IsStalemate reports whether the game ended in stalemate.
func (g *Game) IsStalemate() bool {
	return g.board.Status == chess.Stalemate
}

// InCheck reports whether the side to move is in check.
func (g *Game) InCheck() bool {
	return engine.IsInCheck(g.board, g.board.ToMove)
}

// PendingPromotion returns the square of a pawn awaiting promotion.
func (g *Game) PendingPromotion() (chess.Square, bool) {
	return g.board.PendingPromotion, g.board.HasPendingPromotion()
}

// LegalMoves returns the legal destinations of the piece on sq.
func (g *Game) LegalMoves(sq chess.Square) []chess.Square {
	return engine.LegalMoves(g.board, sq)
}

// AllLegalMoves returns every movable piece of the side to move with its
// legal destinations.
func (g *Game) AllLegalMoves() []chess.PieceMoves {
	return engine.AllLegalMoves(g.board)
}

// Move plays from→to for the side to move. An illegal move returns false
// and changes nothing. When the move promotes, the turn stays open until
// Promote is called.
func (g *Game) Move(from, to chess.Square) (bool, error) {
	if !from.Valid() || !to.Valid() {
		return false, nil
	}
	record := g.prepare(from, to)

	ok, err := engine.AttemptMove(g.board, from, to)
	if err != nil {
		g.logger.Printf("move %s%s rejected: %v", from, to, err)
		return false, &errors.MoveError{Err: err, PlyNum: record.Ply, MoveText: from.String() + to.String()}
	}
	if !ok {
		return false, nil
	}

	if g.board.HasPendingPromotion() {
		g.pending = &record
		return true, nil
	}
	g.complete(record)
	return true, nil
}

// Promote resolves a pending promotion with the given kind.
func (g *Game) Promote(kind chess.Kind) error {
	if err := engine.ResolvePromotion(g.board, kind); err != nil {
		g.logger.Printf("promotion to %s rejected: %v", kind, err)
		return err
	}
	record := *g.pending
	g.pending = nil
	record.Promotion = kind
	g.complete(record)
	return nil
}

// Play applies a move given as a chess.Move, resolving its promotion when
// one is named. Unlike Move, an illegal move is an ErrIllegalMove error.
func (g *Game) Play(m chess.Move) error {
	if m.Promotion != chess.NoKind {
		if !m.Promotion.IsPromotion() {
			return &errors.MoveError{Err: errors.ErrInvalidPromotion, PlyNum: len(g.moves) + 1, MoveText: m.String()}
		}
		if !m.From.Valid() || !m.To.Valid() {
			return &errors.MoveError{Err: errors.ErrIllegalMove, PlyNum: len(g.moves) + 1, MoveText: m.String()}
		}
		pawn := g.board.Get(m.From)
		if pawn.Kind != chess.Pawn || m.To.Rank() != chess.PromotionRank(pawn.Colour) {
			return &errors.MoveError{Err: errors.ErrIllegalMove, PlyNum: len(g.moves) + 1, MoveText: m.String()}
		}
	}

	ok, err := g.Move(m.From, m.To)
	if err != nil {
		return err
	}
	if !ok {
		return &errors.MoveError{Err: errors.ErrIllegalMove, PlyNum: len(g.moves) + 1, MoveText: m.String()}
	}
	if m.Promotion != chess.NoKind {
		return g.Promote(m.Promotion)
	}
	return nil
}

// prepare captures what a move from→to is about to do, before the board
// changes under it.
func (g *Game) prepare(from, to chess.Square) MoveRecord {
	mover := g.board.Get(from)
	record := MoveRecord{
		Ply:        len(g.moves) + 1,
		MoveNumber: g.board.MoveNumber,
		Colour:     mover.Colour,
		Piece:      mover.Kind,
		From:       from,
		To:         to,
		Captured:   g.board.Get(to).Kind,
	}
	switch mover.Kind {
	case chess.King:
		record.Castle = engine.IsCastling(g.board, from, to)
	case chess.Pawn:
		if from.File() != to.File() && g.board.IsEmpty(to) {
			record.EnPassant = true
			record.Captured = chess.Pawn
		}
	}
	return record
}

// complete finishes the bookkeeping of a turn the board has completed.
func (g *Game) complete(record MoveRecord) {
	record.Check = engine.IsInCheck(g.board, g.board.ToMove)
	record.FEN = engine.BoardToFEN(g.board)
	g.moves = append(g.moves, record)
	g.history = append(g.history, record.FEN)
	g.repetitions.Record(g.board)

	if g.board.Status.IsTerminal() {
		g.logger.Printf("game over after %d plies: %s %s", len(g.moves), g.board.Status, g.Result())
	}
}

// FEN returns the notation of the current position.
func (g *Game) FEN() string {
	return engine.BoardToFEN(g.board)
}

// History returns the notation after every completed turn, starting with
// the initial position.
func (g *Game) History() []string {
	return append([]string(nil), g.history...)
}

// Moves returns the records of the completed turns.
func (g *Game) Moves() []MoveRecord {
	return append([]MoveRecord(nil), g.moves...)
}

// Result returns the game result in the usual notation.
func (g *Game) Result() string {
	switch g.board.Status {
	case chess.Checkmate:
		if g.board.ToMove == chess.White {
			return ResultBlackWins
		}
		return ResultWhiteWins
	case chess.Stalemate:
		return ResultDraw
	}
	return ResultInProgress
}

// Repetitions summarises the positions reached so far, the initial one
// included.
func (g *Game) Repetitions() RepetitionStats {
	return RepetitionStats{
		Positions:    g.repetitions.PositionCount(),
		Distinct:     g.repetitions.UniqueCount(),
		MostRepeated: g.repetitions.MaxOccurrences(),
	}
}

// Draws reports the draw conditions that currently hold. They are
// informational and never end the game.
func (g *Game) Draws() engine.DrawRuleResult {
	result := engine.AnalyzeDrawRules(g.board)
	return engine.AnalyzeRepetitions(result, g.repetitions.Count(g.board))
}
