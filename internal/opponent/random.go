// Package opponent provides computer players that drive a game through the
// same calls an interactive input handler uses.
package opponent

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Game is the part of a game an opponent needs: read access to the legal
// moves and a way to submit a move and its promotion.
type Game interface {
	AllLegalMoves() []chess.PieceMoves
	PendingPromotion() (chess.Square, bool)
	Move(from, to chess.Square) (bool, error)
	Promote(kind chess.Kind) error
}

// Strategy selects how a RandomMover spreads its choice.
type Strategy int

const (
	// UniformMoves gives every legal (piece, destination) pair the same chance.
	UniformMoves Strategy = iota
	// UniformPieces picks a movable piece first, then one of its destinations.
	UniformPieces
)

// RandomMover plays uniformly random legal moves.
type RandomMover struct {
	rng       *rand.Rand
	promotion chess.Kind
	strategy  Strategy
}

// Option configures a RandomMover.
type Option func(*RandomMover)

// WithPromotion sets the kind the mover promotes its pawns to.
func WithPromotion(kind chess.Kind) Option {
	return func(r *RandomMover) {
		if kind.IsPromotion() {
			r.promotion = kind
		}
	}
}

// WithStrategy sets how moves are drawn.
func WithStrategy(s Strategy) Option {
	return func(r *RandomMover) {
		r.strategy = s
	}
}

// NewRandomMover creates a mover whose choices are fixed by seed.
func NewRandomMover(seed int64, opts ...Option) *RandomMover {
	r := &RandomMover{
		rng:       rand.New(rand.NewSource(seed)),
		promotion: chess.Queen,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Choose picks a legal move without playing it. It returns false when the
// side to move has no legal move.
func (r *RandomMover) Choose(g Game) (chess.Move, bool) {
	all := g.AllLegalMoves()
	if len(all) == 0 {
		return chess.Move{}, false
	}

	if r.strategy == UniformPieces {
		pm := all[r.rng.Intn(len(all))]
		to := pm.Destinations[r.rng.Intn(len(pm.Destinations))]
		return chess.Move{From: pm.Piece.Square, To: to}, true
	}

	total := 0
	for _, pm := range all {
		total += len(pm.Destinations)
	}
	pick := r.rng.Intn(total)
	for _, pm := range all {
		if pick < len(pm.Destinations) {
			return chess.Move{From: pm.Piece.Square, To: pm.Destinations[pick]}, true
		}
		pick -= len(pm.Destinations)
	}
	return chess.Move{}, false
}

// Play makes one turn: it chooses and submits a move and resolves the
// promotion the move leaves pending. A promotion already pending when Play
// is called is resolved instead of moving. ErrGameOver is returned when no
// legal move exists.
func (r *RandomMover) Play(g Game) (chess.Move, error) {
	if sq, pending := g.PendingPromotion(); pending {
		return chess.Move{To: sq, Promotion: r.promotion}, g.Promote(r.promotion)
	}

	m, ok := r.Choose(g)
	if !ok {
		return chess.Move{}, errors.ErrGameOver
	}
	played, err := g.Move(m.From, m.To)
	if err != nil {
		return m, err
	}
	if !played {
		return m, errors.Wrapf(errors.ErrIllegalMove, "chosen move %s", m)
	}

	if _, pending := g.PendingPromotion(); pending {
		m.Promotion = r.promotion
		return m, g.Promote(r.promotion)
	}
	return m, nil
}
