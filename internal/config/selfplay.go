package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// SelfPlayConfig holds settings for games between two random movers.
type SelfPlayConfig struct {
	// MaxPlies caps each game; 0 disables self-play.
	MaxPlies int

	// Games is the number of games to play, seeded Seed, Seed+1, ...
	Games int

	// Seed fixes the random choices.
	Seed int64

	// Promotion is the kind both movers promote to.
	Promotion chess.Kind

	// PerPiece draws a piece first, then one of its moves.
	PerPiece bool
}

// NewSelfPlayConfig creates a SelfPlayConfig with default values.
func NewSelfPlayConfig() *SelfPlayConfig {
	return &SelfPlayConfig{
		Games:     1,
		Seed:      1,
		Promotion: chess.Queen,
	}
}

// Validate checks that the self-play configuration is valid.
func (s *SelfPlayConfig) Validate() error {
	if s.MaxPlies < 0 {
		return fmt.Errorf("self-play ply limit (%d) is negative: %w", s.MaxPlies, errors.ErrInvalidConfig)
	}
	if s.Games < 1 {
		return fmt.Errorf("self-play game count (%d) must be at least 1: %w", s.Games, errors.ErrInvalidConfig)
	}
	if !s.Promotion.IsPromotion() {
		return fmt.Errorf("promotion piece %s: %w", s.Promotion, errors.ErrInvalidConfig)
	}
	return nil
}
