package config

import (
	"fmt"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// PerftConfig holds settings for move-tree node counting.
type PerftConfig struct {
	// Depth is the search depth; 0 disables perft.
	Depth int

	// Divide reports the node count below each root move.
	Divide bool

	// Workers is the number of goroutines sharing the root moves.
	Workers int
}

// NewPerftConfig creates a PerftConfig with one worker per CPU.
func NewPerftConfig() *PerftConfig {
	return &PerftConfig{
		Workers: runtime.NumCPU(),
	}
}

// Validate checks that the perft configuration is valid.
func (p *PerftConfig) Validate() error {
	if p.Depth < 0 {
		return fmt.Errorf("perft depth (%d) is negative: %w", p.Depth, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("worker count (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	return nil
}
