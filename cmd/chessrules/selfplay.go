package main

import (
	"errors"

	"github.com/lgbarn/chessrules-go/internal/config"
	chesserrors "github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/opponent"
	"github.com/lgbarn/chessrules-go/internal/output"
)

// runSelfPlay plays games between two random movers and writes each one.
func runSelfPlay(cfg *config.Config) error {
	logger := cfg.Logger()
	writer := output.NewGameWriter(cfg.OutputFile, cfg)

	strategy := opponent.UniformMoves
	if cfg.SelfPlay.PerPiece {
		strategy = opponent.UniformPieces
	}

	decided := 0
	for i := 0; i < cfg.SelfPlay.Games; i++ {
		g, err := newGame(cfg)
		if err != nil {
			return err
		}

		seed := cfg.SelfPlay.Seed + int64(i)
		mover := opponent.NewRandomMover(seed,
			opponent.WithPromotion(cfg.SelfPlay.Promotion),
			opponent.WithStrategy(strategy))

		for ply := 0; ply < cfg.SelfPlay.MaxPlies; ply++ {
			if _, err := mover.Play(g); err != nil {
				if errors.Is(err, chesserrors.ErrGameOver) {
					break
				}
				return chesserrors.Wrapf(err, "game %d", i+1)
			}
		}

		if g.Status().IsTerminal() {
			decided++
		}
		if cfg.Verbosity > 1 {
			reps := g.Repetitions()
			logger.Printf("game %d (seed %d): %d plies, %s %s, %d distinct positions, most repeated %d",
				i+1, seed, len(g.Moves()), g.Status(), g.Result(), reps.Distinct, reps.MostRepeated)
		}
		if err := writer.WriteGame(g); err != nil {
			return err
		}
	}

	logger.Printf("%d games played, %d decided", cfg.SelfPlay.Games, decided)
	return writer.Close()
}
