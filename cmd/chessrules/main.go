// chessrules plays, checks and counts chess positions from the command line.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/output"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run dispatches to perft, self-play or a single position report.
func run(ctx context.Context, cfg *config.Config) error {
	switch {
	case cfg.Perft.Depth > 0:
		return runPerft(ctx, cfg)
	case cfg.SelfPlay.MaxPlies > 0:
		return runSelfPlay(cfg)
	}
	return runPosition(cfg)
}

// runPosition reports the position reached after the configured moves.
func runPosition(cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}

	if cfg.Output.ListMoves {
		output.WriteLegalMoves(cfg.OutputFile, g.AllLegalMoves())
		if sq, ok := g.PendingPromotion(); ok {
			fmt.Fprintf(cfg.OutputFile, "promotion pending on %s\n", sq)
		}
	}

	writer := output.NewGameWriter(cfg.OutputFile, cfg)
	if err := writer.WriteGame(g); err != nil {
		return err
	}
	return writer.Close()
}

// newGame starts a game from the configured position and plays the
// configured moves.
func newGame(cfg *config.Config) (*game.Game, error) {
	g, err := game.New(cfg.StartFEN, game.WithLogger(cfg.Logger()))
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}

	for _, text := range cfg.Moves {
		m, ok := chess.ParseMove(text)
		if !ok {
			return nil, errors.Wrapf(errors.ErrIllegalMove, "cannot read move %q", text)
		}
		if err := g.Play(m); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}

	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}

	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, `chessrules-go - chess rules engine

Usage: chessrules [options]

Examples:
  chessrules -play "e2e4 e7e5" -moves       List legal moves after 1.e4 e5
  chessrules -perft 5 -divide               Count the move tree per root move
  chessrules -selfplay 200 -games 10 -J     Play ten random games as JSON
  chessrules -fen "<fen>" -board            Show a position

Options:
`)
	flag.PrintDefaults()
}
