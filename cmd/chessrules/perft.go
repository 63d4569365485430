package main

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// perftReport is the JSON form of a perft run.
type perftReport struct {
	FEN    string       `json:"fen"`
	Depth  int          `json:"depth"`
	Nodes  uint64       `json:"nodes"`
	Divide []perftEntry `json:"divide,omitempty"`
}

type perftEntry struct {
	Move  string `json:"move"`
	Nodes uint64 `json:"nodes"`
}

// runPerft counts the move tree of the configured position on the worker pool.
func runPerft(ctx context.Context, cfg *config.Config) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	board := g.Board()

	start := time.Now()
	entries, err := worker.Divide(ctx, &board, cfg.Perft.Depth, cfg.Perft.Workers)
	if err != nil {
		return err
	}
	total := worker.Total(entries)
	cfg.Logger().Printf("perft(%d) with %d workers: %d nodes in %v",
		cfg.Perft.Depth, cfg.Perft.Workers, total, time.Since(start).Round(time.Millisecond))

	if cfg.Output.JSONFormat {
		report := perftReport{FEN: engine.BoardToFEN(&board), Depth: cfg.Perft.Depth, Nodes: total}
		if cfg.Perft.Divide {
			for _, e := range entries {
				report.Divide = append(report.Divide, perftEntry{Move: e.Move.String(), Nodes: e.Nodes})
			}
		}
		enc := json.NewEncoder(cfg.OutputFile)
		if !cfg.Output.JSONLines {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(report)
	}

	if cfg.Perft.Divide {
		for _, e := range entries {
			fmt.Fprintf(cfg.OutputFile, "%s: %d\n", e.Move, e.Nodes)
		}
		fmt.Fprintln(cfg.OutputFile)
	}
	fmt.Fprintf(cfg.OutputFile, "Nodes searched: %d\n", total)
	return nil
}
