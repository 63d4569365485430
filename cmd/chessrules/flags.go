// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

var (
	// Position options
	startFEN  = flag.String("fen", engine.InitialFEN, "Starting position in FEN")
	playMoves = flag.String("play", "", "Coordinate moves to play first, e.g. \"e2e4 e7e5 g1f3\"")
	listMoves = flag.Bool("moves", false, "List the legal moves of the position")

	// Perft options
	perftDepth = flag.Int("perft", 0, "Count the move tree to depth N")
	divide     = flag.Bool("divide", false, "Report perft nodes per root move")
	workers    = flag.Int("workers", 0, "Perft worker goroutines (default: one per CPU)")

	// Self-play options
	selfPlay  = flag.Int("selfplay", 0, "Play random games of at most N plies")
	games     = flag.Int("games", 1, "Number of self-play games")
	seed      = flag.Int64("seed", 1, "Random seed for self-play")
	promote   = flag.String("promote", "q", "Promotion piece for self-play: q, r, b or n")
	perPiece  = flag.Bool("perpiece", false, "Self-play picks a piece first, then one of its moves")
	drawCheck = flag.Bool("draws", false, "Report draw conditions of the final position")

	// Output options
	outputFile  = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput  = flag.Bool("J", false, "Output in JSON format")
	jsonLines   = flag.Bool("jsonl", false, "Output one JSON object per game, as each finishes")
	showBoard   = flag.Bool("board", false, "Print a diagram of the final position")
	lineLength  = flag.Int("w", 80, "Maximum line length")
	fenComments = flag.Bool("fencomments", false, "Add the position after each move")
	hashComment = flag.Bool("hash", false, "Add the position hash after each move")
	noNumbers   = flag.Bool("nonumbers", false, "Don't output move numbers")
	noChecks    = flag.Bool("nochecks", false, "Don't output check markers")

	// Logging options
	logFile = flag.String("l", "", "Write diagnostics to this file (default: stderr)")
	quiet   = flag.Bool("q", false, "Quiet mode")
	verbose = flag.Bool("verbose", false, "Log every self-play game")

	// Help
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPositionFlags(cfg)
	applyPerftFlags(cfg)
	applySelfPlayFlags(cfg)
	applyOutputFlags(cfg)
	applyAnnotationFlags(cfg)

	switch {
	case *quiet:
		cfg.Verbosity = 0
	case *verbose:
		cfg.Verbosity = 2
	}
}

// applyPositionFlags configures the starting position.
func applyPositionFlags(cfg *config.Config) {
	cfg.StartFEN = *startFEN
	cfg.Moves = splitMoves(*playMoves)
	cfg.Output.ListMoves = *listMoves
}

// applyPerftFlags configures move-tree counting.
func applyPerftFlags(cfg *config.Config) {
	cfg.Perft.Depth = *perftDepth
	cfg.Perft.Divide = *divide
	if *workers != 0 {
		cfg.Perft.Workers = *workers
	}
}

// applySelfPlayFlags configures random games.
func applySelfPlayFlags(cfg *config.Config) {
	cfg.SelfPlay.MaxPlies = *selfPlay
	cfg.SelfPlay.Games = *games
	cfg.SelfPlay.Seed = *seed
	cfg.SelfPlay.Promotion = parsePromotion(*promote)
	cfg.SelfPlay.PerPiece = *perPiece
}

// applyOutputFlags configures output format settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput || *jsonLines
	cfg.Output.JSONLines = *jsonLines
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.KeepMoveNumbers = !*noNumbers
	cfg.Output.KeepChecks = !*noChecks
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyAnnotationFlags configures annotation settings.
func applyAnnotationFlags(cfg *config.Config) {
	cfg.Annotation.AddFENComments = *fenComments
	cfg.Annotation.AddHashComments = *hashComment
	cfg.Annotation.AddDrawReport = *drawCheck
}

// splitMoves splits a move list on spaces and commas.
func splitMoves(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
}

// parsePromotion maps a piece letter to a kind. Unknown letters map to
// NoKind so that validation rejects them.
func parsePromotion(s string) chess.Kind {
	if len(s) != 1 {
		return chess.NoKind
	}
	kind, ok := chess.KindFromLetter(s[0])
	if !ok {
		return chess.NoKind
	}
	return kind
}
