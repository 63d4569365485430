// Package output provides game and position formatting as text and JSON.
package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// OutputGame outputs a game as a header, a move list and optionally a
// diagram of the final position.
func OutputGame(g *game.Game, cfg *config.Config) {
	w := cfg.OutputFile

	outputHeader(g, w)
	fmt.Fprintln(w)
	outputMoves(g, cfg, w)

	if cfg.Annotation.AddDrawReport {
		if draws := DrawNames(g.Draws()); len(draws) > 0 {
			fmt.Fprintf(w, "Draw conditions: %s\n", strings.Join(draws, ", "))
		}
	}
	if cfg.Output.ShowBoard {
		board := g.Board()
		fmt.Fprintln(w)
		WriteBoard(w, &board)
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// outputHeader writes the start position and outcome as tag pairs.
func outputHeader(g *game.Game, w io.Writer) {
	history := g.History()
	fmt.Fprintf(w, "[FEN \"%s\"]\n", history[0])
	fmt.Fprintf(w, "[PlyCount \"%d\"]\n", len(history)-1)
	fmt.Fprintf(w, "[Status \"%s\"]\n", g.Status())
	fmt.Fprintf(w, "[Result \"%s\"]\n", g.Result())
}

// outputMoves writes the move list followed by the result.
func outputMoves(g *game.Game, cfg *config.Config, w io.Writer) {
	ow := NewOutputWriter(w, int(cfg.Output.MaxLineLength))

	for i, record := range g.Moves() {
		if cfg.Output.KeepMoveNumbers {
			if record.Colour == chess.White {
				ow.Write(fmt.Sprintf("%d.", record.MoveNumber))
			} else if i == 0 {
				// Black to move at start
				ow.Write(fmt.Sprintf("%d...", record.MoveNumber))
			}
		}

		ow.Write(formatRecord(record, cfg))

		if cfg.Annotation.AddFENComments {
			ow.Write("{" + record.FEN + "}")
		}
		if cfg.Annotation.AddHashComments {
			if hash, ok := positionHash(record.FEN); ok {
				ow.Write("{" + hash + "}")
			}
		}
	}

	ow.Write(g.Result())
	ow.NewLine()
}

// formatRecord returns the move text with check markers kept or removed.
func formatRecord(record game.MoveRecord, cfg *config.Config) string {
	text := record.String()
	if !cfg.Output.KeepChecks {
		text = strings.TrimSuffix(text, "+")
	}
	return text
}

// DrawNames lists the draw conditions that hold, strongest first.
func DrawNames(r engine.DrawRuleResult) []string {
	var names []string
	if r.FivefoldRepetition {
		names = append(names, "fivefold repetition")
	} else if r.ThreefoldRepetition {
		names = append(names, "threefold repetition")
	}
	if r.SeventyFiveMoveRule {
		names = append(names, "seventy-five-move rule")
	} else if r.FiftyMoveRule {
		names = append(names, "fifty-move rule")
	}
	if r.InsufficientMaterial {
		names = append(names, "insufficient material")
	}
	return names
}
