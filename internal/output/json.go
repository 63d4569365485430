package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/game"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// JSONGame represents a game in JSON format.
type JSONGame struct {
	InitialFEN string     `json:"initialFEN"`
	FinalFEN   string     `json:"finalFEN"`
	Status     string     `json:"status"`
	Result     string     `json:"result"`
	PlyCount   int        `json:"plyCount"`
	Moves      []JSONMove `json:"moves,omitempty"`
	Draws      []string   `json:"draws,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	Text       string `json:"text"`
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	Castle     bool   `json:"castle,omitempty"`
	EnPassant  bool   `json:"enPassant,omitempty"`
	Check      bool   `json:"check,omitempty"`
	FEN        string `json:"fen,omitempty"`
	Hash       string `json:"hash,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// OutputGameJSON writes a game as a single line of JSON.
func OutputGameJSON(w io.Writer, g *game.Game, cfg *config.Config) error {
	return json.NewEncoder(w).Encode(GameToJSON(g, cfg))
}

// GameToJSON converts a game to JSON format.
func GameToJSON(g *game.Game, cfg *config.Config) *JSONGame {
	history := g.History()
	records := g.Moves()

	jg := &JSONGame{
		InitialFEN: history[0],
		FinalFEN:   g.FEN(),
		Status:     strings.ToLower(g.Status().String()),
		Result:     g.Result(),
		PlyCount:   len(records),
		Moves:      make([]JSONMove, 0, len(records)),
	}
	for _, record := range records {
		jg.Moves = append(jg.Moves, convertRecord(record, cfg))
	}
	if cfg.Annotation.AddDrawReport {
		jg.Draws = DrawNames(g.Draws())
	}
	return jg
}

// convertRecord converts a single move record to JSON format.
func convertRecord(record game.MoveRecord, cfg *config.Config) JSONMove {
	jm := JSONMove{
		Color: colorName(record.Colour),
		Text:  formatRecord(record, cfg),
		UCI:   record.Move().String(),
		From:  record.From.String(),
		To:    record.To.String(),
		Piece: pieceTypeName(record.Piece),
	}

	if record.Colour == chess.White {
		jm.MoveNumber = int(record.MoveNumber)
	}
	if record.Captured != chess.NoKind {
		jm.Captured = pieceTypeName(record.Captured)
	}
	if record.Promotion != chess.NoKind {
		jm.Promotion = pieceTypeName(record.Promotion)
	}
	jm.Castle = record.Castle
	jm.EnPassant = record.EnPassant
	jm.Check = record.Check

	if cfg.Annotation.AddFENComments {
		jm.FEN = record.FEN
	}
	if cfg.Annotation.AddHashComments {
		jm.Hash, _ = positionHash(record.FEN)
	}
	return jm
}

// positionHash returns the hex Zobrist hash of a FEN position.
func positionHash(fen string) (string, bool) {
	board, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return "", false
	}
	return fmt.Sprintf("%016x", hashing.GenerateZobristHash(board)), true
}

func colorName(colour chess.Colour) string {
	if colour == chess.White {
		return "white"
	}
	return "black"
}

func pieceTypeName(kind chess.Kind) string {
	return strings.ToLower(kind.String())
}
