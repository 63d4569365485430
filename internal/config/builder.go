package config

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithMoves sets the moves played from the starting position.
func (b *ConfigBuilder) WithMoves(moves ...string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.Perft.Depth = depth
	b.cfg.Perft.Divide = divide
	return b
}

// WithWorkers sets the perft worker count.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Perft.Workers = n
	return b
}

// WithSelfPlay sets the self-play ply limit, game count and seed.
func (b *ConfigBuilder) WithSelfPlay(maxPlies, games int, seed int64) *ConfigBuilder {
	b.cfg.SelfPlay.MaxPlies = maxPlies
	b.cfg.SelfPlay.Games = games
	b.cfg.SelfPlay.Seed = seed
	return b
}

// WithPromotion sets the kind the random movers promote to.
func (b *ConfigBuilder) WithPromotion(kind chess.Kind) *ConfigBuilder {
	b.cfg.SelfPlay.Promotion = kind
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length uint) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithJSONLines enables one JSON object per game, written as each finishes.
func (b *ConfigBuilder) WithJSONLines(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = b.cfg.Output.JSONFormat || enabled
	b.cfg.Output.JSONLines = enabled
	return b
}

// WithBoard enables the final position diagram.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithFENComments enables FEN comments.
func (b *ConfigBuilder) WithFENComments(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddFENComments = enabled
	return b
}

// WithHashComments enables position hash comments.
func (b *ConfigBuilder) WithHashComments(enabled bool) *ConfigBuilder {
	b.cfg.Annotation.AddHashComments = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
