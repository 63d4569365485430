package config

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// JSONLines writes one compact JSON object per game as it finishes
	JSONLines bool

	// MaxLineLength is the maximum line length for move lists
	MaxLineLength uint

	// ListMoves prints the legal moves of the start position
	ListMoves bool

	// ShowBoard prints a diagram of the final position
	ShowBoard bool

	// KeepMoveNumbers controls whether move numbers are included
	KeepMoveNumbers bool

	// KeepChecks controls whether check symbols (+) are included
	KeepChecks bool
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength:   80,
		KeepMoveNumbers: true,
		KeepChecks:      true,
	}
}
