// Package config provides configuration for the chessrules command.
package config

import (
	"io"
	"log"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=summaries, 2=running commentary

	// StartFEN is the position every command starts from.
	StartFEN string

	// Moves are coordinate moves such as "e2e4" or "e7e8q" played from
	// StartFEN before anything else runs.
	Moves []string

	Perft      *PerftConfig
	SelfPlay   *SelfPlayConfig
	Output     *OutputConfig
	Annotation *AnnotationConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   engine.InitialFEN,
		Perft:      NewPerftConfig(),
		SelfPlay:   NewSelfPlayConfig(),
		Output:     NewOutputConfig(),
		Annotation: NewAnnotationConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output stream.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log stream.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Logger returns a logger writing to LogFile, silenced at verbosity 0.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity <= 0 || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "chessrules: ", 0)
}

// Validate checks every sub-configuration.
func (c *Config) Validate() error {
	if err := c.Perft.Validate(); err != nil {
		return err
	}
	return c.SelfPlay.Validate()
}
