// Package config provides configuration for chesscore.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ColourMode selects when the board dump uses ANSI colours.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // colour when writing to a terminal
	ColourAlways                   // always colour
	ColourNever                    // never colour
)

var colourModeNames = []string{"auto", "always", "never"}

// String returns the configuration name of the mode.
func (m ColourMode) String() string {
	if m < 0 || int(m) >= len(colourModeNames) {
		return fmt.Sprintf("ColourMode(%d)", int(m))
	}
	return colourModeNames[m]
}

// ParseColourMode parses "auto", "always" or "never".
func ParseColourMode(s string) (ColourMode, error) {
	for i, name := range colourModeNames {
		if strings.EqualFold(s, name) {
			return ColourMode(i), nil
		}
	}
	return ColourAuto, fmt.Errorf("unknown colour mode %q: %w", s, errors.ErrInvalidConfig)
}

// UnmarshalYAML decodes a colour mode from its name.
func (m *ColourMode) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	mode, err := ParseColourMode(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*m = mode
	return nil
}

// MarshalYAML encodes a colour mode as its name.
func (m ColourMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// Config holds all program configuration.
type Config struct {
	// StartFEN is the position loaded before any move is applied.
	StartFEN string `yaml:"start_fen"`

	// Strict passes generated moves through the legality filter.
	Strict bool `yaml:"strict"`

	// Verbosity: 0=errors only, 1=summaries, 2=progress
	Verbosity int `yaml:"verbosity"`

	// Workers is the batch worker count; 0 means one per CPU.
	Workers int `yaml:"workers"`

	// SkipDuplicates drops repeated positions from batch input.
	SkipDuplicates bool `yaml:"skip_duplicates"`
	// DuplicateCapacity caps the remembered positions; 0 means unlimited.
	DuplicateCapacity int `yaml:"duplicate_capacity"`

	Color  ColourMode   `yaml:"color"`
	Output OutputConfig `yaml:"output"`
	Theme  ThemeConfig  `yaml:"theme"`

	// Output streams
	OutputFile io.Writer `yaml:"-"`
	LogFile    io.Writer `yaml:"-"`
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		StartFEN:   engine.InitialFEN,
		Verbosity:  1,
		Color:      ColourAuto,
		Output:     *NewOutputConfig(),
		Theme:      DefaultTheme(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// SetLog sets the log writer.
func (c *Config) SetLog(w io.Writer) {
	c.LogFile = w
}

// Validate checks the configuration for consistency. Every error wraps
// errors.ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity %d is negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers %d is negative: %w", c.Workers, errors.ErrInvalidConfig)
	}
	if c.DuplicateCapacity < 0 {
		return fmt.Errorf("duplicate_capacity %d is negative: %w", c.DuplicateCapacity, errors.ErrInvalidConfig)
	}
	if c.Color < ColourAuto || c.Color > ColourNever {
		return fmt.Errorf("color %s: %w", c.Color, errors.ErrInvalidConfig)
	}
	if _, err := engine.LoadFEN(chess.NewGame(), c.StartFEN); err != nil {
		return fmt.Errorf("start_fen: %v: %w", err, errors.ErrInvalidConfig)
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return c.Theme.Validate()
}
