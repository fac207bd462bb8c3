package config

import (
	"fmt"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSON writes move lists as JSON instead of one transcript per line
	JSON bool `yaml:"json"`

	// MaxLineLength is the wrap width of the move history
	MaxLineLength uint `yaml:"max_line_length"`

	// ShowBoard dumps the board after the moves are applied
	ShowBoard bool `yaml:"show_board"`
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		MaxLineLength: 80,
		ShowBoard:     true,
	}
}

// Validate checks the output settings.
func (o *OutputConfig) Validate() error {
	if o.MaxLineLength != 0 && o.MaxLineLength < 10 {
		return fmt.Errorf("max_line_length %d is below 10: %w", o.MaxLineLength, errors.ErrInvalidConfig)
	}
	return nil
}
