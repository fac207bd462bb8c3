package config

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/lgbarn/chesscore-go/internal/errors"
)

// ThemeConfig names the colours of the interactive board. Values are tcell
// colour names ("yellow", "navy") or "#rrggbb" hex strings.
type ThemeConfig struct {
	Light      string `yaml:"light"`
	Dark       string `yaml:"dark"`
	Pick       string `yaml:"pick"`
	Target     string `yaml:"target"`
	WhitePiece string `yaml:"white_piece"`
	BlackPiece string `yaml:"black_piece"`
	Label      string `yaml:"label"`
}

// Palette is a ThemeConfig resolved to terminal colours.
type Palette struct {
	Light      tcell.Color
	Dark       tcell.Color
	Pick       tcell.Color
	Target     tcell.Color
	WhitePiece tcell.Color
	BlackPiece tcell.Color
	Label      tcell.Color
}

// DefaultTheme is the theme used when the configuration names none.
func DefaultTheme() ThemeConfig {
	return ThemeConfig{
		Light:      "#ffffd7",
		Dark:       "#d7d7d7",
		Pick:       "yellow",
		Target:     "#ffd7af",
		WhitePiece: "navy",
		BlackPiece: "maroon",
		Label:      "gray",
	}
}

// Palette resolves the colour names. It fails on the first unknown name.
func (t ThemeConfig) Palette() (Palette, error) {
	var p Palette
	fields := []struct {
		key  string
		name string
		dst  *tcell.Color
	}{
		{"light", t.Light, &p.Light},
		{"dark", t.Dark, &p.Dark},
		{"pick", t.Pick, &p.Pick},
		{"target", t.Target, &p.Target},
		{"white_piece", t.WhitePiece, &p.WhitePiece},
		{"black_piece", t.BlackPiece, &p.BlackPiece},
		{"label", t.Label, &p.Label},
	}
	for _, f := range fields {
		c, err := parseColour(f.name)
		if err != nil {
			return Palette{}, fmt.Errorf("theme.%s: %w", f.key, err)
		}
		*f.dst = c
	}
	return p, nil
}

// Validate checks that every colour name resolves.
func (t ThemeConfig) Validate() error {
	_, err := t.Palette()
	return err
}

// parseColour accepts "default" for the terminal's own colour. Any other
// name tcell does not know is an error.
func parseColour(name string) (tcell.Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" || name == "default" {
		return tcell.ColorDefault, nil
	}
	c := tcell.GetColor(name)
	if c == tcell.ColorDefault {
		return c, fmt.Errorf("unknown colour %q: %w", name, errors.ErrInvalidConfig)
	}
	return c, nil
}
