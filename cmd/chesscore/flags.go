// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chesscore-go/internal/config"
)

var (
	// Position options
	configFile = flag.String("config", "", "YAML configuration file")
	startFEN   = flag.String("fen", "", "Start position in FEN (default: standard start)")
	moveList   = flag.String("moves", "", "Comma-separated moves to apply, e.g. e2e4,e7e5")
	strictMode = flag.Bool("legal", false, "Drop moves that leave the mover's king in check")

	// Move listing
	squares    = flag.String("square", "", "List the moves of the pieces on these squares (comma-separated)")
	allMoves   = flag.Bool("all", false, "List the moves of every piece of the side to move")
	jsonOutput = flag.Bool("json", false, "Output move lists in JSON format")

	// Board dump
	showBoard  = flag.Bool("dump", true, "Print the board")
	colourMode = flag.String("color", "", "Board colours: auto, always, never")
	lineLength = flag.Int("w", 80, "Maximum line length of the move history")

	// Batch counting
	batchFile = flag.String("batch", "", "Count moves for each FEN line of this file (- for stdin)")
	workers   = flag.Int("workers", 0, "Number of batch workers (0 = one per CPU)")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Skip repeated positions in batch input")
	duplicateCapacity  = flag.Int("duplicate-capacity", 0, "Maximum remembered positions (0 = unlimited)")

	// Interactive board
	interactive = flag.Bool("ui", false, "Start the interactive board")
	flipBoard   = flag.Bool("flip", false, "Draw the interactive board from Black's side")

	// Files and diagnostics
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	logFile    = flag.String("l", "", "Write diagnostics to log file")
	appendLog  = flag.String("L", "", "Append diagnostics to log file")
	verbosity  = flag.Int("v", 1, "Verbosity: 0 errors only, 1 summaries, 2 progress")

	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// explicitFlags returns the names of the flags set on the command line.
func explicitFlags() map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return set
}

// applyFlags copies command-line flags into cfg. Only flags named in set
// override values loaded from a configuration file.
func applyFlags(cfg *config.Config, set map[string]bool) error {
	applyPositionFlags(cfg, set)
	applyOutputFlags(cfg, set)
	if set["workers"] {
		cfg.Workers = *workers
	}
	applyDuplicateFlags(cfg, set)
	if set["v"] {
		cfg.Verbosity = *verbosity
	}
	return applyColourFlag(cfg, set)
}

// applyPositionFlags applies the start position and legality flags.
func applyPositionFlags(cfg *config.Config, set map[string]bool) {
	if set["fen"] {
		cfg.StartFEN = *startFEN
	}
	if set["legal"] {
		cfg.Strict = *strictMode
	}
}

// applyOutputFlags applies the output format flags.
func applyOutputFlags(cfg *config.Config, set map[string]bool) {
	if set["json"] {
		cfg.Output.JSON = *jsonOutput
	}
	if set["dump"] {
		cfg.Output.ShowBoard = *showBoard
	}
	if set["w"] && *lineLength >= 0 {
		cfg.Output.MaxLineLength = uint(*lineLength)
	}
}

// applyDuplicateFlags applies the batch duplicate detection flags.
func applyDuplicateFlags(cfg *config.Config, set map[string]bool) {
	if set["D"] {
		cfg.SkipDuplicates = *suppressDuplicates
	}
	if set["duplicate-capacity"] {
		cfg.DuplicateCapacity = *duplicateCapacity
	}
}

// applyColourFlag parses -color.
func applyColourFlag(cfg *config.Config, set map[string]bool) error {
	if !set["color"] {
		return nil
	}
	mode, err := config.ParseColourMode(*colourMode)
	if err != nil {
		return err
	}
	cfg.Color = mode
	return nil
}

// splitList splits a comma-separated flag value, dropping blank entries.
func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
