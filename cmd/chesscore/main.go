// chesscore generates pseudo-legal chess moves, applies them and draws the board.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/lgbarn/chesscore-go/internal/config"
)

const programVersion = "0.1.0"

// Exit codes.
const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(exitOK)
	}

	if *version {
		fmt.Printf("chesscore version %s\n", programVersion)
		os.Exit(exitOK)
	}

	if flag.NArg() > 0 {
		fmt.Fprintf(os.Stderr, "chesscore: unexpected arguments: %v\n", flag.Args())
		usage()
		os.Exit(exitUsage)
	}

	cfg, err := loadConfig(*configFile, explicitFlags())
	if err != nil {
		fmt.Fprintf(os.Stderr, "chesscore: %v\n", err)
		os.Exit(exitUsage)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	os.Exit(run(context.Background(), cfg, newLogger(cfg)))
}

// loadConfig builds the configuration from an optional YAML file and the
// flags in set, then validates it.
func loadConfig(path string, set map[string]bool) (*config.Config, error) {
	cfg := config.NewConfig()
	if path != "" {
		var err error
		if cfg, err = config.LoadFile(path); err != nil {
			return nil, err
		}
	}
	if err := applyFlags(cfg, set); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile != "" {
		file, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
			os.Exit(exitError)
		}
		cfg.LogFile = file
	}

	if *appendLog != "" {
		file, err := os.OpenFile(*appendLog, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *appendLog, err)
			os.Exit(exitError)
		}
		cfg.LogFile = file
	}
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if *outputFile == "" {
		return
	}
	file, err := os.Create(*outputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", *outputFile, err)
		os.Exit(exitError)
	}
	cfg.OutputFile = file
}

// newLogger returns the diagnostics logger writing to cfg.LogFile.
func newLogger(cfg *config.Config) *log.Logger {
	return log.New(cfg.LogFile, "chesscore: ", 0)
}

// progressLogger returns logger when cfg asks for progress messages and a
// discarding logger otherwise.
func progressLogger(cfg *config.Config, logger *log.Logger) *log.Logger {
	if cfg.Verbosity < 2 {
		return log.New(io.Discard, "", 0)
	}
	return logger
}

// isTerminal reports whether f is a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// useColour decides whether the board dump to w is coloured.
func useColour(mode config.ColourMode, w io.Writer) bool {
	switch mode {
	case config.ColourAlways:
		return true
	case config.ColourNever:
		return false
	}
	f, ok := w.(*os.File)
	return ok && isTerminal(f)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chesscore [options]\n\n")
	fmt.Fprintf(os.Stderr, "Generates pseudo-legal chess moves for a position.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nMove text (-moves): from and to squares, e.g. e2e4 or e2-e4.\n")
	fmt.Fprintf(os.Stderr, "\nMove lists are printed as piece, from, 'x' on capture, to and\n")
	fmt.Fprintf(os.Stderr, "promotion piece, e.g. Ng1f3, Pe4xd5, Pe7e8Q.\n")
	fmt.Fprintf(os.Stderr, "\nExit status: 0 ok, 1 runtime error, 2 usage error.\n")
}
