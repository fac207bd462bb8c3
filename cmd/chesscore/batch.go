// batch.go - Parallel move counting over a file of FEN positions
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/hashing"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// batchRecord is the JSON form of one counted position.
type batchRecord struct {
	Line     int    `json:"line"`
	FEN      string `json:"fen"`
	Side     string `json:"side,omitempty"`
	Moves    int    `json:"moves"`
	Captures int    `json:"captures"`
	Legal    *int   `json:"legal,omitempty"`
	Error    string `json:"error,omitempty"`
}

// batchOptions controls countPositions.
type batchOptions struct {
	workers int
	filter  worker.MoveFilter
	// dedupe, when set, drops positions already seen earlier in the input.
	dedupe *hashing.DuplicateDetector
}

// runBatchFile counts moves for every position in path ("-" reads stdin)
// and writes one result per position in input order.
func runBatchFile(ctx context.Context, cfg *config.Config, path string, filter worker.MoveFilter, logger *log.Logger) error {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		r = f
	}

	opts := batchOptions{workers: cfg.Workers, filter: filter}
	if cfg.SkipDuplicates {
		opts.dedupe = hashing.NewDuplicateDetector(cfg.DuplicateCapacity)
	}

	results, err := countPositions(ctx, r, opts)
	if err != nil {
		return err
	}

	failed, err := writeBatch(cfg.OutputFile, results, cfg.Output.JSON)
	if err != nil {
		return err
	}
	if cfg.Verbosity >= 1 {
		if opts.dedupe != nil {
			logger.Printf("%d positions, %d failed, %d duplicates skipped", len(results), failed, opts.dedupe.DuplicateCount())
		} else {
			logger.Printf("%d positions, %d failed", len(results), failed)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d positions failed", failed, len(results))
	}
	return nil
}

// countPositions feeds every FEN line of r to a worker pool and returns the
// results sorted by line number. Blank lines and lines starting with '#'
// are skipped, as are repeated positions when opts.dedupe is set.
func countPositions(ctx context.Context, r io.Reader, opts batchOptions) ([]worker.ProcessResult, error) {
	pool := worker.New(worker.CountMoves(opts.filter), worker.WithWorkers(opts.workers))
	pool.Start()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		defer pool.Close()
		scanner := bufio.NewScanner(r)
		line := 0
		for scanner.Scan() {
			line++
			text := strings.TrimSpace(scanner.Text())
			if text == "" || strings.HasPrefix(text, "#") || isDuplicate(opts.dedupe, text) {
				continue
			}
			if err := pool.Submit(ctx, worker.WorkItem{FEN: text, Index: line}); err != nil {
				pool.Stop()
				return err
			}
		}
		if err := scanner.Err(); err != nil {
			pool.Stop()
			return err
		}
		return nil
	})

	var results []worker.ProcessResult
	g.Go(func() error {
		for res := range pool.Results() {
			results = append(results, res)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, nil
}

// isDuplicate reports whether fen repeats a position seen by d. Malformed
// positions are never duplicates so that their errors are reported.
func isDuplicate(d *hashing.DuplicateDetector, fen string) bool {
	if d == nil {
		return false
	}
	game := chess.NewGame()
	side, err := engine.LoadFEN(game, fen)
	if err != nil {
		return false
	}
	return d.CheckAndAdd(game, side)
}

// writeBatch writes results as text lines or one JSON array and returns
// the number of failed positions.
func writeBatch(w io.Writer, results []worker.ProcessResult, asJSON bool) (int, error) {
	failed := 0
	records := make([]batchRecord, 0, len(results))
	for _, res := range results {
		rec := batchRecord{Line: res.Index, FEN: res.FEN}
		if res.Error != nil {
			failed++
			rec.Error = res.Error.Error()
		} else {
			rec.Side = res.Side.String()
			rec.Moves = res.Moves
			rec.Captures = res.Captures
			if res.Legal >= 0 {
				legal := res.Legal
				rec.Legal = &legal
			}
		}
		records = append(records, rec)
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return failed, enc.Encode(records)
	}

	for _, rec := range records {
		if _, err := fmt.Fprintln(w, formatRecord(rec)); err != nil {
			return failed, err
		}
	}
	return failed, nil
}

func formatRecord(rec batchRecord) string {
	if rec.Error != "" {
		return fmt.Sprintf("line %d: error: %s", rec.Line, rec.Error)
	}
	s := fmt.Sprintf("line %d: %s to move, %d moves, %d captures", rec.Line, rec.Side, rec.Moves, rec.Captures)
	if rec.Legal != nil {
		s += fmt.Sprintf(", %d legal", *rec.Legal)
	}
	return s
}
