// run.go - Position setup, move application and reporting
package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/engine"
	"github.com/lgbarn/chesscore-go/internal/errors"
	"github.com/lgbarn/chesscore-go/internal/legality"
	"github.com/lgbarn/chesscore-go/internal/output"
	"github.com/lgbarn/chesscore-go/internal/session"
	"github.com/lgbarn/chesscore-go/internal/ui"
	"github.com/lgbarn/chesscore-go/internal/worker"
)

// run executes the command selected by the flags and returns the exit code.
func run(ctx context.Context, cfg *config.Config, logger *log.Logger) int {
	var filter worker.MoveFilter
	if cfg.Strict {
		filter = legality.New()
	}

	if *batchFile != "" {
		if err := runBatchFile(ctx, cfg, *batchFile, filter, logger); err != nil {
			logger.Printf("batch: %v", err)
			return exitError
		}
		return exitOK
	}

	game := chess.NewGame()
	first, err := engine.LoadFEN(game, cfg.StartFEN)
	if err != nil {
		logger.Printf("start position: %v", err)
		return exitError
	}

	side, err := applyMoves(game, first, splitList(*moveList), filter, progressLogger(cfg, logger))
	if err != nil {
		logger.Print(err)
		return exitError
	}

	if *interactive {
		if err := runUI(game, cfg, filter, logger); err != nil {
			logger.Print(err)
			return exitError
		}
		return exitOK
	}

	if err := report(cfg, game, first, side, filter); err != nil {
		logger.Print(err)
		return exitError
	}
	return exitOK
}

// applyMoves applies each move text in turn and records it in the game
// history. Moves are applied blind unless filter is set, in which case each
// move must be generated for the side to move and pass the filter.
func applyMoves(game *chess.Game, side chess.Side, texts []string, filter worker.MoveFilter, logger *log.Logger) (chess.Side, error) {
	for i, text := range texts {
		m, err := resolveMove(game, side, text, filter)
		if err != nil {
			return side, &errors.MoveError{Err: err, PlyNum: i + 1, MoveText: text}
		}
		engine.ApplyMove(game, m)
		game.RecordMove(m)
		logger.Printf("Move %s", m)
		side = side.Opposite()
	}
	return side, nil
}

// resolveMove turns move text into a move for side.
func resolveMove(game *chess.Game, side chess.Side, text string, filter worker.MoveFilter) (chess.Move, error) {
	m, err := engine.ParseMove(game, text)
	if err != nil || filter == nil {
		return m, err
	}

	if m.Piece.Side() != side {
		return m, fmt.Errorf("%s does not hold a %s piece: %w", m.From, side, errors.ErrIllegalMove)
	}
	m, err = engine.FindMove(game, m.From, m.To)
	if err != nil {
		return m, err
	}
	legal, err := filter.Filter(game, []chess.Move{m})
	if err != nil {
		return m, err
	}
	if len(legal) == 0 {
		return m, fmt.Errorf("%s leaves the king in check: %w", m, errors.ErrIllegalMove)
	}
	return legal[0], nil
}

// report writes the move history, the board and any requested move lists.
func report(cfg *config.Config, game *chess.Game, first, side chess.Side, filter worker.MoveFilter) error {
	lists, err := collectMoves(game, side, filter)
	if err != nil {
		return err
	}

	if game.History.Len() > 0 {
		output.WriteHistory(cfg.OutputFile, game.History.Moves(), first, int(cfg.Output.MaxLineLength))
	}

	if cfg.Output.ShowBoard {
		var marks []chess.Position
		for _, moves := range lists {
			for _, m := range moves {
				marks = append(marks, m.To)
			}
		}
		bw := output.NewBoardWriter(cfg.OutputFile, useColour(cfg.Color, cfg.OutputFile))
		if err := bw.WriteBoard(game, marks...); err != nil {
			return err
		}
	}

	if len(lists) == 0 {
		return nil
	}
	writer := newMoveWriter(cfg.Output.JSON, len(lists) > 1, cfg.OutputFile)
	for _, moves := range lists {
		if err := writer.WriteMoves(moves); err != nil {
			return err
		}
	}
	return writer.Close()
}

// collectMoves generates the move lists asked for by -all and -square.
func collectMoves(game *chess.Game, side chess.Side, filter worker.MoveFilter) ([][]chess.Move, error) {
	var lists [][]chess.Move

	if *allMoves {
		moves, err := filterMoves(game, engine.AllMoves(game, side), filter)
		if err != nil {
			return nil, err
		}
		lists = append(lists, moves)
	}

	for _, name := range splitList(*squares) {
		pos, err := chess.ParsePosition(name)
		if err != nil {
			return nil, err
		}
		if err := engine.GenerateMoves(game, pos); err != nil {
			return nil, err
		}
		moves, err := filterMoves(game, append([]chess.Move(nil), game.ValidMoves()...), filter)
		if err != nil {
			return nil, err
		}
		lists = append(lists, moves)
	}
	return lists, nil
}

func filterMoves(game *chess.Game, moves []chess.Move, filter worker.MoveFilter) ([]chess.Move, error) {
	if filter == nil {
		return moves, nil
	}
	return filter.Filter(game, moves)
}

// newMoveWriter returns the writer for move lists. JSON output holds one
// array per list when several lists are written.
func newMoveWriter(asJSON, perList bool, w io.Writer) output.MoveWriter {
	switch {
	case asJSON && perList:
		return output.NewJSONMoveWriterSingle(w)
	case asJSON:
		return output.NewJSONMoveWriter(w)
	}
	return output.NewTextMoveWriter(w)
}

// runUI starts the interactive board on the terminal.
func runUI(game *chess.Game, cfg *config.Config, filter worker.MoveFilter, logger *log.Logger) error {
	if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
		return fmt.Errorf("the interactive board needs a terminal")
	}
	palette, err := cfg.Theme.Palette()
	if err != nil {
		return err
	}

	// The board owns the screen; only a log file may receive progress.
	uiLog := progressLogger(cfg, logger)
	if cfg.LogFile == os.Stderr {
		uiLog = log.New(io.Discard, "", 0)
	}

	s := session.New(game, session.WithLogger(uiLog), session.WithFilter(filter))
	board := ui.New(s, palette, ui.WithLogger(uiLog), ui.WithFlip(*flipBoard))
	return board.Run()
}
