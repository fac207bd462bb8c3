// Package ui is the interactive terminal board. It draws a game with
// tview and forwards clicked squares to a session.Session.
package ui

import (
	"fmt"
	"io"
	"log"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/lgbarn/chesscore-go/internal/chess"
	"github.com/lgbarn/chesscore-go/internal/config"
	"github.com/lgbarn/chesscore-go/internal/session"
)

const (
	numRows = chess.BoardSize + 1 // board rows plus the file labels
	numCols = chess.BoardSize + 1 // rank labels plus board columns
)

// Board is the interactive board view.
type Board struct {
	app     *tview.Application
	table   *tview.Table
	status  *tview.TextView
	layout  *tview.Flex
	session *session.Session
	palette config.Palette
	logger  *log.Logger
	flip    bool
	clicked bool // a mouse click is pending selection
}

// Option configures a Board.
type Option func(*Board)

// WithLogger sets the logger for click errors.
func WithLogger(l *log.Logger) Option {
	return func(b *Board) {
		if l != nil {
			b.logger = l
		}
	}
}

// WithFlip draws the board from Black's side.
func WithFlip(flip bool) Option {
	return func(b *Board) {
		b.flip = flip
	}
}

// New builds the board view for s.
func New(s *session.Session, palette config.Palette, opts ...Option) *Board {
	b := &Board{
		app:     tview.NewApplication(),
		table:   tview.NewTable(),
		status:  tview.NewTextView(),
		session: s,
		palette: palette,
		logger:  log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(b)
	}

	b.table.SetSelectable(true, true)
	b.table.SetSelectedFunc(b.Select)
	b.table.SetSelectionChangedFunc(func(row, col int) {
		if b.clicked {
			b.clicked = false
			b.Select(row, col)
		}
	})
	b.table.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick {
			b.clicked = true
		}
		return action, event
	})
	b.table.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEscape {
			b.app.Stop()
		}
	})

	b.status.SetTextColor(palette.Label)
	b.setStatus("Click a piece to pick it. Esc or q quits, f flips.")

	b.layout = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(b.table, numRows, 0, true).
		AddItem(b.status, 1, 0, false)

	b.app.SetInputCapture(func(event *tcell.EventKey) *tcell.EventKey {
		switch event.Rune() {
		case 'q':
			b.app.Stop()
			return nil
		case 'f':
			b.flip = !b.flip
			b.Render()
			return nil
		}
		return event
	})

	b.Render()
	return b
}

// Run starts the event loop and blocks until the user quits.
func (b *Board) Run() error {
	return b.app.SetRoot(b.layout, true).EnableMouse(true).Run()
}

// Select handles a selection of table cell (row, col). Label cells are
// ignored.
func (b *Board) Select(row, col int) {
	pos, ok := b.cellPosition(row, col)
	if !ok {
		return
	}
	outcome, err := b.session.Click(pos)
	if err != nil {
		b.logger.Printf("click at %s: %v", pos, err)
		b.setStatus(fmt.Sprintf("%s: %v", pos, err))
	} else {
		b.setStatus(b.describe(outcome, pos))
	}
	b.Render()
}

func (b *Board) describe(outcome session.Outcome, pos chess.Position) string {
	switch outcome {
	case session.Moved:
		m, _ := b.session.LastMove()
		return fmt.Sprintf("Moved %s", m)
	case session.Picked, session.Repicked:
		return fmt.Sprintf("Picked %s (%d targets)", pos, len(b.session.Targets()))
	case session.Rejected:
		from, _ := b.session.Pick()
		return fmt.Sprintf("No move from %s to %s", from, pos)
	default:
		return fmt.Sprintf("%s %s", outcome, pos)
	}
}

func (b *Board) setStatus(text string) {
	b.status.SetText(text)
}

// Render redraws every table cell from the session's game.
func (b *Board) Render() {
	game := b.session.Game()
	pick, hasPick := b.session.Pick()
	targets := make(map[chess.Position]bool)
	for _, p := range b.session.Targets() {
		targets[p] = true
	}

	for r := 0; r < numRows; r++ {
		for c := 0; c < numCols; c++ {
			b.table.SetCell(r, c, b.renderCell(game, r, c, hasPick, pick, targets))
		}
	}
}

func (b *Board) renderCell(game *chess.Game, r, c int, hasPick bool, pick chess.Position, targets map[chess.Position]bool) *tview.TableCell {
	pos, onBoard := b.cellPosition(r, c)
	if !onBoard {
		return b.labelCell(r, c)
	}

	cell := game.Get(pos)
	text := "   "
	fg := b.palette.WhitePiece
	if cell != chess.Empty {
		text = fmt.Sprintf(" %c ", cell.Glyph())
		if cell.Side() == chess.Black {
			fg = b.palette.BlackPiece
		}
	}

	bg := b.palette.Light
	switch {
	case hasPick && pos == pick:
		bg = b.palette.Pick
	case targets[pos]:
		bg = b.palette.Target
	case (int(pos.Row)+int(pos.Col))%2 == 0:
		bg = b.palette.Dark
	}

	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(fg).
		SetBackgroundColor(bg)
}

// labelCell draws the rank column and the file row.
func (b *Board) labelCell(r, c int) *tview.TableCell {
	text := ""
	switch {
	case c == 0 && r < chess.BoardSize:
		row := chess.BoardSize - 1 - r
		if b.flip {
			row = r
		}
		text = fmt.Sprintf(" %d", row+1)
	case r == chess.BoardSize && c > 0:
		col := c - 1
		if b.flip {
			col = chess.BoardSize - 1 - col
		}
		text = fmt.Sprintf(" %c ", rune(chess.ColBase+col))
	}
	return tview.NewTableCell(text).
		SetAlign(tview.AlignCenter).
		SetTextColor(b.palette.Label).
		SetSelectable(false)
}

// cellPosition maps a table cell to a board square. Row 0 is rank 8 unless
// the board is flipped.
func (b *Board) cellPosition(r, c int) (chess.Position, bool) {
	if r < 0 || r >= chess.BoardSize || c < 1 || c > chess.BoardSize {
		return chess.Position{}, false
	}
	row, col := chess.BoardSize-1-r, c-1
	if b.flip {
		row, col = r, chess.BoardSize-1-col
	}
	return chess.Pos(row, col), true
}
