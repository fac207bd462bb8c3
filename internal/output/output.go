// Package output formats boards and move lists for display.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = 80
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// WriteHistory writes moves as numbered pairs ("1. Pe2e4 pe7e5 2. ..."),
// wrapping at maxLineLength. first is the side that made the first move;
// a history opened by Black starts with "1...".
func WriteHistory(w io.Writer, moves []chess.Move, first chess.Side, maxLineLength int) {
	if len(moves) == 0 {
		return
	}
	ow := NewOutputWriter(w, maxLineLength)

	moveNum := 1
	isWhite := first != chess.Black

	for i, m := range moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m.String())

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	ow.NewLine()
}
