package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lgbarn/chesscore-go/internal/chess"
)

// MoveWriter is the interface for writing move lists to output.
type MoveWriter interface {
	// WriteMoves writes one generated move list.
	WriteMoves(moves []chess.Move) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// TextMoveWriter writes one move transcript per line.
type TextMoveWriter struct {
	w io.Writer
}

// NewTextMoveWriter creates a new text move writer.
func NewTextMoveWriter(w io.Writer) *TextMoveWriter {
	return &TextMoveWriter{w: w}
}

// WriteMoves writes the transcript of each move on its own line.
func (tw *TextMoveWriter) WriteMoves(moves []chess.Move) error {
	for _, m := range moves {
		if _, err := fmt.Fprintln(tw.w, m.String()); err != nil {
			return err
		}
	}
	return nil
}

// Flush is a no-op; text is written immediately.
func (tw *TextMoveWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextMoveWriter) Close() error {
	return nil
}

// JSONMoveWriter writes moves as a JSON array.
// It buffers moves and writes them as one array on Close or Flush.
type JSONMoveWriter struct {
	w      io.Writer
	moves  []JSONMove
	single bool // If true, write each list immediately instead of batching
	wrote  bool // WriteMoves called since the last Flush
}

// NewJSONMoveWriter creates a JSON writer that batches every written list
// into a single array.
func NewJSONMoveWriter(w io.Writer) *JSONMoveWriter {
	return &JSONMoveWriter{
		w:     w,
		moves: make([]JSONMove, 0),
	}
}

// NewJSONMoveWriterSingle creates a JSON writer that writes each list
// immediately as its own array.
func NewJSONMoveWriterSingle(w io.Writer) *JSONMoveWriter {
	return &JSONMoveWriter{
		w:      w,
		single: true,
	}
}

// WriteMoves buffers a move list (or writes it immediately in single mode).
func (jw *JSONMoveWriter) WriteMoves(moves []chess.Move) error {
	if jw.single {
		return jw.encode(MovesToJSON(moves))
	}
	jw.moves = append(jw.moves, MovesToJSON(moves)...)
	jw.wrote = true
	return nil
}

// Flush writes all buffered moves as a JSON array. If lists were written
// but all were empty it writes "[]". Nothing is written before the first
// WriteMoves.
func (jw *JSONMoveWriter) Flush() error {
	if jw.single || !jw.wrote {
		return nil
	}
	err := jw.encode(jw.moves)

	// Clear buffer after writing
	jw.moves = jw.moves[:0]
	jw.wrote = false

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONMoveWriter) Close() error {
	return jw.Flush()
}

func (jw *JSONMoveWriter) encode(v interface{}) error {
	enc := json.NewEncoder(jw.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
