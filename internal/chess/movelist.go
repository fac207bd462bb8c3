package chess

// minMoveListCapacity is the capacity allocated on the first append.
const minMoveListCapacity = 32

// MoveList is an ordered, append-only sequence of moves.
// Capacity starts at zero, becomes 32 on the first append and doubles
// whenever an append would exceed it.
type MoveList struct {
	items []Move
}

// Push appends a move to the end of the list.
func (l *MoveList) Push(m Move) {
	if len(l.items)+1 > cap(l.items) {
		l.grow()
	}
	l.items = append(l.items, m)
}

// grow replaces the backing array with one of twice the capacity.
// The list is only updated once the copy is complete.
func (l *MoveList) grow() {
	newCap := cap(l.items) * 2
	if newCap == 0 {
		newCap = minMoveListCapacity
	}
	items := make([]Move, len(l.items), newCap)
	copy(items, l.items)
	l.items = items
}

// Len returns the number of moves in the list.
func (l *MoveList) Len() int {
	return len(l.items)
}

// Cap returns the current capacity of the list.
func (l *MoveList) Cap() int {
	return cap(l.items)
}

// At returns the i-th move. It panics if i is out of range.
func (l *MoveList) At(i int) Move {
	return l.items[i]
}

// Moves returns the live items. The slice is only valid until the next
// Push or Reset and must not be modified.
func (l *MoveList) Moves() []Move {
	return l.items
}

// Clone returns a copy of the moves that survives later changes to the list.
func (l *MoveList) Clone() []Move {
	if len(l.items) == 0 {
		return nil
	}
	out := make([]Move, len(l.items))
	copy(out, l.items)
	return out
}

// Reset empties the list, keeping its capacity.
func (l *MoveList) Reset() {
	l.items = l.items[:0]
}

// Contains reports whether a move from -> to is in the list and returns it.
func (l *MoveList) Contains(from, to Position) (Move, bool) {
	for _, m := range l.items {
		if m.From == from && m.To == to {
			return m, true
		}
	}
	return Move{}, false
}
