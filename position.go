package goutf8

import "fmt"

// Position locates a byte in the input stream. Offset counts bytes from the
// start of the stream (0-based); Line and Column are 1-based and advance per
// decoded code point, with '\n' starting a new line.
type Position struct {
	Offset int64
	Line   int
	Column int
}

// Advance moves the position past one decoded code point of the given
// encoded size in bytes.
func (pos *Position) Advance(r rune, size int) {
	pos.Offset += int64(size)
	if r == '\n' {
		pos.Line++
		pos.Column = 1
		return
	}
	pos.Column++
}

// advanceByte moves the position past one raw byte that did not decode into
// a code point.
func (pos *Position) advanceByte(b byte) {
	pos.Offset++
	if b == '\n' {
		pos.Line++
		pos.Column = 1
		return
	}
	pos.Column++
}

// String renders the position in a human-readable form.
func (pos Position) String() string {
	return fmt.Sprintf("line %d column %d (byte offset %d)", pos.Line, pos.Column, pos.Offset)
}
