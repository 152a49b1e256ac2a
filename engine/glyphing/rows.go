package glyphing

import (
	"github.com/npillmayer/subzero/core/font"
)

const blank = ' '

// rows holds the output rows of a line while it is being set.
type rows [font.Height][]byte

// blanks appends n blank columns to every row.
func (rs *rows) blanks(n int) {
	for i := range rs {
		rs[i] = appendBlanks(rs[i], n)
	}
}

// place puts glyph g behind the current rows, separated by `between` blank
// columns.
func (rs *rows) place(g font.Glyph, between int) {
	for i, next := range g {
		rs[i] = appendBlanks(rs[i], between)
		rs[i] = append(rs[i], next...)
	}
}

// squash merges glyph g into the current rows, with an overlap of up to
// depth columns. Every row is merged on its own.
func (rs *rows) squash(g font.Glyph, depth int) {
	for i, next := range g {
		rs[i] = squashRow(rs[i], next, depth)
	}
}

// squashRow merges next into the trailing columns of line.
//
// The overlap is determined by walking backwards from the end of line for as
// long as the column found there may be overwritten by the first column of
// next, up to depth columns. These popped columns then receive the columns of
// next starting at depth-popped, wherever canOverwrite permits. The columns
// of next from depth onward are appended.
//
// The walk is clamped to the length of line, and columns beyond the end of
// next are ignored.
func squashRow(line []byte, next string, depth int) []byte {
	n := len(line)
	popped := 0
	if len(next) > 0 {
		for popped < depth && popped < n && canOverwrite(line[n-popped-1], next[0]) {
			popped++
		}
	}
	start := depth - popped
	for i := 0; i < popped && start+i < len(next); i++ {
		if canOverwrite(line[n-popped+i], next[start+i]) {
			line[n-popped+i] = next[start+i]
		}
	}
	if depth < len(next) {
		line = append(line, next[depth:]...)
	}
	return line
}

// canOverwrite returns true if column content `existing` may be replaced by
// `candidate`. Blanks may be overwritten by anything, underscores by anything
// but a blank.
func canOverwrite(existing, candidate byte) bool {
	if existing == blank {
		return true
	}
	if candidate == blank {
		return false
	}
	return existing == '_'
}

func appendBlanks(row []byte, n int) []byte {
	for ; n > 0; n-- {
		row = append(row, blank)
	}
	return row
}
