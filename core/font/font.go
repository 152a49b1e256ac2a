/*
Package font holds block-letter fonts.

A block-letter font is a table of glyphs, one for each of the letters A to Z.
Every glyph consists of Height rows of printable ASCII characters. The rows of
a glyph may differ in width, and different glyphs have different widths.
Fonts are immutable once they have been created.

Besides the glyphs, a font may ask for a per-row indent. The indent is applied
once at the start of every rendered line and lets slanted fonts line up their
lower rows.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package font

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subzero/core"
)

// tracer writes to trace with key 'subzero.font'
func tracer() tracing.Trace {
	return tracing.Select("subzero.font")
}

// Height is the number of rows of every glyph.
const Height = 5

// Letters is the number of glyphs in a font, one for each of A to Z.
const Letters = 26

// Glyph is the block-letter representation of a single letter.
type Glyph [Height]string

// Font is a glyph table for the letters A to Z.
type Font struct {
	Name   string
	Info   string      // credits and other descriptive text
	Indent [Height]int // spaces to put in front of each row of a line
	glyphs [Letters]Glyph
}

// New creates a font from a list of rows. rows has to hold Height*Letters
// entries in row-major order: the first row of A to Z, then the second row of
// A to Z, and so on.
//
// Rows must consist of printable ASCII characters only.
func New(name, info string, rows []string, indent [Height]int) (*Font, error) {
	if len(rows) != Height*Letters {
		return nil, core.Error(core.EINVALID, "font %s has %d glyph rows, expected %d",
			name, len(rows), Height*Letters)
	}
	for i, n := range indent {
		if n < 0 {
			return nil, core.Error(core.EINVALID, "font %s has negative indent for row %d", name, i)
		}
	}
	f := &Font{Name: name, Info: info, Indent: indent}
	for i, row := range rows {
		r, l := i/Letters, i%Letters
		for j := 0; j < len(row); j++ {
			if row[j] < ' ' || row[j] > '~' {
				return nil, core.Error(core.EINVALID, "font %s: glyph %c row %d has non-printable byte %#x",
					name, 'A'+l, r, row[j])
			}
		}
		f.glyphs[l][r] = row
	}
	tracer().Debugf("font %s created with %d glyphs", name, Letters)
	return f, nil
}

// Glyph returns the glyph for an ASCII letter. Lookup is case-insensitive.
// For every other rune, Glyph returns false.
func (f *Font) Glyph(r rune) (Glyph, bool) {
	if !IsLetter(r) {
		return Glyph{}, false
	}
	if r >= 'a' {
		r -= 'a' - 'A'
	}
	return f.glyphs[r-'A'], true
}

// IsLetter returns true if r is an ASCII letter, i.e. has a glyph in every font.
func IsLetter(r rune) bool {
	return (r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')
}
