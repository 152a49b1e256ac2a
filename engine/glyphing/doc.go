/*
Package glyphing sets text in block letters.

A Compositor takes a line of text and places the glyphs of a block-letter font
next to each other, left to right, into Height output rows. Letters are
separated by a configurable number of blank columns. Any other visible
character produces a word gap. Control characters are dropped.

Instead of separating letters, the compositor may squash them. Squashing
overlaps up to three trailing columns of the text set so far with the leading
columns of the next glyph. Overlapping columns are merged: blanks give way to
anything, and underscores give way to any other stroke. All other strokes stay
as they are.

	c := glyphing.New(font.SubZero(), glyphing.Params{Spaces: 5, Between: 2, Squash: 1})
	for _, row := range c.Render("Hello") {
		fmt.Println(row)
	}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package glyphing

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'subzero.glyphs'.
func tracer() tracing.Trace {
	return tracing.Select("subzero.glyphs")
}
