package glyphing

import (
	"bufio"
	"errors"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/subzero/core"
	"github.com/npillmayer/subzero/core/font"
)

// MaxSquash is the deepest squashing supported.
const MaxSquash = 3

// Params collects composition parameters.
type Params struct {
	Spaces  int // blank columns for a non-letter character
	Between int // blank columns between two letters, if not squashing
	Squash  int // number of columns adjacent letters may overlap
}

// DefaultParams returns the parameters used if nothing else is configured.
func DefaultParams() Params {
	return Params{Spaces: 5, Between: 2, Squash: 0}
}

// Validate checks p for values a Compositor is not designed for.
func (p Params) Validate() error {
	if p.Spaces < 0 {
		return core.Error(core.EINVALID, "number of spaces must not be negative, is %d", p.Spaces)
	}
	if p.Between < 0 {
		return core.Error(core.EINVALID, "spacing between letters must not be negative, is %d", p.Between)
	}
	if p.Squash < 0 {
		return core.Error(core.EINVALID, "squash depth must not be negative, is %d", p.Squash)
	}
	if p.Squash > MaxSquash {
		return core.Error(core.EINVALID, "you are squashing too much")
	}
	return nil
}

// Compositor sets text in block letters of a font.
// A Compositor does not change after creation and may be used concurrently.
type Compositor struct {
	font   *font.Font
	params Params
}

// New creates a compositor for a font. If f is nil, the Sub-Zero font is used.
//
// New does not validate p; clients should call p.Validate() beforehand.
// Negative values count as 0.
func New(f *font.Font, p Params) *Compositor {
	if f == nil {
		f = font.SubZero()
	}
	p.Spaces = max(p.Spaces, 0)
	p.Between = max(p.Between, 0)
	p.Squash = max(p.Squash, 0)
	return &Compositor{font: f, params: p}
}

// Font returns the font c sets text with.
func (c *Compositor) Font() *font.Font {
	return c.font
}

// Params returns the composition parameters of c.
func (c *Compositor) Params() Params {
	return c.params
}

// RenderLine sets a single line of text. line should not contain newline
// characters; if it does, they are dropped like any other control character.
func (c *Compositor) RenderLine(line string) [font.Height]string {
	rows := c.compose(line)
	var out [font.Height]string
	for i, row := range rows {
		out[i] = string(row)
	}
	return out
}

// Render sets text, which may span multiple lines. It returns font.Height
// output lines for every input line.
//
// Lines are separated by '\n', and a trailing '\r' is removed from each line.
// A final line without a newline counts as a line, while a trailing newline
// does not start another one. Empty text yields no output.
func (c *Compositor) Render(text string) []string {
	lines := splitLines(text)
	out := make([]string, 0, len(lines)*font.Height)
	for _, line := range lines {
		rows := c.RenderLine(line)
		out = append(out, rows[:]...)
	}
	return out
}

// RenderTo reads text from r and writes it in block letters to w.
// Input is processed line by line, and the output for a line is written to w
// before the next line is read. Line splitting follows Render.
func (c *Compositor) RenderTo(w io.Writer, r io.Reader) error {
	reader := bufio.NewReader(r)
	writer := bufio.NewWriter(w)
	for {
		line, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		if line != "" {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			for _, row := range c.compose(line) {
				writer.Write(row)
				writer.WriteByte('\n')
			}
			if ferr := writer.Flush(); ferr != nil {
				return ferr
			}
		}
		if err != nil { // io.EOF
			return nil
		}
	}
}

// compose sets a line of text into freshly allocated rows.
func (c *Compositor) compose(line string) rows {
	var out rows
	for i := range out {
		out[i] = appendBlanks(out[i], c.font.Indent[i])
	}
	first := true
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		b := line[i]
		i += size
		if dropped(r, size, b) {
			continue
		}
		g, ok := c.font.Glyph(r)
		if !ok {
			out.blanks(c.params.Spaces)
			first = true
			continue
		}
		if first || c.params.Squash == 0 {
			between := c.params.Between
			if first {
				between = 0
			}
			out.place(g, between)
		} else {
			tracer().Debugf("squashing glyph %c at depth %d", r, c.params.Squash)
			out.squash(g, c.params.Squash)
		}
		first = false
	}
	return out
}

// dropped is true for characters that neither produce a glyph nor a gap:
// control characters, DEL, U+00FF and a raw 0xFF byte.
func dropped(r rune, size int, b byte) bool {
	if r < ' ' || r == 0x7f || r == 0xff {
		return true
	}
	return r == utf8.RuneError && size == 1 && b == 0xff
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
