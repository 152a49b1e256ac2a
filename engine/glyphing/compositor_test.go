package glyphing

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/subzero/core"
	"github.com/npillmayer/subzero/core/font"
	"github.com/stretchr/testify/suite"
)

// --- Test Suite Preparation ------------------------------------------------

type CompositorTestEnviron struct {
	suite.Suite
	subzero *font.Font
	upright *font.Font // Sub-Zero glyphs without row indent
}

// listen for 'go test' command --> run test methods
func TestCompositor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subzero.glyphs")
	defer teardown()
	suite.Run(t, new(CompositorTestEnviron))
}

// run once, before test suite methods
func (env *CompositorTestEnviron) SetupSuite() {
	env.T().Log("Setting up test suite")
	tracing.Select("subzero.glyphs").SetTraceLevel(tracing.LevelInfo)
	env.subzero = font.SubZero()
	env.upright = uprightFont(env.T(), env.subzero)
}

// --- Tests -----------------------------------------------------------------

func (env *CompositorTestEnviron) TestSingleLetterIsGlyph() {
	c := New(env.upright, DefaultParams())
	for l := 'A'; l <= 'Z'; l++ {
		g, _ := env.upright.Glyph(l)
		out := c.Render(string(l))
		env.Require().Len(out, font.Height)
		env.Equal(g[:], out, "expected letter %c to render as its glyph", l)
	}
}

func (env *CompositorTestEnviron) TestSingleLetterWithIndent() {
	c := New(env.subzero, DefaultParams())
	g := env.glyph('a')
	out := c.RenderLine("a")
	for r := range out {
		env.Equal(strings.Repeat(" ", env.subzero.Indent[r])+g[r], out[r])
	}
}

func (env *CompositorTestEnviron) TestBetween() {
	c := New(env.upright, Params{Spaces: 5, Between: 2})
	a, b := env.glyph('A'), env.glyph('B')
	out := c.RenderLine("AB")
	for r := range out {
		env.Equal(a[r]+"  "+b[r], out[r], "row %d", r)
	}
	c = New(env.upright, Params{Spaces: 5, Between: 0})
	out = c.RenderLine("ab")
	for r := range out {
		env.Equal(a[r]+b[r], out[r], "row %d", r)
	}
}

func (env *CompositorTestEnviron) TestWordGapResetsLineInitial() {
	c := New(env.upright, Params{Spaces: 5, Between: 2})
	a, b := env.glyph('A'), env.glyph('B')
	out := c.RenderLine("A B")
	for r := range out {
		env.Equal(a[r]+"     "+b[r], out[r], "row %d", r)
	}
	// every non-letter counts as a gap, not only blanks
	for _, gap := range []string{"1", "!", "é", "~", " "} {
		env.Equal(out, c.RenderLine("A"+gap+"B"), "gap %q", gap)
	}
	// squashing is not applied directly after a gap either
	c = New(env.upright, Params{Spaces: 3, Between: 2, Squash: 3})
	out = c.RenderLine("A-B")
	for r := range out {
		env.Equal(a[r]+"   "+b[r], out[r], "row %d", r)
	}
	// leading and trailing gaps
	c = New(env.upright, Params{Spaces: 1, Between: 2})
	out = c.RenderLine(" A ")
	for r := range out {
		env.Equal(" "+a[r]+" ", out[r], "row %d", r)
	}
}

func (env *CompositorTestEnviron) TestDroppedCharacters() {
	for _, p := range []Params{DefaultParams(), {Spaces: 5, Between: 2, Squash: 2}} {
		c := New(env.subzero, p)
		expected := c.RenderLine("AB")
		for _, in := range []string{"A\x7fB", "A\x00B", "A\tB", "\x1bA\x1fB", "AÿB", "A\xffB", "\x7fA\x7fB\x7f"} {
			env.Equal(expected, c.RenderLine(in), "input %q", in)
		}
	}
}

func (env *CompositorTestEnviron) TestLineCount() {
	c := New(env.subzero, DefaultParams())
	for _, tc := range []struct {
		in    string
		lines int
	}{
		{"", 0},
		{"A", 1},
		{"A\n", 1},
		{"\n", 1},
		{"A\nB", 2},
		{"A\r\nB\r\n", 2},
		{"A\n\nB\n", 3},
		{"hello world\nhow are\nyou", 3},
	} {
		env.Len(c.Render(tc.in), tc.lines*font.Height, "input %q", tc.in)
	}
}

func (env *CompositorTestEnviron) TestEmptyLineKeepsIndent() {
	c := New(env.subzero, DefaultParams())
	out := c.Render("\n")
	env.Equal([]string{"", "", "", " ", " "}, out)
}

func (env *CompositorTestEnviron) TestSquashBlankColumns() {
	c := New(env.subzero, Params{Spaces: 5, Between: 2, Squash: 1})
	a, b := env.glyph('A'), env.glyph('B')
	out := c.RenderLine("AB")
	// row 0 of A ends in a blank, which takes the first column of B
	env.Equal(a[0]+b[0][1:], out[0])
	// row 3 of A ends in a backslash, which is kept, and B's first column is lost
	env.Equal(" "+a[3]+b[3][1:], out[3])
}

func (env *CompositorTestEnviron) TestSquashUnderscoreYieldsToBackslash() {
	l, a := env.glyph('L'), env.glyph('A')
	env.Require().True(strings.HasSuffix(l[2], "__"))
	env.Require().True(strings.HasPrefix(a[2], `\`))
	//
	c := New(env.subzero, Params{Spaces: 5, Between: 2, Squash: 1})
	out := c.RenderLine("LA")
	env.Equal(`\ \ \___\ \  __ \`, out[2])
	env.Len(out[2], len(l[2])+len(a[2])-1)
	//
	c = New(env.subzero, Params{Spaces: 5, Between: 2, Squash: 2})
	out = c.RenderLine("LA")
	env.Equal(`\ \ \__\_\  __ \`, out[2])
	env.Len(out[2], len(l[2])+len(a[2])-2)
}

func (env *CompositorTestEnviron) TestSquashZeroUsesBetween() {
	c := New(env.subzero, Params{Spaces: 5, Between: 2, Squash: 0})
	a, b := env.glyph('A'), env.glyph('B')
	out := c.RenderLine("AB")
	for r := range out {
		env.Equal(strings.Repeat(" ", env.subzero.Indent[r])+a[r]+"  "+b[r], out[r])
	}
}

func (env *CompositorTestEnviron) TestSquashShortensRows() {
	text := "SUBZERO"
	unsquashed := New(env.subzero, Params{Spaces: 5, Between: 0}).RenderLine(text)
	for depth := 1; depth <= MaxSquash; depth++ {
		out := New(env.subzero, Params{Spaces: 5, Between: 0, Squash: depth}).RenderLine(text)
		for r := range out {
			env.Less(len(out[r]), len(unsquashed[r]), "depth %d row %d", depth, r)
		}
	}
}

func (env *CompositorTestEnviron) TestRenderTo() {
	c := New(env.subzero, Params{Spaces: 4, Between: 1, Squash: 1})
	text := "Sub Zero\r\nis\n\ncool"
	var buf bytes.Buffer
	err := c.RenderTo(&buf, iotest.OneByteReader(strings.NewReader(text)))
	env.Require().NoError(err)
	expected := strings.Join(c.Render(text), "\n") + "\n"
	env.Equal(expected, buf.String())
	//
	buf.Reset()
	env.NoError(c.RenderTo(&buf, strings.NewReader("")))
	env.Zero(buf.Len())
}

func (env *CompositorTestEnviron) TestRenderToReadError() {
	c := New(env.subzero, DefaultParams())
	boom := errors.New("boom")
	var buf bytes.Buffer
	err := c.RenderTo(&buf, iotest.ErrReader(boom))
	env.ErrorIs(err, boom)
}

func (env *CompositorTestEnviron) TestConcurrentUse() {
	c := New(nil, Params{Spaces: 5, Between: 2, Squash: 2})
	env.Equal(font.SubZero(), c.Font())
	expected := c.Render("concurrent\nrendering")
	var wg sync.WaitGroup
	results := make([][]string, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = c.Render("concurrent\nrendering")
		}(i)
	}
	wg.Wait()
	for _, res := range results {
		env.Equal(expected, res)
	}
}

// --- Plain tests -----------------------------------------------------------

func TestCanOverwrite(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subzero.glyphs")
	defer teardown()
	//
	for x := byte('!'); x <= '~'; x++ {
		if !canOverwrite(' ', x) {
			t.Errorf("expected blank to be overwritable by %q", x)
		}
		if canOverwrite(x, ' ') {
			t.Errorf("expected %q not to be overwritable by blank", x)
		}
		if !canOverwrite('_', x) {
			t.Errorf("expected underscore to be overwritable by %q", x)
		}
		if x != '_' && canOverwrite(x, '_') {
			t.Errorf("expected %q not to be overwritable by underscore", x)
		}
	}
	if !canOverwrite(' ', ' ') {
		t.Errorf("expected blank to be overwritable by blank")
	}
	if canOverwrite('\\', '/') || canOverwrite('/', '\\') {
		t.Errorf("expected strokes to be preserved")
	}
}

func TestSquashRowProbesFirstColumn(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subzero.glyphs")
	defer teardown()
	//
	// next[0] is a blank, so only the blank trailing column is popped,
	// even though next[1] could overwrite the underscore
	out := squashRow([]byte("x_ "), " /y", 2)
	if string(out) != "x_/y" {
		t.Errorf("expected 'x_/y', got %q", out)
	}
	// three underscores popped, each overwritten unless the candidate is blank
	out = squashRow([]byte("a___"), `\ \b`, 3)
	if string(out) != `a\_\b` {
		t.Errorf(`expected 'a\_\b', got %q`, out)
	}
}

func TestSquashRowShortLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "subzero.glyphs")
	defer teardown()
	//
	for _, tc := range []struct {
		line, next string
		depth      int
		expected   string
	}{
		{"", "abc", 3, ""},
		{" ", "abc", 3, "c"},
		{" ", "abcd", 3, "cd"},
		{"xy", "a", 2, "xy"},
		{"x ", "", 2, "x "},
		{"__", "ab", 3, "b_"},
	} {
		out := squashRow([]byte(tc.line), tc.next, tc.depth)
		if string(out) != tc.expected {
			t.Errorf("squash(%q, %q, %d): expected %q, got %q", tc.line, tc.next, tc.depth,
				tc.expected, out)
		}
	}
}

func TestParamsValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("expected default params to be valid, got %v", err)
	}
	for _, p := range []Params{
		{Spaces: -1},
		{Between: -1},
		{Squash: -1},
		{Squash: MaxSquash + 1},
	} {
		err := p.Validate()
		if err == nil {
			t.Errorf("expected %+v to be invalid", p)
			continue
		}
		if core.Code(err) != core.EINVALID {
			t.Errorf("expected EINVALID for %+v, got %d", p, core.Code(err))
		}
	}
	if msg := core.UserMessage(Params{Squash: 4}.Validate()); msg != "you are squashing too much" {
		t.Errorf("unexpected message for squash 4: %q", msg)
	}
	c := New(nil, Params{Spaces: -3, Between: -1, Squash: -2})
	if c.Params() != (Params{}) {
		t.Errorf("expected negative params to count as zero, got %+v", c.Params())
	}
}

// --- Helpers ---------------------------------------------------------------

func (env *CompositorTestEnviron) glyph(r rune) font.Glyph {
	g, ok := env.subzero.Glyph(r)
	env.Require().True(ok, "no glyph for %c", r)
	return g
}

// uprightFont copies the glyphs of f into a font without row indent.
func uprightFont(t *testing.T, f *font.Font) *font.Font {
	rows := make([]string, font.Height*font.Letters)
	for l := 0; l < font.Letters; l++ {
		g, _ := f.Glyph(rune('A' + l))
		for r := 0; r < font.Height; r++ {
			rows[r*font.Letters+l] = g[r]
		}
	}
	upright, err := font.New(f.Name+"-upright", f.Info, rows, [font.Height]int{})
	if err != nil {
		t.Fatalf("cannot create upright font: %v", err)
	}
	return upright
}
