/*
Command subzero prints text in large block letters of the Sub-Zero font.

	subzero [flags] [text ...]

Text is taken from the command line, where words are joined by single blanks,
or from a file given with -input ("-" for standard input). With -interactive,
every line entered at the prompt is printed in block letters.

Defaults for -spaces, -between, -squash and -trace may be set in the
environment as SUBZERO_SPACES, SUBZERO_BETWEEN, SUBZERO_SQUASH and
SUBZERO_TRACE, or in a file .env in the working directory.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subzero/core"
	"github.com/npillmayer/subzero/core/font"
	"github.com/npillmayer/subzero/engine/glyphing"
	"github.com/npillmayer/subzero/input/textsource"
	"github.com/pterm/pterm"
)

// tracer traces with key 'subzero.cli'
func tracer() tracing.Trace {
	return tracing.Select("subzero.cli")
}

func main() {
	initDisplay()
	if err := godotenv.Load(); err != nil { // .env is optional
		tracer().Debugf("no .env file loaded: %v", err)
	}
	a := &app{
		stdin:        os.Stdin,
		stdout:       os.Stdout,
		stderr:       os.Stderr,
		lookupEnv:    os.LookupEnv,
		setupTracing: configureTracing,
		terminal:     true,
	}
	os.Exit(a.run(os.Args[1:]))
}

// We use pterm for moderately fancy messages.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// app is a single invocation of the command.
type app struct {
	stdin        io.Reader
	stdout       io.Writer
	stderr       io.Writer
	lookupEnv    func(string) (string, bool)
	setupTracing func(level string) error
	terminal     bool // is stdin attached to a terminal?
}

func (a *app) run(args []string) int {
	conf, err := loadConfig(a.lookupEnv)
	if err != nil {
		return a.fatal(err)
	}
	fs := flag.NewFlagSet("subzero", flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), font.SubZero().Info)
		fmt.Fprintf(fs.Output(), "Usage: subzero [flags] [text ...]\n\n")
		fs.PrintDefaults()
	}
	input := fs.String("input", "", "Read text from a file instead of the arguments (- for stdin)")
	charset := fs.String("charset", "", "Charset of the input file, e.g. latin1 (default utf-8)")
	spaces := fs.Int("spaces", conf.params.Spaces, "Number of spaces for a space character")
	between := fs.Int("between", conf.params.Between, "Number of spaces between letters")
	squash := fs.Int("squash", conf.params.Squash, "Squash the letters together, up to 3")
	var more squashLevels
	fs.Var(&more, "S", "Squash one level more (repeatable: -S -S, -SS)")
	repl := fs.Bool("interactive", false, "Read lines from a prompt and print each")
	info := fs.Bool("info", false, "Print information about the font and exit")
	tlevel := fs.String("trace", conf.traceLevel, "Trace level [Debug|Info|Error]")
	if err := fs.Parse(expandSquashFlags(fs, args)); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return a.fatal(core.WrapError(err, core.EUSAGE, "%v", err))
	}
	level, err := normalizeTraceLevel(*tlevel)
	if err != nil {
		return a.fatal(err)
	}
	if err := a.setupTracing(level); err != nil {
		return a.fatal(err)
	}
	tracer().Infof("Trace level is %s", level)
	//
	params := glyphing.Params{Spaces: *spaces, Between: *between, Squash: *squash + int(more)}
	if err := params.Validate(); err != nil {
		return a.fatal(err)
	}
	tracer().Debugf("composition parameters = %+v", params)
	c := glyphing.New(font.SubZero(), params)
	if *info {
		a.printInfo(c)
		return 0
	}
	if *repl {
		if fs.NArg() > 0 || *input != "" {
			return a.fatal(core.Error(core.EUSAGE, "conflicting input: -interactive cannot be used with other input"))
		}
		return a.fatal(a.REPL(c))
	}
	src := textsource.Source{
		Words:   fs.Args(),
		File:    *input,
		Charset: *charset,
		Stdin:   a.stdin,
	}
	text, err := src.Open()
	if err != nil {
		return a.fatal(err)
	}
	defer text.Close()
	return a.fatal(c.RenderTo(a.stdout, text))
}

// fatal reports err to the user and returns the exit code for it.
// fatal(nil) is a no-op returning 0.
func (a *app) fatal(err error) int {
	if err == nil {
		return 0
	}
	tracer().Errorf(err.Error())
	var msg strings.Builder
	core.UserError(&msg, err)
	fmt.Fprint(a.stderr, pterm.Error.Sprintln("fatal: "+strings.TrimSuffix(msg.String(), "\n")))
	return core.ExitCode(err)
}

func (a *app) printInfo(c *glyphing.Compositor) {
	f := c.Font()
	fmt.Fprint(a.stdout, pterm.Info.Sprintln(f.Name+" font"))
	fmt.Fprintln(a.stdout, f.Info)
	fmt.Fprintln(a.stdout)
	for _, row := range c.Render(f.Name) {
		fmt.Fprintln(a.stdout, row)
	}
}

// squashLevels counts occurences of a boolean flag.
type squashLevels int

func (s *squashLevels) String() string {
	if s == nil {
		return "0"
	}
	return strconv.Itoa(int(*s))
}

func (s *squashLevels) Set(v string) error {
	on, err := strconv.ParseBool(v)
	if err != nil {
		return err
	}
	if on {
		*s++
	}
	return nil
}

func (s *squashLevels) IsBoolFlag() bool {
	return true
}

// expandSquashFlags splits combined flags like -SSS into -S -S -S.
// Like fs.Parse, it stops at the first non-flag argument or at "--", and it
// skips the value following a non-boolean flag of fs.
func expandSquashFlags(fs *flag.FlagSet, args []string) []string {
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" || len(arg) < 2 || arg[0] != '-' {
			return append(out, args[i:]...)
		}
		if len(arg) > 2 && strings.Trim(arg[1:], "S") == "" {
			for range arg[1:] {
				out = append(out, "-S")
			}
			continue
		}
		out = append(out, arg)
		name := strings.TrimLeft(arg, "-")
		if strings.Contains(name, "=") {
			continue
		}
		if f := fs.Lookup(name); f != nil && !isBoolFlag(f) && i+1 < len(args) {
			i++
			out = append(out, args[i])
		}
	}
	return out
}

func isBoolFlag(f *flag.Flag) bool {
	b, ok := f.Value.(interface{ IsBoolFlag() bool })
	return ok && b.IsBoolFlag()
}
