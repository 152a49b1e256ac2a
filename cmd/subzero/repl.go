package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/subzero/core"
	"github.com/npillmayer/subzero/engine/glyphing"
	"github.com/pterm/pterm"
)

// REPL starts interactive mode. Every line entered is printed in block letters,
// until the user hits <ctrl>D.
func (a *app) REPL(c *glyphing.Compositor) error {
	conf := &readline.Config{
		Prompt:          "subzero > ",
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           io.NopCloser(a.stdin),
		Stdout:          a.stdout,
		Stderr:          a.stderr,
	}
	if !a.terminal { // lines are piped in, leave the tty alone
		conf.FuncIsTerminal = func() bool { return false }
		conf.FuncMakeRaw = func() error { return nil }
		conf.FuncExitRaw = func() error { return nil }
	}
	repl, err := readline.NewEx(conf)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot start interactive mode: %v", err)
	}
	defer repl.Close()
	fmt.Fprint(a.stderr, pterm.Info.Sprintln("Quit with <ctrl>D")) // inform user how to stop the CLI
	for {
		line, err := repl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if line == "" {
				break
			}
			continue
		} else if err != nil { // io.EOF
			break
		}
		tracer().Debugf("rendering '%s'", line)
		if err := c.RenderTo(a.stdout, strings.NewReader(line)); err != nil {
			if errors.Is(err, io.ErrClosedPipe) {
				break
			}
			return err
		}
	}
	fmt.Fprint(a.stderr, pterm.Info.Sprintln("Good bye!"))
	return nil
}
