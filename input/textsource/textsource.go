/*
Package textsource resolves the text to set in block letters.

Text is either given as a list of words, which are joined by single blanks,
or read from a file or from standard input. Files and standard input may be
encoded in a charset other than UTF-8; they are decoded while being read.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package textsource

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/subzero/core"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/transform"
)

// tracer traces to tracing key 'subzero.input'.
func tracer() tracing.Trace {
	return tracing.Select("subzero.input")
}

// StdinName is the file name denoting standard input.
const StdinName = "-"

// Source describes where text comes from. Either Words or File may be set,
// but not both.
type Source struct {
	Words   []string  // words to join by blanks
	File    string    // file to read, or StdinName
	Charset string    // charset of File; empty for UTF-8
	Stdin   io.Reader // standard input; os.Stdin if nil
}

// Open returns a reader for the text of s. The caller has to close it.
//
// Read errors of the returned reader carry error code core.EMISSING.
func (s Source) Open() (io.ReadCloser, error) {
	if len(s.Words) > 0 && s.File != "" {
		return nil, core.Error(core.EUSAGE, "conflicting input: text given together with an input file")
	}
	if len(s.Words) > 0 {
		text := strings.Join(s.Words, " ")
		tracer().Debugf("text from %d argument(s)", len(s.Words))
		return io.NopCloser(strings.NewReader(text)), nil
	}
	if s.File == "" {
		return nil, core.Error(core.EUSAGE, "no input provided. See -help for usage")
	}
	dec, err := decoder(s.Charset)
	if err != nil {
		return nil, err
	}
	var rc io.ReadCloser
	var origin string
	if s.File == StdinName {
		origin = "stdin"
		stdin := s.Stdin
		if stdin == nil {
			stdin = os.Stdin
		}
		rc = io.NopCloser(stdin)
	} else {
		origin = "file '" + s.File + "'"
		f, err := os.Open(s.File)
		if err != nil {
			return nil, core.WrapError(err, core.EMISSING, "could not read from %s: %v", origin, err)
		}
		rc = f
	}
	tracer().Infof("reading text from %s", origin)
	r := io.Reader(rc)
	if dec != nil {
		tracer().Debugf("decoding input from %s", s.Charset)
		r = transform.NewReader(r, dec)
	}
	return &reader{r: r, c: rc, origin: origin}, nil
}

// decoder returns a decoder for a charset name, or nil for UTF-8.
// Charset names are those of the WHATWG encoding standard, e.g. "latin1"
// or "windows-1252".
func decoder(charset string) (*encoding.Decoder, error) {
	if charset == "" {
		return nil, nil
	}
	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "unknown charset '%s'", charset)
	}
	if name, _ := htmlindex.Name(enc); name == "utf-8" {
		return nil, nil // read verbatim
	}
	return enc.NewDecoder(), nil
}

// reader attaches a user message to read errors.
type reader struct {
	r      io.Reader
	c      io.Closer
	origin string
}

func (rd *reader) Read(p []byte) (int, error) {
	n, err := rd.r.Read(p)
	if err != nil && !errors.Is(err, io.EOF) {
		err = core.WrapError(err, core.EMISSING, "could not read from %s: %v", rd.origin, err)
	}
	return n, err
}

func (rd *reader) Close() error {
	return rd.c.Close()
}
