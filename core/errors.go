package core

import (
	"errors"
	"fmt"
	"io"
)

// Error codes of subzero. Every code has a default text and a process exit
// status.
const (
	NOERROR   int = 0
	EUSAGE    int = 121 // command line used incorrectly
	EMISSING  int = 122 // input does not exist or cannot be read
	EINVALID  int = 123 // validation failed
	EINTERNAL int = 125 // internal error
)

var codes = map[int]struct {
	text string
	exit int
}{
	NOERROR:   {"OK", 0},
	EUSAGE:    {"usage error", 2},
	EMISSING:  {"not found", 3},
	EINVALID:  {"invalid", 4},
	EINTERNAL: {"internal error", 1},
}

func codeText(code int) string {
	if c, ok := codes[code]; ok {
		return c.text
	}
	return "undefined error"
}

// AppError is an error with an associated error code and a user-message.
type AppError interface {
	error
	ErrorCode() int
	UserMessage() string
}

// appError pairs a cause with a code and a message fit for the terminal.
type appError struct {
	cause error
	code  int
	msg   string
}

var _ AppError = appError{}

func (e appError) Error() string       { return fmt.Sprintf("[%d] %v", e.code, e.cause) }
func (e appError) Unwrap() error       { return e.cause }
func (e appError) ErrorCode() int      { return e.code }
func (e appError) UserMessage() string { return e.msg }

// Error creates an error with an error code and a user-message.
func Error(code int, format string, v ...interface{}) error {
	return WrapError(nil, code, format, v...)
}

// WrapError wraps err, adding an error code and a user message.
// A nil err is replaced by an error carrying the code's default text.
func WrapError(err error, code int, format string, v ...interface{}) error {
	if err == nil {
		err = errors.New(codeText(code))
	}
	return appError{cause: err, code: code, msg: fmt.Sprintf(format, v...)}
}

// Code returns the code of the first AppError in err's chain, NOERROR for a
// nil error, and EINTERNAL for anything else.
func Code(err error) int {
	if err == nil {
		return NOERROR
	}
	var e AppError
	if errors.As(err, &e) {
		return e.ErrorCode()
	}
	return EINTERNAL
}

// UserMessage returns the user message found in err's chain, falling back to
// the text of Code(err). It returns "" for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var e AppError
	if errors.As(err, &e) {
		return e.UserMessage()
	}
	return codeText(Code(err))
}

// ExitCode maps an error to a process exit status. Every error code maps
// to its own non-zero status.
func ExitCode(err error) int {
	if c, ok := codes[Code(err)]; ok {
		return c.exit
	}
	return 1
}

// UserError prints a one-line description of err to w, preferring its user
// message. Errors without one are printed as is.
func UserError(w io.Writer, err error) {
	var e AppError
	if errors.As(err, &e) {
		fmt.Fprintln(w, e.UserMessage())
		return
	}
	fmt.Fprintln(w, err.Error())
}
