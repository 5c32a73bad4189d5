package errs

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Frame is one entry in a Chain: the file/function/line that raised
// or re-wrapped an error, plus its message.
type Frame struct {
	File    string
	Func    string
	Line    int
	Message string
}

func (f Frame) String() string {
	return fmt.Sprintf("%s:%d: %s(): %s", f.File, f.Line, f.Func, f.Message)
}

// Chain is an error carrying one Frame plus the cause it wraps,
// forming a linked stack as an immutable return value rather than a
// mutation of shared per-invocation state.
type Chain struct {
	frame Frame
	cause error
}

func (c *Chain) Error() string {
	if c.cause == nil {
		return c.frame.String()
	}
	return c.frame.String() + ": " + c.cause.Error()
}

// Unwrap exposes the cause to errors.Is/errors.As, so
// errors.Is(err, errs.InvariantViolation) works regardless of how many
// times the error was re-wrapped on its way back up the call stack.
func (c *Chain) Unwrap() error { return c.cause }

func capture(skip int) (file string, line int, funcName string) {
	pc, f, l, ok := runtime.Caller(skip)
	if !ok {
		return "unknown", 0, "unknown"
	}
	funcName = "unknown"
	if fn := runtime.FuncForPC(pc); fn != nil {
		funcName = fn.Name()
	}
	return f, l, funcName
}

// New starts a chain at a taxonomy Kind, capturing a stack trace via
// github.com/pkg/errors at the root so the chain survives being
// unwrapped all the way down.
func New(kind Kind, format string, args ...any) error {
	file, line, fn := capture(2)
	return &Chain{
		frame: Frame{File: file, Line: line, Func: fn, Message: fmt.Sprintf(format, args...)},
		cause: errors.WithStack(kind),
	}
}

// Wrap adds a frame on top of an existing error without discarding the
// one already there.
func Wrap(cause error, format string, args ...any) error {
	file, line, fn := capture(2)
	return &Chain{
		frame: Frame{File: file, Line: line, Func: fn, Message: fmt.Sprintf(format, args...)},
		cause: cause,
	}
}

// Frames walks a Chain from outermost to innermost, returning every
// Frame recorded along the way. Non-Chain causes are not represented
// as frames.
func Frames(err error) []Frame {
	var frames []Frame
	for err != nil {
		c, ok := err.(*Chain)
		if !ok {
			break
		}
		frames = append(frames, c.frame)
		err = c.cause
	}
	return frames
}

// Report renders a Chain oldest-cause-last, one line per frame.
func Report(err error) string {
	frames := Frames(err)
	lines := make([]string, len(frames))
	for i, f := range frames {
		lines[i] = "[ERROR] " + f.String()
	}
	return strings.Join(lines, "\n")
}
