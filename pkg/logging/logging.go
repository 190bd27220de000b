package logging

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

type ctxKey struct{}

type Logger struct {
	out     io.Writer
	err     io.Writer
	json    bool
	quiet   bool
	verbose bool

	infoColor  *color.Color
	debugColor *color.Color
	textColor  *color.Color
}

func DefaultLogger() Logger {
	return NewLogger(os.Stdout, os.Stderr, false, false, false)
}

// NewLogger builds a logger writing lines to out and tagged messages to err.
// Colors are only used when err is a terminal.
func NewLogger(out, err io.Writer, json, quiet, verbose bool) Logger {
	l := Logger{
		out:        out,
		err:        err,
		json:       json,
		quiet:      quiet,
		verbose:    verbose,
		infoColor:  color.New(color.FgHiGreen),
		debugColor: color.New(color.FgGreen),
		textColor:  color.New(color.FgWhite),
	}
	if isTerminal(err) {
		l.infoColor.EnableColor()
		l.debugColor.EnableColor()
		l.textColor.EnableColor()
	} else {
		l.infoColor.DisableColor()
		l.debugColor.DisableColor()
		l.textColor.DisableColor()
	}
	return l
}

// WithContext returns a copy of ctx carrying this logger.
func (l Logger) WithContext(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// Ctx returns the logger stored in ctx, or DefaultLogger if there is none.
func Ctx(ctx context.Context) Logger {
	l, ok := ctx.Value(ctxKey{}).(Logger)
	if !ok {
		return DefaultLogger()
	}
	return l
}

func (l Logger) Out(f string, args ...interface{}) {
	fmt.Fprintf(l.out, f+"\n", args...)
}

func (l Logger) Info(tag string, f string, args ...interface{}) {
	if l.quiet || l.json {
		return
	}
	l.print(l.infoColor, tag, f, args...)
}

func (l Logger) Debug(tag string, f string, args ...interface{}) {
	if !l.verbose || l.json {
		return
	}
	l.print(l.debugColor, tag, f, args...)
}

func (l Logger) print(tagColor *color.Color, tag, f string, args ...interface{}) {
	str := fmt.Sprintf(f, args...)
	for _, line := range strings.Split(str, "\n") {
		fmt.Fprintf(l.err, "%s  %s\n",
			tagColor.Sprint(tag),
			l.textColor.Sprint(line))
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
