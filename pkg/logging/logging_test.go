package logging

import (
	"bytes"
	"context"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestLoggerLevels(t *testing.T) {
	t.Run("default", func(t *testing.T) {
		var out, errOut bytes.Buffer
		l := NewLogger(&out, &errOut, false, false, false)
		l.Out("pong")
		l.Info("tag", "hello %s", "there")
		l.Debug("tag", "hidden")
		qt.Assert(t, out.String(), qt.Equals, "pong\n")
		qt.Assert(t, errOut.String(), qt.Equals, "tag  hello there\n")
	})
	t.Run("quiet", func(t *testing.T) {
		var out, errOut bytes.Buffer
		l := NewLogger(&out, &errOut, false, true, true)
		l.Info("tag", "hidden")
		l.Debug("tag", "shown")
		qt.Assert(t, errOut.String(), qt.Equals, "tag  shown\n")
	})
	t.Run("json", func(t *testing.T) {
		var out, errOut bytes.Buffer
		l := NewLogger(&out, &errOut, true, false, true)
		l.Info("tag", "hidden")
		l.Debug("tag", "hidden")
		l.Out("pong")
		qt.Assert(t, errOut.Len(), qt.Equals, 0)
		qt.Assert(t, out.String(), qt.Equals, "pong\n")
	})
	t.Run("multiline", func(t *testing.T) {
		var out, errOut bytes.Buffer
		l := NewLogger(&out, &errOut, false, false, false)
		l.Info("x", "a\nb")
		qt.Assert(t, errOut.String(), qt.Equals, "x  a\nx  b\n")
	})
}

func TestLoggerContext(t *testing.T) {
	var out, errOut bytes.Buffer
	ctx := NewLogger(&out, &errOut, false, false, false).WithContext(context.Background())
	Ctx(ctx).Out("via context")
	qt.Assert(t, out.String(), qt.Equals, "via context\n")

	// no logger in the context falls back to the process streams
	l := Ctx(context.Background())
	qt.Assert(t, l.verbose, qt.IsFalse)
}
