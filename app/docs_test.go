package agentapp_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"

	agentapp "github.com/warptools/code-review-agent/app"
	"github.com/warptools/code-review-agent/app/base/helpgen"
)

func runHelp(t *testing.T, args ...string) string {
	t.Helper()
	helpgen.Mode = helpgen.Mode_Markdown
	var out, errOut bytes.Buffer
	reg, err := agentapp.New(strings.NewReader(""), &out, &errOut)
	qt.Assert(t, err, qt.IsNil)
	inv, err := reg.Dispatch(context.Background(), args)
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, inv.Subcommand, qt.IsNil)
	return out.String()
}

// TestAppHelpListsEverything checks that the program overview names the program and every subcommand with its description.
func TestAppHelpListsEverything(t *testing.T) {
	reg, err := agentapp.New(nil, &bytes.Buffer{}, &bytes.Buffer{})
	qt.Assert(t, err, qt.IsNil)

	for _, args := range [][]string{nil, {"-h"}, {"--help"}} {
		help := runHelp(t, args...)
		qt.Assert(t, help, qt.Contains, "# "+agentapp.Name)
		qt.Assert(t, help, qt.Contains, agentapp.Description)
		qt.Assert(t, help, qt.Contains, "## Commands")
		for _, name := range reg.Names() {
			sub, ok := reg.Lookup(name)
			qt.Assert(t, ok, qt.IsTrue)
			qt.Assert(t, help, qt.Contains, "### "+name)
			qt.Assert(t, help, qt.Contains, sub.Description)
		}
		qt.Assert(t, help, qt.Contains, "--version, -V")
	}
}

// TestAllCommandsHaveHelp walks the registered subcommands and checks each one answers -h.
func TestAllCommandsHaveHelp(t *testing.T) {
	reg, err := agentapp.New(nil, &bytes.Buffer{}, &bytes.Buffer{})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, reg.Names(), qt.Not(qt.HasLen), 0)

	for _, name := range reg.Names() {
		t.Run(name, func(t *testing.T) {
			sub, _ := reg.Lookup(name)
			help := runHelp(t, name, "-h")
			qt.Assert(t, help, qt.Contains, agentapp.Name+" "+name)
			qt.Assert(t, help, qt.Contains, sub.Description)
		})
	}
}
