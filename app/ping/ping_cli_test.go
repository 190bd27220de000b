package pingcli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/serum-errors/go-serum"

	"github.com/warptools/code-review-agent/agentapi"
	appbase "github.com/warptools/code-review-agent/app/base"
)

func newRegistry(t *testing.T) (*appbase.Registry, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	reg := appbase.New(strings.NewReader(""), &stdout, &stderr)
	qt.Assert(t, reg.Configure(appbase.Descriptor{Name: "code-review-agent", Version: "0.0.0"}), qt.IsNil)
	qt.Assert(t, Register(reg), qt.IsNil)
	return reg, &stdout, &stderr
}

func TestPing(t *testing.T) {
	reg, stdout, stderr := newRegistry(t)
	inv, err := reg.Dispatch(context.Background(), []string{"ping"})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, stdout.String(), qt.Equals, "pong\n")
	qt.Assert(t, stderr.String(), qt.Equals, "")
	qt.Assert(t, inv.Subcommand.Name, qt.Equals, "ping")
	qt.Assert(t, inv.Subcommand.Description, qt.Equals, "Quick sanity check that the CLI runs.")
}

func TestPingIgnoresQuiet(t *testing.T) {
	reg, stdout, _ := newRegistry(t)
	_, err := reg.Dispatch(context.Background(), []string{"--quiet", "ping"})
	qt.Assert(t, err, qt.IsNil)
	qt.Assert(t, stdout.String(), qt.Equals, "pong\n")
}

func TestPingRegisteredOnce(t *testing.T) {
	reg, _, _ := newRegistry(t)
	err := Register(reg)
	qt.Assert(t, serum.Code(err), qt.Equals, agentapi.ECodeDuplicateSubcommand)
}
