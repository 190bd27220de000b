package pingcli

import (
	"github.com/urfave/cli/v2"

	appbase "github.com/warptools/code-review-agent/app/base"
	"github.com/warptools/code-review-agent/pkg/logging"
)

// Register adds the ping subcommand to reg.
//
// Errors:
//
//   - code-review-agent-error-duplicate-subcommand -- ping is already registered
func Register(reg *appbase.Registry) error {
	return reg.Register(pingCmdDef)
}

var pingCmdDef = appbase.Subcommand{
	Name:        "ping",
	Description: "Quick sanity check that the CLI runs.",
	Action:      cmdPing,
}

func cmdPing(c *cli.Context) error {
	log := logging.Ctx(c.Context)
	log.Debug("", "ping from %s %s", c.App.Name, c.App.Version)
	log.Out("pong")
	return nil
}
