package agentapp

import (
	"io"

	appbase "github.com/warptools/code-review-agent/app/base"
	pingcli "github.com/warptools/code-review-agent/app/ping"
	"github.com/warptools/code-review-agent/pkg/config"
)

const (
	Name        = "code-review-agent"
	Description = "A reusable code review agent powered by Claude."
)

// registrations lists every subcommand package.  Order does not matter; help is sorted.
var registrations = []func(*appbase.Registry) error{
	pingcli.Register,
}

// New builds the program's registry, wired to the given streams, with every subcommand registered.
//
// Errors:
//
//   - code-review-agent-error-invalid -- the descriptor is unusable
//   - code-review-agent-error-duplicate-subcommand -- two packages claim the same subcommand name
func New(stdin io.Reader, stdout, stderr io.Writer) (*appbase.Registry, error) {
	reg := appbase.New(stdin, stdout, stderr)
	err := reg.Configure(appbase.Descriptor{
		Name:        Name,
		Description: Description,
		Version:     config.Version,
	})
	if err != nil {
		return nil, err
	}
	for _, register := range registrations {
		if err := register(reg); err != nil {
			return nil, err
		}
	}
	return reg, nil
}
