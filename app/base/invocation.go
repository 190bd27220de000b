package appbase

import (
	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/warptools/code-review-agent/pkg/logging"
	"github.com/warptools/code-review-agent/pkg/tracing"
)

// Invocation records what one Dispatch call resolved to.
// It is created fresh per dispatch and is not shared.
type Invocation struct {
	ID   string
	Args []string

	// Subcommand is the matched subcommand, or nil when help, version,
	// or an error ended the dispatch before any action ran.
	Subcommand *Subcommand
}

func newInvocation(args []string) *Invocation {
	return &Invocation{
		ID:   uuid.NewString(),
		Args: append([]string(nil), args...),
	}
}

// record wraps the action of sub so that the invocation notes the match before the action runs.
func (inv *Invocation) record(sub Subcommand) cli.ActionFunc {
	return func(c *cli.Context) error {
		matched := sub
		inv.Subcommand = &matched

		logging.Ctx(c.Context).Debug("", "invocation %s: %s %v", inv.ID, sub.Name, inv.Args)
		trace.SpanFromContext(c.Context).SetAttributes(
			attribute.String(tracing.AttrKeyInvocationId, inv.ID),
			attribute.Int(tracing.AttrKeyInvocationArgc, len(inv.Args)),
			attribute.String(tracing.AttrKeySubcommandName, sub.Name),
		)
		return sub.Action(c)
	}
}
