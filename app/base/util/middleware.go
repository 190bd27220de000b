package util

import (
	"github.com/urfave/cli/v2"

	"github.com/warptools/code-review-agent/pkg/logging"
	"github.com/warptools/code-review-agent/pkg/tracing"
)

// CmdMiddleware wraps a command action with behaviour that runs around it.
type CmdMiddleware func(cli.ActionFunc) cli.ActionFunc

// ChainCmdMiddleware wraps cmd so that middlewares run outermost first:
// ChainCmdMiddleware(cmd, a, b) behaves as a(b(cmd)).
func ChainCmdMiddleware(cmd cli.ActionFunc, middlewares ...CmdMiddleware) cli.ActionFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		cmd = middlewares[i](cmd)
	}
	return cmd
}

// CmdMiddlewareLogging puts a logger built from the --json, --quiet and --verbose flags into the command's context.
func CmdMiddlewareLogging(next cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		logger := logging.NewLogger(c.App.Writer, c.App.ErrWriter,
			c.Bool("json"), c.Bool("quiet"), c.Bool("verbose"))
		c.Context = logger.WithContext(c.Context)
		return next(c)
	}
}

// CmdMiddlewareTracingConfig installs a tracer according to the trace.* flags,
// and flushes it after the command returns.
// Without any trace flags the context gets a no-op tracer.
func CmdMiddlewareTracingConfig(next cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) error {
		ctx := c.Context
		provider, err := NewTracerProvider(ctx, c.App.Name, c.App.Version, tracingOptionsFromFlags(c))
		if err != nil {
			return err
		}
		if provider == nil {
			c.Context = tracing.SetTracer(ctx, nil)
			return next(c)
		}
		defer func() {
			if err := provider.Shutdown(ctx); err != nil {
				logging.Ctx(ctx).Debug(logTag, "shutdown: %s", err)
			}
		}()
		c.Context = tracing.SetTracer(ctx, provider.Tracer(Module))
		return next(c)
	}
}

// CmdMiddlewareTracingSpan wraps the command in a span called "<program> <command>".
// A failing command marks the span with its error code.
func CmdMiddlewareTracingSpan(next cli.ActionFunc) cli.ActionFunc {
	return func(c *cli.Context) (err error) {
		ctx, span := tracing.Start(c.Context, c.App.Name+" "+c.Command.Name)
		defer func() { tracing.EndWithStatus(span, err) }()
		c.Context = ctx
		return next(c)
	}
}
