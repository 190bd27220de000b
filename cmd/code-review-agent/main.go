package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	agentapp "github.com/warptools/code-review-agent/app"
	"github.com/warptools/code-review-agent/pkg/config"
)

// run is main without the process exit, so tests can drive it.
// The returned value is the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if _, err := config.LoadEnv(config.EnvFile()); err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	reg, err := agentapp.New(stdin, stdout, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", err)
		return 1
	}
	// Dispatch errors have already been reported by the app's exit error handler.
	if _, err := reg.Dispatch(ctx, args); err != nil {
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
