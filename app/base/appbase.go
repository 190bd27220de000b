package appbase

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/facette/natsort"
	"github.com/serum-errors/go-serum"
	"github.com/urfave/cli/v2"

	"github.com/warptools/code-review-agent/agentapi"
	_ "github.com/warptools/code-review-agent/app/base/helpgen"
	"github.com/warptools/code-review-agent/app/base/util"
	"github.com/warptools/code-review-agent/pkg/config"
)

// Descriptor is the identity of the program: what it is called, what it is for, and which release it is.
type Descriptor struct {
	Name        string
	Description string
	Version     string
}

// Subcommand is a named operation selectable as the first positional argument.
type Subcommand struct {
	Name        string
	Description string
	Action      cli.ActionFunc
}

// Registry holds the program descriptor and its subcommands, and dispatches argument lists against them.
//
// Registration is not safe to interleave with Dispatch.
// Once registration is done, Dispatch may be called any number of times;
// every call builds its own parser state.
type Registry struct {
	descriptor  Descriptor
	subcommands map[string]Subcommand

	Reader    io.Reader
	Writer    io.Writer
	ErrWriter io.Writer
}

// New creates an empty registry wired to the given streams.
func New(stdin io.Reader, stdout, stderr io.Writer) *Registry {
	return &Registry{
		subcommands: make(map[string]Subcommand),
		Reader:      stdin,
		Writer:      stdout,
		ErrWriter:   stderr,
	}
}

// Configure sets the program descriptor.
//
// Errors:
//
//   - code-review-agent-error-invalid -- the name is empty
func (r *Registry) Configure(d Descriptor) error {
	if d.Name == "" {
		return agentapi.ErrorInvalid("program name must not be empty")
	}
	r.descriptor = d
	return nil
}

// Descriptor returns the configured program descriptor.
func (r *Registry) Descriptor() Descriptor {
	return r.descriptor
}

// Register adds a subcommand.  On error the registry is left unchanged.
//
// Errors:
//
//   - code-review-agent-error-duplicate-subcommand -- the name is already registered
//   - code-review-agent-error-invalid -- the name is empty or there is no action
func (r *Registry) Register(sub Subcommand) error {
	if sub.Name == "" {
		return agentapi.ErrorInvalid("subcommand name must not be empty")
	}
	if sub.Action == nil {
		return agentapi.ErrorInvalid("subcommand has no action", [2]string{"name", sub.Name})
	}
	if _, exists := r.subcommands[sub.Name]; exists {
		return agentapi.ErrorDuplicateSubcommand(sub.Name)
	}
	r.subcommands[sub.Name] = sub
	return nil
}

// Lookup returns the subcommand registered under name.  Matching is exact and case-sensitive.
func (r *Registry) Lookup(name string) (Subcommand, bool) {
	sub, ok := r.subcommands[name]
	return sub, ok
}

// Names returns every registered subcommand name in natural sort order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.subcommands))
	for name := range r.subcommands {
		names = append(names, name)
	}
	natsort.Sort(names)
	return names
}

// Dispatch resolves args (not including the program name) against the registry and runs the result.
//
// Empty args and -h/--help print help.  --version/-V prints the version.
// Otherwise the first positional argument selects a subcommand, whose action
// runs exactly once; its error, if any, is returned unchanged.
//
// The returned Invocation describes what the arguments resolved to.
//
// Errors:
//
//   - code-review-agent-error-invalid -- the registry was never configured, or an option was misused
//   - code-review-agent-error-unknown-command -- the first positional argument names no subcommand
//   - code-review-agent-error-unknown-option -- an option was not recognized
func (r *Registry) Dispatch(ctx context.Context, args []string) (*Invocation, error) {
	inv := newInvocation(args)
	if r.descriptor.Name == "" {
		return inv, agentapi.ErrorInvalid("registry has no program descriptor")
	}
	app := r.app(inv)
	err := app.RunContext(ctx, append([]string{r.descriptor.Name}, args...))
	return inv, err
}

// app builds a fresh cli.App for one invocation.
// Flags carry parse state in urfave/cli, so nothing is shared between invocations.
func (r *Registry) app(inv *Invocation) *cli.App {
	commands := make([]*cli.Command, 0, len(r.subcommands))
	for _, name := range r.Names() {
		commands = append(commands, r.command(r.subcommands[name], inv))
	}
	return &cli.App{
		Name:     r.descriptor.Name,
		HelpName: r.descriptor.Name,
		Usage:    r.descriptor.Description,
		Version:  r.descriptor.Version,

		Reader:    r.Reader,
		Writer:    r.Writer,
		ErrWriter: r.ErrWriter,

		HideHelpCommand: true,
		Flags:           globalFlags(),
		Commands:        commands,
		Action:          rootAction,
		OnUsageError:    onUsageError,
		ExitErrHandler:  exitErrHandler,
	}
}

func (r *Registry) command(sub Subcommand, inv *Invocation) *cli.Command {
	return &cli.Command{
		Name:         sub.Name,
		Usage:        sub.Description,
		OnUsageError: onUsageError,
		Action: util.ChainCmdMiddleware(inv.record(sub),
			util.CmdMiddlewareLogging,
			util.CmdMiddlewareTracingConfig,
			util.CmdMiddlewareTracingSpan,
		),
	}
}

func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Enable debug logging",
			EnvVars: []string{config.EnvDebug},
		},
		&cli.BoolFlag{
			Name:  "quiet",
			Usage: "Suppress informational logging",
		},
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Report errors as JSON",
		},
		&cli.StringFlag{
			Name:      "trace.file",
			Usage:     "Enable tracing and emit output to file",
			TakesFile: true,
			EnvVars:   []string{config.EnvTraceFile},
		},
		&cli.BoolFlag{
			Name:  "trace.http.enable",
			Usage: "Enable remote tracing over http",
		},
		&cli.BoolFlag{
			Name:  "trace.http.insecure",
			Usage: "Allows insecure http",
		},
		&cli.StringFlag{
			Name:  "trace.http.endpoint",
			Usage: "Sets an endpoint for remote open-telemetry tracing collection",
		},
	}
}

// rootAction runs when no subcommand matched.
func rootAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.ShowAppHelp(c)
	}
	return agentapi.ErrorUnknownCommand(c.Args().First())
}

// The flag package reports undefined options with this prefix; urfave/cli matches on it too.
const undefinedOptionPrefix = "flag provided but not defined: "

// onUsageError sorts parser complaints into unknown options and other misuse (such as a missing flag value).
func onUsageError(c *cli.Context, err error, isSubcommand bool) error {
	msg := err.Error()
	if option := strings.TrimPrefix(msg, undefinedOptionPrefix); option != msg {
		return agentapi.ErrorUnknownOption(option, err)
	}
	return agentapi.ErrorInvalid(msg)
}

// Called after a command returns an non-nil error value.
// Prints the formatted error to stderr.
func exitErrHandler(c *cli.Context, err error) {
	if err == nil {
		return
	}
	if c.Bool("json") {
		if _, ok := err.(serum.ErrorInterface); !ok {
			err = agentapi.ErrorUnknown("command failed", err)
		}
		bytes, err := json.Marshal(err)
		if err != nil {
			panic("error marshaling json")
		}
		fmt.Fprintf(c.App.ErrWriter, "%s\n", string(bytes))
	} else {
		fmt.Fprintf(c.App.ErrWriter, "error: %s\n", err)
	}
}

// Aaaand the other modifications to `urfave/cli` that are unfortunately only possible by manipulating globals:
func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:               "version",
		Aliases:            []string{"V"}, // "-v" is for "verbose"!
		Usage:              "print the version",
		DisableDefaultText: true,
	}
	cli.HelpFlag = &cli.BoolFlag{
		Name:               "help",
		Aliases:            []string{"h"},
		Usage:              "show help",
		DisableDefaultText: true,
	}
	cli.VersionPrinter = func(c *cli.Context) {
		fmt.Fprintln(c.App.Writer, c.App.Version)
	}
}
