package agentapi

import (
	"github.com/serum-errors/go-serum"
)

const (
	ECodeDuplicateSubcommand = "code-review-agent-error-duplicate-subcommand"
	ECodeUnknownCommand      = "code-review-agent-error-unknown-command"
	ECodeUnknownOption       = "code-review-agent-error-unknown-option"
	ECodeInvalid             = "code-review-agent-error-invalid"
	ECodeConfig              = "code-review-agent-error-config"
	ECodeInternal            = "code-review-agent-error-internal"
	ECodeUnknown             = "code-review-agent-error-unknown"
)

// ErrorUnknown is returned when an unknown error occurs
//
// Errors:
//
// - code-review-agent-error-unknown --
func ErrorUnknown(msg string, cause error) error {
	return serum.Error(ECodeUnknown,
		serum.WithMessageLiteral(msg),
		serum.WithCause(cause),
	)
}

// ErrorInternal is for miscellaneous errors that an end user is not expected to act on.
//
// Errors:
//
// - code-review-agent-error-internal --
func ErrorInternal(msg string, cause error) error {
	return serum.Error(ECodeInternal,
		serum.WithMessageLiteral(msg),
		serum.WithCause(cause),
	)
}

// ErrorInvalid is returned when something is invalid.
// The caller must format the message string.
//
// Errors:
//
//   - code-review-agent-error-invalid --
func ErrorInvalid(message string, deets ...[2]string) error {
	opts := make([]serum.WithConstruction, 0, len(deets)+1)
	for _, d := range deets {
		opts = append(opts, serum.WithDetail(d[0], d[1]))
	}
	opts = append(opts, serum.WithMessageLiteral(message))
	return serum.Error(ECodeInvalid, opts...)
}

// ErrorDuplicateSubcommand is returned when a subcommand name is registered twice.
//
// Errors:
//
//   - code-review-agent-error-duplicate-subcommand --
func ErrorDuplicateSubcommand(name string) error {
	return serum.Error(ECodeDuplicateSubcommand,
		serum.WithMessageTemplate("subcommand {{name|q}} is already registered"),
		serum.WithDetail("name", name),
	)
}

// ErrorUnknownCommand is returned when the first positional argument names no registered subcommand.
//
// Errors:
//
//   - code-review-agent-error-unknown-command --
func ErrorUnknownCommand(command string) error {
	return serum.Error(ECodeUnknownCommand,
		serum.WithMessageTemplate("unknown command {{command|q}}"),
		serum.WithDetail("command", command),
	)
}

// ErrorUnknownOption is returned when the argument parser meets an option nobody defined.
// The parser's own complaint is kept as the cause.
//
// Errors:
//
//   - code-review-agent-error-unknown-option --
func ErrorUnknownOption(option string, cause error) error {
	return serum.Error(ECodeUnknownOption,
		serum.WithMessageTemplate("unrecognized option {{option|q}}"),
		serum.WithDetail("option", option),
		serum.WithCause(cause),
	)
}

// ErrorConfig is returned when an environment file exists but cannot be loaded.
//
// Errors:
//
//   - code-review-agent-error-config --
func ErrorConfig(path string, cause error) error {
	return serum.Error(ECodeConfig,
		serum.WithMessageTemplate("cannot load environment file {{path|q}}"),
		serum.WithDetail("path", path),
		serum.WithCause(cause),
	)
}
