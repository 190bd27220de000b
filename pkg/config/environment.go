package config

import "os"

const (
	// EnvDebug turns on debug logging, same as passing --verbose
	EnvDebug = "CODE_REVIEW_AGENT_DEBUG"
	// EnvEnvFile overrides the dotenv file loaded before dispatch
	EnvEnvFile = "CODE_REVIEW_AGENT_ENV_FILE"
	// EnvTraceFile enables tracing to a file, same as passing --trace.file
	EnvTraceFile = "CODE_REVIEW_AGENT_TRACE_FILE"
)

// DefaultEnvFile is loaded from the working directory when EnvEnvFile is unset.
const DefaultEnvFile = ".env"

// EnvFile returns the dotenv file that should be loaded for this process.
func EnvFile() string {
	if v, ok := os.LookupEnv(EnvEnvFile); ok && v != "" {
		return v
	}
	return DefaultEnvFile
}
