package config

// Version is the release version of code-review-agent.
// Release builds replace it with -ldflags "-X github.com/warptools/code-review-agent/pkg/config.Version=...".
var Version = "0.1.0"
