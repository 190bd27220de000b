package config

import (
	"errors"
	"io/fs"

	"github.com/joho/godotenv"

	"github.com/warptools/code-review-agent/agentapi"
)

// LoadEnv populates the process environment from the given dotenv files, in order.
// Files that do not exist are skipped.
// Variables that are already set are never overridden,
// so the real environment always wins over a file.
//
// The returned slice names the files that were actually loaded.
//
// Errors:
//
//   - code-review-agent-error-config -- a file exists but could not be read or parsed
func LoadEnv(files ...string) ([]string, error) {
	loaded := make([]string, 0, len(files))
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return loaded, agentapi.ErrorConfig(file, err)
		}
		loaded = append(loaded, file)
	}
	return loaded, nil
}
