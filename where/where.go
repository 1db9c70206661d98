// Package where implements a cross-platform resolver for application-specific filesystem paths.
package where

import (
	"os"
	"path/filepath"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "LECTERN_CONFIG_PATH"

// credentialFile is the well-known credential file name, resolved relative to the working directory
// so a credential captured for one course directory does not leak into another.
const credentialFile = "lectern-credential.json"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the absolute path to the primary application configuration directory.
// The path resolution can be explicitly overridden via the LECTERN_CONFIG_PATH environment variable.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.Lectern))
}

// Cache resolves the absolute path to the application's persistent cache directory.
func Cache() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = filepath.Join(".", "cache")
	}
	return ensureDir(filepath.Join(base, constant.Lectern))
}

// Logs resolves the absolute path to the directory used for application diagnostic logs.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// Credential resolves the fixed working-directory path of the persisted credential pair.
func Credential() string {
	return credentialFile
}

// History resolves the absolute path to the capture history persistence file.
func History() string {
	return filepath.Join(Config(), "history.json")
}

// Queries resolves the absolute path to the schedule-filter suggestion registry.
func Queries() string {
	return filepath.Join(Cache(), "queries.json")
}

// Downloads resolves the default destination directory for captured lectures.
func Downloads() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ensureDir(filepath.Join(".", "lectures"))
	}
	return filepath.Join(home, "Videos", constant.Lectern)
}

// Temp resolves a volatile filesystem path for transient application artifacts.
func Temp() string {
	return ensureDir(filepath.Join(os.TempDir(), constant.Lectern))
}
