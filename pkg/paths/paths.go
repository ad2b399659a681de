// Package paths provides centralized path handling for waypoint.
//
// The shortcut store lives beside the executable unless configured otherwise;
// settings and the log file follow the XDG Base Directory specification.
package paths

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/waypoint/pkg/errors"
)

// Environment variable names
const (
	// EnvLogFile overrides the location of the append-only log file
	EnvLogFile = "WAYPOINT_LOG_FILE"

	// EnvHome is the standard home directory variable
	EnvHome = "HOME"
)

// Default directories and files
const (
	// AppName is the directory name used under the XDG base directories
	AppName = "waypoint"

	// StoreFileName is the default name of the shortcut store
	StoreFileName = "waypoint.config.txt"

	// LocalConfigFileName is the settings file looked up beside the executable
	LocalConfigFileName = "waypoint.toml"

	// UserConfigFileName is the settings file looked up under XDG_CONFIG_HOME/waypoint
	UserConfigFileName = "config.toml"

	// LogFileName is the name of the log file
	LogFileName = "waypoint.log"
)

// executable is swapped in tests.
var executable = os.Executable

// ExecutableDir returns the directory holding the running binary, with
// symlinks resolved so a linked install still finds its store.
func ExecutableDir() (string, error) {
	exe, err := executable()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

// StorePath returns the backing file location. A non-empty override wins;
// otherwise fileName (StoreFileName when empty) is placed beside the executable.
func StorePath(override, fileName string) (string, error) {
	if override != "" {
		return ExpandHome(override), nil
	}
	if fileName == "" {
		fileName = StoreFileName
	}
	dir, err := ExecutableDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, fileName), nil
}

// ConfigSearchPaths lists settings files in load order; later files override
// earlier ones.
func ConfigSearchPaths() []string {
	var paths []string
	if dir, err := ExecutableDir(); err == nil {
		paths = append(paths, filepath.Join(dir, LocalConfigFileName))
	}
	return append(paths, filepath.Join(xdg.ConfigHome, AppName, UserConfigFileName))
}

// LogFilePath returns the path to the append-only log file.
// It respects WAYPOINT_LOG_FILE, then XDG_STATE_HOME.
func LogFilePath() string {
	if p := os.Getenv(EnvLogFile); p != "" {
		return ExpandHome(p)
	}
	return filepath.Join(xdg.StateHome, AppName, LogFileName)
}

// ExpandHome expands a leading ~ to the user's home directory.
func ExpandHome(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home := os.Getenv(EnvHome)
	if home == "" {
		var err error
		if home, err = os.UserHomeDir(); err != nil {
			return path
		}
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
