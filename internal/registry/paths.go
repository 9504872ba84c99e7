package registry

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DefaultScriptsDirName is the directory next to the binary that holds the analyzers.
const DefaultScriptsDirName = "analyzers"

// BaseDirFunc supplies the directory analyzer paths are resolved against.
type BaseDirFunc func() (string, error)

// StaticBaseDir always returns dir, expanding a leading ~/.
func StaticBaseDir(dir string) BaseDirFunc {
	return func() (string, error) {
		return expandHome(dir)
	}
}

// ExecutableBaseDir resolves to <directory of the running binary>/analyzers.
func ExecutableBaseDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("locate executable: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), DefaultScriptsDirName), nil
}

// BaseDirFor picks StaticBaseDir when dir is set, ExecutableBaseDir otherwise.
func BaseDirFor(dir string) BaseDirFunc {
	if dir == "" {
		return ExecutableBaseDir
	}
	return StaticBaseDir(dir)
}

func expandHome(path string) (string, error) {
	if !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, path[2:]), nil
}
