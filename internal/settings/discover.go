package settings

import (
	"fmt"
	"os"
	"path/filepath"
)

// frameworkMarker identifies the root of an F´ checkout. A directory is the
// framework root exactly when this file exists under it.
const frameworkMarker = "cmake/FPrime.cmake"

// DiscoverFramework locates the framework root by walking from startDir toward
// the filesystem root until a directory containing the framework marker file is
// found. It reads the filesystem on every call; nothing is cached.
func DiscoverFramework(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolve start directory: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(dir); err == nil {
		dir = resolved
	}

	if found, ok := findUpward(dir, frameworkMarker); ok {
		return found, nil
	}
	return "", &FrameworkLocationError{Start: startDir}
}

// findUpward walks the parent chain from dir looking for a directory under
// which marker exists as a regular file. The chain of parents is strictly
// decreasing, so the walk terminates at the filesystem root.
func findUpward(dir, marker string) (string, bool) {
	for {
		info, err := os.Stat(filepath.Join(dir, marker))
		if err == nil && info.Mode().IsRegular() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}
