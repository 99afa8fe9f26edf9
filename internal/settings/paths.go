package settings

import (
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

// pathListSeparator packs multiple paths into one INI value. There is no
// escaping mechanism; paths containing ':' are not supported.
const pathListSeparator = ":"

// normalizePath expands a raw path value against baseDir and canonicalizes it.
// Relative paths are interpreted relative to baseDir. When mustExist is set the
// path is required to exist and symlinks are resolved; otherwise the path is
// normalized lexically so not-yet-existing targets (install destinations) pass.
func normalizePath(raw, baseDir string, mustExist bool) (string, error) {
	path := raw
	if !filepath.IsAbs(path) {
		path = filepath.Join(baseDir, path)
	}
	path, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return "", err
		}
		if resolved, err := filepath.EvalSymlinks(path); err == nil {
			path = resolved
		}
	}
	return path, nil
}

// readPathList reads a colon-separated path list from the given section key,
// expanding each entry relative to the settings file's directory. Empty
// segments are skipped. Every entry must exist unless mustExist is false; a
// nonexistent entry fails with a SettingsPathError naming the offending value.
func readPathList(file *ini.File, section, key, settingsFile string, mustExist bool) ([]string, error) {
	baseDir := filepath.Dir(settingsFile)
	raw := file.Section(section).Key(key).String()

	var expanded []string
	for _, part := range strings.Split(raw, pathListSeparator) {
		if part == "" {
			continue
		}
		full, err := normalizePath(part, baseDir, mustExist)
		if err != nil {
			return nil, &SettingsPathError{
				Path:    part,
				Section: section,
				Key:     key,
				File:    settingsFile,
			}
		}
		expanded = append(expanded, full)
	}
	return expanded, nil
}

// readPath reads a single path from a colon-separated value, keeping only the
// first entry. Returns the empty string when the key is absent or empty.
func readPath(file *ini.File, section, key, settingsFile string, mustExist bool) (string, error) {
	paths, err := readPathList(file, section, key, settingsFile, mustExist)
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		return "", nil
	}
	return paths[0], nil
}
