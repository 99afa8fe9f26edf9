package settings

import "fmt"

// ParseError indicates a settings or environment file that is not valid INI.
type ParseError struct {
	File string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse '%s': %v", e.File, e.Err)
}

// Unwrap exposes the underlying parser error.
func (e *ParseError) Unwrap() error { return e.Err }

// SettingsPathError indicates a configured path setting that does not exist on
// disk. It carries enough context for the user to fix the settings file.
type SettingsPathError struct {
	Path    string
	Section string
	Key     string
	File    string
}

func (e *SettingsPathError) Error() string {
	return fmt.Sprintf("nonexistent path '%s' found in section '%s' option '%s' of file '%s'",
		e.Path, e.Section, e.Key, e.File)
}

// FrameworkLocationError indicates that neither an explicit framework_path nor
// the upward directory search located the framework root.
type FrameworkLocationError struct {
	Start string
}

func (e *FrameworkLocationError) Error() string {
	return fmt.Sprintf("framework not found at or above '%s': set 'framework_path' in the [%s] section of '%s'",
		e.Start, rootSection, DefaultFile)
}
