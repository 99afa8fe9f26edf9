// Package settings resolves F´ build configuration from a hierarchical
// settings.ini file. It locates the framework root (explicitly or by walking
// parent directories), validates and normalizes every configured path against
// the settings file's directory, and loads an optional [environment] section
// from a secondary file. Resolution is a single synchronous pass; the returned
// Settings value is never mutated afterwards.
package settings
