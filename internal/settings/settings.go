package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/ini.v1"
)

const (
	// DefaultFile is the conventional settings file name, looked up in the
	// current working directory when no explicit path is given.
	DefaultFile = "settings.ini"
	// SettingsEnvVar names an alternate settings file location. It is a
	// caller-side override: consult it before calling Load, not inside it.
	SettingsEnvVar = "FPRIME_SETTINGS_FILE"

	rootSection        = "fprime"
	environmentSection = "environment"

	defaultToolchain    = "native"
	defaultCookiecutter = "default"
	installDirName      = "build-artifacts"
)

// Settings is the fully resolved build configuration. Every path field is
// absolute. Optional fields are empty when the corresponding key was not
// present in the settings file.
type Settings struct {
	SettingsFile          string            `yaml:"settings_file"`
	FrameworkPath         string            `yaml:"framework_path"`
	ProjectRoot           string            `yaml:"project_root,omitempty"`
	ACConstants           string            `yaml:"ac_constants,omitempty"`
	ConfigDir             string            `yaml:"config_dir,omitempty"`
	InstallDest           string            `yaml:"install_dest"`
	LibraryLocations      []string          `yaml:"library_locations"`
	DefaultToolchain      string            `yaml:"default_toolchain"`
	DefaultUTToolchain    string            `yaml:"default_ut_toolchain"`
	EnvironmentFile       string            `yaml:"environment_file"`
	Environment           map[string]string `yaml:"environment"`
	ComponentCookiecutter string            `yaml:"component_cookiecutter"`
}

// Load resolves build settings from the given INI file. An empty settingsFile
// falls back to DefaultFile in the current working directory.
//
// A missing settings file is not fatal: a warning is logged and a minimal
// configuration is returned, carrying only the discovered framework root and
// the default install destination. A present but malformed file fails with a
// ParseError. A nil logger suppresses the warning.
func Load(settingsFile string, logger *zap.Logger) (*Settings, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if settingsFile == "" {
		settingsFile = DefaultFile
	}

	settingsFile, err := filepath.Abs(settingsFile)
	if err != nil {
		return nil, fmt.Errorf("resolve settings file path: %w", err)
	}
	if resolved, err := filepath.EvalSymlinks(settingsFile); err == nil {
		settingsFile = resolved
	}

	settingsDir := filepath.Dir(settingsFile)
	defaultInstallDest := filepath.Join(settingsDir, installDirName)

	if _, err := os.Stat(settingsFile); err != nil {
		logger.Warn("failed to find settings file", zap.String("file", settingsFile))
		frameworkPath, err := DiscoverFramework(settingsDir)
		if err != nil {
			return nil, err
		}
		return &Settings{
			FrameworkPath: frameworkPath,
			InstallDest:   defaultInstallDest,
		}, nil
	}

	// Keys in the root section are case-insensitive; the environment section
	// is read later with a case-preserving parse.
	file, err := ini.LoadSources(ini.LoadOptions{InsensitiveKeys: true}, settingsFile)
	if err != nil {
		return nil, &ParseError{File: settingsFile, Err: err}
	}

	frameworkPath, err := readPath(file, rootSection, "framework_path", settingsFile, true)
	if err != nil {
		return nil, err
	}
	if frameworkPath == "" {
		frameworkPath, err = DiscoverFramework(settingsDir)
		if err != nil {
			return nil, err
		}
	}

	projectRoot, err := readPath(file, rootSection, "project_root", settingsFile, true)
	if err != nil {
		return nil, err
	}
	acConstants, err := readPath(file, rootSection, "ac_constants", settingsFile, true)
	if err != nil {
		return nil, err
	}
	configDir, err := readPath(file, rootSection, "config_directory", settingsFile, true)
	if err != nil {
		return nil, err
	}

	// The install destination may not exist yet, so it is normalized without
	// an existence check.
	installDest, err := readPath(file, rootSection, "install_dest", settingsFile, false)
	if err != nil {
		return nil, err
	}
	if installDest == "" {
		installDest = defaultInstallDest
	}

	environmentFile, err := readPath(file, rootSection, "environment_file", settingsFile, true)
	if err != nil {
		return nil, err
	}
	if environmentFile == "" {
		environmentFile = settingsFile
	}

	libraryLocations, err := readPathList(file, rootSection, "library_locations", settingsFile, true)
	if err != nil {
		return nil, err
	}
	if libraryLocations == nil {
		libraryLocations = []string{}
	}

	environment, err := loadEnvironment(environmentFile)
	if err != nil {
		return nil, err
	}

	root := file.Section(rootSection)
	return &Settings{
		SettingsFile:          settingsFile,
		FrameworkPath:         frameworkPath,
		ProjectRoot:           projectRoot,
		ACConstants:           acConstants,
		ConfigDir:             configDir,
		InstallDest:           installDest,
		LibraryLocations:      libraryLocations,
		DefaultToolchain:      root.Key("default_toolchain").MustString(defaultToolchain),
		DefaultUTToolchain:    root.Key("default_ut_toolchain").MustString(defaultToolchain),
		EnvironmentFile:       environmentFile,
		Environment:           environment,
		ComponentCookiecutter: root.Key("component_cookiecutter").MustString(defaultCookiecutter),
	}, nil
}

// loadEnvironment reads the [environment] section from envFile. Keys keep
// their original case. A missing section yields an empty mapping; a malformed
// file is a ParseError.
func loadEnvironment(envFile string) (map[string]string, error) {
	file, err := ini.Load(envFile)
	if err != nil {
		return nil, &ParseError{File: envFile, Err: err}
	}

	environment := map[string]string{}
	section, err := file.GetSection(environmentSection)
	if err != nil {
		return environment, nil
	}
	for _, key := range section.Keys() {
		environment[key.Name()] = key.Value()
	}
	return environment, nil
}

// ApplyEnvironment exports the [environment] mapping into the process
// environment so tools spawned by the caller inherit it.
func (s *Settings) ApplyEnvironment() error {
	for key, value := range s.Environment {
		if err := os.Setenv(key, value); err != nil {
			return fmt.Errorf("set environment variable %s: %w", key, err)
		}
	}
	return nil
}
