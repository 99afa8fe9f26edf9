package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/eugenenazirov/fprime-settings/internal/logging"
	"github.com/eugenenazirov/fprime-settings/internal/settings"
)

func main() {
	app := kingpin.New("fprime-settings", "Resolves F´ build configuration from a settings.ini file and prints it as YAML")
	settingsFlag := app.Flag("settings", "Path to the settings file (falls back to $"+settings.SettingsEnvVar+", then ./"+settings.DefaultFile+")").String()
	verbose := app.Flag("verbose", "Enable debug logging").Short('v').Bool()

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger, err := logging.NewCLI(*verbose)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	path := settingsPath(*settingsFlag, os.Getenv)
	logger.Debug("resolving settings", zap.String("path", path))

	resolved, err := settings.Load(path, logger)
	if err != nil {
		logger.Fatal("failed to resolve settings", zap.Error(err))
	}

	out, err := yaml.Marshal(resolved)
	if err != nil {
		logger.Fatal("failed to encode settings", zap.Error(err))
	}
	if _, err := os.Stdout.Write(out); err != nil {
		logger.Fatal("failed to write output", zap.Error(err))
	}
}

// settingsPath picks the settings file location with the documented
// precedence: explicit flag, then the environment override, then the
// resolver's own default (empty string).
func settingsPath(flag string, getenv func(string) string) string {
	if flag != "" {
		return flag
	}
	if fromEnv := getenv(settings.SettingsEnvVar); fromEnv != "" {
		return fromEnv
	}
	return ""
}
