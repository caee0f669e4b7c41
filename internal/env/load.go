package env

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"glb-viewer/internal/config"
)

// Variables read by Apply.
const (
	ModelURL = "GLBVIEWER_MODEL_URL"
	LogLevel = "GLBVIEWER_LOG_LEVEL"
	LogFile  = "GLBVIEWER_LOG_FILE"
	Watch    = "GLBVIEWER_WATCH"
)

// Load reads the given file (e.g. ".env") into the process environment.
// Variables already set are not overridden. The file may be missing; that is not an error.
func Load(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

// Apply overrides preferences from GLBVIEWER_* variables. Unset or empty
// variables leave the preference alone.
func Apply(p *config.Prefs) error {
	if v := os.Getenv(ModelURL); v != "" {
		p.Model.URL = v
	}
	if v := os.Getenv(LogLevel); v != "" {
		switch v {
		case "debug", "info", "warn", "error":
			p.Log.Level = v
		default:
			return fmt.Errorf("env: %s: unknown level %q", LogLevel, v)
		}
	}
	if v := os.Getenv(LogFile); v != "" {
		p.Log.File = v
	}
	if v := os.Getenv(Watch); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("env: %s: %w", Watch, err)
		}
		p.Model.Watch = b
	}
	return nil
}
