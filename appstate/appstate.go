// Package appstate provides common state and logging instances used across hashcat-gui.
package appstate

import (
	"os"

	"github.com/charmbracelet/log"
)

// State holds runtime paths and flags resolved from configuration at startup.
var State = appState{} //nolint:gochecknoglobals // Global application state

// appState represents the paths and switches resolved for the current invocation.
// It is written once by config.SetupState before any command runs.
type appState struct {
	ConfigFile       string // ConfigFile is the settings file in use (empty if none was found).
	DataPath         string // DataPath is the directory holding caches and default profiles.
	CatalogCachePath string // CatalogCachePath is the JSON file caching the parsed hash-mode catalog.
	ProfilePath      string // ProfilePath is the profile file selected with --profile.
	Debug            bool   // Debug specifies whether debug logging is enabled.
}

// Logger is a shared logging instance configured to output logs at InfoLevel with timestamps to os.Stderr.
var Logger = log.NewWithOptions(os.Stderr, log.Options{ //nolint:gochecknoglobals // Global logger instance
	Level:           log.InfoLevel,
	ReportTimestamp: true,
})

// ErrorLogger is a logger instance for logging errors with detailed error information.
var ErrorLogger = Logger.With() //nolint:gochecknoglobals // Global error logger instance

// SetDebug toggles debug logging on both loggers.
func SetDebug(enabled bool) {
	State.Debug = enabled
	if enabled {
		Logger.SetLevel(log.DebugLevel)
		Logger.SetReportCaller(true)
		ErrorLogger.SetLevel(log.DebugLevel)

		return
	}

	Logger.SetLevel(log.InfoLevel)
	Logger.SetReportCaller(false)
	ErrorLogger.SetLevel(log.InfoLevel)
}
