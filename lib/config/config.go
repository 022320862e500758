// Package config provides configuration management for hashcat-gui.
package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	gap "github.com/muesli/go-app-paths"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unclesp1d3r/hashcatgui/appstate"
)

const (
	// Default configuration values.
	defaultOutfileFormat = "1,2"            // hashcat's own --outfile-format default
	defaultQueryTimeout  = 10 * time.Second // Default limit for --version/--example-hashes queries

	configName       = "hashcat-gui"     // Settings file base name (hashcat-gui.yaml)
	envPrefix        = "HASHCAT_GUI"     // Environment override prefix
	catalogCacheFile = "hash_modes.json" // Parsed hash-mode catalog cache inside data_path
)

var (
	scope = gap.NewScope(gap.User, "hashcat-gui") //nolint:gochecknoglobals // Configuration scope
)

// InitConfig initializes the configuration from various sources.
func InitConfig(cfgFile string) {
	appstate.ErrorLogger.SetReportCaller(true)

	cwd, err := os.Getwd()
	cobra.CheckErr(err)
	viper.AddConfigPath(cwd)

	configDirs, err := scope.ConfigDirs()
	cobra.CheckErr(err)

	for _, dir := range configDirs {
		viper.AddConfigPath(dir)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigName(configName)

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		appstate.Logger.Debug("Using config file", "config_file", viper.ConfigFileUsed())
	} else {
		appstate.Logger.Debug("No config file found, using defaults", "error", err)
	}
}

// SetupState populates appstate.State from the loaded configuration.
func SetupState() {
	dataRoot := viper.GetString(KeyDataPath)

	appstate.State.ConfigFile = viper.ConfigFileUsed()
	appstate.State.DataPath = dataRoot
	appstate.State.CatalogCachePath = filepath.Join(dataRoot, catalogCacheFile)
}

// SetDefaultConfigValues sets default configuration values.
func SetDefaultConfigValues() {
	dataDir, err := scope.DataPath("")
	cobra.CheckErr(err)

	viper.SetDefault(KeyDataPath, dataDir)
	viper.SetDefault(KeyHashcatPath, "")
	viper.SetDefault(KeyTerminal, "")
	viper.SetDefault(KeyOutfileFormat, defaultOutfileFormat)
	viper.SetDefault(KeyShortFlags, false)
	viper.SetDefault(KeyQueryTimeout, defaultQueryTimeout)
}

// DefaultConfigFile returns the path a new settings file is written to when
// no existing file was loaded.
func DefaultConfigFile() (string, error) {
	return scope.ConfigPath(configName + ".yaml")
}
