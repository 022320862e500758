// Package cmd implements the hashcat-gui command line.
package cmd

import (
	"context"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/config"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/profile"
)

// Version is the hashcat-gui release, overridden at build time with -ldflags.
var Version = "dev" //nolint:gochecknoglobals // Set by the linker

var (
	cfgFile     string
	enableDebug bool
	profilePath string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "hashcat-gui",
	Short: "Build and launch hashcat command lines",
	Long: "hashcat-gui assembles hashcat command lines from an attack form, keeps forms as JSON\n" +
		"profiles and launches hashcat in a terminal window.",
	SilenceUsage: true,
}

// Execute runs the root command through fang, which renders help and errors.
func Execute(ctx context.Context) error {
	return fang.Execute(ctx, rootCmd, fang.WithVersion(Version))
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is hashcat-gui.yaml in the user config directory)")
	rootCmd.PersistentFlags().BoolVar(&enableDebug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&profilePath, "profile", "p", "", "profile file the form is loaded from")

	config.SetDefaultConfigValues()
}

// initConfig loads the settings file and resolves the application state.
func initConfig() {
	appstate.SetDebug(enableDebug)
	config.InitConfig(cfgFile)
	config.SetupState()
	appstate.State.ProfilePath = profilePath
}

// loadSettings reads the current settings from the global viper instance.
func loadSettings() (config.Settings, error) {
	return config.Load(viper.GetViper())
}

// baseForm returns a default form seeded from settings, replaced by the
// --profile contents when one is given.
func baseForm(s config.Settings) (*form.Form, error) {
	f := form.New(s.FormOptions())

	if appstate.State.ProfilePath != "" {
		if err := profile.Load(appstate.State.ProfilePath, f); err != nil {
			return nil, err
		}
	}

	return f, nil
}
