package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unclesp1d3r/hashcatgui/lib/config"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
)

// settingsCmd groups the settings commands.
var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show and change persisted settings",
}

var settingsListCmd = &cobra.Command{
	Use:   "list",
	Short: "Print every setting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		for _, key := range config.Keys() {
			value, err := s.Value(key)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s=%s\n", key, value)
		}

		return nil
	},
}

var settingsGetCmd = &cobra.Command{
	Use:       "get KEY",
	Short:     "Print one setting",
	Args:      cobra.ExactArgs(1),
	ValidArgs: config.Keys(),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		value, err := s.Value(args[0])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), value)

		return nil
	},
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Change one setting and write the settings file",
	Args:  cobra.ExactArgs(2), //nolint:mnd // KEY VALUE
	RunE: func(_ *cobra.Command, args []string) error {
		v := viper.GetViper()
		if err := config.Set(v, args[0], args[1]); err != nil {
			return err
		}

		file, err := config.Persist(v)
		if err != nil {
			return err
		}

		display.SettingsSaved(file)

		return nil
	},
}

func init() {
	settingsCmd.AddCommand(settingsListCmd, settingsGetCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
