package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
)

// eulaCmd prints hashcat's license text.
var eulaCmd = &cobra.Command{
	Use:   "eula",
	Short: "Print hashcat's license",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		text, err := s.Runner().Eula(cmd.Context())
		if err != nil {
			display.QueryFailed("eula", err)
			text = err.Error() + "\n"
		}

		fmt.Fprint(cmd.OutOrStdout(), text)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(eulaCmd)
}
