package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
)

// terminalsCmd lists the terminal emulators supported on this platform.
var terminalsCmd = &cobra.Command{
	Use:   "terminals",
	Short: "List supported terminal emulators; the configured one is starred",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		configured, _ := arch.LookupTerminal(s.Terminal)

		for _, name := range arch.KnownTerminals() {
			mark := " "
			if name == configured.Name {
				mark = "*"
			}

			t, _ := arch.LookupTerminal(name)
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %v\n", mark, name, t.Args)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(terminalsCmd)
}
