package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

var hashModesRefresh bool

// hashModesCmd lists the hash modes reported by the configured binary.
var hashModesCmd = &cobra.Command{
	Use:   "hash-modes [FILTER]",
	Short: "List hash modes as \"id | name\"",
	Long: "List the hash modes reported by 'hashcat --example-hashes --machine-readable'.\n" +
		"FILTER matches the label or category, case-insensitively. The catalog is cached\n" +
		"per binary and version; --refresh queries the binary again.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		catalog, err := hashcat.LoadCatalog(cmd.Context(), s.Runner(), appstate.State.CatalogCachePath, hashModesRefresh)
		if err != nil {
			display.QueryFailed("hash modes", err)
			fmt.Fprintln(cmd.OutOrStdout(), err)

			return nil
		}

		if len(args) == 1 {
			catalog = catalog.Filter(args[0])
		}

		for _, mode := range catalog {
			if mode.Category != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  [%s]\n", mode.Label(), mode.Category)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), mode.Label())
			}
		}

		return nil
	},
}

// attackModesCmd lists the selectable attack modes and the form groups each enables.
var attackModesCmd = &cobra.Command{
	Use:   "attack-modes",
	Short: "List attack modes and the form groups they enable",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		for _, mode := range hashcat.AttackModes() {
			fmt.Fprintf(cmd.OutOrStdout(), "%d | %-24s %s\n",
				int(mode), mode, strings.Join(hashcat.Groups(mode).Names(), ", "))
		}
	},
}

func init() {
	hashModesCmd.Flags().BoolVar(&hashModesRefresh, "refresh", false, "ignore the cached catalog")
	rootCmd.AddCommand(hashModesCmd, attackModesCmd)
}
