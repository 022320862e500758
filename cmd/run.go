package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/launcher"
)

var (
	runDryRun bool
	runForm   *formFlags
)

// runCmd launches hashcat for the form in the configured terminal.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Launch hashcat in a terminal window",
	Long: "Launch hashcat with the form's arguments in the configured terminal emulator.\n" +
		"The terminal is detached; hashcat-gui does not wait for it.",
	Args: cobra.NoArgs,
	RunE: runRun,
}

func init() {
	runForm = addFormFlags(runCmd)
	runCmd.Flags().BoolVar(&runDryRun, "dry-run", false, "print the terminal command instead of starting it")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := runForm.buildForm(cmd, s)
	if err != nil {
		return err
	}

	c, err := launcher.Prepare(f, s, time.Now())
	if err != nil {
		return err
	}

	if runDryRun {
		fmt.Fprintln(cmd.OutOrStdout(), c.String())

		return nil
	}

	display.Launching(c)

	pid, err := launcher.Start(cmd.Context(), c)
	if err != nil {
		return err
	}

	display.Launched(pid)

	return nil
}
