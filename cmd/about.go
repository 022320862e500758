package cmd

import (
	"fmt"
	"runtime"

	"github.com/shirou/gopsutil/v4/host"
	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

// aboutCmd prints version and platform information.
var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show hashcat-gui, hashcat and platform versions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		// The version query runs while the host details are gathered.
		pending := s.Runner().QueryAsync(cmd.Context(), hashcat.FlagVersion)

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "hashcat-gui %s (%s/%s)\n", Version, runtime.GOOS, runtime.GOARCH)

		if info, err := host.InfoWithContext(cmd.Context()); err == nil {
			fmt.Fprintf(out, "platform:    %s %s (%s, kernel %s)\n",
				info.Platform, info.PlatformVersion, info.KernelArch, info.KernelVersion)
		} else {
			appstate.Logger.Debug("Unable to read host information", "error", err, "platform", arch.Platform())
			fmt.Fprintf(out, "platform:    %s\n", arch.Platform())
		}

		fmt.Fprintf(out, "config:      %s\n", valueOr(appstate.State.ConfigFile, "(defaults)"))
		fmt.Fprintf(out, "hashcat:     %s\n", valueOr(s.HashcatPath, "(not configured)"))

		var result hashcat.QueryResult
		select {
		case result = <-pending:
		case <-cmd.Context().Done():
			return cmd.Context().Err()
		}

		if result.Err != nil {
			display.QueryFailed("version", result.Err)
			fmt.Fprintf(out, "version:     %s\n", result.Err)
		} else {
			fmt.Fprintf(out, "version:     %s\n", trimVersion(result.Output))
		}

		return nil
	},
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}

	return value
}

func trimVersion(out string) string {
	for i, r := range out {
		if r == '\n' || r == '\r' {
			return out[:i]
		}
	}

	return out
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}
