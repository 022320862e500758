// Package display provides the named log helpers used by hashcat-gui commands.
package display

import (
	"os"
	"strings"
	"unicode"

	"github.com/dustin/go-humanize"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/launcher"
	"github.com/unclesp1d3r/hashcatgui/lib/outfile"
)

// Launching logs the terminal command that is about to be started.
func Launching(cmd launcher.Command) {
	appstate.Logger.Info("Launching hashcat", "terminal", cmd.Terminal, "dir", cmd.Dir)
	appstate.Logger.Debug("Terminal command", "command", cmd.String())
}

// Launched logs the process ID of the detached terminal.
func Launched(pid int) {
	appstate.Logger.Info("Hashcat started in a new terminal window", "pid", pid)
}

// QueryFailed logs a failed metadata query after removing non-printable characters.
func QueryFailed(what string, err error) {
	appstate.Logger.Warn("Hashcat query failed", "query", what, "error", Printable(err.Error()))
}

// ProfileSaved logs a successful profile write.
func ProfileSaved(path string) {
	appstate.Logger.Info("Profile saved", "path", path)
}

// ProfileLoaded logs which profile the form was read from.
func ProfileLoaded(path string) {
	appstate.Logger.Debug("Profile loaded", "path", path)
}

// SettingsSaved logs the settings file that was written.
func SettingsSaved(path string) {
	appstate.Logger.Info("Settings saved", "config_file", path)
}

// WordlistsAdded logs how many wordlist rows were added and how many were skipped as duplicates.
func WordlistsAdded(added, requested int) {
	appstate.Logger.Info("Wordlists added", "added", added, "skipped", requested-added)
}

// Following logs the outfile being followed.
func Following(path string) {
	appstate.Logger.Info("Following outfile", "path", path)
}

// Cracked logs a cracked hash read from the outfile.
func Cracked(res outfile.Result) {
	appstate.Logger.Debug("Outfile line", "line", res.Raw)
}

// FileSize returns a human readable size for path, or "missing" if it cannot be read.
func FileSize(path string) string {
	info, err := os.Stat(path)
	if err != nil {
		return "missing"
	}

	if info.IsDir() {
		return "directory"
	}

	return humanize.Bytes(uint64(info.Size())) //nolint:gosec // File sizes are never negative
}

// Printable strips non-printable characters from s, keeping newlines.
func Printable(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || unicode.IsPrint(r) {
			return r
		}

		return -1
	}, s)
}
