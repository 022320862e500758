// Package launcher starts hashcat inside the configured terminal emulator.
//
// The terminal is started detached and released immediately: hashcat's
// lifetime is owned by the terminal window, not by this process.
package launcher

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
	"github.com/unclesp1d3r/hashcatgui/lib/config"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
)

//nolint:staticcheck // These messages are shown to the user verbatim.
var (
	// ErrNoHashFile is returned when the form has no hash file.
	ErrNoHashFile = errors.New("Please choose a hash file.")
	// ErrNoHashcatPath is returned when the hashcat binary is not configured.
	ErrNoHashcatPath = errors.New("Please configure the path to the hashcat binary in settings first.")
	// ErrNoTerminal is returned when no terminal emulator is configured.
	ErrNoTerminal = errors.New("Please configure a terminal in settings first.")
	// ErrUnknownTerminal is returned when the configured terminal is not in the platform table.
	ErrUnknownTerminal = errors.New("Unsupported terminal; run 'hashcat-gui terminals' to list the supported ones.")
)

// Command is a fully resolved launch: the terminal executable, the argument
// vector that follows it and the working directory.
type Command struct {
	Terminal    string   // Terminal executable as configured.
	TermArgs    []string // TermArgs keep the terminal window open.
	HashcatPath string   // HashcatPath is the configured hashcat binary.
	Args        []string // Args are the generated hashcat arguments.
	Dir         string   // Dir is the hashcat binary's directory.
}

// Argv returns everything passed to the terminal executable.
func (c Command) Argv() []string {
	argv := make([]string, 0, len(c.TermArgs)+1+len(c.Args))
	argv = append(argv, c.TermArgs...)
	argv = append(argv, c.HashcatPath)

	return append(argv, c.Args...)
}

// String renders the full command line for display.
func (c Command) String() string {
	return c.Terminal + " " + form.Preview("", c.Argv())
}

// Prepare checks the launch prerequisites in order and resolves the command
// for f under the given settings. now feeds the <unixtime> outfile placeholder.
func Prepare(f *form.Form, s config.Settings, now time.Time) (Command, error) {
	if strutil.IsBlank(f.HashFile) {
		return Command{}, ErrNoHashFile
	}

	if strutil.IsBlank(s.HashcatPath) {
		return Command{}, ErrNoHashcatPath
	}

	if strutil.IsBlank(s.Terminal) {
		return Command{}, ErrNoTerminal
	}

	term, ok := arch.LookupTerminal(s.Terminal)
	if !ok {
		return Command{}, fmt.Errorf("%w (%s)", ErrUnknownTerminal, s.Terminal)
	}

	if !fileutil.IsExist(s.HashcatPath) {
		appstate.Logger.Warn("Configured hashcat binary does not exist", "path", s.HashcatPath)
	}

	checkCPUAffinity(f.CPUAffinity)

	args := f.Args(form.ArgsOptions{
		Now:   func() time.Time { return now },
		Style: s.FlagStyle(),
	})

	return Command{
		Terminal:    s.Terminal,
		TermArgs:    term.Args,
		HashcatPath: s.HashcatPath,
		Args:        args,
		Dir:         filepath.Dir(s.HashcatPath),
	}, nil
}

// Start launches the command detached and returns the terminal's process ID.
// The process is released at once; no exit status is collected.
func Start(ctx context.Context, c Command) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	//nolint:gosec // The terminal and its arguments come from the user's own settings and form
	cmd := exec.Command(c.Terminal, c.Argv()...)
	cmd.Dir = c.Dir
	cmd.SysProcAttr = arch.DetachAttr()

	appstate.Logger.Debug("Starting terminal", "terminal", c.Terminal, "args", c.Argv(), "dir", c.Dir)

	if err := cmd.Start(); err != nil {
		return 0, fmt.Errorf("failed to start %s: %w", c.Terminal, err)
	}

	pid := cmd.Process.Pid
	if err := cmd.Process.Release(); err != nil {
		appstate.Logger.Warn("Failed to release terminal process", "error", err, "pid", pid)
	}

	return pid, nil
}

// checkCPUAffinity warns about --cpu-affinity entries naming cores this host
// does not have. hashcat numbers cores from 1.
func checkCPUAffinity(affinity string) {
	if affinity == "" {
		return
	}

	cores, err := cpu.Counts(true)
	if err != nil || cores <= 0 {
		appstate.Logger.Debug("Unable to count CPU cores", "error", err)

		return
	}

	for _, part := range strings.Split(affinity, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 1 || n > cores {
			appstate.Logger.Warn("CPU affinity entry does not name a core on this host",
				"entry", part, "cores", cores)
		}
	}
}
