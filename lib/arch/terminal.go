// Package arch provides platform-specific values: the table of terminal
// emulators hashcat can be launched in, the hashcat binary name and the
// process attributes used to detach the launched terminal.
package arch

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/duke-git/lancet/v2/maputil"
)

// Terminal is a terminal emulator together with the arguments placed between
// its executable and the command it should run.
type Terminal struct {
	Name string   // Name is the executable name as listed by KnownTerminals.
	Args []string // Args keep the window open after the command exits.
}

// KnownTerminals returns the supported terminal names for this platform, sorted.
func KnownTerminals() []string {
	names := maputil.Keys(terminals)
	slices.Sort(names)

	return names
}

// LookupTerminal resolves a configured terminal, given either by name or by
// path to its executable, against the platform's terminal table.
func LookupTerminal(terminal string) (Terminal, bool) {
	name := filepath.Base(strings.TrimSpace(terminal))

	args, ok := terminals[name]
	if !ok {
		return Terminal{}, false
	}

	return Terminal{Name: name, Args: slices.Clone(args)}, true
}
