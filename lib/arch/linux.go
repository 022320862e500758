//go:build linux

package arch

import "syscall"

// terminals maps each supported terminal emulator to the arguments that make
// it run a command and keep the window open once the command exits.
//
//nolint:gochecknoglobals // Static terminal table
var terminals = map[string][]string{
	"xterm":          {"-hold", "-e"},
	"konsole":        {"--hold", "-e"},
	"xfce4-terminal": {"--hold", "-x"},
	"alacritty":      {"--hold", "-e"},
	"kitty":          {"--hold"},
	"foot":           {"--hold"},
	"gnome-terminal": {"--"},
}

// Platform returns the platform identifier for Linux systems.
func Platform() string {
	return "linux"
}

// DefaultHashcatBinaryName returns the name hashcat release archives use for the Linux binary.
func DefaultHashcatBinaryName() string {
	return "hashcat.bin"
}

// DetachAttr starts the terminal in its own session so it outlives this process.
func DetachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
