//go:build darwin

package arch

import "syscall"

// terminals maps each supported terminal emulator to the arguments that make
// it run a command and keep the window open once the command exits.
// Terminal.app and iTerm cannot be handed an argument vector and are not listed.
//
//nolint:gochecknoglobals // Static terminal table
var terminals = map[string][]string{
	"xterm":     {"-hold", "-e"},
	"alacritty": {"--hold", "-e"},
	"kitty":     {"--hold"},
}

// Platform returns the platform identifier for macOS systems.
func Platform() string {
	return "darwin"
}

// DefaultHashcatBinaryName returns the name of the hashcat binary on macOS.
func DefaultHashcatBinaryName() string {
	return "hashcat"
}

// DetachAttr starts the terminal in its own session so it outlives this process.
func DetachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
