//go:build windows

package arch

import "syscall"

// terminals maps each supported console host to the arguments that open a new
// window running a command and keep it open once the command exits.
//
//nolint:gochecknoglobals // Static terminal table
var terminals = map[string][]string{
	"cmd.exe":        {"/C", "start", "cmd.exe", "/K"},
	"powershell.exe": {"-NoExit", "-Command"},
	"wt.exe":         {"cmd.exe", "/K"},
}

// Platform returns the platform identifier for Windows systems.
func Platform() string {
	return "windows"
}

// DefaultHashcatBinaryName returns the default binary name for hashcat on Windows systems.
func DefaultHashcatBinaryName() string {
	return "hashcat.exe"
}

// DetachAttr places the console host in a new process group so it is not
// tied to this process's console.
func DetachAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{CreationFlags: syscall.CREATE_NEW_PROCESS_GROUP}
}
