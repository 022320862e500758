package hashcat

// Hashcat exit codes.
// Codes 0-4 and -1 are documented in hashcat source (types.h).
// Negative codes -2 through -7 are observed from specific failure modes
// and may vary by hashcat version; they are not officially documented.
const (
	ExitCodeSuccess        = 0  // Success/Cracked (official: RC_FINAL_OK)
	ExitCodeExhausted      = 1  // Exhausted (official: RC_FINAL_EXHAUSTED)
	ExitCodeAborted        = 2  // Aborted (official: RC_FINAL_ABORT)
	ExitCodeCheckpoint     = 3  // Aborted by checkpoint (official: RC_FINAL_ABORT_CHECKPOINT)
	ExitCodeRuntimeLimit   = 4  // Aborted by runtime limit (official: RC_FINAL_ABORT_RUNTIME)
	ExitCodeGeneralError   = -1 // General error (official: RC_FINAL_ERROR)
	ExitCodeGPUWatchdog    = -2 // GPU watchdog alarm (observed, not official)
	ExitCodeBackendAbort   = -3 // Backend abort (observed, not official)
	ExitCodeBackendChkpt   = -4 // Backend checkpoint abort (observed, not official)
	ExitCodeBackendRuntime = -5 // Backend runtime abort (observed, not official)
	ExitCodeSelftestFail   = -6 // Backend selftest fail (observed, not official)
	ExitCodeAutotuneFail   = -7 // Backend autotune fail (observed, not official)
)

// ExitCodeInfo contains information about a hashcat exit code.
type ExitCodeInfo struct {
	Status   string
	Normal   bool
	ExitCode int
}

//nolint:gochecknoglobals // Static lookup table
var exitCodeStatus = map[int]string{
	ExitCodeSuccess:        "cracked",
	ExitCodeExhausted:      "exhausted",
	ExitCodeAborted:        "aborted",
	ExitCodeCheckpoint:     "checkpoint",
	ExitCodeRuntimeLimit:   "runtime_limit",
	ExitCodeGeneralError:   "error",
	ExitCodeGPUWatchdog:    "gpu_watchdog",
	ExitCodeBackendAbort:   "backend_abort",
	ExitCodeBackendChkpt:   "backend_checkpoint",
	ExitCodeBackendRuntime: "backend_runtime",
	ExitCodeSelftestFail:   "selftest_fail",
	ExitCodeAutotuneFail:   "autotune_fail",
}

// ClassifyExitCode classifies a hashcat exit code.
// On POSIX systems negative codes arrive as 255, 254, ... and are folded back.
func ClassifyExitCode(exitCode int) ExitCodeInfo {
	code := exitCode
	if code > 128 && code <= 255 {
		code -= 256
	}

	status, ok := exitCodeStatus[code]
	switch {
	case ok:
	case code >= -11 && code <= -8:
		status = "backend_error"
	default:
		status = "unknown"
	}

	return ExitCodeInfo{
		Status:   status,
		Normal:   IsNormalCompletion(code),
		ExitCode: exitCode,
	}
}

// IsNormalCompletion returns true if the exit code indicates normal completion
// (either cracked or exhausted).
func IsNormalCompletion(exitCode int) bool {
	return exitCode == ExitCodeSuccess || exitCode == ExitCodeExhausted
}
