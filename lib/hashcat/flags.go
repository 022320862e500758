package hashcat

// FlagStyle selects between hashcat's long option names and their short aliases.
type FlagStyle int

const (
	FlagStyleLong  FlagStyle = iota // FlagStyleLong always emits --long-option names
	FlagStyleShort                  // FlagStyleShort emits short aliases where hashcat has one
)

// Long option names emitted by the argument builder.
const (
	FlagHashType        = "--hash-type"
	FlagAttackMode      = "--attack-mode"
	FlagRemove          = "--remove"
	FlagUsername        = "--username"
	FlagRulesFile       = "--rules-file"
	FlagGenerateRules   = "--generate-rules"
	FlagPermMin         = "--perm-min"
	FlagPermMax         = "--perm-max"
	FlagIncrement       = "--increment"
	FlagIncrementMin    = "--increment-min"
	FlagIncrementMax    = "--increment-max"
	FlagWorkloadProfile = "--workload-profile"
	FlagOptimizedKernel = "--optimized-kernel-enable"
	FlagCustomCharset1  = "--custom-charset1"
	FlagCustomCharset2  = "--custom-charset2"
	FlagCustomCharset3  = "--custom-charset3"
	FlagCustomCharset4  = "--custom-charset4"
	FlagHexCharset      = "--hex-charset"
	FlagHexSalt         = "--hex-salt"
	FlagOutfile         = "--outfile"
	FlagOutfileFormat   = "--outfile-format"
	FlagCPUAffinity     = "--cpu-affinity"
	FlagBackendDevices  = "--backend-devices"
	FlagKernelAccel     = "--kernel-accel"
	FlagKernelLoops     = "--kernel-loops"
	FlagHwmonTempAbort  = "--hwmon-temp-abort"
	FlagSegmentSize     = "--segment-size"
	FlagQuiet           = "--quiet"
	FlagVersion         = "--version"
	FlagEula            = "--eula"
	FlagExampleHashes   = "--example-hashes"
	FlagMachineReadable = "--machine-readable"
)

//nolint:gochecknoglobals // Static alias table
var shortAliases = map[string]string{
	FlagHashType:        "-m",
	FlagAttackMode:      "-a",
	FlagRulesFile:       "-r",
	FlagGenerateRules:   "-g",
	FlagIncrement:       "-i",
	FlagWorkloadProfile: "-w",
	FlagOptimizedKernel: "-O",
	FlagCustomCharset1:  "-1",
	FlagCustomCharset2:  "-2",
	FlagCustomCharset3:  "-3",
	FlagCustomCharset4:  "-4",
	FlagOutfile:         "-o",
	FlagBackendDevices:  "-d",
	FlagKernelAccel:     "-n",
	FlagKernelLoops:     "-u",
	FlagSegmentSize:     "-c",
}

// Flag returns the option name to emit for a long flag under this style.
func (s FlagStyle) Flag(long string) string {
	if s == FlagStyleShort {
		if short, ok := shortAliases[long]; ok {
			return short
		}
	}

	return long
}

// CustomCharsetFlag returns the long option for custom charset slot n (1-4).
func CustomCharsetFlag(n int) string {
	switch n {
	case 1:
		return FlagCustomCharset1
	case 2:
		return FlagCustomCharset2
	case 3:
		return FlagCustomCharset3
	default:
		return FlagCustomCharset4
	}
}
