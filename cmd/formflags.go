package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/config"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

// formFlags holds the attack form flags shared by preview, run, follow and profile save.
// Only flags set on the command line override the base form.
type formFlags struct {
	hashFile         string
	hashMode         int
	attackMode       string
	remove           bool
	username         bool
	rulesFiles       []string
	generateRules    int
	permMin          int
	permMax          int
	mask             string
	increment        bool
	incrementMin     int
	incrementMax     int
	charsets         [form.CustomCharsetSlots]string
	hexCharset       bool
	hexSalt          bool
	outfile          string
	outfileFormat    string
	workloadProfile  int
	optimizedKernels bool
	cpuAffinity      string
	backendDevices   string
	kernelAccel      int
	kernelLoops      int
	hwmonTempAbort   int
	segmentSize      int
	wordlists        []string
}

// addFormFlags registers the form flags on cmd.
func addFormFlags(cmd *cobra.Command) *formFlags {
	ff := &formFlags{}
	flags := cmd.Flags()

	flags.StringVar(&ff.hashFile, "hash-file", "", "hash file to attack (the outfile defaults to <hash-file>.out)")
	flags.IntVarP(&ff.hashMode, "hash-mode", "m", 0, "hash mode number (see hash-modes)")
	flags.StringVarP(&ff.attackMode, "attack-mode", "a", "", "attack mode number or name (see attack-modes)")
	flags.BoolVar(&ff.remove, "remove", false, "remove cracked hashes from the hash file")
	flags.BoolVar(&ff.username, "username", false, "ignore usernames in the hash file")
	flags.StringArrayVar(&ff.rulesFiles, "rules-file", nil, fmt.Sprintf("rules file (repeatable, up to %d)", form.RulesFileSlots))
	flags.IntVar(&ff.generateRules, "generate-rules", form.DefaultGenerateRules, "generate N random rules instead of using rules files")
	flags.IntVar(&ff.permMin, "perm-min", form.DefaultPermMin, "minimum permutation length")
	flags.IntVar(&ff.permMax, "perm-max", form.DefaultPermMax, "maximum permutation length")
	flags.StringVar(&ff.mask, "mask", "", "mask for brute-force and hybrid attacks")
	flags.BoolVar(&ff.increment, "increment", false, "enable mask increment mode")
	flags.IntVar(&ff.incrementMin, "increment-min", 0, "start mask increment at this length")
	flags.IntVar(&ff.incrementMax, "increment-max", 0, "stop mask increment at this length")

	for i := range ff.charsets {
		flags.StringVar(&ff.charsets[i], charsetFlagName(i), "", fmt.Sprintf("custom charset ?%d (empty disables it)", i+1))
	}

	flags.BoolVar(&ff.hexCharset, "hex-charset", false, "custom charsets are given in hex")
	flags.BoolVar(&ff.hexSalt, "hex-salt", false, "salts are given in hex")
	flags.StringVarP(&ff.outfile, "outfile", "o", "", "outfile path; supports <hash> and <unixtime> (empty disables it)")
	flags.StringVar(&ff.outfileFormat, "outfile-format", "", "outfile format list, e.g. 1,2")
	flags.IntVarP(&ff.workloadProfile, "workload-profile", "w", form.DefaultWorkloadProfile, "workload profile 1-4")
	flags.BoolVar(&ff.optimizedKernels, "optimized-kernel-enable", false, "enable optimized kernels")
	flags.StringVar(&ff.cpuAffinity, "cpu-affinity", "", "CPU cores hashcat may use, e.g. 1,2,3")
	flags.StringVar(&ff.backendDevices, "backend-devices", form.DefaultBackendDevices, "backend devices to use")
	flags.IntVar(&ff.kernelAccel, "kernel-accel", 0, "manual kernel accel (0 = automatic)")
	flags.IntVar(&ff.kernelLoops, "kernel-loops", 0, "manual kernel loops (0 = automatic)")
	flags.IntVar(&ff.hwmonTempAbort, "hwmon-temp-abort", form.DefaultHwmonTempAbort, "abort at this temperature in Celsius")
	flags.IntVar(&ff.segmentSize, "segment-size", form.DefaultSegmentSize, "wordlist cache segment size in MB")
	flags.StringArrayVar(&ff.wordlists, "wordlist", nil, "wordlist to append (repeatable)")

	return ff
}

func charsetFlagName(i int) string {
	return "custom-charset" + strconv.Itoa(i+1)
}

// apply copies the flags that were set on the command line into f.
func (ff *formFlags) apply(cmd *cobra.Command, f *form.Form) error {
	changed := cmd.Flags().Changed

	if changed("hash-file") {
		f.SetHashFile(ff.hashFile)
	}

	if changed("hash-mode") {
		f.HashMode = ff.hashMode
	}

	if changed("attack-mode") {
		mode, err := hashcat.ParseAttackMode(ff.attackMode)
		if err != nil {
			return err
		}
		f.SetAttackMode(mode)
	}

	if changed("remove") {
		f.Remove = ff.remove
	}

	if changed("username") {
		f.IgnoreUsername = ff.username
	}

	if changed("rules-file") {
		if len(ff.rulesFiles) > form.RulesFileSlots {
			return fmt.Errorf("%w: at most %d rules files", form.ErrInvalidForm, form.RulesFileSlots)
		}

		f.RulesSource = form.RulesSourceFile
		f.RulesFiles = [form.RulesFileSlots]form.RulesFile{}
		for i, path := range ff.rulesFiles {
			f.RulesFiles[i] = form.RulesFile{Enabled: path != "", Path: path}
		}
	}

	if changed("generate-rules") {
		f.RulesSource = form.RulesSourceGenerate
		f.GenerateRules = ff.generateRules
	}

	if changed("perm-min") {
		f.PermMin = ff.permMin
	}

	if changed("perm-max") {
		f.PermMax = ff.permMax
	}

	if changed("mask") {
		f.Mask = ff.mask
	}

	if changed("increment") {
		f.Increment = ff.increment
	}

	if changed("increment-min") {
		f.IncrementMin = ff.incrementMin
	}

	if changed("increment-max") {
		f.IncrementMax = ff.incrementMax
	}

	for i, value := range ff.charsets {
		if changed(charsetFlagName(i)) {
			f.CustomCharsets[i] = form.Charset{Enabled: value != "", Value: value}
		}
	}

	if changed("hex-charset") {
		f.HexCharset = ff.hexCharset
	}

	if changed("hex-salt") {
		f.HexSalt = ff.hexSalt
	}

	if changed("outfile") {
		f.Outfile = form.Outfile{Enabled: ff.outfile != "", Path: ff.outfile}
	}

	if changed("outfile-format") {
		format, err := form.ParseFormatList(ff.outfileFormat)
		if err != nil {
			return fmt.Errorf("%w: outfile format %q", form.ErrInvalidForm, ff.outfileFormat)
		}
		f.OutfileFormat = format
	}

	if changed("workload-profile") {
		f.WorkloadProfile = ff.workloadProfile
	}

	if changed("optimized-kernel-enable") {
		f.OptimizedKernels = ff.optimizedKernels
	}

	if changed("cpu-affinity") {
		f.CPUAffinity = ff.cpuAffinity
	}

	if changed("backend-devices") {
		f.BackendDevices = ff.backendDevices
	}

	if changed("kernel-accel") {
		f.KernelAccel = ff.kernelAccel
	}

	if changed("kernel-loops") {
		f.KernelLoops = ff.kernelLoops
	}

	if changed("hwmon-temp-abort") {
		f.HwmonTempAbort = ff.hwmonTempAbort
	}

	if changed("segment-size") {
		f.SegmentSize = ff.segmentSize
	}

	if changed("wordlist") {
		f.AddWordlists(ff.wordlists...)
	}

	return f.Validate()
}

// buildForm returns the base form with the command line flags applied.
func (ff *formFlags) buildForm(cmd *cobra.Command, s config.Settings) (*form.Form, error) {
	f, err := baseForm(s)
	if err != nil {
		return nil, err
	}

	if err := ff.apply(cmd, f); err != nil {
		return nil, err
	}

	return f, nil
}
