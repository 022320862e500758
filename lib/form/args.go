package form

import (
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/duke-git/lancet/v2/convertor"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

const unixtimePlaceholder = "<unixtime>"

var hashPlaceholder = regexp.MustCompile(`(?i)<hash>`) //nolint:gochecknoglobals // Compiled once

// ArgsOptions control how the argument list is rendered.
type ArgsOptions struct {
	Now   func() time.Time  // Clock used for the <unixtime> placeholder; nil means time.Now
	Style hashcat.FlagStyle // Long or short option names
}

// Args builds the hashcat argument list for the current form state.
// The result depends only on the form, the clock and the flag style.
func (f *Form) Args(opts ArgsOptions) []string {
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	flag := opts.Style.Flag
	groups := f.Groups()

	var (
		args           []string
		maskBeforeDict string
		maskAfterDict  string
	)

	args = append(args,
		flag(hashcat.FlagHashType), strconv.Itoa(f.HashMode),
		flag(hashcat.FlagAttackMode), strconv.Itoa(int(f.AttackMode)),
	)

	if f.Remove {
		args = append(args, flag(hashcat.FlagRemove))
	}

	if f.IgnoreUsername {
		args = append(args, flag(hashcat.FlagUsername))
	}

	switch f.AttackMode {
	case hashcat.AttackModeStraight, hashcat.AttackModeAssociation:
		args = append(args, f.rulesArgs(flag)...)
	case hashcat.AttackModeCombination:
	case hashcat.AttackModeBruteForce:
		maskBeforeDict = f.Mask
	case hashcat.AttackModePermutation:
		args = append(args,
			flag(hashcat.FlagPermMin), strconv.Itoa(f.PermMin),
			flag(hashcat.FlagPermMax), strconv.Itoa(f.PermMax),
		)
	case hashcat.AttackModeHybridWordMask:
		maskAfterDict = f.Mask
	case hashcat.AttackModeHybridMaskWord:
		maskBeforeDict = f.Mask
	}

	if groups.Mask && f.Increment {
		args = append(args, flag(hashcat.FlagIncrement))
		if f.IncrementMin > 0 {
			args = append(args, flag(hashcat.FlagIncrementMin), strconv.Itoa(f.IncrementMin))
		}
		if f.IncrementMax > 0 {
			args = append(args, flag(hashcat.FlagIncrementMax), strconv.Itoa(f.IncrementMax))
		}
	}

	if f.WorkloadProfile != DefaultWorkloadProfile && f.WorkloadProfile > 0 {
		args = append(args, flag(hashcat.FlagWorkloadProfile), strconv.Itoa(f.WorkloadProfile))
	}

	if f.OptimizedKernels {
		args = append(args, flag(hashcat.FlagOptimizedKernel))
	}

	if groups.CustomCharset {
		for i, cs := range f.CustomCharsets {
			if cs.Enabled && cs.Value != "" {
				args = append(args, flag(hashcat.CustomCharsetFlag(i+1)), cs.Value)
			}
		}
	}

	if f.HexCharset {
		args = append(args, flag(hashcat.FlagHexCharset))
	}

	if f.HexSalt {
		args = append(args, flag(hashcat.FlagHexSalt))
	}

	if f.Outfile.Enabled && f.Outfile.Path != "" {
		args = append(args, flag(hashcat.FlagOutfile), f.ResolveOutfile(now()))
	}

	if len(f.OutfileFormat) > 0 && !slices.Equal(f.OutfileFormat, DefaultOutfileFormat) {
		args = append(args, flag(hashcat.FlagOutfileFormat), FormatList(f.OutfileFormat))
	}

	if f.CPUAffinity != "" {
		args = append(args, flag(hashcat.FlagCPUAffinity), f.CPUAffinity)
	}

	if f.BackendDevices != "" && f.BackendDevices != DefaultBackendDevices {
		args = append(args, flag(hashcat.FlagBackendDevices), f.BackendDevices)
	}

	if f.KernelAccel > 0 {
		args = append(args, flag(hashcat.FlagKernelAccel), convertor.ToString(f.KernelAccel))
	}

	if f.KernelLoops > 0 {
		args = append(args, flag(hashcat.FlagKernelLoops), convertor.ToString(f.KernelLoops))
	}

	if f.HwmonTempAbort > 0 && f.HwmonTempAbort != DefaultHwmonTempAbort {
		args = append(args, flag(hashcat.FlagHwmonTempAbort), convertor.ToString(f.HwmonTempAbort))
	}

	if f.SegmentSize > 0 && f.SegmentSize != DefaultSegmentSize {
		args = append(args, flag(hashcat.FlagSegmentSize), convertor.ToString(f.SegmentSize))
	}

	if f.HashFile != "" {
		args = append(args, f.HashFile)
	}

	if maskBeforeDict != "" {
		args = append(args, maskBeforeDict)
	}

	if groups.Wordlists {
		args = append(args, f.CheckedWordlists()...)
	}

	if maskAfterDict != "" {
		args = append(args, maskAfterDict)
	}

	return args
}

// rulesArgs returns the rules arguments for dictionary-based modes.
func (f *Form) rulesArgs(flag func(string) string) []string {
	var args []string

	switch f.RulesSource {
	case RulesSourceFile:
		for _, rf := range f.RulesFiles {
			if rf.Enabled && rf.Path != "" {
				args = append(args, flag(hashcat.FlagRulesFile), rf.Path)
			}
		}
	case RulesSourceGenerate:
		if f.GenerateRules > 0 {
			args = append(args, flag(hashcat.FlagGenerateRules), strconv.Itoa(f.GenerateRules))
		}
	}

	return args
}

// ResolveOutfile substitutes the outfile placeholders: <unixtime> with the
// epoch seconds of now and <hash> (any case) with the hash file's base name.
func (f *Form) ResolveOutfile(now time.Time) string {
	out := strings.ReplaceAll(f.Outfile.Path, unixtimePlaceholder, strconv.FormatInt(now.Unix(), 10))

	hashName := ""
	if f.HashFile != "" {
		hashName = filepath.Base(f.HashFile)
	}

	return hashPlaceholder.ReplaceAllLiteralString(out, hashName)
}

// FormatList renders an outfile format list as hashcat expects it, e.g. "1,2".
func FormatList(format []int) string {
	parts := make([]string, len(format))
	for i, n := range format {
		parts[i] = strconv.Itoa(n)
	}

	return strings.Join(parts, ",")
}

// ParseFormatList parses a comma separated outfile format list.
func ParseFormatList(s string) ([]int, error) {
	var format []int

	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		n, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}

		format = append(format, n)
	}

	return format, nil
}

// Preview renders the read-only command line shown to the user: the hashcat
// binary's base name (when configured) followed by the arguments. Arguments
// containing whitespace are quoted for display.
func Preview(hashcatPath string, args []string) string {
	parts := make([]string, 0, len(args)+1)
	if hashcatPath != "" {
		parts = append(parts, filepath.Base(hashcatPath))
	}

	for _, arg := range args {
		if arg == "" || strings.ContainsAny(arg, " \t\n") {
			arg = `"` + arg + `"`
		}
		parts = append(parts, arg)
	}

	return strings.Join(parts, " ")
}
