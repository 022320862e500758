package form

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

// fixedClock returns a clock pinned to 2025-01-02T03:04:05Z.
func fixedClock() func() time.Time {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	return func() time.Time { return ts }
}

func argsOf(f *Form) []string {
	return f.Args(ArgsOptions{Now: fixedClock()})
}

func TestArgs_DefaultForm(t *testing.T) {
	f := New(Options{})

	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "0"}, argsOf(f))
}

func TestArgs_BruteForceScenario(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeBruteForce)
	f.Mask = "?d?d?d?d"
	f.SetHashFile("hashes.txt")
	f.RulesFiles[0] = RulesFile{Enabled: true, Path: "best64.rule"}
	f.AddWordlists("rockyou.txt")

	args := argsOf(f)

	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "3", "hashes.txt", "?d?d?d?d"}, args)
	assert.NotContains(t, args, "--rules-file")
	assert.NotContains(t, args, "rockyou.txt", "wordlists group is disabled for brute-force")
}

func TestArgs_Straight(t *testing.T) {
	f := New(Options{})
	f.HashMode = 1000
	f.SetHashFile("ntlm.txt")
	f.Remove = true
	f.IgnoreUsername = true
	f.RulesFiles[0] = RulesFile{Enabled: true, Path: "best64.rule"}
	f.RulesFiles[1] = RulesFile{Enabled: false, Path: "dive.rule"}
	f.RulesFiles[2] = RulesFile{Enabled: true, Path: ""}
	f.AddWordlists("rockyou.txt", "top1000.txt")
	_ = f.SetWordlistChecked(1, false)

	assert.Equal(t, []string{
		"--hash-type", "1000", "--attack-mode", "0",
		"--remove", "--username",
		"--rules-file", "best64.rule",
		"ntlm.txt", "rockyou.txt",
	}, argsOf(f))
}

func TestArgs_GenerateRules(t *testing.T) {
	f := New(Options{})
	f.RulesSource = RulesSourceGenerate
	f.GenerateRules = 500
	f.RulesFiles[0] = RulesFile{Enabled: true, Path: "best64.rule"}

	args := argsOf(f)
	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "0", "--generate-rules", "500"}, args)
}

func TestArgs_AssociationUsesRules(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeAssociation)
	f.RulesFiles[2] = RulesFile{Enabled: true, Path: "hints.rule"}
	f.SetHashFile("h.txt")
	f.AddWordlists("hints.txt")

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "9", "--rules-file", "hints.rule", "h.txt", "hints.txt",
	}, argsOf(f))
}

func TestArgs_Combination(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeCombination)
	f.RulesFiles[0] = RulesFile{Enabled: true, Path: "best64.rule"}
	f.Mask = "?d"
	f.SetHashFile("h.txt")
	f.AddWordlists("left.txt", "right.txt")

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "1", "h.txt", "left.txt", "right.txt",
	}, argsOf(f))
}

func TestArgs_HybridDirections(t *testing.T) {
	f := New(Options{})
	f.SetHashFile("h.txt")
	f.Mask = "?d?d"
	f.AddWordlists("words.txt")

	f.SetAttackMode(hashcat.AttackModeHybridWordMask)
	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "6", "h.txt", "words.txt", "?d?d"}, argsOf(f))

	f.SetAttackMode(hashcat.AttackModeHybridMaskWord)
	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "7", "h.txt", "?d?d", "words.txt"}, argsOf(f))

	f.Mask = ""
	assert.Equal(t, []string{"--hash-type", "0", "--attack-mode", "7", "h.txt", "words.txt"}, argsOf(f))
}

func TestArgs_Permutation(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModePermutation)
	f.PermMin, f.PermMax = 2, 8
	f.AddWordlists("w.txt")

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "4", "--perm-min", "2", "--perm-max", "8", "w.txt",
	}, argsOf(f))
}

func TestArgs_CustomCharsets(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeBruteForce)
	f.Mask = "?1?2?4"
	f.CustomCharsets = [CustomCharsetSlots]Charset{
		{Enabled: true, Value: "?l?d"},
		{Enabled: false, Value: "abc"},
		{Enabled: true, Value: ""},
		{Enabled: true, Value: "XYZ"},
	}
	f.HexCharset = true
	f.HexSalt = true

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "3",
		"--custom-charset1", "?l?d", "--custom-charset4", "XYZ",
		"--hex-charset", "--hex-salt",
		"?1?2?4",
	}, argsOf(f))

	f.SetAttackMode(hashcat.AttackModeStraight)
	assert.NotContains(t, argsOf(f), "--custom-charset1", "charsets are ignored while the group is disabled")
}

func TestArgs_Increment(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeBruteForce)
	f.Mask = "?a?a?a?a?a?a"
	f.Increment = true
	f.IncrementMin = 4

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "3", "--increment", "--increment-min", "4", "?a?a?a?a?a?a",
	}, argsOf(f))

	f.SetAttackMode(hashcat.AttackModeStraight)
	assert.NotContains(t, argsOf(f), "--increment")
}

func TestArgs_Outfile(t *testing.T) {
	f := New(Options{})
	f.SetHashFile("/data/Corp Hashes.txt")
	f.Outfile = Outfile{Enabled: true, Path: "/out/<HASH>-<unixtime>.pot"}

	args := argsOf(f)
	assert.Contains(t, args, "--outfile")
	assert.Contains(t, args, "/out/Corp Hashes.txt-1735787045.pot")

	f.Outfile.Enabled = false
	assert.NotContains(t, argsOf(f), "--outfile", "unchecked outfile is omitted even with a path")

	f.Outfile = Outfile{Enabled: true, Path: ""}
	assert.NotContains(t, argsOf(f), "--outfile")
}

func TestArgs_PerformanceOverrides(t *testing.T) {
	f := New(Options{})
	f.WorkloadProfile = 3
	f.OptimizedKernels = true
	f.OutfileFormat = []int{2}
	f.CPUAffinity = "1,2"
	f.BackendDevices = "1"
	f.KernelAccel = 64
	f.KernelLoops = 128
	f.HwmonTempAbort = 85
	f.SegmentSize = 64
	f.SetHashFile("h.txt")

	assert.Equal(t, []string{
		"--hash-type", "0", "--attack-mode", "0",
		"--workload-profile", "3", "--optimized-kernel-enable",
		"--outfile-format", "2",
		"--cpu-affinity", "1,2",
		"--backend-devices", "1",
		"--kernel-accel", "64",
		"--kernel-loops", "128",
		"--hwmon-temp-abort", "85",
		"--segment-size", "64",
		"h.txt",
	}, argsOf(f))
}

func TestArgs_DefaultsNeverEmitted(t *testing.T) {
	f := New(Options{})
	f.SetHashFile("h.txt")
	f.BackendDevices = ""

	args := argsOf(f)
	for _, flag := range []string{
		"--workload-profile", "--outfile-format", "--cpu-affinity", "--backend-devices",
		"--kernel-accel", "--kernel-loops", "--hwmon-temp-abort", "--segment-size", "--outfile",
		"--generate-rules", "--perm-min", "--perm-max",
	} {
		assert.NotContains(t, args, flag)
	}
}

func TestArgs_ShortStyle(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeBruteForce)
	f.Mask = "?1?1"
	f.CustomCharsets[0] = Charset{Enabled: true, Value: "?l?u"}
	f.Outfile = Outfile{Enabled: true, Path: "out.txt"}
	f.HexSalt = true
	f.SetHashFile("h.txt")
	f.Outfile.Path = "out.txt"

	args := f.Args(ArgsOptions{Now: fixedClock(), Style: hashcat.FlagStyleShort})

	assert.Equal(t, []string{
		"-m", "0", "-a", "3", "-1", "?l?u", "--hex-salt", "-o", "out.txt", "h.txt", "?1?1",
	}, args)
}

func TestArgs_Deterministic(t *testing.T) {
	f := New(Options{})
	f.SetAttackMode(hashcat.AttackModeHybridWordMask)
	f.Mask = "?d"
	f.SetHashFile("h.txt")
	f.Outfile.Enabled = true
	f.AddWordlists("a", "b")

	first := argsOf(f)
	second := argsOf(f)
	assert.Equal(t, first, second)

	clone := *f
	assert.Equal(t, first, argsOf(&clone))
}

func TestPreview(t *testing.T) {
	args := []string{"--hash-type", "0", "--outfile", "my out.txt", "h.txt"}

	assert.Equal(t, `hashcat.bin --hash-type 0 --outfile "my out.txt" h.txt`, Preview("/opt/hashcat/hashcat.bin", args))
	assert.Equal(t, `--hash-type 0 --outfile "my out.txt" h.txt`, Preview("", args))

	winArgs := []string{"--outfile", `C:\Program Files\out.txt`, `C:\hashes.txt`}
	assert.Equal(t, `--outfile "C:\Program Files\out.txt" C:\hashes.txt`, Preview("", winArgs))
}

func TestFormatList(t *testing.T) {
	assert.Equal(t, "1,2", FormatList(DefaultOutfileFormat))

	format, err := ParseFormatList(" 1, 3 ,5,")
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 3, 5}, format)

	_, err = ParseFormatList("1,x")
	assert.Error(t, err)
}
