// Package form models the attack configuration form: every field the user can
// set, its default, the list operations on the wordlist table, and the
// attack-mode driven enabling of form groups.
package form

import (
	"errors"
	"fmt"
	"slices"

	"github.com/duke-git/lancet/v2/slice"
	"github.com/duke-git/lancet/v2/strutil"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

// Default values. Optional arguments equal to these are never emitted.
const (
	DefaultGenerateRules   = 1
	DefaultPermMin         = 1
	DefaultPermMax         = 16
	DefaultWorkloadProfile = 2
	DefaultBackendDevices  = "0"
	DefaultHwmonTempAbort  = 90
	DefaultSegmentSize     = 32
	OutfileSuffix          = ".out"
	RulesFileSlots         = 3
	CustomCharsetSlots     = 4
)

// DefaultOutfileFormat is hashcat's own --outfile-format default (hash:plain).
var DefaultOutfileFormat = []int{1, 2} //nolint:gochecknoglobals // Read-only default

var (
	// ErrWordlistIndex is returned when a wordlist operation references a missing row.
	ErrWordlistIndex = errors.New("wordlist index out of range")
	// ErrInvalidForm is wrapped by every Validate failure.
	ErrInvalidForm = errors.New("invalid form")
)

// RulesSource selects between rules files and random rule generation.
type RulesSource string

const (
	RulesSourceFile     RulesSource = "file"     // RulesSourceFile uses the checked rules files
	RulesSourceGenerate RulesSource = "generate" // RulesSourceGenerate uses --generate-rules
)

// RulesFile is one checkbox-gated rules file slot.
type RulesFile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// Charset is one checkbox-gated custom charset slot.
type Charset struct {
	Enabled bool   `json:"enabled"`
	Value   string `json:"value"`
}

// Outfile is the checkbox-gated output file path. The path may contain the
// <unixtime> and <hash> placeholders.
type Outfile struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
}

// Wordlist is one row of the wordlist table. Only checked rows are passed to hashcat.
type Wordlist struct {
	Path    string `json:"path"`
	Checked bool   `json:"checked"`
}

// Form holds the complete attack configuration. JSON names form the profile schema.
type Form struct {
	HashFile       string             `json:"hash_file"`
	HashMode       int                `json:"hash_mode"`
	AttackMode     hashcat.AttackMode `json:"attack_mode"`
	Remove         bool               `json:"remove"`
	IgnoreUsername bool               `json:"ignore_username"`

	RulesSource   RulesSource               `json:"rules_source"`
	RulesFiles    [RulesFileSlots]RulesFile `json:"rules_files"`
	GenerateRules int                       `json:"generate_rules"`
	PermMin       int                       `json:"perm_min"`
	PermMax       int                       `json:"perm_max"`

	Mask           string                      `json:"mask"`
	Increment      bool                        `json:"increment"`
	IncrementMin   int                         `json:"increment_min"`
	IncrementMax   int                         `json:"increment_max"`
	CustomCharsets [CustomCharsetSlots]Charset `json:"custom_charsets"`
	HexCharset     bool                        `json:"hex_charset"`
	HexSalt        bool                        `json:"hex_salt"`

	Outfile       Outfile `json:"outfile"`
	OutfileFormat []int   `json:"outfile_format"`

	WorkloadProfile  int    `json:"workload_profile"`
	OptimizedKernels bool   `json:"optimized_kernels"`
	CPUAffinity      string `json:"cpu_affinity"`
	BackendDevices   string `json:"backend_devices"`
	KernelAccel      int    `json:"kernel_accel"`
	KernelLoops      int    `json:"kernel_loops"`
	HwmonTempAbort   int    `json:"hwmon_temp_abort"`
	SegmentSize      int    `json:"segment_size"`

	Wordlists []Wordlist `json:"wordlists"`

	defaultFormat []int
}

// Options seed a new form from persisted settings.
type Options struct {
	OutfileFormat []int // Outfile format selected after a reset; nil means DefaultOutfileFormat
}

// New returns a form holding every default value.
func New(opts Options) *Form {
	f := &Form{defaultFormat: slices.Clone(opts.OutfileFormat)}
	f.Reset()

	return f
}

// Reset restores every field to its default value.
func (f *Form) Reset() {
	format := f.defaultFormat
	if len(format) == 0 {
		format = DefaultOutfileFormat
	}

	*f = Form{
		AttackMode:      hashcat.AttackModeStraight,
		RulesSource:     RulesSourceFile,
		GenerateRules:   DefaultGenerateRules,
		PermMin:         DefaultPermMin,
		PermMax:         DefaultPermMax,
		OutfileFormat:   slices.Clone(format),
		WorkloadProfile: DefaultWorkloadProfile,
		BackendDevices:  DefaultBackendDevices,
		HwmonTempAbort:  DefaultHwmonTempAbort,
		SegmentSize:     DefaultSegmentSize,
		Wordlists:       []Wordlist{},
		defaultFormat:   f.defaultFormat,
	}
}

// SetHashFile sets the hash file and derives the default outfile path from it.
func (f *Form) SetHashFile(path string) {
	f.HashFile = path
	if path != "" {
		f.Outfile.Path = path + OutfileSuffix
	}
}

// SetAttackMode changes the attack mode. The enabled groups follow from Groups.
func (f *Form) SetAttackMode(mode hashcat.AttackMode) {
	f.AttackMode = mode
}

// Groups returns the form sections enabled for the current attack mode.
func (f *Form) Groups() hashcat.GroupSet {
	return hashcat.Groups(f.AttackMode)
}

// AddWordlists appends new checked rows, skipping blank paths and paths already listed.
// It returns the number of rows added.
func (f *Form) AddWordlists(paths ...string) int {
	added := 0

	for _, path := range paths {
		if strutil.IsBlank(path) || slice.Contain(f.wordlistPaths(), path) {
			continue
		}

		f.Wordlists = append(f.Wordlists, Wordlist{Path: path, Checked: true})
		added++
	}

	return added
}

// RemoveWordlist deletes the row at index i.
func (f *Form) RemoveWordlist(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}

	f.Wordlists = slices.Delete(f.Wordlists, i, i+1)

	return nil
}

// MoveWordlistUp swaps row i with the row above it. The first row stays in place.
func (f *Form) MoveWordlistUp(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}

	if i > 0 {
		f.Wordlists[i-1], f.Wordlists[i] = f.Wordlists[i], f.Wordlists[i-1]
	}

	return nil
}

// MoveWordlistDown swaps row i with the row below it. The last row stays in place.
func (f *Form) MoveWordlistDown(i int) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}

	if i < len(f.Wordlists)-1 {
		f.Wordlists[i+1], f.Wordlists[i] = f.Wordlists[i], f.Wordlists[i+1]
	}

	return nil
}

// SetWordlistChecked sets the check state of row i.
func (f *Form) SetWordlistChecked(i int, checked bool) error {
	if err := f.checkIndex(i); err != nil {
		return err
	}

	f.Wordlists[i].Checked = checked

	return nil
}

// CheckedWordlists returns the paths of checked rows in table order.
func (f *Form) CheckedWordlists() []string {
	var paths []string
	for _, w := range f.Wordlists {
		if w.Checked {
			paths = append(paths, w.Path)
		}
	}

	return paths
}

// Validate checks value ranges that hashcat would reject.
func (f *Form) Validate() error {
	switch {
	case f.HashMode < 0:
		return fmt.Errorf("%w: hash mode %d is negative", ErrInvalidForm, f.HashMode)
	case !f.AttackMode.Known():
		return fmt.Errorf("%w: %w %d", ErrInvalidForm, hashcat.ErrUnknownAttackMode, int(f.AttackMode))
	case f.RulesSource != RulesSourceFile && f.RulesSource != RulesSourceGenerate:
		return fmt.Errorf("%w: rules source %q", ErrInvalidForm, f.RulesSource)
	case f.PermMin > f.PermMax:
		return fmt.Errorf("%w: perm-min %d exceeds perm-max %d", ErrInvalidForm, f.PermMin, f.PermMax)
	case f.WorkloadProfile < 1 || f.WorkloadProfile > 4:
		return fmt.Errorf("%w: workload profile %d not in 1-4", ErrInvalidForm, f.WorkloadProfile)
	case f.SegmentSize < 1:
		return fmt.Errorf("%w: segment size %d", ErrInvalidForm, f.SegmentSize)
	case f.KernelAccel < 0 || f.KernelLoops < 0:
		return fmt.Errorf("%w: kernel tuning values must not be negative", ErrInvalidForm)
	case f.Increment && f.IncrementMax > 0 && f.IncrementMin > f.IncrementMax:
		return fmt.Errorf("%w: increment-min %d exceeds increment-max %d", ErrInvalidForm, f.IncrementMin, f.IncrementMax)
	}

	for _, n := range f.OutfileFormat {
		if n < 1 || n > 6 {
			return fmt.Errorf("%w: outfile format %d not in 1-6", ErrInvalidForm, n)
		}
	}

	return nil
}

func (f *Form) wordlistPaths() []string {
	paths := make([]string, len(f.Wordlists))
	for i, w := range f.Wordlists {
		paths[i] = w.Path
	}

	return paths
}

func (f *Form) checkIndex(i int) error {
	if i < 0 || i >= len(f.Wordlists) {
		return fmt.Errorf("%w: %d (have %d)", ErrWordlistIndex, i, len(f.Wordlists))
	}

	return nil
}
