package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/duke-git/lancet/v2/slice"
	"github.com/spf13/cast"
	"github.com/spf13/viper"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
)

// Setting keys, as they appear in hashcat-gui.yaml.
const (
	KeyHashcatPath   = "hashcat_path"
	KeyTerminal      = "terminal"
	KeyOutfileFormat = "outfile_format"
	KeyShortFlags    = "short_flags"
	KeyQueryTimeout  = "query_timeout"
	KeyDataPath      = "data_path"
)

var (
	// ErrUnknownKey is returned for a setting name that is not one of the Key constants.
	ErrUnknownKey = errors.New("unknown setting")
	// ErrInvalidValue is returned when a setting value cannot be parsed.
	ErrInvalidValue = errors.New("invalid setting value")
)

// Keys returns every setting name in display order.
func Keys() []string {
	return []string{KeyHashcatPath, KeyTerminal, KeyOutfileFormat, KeyShortFlags, KeyQueryTimeout, KeyDataPath}
}

// Settings are the persisted user preferences. A Settings value is read from a
// viper instance once per command and passed to whatever needs it.
type Settings struct {
	HashcatPath   string        // HashcatPath is the hashcat executable; empty until configured.
	Terminal      string        // Terminal is the emulator hashcat is launched in; empty until configured.
	OutfileFormat []int         // OutfileFormat seeds the outfile format of new and reset forms.
	ShortFlags    bool          // ShortFlags selects hashcat's short option aliases.
	QueryTimeout  time.Duration // QueryTimeout bounds metadata queries against the binary.
	DataPath      string        // DataPath holds caches.
}

// Load reads the settings from v. Missing keys fall back to their defaults.
func Load(v *viper.Viper) (Settings, error) {
	format, err := outfileFormat(v)
	if err != nil {
		return Settings{}, fmt.Errorf("%w: %s: %w", ErrInvalidValue, KeyOutfileFormat, err)
	}

	timeout := v.GetDuration(KeyQueryTimeout)
	if timeout <= 0 {
		timeout = defaultQueryTimeout
	}

	return Settings{
		HashcatPath:   v.GetString(KeyHashcatPath),
		Terminal:      v.GetString(KeyTerminal),
		OutfileFormat: format,
		ShortFlags:    v.GetBool(KeyShortFlags),
		QueryTimeout:  timeout,
		DataPath:      v.GetString(KeyDataPath),
	}, nil
}

// outfileFormat accepts the "1,2" string form, a single integer and a YAML list.
func outfileFormat(v *viper.Viper) ([]int, error) {
	switch raw := v.Get(KeyOutfileFormat).(type) {
	case nil:
		return form.ParseFormatList(defaultOutfileFormat)
	case string:
		return form.ParseFormatList(raw)
	case int:
		return []int{raw}, nil
	default:
		format, err := cast.ToIntSliceE(raw)
		if err != nil {
			return nil, err
		}
		if len(format) == 0 {
			return nil, fmt.Errorf("unsupported value %v", raw)
		}

		return format, nil
	}
}

// Value returns the display form of a single setting.
func (s Settings) Value(key string) (string, error) {
	switch key {
	case KeyHashcatPath:
		return s.HashcatPath, nil
	case KeyTerminal:
		return s.Terminal, nil
	case KeyOutfileFormat:
		return form.FormatList(s.OutfileFormat), nil
	case KeyShortFlags:
		return strconv.FormatBool(s.ShortFlags), nil
	case KeyQueryTimeout:
		return s.QueryTimeout.String(), nil
	case KeyDataPath:
		return s.DataPath, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownKey, key)
	}
}

// FormOptions returns the options new forms are created with.
func (s Settings) FormOptions() form.Options {
	return form.Options{OutfileFormat: s.OutfileFormat}
}

// FlagStyle returns the option naming style selected by ShortFlags.
func (s Settings) FlagStyle() hashcat.FlagStyle {
	if s.ShortFlags {
		return hashcat.FlagStyleShort
	}

	return hashcat.FlagStyleLong
}

// Runner returns a metadata query runner for the configured binary.
func (s Settings) Runner() *hashcat.Runner {
	return hashcat.NewRunner(s.HashcatPath, s.QueryTimeout)
}

// Set validates value and stores it under key in v. It does not write the file.
func Set(v *viper.Viper, key, value string) error {
	switch key {
	case KeyHashcatPath:
		if value != "" && !fileutil.IsExist(value) {
			appstate.Logger.Warn("Configured hashcat binary does not exist", "path", value)
		}
		v.Set(key, value)
	case KeyTerminal:
		if value != "" {
			if _, ok := arch.LookupTerminal(value); !ok {
				return fmt.Errorf("%w: terminal %q is not one of %v", ErrInvalidValue, value, arch.KnownTerminals())
			}
		}
		v.Set(key, value)
	case KeyOutfileFormat:
		format, err := form.ParseFormatList(value)
		if err != nil || len(format) == 0 {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
		v.Set(key, form.FormatList(format))
	case KeyShortFlags:
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
		v.Set(key, enabled)
	case KeyQueryTimeout:
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout <= 0 {
			return fmt.Errorf("%w: %s %q", ErrInvalidValue, key, value)
		}
		v.Set(key, timeout.String())
	case KeyDataPath:
		if value == "" {
			return fmt.Errorf("%w: %s must not be empty", ErrInvalidValue, key)
		}
		v.Set(key, value)
	default:
		return fmt.Errorf("%w: %q (known: %v)", ErrUnknownKey, key, Keys())
	}

	return nil
}

// IsKnownKey reports whether key names a setting.
func IsKnownKey(key string) bool {
	return slice.Contain(Keys(), key)
}

// Persist writes the settings held by v to the file it was loaded from, or to
// DefaultConfigFile when none was loaded. The last write wins.
func Persist(v *viper.Viper) (string, error) {
	file := v.ConfigFileUsed()
	if file == "" {
		var err error
		if file, err = DefaultConfigFile(); err != nil {
			return "", err
		}
	}

	if err := os.MkdirAll(filepath.Dir(file), 0o750); err != nil {
		return "", fmt.Errorf("creating config directory: %w", err)
	}

	if err := v.WriteConfigAs(file); err != nil {
		return "", fmt.Errorf("writing config file %s: %w", file, err)
	}

	return file, nil
}
