package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
	"github.com/unclesp1d3r/hashcatgui/lib/hashcat"
	"github.com/unclesp1d3r/hashcatgui/lib/testhelpers"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestSetDefaultConfigValues(t *testing.T) {
	resetViper(t)
	SetDefaultConfigValues()

	tests := []struct {
		name     string
		key      string
		expected any
		getter   func(string) any
	}{
		{
			name:     "hashcat_path defaults to empty",
			key:      KeyHashcatPath,
			expected: "",
			getter:   func(k string) any { return viper.GetString(k) },
		},
		{
			name:     "terminal defaults to empty",
			key:      KeyTerminal,
			expected: "",
			getter:   func(k string) any { return viper.GetString(k) },
		},
		{
			name:     "outfile_format defaults to 1,2",
			key:      KeyOutfileFormat,
			expected: "1,2",
			getter:   func(k string) any { return viper.GetString(k) },
		},
		{
			name:     "short_flags defaults to false",
			key:      KeyShortFlags,
			expected: false,
			getter:   func(k string) any { return viper.GetBool(k) },
		},
		{
			name:     "query_timeout defaults to 10 seconds",
			key:      KeyQueryTimeout,
			expected: 10 * time.Second,
			getter:   func(k string) any { return viper.GetDuration(k) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.getter(tt.key), "config key %q mismatch", tt.key)
		})
	}

	t.Run("data_path lives in the application data directory", func(t *testing.T) {
		assert.Contains(t, viper.GetString(KeyDataPath), "hashcat-gui")
	})
}

func TestSetupState(t *testing.T) {
	resetViper(t)
	SetDefaultConfigValues()

	customDataPath := filepath.Join("custom", "data")
	viper.Set(KeyDataPath, customDataPath)

	testhelpers.SetupTestState(t)
	SetupState()

	assert.Equal(t, customDataPath, appstate.State.DataPath)
	assert.Equal(t, filepath.Join(customDataPath, "hash_modes.json"), appstate.State.CatalogCachePath)
	assert.Empty(t, appstate.State.ConfigFile, "no config file was read")
}

func TestInitConfig_ReadsExplicitFile(t *testing.T) {
	resetViper(t)

	file := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(file, []byte("hashcat_path: /opt/hashcat/hashcat.bin\nshort_flags: true\n"), 0o600))

	InitConfig(file)

	assert.Equal(t, file, viper.ConfigFileUsed())
	assert.Equal(t, "/opt/hashcat/hashcat.bin", viper.GetString(KeyHashcatPath))
	assert.True(t, viper.GetBool(KeyShortFlags))
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := Load(viper.New())
		require.NoError(t, err)

		assert.Empty(t, s.HashcatPath)
		assert.Empty(t, s.Terminal)
		assert.Equal(t, []int{1, 2}, s.OutfileFormat)
		assert.False(t, s.ShortFlags)
		assert.Equal(t, 10*time.Second, s.QueryTimeout)
		assert.Equal(t, hashcat.FlagStyleLong, s.FlagStyle())
	})

	t.Run("explicit values", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyHashcatPath, "/usr/bin/hashcat")
		v.Set(KeyTerminal, "xterm")
		v.Set(KeyOutfileFormat, "2,3")
		v.Set(KeyShortFlags, true)
		v.Set(KeyQueryTimeout, "3s")

		s, err := Load(v)
		require.NoError(t, err)

		assert.Equal(t, "/usr/bin/hashcat", s.HashcatPath)
		assert.Equal(t, "xterm", s.Terminal)
		assert.Equal(t, []int{2, 3}, s.OutfileFormat)
		assert.Equal(t, []int{2, 3}, s.FormOptions().OutfileFormat)
		assert.Equal(t, hashcat.FlagStyleShort, s.FlagStyle())
		assert.Equal(t, 3*time.Second, s.QueryTimeout)

		r := s.Runner()
		assert.Equal(t, "/usr/bin/hashcat", r.Path)
		assert.Equal(t, 3*time.Second, r.Timeout)
	})

	t.Run("yaml list outfile format", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyOutfileFormat, []any{1, 2, 3})

		s, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2, 3}, s.OutfileFormat)
	})

	t.Run("yaml scalar outfile format", func(t *testing.T) {
		v := viper.New()
		v.SetConfigType("yaml")
		require.NoError(t, v.ReadConfig(strings.NewReader("outfile_format: 3\n")))

		s, err := Load(v)
		require.NoError(t, err)
		assert.Equal(t, []int{3}, s.OutfileFormat)

		value, err := s.Value(KeyOutfileFormat)
		require.NoError(t, err)
		assert.Equal(t, "3", value)
	})

	t.Run("empty outfile format list", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyOutfileFormat, []any{})

		_, err := Load(v)
		require.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("invalid outfile format", func(t *testing.T) {
		v := viper.New()
		v.Set(KeyOutfileFormat, "1,two")

		_, err := Load(v)
		require.ErrorIs(t, err, ErrInvalidValue)
	})
}

func TestSet(t *testing.T) {
	terminal := arch.KnownTerminals()[0]

	tests := []struct {
		name    string
		key     string
		value   string
		want    any
		wantErr error
	}{
		{name: "hashcat path", key: KeyHashcatPath, value: "/missing/hashcat", want: "/missing/hashcat"},
		{name: "known terminal", key: KeyTerminal, value: terminal, want: terminal},
		{name: "clear terminal", key: KeyTerminal, value: "", want: ""},
		{name: "unknown terminal", key: KeyTerminal, value: "teletype", wantErr: ErrInvalidValue},
		{name: "outfile format is normalized", key: KeyOutfileFormat, value: " 1, 3 ", want: "1,3"},
		{name: "empty outfile format", key: KeyOutfileFormat, value: "", wantErr: ErrInvalidValue},
		{name: "short flags", key: KeyShortFlags, value: "true", want: true},
		{name: "bad short flags", key: KeyShortFlags, value: "maybe", wantErr: ErrInvalidValue},
		{name: "query timeout", key: KeyQueryTimeout, value: "1m30s", want: "1m30s"},
		{name: "negative query timeout", key: KeyQueryTimeout, value: "-1s", wantErr: ErrInvalidValue},
		{name: "empty data path", key: KeyDataPath, value: "", wantErr: ErrInvalidValue},
		{name: "unknown key", key: "colour", value: "blue", wantErr: ErrUnknownKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			err := Set(v, tt.key, tt.value)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, v.IsSet(tt.key), "rejected values must not be stored")

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Get(tt.key))
		})
	}
}

func TestSettingsValue(t *testing.T) {
	s := Settings{
		HashcatPath:   "/opt/hashcat",
		OutfileFormat: []int{1, 2},
		ShortFlags:    true,
		QueryTimeout:  10 * time.Second,
	}

	for key, want := range map[string]string{
		KeyHashcatPath:   "/opt/hashcat",
		KeyTerminal:      "",
		KeyOutfileFormat: "1,2",
		KeyShortFlags:    "true",
		KeyQueryTimeout:  "10s",
	} {
		got, err := s.Value(key)
		require.NoError(t, err)
		assert.Equal(t, want, got, key)
	}

	_, err := s.Value("nope")
	require.ErrorIs(t, err, ErrUnknownKey)

	assert.True(t, IsKnownKey(KeyTerminal))
	assert.False(t, IsKnownKey("nope"))
}

func TestPersist_LastWriteWins(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "hashcat-gui.yaml")

	v := viper.New()
	v.SetConfigFile(file)
	require.NoError(t, Set(v, KeyHashcatPath, "/first"))
	require.NoError(t, Set(v, KeyShortFlags, "true"))

	written, err := Persist(v)
	require.NoError(t, err)
	assert.Equal(t, file, written)

	require.NoError(t, Set(v, KeyHashcatPath, "/second"))
	_, err = Persist(v)
	require.NoError(t, err)

	reread := viper.New()
	reread.SetConfigFile(file)
	require.NoError(t, reread.ReadInConfig())

	s, err := Load(reread)
	require.NoError(t, err)
	assert.Equal(t, "/second", s.HashcatPath)
	assert.True(t, s.ShortFlags)
}
