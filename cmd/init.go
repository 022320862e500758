package cmd

import (
	"errors"
	"os"
	"slices"
	"strings"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/arch"
	"github.com/unclesp1d3r/hashcatgui/lib/config"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"golang.org/x/term"
)

var errNotInteractive = errors.New("init needs an interactive terminal; use 'settings set' instead")

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Configure hashcat-gui interactively",
	Long:  "Prompt for the hashcat binary, the terminal emulator and the flag style, then write the settings file.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(_ *cobra.Command, _ []string) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) { //nolint:gosec // File descriptors fit in int
		return errNotInteractive
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}

	v := viper.GetViper()

	hashcatPath, err := promptForHashcatPath(s.HashcatPath)
	if err != nil {
		return err
	}
	if err := config.Set(v, config.KeyHashcatPath, hashcatPath); err != nil {
		return err
	}

	terminal, err := promptForTerminal(s.Terminal)
	if err != nil {
		return err
	}
	if err := config.Set(v, config.KeyTerminal, terminal); err != nil {
		return err
	}

	shortFlags, err := promptForFlagStyle(s.ShortFlags)
	if err != nil {
		return err
	}
	if err := config.Set(v, config.KeyShortFlags, shortFlags); err != nil {
		return err
	}

	file, err := config.Persist(v)
	if err != nil {
		return err
	}

	display.SettingsSaved(file)

	return nil
}

// promptForHashcatPath asks for the hashcat binary and checks that it exists.
func promptForHashcatPath(current string) (string, error) {
	prompt := promptui.Prompt{
		Label:   "Path to the hashcat binary (" + arch.DefaultHashcatBinaryName() + ")",
		Default: current,
		Validate: func(input string) error {
			if strings.TrimSpace(input) == "" {
				return errors.New("a path is required")
			}
			if !fileutil.IsExist(input) {
				return errors.New("file does not exist")
			}

			return nil
		},
	}

	path, err := prompt.Run()
	if err != nil {
		appstate.Logger.Error("Prompt failed", "error", err)

		return "", err
	}

	return strings.TrimSpace(path), nil
}

// promptForTerminal offers the platform's terminal table.
func promptForTerminal(current string) (string, error) {
	terminals := arch.KnownTerminals()

	prompt := promptui.Select{
		Label:     "Terminal emulator",
		Items:     terminals,
		CursorPos: max(slices.Index(terminals, current), 0),
	}

	_, terminal, err := prompt.Run()
	if err != nil {
		appstate.Logger.Error("Prompt failed", "error", err)

		return "", err
	}

	return terminal, nil
}

// promptForFlagStyle asks whether generated commands use short option names.
func promptForFlagStyle(current bool) (string, error) {
	items := []string{"long (--hash-type)", "short (-m)"}
	pos := 0
	if current {
		pos = 1
	}

	prompt := promptui.Select{
		Label:     "Option style in generated commands",
		Items:     items,
		CursorPos: pos,
	}

	idx, _, err := prompt.Run()
	if err != nil {
		appstate.Logger.Error("Prompt failed", "error", err)

		return "", err
	}

	if idx == 1 {
		return "true", nil
	}

	return "false", nil
}

func init() {
	rootCmd.AddCommand(initCmd)
}
