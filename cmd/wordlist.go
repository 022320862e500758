package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/duke-git/lancet/v2/fileutil"
	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/profile"
)

var errNoProfile = errors.New("the wordlist commands edit a profile; pass it with --profile")

// wordlistCmd groups the wordlist table operations. Each one loads the
// --profile file, changes the table and writes the file back.
var wordlistCmd = &cobra.Command{
	Use:   "wordlist",
	Short: "Edit the wordlist table of a profile",
}

var wordlistListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the wordlist rows",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		f, err := loadProfileForm(false)
		if err != nil {
			return err
		}

		for i, w := range f.Wordlists {
			mark := " "
			if w.Checked {
				mark = "x"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d [%s] %s\n", i+1, mark, w.Path)
		}

		return nil
	},
}

var wordlistAddCmd = &cobra.Command{
	Use:   "add PATH...",
	Short: "Append wordlists; paths already listed are skipped",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		return editProfileForm(true, func(f *form.Form) error {
			display.WordlistsAdded(f.AddWordlists(args...), len(args))

			return nil
		})
	},
}

var wordlistAddDirCmd = &cobra.Command{
	Use:   "add-dir DIR",
	Short: "Append every file in a directory, sorted by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		paths, err := directoryFiles(args[0])
		if err != nil {
			return err
		}

		return editProfileForm(true, func(f *form.Form) error {
			display.WordlistsAdded(f.AddWordlists(paths...), len(paths))

			return nil
		})
	},
}

// wordlistIndexCommand builds a command that applies op to a 1-based row number.
func wordlistIndexCommand(use, short string, op func(f *form.Form, i int) error) *cobra.Command {
	return &cobra.Command{
		Use:   use + " ROW",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			row, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("%w: %q is not a row number", form.ErrWordlistIndex, args[0])
			}

			return editProfileForm(false, func(f *form.Form) error {
				return op(f, row-1)
			})
		},
	}
}

// directoryFiles returns the regular files directly inside dir.
func directoryFiles(dir string) ([]string, error) {
	if !fileutil.IsDir(dir) {
		return nil, fmt.Errorf("%s is not a directory", dir)
	}

	names, err := fileutil.ListFileNames(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}

	slices.Sort(names)

	paths := make([]string, 0, len(names))
	for _, name := range names {
		path := filepath.Join(dir, name)
		if !fileutil.IsDir(path) {
			paths = append(paths, path)
		}
	}

	return paths, nil
}

// loadProfileForm loads the --profile form. With create set, a missing file
// yields a default form instead of an error.
func loadProfileForm(create bool) (*form.Form, error) {
	if appstate.State.ProfilePath == "" {
		return nil, errNoProfile
	}

	s, err := loadSettings()
	if err != nil {
		return nil, err
	}

	f := form.New(s.FormOptions())

	if create && !fileutil.IsExist(appstate.State.ProfilePath) {
		return f, nil
	}

	if err := profile.Load(appstate.State.ProfilePath, f); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w (create it with 'profile reset' or 'wordlist add')", err)
		}

		return nil, err
	}

	return f, nil
}

// editProfileForm loads the --profile form, applies edit and saves it back.
func editProfileForm(create bool, edit func(f *form.Form) error) error {
	f, err := loadProfileForm(create)
	if err != nil {
		return err
	}

	if err := edit(f); err != nil {
		return err
	}

	if err := profile.Save(appstate.State.ProfilePath, f); err != nil {
		return err
	}

	display.ProfileSaved(appstate.State.ProfilePath)

	return nil
}

func init() {
	wordlistCmd.AddCommand(
		wordlistListCmd,
		wordlistAddCmd,
		wordlistAddDirCmd,
		wordlistIndexCommand("remove", "Remove a row", (*form.Form).RemoveWordlist),
		wordlistIndexCommand("up", "Move a row up", (*form.Form).MoveWordlistUp),
		wordlistIndexCommand("down", "Move a row down", (*form.Form).MoveWordlistDown),
		wordlistIndexCommand("check", "Check a row so it is passed to hashcat", func(f *form.Form, i int) error {
			return f.SetWordlistChecked(i, true)
		}),
		wordlistIndexCommand("uncheck", "Uncheck a row so it is skipped", func(f *form.Form, i int) error {
			return f.SetWordlistChecked(i, false)
		}),
	)
	rootCmd.AddCommand(wordlistCmd)
}
