package cmd

import (
	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/apperrors"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/profile"
)

var profileSaveForm *formFlags

// profileCmd groups the profile file commands.
var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Save, show and reset form profiles",
}

var profileSaveCmd = &cobra.Command{
	Use:   "save FILE",
	Short: "Save the form to a profile file",
	Long: "Save the form built from --profile (if given) and the form flags to FILE.\n" +
		"An existing file is replaced.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		f, err := profileSaveForm.buildForm(cmd, s)
		if err != nil {
			return err
		}

		if err := profile.Save(args[0], f); err != nil {
			return apperrors.LogAndWrap("Failed to save profile", err)
		}

		display.ProfileSaved(args[0])

		return nil
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show FILE",
	Short: "Print a profile as it would be loaded",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		f := form.New(s.FormOptions())
		if err := profile.Load(args[0], f); err != nil {
			return err
		}

		display.ProfileLoaded(args[0])

		data, err := profile.Marshal(f)
		if err != nil {
			return err
		}

		_, err = cmd.OutOrStdout().Write(data)

		return err
	},
}

var profileResetCmd = &cobra.Command{
	Use:   "reset FILE",
	Short: "Write a profile holding only default values",
	Args:  cobra.ExactArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		s, err := loadSettings()
		if err != nil {
			return err
		}

		if err := profile.Save(args[0], form.New(s.FormOptions())); err != nil {
			return apperrors.LogAndWrap("Failed to reset profile", err)
		}

		display.ProfileSaved(args[0])

		return nil
	},
}

func init() {
	profileSaveForm = addFormFlags(profileSaveCmd)
	profileCmd.AddCommand(profileSaveCmd, profileShowCmd, profileResetCmd)
	rootCmd.AddCommand(profileCmd)
}
