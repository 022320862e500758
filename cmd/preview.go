package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
)

var (
	previewJSON    bool
	previewDetails bool
	previewForm    *formFlags
)

// previewCmd prints the command preview for the form.
var previewCmd = &cobra.Command{
	Use:     "preview",
	Aliases: []string{"args"},
	Short:   "Print the hashcat command line for the form",
	Long: "Print the hashcat command line built from the profile given with --profile and\n" +
		"the form flags. The preview is regenerated on every call and never stored.",
	Args: cobra.NoArgs,
	RunE: runPreview,
}

func init() {
	previewForm = addFormFlags(previewCmd)
	previewCmd.Flags().BoolVar(&previewJSON, "json", false, "print the argument list as JSON")
	previewCmd.Flags().BoolVar(&previewDetails, "details", false, "also print enabled form groups and file sizes")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := previewForm.buildForm(cmd, s)
	if err != nil {
		return err
	}

	args := f.Args(form.ArgsOptions{Style: s.FlagStyle()})
	out := cmd.OutOrStdout()

	if previewJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(args); err != nil {
			return err
		}
	} else {
		fmt.Fprintln(out, form.Preview(s.HashcatPath, args))
	}

	if previewDetails {
		printDetails(cmd, f)
	}

	return nil
}

// printDetails lists the enabled groups and the files the form refers to.
func printDetails(cmd *cobra.Command, f *form.Form) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\nattack mode: %d (%s)\n", int(f.AttackMode), f.AttackMode)
	fmt.Fprintf(out, "groups:      %s\n", strings.Join(f.Groups().Names(), ", "))

	if f.HashFile != "" {
		fmt.Fprintf(out, "hash file:   %s (%s)\n", f.HashFile, display.FileSize(f.HashFile))
	}

	for i, w := range f.Wordlists {
		mark := " "
		if w.Checked {
			mark = "x"
		}
		fmt.Fprintf(out, "wordlist %d:  [%s] %s (%s)\n", i+1, mark, w.Path, display.FileSize(w.Path))
	}
}
