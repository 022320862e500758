package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/unclesp1d3r/hashcatgui/appstate"
	"github.com/unclesp1d3r/hashcatgui/lib/display"
	"github.com/unclesp1d3r/hashcatgui/lib/form"
	"github.com/unclesp1d3r/hashcatgui/lib/outfile"
)

var (
	followFromEnd bool
	followPoll    bool
	followForm    *formFlags
)

var errNoOutfile = errors.New("the form has no outfile; set --outfile or --hash-file")

// followCmd prints cracked hashes as hashcat appends them to the form's outfile.
var followCmd = &cobra.Command{
	Use:   "follow",
	Short: "Follow the form's outfile and print cracked hashes",
	Long: "Follow the outfile the form writes to and print each cracked hash as\n" +
		"\"hash<TAB>plain\". Stops on interrupt.",
	Args: cobra.NoArgs,
	RunE: runFollow,
}

func init() {
	followForm = addFormFlags(followCmd)
	followCmd.Flags().BoolVar(&followFromEnd, "from-end", false, "skip lines already in the outfile")
	followCmd.Flags().BoolVar(&followPoll, "poll", false, "poll the file instead of using filesystem notifications")
	rootCmd.AddCommand(followCmd)
}

func runFollow(cmd *cobra.Command, _ []string) error {
	s, err := loadSettings()
	if err != nil {
		return err
	}

	f, err := followForm.buildForm(cmd, s)
	if err != nil {
		return err
	}

	if f.Outfile.Path == "" {
		return errNoOutfile
	}

	if strings.Contains(f.Outfile.Path, "<unixtime>") {
		appstate.Logger.Warn("Outfile path contains <unixtime>; following the name resolved now",
			"path", f.Outfile.Path)
	}

	path := f.ResolveOutfile(time.Now())
	display.Following(path)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	format := f.OutfileFormat
	if len(format) == 0 {
		format = form.DefaultOutfileFormat
	}

	out := cmd.OutOrStdout()

	return outfile.Follow(ctx, path, outfile.Options{
		Format:  format,
		FromEnd: followFromEnd,
		Poll:    followPoll,
	}, func(res outfile.Result) {
		display.Cracked(res)
		fmt.Fprintf(out, "%s\t%s\n", res.Hash, res.Plain)
	})
}
