package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.ValidArgsFunction = completionAnimeIDs

	historyCmd.Flags().BoolP("last", "l", false, "Print the last visited title")
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	historyCmd.SetOut(os.Stdout)
}

var historyCmd = &cobra.Command{
	Use:   "history [anime id]",
	Short: "List the watched episodes of a title",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("last")) {
			last, err := lastVisited()
			handleErr(err)
			cmd.Println(last)
			return
		}

		if len(args) == 0 {
			handleErr(errors.New("anime id is required unless --last is set"))
		}

		title := prefs.ForTitle(openStore(), args[0])
		watched, err := title.Watched()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(watched))
			return
		}

		if len(watched) == 0 {
			cmd.Println(style.Faint("Nothing watched yet"))
			return
		}

		last, err := title.LastWatched()
		handleErr(err)
		lastID := last.OrEmpty()

		for _, ep := range watched {
			line := fmt.Sprintf("%s %3d  %s", style.Fg(color.Watched)(icon.Get(icon.Watched)), ep.Number, ep.Title)
			if ep.ID == lastID {
				line += " " + style.Fg(color.Accent)("(last)")
			}
			cmd.Println(line)
		}

		cmd.Println(style.Faint(util.Quantify(len(watched), "episode", "episodes") + " watched"))
	},
}
