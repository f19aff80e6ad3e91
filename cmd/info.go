package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/muesli/reflow/wordwrap"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(infoCmd)
	infoCmd.ValidArgsFunction = completionAnimeIDs
	infoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	infoCmd.SetOut(os.Stdout)
}

var infoCmd = &cobra.Command{
	Use:   "info <anime id>",
	Short: "Show the metadata of a title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		info, err := api.New().FetchAnimeInfo(ctx, args[0])
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(info))
			return
		}

		cmd.Print(describeAnime(info, time.Now(), util.TerminalWidth(80)))
	},
}

func describeAnime(info *api.AnimeInfo, now time.Time, width int) string {
	var b strings.Builder

	name := info.Title.Display()
	if name == "" {
		name = info.ID
	}
	b.WriteString(style.Title(name) + "\n")

	if info.Title.Native != "" && info.Title.Native != name {
		b.WriteString(style.Faint(info.Title.Native) + "\n")
	}
	b.WriteString("\n")

	row := func(label, value string) {
		if value != "" {
			fmt.Fprintf(&b, "%s %s\n", style.Fg(color.Purple)(fmt.Sprintf("%-9s", label)), value)
		}
	}

	row("Status", util.Capitalize(strings.ToLower(info.Status)))
	if info.TotalEpisodes > 0 {
		row("Episodes", fmt.Sprint(info.TotalEpisodes))
	}
	row("Genres", strings.Join(info.Genres, ", "))

	if next := info.NextAiringEpisode; next != nil && next.At().After(now) {
		row("Airing", style.Fg(color.Airing)(fmt.Sprintf(
			"%s Episode %d in %s",
			icon.Get(icon.Bell),
			next.Episode,
			util.Countdown(next.At().Sub(now)),
		)))
	}

	if info.Trailer != nil {
		row("Trailer", info.Trailer.EmbedURL())
	}

	if info.Description != "" {
		b.WriteString("\n" + wordwrap.String(info.Description, max(width-2, 20)) + "\n")
	}

	return b.String()
}
