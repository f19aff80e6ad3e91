package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/player"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/tui"
	"github.com/miru-cli/miru/watch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.ValidArgsFunction = completionAnimeIDs

	watchCmd.Flags().StringP("player", "p", "", "Player to use")
	lo.Must0(watchCmd.RegisterFlagCompletionFunc("player", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return player.Available(), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(viper.BindPFlag(key.Player, watchCmd.Flags().Lookup("player")))

	watchCmd.Flags().BoolP("history", "H", true, "Record opened episodes in the watched set")
	lo.Must0(viper.BindPFlag(key.WatchSaveHistory, watchCmd.Flags().Lookup("history")))

	watchCmd.Flags().BoolP("resume", "r", false, "Start from the last watched episode when none is given")
}

var watchCmd = &cobra.Command{
	Use:     "watch <anime id> [episode id]",
	Short:   "Open the watch screen of a title",
	Args:    cobra.RangeArgs(1, 2),
	Example: "  miru watch 154587\n  miru watch 154587 frieren-episode-3 --player browser",
	Run: func(cmd *cobra.Command, args []string) {
		store := openStore()
		route := watch.Route{AnimeID: args[0]}

		if len(args) > 1 {
			route.EpisodeID = args[1]
		} else if lo.Must(cmd.Flags().GetBool("resume")) {
			last, err := prefs.ForTitle(store, route.AnimeID).LastWatched()
			handleErr(err)
			route.EpisodeID = last.OrEmpty()
		}

		p, err := player.Default()
		handleErr(err)
		if _, ok := p.(*player.MPV); ok {
			checkMPV()
		}

		log.With(log.Fields{"anime": route.AnimeID, "episode": route.EpisodeID}).Info("opening watch screen")

		session := watch.NewSession(route, api.New(), store, watch.Options{
			SaveHistory: viper.GetBool(key.WatchSaveHistory),
		})

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err = tui.Run(ctx, &tui.Options{
			Session: session,
			Store:   store,
			Player:  p,
		})
		rememberTitle(session.State())
		handleErr(err)
	},
}
