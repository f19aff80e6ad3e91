package cmd

import (
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/recent"
	"github.com/miru-cli/miru/watch"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// completionAnimeIDs completes the first argument from recently opened titles.
func completionAnimeIDs(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}

	return lo.Map(recent.Match(toComplete), func(t recent.Title, _ int) string {
		if t.Name == "" {
			return t.ID
		}
		return t.ID + "\t" + t.Name
	}), cobra.ShellCompDirectiveNoFileComp
}

func rememberTitle(state watch.State) {
	name := state.Route.AnimeTitle
	if state.Info != nil {
		if display := state.Info.Title.Display(); display != "" {
			name = display
		}
	}

	if err := recent.Remember(state.Route.AnimeID, name); err != nil {
		log.Warnf("remember %s: %s", state.Route.AnimeID, err)
	}
}
