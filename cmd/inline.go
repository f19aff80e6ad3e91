package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"

	"github.com/miru-cli/miru/api"
	"github.com/miru-cli/miru/filesystem"
	"github.com/miru-cli/miru/inline"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/watch"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)
	inlineCmd.ValidArgsFunction = completionAnimeIDs

	inlineCmd.Flags().BoolP("json", "j", false, "Print the resolved state as JSON")
	inlineCmd.Flags().Bool("episodes", false, "Include the episode list in the JSON output")
	inlineCmd.Flags().StringP("episode", "e", "", "Episode selector, used when no episode id is given")
	inlineCmd.Flags().StringP("source", "s", "", "Source type to use and store for the title")
	inlineCmd.Flags().StringP("lang", "l", "", "Language to store for the title")
	inlineCmd.Flags().BoolP("history", "H", false, "Record the episode in the watched set")
	inlineCmd.Flags().StringP("output", "o", "", "Write the output to a file")
}

var inlineCmd = &cobra.Command{
	Use:   "inline <anime id> [episode id]",
	Short: "Resolve an episode without the interactive screen",
	Long: `Resolve an episode and print its embedded player URL, or the whole state with --json.

Episode selectors:
  first - first episode in the list
  last - last episode in the list
  [number] - episode by its number
  @[substring]@ - first episode whose title contains substring`,
	Example: "  miru inline 154587 -e last\n  miru inline 154587 --json | jq .embeddedUrl",
	Args:    cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		route := watch.Route{AnimeID: args[0]}
		if len(args) > 1 {
			route.EpisodeID = args[1]
		}

		options := &inline.Options{
			Route:       route,
			Fetcher:     api.New(),
			Store:       openStore(),
			Json:        lo.Must(cmd.Flags().GetBool("json")),
			Episodes:    lo.Must(cmd.Flags().GetBool("episodes")),
			SaveHistory: lo.Must(cmd.Flags().GetBool("history")),
		}

		if raw := lo.Must(cmd.Flags().GetString("episode")); raw != "" && route.EpisodeID == "" {
			selector, err := inline.ParseEpisodeSelector(raw)
			handleErr(err)
			options.Selector = mo.Some(selector)
		}

		if raw := lo.Must(cmd.Flags().GetString("source")); raw != "" {
			sourceType, err := prefs.ParseSourceType(raw)
			handleErr(err)
			options.SourceType = mo.Some(sourceType)
		}

		if raw := lo.Must(cmd.Flags().GetString("lang")); raw != "" {
			language, err := prefs.ParseLanguage(raw)
			handleErr(err)
			options.Language = mo.Some(language)
		}

		var out io.Writer = os.Stdout
		if path := lo.Must(cmd.Flags().GetString("output")); path != "" {
			file, err := filesystem.API().Create(path)
			handleErr(err)
			defer file.Close()
			out = file
		}
		options.Out = out

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		handleErr(inline.Run(ctx, options))
	},
}

func init() {
	inlineCmd.AddCommand(inlineSchemaCmd)
	inlineSchemaCmd.SetOut(os.Stdout)
}

var inlineSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the inline output",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		handleErr(encoder.Encode(inline.Schema()))
	},
}
