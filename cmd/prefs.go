package cmd

import (
	"encoding/json"
	"errors"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(prefsCmd)
}

var prefsCmd = &cobra.Command{
	Use:   "prefs",
	Short: "Show or change the source and language of a title",
}

func init() {
	prefsCmd.AddCommand(prefsGetCmd)
	prefsGetCmd.ValidArgsFunction = completionAnimeIDs
	prefsGetCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	prefsGetCmd.SetOut(os.Stdout)
}

var prefsGetCmd = &cobra.Command{
	Use:   "get <anime id>",
	Short: "Show the preferences of a title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := prefs.ForTitle(openStore(), args[0])

		sourceType, err := title.SourceType()
		handleErr(err)
		language, err := title.Language()
		handleErr(err)

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(map[string]string{
				"animeId":    title.ID(),
				"sourceType": string(sourceType),
				"language":   string(language),
			}))
			return
		}

		label := style.Fg(color.Purple)
		cmd.Printf("%s %s\n", label("Source:  "), style.Fg(color.Yellow)(string(sourceType)))
		cmd.Printf("%s %s\n", label("Language:"), style.Fg(color.Yellow)(string(language)))
	},
}

func init() {
	prefsCmd.AddCommand(prefsSetCmd)
	prefsSetCmd.ValidArgsFunction = completionAnimeIDs
	prefsSetCmd.Flags().StringP("source", "s", "", "Source type: default or gogo")
	prefsSetCmd.Flags().StringP("lang", "l", "", "Language: sub or dub")

	lo.Must0(prefsSetCmd.RegisterFlagCompletionFunc("source", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(prefs.SourceTypes, func(s prefs.SourceType, _ int) string { return string(s) }), cobra.ShellCompDirectiveNoFileComp
	}))
	lo.Must0(prefsSetCmd.RegisterFlagCompletionFunc("lang", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return lo.Map(prefs.Languages, func(l prefs.Language, _ int) string { return string(l) }), cobra.ShellCompDirectiveNoFileComp
	}))

	prefsSetCmd.SetOut(os.Stdout)
}

var prefsSetCmd = &cobra.Command{
	Use:   "set <anime id>",
	Short: "Change the preferences of a title",
	Long:  "Change the preferences of a title. Without flags both values are asked for.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := prefs.ForTitle(openStore(), args[0])

		rawSource := lo.Must(cmd.Flags().GetString("source"))
		rawLanguage := lo.Must(cmd.Flags().GetString("lang"))
		interactive := rawSource == "" && rawLanguage == ""

		if interactive {
			if !util.IsInteractive() {
				handleErr(errors.New("not a terminal, pass --source or --lang"))
			}

			current, err := title.SourceType()
			handleErr(err)
			handleErr(survey.AskOne(&survey.Select{
				Message: "Source",
				Options: lo.Map(prefs.SourceTypes, func(s prefs.SourceType, _ int) string { return string(s) }),
				Default: string(current),
			}, &rawSource))

			language, err := title.Language()
			handleErr(err)
			handleErr(survey.AskOne(&survey.Select{
				Message: "Language",
				Options: lo.Map(prefs.Languages, func(l prefs.Language, _ int) string { return string(l) }),
				Default: string(language),
			}, &rawLanguage))
		}

		done := style.Fg(color.Green)(icon.Get(icon.Success))

		if rawSource != "" {
			sourceType, err := prefs.ParseSourceType(rawSource)
			handleErr(err)
			handleErr(title.SetSourceType(sourceType))
			cmd.Printf("%s source set to %s\n", done, style.Fg(color.Yellow)(string(sourceType)))
		}

		if rawLanguage != "" {
			language, err := prefs.ParseLanguage(rawLanguage)
			handleErr(err)
			handleErr(title.SetLanguage(language))
			cmd.Printf("%s language set to %s\n", done, style.Fg(color.Yellow)(string(language)))
		}
	},
}
