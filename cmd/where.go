package cmd

import (
	"os"

	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

type whereTarget struct {
	name   string
	path   func() string
	long   string
	short  mo.Option[string]
	hidden bool
}

var whereTargets = []whereTarget{
	{name: "Config", path: where.Config, long: "config", short: mo.Some("c")},
	{name: "Storage", path: where.Storage, long: "storage", short: mo.Some("s")},
	{name: "Logs", path: where.Logs, long: "logs", short: mo.Some("l")},
	{name: "Cache", path: where.Cache, long: "cache", short: mo.None[string]()},
	{name: "Responses", path: where.Responses, long: "responses", short: mo.None[string](), hidden: true},
	{name: "Recent", path: where.Recent, long: "recent", short: mo.None[string](), hidden: true},
}

func init() {
	rootCmd.AddCommand(whereCmd)

	for _, t := range whereTargets {
		if short, ok := t.short.Get(); ok {
			whereCmd.Flags().BoolP(t.long, short, false, t.name+" path")
		} else {
			whereCmd.Flags().Bool(t.long, false, t.name+" path")
		}

		if t.hidden {
			lo.Must0(whereCmd.Flags().MarkHidden(t.long))
		}
	}

	whereCmd.MarkFlagsMutuallyExclusive(lo.Map(whereTargets, func(t whereTarget, _ int) string {
		return t.long
	})...)

	whereCmd.SetOut(os.Stdout)
}

var whereCmd = &cobra.Command{
	Use:   "where",
	Short: "Show where miru keeps its files",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range whereTargets {
			if lo.Must(cmd.Flags().GetBool(t.long)) {
				cmd.Println(t.path())
				return
			}
		}

		header := style.New().Bold(true).Foreground(color.Purple).Render
		visible := lo.Reject(whereTargets, func(t whereTarget, _ int) bool { return t.hidden })

		for i, t := range visible {
			cmd.Printf("%s %s\n%s\n", header(t.name+"?"), style.Fg(color.Yellow)("--"+t.long), t.path())
			if i < len(visible)-1 {
				cmd.Println()
			}
		}
	},
}
