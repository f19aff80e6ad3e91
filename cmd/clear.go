package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/internal/cache"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/util"
	"github.com/miru-cli/miru/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

type clearTarget struct {
	name  string
	long  string
	short string
	clear func() error
}

// erase deletes the path, which may already be gone.
func erase(path func() string) func() error {
	return func() error {
		if err := util.Delete(path()); err != nil && !os.IsNotExist(err) {
			return err
		}
		return nil
	}
}

var clearTargets = []clearTarget{
	{name: "cache directory", long: "cache", short: "c", clear: erase(where.Cache)},
	{name: "API responses", long: "responses", short: "r", clear: erase(where.Responses)},
	{name: "recent titles", long: "recent", short: "R", clear: erase(where.Recent)},
	{name: "local store", long: "storage", short: "s", clear: erase(where.Storage)},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, t := range clearTargets {
		clearCmd.Flags().BoolP(t.long, t.short, false, "clear "+t.name)
	}

	clearCmd.Flags().BoolP("expired", "e", false, "only drop expired API responses")
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete cached data",
	Run: func(cmd *cobra.Command, args []string) {
		if lo.Must(cmd.Flags().GetBool("expired")) {
			ttl := time.Duration(viper.GetInt(key.APICacheTTL)) * time.Minute
			removed, err := cache.New(where.Responses(), ttl).Prune()
			handleErr(err)
			fmt.Printf("%s %s removed\n", icon.Get(icon.Success), util.Quantify(removed, "expired response", "expired responses"))
			return
		}

		var cleared bool
		for _, t := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(t.long)) {
				continue
			}

			cleared = true
			erase := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), t.name))
			err := t.clear()
			erase()
			handleErr(err)

			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(t.name))
		}

		if !cleared {
			handleErr(cmd.Help())
		}
	},
}
