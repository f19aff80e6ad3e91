// Package cmd wires the miru command line.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/miru-cli/miru/auth"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/constant"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/log"
	"github.com/miru-cli/miru/prefs"
	"github.com/miru-cli/miru/storage"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/version"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.ValidArgsFunction = completionAnimeIDs
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")
	rootCmd.Flags().BoolP("continue", "c", false, "Open the last visited title")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Icons variant")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().Bool("keyring", false, "Keep the access token in the system keyring")
	lo.Must0(viper.BindPFlag(key.AuthKeyring, rootCmd.PersistentFlags().Lookup("keyring")))

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify(cmd.OutOrStdout())
	})
}

var rootCmd = &cobra.Command{
	Use:   constant.Miru + " [anime id] [episode id]",
	Short: "Watch anime from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.Accent).Render("    - Watch anime from the terminal"),
	Args: cobra.MaximumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		if lo.Must(cmd.Flags().GetBool("continue")) {
			last, err := lastVisited()
			handleErr(err)
			args = []string{last}
		}

		if len(args) == 0 {
			handleErr(cmd.Help())
			return
		}

		watchCmd.Run(watchCmd, args)
	},
}

// openStore opens the local store, routing the access token to the keyring when enabled.
func openStore() storage.Store {
	return storage.Open(auth.TokenKey)
}

var errNothingVisited = errors.New("no title visited yet")

func lastVisited() (string, error) {
	last, err := prefs.NewGlobal(openStore()).LastAnimeVisited()
	if err != nil {
		return "", err
	}

	id, ok := last.Get()
	if !ok {
		return "", errNothingVisited
	}

	return id, nil
}

// Execute runs the root command.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
