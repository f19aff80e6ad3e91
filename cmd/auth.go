package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/miru-cli/miru/auth"
	"github.com/miru-cli/miru/color"
	"github.com/miru-cli/miru/icon"
	"github.com/miru-cli/miru/key"
	"github.com/miru-cli/miru/network"
	"github.com/miru-cli/miru/open"
	"github.com/miru-cli/miru/style"
	"github.com/miru-cli/miru/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(loginCmd)

	loginCmd.Flags().IntP("port", "p", 0, "Port of the local callback server")
	lo.Must0(viper.BindPFlag(key.AuthCallbackPort, loginCmd.Flags().Lookup("port")))

	loginCmd.Flags().Bool("no-browser", false, "Print the authorization URL instead of opening it")
	loginCmd.SetOut(os.Stdout)
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authorize miru and store the access token",
	Run: func(cmd *cobra.Command, args []string) {
		tokens := auth.NewTokens(openStore())

		opener := open.Start
		if lo.Must(cmd.Flags().GetBool("no-browser")) {
			opener = func(authURL string) error {
				cmd.Printf("Open this page to authorize:\n%s\n", authURL)
				return nil
			}
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		result, err := auth.Login(ctx, auth.LoginOptions{
			Port:         viper.GetInt(key.AuthCallbackPort),
			AuthorizeURL: viper.GetString(key.AuthAuthorizeURL),
			ClientID:     viper.GetString(key.AuthClientID),
			Exchanger: &auth.HTTPExchanger{
				BaseURL:  viper.GetString(key.AuthBaseURL),
				Platform: viper.GetString(key.DeployPlatform),
				HTTP:     network.New(),
			},
			Tokens: tokens,
			Open:   opener,
		})
		handleErr(err)

		if result.Outcome != auth.LoggedIn {
			handleErr(errors.New(result.Message))
		}

		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), "Logged in")
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
	logoutCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
	logoutCmd.SetOut(os.Stdout)
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Forget the stored access token",
	Run: func(cmd *cobra.Command, args []string) {
		if !lo.Must(cmd.Flags().GetBool("yes")) && util.IsInteractive() {
			confirm := survey.Confirm{
				Message: "Forget the access token?",
				Default: true,
			}
			var response bool
			handleErr(survey.AskOne(&confirm, &response))

			if !response {
				return
			}
		}

		handleErr(auth.NewTokens(openStore()).DeleteToken())
		cmd.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), "Logged out")
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
	whoamiCmd.Flags().BoolP("token", "t", false, "Print the access token")
	whoamiCmd.SetOut(os.Stdout)
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Tell whether an access token is stored",
	Run: func(cmd *cobra.Command, args []string) {
		token, err := auth.NewTokens(openStore()).Token()
		handleErr(err)

		value, ok := token.Get()
		if !ok {
			cmd.Printf("%s %s\n", style.Fg(color.Red)(icon.Get(icon.Fail)), "Not logged in")
			return
		}

		if lo.Must(cmd.Flags().GetBool("token")) {
			cmd.Println(value)
			return
		}

		where := "local store"
		if viper.GetBool(key.AuthKeyring) {
			where = "system keyring"
		}

		cmd.Printf("%s Logged in %s\n", style.Fg(color.Green)(icon.Get(icon.Key)), style.Faint(fmt.Sprintf("(token in %s)", where)))
	},
}
