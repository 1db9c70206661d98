// Package cmd implements the command-line interface for lectern.
package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/lectern-cli/lectern/credential"
	"github.com/lectern-cli/lectern/icon"
	"github.com/lectern-cli/lectern/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(authCmd)
}

// authCmd serves as the parent command for credential management.
var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the stored portal credential",
}

func init() {
	authCmd.AddCommand(authSetCmd)
	authSetCmd.Flags().BoolP("stdin", "i", false, "Read the raw request from standard input instead of prompting")
}

// authSetCmd extracts a credential from a pasted request and stores it.
var authSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Extract and store a credential from a raw request description",
	Long: `Extract and store a credential from a raw request description.

Paste a curl-style command copied from your browser's network inspector
("Copy as cURL"). The authorization bearer token and the cookie header are
picked out of it; everything else is ignored.`,
	Run: func(cmd *cobra.Command, args []string) {
		var raw string

		if lo.Must(cmd.Flags().GetBool("stdin")) {
			data, err := io.ReadAll(os.Stdin)
			handleErr(err)
			raw = string(data)
		} else {
			prompt := survey.Multiline{
				Message: "Paste the request that carries your portal credentials",
			}
			handleErr(survey.AskOne(&prompt, &raw, survey.WithValidator(survey.Required)))
		}

		cred, err := credential.Extract(raw)
		handleErr(err)

		store := credential.DefaultStore()
		handleErr(store.Save(cred))

		fmt.Printf(
			"%s credential stored at %s\n",
			style.Fg(style.Green)(icon.Get(icon.Success)),
			store.Path(),
		)
	},
}

func init() {
	authCmd.AddCommand(authShowCmd)
	authShowCmd.Flags().BoolP("token", "t", false, "Print only the bearer token")
}

// authShowCmd displays the stored credential, if any.
var authShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the stored credential",
	Run: func(cmd *cobra.Command, args []string) {
		cred, ok := credential.DefaultStore().Load().Get()
		if !ok {
			handleErr(fmt.Errorf("no stored credential, run `%s auth set` first", rootCmd.Use))
		}

		if lo.Must(cmd.Flags().GetBool("token")) {
			fmt.Println(cred.Token())
			return
		}

		fmt.Printf("%s %s\n", style.Faint("Authorization:"), cred.Authorization)
		fmt.Printf("%s %s\n", style.Faint("Cookie:"), cred.Cookie)
	},
}

func init() {
	authCmd.AddCommand(authClearCmd)
}

// authClearCmd deletes the stored credential.
var authClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the stored credential",
	Run: func(cmd *cobra.Command, args []string) {
		credential.DefaultStore().Invalidate()
		fmt.Printf("%s credential cleared\n", style.Fg(style.Green)(icon.Get(icon.Success)))
	},
}
