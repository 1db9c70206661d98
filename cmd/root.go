// Package cmd implements the command-line interface for lectern.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/lectern-cli/lectern/constant"
	"github.com/lectern-cli/lectern/icon"
	"github.com/lectern-cli/lectern/key"
	"github.com/lectern-cli/lectern/log"
	"github.com/lectern-cli/lectern/session"
	"github.com/lectern-cli/lectern/style"
	"github.com/lectern-cli/lectern/util"
	"github.com/lectern-cli/lectern/version"
	"github.com/lectern-cli/lectern/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, plain)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().BoolP("write-history", "H", true, "Record captured lectures in the local history")
	lo.Must0(viper.BindPFlag(key.HistorySaveOnDownload, rootCmd.PersistentFlags().Lookup("write-history")))

	rootCmd.Flags().StringP("date", "d", "", "Day to browse (YYYY-MM-DD), skips the date prompt")
	rootCmd.Flags().StringP("filter", "f", "", "Schedule filter keyword, skips the filter prompt")

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	// Cleanup of stale temporary artifacts on startup.
	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd defines the entry point for the lectern application.
var rootCmd = &cobra.Command{
	Use:   constant.Lectern,
	Short: "A command-line interface for browsing and capturing recorded lectures",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(style.AccentColor).Render("    - A command-line interface for browsing and capturing recorded lectures"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		CheckDependencies()

		options := &session.Options{
			Date:   mo.None[time.Time](),
			Filter: mo.None[string](),
		}

		if raw := lo.Must(cmd.Flags().GetString("date")); raw != "" {
			date, err := time.Parse("2006-01-02", raw)
			handleErr(err)
			options.Date = mo.Some(date)
		}

		if cmd.Flags().Changed("filter") {
			options.Filter = mo.Some(lo.Must(cmd.Flags().GetString("filter")))
		}

		outcome, err := session.Run(options)
		handleErr(err)

		if outcome != session.VideoResolved {
			fmt.Printf("%s %s\n", icon.Get(icon.Fail), outcome)
		}
	},
}

// Execute initializes child command routing and processes the CLI entry point.
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
