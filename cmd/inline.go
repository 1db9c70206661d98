// Package cmd implements the command-line interface for lectern.
package cmd

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/lectern-cli/lectern/filesystem"
	"github.com/lectern-cli/lectern/inline"
	"github.com/lectern-cli/lectern/query"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(inlineCmd)

	inlineCmd.Flags().StringP("date", "d", time.Now().Format("2006-01-02"), "Day to browse (YYYY-MM-DD)")
	inlineCmd.Flags().IntP("building", "b", 0, "Restrict the schedule to a single building id")
	inlineCmd.Flags().StringP("filter", "f", "", "Case-insensitive filter on title, lecturer or room")
	inlineCmd.Flags().StringP("lecture", "l", "", "Criteria for selecting a single lecture from the results")
	inlineCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")
	inlineCmd.Flags().BoolP("urls", "u", false, "Print only the resolved video addresses")
	inlineCmd.Flags().StringP("output", "o", "", "Specify a file path to write the command output")

	lo.Must0(inlineCmd.RegisterFlagCompletionFunc("filter", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return query.SuggestMany(toComplete), cobra.ShellCompDirectiveNoFileComp
	}))
}

// inlineCmd executes the application in non-interactive, scriptable inline mode.
var inlineCmd = &cobra.Command{
	Use:   "inline",
	Short: "Browse and resolve recorded lectures in non-interactive, scriptable mode",
	Long: `Resolve recorded lectures without prompting. A stored credential is
required; create one with the auth set command.

Lecture selectors:
  first - first lecture in the filtered schedule
  last - last lecture in the filtered schedule
  index:[number] - select a lecture by index (starting from 0)
  exact:[title] - select a lecture by exact title

Without a selector all matching lectures are resolved.`,
	Example: "  lectern inline -d 2026-03-02 -f 'operating systems' -l first -u",
	Run: func(cmd *cobra.Command, args []string) {
		date, err := time.Parse("2006-01-02", lo.Must(cmd.Flags().GetString("date")))
		handleErr(err)

		building := mo.None[int]()
		if id := lo.Must(cmd.Flags().GetInt("building")); id != 0 {
			building = mo.Some(id)
		}

		picker := mo.None[inline.LecturePicker]()
		if raw := lo.Must(cmd.Flags().GetString("lecture")); raw != "" {
			kind, value, _ := strings.Cut(raw, ":")

			fn, err := inline.ParseLecturePicker(kind, value)
			handleErr(err)
			picker = mo.Some(fn)
		}

		var writer io.Writer = os.Stdout
		if output := lo.Must(cmd.Flags().GetString("output")); output != "" {
			file, err := filesystem.API().Create(output)
			handleErr(err)
			defer file.Close()
			writer = file
		}

		handleErr(inline.Run(&inline.Options{
			Out:        writer,
			Date:       date,
			BuildingID: building,
			Filter:     lo.Must(cmd.Flags().GetString("filter")),
			Picker:     picker,
			Json:       lo.Must(cmd.Flags().GetBool("json")),
			URLOnly:    lo.Must(cmd.Flags().GetBool("urls")),
		}))
	},
}
