// Package cmd implements the command-line interface for lectern.
package cmd

import (
	"encoding/json"
	"os"
	"sort"

	"github.com/lectern-cli/lectern/history"
	"github.com/lectern-cli/lectern/style"
	"github.com/lectern-cli/lectern/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolP("json", "j", false, "Format the output as a JSON string")
	historyCmd.SetOut(os.Stdout)
}

// historyCmd lists previously captured lectures.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously captured lectures",
	Run: func(cmd *cobra.Command, args []string) {
		saved, err := history.Get()
		handleErr(err)

		records := lo.Values(saved)
		sort.Slice(records, func(i, j int) bool {
			return records[i].SavedAt > records[j].SavedAt
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(records))
			return
		}

		for _, record := range records {
			cmd.Println(record)
			cmd.Println(style.Faint("  " + record.Path))
		}

		cmd.Println(style.Faint(util.Quantify(len(records), "capture", "captures")))
	},
}
