package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/store"
)

var diagCmd = &cobra.Command{
	Use:   "diag",
	Short: "Inspect sanitizer repair diagnostics",
}

var diagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent sanitizer diagnostics",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		stage, _ := cmd.Flags().GetString("stage")

		e, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		events, err := e.store.EventRepo().QuerySanitizeEvents(cmd.Context(), store.QueryOpts{Limit: limit})
		if err != nil {
			return fmt.Errorf("query diagnostics: %w", err)
		}

		shown := 0
		for _, ev := range events {
			if stage != "" && ev.Stage != stage {
				continue
			}
			if shown == 0 {
				fmt.Printf("%-5s  %-19s  %-5s  %-9s  %s\n", "ID", "Timestamp", "Stage", "Len", "Rules")
				fmt.Println(strings.Repeat("─", 90))
			}
			shown++
			fmt.Printf("%-5d  %-19s  %-5s  %4d>%-4d  %s\n",
				ev.ID,
				ev.Timestamp.Local().Format(timeLayout),
				ev.Stage,
				ev.InputLen,
				ev.OutputLen,
				strings.Join(ev.Rules, ","),
			)
			if verbose, _ := cmd.Flags().GetBool("verbose"); verbose && ev.Sample != "" {
				fmt.Printf("       %q\n", ev.Sample)
			}
		}
		if shown == 0 {
			fmt.Println("No sanitizer diagnostics found.")
		}
		return nil
	},
}

func init() {
	diagListCmd.Flags().IntP("limit", "n", 20, "Number of diagnostics to show")
	diagListCmd.Flags().String("stage", "", "Filter by pipeline stage (pre, post)")
	diagListCmd.Flags().BoolP("verbose", "v", false, "Show the input sample of each diagnostic")

	diagCmd.AddCommand(diagListCmd)
}
