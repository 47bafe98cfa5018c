package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/store"
)

var turnsCmd = &cobra.Command{
	Use:   "turns",
	Short: "Inspect recorded tutor turns",
}

var turnsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent tutor turn outcomes",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		sessionID, _ := cmd.Flags().GetString("session")

		e, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		events, err := e.store.EventRepo().QueryTurnEvents(cmd.Context(), store.QueryOpts{
			Limit:     limit,
			SessionID: sessionID,
		})
		if err != nil {
			return fmt.Errorf("query turns: %w", err)
		}
		if len(events) == 0 {
			fmt.Println("No turns recorded.")
			return nil
		}

		fmt.Printf("%-5s  %-19s  %-8s  %-3s  %-8s  %-4s  %-10s  %-5s  %s\n",
			"ID", "Timestamp", "Session", "Ex", "Answer", "Q", "Chart", "Scaf", "Concepts")
		fmt.Println(strings.Repeat("─", 100))
		for _, ev := range events {
			fmt.Printf("%-5d  %-19s  %-8s  %-3d  %-8s  %-4s  %-10s  %-5d  %s\n",
				ev.ID,
				ev.Timestamp.Local().Format(timeLayout),
				truncate(ev.SessionID, 8),
				ev.Exchange,
				answerLabel(ev),
				yesNo(ev.Question),
				orDash(ev.ChartKind),
				ev.ScaffoldingLevel,
				strings.Join(ev.Concepts, ","),
			)
		}
		return nil
	},
}

func answerLabel(ev store.TurnEvent) string {
	switch {
	case !ev.Answered:
		return "-"
	case ev.Correct:
		return "correct"
	default:
		return "wrong"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	turnsListCmd.Flags().IntP("limit", "n", 20, "Number of turns to show")
	turnsListCmd.Flags().StringP("session", "s", "", "Filter by session id")

	turnsCmd.AddCommand(turnsListCmd)
}
