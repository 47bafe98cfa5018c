package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/mastery"
	"github.com/abhisek/tutorcore/internal/summary"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [transcript]",
	Short: "Summarize a tutoring transcript",
	Long: "Reads a session transcript (one \"role: text\" line per message) from a " +
		"file or stdin and prints a structured summary as JSON.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		statePath, _ := cmd.Flags().GetString("state")

		transcript, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var state mastery.ConversationState
		if statePath != "" {
			raw, err := os.ReadFile(statePath)
			if err != nil {
				return fmt.Errorf("read state: %w", err)
			}
			if err := json.Unmarshal(raw, &state); err != nil {
				return fmt.Errorf("decode state: %w", err)
			}
			state = state.Normalize()
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		provider, err := e.provider(cmd.Context())
		if err != nil {
			return err
		}

		out, err := summary.New(provider, e.cfg.Summary).Generate(cmd.Context(), summary.Input{
			Topic:      topic,
			Transcript: string(transcript),
			State:      state,
		})
		if err != nil {
			return err
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	},
}

func init() {
	summaryCmd.Flags().StringP("topic", "t", "", "Session topic")
	summaryCmd.Flags().String("state", "", "Path to the final conversation state JSON")
}
