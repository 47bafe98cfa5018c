package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/mastery"
)

// signalsOutput is printed by the signals command.
type signalsOutput struct {
	State   mastery.ConversationState `json:"state"`
	Signals mastery.Signals           `json:"signals"`
	Summary string                    `json:"summary"`
}

var signalsCmd = &cobra.Command{
	Use:   "signals [state.json]",
	Short: "Derive pacing signals from a conversation state",
	Long: "Reads a conversation state as JSON (from a file or stdin) and prints " +
		"the derived signals. Use --concept/--correct/--incorrect to apply one " +
		"turn first.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		var state mastery.ConversationState
		if err := json.Unmarshal(raw, &state); err != nil {
			return fmt.Errorf("decode state: %w", err)
		}
		state = state.Normalize()

		outcome, apply, err := outcomeFromFlags(cmd)
		if err != nil {
			return err
		}
		if apply {
			state = mastery.Apply(state, outcome)
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(signalsOutput{
			State:   state,
			Signals: mastery.Derive(state),
			Summary: mastery.Summary(state),
		})
	},
}

// outcomeFromFlags builds the turn outcome requested on the command line.
// apply is false when no outcome flag was set.
func outcomeFromFlags(cmd *cobra.Command) (mastery.Outcome, bool, error) {
	flags := cmd.Flags()
	var o mastery.Outcome
	o.Concept, _ = flags.GetString("concept")
	correct, _ := flags.GetBool("correct")
	incorrect, _ := flags.GetBool("incorrect")
	format, _ := flags.GetString("format")
	o.Checkpoint, _ = flags.GetBool("checkpoint")

	if correct && incorrect {
		return o, false, fmt.Errorf("--correct and --incorrect are mutually exclusive")
	}
	o.Answered = correct || incorrect
	o.Correct = correct
	if format != "" {
		o.Format = mastery.QuestionFormat(format)
		if !o.Format.Valid() {
			return o, false, fmt.Errorf("unknown question format %q", format)
		}
		o.AwaitingReasoning = o.Format == mastery.FormatExplain
	}

	apply := o.Concept != "" || o.Answered || o.Format != "" || o.Checkpoint
	return o, apply, nil
}

func addOutcomeFlags(c *cobra.Command) {
	c.Flags().String("concept", "", "Concept of the applied turn")
	c.Flags().Bool("correct", false, "Apply a correct answer")
	c.Flags().Bool("incorrect", false, "Apply an incorrect answer")
	c.Flags().String("format", "", "Question format asked in the applied turn")
	c.Flags().Bool("checkpoint", false, "Mark the applied turn as a checkpoint")
}

func init() {
	addOutcomeFlags(signalsCmd)
}
