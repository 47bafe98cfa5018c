package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/turn"
	"github.com/abhisek/tutorcore/internal/ui/render"
)

var turnCmd = &cobra.Command{
	Use:   "turn [file]",
	Short: "Interpret one raw model reply",
	Long: "Reads a raw tutoring reply from a file (or stdin when omitted or \"-\") " +
		"and prints the structured turn: cleaned response, embedded question, " +
		"chart and concept tags.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic, _ := cmd.Flags().GetString("topic")
		pretty, _ := cmd.Flags().GetBool("pretty")
		width, _ := cmd.Flags().GetInt("width")

		raw, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		p := turn.New(turn.WithDiagnostics(e.diagnostics()), turn.WithLogger(e.log))
		reply := p.ProcessTurn(cmd.Context(), string(raw), topic)

		if pretty {
			_, err = lipgloss.Println(render.Reply(reply, width))
			return err
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reply)
	},
}

// readInput returns the contents of args[0], or stdin when no file is given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return b, nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return b, nil
}

func init() {
	turnCmd.Flags().StringP("topic", "t", "", "Session topic used for concept tagging")
	turnCmd.Flags().Bool("pretty", false, "Render for the terminal instead of printing JSON")
	turnCmd.Flags().IntP("width", "w", 80, "Wrap width for --pretty output (0 disables wrapping)")
}
