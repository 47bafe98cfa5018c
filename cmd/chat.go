package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/app"
	"github.com/abhisek/tutorcore/internal/summary"
	"github.com/abhisek/tutorcore/internal/turn"
	"github.com/abhisek/tutorcore/internal/tutor"
)

var chatCmd = &cobra.Command{
	Use:   "chat [topic]",
	Short: "Start an interactive tutoring session",
	Args:  cobra.ArbitraryArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer e.close()

		provider, err := e.provider(ctx)
		if err != nil {
			return err
		}

		opts := []tutor.Option{
			tutor.WithLogger(e.log),
			tutor.WithProcessor(turn.New(turn.WithDiagnostics(e.diagnostics()), turn.WithLogger(e.log))),
		}
		if e.store != nil {
			opts = append(opts, tutor.WithTurnRecorder(e.store.EventRepo()))
		}

		session := tutor.NewSession(strings.TrimSpace(strings.Join(args, " ")))
		e.log.Info("session started", "session_id", session.ID, "topic", session.Topic, "model", provider.ModelID())

		return app.Run(ctx, app.Options{
			Tutor:      tutor.New(provider, e.cfg.Tutor, opts...),
			Session:    session,
			Summarizer: summary.New(provider, e.cfg.Summary),
		})
	},
}
