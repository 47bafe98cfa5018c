package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/abhisek/tutorcore/internal/config"
	"github.com/abhisek/tutorcore/internal/llm"
	"github.com/abhisek/tutorcore/internal/logger"
	"github.com/abhisek/tutorcore/internal/observability"
	"github.com/abhisek/tutorcore/internal/sanitize"
	"github.com/abhisek/tutorcore/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "tutorcore",
	Short: "Tutoring reply interpreter and session engine",
	Long: "tutorcore turns raw tutoring-model replies into structured turns " +
		"(clean text, an embedded question, a chart, concept tags) and tracks " +
		"session pacing signals.",
	SilenceUsage: true,
}

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default "+config.DefaultPath+")")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TUTORCORE_DB env var)")
	rootCmd.PersistentFlags().Bool("no-store", false, "Do not record events")

	rootCmd.AddCommand(turnCmd)
	rootCmd.AddCommand(chatCmd)
	rootCmd.AddCommand(signalsCmd)
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(diagCmd)
	rootCmd.AddCommand(turnsCmd)
	rootCmd.AddCommand(versionCmd)
}

// env bundles what every command needs once configuration is loaded.
type env struct {
	cfg      *config.Config
	log      *logger.Logger
	store    *store.Store
	shutdown func(context.Context) error
}

// setup loads config, builds the logger, installs tracing and, unless
// disabled, opens the event store.
func setup(cmd *cobra.Command) (*env, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if noStore, _ := cmd.Flags().GetBool("no-store"); noStore {
		cfg.Store.Disabled = true
	}

	log, err := logger.New(cfg.Log.Mode, logger.Options{Level: cfg.Log.Level, HashSalt: cfg.Log.HashSalt})
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}

	e := &env{cfg: cfg, log: log}
	e.shutdown = observability.InitOTel(cmd.Context(), log, observability.OtelConfig{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: cfg.Tracing.ServiceName,
		Version:     buildVersion(),
		SampleRatio: cfg.Tracing.SampleRatio,
	})

	if cfg.Store.Disabled {
		return e, nil
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("resolve database path: %w", err)
	}
	e.store, err = store.Open(dbPath)
	if err != nil {
		e.close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	return e, nil
}

// openStore is setup for commands that only read the event log.
func openStore(cmd *cobra.Command) (*env, error) {
	e, err := setup(cmd)
	if err != nil {
		return nil, err
	}
	if e.store == nil {
		e.close()
		return nil, fmt.Errorf("event store is disabled")
	}
	return e, nil
}

func (e *env) close() {
	if e.store != nil {
		if err := e.store.Close(); err != nil {
			e.log.Warn("close store", "error", err)
		}
	}
	if e.shutdown != nil {
		if err := e.shutdown(context.Background()); err != nil {
			e.log.Warn("shutdown tracing", "error", err)
		}
	}
	e.log.Sync()
}

// diagnostics returns the sink sanitizer repairs are reported to.
func (e *env) diagnostics() sanitize.DiagnosticSink {
	sinks := sanitize.MultiSink{sanitize.LogSink{Log: e.log}}
	if e.store != nil {
		sinks = append(sinks, e.store.EventRepo())
	}
	return sinks
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then the configured path, then TUTORCORE_DB and the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	p, _ := cmd.Flags().GetString("db")
	if p == "" {
		p = cfg.Store.Path
	}
	if p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// provider builds the configured completion provider. Calls are recorded
// in the event store when one is open.
func (e *env) provider(ctx context.Context) (llm.Provider, error) {
	if err := e.cfg.LLM.Validate(); err != nil {
		return nil, fmt.Errorf("LLM provider not configured: %w", err)
	}
	var recorder llm.EventRecorder
	if e.store != nil {
		recorder = e.store.EventRepo()
	}
	return llm.NewProvider(ctx, e.cfg.LLM, recorder, e.log)
}
