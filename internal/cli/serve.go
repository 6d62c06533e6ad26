package cli

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/trucite/trucite/internal/cache"
	"github.com/trucite/trucite/internal/server"
	"github.com/trucite/trucite/internal/store"
)

var servePort int

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the verification HTTP server",
	Long: `Serve starts the TruCite backend:
  POST /verify  — verify a text and return the report
  GET  /health  — liveness probe
  GET  /        — status page

Audit records are written best-effort to the configured store; a write
failure never fails a verification request.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	p, err := newPipeline(cfg)
	if err != nil {
		return err
	}
	zap.L().Info("verification engine ready",
		zap.String("engine_version", p.EngineVersion()),
		zap.String("scorer", cfg.Engine.Scorer),
	)

	// Persistence is optional: driver "none" (or empty) disables the sink.
	var sink *store.Sink
	if cfg.Store.Driver != "" && cfg.Store.Driver != "none" {
		st, err := store.Open(cfg.Store)
		if err != nil {
			return err
		}
		defer st.Close()
		if err := st.Migrate(ctx); err != nil {
			return err
		}

		sink = store.NewSink(st, cfg.Store.QueueSize, cfg.Store.SinkWorkers, nil)
		sink.Start()
		defer func() {
			sink.Close()
			if dropped, failed := sink.Dropped(), sink.Failed(); dropped > 0 || failed > 0 {
				zap.L().Warn("audit sink finished with losses",
					zap.Int64("dropped", dropped),
					zap.Int64("failed", failed),
				)
			}
		}()
		zap.L().Info("audit store ready", zap.String("driver", cfg.Store.Driver))
	} else {
		zap.L().Info("audit store disabled")
	}

	var reports *cache.ReportCache
	if cfg.Cache.Enabled {
		reports = cache.NewReportCache(cfg.Cache.TTL)
	}

	if servePort != 0 {
		cfg.Server.Port = servePort
	}

	srv := server.New(p, sink, reports, cfg.Server)
	return srv.ListenAndServe(ctx)
}
