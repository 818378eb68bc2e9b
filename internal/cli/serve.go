package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/analyzer"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/model"
	"github.com/darthvader3010/Ai-based-legal-doc-analyzer/internal/server"
)

var (
	serveAddr    string
	serveNoCache bool
	maxUpload    int64
	serveRPS     float64
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP analysis API",
	Long: `Serve exposes the analyzer over HTTP:
  POST /upload  multipart document -> structural analysis (JSON)
  POST /search  multipart document + keywords -> search hits (JSON)
  GET  /health  liveness and supported formats

Uploaded files are parsed in a temp location and removed immediately;
nothing is persisted.

Example:
  legaldoc serve
  legaldoc serve --addr :8080 --max-upload 33554432`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :5000)")
	serveCmd.Flags().BoolVar(&serveNoCache, "no-cache", false, "disable result cache")
	serveCmd.Flags().Int64Var(&maxUpload, "max-upload", 0, "max upload size in bytes (default 16 MiB)")
	serveCmd.Flags().Float64Var(&serveRPS, "rps", 0, "per-client requests per second (default 5)")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Local .env files carry deployment overrides, same as the env vars.
	_ = godotenv.Load()

	cfg := model.DefaultConfig()
	cfg.Cache.Enabled = !serveNoCache
	cfg.Output.Verbose = verbose
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	} else if addr := viper.GetString("server.addr"); addr != "" {
		cfg.Server.Addr = addr
	}
	if maxUpload > 0 {
		cfg.Server.MaxUploadBytes = maxUpload
	}
	if serveRPS > 0 {
		cfg.Server.RequestsPerSecond = serveRPS
	}
	if ttl := viper.GetDuration("cache.memory_ttl"); ttl > 0 {
		cfg.Cache.MemoryTTL = ttl
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	engine := analyzer.New(cfg.Analyzer)
	return server.New(cfg, engine, newStore(cfg)).Run(ctx)
}
