package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rpgo/mortgage-explorer/internal/config"
	"github.com/rpgo/mortgage-explorer/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var (
		envFile   string
		addr      string
		rateLimit int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the calculators over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadServerConfig(envFile)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				cfg.Addr = addr
			}
			if !cmd.Flags().Changed("log-level") && cfg.LogLevel != "" {
				opts.logLevel = cfg.LogLevel
			}

			engine, logger, err := newEngine(opts)
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			cache, closeCache := resultCache(ctx, cfg, logger)
			defer closeCache()
			var limiter *server.RateLimiter
			if rateLimit > 0 {
				limiter = server.NewRateLimiter(rateLimit, time.Minute)
				defer limiter.Stop()
			}

			handler := server.NewHandler(engine, cache, cfg.CacheTTL, logger)
			router, err := server.NewRouter(handler, logger, limiter, cfg.TrustedProxies)
			if err != nil {
				return err
			}
			return server.Serve(ctx, cfg.Addr, router, logger)
		},
	}
	cmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file with MORTGAGE_* settings")
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides MORTGAGE_ADDR)")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 60, "requests per minute per client, 0 disables")
	return cmd
}

// resultCache prefers redis when configured and reachable, falling back to memory.
// The returned func releases the cache on shutdown.
func resultCache(ctx context.Context, cfg config.ServerConfig, logger *zap.Logger) (server.ResultCache, func()) {
	if cfg.RedisAddr == "" {
		mc := server.NewMemoryCache()
		return mc, mc.Stop
	}
	rc := server.NewRedisCache(cfg.RedisAddr)
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	if err := rc.Ping(pingCtx); err != nil {
		logger.Warn("Redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		_ = rc.Close()
		mc := server.NewMemoryCache()
		return mc, mc.Stop
	}
	logger.Info("Using redis result cache", zap.String("addr", cfg.RedisAddr))
	return rc, func() {
		if err := rc.Close(); err != nil {
			logger.Warn("Failed to close redis client", zap.Error(err))
		}
	}
}
