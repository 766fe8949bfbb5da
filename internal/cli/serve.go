package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/camontes/resinabot/internal/commands"
	"github.com/camontes/resinabot/internal/config"
	"github.com/camontes/resinabot/internal/constants"
	"github.com/camontes/resinabot/internal/logger"
	"github.com/camontes/resinabot/internal/notifier"
	"github.com/camontes/resinabot/internal/scheduler"
	"github.com/camontes/resinabot/internal/server"
)

// ServeCmd runs the bot daemon: the HTTP message surface plus the
// reminder polling scheduler. Configuration comes from RESINABOT_*
// environment variables (see internal/config).
type ServeCmd struct {
	DryRun bool `help:"Print notifications to stdout instead of calling the gateway."`
	Debug  bool `help:"Enable debug logging."`
}

func (c *ServeCmd) Run(ctx *Context) error {
	cfg, err := config.LoadServe()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = os.TempDir()
	}
	if err := logger.Init(logger.Config{
		Debug:     c.Debug,
		ConfigDir: filepath.Join(configDir, constants.AppName),
	}); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	var deliver notifier.Notifier
	if c.DryRun {
		deliver = notifier.Console{}
	} else {
		if cfg.GatewayURL == "" {
			return fmt.Errorf("RESINABOT_GATEWAY_URL is required (or run with --dry-run)")
		}
		deliver = notifier.NewWebhook(cfg.GatewayURL, cfg.GatewayToken)
	}

	handler := commands.NewHandler(ctx.Store, cfg.ResinCap, cfg.RegenPerMin)
	srv := server.New(cfg.ListenAddr, handler, logger.Logger)
	sched := scheduler.New(ctx.Store, deliver, cfg.PollInterval, logger.Logger)

	runCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	schedDone := make(chan struct{})
	go func() {
		defer close(schedDone)
		sched.Run(runCtx)
	}()

	srvErr := make(chan error, 1)
	go func() {
		srvErr <- srv.ListenAndServe()
	}()

	var serveErr error
	select {
	case <-runCtx.Done():
	case serveErr = <-srvErr:
		stop()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}

	// Let an in-flight tick finish before exiting.
	<-schedDone

	if serveErr != nil {
		return serveErr
	}
	logger.Info("shutdown complete")
	return nil
}
