package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/cometholdings/comet/config"
	"github.com/cometholdings/comet/content"
	"github.com/cometholdings/comet/relay"
	"github.com/cometholdings/comet/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site API",
	Long: `Starts the HTTP API. When a content file is given it is loaded at
startup and, unless --watch=false, reloaded whenever it changes on disk.
Without one the built-in content is served.

Example:
  cometd serve --content site.yaml --webhook https://hooks.example.com/contact`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("port", "", "listen port (COMET_PORT)")
	serveCmd.Flags().String("content", "", "content YAML file (COMET_CONTENT)")
	serveCmd.Flags().String("webhook", "", "contact webhook URL (COMET_WEBHOOK_URL)")
	serveCmd.Flags().Bool("watch", true, "reload the content file on change (COMET_WATCH)")
}

// applyFlags overrides environment settings with flags the user set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("port") {
		cfg.Port, _ = f.GetString("port")
	}
	if f.Changed("content") {
		cfg.ContentPath, _ = f.GetString("content")
	}
	if f.Changed("webhook") {
		cfg.WebhookURL, _ = f.GetString("webhook")
	}
	if f.Changed("watch") {
		cfg.Watch, _ = f.GetBool("watch")
	}
	cfg.LogLevel = logLevel
	cfg.Dev = dev
}

func loadSite(path string) (*content.Site, error) {
	if path == "" {
		return content.Default(), nil
	}
	return content.Load(path)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg := config.Load()
	applyFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	site, err := loadSite(cfg.ContentPath)
	if err != nil {
		return err
	}
	store := content.NewStore(site)

	rh := relay.NewHandler(relay.Config{
		WebhookURL:   cfg.WebhookURL,
		Timeout:      cfg.RelayTimeout,
		MaxBodyBytes: cfg.MaxBodyBytes,
	}, logger.Named("relay"))
	srv := server.NewServer(store, rh, logger.Named("http"), cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * cfg.RelayTimeout,
		IdleTimeout:  60 * time.Second,
	}

	// Bind before anything starts in the background so a busy port
	// fails cleanly.
	ln, err := net.Listen("tcp", httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}

	var watcher *content.Watcher
	if cfg.ContentPath != "" && cfg.Watch {
		watcher, err = content.NewWatcher(store, cfg.ContentPath, logger.Named("content"))
		if err != nil {
			ln.Close()
			return err
		}
		watcher.Debounce = cfg.ContentDebounce
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	g, gctx := errgroup.WithContext(ctx)

	if watcher != nil {
		g.Go(func() error { return watcher.Run(gctx) })
	}
	g.Go(func() error {
		logger.Info("cometd listening",
			zap.String("addr", ln.Addr().String()),
			zap.String("content", cfg.ContentPath),
			zap.Int("portfolio", len(site.Portfolio)))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("cometd stopped")
	return nil
}
