package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/livereload"
	"github.com/ziadkadry99/folio/internal/server"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/watch"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio locally with live reload",
	Long: `Starts a local server that renders the gallery on every request. When the
catalog file changes the new data is loaded and open pages reload. A broken
catalog shows the load error in the page until the file is fixed.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().Int("port", 0, "port to listen on (defaults to config port)")
	serveCmd.Flags().Bool("open", false, "open browser automatically")
	serveCmd.Flags().Bool("no-watch", false, "do not reload when the catalog changes")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if port, _ := cmd.Flags().GetInt("port"); port != 0 {
		cfg.Port = port
	}
	noWatch, _ := cmd.Flags().GetBool("no-watch")

	renderer, err := newRenderer(cfg)
	if err != nil {
		return err
	}
	loader := newLoader(cfg)

	hub := livereload.NewHub(logger)
	srv := server.New(server.Config{
		Port:        cfg.Port,
		AllowAll:    cfg.AllowAllOrigins,
		MaxCardTags: cfg.MaxCardTags,
		Locale:      localeOf(cfg),
	}, loader, renderer, server.WithLogger(logger), server.WithLiveReload(hub))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Reload(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\nThe gallery will show the error until the catalog is fixed.\n", err)
	}

	if cfg.Watch && !noWatch && !loader.IsRemote() {
		w, err := watch.New(cfg.Catalog, func() {
			srv.Reload(ctx)
		}, watch.WithLogger(logger))
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			logger.Warn("live reload disabled", zap.Error(err))
		}
		defer w.Stop()
	}

	go func() {
		<-ctx.Done()
		fmt.Fprintln(os.Stderr, "\nShutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	url := fmt.Sprintf("http://localhost:%d", cfg.Port)
	fmt.Fprintf(os.Stderr, "folio v%s serving %s at %s\n", Version, cfg.Catalog, url)
	fmt.Fprintln(os.Stderr, "Press Ctrl+C to stop.")
	if open, _ := cmd.Flags().GetBool("open"); open {
		go site.OpenBrowser(url)
	}

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}
