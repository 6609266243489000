// cmd/api/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	app "sales-analytics/internal"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts app.Options

	cmd := &cobra.Command{
		Use:           "sales-analytics",
		Short:         "In-memory sales transaction analytics REST service",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.Context(), opts)
		},
	}
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a config file (yaml, json, toml)")
	cmd.Flags().StringVar(&opts.SeedFile, "seed-file", "", "JSON file with transactions to load at startup")
	return cmd
}

func run(ctx context.Context, opts app.Options) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Create and initialize the application
	application := app.NewApplication()
	if err := application.Initialize(ctx, opts); err != nil {
		if application.Logger != nil {
			application.Logger.Error("Failed to initialize application", "error", err)
		} else {
			os.Stderr.WriteString("failed to initialize application: " + err.Error() + "\n")
		}
		return err
	}
	application.Logger.Info("Application initialized", "app", application.String())

	// Start HTTP server
	server := &http.Server{
		Addr:         ":" + application.Config.ServerPort,
		Handler:      application.HTTPHandler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: application.Config.RequestTimeout + 5*time.Second,
		IdleTimeout:  120 * time.Second,
	}

	serverErr := make(chan error, 2)

	// Run server in a goroutine
	go func() {
		application.Logger.Info("Starting HTTP server", "port", application.Config.ServerPort)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			application.Logger.Error("HTTP server failed to start", "error", err)
			serverErr <- err
		}
	}()

	if application.GRPC.Addr() != "" {
		go func() {
			application.Logger.Info("Starting gRPC health server", "addr", application.GRPC.Addr())
			if err := application.GRPC.Start(); err != nil {
				application.Logger.Error("gRPC health server failed", "error", err)
				serverErr <- err
			}
		}()
	}

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		application.Logger.Info("Shutdown signal received", "signal", sig.String())
	case runErr = <-serverErr:
	case <-ctx.Done():
	}

	application.Logger.Info("Shutting down HTTP server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("HTTP server shutdown failed", "error", err)
		return err
	}

	// Perform application-level shutdown
	if err := application.Shutdown(shutdownCtx); err != nil {
		application.Logger.Error("Application shutdown failed", "error", err)
		return err
	}

	application.Logger.Info("Application gracefully stopped.")
	return runErr
}
