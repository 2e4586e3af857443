package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonathan/csm-portfolio/internal/logging"
	"github.com/jonathan/csm-portfolio/internal/seo"
	"github.com/jonathan/csm-portfolio/internal/server"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Load the metrics document and start an HTTP server exposing it as JSON and Prometheus metrics.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, store, err := loadStore(cmd)
	if err != nil {
		return err
	}

	logger, err := logging.New(logging.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Out: os.Stderr})
	if err != nil {
		return fmt.Errorf("failed to configure logging: %w", err)
	}
	logger.WithFields(logrus.Fields{
		"metrics": store.Len(),
		"path":    cfg.MetricsPath,
	}).Info("Loaded metrics document")

	srv, err := server.New(server.Config{
		Port:   cfg.Port,
		Store:  store,
		Site:   seo.Site{Name: cfg.SiteName, Role: cfg.SiteRole, BaseURL: cfg.SiteURL},
		Logger: logger.WithField("component", "server"),
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Start(ctx)
}
